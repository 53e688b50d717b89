package main

import (
	"CityGuide/config/database"
	"CityGuide/config/environment"
	"CityGuide/config/logger"
	route "CityGuide/routes/api"
	"CityGuide/services"
	"CityGuide/store"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := environment.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	s, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	if cfg.SeedData {
		if err := store.Seed(ctx, s); err != nil {
			zlog.Fatal("seed store", zap.Error(err))
		}
	}

	if cfg.OpenAIKey == "" {
		zlog.Warn("OPENAI_API_KEY is empty, chat replies will use the fallback message")
	}
	openAI := services.NewOpenAIService(cfg.OpenAIKey, cfg.OpenAIBaseURL)

	router := route.NewRouter(route.Dependencies{
		Store:       s,
		Completer:   openAI,
		ChatModel:   cfg.OpenAIModel,
		ChatTimeout: cfg.ChatTimeout,
		Logger:      zlog,
	}, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}

func openStore(ctx context.Context, cfg *environment.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case environment.StoreFirestore:
		client, err := database.InitFirestore(ctx, cfg.FirebaseKey, cfg.FirebaseProjectID)
		if err != nil {
			return nil, nil, err
		}
		return store.NewFirestoreStore(client), func() { _ = client.Close() }, nil
	case environment.StoreMemory:
		return store.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
