package route

import (
	"CityGuide/controllers"
	"CityGuide/handlers"
	"CityGuide/services"
	"CityGuide/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the collaborators every route needs.
type Dependencies struct {
	Store       store.Store
	Completer   services.ChatCompleter
	ChatModel   string
	ChatTimeout time.Duration
	Logger      *zap.Logger
}

// RegisterRoutes builds services and controllers and mounts them under /api.
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	catalogService := services.NewCatalogService()
	cityService := services.NewCityService(deps.Store)
	placeService := services.NewPlaceService(deps.Store, deps.Logger)
	reviewService := services.NewReviewService(deps.Store)
	chatService := services.NewChatService(deps.Completer, deps.ChatModel, deps.ChatTimeout, deps.Logger)

	catalogController := controllers.NewCatalogController(catalogService)
	cityController := controllers.NewCityController(cityService)
	placeController := controllers.NewPlaceController(placeService)
	reviewController := controllers.NewReviewController(reviewService, placeService)
	chatController := controllers.NewChatController(chatService, placeService, cityService)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiRoutes := router.Group("/api")
	{
		handlers.RegisterCatalogRoutes(apiRoutes, catalogController)
		handlers.RegisterCityRoutes(apiRoutes, cityController, placeController)
		handlers.RegisterPlaceRoutes(apiRoutes, placeController, reviewController, chatController)
	}
}
