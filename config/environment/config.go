package environment

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory    = "memory"
	StoreFirestore = "firestore"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigins []string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
	ChatTimeout   time.Duration

	StoreDriver string
	SeedData    bool

	FirebaseKey       string
	FirebaseProjectID string
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		GinMode:           getEnvOrDefault("GIN_MODE", "release"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		CORSOrigins:       splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		OpenAIKey:         GetOpenAIKey(),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		StoreDriver:       strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreMemory)),
		FirebaseKey:       GetFirebaseKey(),
		FirebaseProjectID: GetFirebaseProjectID(),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("CHAT_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid CHAT_TIMEOUT %q", os.Getenv("CHAT_TIMEOUT"))
	}
	cfg.ChatTimeout = timeout

	seed, err := strconv.ParseBool(getEnvOrDefault("SEED_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA %q", os.Getenv("SEED_DATA"))
	}
	cfg.SeedData = seed

	switch cfg.StoreDriver {
	case StoreMemory:
	case StoreFirestore:
		if cfg.FirebaseKey == "" {
			return nil, fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 is required for the firestore store")
		}
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
