package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	GinMode     string
	CORSOrigins []string

	// Completion service
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	// Access gate
	AdminPasswordHash string // fallback when no settings row exists
	AdminTokenSecret  string
	AdminTokenTTL     int // minutes

	// WhatsApp lead funnel (deep link only, never dialed)
	WhatsAppNumber string

	// Redis (resolved image URL cache)
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Object storage for gallery images
	MinioEndpoint    string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioBucket      string
	MinioUseSSL      bool
	PresignExpiryMin int

	// Chat transcript retention
	ChatRetentionDays int

	// Tracing
	OTLPEndpoint   string
	TracingEnabled bool
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017/abi_fashion"),
		DBName:      getEnv("DB_NAME", "abi_fashion"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),

		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenSecret:  getEnv("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTL:     getEnvInt("ADMIN_TOKEN_TTL_MINUTES", 60),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),

		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MinioEndpoint:    getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:   getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:   getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:      getEnv("MINIO_BUCKET", "gallery"),
		MinioUseSSL:      getEnvBool("MINIO_USE_SSL", false),
		PresignExpiryMin: getEnvInt("PRESIGN_EXPIRY_MINUTES", 60),

		ChatRetentionDays: getEnvInt("CHAT_RETENTION_DAYS", 90),

		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
	}

	// Validate required fields
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required - set it in .env file")
	}

	if cfg.AdminTokenSecret == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN_SECRET is required - set it in .env file")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
