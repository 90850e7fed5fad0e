package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	BaseURL     string
	LogLevel    string
	CORSOrigins string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	port := GetEnv("PORT", "3002")

	AppConfig = &Config{
		Port:        port,
		Env:         GetEnv("ENV", "development"),
		DatabaseURL: GetEnv("DATABASE_URL", "sqlite://./data/catalog.db"),
		BaseURL:     GetEnv("BASE_URL", "http://localhost:"+port),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
