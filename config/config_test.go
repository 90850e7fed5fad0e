package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "BASE_URL", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	Load()

	assert.Equal(t, "3002", AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "sqlite://./data/catalog.db", AppConfig.DatabaseURL)
	assert.Equal(t, "http://localhost:3002", AppConfig.BaseURL)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, "*", AppConfig.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017/catalog")
	t.Setenv("BASE_URL", "")

	Load()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "mongodb://localhost:27017/catalog", AppConfig.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", AppConfig.BaseURL, "base url follows the port")
}
