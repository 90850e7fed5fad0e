package setup

import (
	"catalog-api/app"
	"catalog-api/database"
	"catalog-api/docs"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// InitStore opens the document store named by url and runs migrations
func InitStore(ctx context.Context, url string, logger *slog.Logger) (database.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := database.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := store.Ping(ctx); err != nil {
		store.Close(ctx)
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close(ctx)
		return nil, err
	}

	logger.Info("database initialized", "backend", fmt.Sprintf("%T", store))
	return store, nil
}

// InitApp initializes the application with all dependencies
func InitApp(store database.Store, baseURL string, logger *slog.Logger) (*app.App, error) {
	if err := docs.Configure(baseURL); err != nil {
		return nil, err
	}

	application := app.New(store, logger)
	logger.Info("application initialized", "base_url", baseURL)

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(ctx context.Context, store database.Store, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if store != nil {
		if err := store.Close(ctx); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
