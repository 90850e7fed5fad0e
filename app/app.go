package app

import (
	"catalog-api/database"
	"catalog-api/services"
	"catalog-api/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store          database.Store
	Categories     *services.CategoryService
	FoodCategories *services.FoodCategoryService
	Books          *services.BookService
	Menus          *services.MenuService
	Logger         *slog.Logger
}

// New creates a new App instance with all dependencies
func New(store database.Store, logger *slog.Logger) *App {
	repo := database.NewRepository(store)
	v := validator.New()

	return &App{
		Store:          store,
		Categories:     services.NewCategoryService(repo, v),
		FoodCategories: services.NewFoodCategoryService(repo, v),
		Books:          services.NewBookService(repo, repo, v),
		Menus:          services.NewMenuService(repo, repo, v, logger),
		Logger:         logger,
	}
}
