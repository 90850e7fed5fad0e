package setup

import (
	"catalog-api/app"
	"catalog-api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Documentation
	fiberApp.Get("/", handlers.RedirectToDocs)
	fiberApp.Get("/docs", handlers.DocsPage)
	fiberApp.Get("/api-docs", handlers.DocsPage)
	fiberApp.Get("/docs-json", handlers.DocsJSON)
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")
	api.Get("/", handlers.Welcome)

	RegisterBookRoutes(api.Group("/books"), application)
	RegisterCategoryRoutes(api.Group("/categories"), application)
	RegisterFoodCategoryRoutes(api.Group("/food-categories"), application)
	RegisterMenuRoutes(api.Group("/menus"), application)

	// Must stay last
	fiberApp.Use(handlers.NotFound)
}

func RegisterBookRoutes(r fiber.Router, a *app.App) {
	r.Post("/", handlers.CreateBook(a))
	r.Get("/", handlers.GetBooks(a))
	r.Get("/category/:categoryKey", handlers.GetBooksByCategory(a))
	r.Get("/:key", handlers.GetBook(a))
	r.Put("/:key", handlers.UpdateBook(a))
	r.Delete("/:key", handlers.DeleteBook(a))
}

func RegisterCategoryRoutes(r fiber.Router, a *app.App) {
	r.Post("/", handlers.CreateCategory(a))
	r.Get("/", handlers.GetCategories(a))
	r.Get("/:key", handlers.GetCategory(a))
	r.Put("/:key", handlers.UpdateCategory(a))
	r.Delete("/:key", handlers.DeleteCategory(a))
}

func RegisterFoodCategoryRoutes(r fiber.Router, a *app.App) {
	r.Post("/", handlers.CreateFoodCategory(a))
	r.Get("/", handlers.GetFoodCategories(a))
	r.Get("/:key", handlers.GetFoodCategory(a))
	r.Put("/:key", handlers.UpdateFoodCategory(a))
	r.Delete("/:key", handlers.DeleteFoodCategory(a))
}

func RegisterMenuRoutes(r fiber.Router, a *app.App) {
	r.Post("/", handlers.CreateMenu(a))
	r.Get("/", handlers.GetMenus(a))
	r.Get("/category/:categoryId", handlers.GetMenusByCategory(a))
	r.Get("/:key", handlers.GetMenu(a))
	r.Put("/:key", handlers.UpdateMenu(a))
	r.Delete("/:key", handlers.DeleteMenu(a))
}
