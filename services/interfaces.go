package services

import (
	"catalog-api/models"
	"context"
)

// CategoryLookup resolves a category key, returning database.ErrNotFound when absent
type CategoryLookup interface {
	GetCategoryByKey(ctx context.Context, key string) (*models.Category, error)
}

// FoodCategoryLookup resolves a food category key, returning database.ErrNotFound when absent
type FoodCategoryLookup interface {
	GetFoodCategoryByKey(ctx context.Context, key string) (*models.FoodCategory, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	CategoryLookup
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, key string) error
}

// FoodCategoryRepository defines the interface for food category data access
type FoodCategoryRepository interface {
	FoodCategoryLookup
	GetFoodCategories(ctx context.Context) ([]models.FoodCategory, error)
	CreateFoodCategory(ctx context.Context, c *models.FoodCategory) error
	UpdateFoodCategory(ctx context.Context, c *models.FoodCategory) error
	DeleteFoodCategory(ctx context.Context, key string) error
}

// BookRepository defines the interface for book data access
type BookRepository interface {
	GetBooks(ctx context.Context) ([]models.Book, error)
	GetBooksByCategory(ctx context.Context, categoryKey string) ([]models.Book, error)
	GetBookByKey(ctx context.Context, key string) (*models.Book, error)
	CreateBook(ctx context.Context, b *models.Book) error
	UpdateBook(ctx context.Context, b *models.Book) error
	DeleteBook(ctx context.Context, key string) error
}

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	GetMenus(ctx context.Context) ([]models.Menu, error)
	GetMenusByCategory(ctx context.Context, categoryID string) ([]models.Menu, error)
	GetMenuByKey(ctx context.Context, key string) (*models.Menu, error)
	CreateMenu(ctx context.Context, m *models.Menu) error
	UpdateMenu(ctx context.Context, m *models.Menu) error
	DeleteMenu(ctx context.Context, key string) error
}
