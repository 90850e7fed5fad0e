package services

import (
	"catalog-api/models"
	"context"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockCategoryRepository is a mock implementation of CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

var _ CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) GetCategoryByKey(ctx context.Context, key string) (*models.Category, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockFoodCategoryRepository is a mock implementation of FoodCategoryRepository interface
type MockFoodCategoryRepository struct {
	mock.Mock
}

var _ FoodCategoryRepository = (*MockFoodCategoryRepository)(nil)

func (m *MockFoodCategoryRepository) GetFoodCategoryByKey(ctx context.Context, key string) (*models.FoodCategory, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) GetFoodCategories(ctx context.Context) ([]models.FoodCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) CreateFoodCategory(ctx context.Context, c *models.FoodCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFoodCategoryRepository) UpdateFoodCategory(ctx context.Context, c *models.FoodCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFoodCategoryRepository) DeleteFoodCategory(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockBookRepository is a mock implementation of BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

var _ BookRepository = (*MockBookRepository)(nil)

func (m *MockBookRepository) GetBooks(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetBooksByCategory(ctx context.Context, categoryKey string) ([]models.Book, error) {
	args := m.Called(ctx, categoryKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetBookByKey(ctx context.Context, key string) (*models.Book, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) CreateBook(ctx context.Context, b *models.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookRepository) UpdateBook(ctx context.Context, b *models.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteBook(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of MenuRepository interface
type MockMenuRepository struct {
	mock.Mock
}

var _ MenuRepository = (*MockMenuRepository)(nil)

func (m *MockMenuRepository) GetMenus(ctx context.Context) ([]models.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetMenusByCategory(ctx context.Context, categoryID string) ([]models.Menu, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetMenuByKey(ctx context.Context, key string) (*models.Menu, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Menu), args.Error(1)
}

func (m *MockMenuRepository) CreateMenu(ctx context.Context, menu *models.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateMenu(ctx context.Context, menu *models.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteMenu(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func ptr[T any](v T) *T { return &v }
