package services

import (
	"catalog-api/database"
	"catalog-api/models"
	"catalog-api/validator"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// MenuService handles business logic for menu items.
// Read operations embed the referenced food category; a category that can
// no longer be resolved is left out instead of failing the request.
type MenuService struct {
	repo          MenuRepository
	categories    FoodCategoryRepository
	validator     *validator.Validator
	checkCategory referenceCheck
	logger        *slog.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(repo MenuRepository, categories FoodCategoryRepository, v *validator.Validator, logger *slog.Logger) *MenuService {
	return &MenuService{
		repo:          repo,
		categories:    categories,
		validator:     v,
		checkCategory: foodCategoryExists(categories),
		logger:        logger,
	}
}

// List retrieves all menu items with their categories
func (ms *MenuService) List(ctx context.Context) ([]models.MenuWithCategory, error) {
	menus, err := ms.repo.GetMenus(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*models.FoodCategory)
	categories, err := ms.categories.GetFoodCategories(ctx)
	if err != nil {
		ms.logger.Warn("failed to load food categories for menu list", "error", err)
	}
	for i := range categories {
		byKey[categories[i].Key] = &categories[i]
	}

	out := make([]models.MenuWithCategory, 0, len(menus))
	for _, m := range menus {
		out = append(out, models.MenuWithCategory{Menu: m, Category: byKey[m.CategoryID]})
	}
	return out, nil
}

// ListByCategory retrieves the menu items of one food category.
// Returns ErrFoodCategoryNotFound when the category itself does not exist.
func (ms *MenuService) ListByCategory(ctx context.Context, categoryID string) ([]models.MenuWithCategory, error) {
	category, err := ms.categories.GetFoodCategoryByKey(ctx, categoryID)
	if err != nil {
		return nil, translateReadError(err, ErrFoodCategoryNotFound)
	}

	menus, err := ms.repo.GetMenusByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]models.MenuWithCategory, 0, len(menus))
	for _, m := range menus {
		out = append(out, models.MenuWithCategory{Menu: m, Category: category})
	}
	return out, nil
}

// Get retrieves a menu item by key with its category
func (ms *MenuService) Get(ctx context.Context, key string) (*models.MenuWithCategory, error) {
	m, err := ms.repo.GetMenuByKey(ctx, key)
	if err != nil {
		return nil, translateReadError(err, ErrMenuNotFound)
	}

	return &models.MenuWithCategory{Menu: *m, Category: ms.lookupCategory(ctx, m.CategoryID)}, nil
}

// Create stores a new menu item. The food category is resolved before
// anything else; ErrFoodCategoryNotFound is returned when it does not exist.
func (ms *MenuService) Create(ctx context.Context, req models.CreateMenuRequest) (*models.MenuWithCategory, error) {
	req.Key = strings.TrimSpace(req.Key)
	req.CategoryID = strings.TrimSpace(req.CategoryID)
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	if req.CategoryID == "" {
		return nil, ErrFoodCategoryNotFound
	}
	category, err := ms.categories.GetFoodCategoryByKey(ctx, req.CategoryID)
	if err != nil {
		return nil, translateReadError(err, ErrFoodCategoryNotFound)
	}

	if err := ms.validator.Validate(&req); err != nil {
		return nil, err
	}

	m := &models.Menu{
		Key:         newKey(req.Key),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := ms.repo.CreateMenu(ctx, m); err != nil {
		return nil, fmt.Errorf("create menu: %w", translateWriteError(err, m.Key, ErrMenuNotFound))
	}

	return &models.MenuWithCategory{Menu: *m, Category: category}, nil
}

// Update merges the supplied fields into the stored menu item and re-validates it.
// An unknown categoryId is a validation failure here, not a not-found.
func (ms *MenuService) Update(ctx context.Context, key string, req models.UpdateMenuRequest) (*models.Menu, error) {
	m, err := ms.repo.GetMenuByKey(ctx, key)
	if err != nil {
		return nil, translateReadError(err, ErrMenuNotFound)
	}

	applyString(&m.CategoryID, req.CategoryID)
	applyString(&m.Name, req.Name)
	applyString(&m.Description, req.Description)
	if req.Price != nil {
		m.Price = *req.Price
	}

	if err := ms.validator.Validate(m); err != nil {
		return nil, err
	}

	if err := ms.checkCategory(ctx, m.CategoryID); err != nil {
		return nil, err
	}

	if err := ms.repo.UpdateMenu(ctx, m); err != nil {
		return nil, fmt.Errorf("update menu: %w", translateWriteError(err, key, ErrMenuNotFound))
	}

	return m, nil
}

// Delete removes a menu item
func (ms *MenuService) Delete(ctx context.Context, key string) error {
	if err := ms.repo.DeleteMenu(ctx, key); err != nil {
		return translateReadError(err, ErrMenuNotFound)
	}
	return nil
}

func (ms *MenuService) lookupCategory(ctx context.Context, categoryID string) *models.FoodCategory {
	category, err := ms.categories.GetFoodCategoryByKey(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			ms.logger.Warn("failed to load food category for menu", "category_id", categoryID, "error", err)
		}
		return nil
	}
	return category
}
