package services

import (
	"catalog-api/models"
	"catalog-api/validator"
	"context"
	"fmt"
	"strings"
)

// FoodCategoryService handles business logic for menu categories
type FoodCategoryService struct {
	repo      FoodCategoryRepository
	validator *validator.Validator
}

// NewFoodCategoryService creates a new food category service
func NewFoodCategoryService(repo FoodCategoryRepository, v *validator.Validator) *FoodCategoryService {
	return &FoodCategoryService{
		repo:      repo,
		validator: v,
	}
}

// List retrieves all food categories
func (fs *FoodCategoryService) List(ctx context.Context) ([]models.FoodCategory, error) {
	return fs.repo.GetFoodCategories(ctx)
}

// Get retrieves a food category by key
func (fs *FoodCategoryService) Get(ctx context.Context, key string) (*models.FoodCategory, error) {
	c, err := fs.repo.GetFoodCategoryByKey(ctx, key)
	if err != nil {
		return nil, translateReadError(err, ErrFoodCategoryNotFound)
	}
	return c, nil
}

// Create validates and stores a new food category
func (fs *FoodCategoryService) Create(ctx context.Context, req models.CreateFoodCategoryRequest) (*models.FoodCategory, error) {
	req.Key = strings.TrimSpace(req.Key)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)

	if err := fs.validator.Validate(&req); err != nil {
		return nil, err
	}

	c := &models.FoodCategory{
		Key:         newKey(req.Key),
		Category:    req.Category,
		Description: req.Description,
	}

	if err := fs.repo.CreateFoodCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create food category: %w", translateWriteError(err, c.Key, ErrFoodCategoryNotFound))
	}

	return c, nil
}

// Update merges the supplied fields into the stored food category
func (fs *FoodCategoryService) Update(ctx context.Context, key string, req models.UpdateFoodCategoryRequest) (*models.FoodCategory, error) {
	c, err := fs.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	applyString(&c.Category, req.Category)
	applyString(&c.Description, req.Description)

	if err := fs.validator.Validate(c); err != nil {
		return nil, err
	}

	if err := fs.repo.UpdateFoodCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("update food category: %w", translateWriteError(err, key, ErrFoodCategoryNotFound))
	}

	return c, nil
}

// Delete removes a food category. Menu items keep their categoryId.
func (fs *FoodCategoryService) Delete(ctx context.Context, key string) error {
	if err := fs.repo.DeleteFoodCategory(ctx, key); err != nil {
		return translateReadError(err, ErrFoodCategoryNotFound)
	}
	return nil
}
