package services

import (
	"catalog-api/models"
	"catalog-api/validator"
	"context"
	"fmt"
	"strings"
)

// CategoryService handles business logic for book categories
type CategoryService struct {
	repo      CategoryRepository
	validator *validator.Validator
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: v,
	}
}

// List retrieves all categories
func (cs *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cs.repo.GetCategories(ctx)
}

// Get retrieves a category by key
func (cs *CategoryService) Get(ctx context.Context, key string) (*models.Category, error) {
	c, err := cs.repo.GetCategoryByKey(ctx, key)
	if err != nil {
		return nil, translateReadError(err, ErrCategoryNotFound)
	}
	return c, nil
}

// Create validates and stores a new category
func (cs *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	req.Key = strings.TrimSpace(req.Key)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)

	if err := cs.validator.Validate(&req); err != nil {
		return nil, err
	}

	c := &models.Category{
		Key:         newKey(req.Key),
		Category:    req.Category,
		Description: req.Description,
	}

	if err := cs.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", translateWriteError(err, c.Key, ErrCategoryNotFound))
	}

	return c, nil
}

// Update merges the supplied fields into the stored category
func (cs *CategoryService) Update(ctx context.Context, key string, req models.UpdateCategoryRequest) (*models.Category, error) {
	c, err := cs.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	applyString(&c.Category, req.Category)
	applyString(&c.Description, req.Description)

	if err := cs.validator.Validate(c); err != nil {
		return nil, err
	}

	if err := cs.repo.UpdateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", translateWriteError(err, key, ErrCategoryNotFound))
	}

	return c, nil
}

// Delete removes a category. Books referencing it are left untouched.
func (cs *CategoryService) Delete(ctx context.Context, key string) error {
	if err := cs.repo.DeleteCategory(ctx, key); err != nil {
		return translateReadError(err, ErrCategoryNotFound)
	}
	return nil
}
