package database

import (
	"catalog-api/models"
	"context"
)

// ==================== CATEGORY OPERATIONS ====================

// CreateCategory stamps and inserts a category
func (r *Repository) CreateCategory(ctx context.Context, c *models.Category) error {
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	return r.store.Insert(ctx, Categories, c.Key, c)
}

// GetCategories returns all categories in insertion order
func (r *Repository) GetCategories(ctx context.Context) ([]models.Category, error) {
	// Initialize with empty slice to avoid returning nil
	categories := make([]models.Category, 0)
	if err := r.store.FindAll(ctx, Categories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByKey returns ErrNotFound when no category has the key
func (r *Repository) GetCategoryByKey(ctx context.Context, key string) (*models.Category, error) {
	var c models.Category
	if err := r.store.FindOne(ctx, Categories, "key", key, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory replaces the stored category and bumps updatedAt
func (r *Repository) UpdateCategory(ctx context.Context, c *models.Category) error {
	c.UpdatedAt = now()
	return r.store.Replace(ctx, Categories, c.Key, c)
}

func (r *Repository) DeleteCategory(ctx context.Context, key string) error {
	return r.store.Delete(ctx, Categories, key)
}
