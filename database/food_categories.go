package database

import (
	"catalog-api/models"
	"context"
)

// ==================== FOOD CATEGORY OPERATIONS ====================

func (r *Repository) CreateFoodCategory(ctx context.Context, c *models.FoodCategory) error {
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	return r.store.Insert(ctx, FoodCategories, c.Key, c)
}

func (r *Repository) GetFoodCategories(ctx context.Context) ([]models.FoodCategory, error) {
	categories := make([]models.FoodCategory, 0)
	if err := r.store.FindAll(ctx, FoodCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) GetFoodCategoryByKey(ctx context.Context, key string) (*models.FoodCategory, error) {
	var c models.FoodCategory
	if err := r.store.FindOne(ctx, FoodCategories, "key", key, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) UpdateFoodCategory(ctx context.Context, c *models.FoodCategory) error {
	c.UpdatedAt = now()
	return r.store.Replace(ctx, FoodCategories, c.Key, c)
}

func (r *Repository) DeleteFoodCategory(ctx context.Context, key string) error {
	return r.store.Delete(ctx, FoodCategories, key)
}
