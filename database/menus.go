package database

import (
	"catalog-api/models"
	"context"
)

// ==================== MENU OPERATIONS ====================

func (r *Repository) CreateMenu(ctx context.Context, m *models.Menu) error {
	m.CreatedAt = now()
	m.UpdatedAt = m.CreatedAt
	return r.store.Insert(ctx, Menus, m.Key, m)
}

func (r *Repository) GetMenus(ctx context.Context) ([]models.Menu, error) {
	menus := make([]models.Menu, 0)
	if err := r.store.FindAll(ctx, Menus, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// GetMenusByCategory returns the menu items whose categoryId equals categoryID
func (r *Repository) GetMenusByCategory(ctx context.Context, categoryID string) ([]models.Menu, error) {
	menus := make([]models.Menu, 0)
	if err := r.store.Find(ctx, Menus, "categoryId", categoryID, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *Repository) GetMenuByKey(ctx context.Context, key string) (*models.Menu, error) {
	var m models.Menu
	if err := r.store.FindOne(ctx, Menus, "key", key, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) UpdateMenu(ctx context.Context, m *models.Menu) error {
	m.UpdatedAt = now()
	return r.store.Replace(ctx, Menus, m.Key, m)
}

func (r *Repository) DeleteMenu(ctx context.Context, key string) error {
	return r.store.Delete(ctx, Menus, key)
}
