package database

import (
	"catalog-api/models"
	"context"
)

// ==================== BOOK OPERATIONS ====================

// CreateBook stamps and inserts a book
func (r *Repository) CreateBook(ctx context.Context, b *models.Book) error {
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt
	return r.store.Insert(ctx, Books, b.Key, b)
}

// GetBooks returns all books in insertion order
func (r *Repository) GetBooks(ctx context.Context) ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := r.store.FindAll(ctx, Books, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBooksByCategory returns the books whose category field equals categoryKey
func (r *Repository) GetBooksByCategory(ctx context.Context, categoryKey string) ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := r.store.Find(ctx, Books, "category", categoryKey, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBookByKey returns ErrNotFound when no book has the key
func (r *Repository) GetBookByKey(ctx context.Context, key string) (*models.Book, error) {
	var b models.Book
	if err := r.store.FindOne(ctx, Books, "key", key, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBook replaces the stored book and bumps updatedAt
func (r *Repository) UpdateBook(ctx context.Context, b *models.Book) error {
	b.UpdatedAt = now()
	return r.store.Replace(ctx, Books, b.Key, b)
}

func (r *Repository) DeleteBook(ctx context.Context, key string) error {
	return r.store.Delete(ctx, Books, key)
}
