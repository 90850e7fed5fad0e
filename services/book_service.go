package services

import (
	"catalog-api/models"
	"catalog-api/validator"
	"context"
	"fmt"
	"strings"
)

// BookService handles business logic for books
type BookService struct {
	repo          BookRepository
	categories    CategoryLookup
	validator     *validator.Validator
	checkCategory referenceCheck
}

// NewBookService creates a new book service
func NewBookService(repo BookRepository, categories CategoryLookup, v *validator.Validator) *BookService {
	return &BookService{
		repo:          repo,
		categories:    categories,
		validator:     v,
		checkCategory: categoryExists(categories),
	}
}

// List retrieves all books
func (bs *BookService) List(ctx context.Context) ([]models.Book, error) {
	return bs.repo.GetBooks(ctx)
}

// ListByCategory retrieves the books of one category.
// Returns ErrCategoryNotFound when the category itself does not exist.
func (bs *BookService) ListByCategory(ctx context.Context, categoryKey string) ([]models.Book, error) {
	if _, err := bs.categories.GetCategoryByKey(ctx, categoryKey); err != nil {
		return nil, translateReadError(err, ErrCategoryNotFound)
	}
	return bs.repo.GetBooksByCategory(ctx, categoryKey)
}

// Get retrieves a book by key
func (bs *BookService) Get(ctx context.Context, key string) (*models.Book, error) {
	b, err := bs.repo.GetBookByKey(ctx, key)
	if err != nil {
		return nil, translateReadError(err, ErrBookNotFound)
	}
	return b, nil
}

// Create validates and stores a new book
func (bs *BookService) Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	req.Key = strings.TrimSpace(req.Key)
	req.Category = strings.TrimSpace(req.Category)
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Description = strings.TrimSpace(req.Description)

	if err := bs.validator.Validate(&req); err != nil {
		return nil, err
	}

	if err := bs.checkCategory(ctx, req.Category); err != nil {
		return nil, err
	}

	b := &models.Book{
		Key:         newKey(req.Key),
		Category:    req.Category,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := bs.repo.CreateBook(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", translateWriteError(err, b.Key, ErrBookNotFound))
	}

	return b, nil
}

// Update merges the supplied fields into the stored book and re-validates it
func (bs *BookService) Update(ctx context.Context, key string, req models.UpdateBookRequest) (*models.Book, error) {
	b, err := bs.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	applyString(&b.Category, req.Category)
	applyString(&b.Title, req.Title)
	applyString(&b.Author, req.Author)
	applyString(&b.Description, req.Description)
	if req.Price != nil {
		b.Price = *req.Price
	}

	if err := bs.validator.Validate(b); err != nil {
		return nil, err
	}

	if err := bs.checkCategory(ctx, b.Category); err != nil {
		return nil, err
	}

	if err := bs.repo.UpdateBook(ctx, b); err != nil {
		return nil, fmt.Errorf("update book: %w", translateWriteError(err, key, ErrBookNotFound))
	}

	return b, nil
}

// Delete removes a book
func (bs *BookService) Delete(ctx context.Context, key string) error {
	if err := bs.repo.DeleteBook(ctx, key); err != nil {
		return translateReadError(err, ErrBookNotFound)
	}
	return nil
}
