package database

import (
	"context"
	"errors"
	"strings"
)

// Collection names
const (
	Categories     = "categories"
	FoodCategories = "foodcategories"
	Books          = "books"
	Menus          = "menus"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is a minimal document store. Documents are addressed by their key
// and may be looked up by any top-level field with an exact match.
// Results are decoded into out, which must be a pointer to a struct
// (FindOne) or to a slice of structs (FindAll, Find).
type Store interface {
	Insert(ctx context.Context, collection, key string, doc any) error
	FindAll(ctx context.Context, collection string, out any) error
	FindOne(ctx context.Context, collection, field, value string, out any) error
	Find(ctx context.Context, collection, field, value string, out any) error
	Replace(ctx context.Context, collection, key string, doc any) error
	Delete(ctx context.Context, collection, key string) error

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// index describes a secondary index on a collection field
type index struct {
	collection string
	field      string
}

var secondaryIndexes = []index{
	{Books, "category"},
	{Menus, "categoryId"},
	{Menus, "name"},
	{Menus, "price"},
}

var collections = []string{Categories, FoodCategories, Books, Menus}

// Open picks a backend from the connection string:
// mongodb:// and mongodb+srv:// go to MongoDB, sqlite://, file: and bare paths to SQLite.
func Open(ctx context.Context, url string) (Store, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return NewMongo(ctx, url)
	case strings.HasPrefix(url, "sqlite://"):
		return New(strings.TrimPrefix(url, "sqlite://"))
	case strings.HasPrefix(url, "file:"):
		return New(strings.TrimPrefix(url, "file:"))
	default:
		return New(url)
	}
}
