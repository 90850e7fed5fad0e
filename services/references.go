package services

import (
	"catalog-api/database"
	"catalog-api/validator"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// referenceCheck runs before a write. It returns nil when value names an
// existing record, a validator.ValidationErrors carrying the reason when it
// does not, and any other error when the lookup itself failed.
type referenceCheck func(ctx context.Context, value string) error

func categoryExists(lookup CategoryLookup) referenceCheck {
	return func(ctx context.Context, value string) error {
		_, err := lookup.GetCategoryByKey(ctx, value)
		if errors.Is(err, database.ErrNotFound) {
			return validator.FieldError("category", "exists", value, "Invalid category")
		}
		return err
	}
}

func foodCategoryExists(lookup FoodCategoryLookup) referenceCheck {
	return func(ctx context.Context, value string) error {
		_, err := lookup.GetFoodCategoryByKey(ctx, value)
		if errors.Is(err, database.ErrNotFound) {
			return validator.FieldError("categoryId", "exists", value, "Invalid food category")
		}
		return err
	}
}

// newKey returns key when the caller supplied one, otherwise a fresh UUID
func newKey(key string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}
	return uuid.New().String()
}

// translateWriteError maps store errors from inserts and replaces
func translateWriteError(err error, key string, notFound error) error {
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		return validator.FieldError("key", "unique", key, "key already exists")
	case errors.Is(err, database.ErrNotFound):
		return notFound
	}
	return err
}

// translateReadError maps a missing document to the entity's not-found error
func translateReadError(err error, notFound error) error {
	if errors.Is(err, database.ErrNotFound) {
		return notFound
	}
	return err
}

// applyString trims and copies an optional update field onto dst
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
