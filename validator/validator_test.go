package validator

import (
	"catalog-api/models"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestValidator_CreateBook(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateBookRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid book request",
			req: models.CreateBookRequest{
				Category:    "fiction",
				Title:       "Dune",
				Author:      "Herbert",
				Description: "Spice",
				Price:       price(15),
			},
			wantError: false,
		},
		{
			name: "Zero price is valid",
			req: models.CreateBookRequest{
				Category:    "fiction",
				Title:       "Free",
				Author:      "Anon",
				Description: "Free book",
				Price:       price(0),
			},
			wantError: false,
		},
		{
			name: "Missing title",
			req: models.CreateBookRequest{
				Category:    "fiction",
				Author:      "Herbert",
				Description: "Spice",
				Price:       price(15),
			},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name: "Missing price",
			req: models.CreateBookRequest{
				Category:    "fiction",
				Title:       "Dune",
				Author:      "Herbert",
				Description: "Spice",
			},
			wantError: true,
			errorMsg:  "price is required",
		},
		{
			name: "Negative price",
			req: models.CreateBookRequest{
				Category:    "fiction",
				Title:       "Dune",
				Author:      "Herbert",
				Description: "Spice",
				Price:       price(-1),
			},
			wantError: true,
			errorMsg:  "price cannot be negative",
		},
		{
			name: "Key with slash",
			req: models.CreateBookRequest{
				Key:         "a/b",
				Category:    "fiction",
				Title:       "Dune",
				Author:      "Herbert",
				Description: "Spice",
				Price:       price(15),
			},
			wantError: true,
			errorMsg:  "key may only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Menu(t *testing.T) {
	v := New()

	t.Run("Merged menu with negative price fails", func(t *testing.T) {
		m := models.Menu{Key: "m1", CategoryID: "c1", Name: "Soup", Description: "Hot", Price: -5}
		err := v.Validate(&m)
		require.Error(t, err)
		assert.Equal(t, "price cannot be negative", err.Error())
	})

	t.Run("Multiple missing fields are joined", func(t *testing.T) {
		req := models.CreateMenuRequest{Price: price(1)}
		err := v.Validate(&req)
		require.Error(t, err)

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Len(t, verrs, 3)
		assert.Equal(t, "categoryId", verrs[0].Field)
		assert.Equal(t, "required", verrs[0].Tag)
		assert.True(t, strings.Contains(err.Error(), "; "))
	})
}

func TestValidator_EntityKey(t *testing.T) {
	v := New()

	valid := []string{"", "abc", "3f2b6c1e-0d4a-4f7b-9c1e-2a3b4c5d6e7f", "a.b_c~d-e"}
	for _, key := range valid {
		req := models.CreateCategoryRequest{Key: key, Category: "Fiction", Description: "Fiction books"}
		assert.NoError(t, v.Validate(&req), "key %q should be valid", key)
	}

	invalid := []string{"with space", "a/b", "a?b", strings.Repeat("k", 129)}
	for _, key := range invalid {
		req := models.CreateCategoryRequest{Key: key, Category: "Fiction", Description: "Fiction books"}
		assert.Error(t, v.Validate(&req), "key %q should be invalid", key)
	}
}

func TestFieldError(t *testing.T) {
	err := fmt.Errorf("create book: %w", FieldError("category", "exists", "nope", "Invalid category"))

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "create book: Invalid category", err.Error())
	assert.False(t, IsValidationError(errors.New("boom")))
}
