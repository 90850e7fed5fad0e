package handlers_test

import (
	"bytes"
	"catalog-api/app"
	"catalog-api/config/setup"
	"catalog-api/database"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp creates a temporary database and a Fiber app with every route registered
func setupTestApp(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(context.Background()), "Failed to run migrations")
	t.Cleanup(func() { db.Close(context.Background()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(db, logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(logger)})
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, application
}

// doRequest sends a JSON request and decodes the envelope
func doRequest(t *testing.T, fiberApp *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func createCategory(t *testing.T, fiberApp *fiber.App, key string) {
	t.Helper()
	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/categories", map[string]any{
		"key":         key,
		"category":    "Fiction",
		"description": "Novels and stories",
	})
	require.Equal(t, http.StatusCreated, status, body)
}

func createFoodCategory(t *testing.T, fiberApp *fiber.App, key string) {
	t.Helper()
	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/food-categories", map[string]any{
		"key":         key,
		"category":    "Drinks",
		"description": "Hot and cold drinks",
	})
	require.Equal(t, http.StatusCreated, status, body)
}

func TestBookLifecycle(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	createCategory(t, fiberApp, "fiction")

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/books", map[string]any{
		"key":         "dune",
		"category":    "fiction",
		"title":       "Dune",
		"author":      "Frank Herbert",
		"description": "Desert planet",
		"price":       9.99,
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, true, body["success"])
	book := body["data"].(map[string]any)
	assert.Equal(t, "dune", book["key"])
	assert.Equal(t, 9.99, book["price"])
	assert.NotEmpty(t, book["createdAt"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/books/category/fiction", nil)
	require.Equal(t, http.StatusOK, status)
	books := body["data"].([]any)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].(map[string]any)["title"])

	status, body = doRequest(t, fiberApp, http.MethodPut, "/api/books/dune", map[string]any{
		"key":   "other",
		"title": "Dune Messiah",
	})
	require.Equal(t, http.StatusOK, status, body)
	book = body["data"].(map[string]any)
	assert.Equal(t, "dune", book["key"])
	assert.Equal(t, "Dune Messiah", book["title"])
	assert.Equal(t, "Frank Herbert", book["author"])

	status, body = doRequest(t, fiberApp, http.MethodDelete, "/api/books/dune", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{}, body["data"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["data"])
}

func TestBookErrors(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	createCategory(t, fiberApp, "fiction")

	valid := func() map[string]any {
		return map[string]any{
			"key":         "dune",
			"category":    "fiction",
			"title":       "Dune",
			"author":      "Frank Herbert",
			"description": "Desert planet",
			"price":       9.99,
		}
	}

	tests := []struct {
		name            string
		method          string
		path            string
		body            any
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Unknown book",
			method:          http.MethodGet,
			path:            "/api/books/missing",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Book not found",
		},
		{
			name:   "Unknown category on create",
			method: http.MethodPost,
			path:   "/api/books",
			body: func() map[string]any {
				b := valid()
				b["category"] = "nope"
				return b
			}(),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid category",
		},
		{
			name:   "Negative price",
			method: http.MethodPost,
			path:   "/api/books",
			body: func() map[string]any {
				b := valid()
				b["price"] = -1
				return b
			}(),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "price cannot be negative",
		},
		{
			name:            "Malformed body",
			method:          http.MethodPost,
			path:            "/api/books",
			body:            "{",
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "Listing an unknown category",
			method:          http.MethodGet,
			path:            "/api/books/category/nope",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Category not found",
		},
		{
			name:            "Updating an unknown book",
			method:          http.MethodPut,
			path:            "/api/books/missing",
			body:            map[string]any{"title": "x"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Book not found",
		},
		{
			name:            "Deleting an unknown book",
			method:          http.MethodDelete,
			path:            "/api/books/missing",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Book not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, fiberApp, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["message"], tt.expectedMessage)
		})
	}
}

func TestCategoryValidation(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/categories", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "category is required")

	createCategory(t, fiberApp, "fiction")

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/categories", map[string]any{
		"key":         "fiction",
		"category":    "Again",
		"description": "Duplicate",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "key already exists", body["message"])
}

func TestMenuWithUnknownFoodCategory(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/menus", map[string]any{
		"categoryId":  "bogus",
		"name":        "Latte",
		"description": "Milk coffee",
		"price":       3.5,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Food category not found", body["message"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/menus", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["data"])
}

func TestMenuEmbedsCategory(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	createFoodCategory(t, fiberApp, "drinks")

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/menus", map[string]any{
		"key":         "latte",
		"categoryId":  "drinks",
		"name":        "Latte",
		"description": "Milk coffee",
		"price":       3.5,
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/menus/latte", nil)
	require.Equal(t, http.StatusOK, status)
	menu := body["data"].(map[string]any)
	assert.Equal(t, "drinks", menu["categoryId"])
	assert.Equal(t, "drinks", menu["category"].(map[string]any)["key"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/menus/category/drinks", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["data"], 1)

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/menus/category/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Category not found", body["message"])

	status, body = doRequest(t, fiberApp, http.MethodPut, "/api/menus/latte", map[string]any{"categoryId": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid food category", body["message"])

	// a dangling reference is reported as a null category
	status, _ = doRequest(t, fiberApp, http.MethodDelete, "/api/food-categories/drinks", nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/menus", nil)
	require.Equal(t, http.StatusOK, status)
	menus := body["data"].([]any)
	require.Len(t, menus, 1)
	assert.Nil(t, menus[0].(map[string]any)["category"])
}

func TestDeleteFoodCategoryTwice(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	createFoodCategory(t, fiberApp, "drinks")

	status, body := doRequest(t, fiberApp, http.MethodDelete, "/api/food-categories/drinks", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"success": true, "data": map[string]any{}}, body)

	status, body = doRequest(t, fiberApp, http.MethodDelete, "/api/food-categories/drinks", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"success": false, "message": "Food category not found"}, body)
}

func TestPages(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	t.Run("Root redirects to docs", func(t *testing.T) {
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/docs", resp.Header.Get("Location"))
	})

	t.Run("Docs page", func(t *testing.T) {
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "Redoc.init")
	})

	t.Run("Docs JSON", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/docs-json", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "2.0", body["swagger"])
		assert.Contains(t, body["paths"], "/books")
	})

	t.Run("Welcome", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/api", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
	})

	t.Run("Health", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("Unknown route", func(t *testing.T) {
		status, body := doRequest(t, fiberApp, http.MethodGet, "/nowhere", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Not found - /nowhere", body["message"])
	})
}
