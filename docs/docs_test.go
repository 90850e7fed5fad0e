package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestJSONIsValidSwagger(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON()), &doc))

	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "/api", doc["basePath"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{
		"/books", "/books/category/{categoryKey}", "/books/{key}",
		"/categories", "/categories/{key}",
		"/food-categories", "/food-categories/{key}",
		"/menus", "/menus/category/{categoryId}", "/menus/{key}",
	} {
		assert.Contains(t, paths, p)
	}
}

func TestConfigure(t *testing.T) {
	host, schemes := SwaggerInfo.Host, SwaggerInfo.Schemes
	defer func() {
		SwaggerInfo.Host, SwaggerInfo.Schemes = host, schemes
	}()

	require.NoError(t, Configure("https://catalog.example.com"))

	var doc struct {
		Host    string   `json:"host"`
		Schemes []string `json:"schemes"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON()), &doc))
	assert.Equal(t, "catalog.example.com", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)

	assert.Error(t, Configure("not a url"))
}

func TestRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	assert.Contains(t, doc, "Catalog API Documentation")
}

var (
	responseAnnotation = regexp.MustCompile(`@(?:Success|Failure)\s+(\d{3})\s+\{object\}\s+(\S+)\s+"([^"]*)"`)
	routerAnnotation   = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)
	descAnnotation     = regexp.MustCompile(`@description\s+(.+)`)
)

type operation struct {
	Responses map[string]struct {
		Description string `json:"description"`
		Schema      struct {
			Ref        string         `json:"$ref"`
			Properties map[string]any `json:"properties"`
		} `json:"schema"`
	} `json:"responses"`
}

// TestTemplateMatchesAnnotations keeps the registered template in step with
// the handler annotations it is written from.
func TestTemplateMatchesAnnotations(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON()), &doc))

	files, err := filepath.Glob(filepath.Join("..", "handlers", "*.go"))
	require.NoError(t, err)

	seen := 0
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		type response struct{ schema, description string }
		pending := map[string]response{}
		for _, line := range strings.Split(string(src), "\n") {
			if m := responseAnnotation.FindStringSubmatch(line); m != nil {
				pending[m[1]] = response{schema: m[2], description: m[3]}
				continue
			}
			m := routerAnnotation.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			path, method := m[1], m[2]
			op, ok := doc.Paths[path][method]
			require.True(t, ok, "%s %s is annotated but missing from the template", method, path)
			require.Len(t, op.Responses, len(pending), "%s %s", method, path)

			for code, want := range pending {
				got, ok := op.Responses[code]
				require.True(t, ok, "%s %s: no %s response", method, path, code)
				assert.Equal(t, want.description, got.Description, "%s %s %s", method, path, code)

				if want.schema == "ErrorResponse" {
					assert.Equal(t, "#/definitions/handlers.ErrorResponse", got.Schema.Ref, "%s %s %s", method, path, code)
				} else {
					assert.True(t, strings.HasPrefix(want.schema, "object{success=bool,data="), "%s %s %s", method, path, code)
					assert.Contains(t, got.Schema.Properties, "success", "%s %s %s", method, path, code)
					assert.Contains(t, got.Schema.Properties, "data", "%s %s %s", method, path, code)
				}
			}

			pending = map[string]response{}
			seen++
		}
	}

	total := 0
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	assert.Equal(t, total, seen, "every documented operation has an annotated handler")
}

func TestDescriptionMatchesMain(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "main.go"))
	require.NoError(t, err)

	m := descAnnotation.FindStringSubmatch(string(src))
	require.NotNil(t, m)
	assert.Equal(t, strings.TrimSpace(m[1]), SwaggerInfo.Description)
}

func TestErrorResponseExample(t *testing.T) {
	var doc struct {
		Definitions map[string]struct {
			Properties map[string]struct {
				Example any `json:"example"`
			} `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON()), &doc))

	props := doc.Definitions["handlers.ErrorResponse"].Properties
	assert.Equal(t, false, props["success"].Example)
	assert.Equal(t, "Book not found", props["message"].Example)
}
