package handlers

import (
	"catalog-api/app"
	"catalog-api/docs"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>API Documentation</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</head>
<body>
  <div id="redoc"></div>
  <script>
    Redoc.init("/docs-json", {
      hideDownloadButton: true,
      theme: { colors: { primary: { main: "#2c3e50" } } }
    }, document.getElementById("redoc"));
  </script>
</body>
</html>`

// RedirectToDocs sends visitors of the root path to the documentation page
func RedirectToDocs(c *fiber.Ctx) error {
	return c.Redirect("/docs", fiber.StatusFound)
}

func DocsPage(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(docsPage)
}

func DocsJSON(c *fiber.Ctx) error {
	c.Set("Content-Type", fiber.MIMEApplicationJSON)
	return c.SendString(docs.JSON())
}

func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Welcome to Catalog API!",
		"version": docs.SwaggerInfo.Version,
	})
}

// Health reports whether the document store is reachable
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := a.Store.Ping(ctx); err != nil {
			a.Logger.Warn("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// NotFound is the catch-all for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return notFound(c, "Not found - "+c.OriginalURL())
}
