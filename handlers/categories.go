package handlers

import (
	"catalog-api/app"
	"catalog-api/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a new book category
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CreateCategoryRequest	true	"Payload"
//	@Success	201	{object}	object{success=bool,data=models.Category}	"Created"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/categories [post]
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		category, err := a.Categories.Create(c.UserContext(), req)
		if err != nil {
			return respondError(c, err, "Failed to create category")
		}

		return created(c, category)
	}
}

// GetCategories lists all categories
//
//	@Summary	List all categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{object}	object{success=bool,data=[]models.Category}	"OK"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/categories [get]
func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.Categories.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch categories", err)
		}
		return success(c, categories)
	}
}

// GetCategory returns one category by key
//
//	@Summary	Get a category by key
//	@Tags		Categories
//	@Produce	json
//	@Param		key	path		string	true	"category key"
//	@Success	200	{object}	object{success=bool,data=models.Category}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/categories/{key} [get]
func GetCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := a.Categories.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			return respondError(c, err, "Failed to fetch category")
		}
		return success(c, category)
	}
}

// UpdateCategory applies a partial update to a category
//
//	@Summary	Update a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string							true	"category key"
//	@Param		body	body		models.UpdateCategoryRequest	true	"Payload"
//	@Success	200	{object}	object{success=bool,data=models.Category}	"OK"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	404	{object}	ErrorResponse	"Category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/categories/{key} [put]
func UpdateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		category, err := a.Categories.Update(c.UserContext(), c.Params("key"), req)
		if err != nil {
			return respondError(c, err, "Failed to update category")
		}
		return success(c, category)
	}
}

// DeleteCategory removes a category
//
//	@Summary	Delete a category
//	@Tags		Categories
//	@Produce	json
//	@Param		key	path		string	true	"category key"
//	@Success	200	{object}	object{success=bool,data=object}	"Deleted"
//	@Failure	404	{object}	ErrorResponse	"Category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/categories/{key} [delete]
func DeleteCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Categories.Delete(c.UserContext(), c.Params("key")); err != nil {
			return respondError(c, err, "Failed to delete category")
		}
		return deleted(c)
	}
}
