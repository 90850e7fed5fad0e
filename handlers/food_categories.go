package handlers

import (
	"catalog-api/app"
	"catalog-api/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFoodCategory creates a new food category
//
//	@Summary	Create a food category
//	@Tags		Food Categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CreateFoodCategoryRequest	true	"Payload"
//	@Success	201	{object}	object{success=bool,data=models.FoodCategory}	"Created"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/food-categories [post]
func CreateFoodCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFoodCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		category, err := a.FoodCategories.Create(c.UserContext(), req)
		if err != nil {
			return respondError(c, err, "Failed to create food category")
		}

		return created(c, category)
	}
}

// GetFoodCategories lists all food categories
//
//	@Summary	List all food categories
//	@Tags		Food Categories
//	@Produce	json
//	@Success	200	{object}	object{success=bool,data=[]models.FoodCategory}	"OK"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/food-categories [get]
func GetFoodCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.FoodCategories.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch food categories", err)
		}
		return success(c, categories)
	}
}

// GetFoodCategory returns one food category by key
//
//	@Summary	Get a food category by key
//	@Tags		Food Categories
//	@Produce	json
//	@Param		key	path		string	true	"food category key"
//	@Success	200	{object}	object{success=bool,data=models.FoodCategory}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Food category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/food-categories/{key} [get]
func GetFoodCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := a.FoodCategories.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			return respondError(c, err, "Failed to fetch food category")
		}
		return success(c, category)
	}
}

// UpdateFoodCategory applies a partial update to a food category
//
//	@Summary	Update a food category
//	@Tags		Food Categories
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string								true	"food category key"
//	@Param		body	body		models.UpdateFoodCategoryRequest	true	"Payload"
//	@Success	200	{object}	object{success=bool,data=models.FoodCategory}	"OK"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	404	{object}	ErrorResponse	"Food category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/food-categories/{key} [put]
func UpdateFoodCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateFoodCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		category, err := a.FoodCategories.Update(c.UserContext(), c.Params("key"), req)
		if err != nil {
			return respondError(c, err, "Failed to update food category")
		}
		return success(c, category)
	}
}

// DeleteFoodCategory removes a food category
//
//	@Summary	Delete a food category
//	@Tags		Food Categories
//	@Produce	json
//	@Param		key	path		string	true	"food category key"
//	@Success	200	{object}	object{success=bool,data=object}	"Deleted"
//	@Failure	404	{object}	ErrorResponse	"Food category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/food-categories/{key} [delete]
func DeleteFoodCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.FoodCategories.Delete(c.UserContext(), c.Params("key")); err != nil {
			return respondError(c, err, "Failed to delete food category")
		}
		return deleted(c)
	}
}
