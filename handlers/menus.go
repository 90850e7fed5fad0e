package handlers

import (
	"catalog-api/app"
	"catalog-api/models"
	"catalog-api/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreateMenu creates a menu item. An unknown food category is reported as
// 404 before anything is written.
//
//	@Summary	Create a menu item
//	@Tags		Menus
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CreateMenuRequest	true	"Payload"
//	@Success	201	{object}	object{success=bool,data=models.MenuWithCategory}	"Created"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	404	{object}	ErrorResponse	"Food category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus [post]
func CreateMenu(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateMenuRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		menu, err := a.Menus.Create(c.UserContext(), req)
		if err != nil {
			return respondError(c, err, "Failed to create menu")
		}

		return created(c, menu)
	}
}

// GetMenus lists all menu items with their categories
//
//	@Summary	List all menu items
//	@Tags		Menus
//	@Produce	json
//	@Success	200	{object}	object{success=bool,data=[]models.MenuWithCategory}	"OK"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus [get]
func GetMenus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menus, err := a.Menus.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch menus", err)
		}
		return success(c, menus)
	}
}

// GetMenusByCategory lists the menu items of one food category
//
//	@Summary	List menu items of a food category
//	@Tags		Menus
//	@Produce	json
//	@Param		categoryId	path		string	true	"Food category key"
//	@Success	200	{object}	object{success=bool,data=[]models.MenuWithCategory}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus/category/{categoryId} [get]
func GetMenusByCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menus, err := a.Menus.ListByCategory(c.UserContext(), c.Params("categoryId"))
		if errors.Is(err, services.ErrFoodCategoryNotFound) {
			return notFound(c, "Category not found")
		}
		if err != nil {
			return respondError(c, err, "Failed to fetch menus")
		}
		return success(c, menus)
	}
}

// GetMenu returns one menu item by key with its category
//
//	@Summary	Get a menu item by key
//	@Tags		Menus
//	@Produce	json
//	@Param		key	path		string	true	"menu key"
//	@Success	200	{object}	object{success=bool,data=models.MenuWithCategory}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Menu not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus/{key} [get]
func GetMenu(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menu, err := a.Menus.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			return respondError(c, err, "Failed to fetch menu")
		}
		return success(c, menu)
	}
}

// UpdateMenu applies a partial update to a menu item
//
//	@Summary	Update a menu item
//	@Tags		Menus
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string						true	"menu key"
//	@Param		body	body		models.UpdateMenuRequest	true	"Payload"
//	@Success	200	{object}	object{success=bool,data=models.Menu}	"OK"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	404	{object}	ErrorResponse	"Menu not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus/{key} [put]
func UpdateMenu(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateMenuRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		menu, err := a.Menus.Update(c.UserContext(), c.Params("key"), req)
		if err != nil {
			return respondError(c, err, "Failed to update menu")
		}
		return success(c, menu)
	}
}

// DeleteMenu removes a menu item
//
//	@Summary	Delete a menu item
//	@Tags		Menus
//	@Produce	json
//	@Param		key	path		string	true	"menu key"
//	@Success	200	{object}	object{success=bool,data=object}	"Deleted"
//	@Failure	404	{object}	ErrorResponse	"Menu not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/menus/{key} [delete]
func DeleteMenu(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Menus.Delete(c.UserContext(), c.Params("key")); err != nil {
			return respondError(c, err, "Failed to delete menu")
		}
		return deleted(c)
	}
}
