package handlers

import (
	"catalog-api/services"
	"catalog-api/validator"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the envelope returned for every failure
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Book not found"`
}

var notFoundMessages = map[error]string{
	services.ErrBookNotFound:         "Book not found",
	services.ErrCategoryNotFound:     "Category not found",
	services.ErrFoodCategoryNotFound: "Food category not found",
	services.ErrMenuNotFound:         "Menu not found",
}

func success(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func deleted(c *fiber.Ctx) error {
	return success(c, fiber.Map{})
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return failure(c, fiber.StatusBadRequest, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return failure(c, fiber.StatusNotFound, message)
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return failure(c, fiber.StatusInternalServerError, message)
}

// respondError maps service errors onto the envelope:
// validation failures are 400, missing records 404, anything else 500.
func respondError(c *fiber.Ctx, err error, message string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return badRequest(c, verrs.Error())
	}

	for target, msg := range notFoundMessages {
		if errors.Is(err, target) {
			return notFound(c, msg)
		}
	}

	return serverErrorWithDetails(c, message, err)
}
