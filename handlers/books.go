package handlers

import (
	"catalog-api/app"
	"catalog-api/models"

	"github.com/gofiber/fiber/v2"
)

// CreateBook creates a new book in an existing category
//
//	@Summary	Create a book
//	@Tags		Books
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CreateBookRequest	true	"Payload"
//	@Success	201	{object}	object{success=bool,data=models.Book}	"Created"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books [post]
func CreateBook(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateBookRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		book, err := a.Books.Create(c.UserContext(), req)
		if err != nil {
			return respondError(c, err, "Failed to create book")
		}

		return created(c, book)
	}
}

// GetBooks lists all books
//
//	@Summary	List all books
//	@Tags		Books
//	@Produce	json
//	@Success	200	{object}	object{success=bool,data=[]models.Book}	"OK"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books [get]
func GetBooks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books, err := a.Books.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch books", err)
		}
		return success(c, books)
	}
}

// GetBooksByCategory lists the books of one category
//
//	@Summary	List books of a category
//	@Tags		Books
//	@Produce	json
//	@Param		categoryKey	path		string	true	"Category key"
//	@Success	200	{object}	object{success=bool,data=[]models.Book}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Category not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books/category/{categoryKey} [get]
func GetBooksByCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books, err := a.Books.ListByCategory(c.UserContext(), c.Params("categoryKey"))
		if err != nil {
			return respondError(c, err, "Failed to fetch books")
		}
		return success(c, books)
	}
}

// GetBook returns one book by key
//
//	@Summary	Get a book by key
//	@Tags		Books
//	@Produce	json
//	@Param		key	path		string	true	"book key"
//	@Success	200	{object}	object{success=bool,data=models.Book}	"OK"
//	@Failure	404	{object}	ErrorResponse	"Book not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books/{key} [get]
func GetBook(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, err := a.Books.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			return respondError(c, err, "Failed to fetch book")
		}
		return success(c, book)
	}
}

// UpdateBook applies a partial update to a book
//
//	@Summary	Update a book
//	@Tags		Books
//	@Accept		json
//	@Produce	json
//	@Param		key		path		string						true	"book key"
//	@Param		body	body		models.UpdateBookRequest	true	"Payload"
//	@Success	200	{object}	object{success=bool,data=models.Book}	"OK"
//	@Failure	400	{object}	ErrorResponse	"Validation failure"
//	@Failure	404	{object}	ErrorResponse	"Book not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books/{key} [put]
func UpdateBook(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateBookRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		book, err := a.Books.Update(c.UserContext(), c.Params("key"), req)
		if err != nil {
			return respondError(c, err, "Failed to update book")
		}
		return success(c, book)
	}
}

// DeleteBook removes a book
//
//	@Summary	Delete a book
//	@Tags		Books
//	@Produce	json
//	@Param		key	path		string	true	"book key"
//	@Success	200	{object}	object{success=bool,data=object}	"Deleted"
//	@Failure	404	{object}	ErrorResponse	"Book not found"
//	@Failure	500	{object}	ErrorResponse	"Storage failure"
//	@Router		/books/{key} [delete]
func DeleteBook(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Books.Delete(c.UserContext(), c.Params("key")); err != nil {
			return respondError(c, err, "Failed to delete book")
		}
		return deleted(c)
	}
}
