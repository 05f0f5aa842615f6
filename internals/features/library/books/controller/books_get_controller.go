// file: internals/features/library/books/controller/books_get_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bookify_backend/internals/features/library/books/dto"
	bookModel "bookify_backend/internals/features/library/books/model"
	helper "bookify_backend/internals/helpers"
)

// GET /books — full listing, tanpa pagination.
func (h *BooksController) List(c *fiber.Ctx) error {
	var books []bookModel.BookModel
	if err := h.DB.WithContext(c.UserContext()).Find(&books).Error; err != nil {
		log.Printf("[BOOKS][LIST] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching books.")
	}
	return helper.JsonOK(c, "ok", books)
}

// GET /books/:id
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var book bookModel.BookModel
	if err := h.DB.WithContext(c.UserContext()).First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		log.Printf("[BOOKS][GET] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", book)
}

// GET /all-books?size&page&filter&sort&search — paginated listing.
func (h *BooksController) ListPaginated(c *fiber.Ctx) error {
	var q dto.BooksListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 10, 100)

	// scope dibangun ulang per finisher supaya statement tidak tercemar
	scoped := func() *gorm.DB {
		return q.Scope(h.DB.WithContext(c.UserContext()).Model(&bookModel.BookModel{}))
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		log.Printf("[BOOKS][ALL] count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching books.")
	}

	var books []bookModel.BookModel
	if err := q.Order(scoped()).Offset(paging.Offset).Limit(paging.Limit).Find(&books).Error; err != nil {
		log.Printf("[BOOKS][ALL] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching books.")
	}

	return helper.JsonList(c, "ok", books, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /books-count?filter&search — pakai predicate builder yang sama dengan /all-books.
func (h *BooksController) Count(c *fiber.Ctx) error {
	var q dto.BooksListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	var count int64
	db := h.DB.WithContext(c.UserContext()).Model(&bookModel.BookModel{})
	if err := q.Scope(db).Count(&count).Error; err != nil {
		log.Printf("[BOOKS][COUNT] count error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching books count.")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}
