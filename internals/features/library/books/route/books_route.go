// file: internals/features/library/books/route/books_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bookify_backend/internals/configs"
	bookController "bookify_backend/internals/features/library/books/controller"
	"bookify_backend/internals/middlewares/auth"
)

// BookRoutes registrasi route buku — sekali saja, tidak ada shadowing.
func BookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BooksController{
		DB:         db,
		Validator:  validator.New(),
		UpdateMode: configs.BookUpdateMode,
	}

	// public
	r.Get("/books", ctl.List)
	r.Get("/books/:id", ctl.GetByID)
	r.Get("/all-books", ctl.ListPaginated)
	r.Get("/books-count", ctl.Count)

	// authenticated (cookie "token")
	authGuard := auth.AuthMiddleware()
	r.Post("/book", authGuard, ctl.Create)
	r.Put("/books/:id", authGuard, ctl.Update)
}
