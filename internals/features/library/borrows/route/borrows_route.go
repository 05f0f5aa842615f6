// file: internals/features/library/borrows/route/borrows_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	borrowController "bookify_backend/internals/features/library/borrows/controller"
)

func BorrowRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &borrowController.BorrowsController{
		DB:        db,
		Validator: validator.New(),
	}

	r.Post("/borrow", ctl.Borrow)
	r.Get("/borrowed-books", ctl.ListByEmail)
	r.Post("/return", ctl.Return)
}
