// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "bookify_backend/internals/features/library/books/route"
	borrowRoute "bookify_backend/internals/features/library/borrows/route"
	authRoute "bookify_backend/internals/features/users/auth/route"
)

var startTime time.Time

// SetupRoutes: satu route table — setiap path didaftarkan tepat sekali.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app)

	log.Println("[INFO] Setting up BookRoutes...")
	bookRoute.BookRoutes(app, db)

	log.Println("[INFO] Setting up BorrowRoutes...")
	borrowRoute.BorrowRoutes(app, db)
}
