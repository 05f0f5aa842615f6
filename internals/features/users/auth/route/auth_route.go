// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authController "bookify_backend/internals/features/users/auth/controller"
	middlewares "bookify_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router) {
	ctl := &authController.AuthController{}

	r.Post("/jwt", middlewares.TokenRateLimiter(), ctl.IssueToken)
	r.Get("/logout", ctl.Logout)
}
