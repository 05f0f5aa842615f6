package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bookify_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global: logger, recovery, CORS, limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
