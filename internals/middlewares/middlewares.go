package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"tabunganku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan:
// recovery → logger → CORS → rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
