package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "ministry_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the shared middleware stack for the app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
}
