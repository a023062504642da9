package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ministry_backend/internals/features/admin/controller"
	"ministry_backend/internals/features/admin/repository"
)

func AdminRoutes(api fiber.Router, db *mongo.Database) {
	adminCtrl := controller.NewAdminController(repository.NewAdminRepository(db))

	api.Post("/admin/login", adminCtrl.Login)
}
