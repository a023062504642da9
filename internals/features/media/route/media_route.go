package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ministry_backend/internals/features/media/controller"
	"ministry_backend/internals/features/media/repository"
)

func MediaRoutes(api fiber.Router, db *mongo.Database) {
	mediaCtrl := controller.NewMediaController(repository.NewMediaRepository(db))

	api.Get("/getImgs", mediaCtrl.GetImages)
	api.Get("/video", mediaCtrl.GetVideo)
}
