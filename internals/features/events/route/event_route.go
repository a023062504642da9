package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ministry_backend/internals/features/events/controller"
	"ministry_backend/internals/features/events/repository"
)

func EventRoutes(api fiber.Router, db *mongo.Database) {
	eventCtrl := controller.NewEventController(repository.NewEventRepository(db))

	api.Get("/event", eventCtrl.GetEvents)
	api.Post("/event", eventCtrl.CreateEvent)
	api.Put("/event/:id", eventCtrl.UpdateEvent)
	api.Delete("/event/:id", eventCtrl.DeleteEvent)
}
