package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ministry_backend/internals/features/missions/controller"
	"ministry_backend/internals/features/missions/repository"
)

func MissionRoutes(api fiber.Router, db *mongo.Database) {
	missionCtrl := controller.NewMissionController(repository.NewMissionRepository(db))

	api.Get("/mission-descriptions", missionCtrl.GetMissionDescriptions)
}
