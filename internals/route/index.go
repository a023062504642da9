// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	adminRoute "ministry_backend/internals/features/admin/route"
	eventRoute "ministry_backend/internals/features/events/route"
	mediaRoute "ministry_backend/internals/features/media/route"
	missionRoute "ministry_backend/internals/features/missions/route"
)

// SetupRoutes registers every public endpoint under /api. The database
// handle is passed down so no controller reads it from ambient state.
func SetupRoutes(app *fiber.App, db *mongo.Database) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up MediaRoutes...")
	mediaRoute.MediaRoutes(api, db)

	log.Println("[INFO] Setting up MissionRoutes...")
	missionRoute.MissionRoutes(api, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(api, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	adminRoute.AdminRoutes(api, db)
}
