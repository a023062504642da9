package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ministry_backend/internals/features/missions/repository"
	helper "ministry_backend/internals/helpers"
)

// LangFallback is returned verbatim when a country record exists but has no
// description in the requested language.
const LangFallback = "No description available in the requested language."

type MissionController struct {
	Repo repository.MissionRepository
}

func NewMissionController(repo repository.MissionRepository) *MissionController {
	return &MissionController{Repo: repo}
}

// GetMissionDescriptions serves both query shapes: with lng it returns just
// the one description, without it the record's full descriptions block.
// A missing country parameter is allowed and simply matches nothing.
func (ctrl *MissionController) GetMissionDescriptions(c *fiber.Ctx) error {
	country := c.Query("country")
	lng := c.Query("lng")
	log.Printf("mission-descriptions request: country=%q lng=%q", country, lng)

	if lng != "" {
		text, found, err := ctrl.Repo.FindDescriptionByCountryLang(c.UserContext(), country, lng)
		if err != nil {
			log.Printf("Error fetching mission descriptions: %v", err)
			return helper.TextError(c, fiber.StatusInternalServerError, "Error fetching mission descriptions")
		}
		if !found {
			return helper.JsonError(c, fiber.StatusNotFound, "No descriptions found for the selected country.")
		}
		if text == "" {
			text = LangFallback
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"description": text})
	}

	desc, err := ctrl.Repo.FindByCountry(c.UserContext(), country)
	if err != nil {
		log.Printf("Error fetching mission descriptions: %v", err)
		return helper.TextError(c, fiber.StatusInternalServerError, "Error fetching mission descriptions")
	}
	if desc == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No descriptions found for the selected country.")
	}
	return c.Status(fiber.StatusOK).JSON(desc)
}
