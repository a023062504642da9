package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ministry_backend/internals/features/media/repository"
	helper "ministry_backend/internals/helpers"
)

type MediaController struct {
	Repo repository.MediaRepository
}

func NewMediaController(repo repository.MediaRepository) *MediaController {
	return &MediaController{Repo: repo}
}

// =========================
// Images by country
// =========================
func (ctrl *MediaController) GetImages(c *fiber.Ctx) error {
	country := c.Query("country")
	if country == "" {
		return helper.TextError(c, fiber.StatusBadRequest, "Country parameter is required")
	}

	urls, err := ctrl.Repo.FindImageURLsByCountry(c.UserContext(), country)
	if err != nil {
		log.Printf("Error fetching images: %v", err)
		return helper.TextError(c, fiber.StatusInternalServerError, "Error fetching images")
	}

	if len(urls) == 0 {
		return helper.TextError(c, fiber.StatusNotFound, "No images found for country: "+country)
	}

	return c.Status(fiber.StatusOK).JSON(urls)
}

// =========================
// Pastor video
// =========================
func (ctrl *MediaController) GetVideo(c *fiber.Ctx) error {
	video, err := ctrl.Repo.FindFirstVideo(c.UserContext())
	if err != nil {
		log.Printf("Error fetching video: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch video URL")
	}

	if video == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No video found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": video.URL})
}
