package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ministry_backend/internals/features/events/dto"
	"ministry_backend/internals/features/events/repository"
	helper "ministry_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	Repo repository.EventRepository
}

func NewEventController(repo repository.EventRepository) *EventController {
	return &EventController{Repo: repo}
}

// =========================
// List
// =========================
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	events, err := ctrl.Repo.FindAll(c.UserContext())
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching events")
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

// =========================
// Create
// =========================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.EventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title and date are required")
	}

	event, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	created, err := ctrl.Repo.Create(c.UserContext(), event)
	if err != nil {
		log.Printf("Error saving event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error saving event")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// =========================
// Update (full five-field replace)
// =========================
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.EventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "title and date are required")
	}

	event, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	updated, err := ctrl.Repo.ReplaceByID(c.UserContext(), id, event)
	if err != nil {
		log.Printf("Error updating event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating event")
	}
	if updated == nil {
		return helper.JsonMessage(c, fiber.StatusNotFound, "Event not found")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// =========================
// Delete
// =========================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.Repo.DeleteByID(c.UserContext(), id)
	if err != nil {
		log.Printf("Error deleting event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting event")
	}
	if !deleted {
		return helper.JsonMessage(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Event deleted successfully")
}
