package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ministry_backend/internals/features/admin/dto"
	"ministry_backend/internals/features/admin/repository"
	helper "ministry_backend/internals/helpers"
)

type AdminController struct {
	Repo repository.AdminRepository
}

func NewAdminController(repo repository.AdminRepository) *AdminController {
	return &AdminController{Repo: repo}
}

// Login is a stateless credential check: no session, token or cookie is
// issued. Unknown username and wrong password produce the same body so the
// response never reveals which one failed.
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admin, err := ctrl.Repo.FindByUserName(c.UserContext(), body.Username)
	if err != nil {
		log.Printf("Error during login: %v", err)
		return helper.JsonMessage(c, fiber.StatusInternalServerError, "Server error")
	}
	if admin == nil {
		return helper.JsonMessage(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PassWord), []byte(body.Password)); err != nil {
		return helper.JsonMessage(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	return helper.JsonMessage(c, fiber.StatusOK, "Authentication successful")
}
