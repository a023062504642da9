package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Response writers used by every controller. Each failure is logged with the
// endpoint before the response is sent, so the server log always shows which
// route produced which error.

// TextError responds with a plain-text body (the image and mission endpoints
// keep the original text/plain error contract).
func TextError(c *fiber.Ctx, code int, message string) error {
	log.Printf("[%s %s] %s", c.Method(), c.Path(), message)
	return c.Status(code).SendString(message)
}

// JsonError responds with {"error": message}.
func JsonError(c *fiber.Ctx, code int, message string) error {
	log.Printf("[%s %s] %s", c.Method(), c.Path(), message)
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// JsonMessage responds with {"message": message}. Used for both success and
// failure bodies that carry a message field; only non-2xx codes are logged.
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	if code >= 400 {
		log.Printf("[%s %s] %s", c.Method(), c.Path(), message)
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}
