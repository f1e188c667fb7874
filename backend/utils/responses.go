package utils

import "github.com/gofiber/fiber/v2"

// Message sends the {"message": ...} envelope every endpoint uses for
// statuses and errors.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ServerError hides storage/crypto failure details from the client.
func ServerError(c *fiber.Ctx) error {
	return Message(c, fiber.StatusInternalServerError, "Server error")
}
