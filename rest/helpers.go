package rest

import (
	"github.com/gofiber/fiber/v2"
)

func ReturnBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnConflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnInternalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}

func ReturnBadGateway(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": message,
	})
}
