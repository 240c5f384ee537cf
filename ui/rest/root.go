package rest

import "github.com/gofiber/fiber/v2"

func InitRestRoot(app fiber.Router, message string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"event":   "server_started",
			"message": message,
		})
	})
}
