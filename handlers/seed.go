package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/app"
)

// DefaultRoomName is the seeded room's name.
const DefaultRoomName = "Noite do Bilhetinho - Bar Central"

// Seed wipes all data and recreates one active room with numbered
// tables. Destructive; meant for bootstrapping an event.
func Seed(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		room, tables, err := a.Repo.Seed(DefaultRoomName)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to seed database", err)
		}

		a.Logger.Info("database seeded", "room", room.Name, "tables", len(tables))

		return success(c, fiber.Map{
			"message": "Database seeded successfully",
			"room":    room,
			"tables":  tables,
		})
	}
}
