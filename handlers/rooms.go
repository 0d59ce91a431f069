package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/app"
)

// ActiveRoom returns the room currently flagged active.
func ActiveRoom(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		room, err := a.Rooms.ActiveRoom()
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"room": room})
	}
}

// RoomTables lists the tables of a room, ordered by number.
func RoomTables(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID := c.Params("id")

		tables, err := a.Rooms.ListTables(roomID)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"tables": tables})
	}
}
