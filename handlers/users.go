package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/app"
	"github.com/jvrm/bilhetinho-api/models"
)

// CreateUser creates an ephemeral user bound to a table.
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(req); err != nil {
			return validationFailed(c, err)
		}

		user, err := a.Users.Create(req.Nickname, req.TableID)
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{"user": user})
	}
}

// GetUser returns a user by id.
func GetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Users.Get(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// TableUsers lists all users seated at a table.
func TableUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.ListByTable(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"users": users})
	}
}
