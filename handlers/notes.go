package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/app"
	"github.com/jvrm/bilhetinho-api/models"
)

// SendNote creates a pending note from a user to a destination table.
func SendNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(req); err != nil {
			return validationFailed(c, err)
		}

		note, err := a.Notes.Send(req.SenderUserID, req.DestinationTableID, req.Text, req.Anonymous())
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// TableNotes returns the table's pending inbox, newest first.
func TableNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.Inbox(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// AcceptedNotes returns the table's accepted notes, newest first.
func AcceptedNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.Accepted(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// IgnoredNotes returns the table's ignored notes, newest first.
func IgnoredNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.Ignored(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// SentNotes returns notes sent from the table, any status, newest first.
func SentNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.Sent(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// AcceptNote transitions a pending note to accepted.
func AcceptNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.Accept(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// IgnoreNote transitions a pending note to ignored.
func IgnoreNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.Ignore(c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"note": note})
	}
}
