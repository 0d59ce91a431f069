package setup

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/app"
	"github.com/jvrm/bilhetinho-api/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is the API version reported on the root route.
const Version = "1.0.0"

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Public routes
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bilhetinho API", "version": Version})
	})
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := fiberApp.Group("/api")

	// Rooms and tables
	api.Get("/room/active", handlers.ActiveRoom(application))
	api.Get("/room/:id/tables", handlers.RoomTables(application))

	// Users
	api.Post("/users", handlers.CreateUser(application))
	api.Get("/users/:id", handlers.GetUser(application))
	api.Get("/tables/:id/users", handlers.TableUsers(application))

	// Notes
	api.Post("/notes", handlers.SendNote(application))
	api.Get("/tables/:id/notes", handlers.TableNotes(application))
	api.Get("/tables/:id/notes/accepted", handlers.AcceptedNotes(application))
	api.Get("/tables/:id/notes/ignored", handlers.IgnoredNotes(application))
	api.Get("/tables/:id/notes/sent", handlers.SentNotes(application))
	api.Post("/notes/:id/accept", handlers.AcceptNote(application))
	api.Post("/notes/:id/ignore", handlers.IgnoreNote(application))

	// Bootstrap
	api.Post("/seed", handlers.Seed(application))
}
