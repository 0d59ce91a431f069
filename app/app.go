package app

import (
	"log/slog"

	"github.com/jvrm/bilhetinho-api/database"
	"github.com/jvrm/bilhetinho-api/services"
	"github.com/jvrm/bilhetinho-api/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Rooms     *services.RoomService
	Users     *services.UserService
	Notes     *services.NoteService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, maxNotesPerTable int, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Rooms:     services.NewRoomService(repo),
		Users:     services.NewUserService(repo),
		Notes:     services.NewNoteService(repo, maxNotesPerTable),
		Validator: validator.New(),
		Logger:    logger,
	}
}
