package setup

import (
	"log/slog"

	"github.com/jvrm/bilhetinho-api/app"
	"github.com/jvrm/bilhetinho-api/config"
	"github.com/jvrm/bilhetinho-api/database"
	"github.com/jvrm/bilhetinho-api/handlers"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, config.AppConfig.MaxNotesPerTable, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// SeedIfEmpty seeds the initial room and tables when the store has none.
// Existing data is left alone; POST /api/seed is the destructive path.
func SeedIfEmpty(application *app.App, logger *slog.Logger) error {
	hasRooms, err := application.Repo.HasRooms()
	if err != nil {
		return err
	}
	if hasRooms {
		return nil
	}

	room, tables, err := application.Repo.Seed(handlers.DefaultRoomName)
	if err != nil {
		return err
	}

	logger.Info("seeded initial data", "room", room.Name, "tables", len(tables))
	return nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
