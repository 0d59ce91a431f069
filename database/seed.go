package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvrm/bilhetinho-api/models"
)

// SeedTableCount is how many numbered tables the seed creates.
const SeedTableCount = 10

// HasRooms reports whether any room exists, used to decide whether to
// seed on startup.
func (r *Repository) HasRooms() (bool, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Seed wipes all data and recreates one active room with numbered
// tables. Everything runs in a single transaction so a half-seeded
// database is never observable.
func (r *Repository) Seed(roomName string) (*models.Room, []models.Table, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	for _, table := range []string{"notes", "users", "tables", "rooms"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return nil, nil, err
		}
	}

	room := &models.Room{
		ID:        uuid.New().String(),
		Name:      roomName,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := tx.Exec(`
		INSERT INTO rooms (id, name, is_active, created_at)
		VALUES (?, ?, 1, ?)
	`, room.ID, room.Name, room.CreatedAt); err != nil {
		return nil, nil, err
	}

	tables := make([]models.Table, 0, SeedTableCount)
	for i := 1; i <= SeedTableCount; i++ {
		table := models.Table{
			ID:     uuid.New().String(),
			RoomID: room.ID,
			Number: i,
		}
		if _, err := tx.Exec(`
			INSERT INTO tables (id, room_id, number)
			VALUES (?, ?, ?)
		`, table.ID, table.RoomID, table.Number); err != nil {
			return nil, nil, err
		}
		tables = append(tables, table)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return room, tables, nil
}
