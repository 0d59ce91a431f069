package database

import (
	"database/sql"
	"time"

	"github.com/jvrm/bilhetinho-api/models"
)

// ==================== ROOMS ====================

func (r *Repository) GetActiveRoom() (*models.Room, error) {
	var room models.Room
	var isActive int

	err := r.db.QueryRow(`
		SELECT id, name, is_active, created_at
		FROM rooms
		WHERE is_active = 1
	`).Scan(&room.ID, &room.Name, &isActive, &room.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	room.IsActive = isActive == 1
	return &room, nil
}

func (r *Repository) GetRoom(roomID string) (*models.Room, error) {
	var room models.Room
	var isActive int

	err := r.db.QueryRow(`
		SELECT id, name, is_active, created_at
		FROM rooms
		WHERE id = ?
	`, roomID).Scan(&room.ID, &room.Name, &isActive, &room.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	room.IsActive = isActive == 1
	return &room, nil
}

func (r *Repository) CreateRoom(room *models.Room) error {
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	isActive := 0
	if room.IsActive {
		isActive = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO rooms (id, name, is_active, created_at)
		VALUES (?, ?, ?, ?)
	`, room.ID, room.Name, isActive, room.CreatedAt)
	return err
}

// ActivateRoom makes the given room the single active one. Deactivating
// the rest first keeps the partial unique index satisfied.
func (r *Repository) ActivateRoom(roomID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE rooms SET is_active = 0 WHERE is_active = 1`); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE rooms SET is_active = 1 WHERE id = ?`, roomID); err != nil {
		return err
	}

	return tx.Commit()
}

// ==================== TABLES ====================

func (r *Repository) GetTable(tableID string) (*models.Table, error) {
	var table models.Table

	err := r.db.QueryRow(`
		SELECT id, room_id, number
		FROM tables
		WHERE id = ?
	`, tableID).Scan(&table.ID, &table.RoomID, &table.Number)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &table, nil
}

// GetTablesByRoom returns the room's tables ordered by number.
func (r *Repository) GetTablesByRoom(roomID string) ([]models.Table, error) {
	rows, err := r.db.Query(`
		SELECT id, room_id, number
		FROM tables
		WHERE room_id = ?
		ORDER BY number ASC
	`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	tables := make([]models.Table, 0)
	for rows.Next() {
		var table models.Table
		if err := rows.Scan(&table.ID, &table.RoomID, &table.Number); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

func (r *Repository) CreateTable(table *models.Table) error {
	_, err := r.db.Exec(`
		INSERT INTO tables (id, room_id, number)
		VALUES (?, ?, ?)
	`, table.ID, table.RoomID, table.Number)
	return err
}
