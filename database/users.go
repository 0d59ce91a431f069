package database

import (
	"database/sql"
	"time"

	"github.com/jvrm/bilhetinho-api/models"
)

// ==================== USERS ====================

func (r *Repository) CreateUser(user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO users (id, nickname, table_id, room_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Nickname, user.TableID, user.RoomID, user.CreatedAt)
	return err
}

func (r *Repository) GetUser(userID string) (*models.User, error) {
	var user models.User

	err := r.db.QueryRow(`
		SELECT id, nickname, table_id, room_id, created_at
		FROM users
		WHERE id = ?
	`, userID).Scan(&user.ID, &user.Nickname, &user.TableID, &user.RoomID, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUsersByTable(tableID string) ([]models.User, error) {
	rows, err := r.db.Query(`
		SELECT id, nickname, table_id, room_id, created_at
		FROM users
		WHERE table_id = ?
		ORDER BY created_at ASC
	`, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Nickname, &user.TableID, &user.RoomID, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
