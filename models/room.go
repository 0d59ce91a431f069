package models

import "time"

// Room is the top-level venue partition. At most one room is active at a
// time; the store enforces that with a partial unique index.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Table is a seating unit inside a room, identified by its number.
type Table struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Number int    `json:"number"`
}

// User is an ephemeral identity bound to a table for the duration of a
// session. Users are never updated or explicitly deleted.
type User struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	TableID   string    `json:"table_id"`
	RoomID    string    `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultNickname is used when a client joins without choosing a name.
const DefaultNickname = "Anônimo"

type CreateUserRequest struct {
	Nickname string `json:"nickname" validate:"omitempty,max=50,nickname"`
	TableID  string `json:"table_id" validate:"required"`
}
