package services

import "github.com/jvrm/bilhetinho-api/models"

// RoomRepository defines the interface for room and table data access
type RoomRepository interface {
	GetActiveRoom() (*models.Room, error)
	GetRoom(roomID string) (*models.Room, error)
	GetTable(tableID string) (*models.Table, error)
	GetTablesByRoom(roomID string) ([]models.Table, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUser(userID string) (*models.User, error)
	GetUsersByTable(tableID string) ([]models.User, error)
	GetTable(tableID string) (*models.Table, error)
	GetRoom(roomID string) (*models.Room, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(note *models.Note) error
	GetNote(noteID string) (*models.Note, error)
	GetNotesForTable(tableID string, status models.NoteStatus) ([]models.Note, error)
	GetNotesSentFromTable(tableID string) ([]models.Note, error)
	CountNotesFromTable(tableID string) (int, error)
	TransitionNote(noteID string, to models.NoteStatus) (bool, error)
	GetUser(userID string) (*models.User, error)
	GetTable(tableID string) (*models.Table, error)
	GetRoom(roomID string) (*models.Room, error)
}
