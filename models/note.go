package models

import "time"

type NoteStatus string

const (
	NoteStatusPending  NoteStatus = "pending"
	NoteStatusAccepted NoteStatus = "accepted"
	NoteStatusIgnored  NoteStatus = "ignored"
)

// MaxNoteLength is the hard cap on note text, also enforced by a CHECK
// constraint in the notes table.
const MaxNoteLength = 140

// Note is a short message sent from a user to a destination table.
// Status starts as pending and transitions exactly once, to accepted or
// ignored; both are terminal.
type Note struct {
	ID           string     `json:"id"`
	RoomID       string     `json:"room_id"`
	SenderUserID string     `json:"sender_user_id"`
	FromTableID  string     `json:"from_table_id"`
	ToTableID    string     `json:"to_table_id"`
	Text         string     `json:"text"`
	IsAnonymous  bool       `json:"is_anonymous"`
	Status       NoteStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateNoteRequest struct {
	SenderUserID       string `json:"sender_user_id" validate:"required"`
	DestinationTableID string `json:"destination_table_id" validate:"required"`
	Text               string `json:"text" validate:"required,min=1,max=140"`
	IsAnonymous        *bool  `json:"is_anonymous"`
}

// Anonymous resolves the optional flag; notes are anonymous by default.
func (r *CreateNoteRequest) Anonymous() bool {
	if r.IsAnonymous == nil {
		return true
	}
	return *r.IsAnonymous
}
