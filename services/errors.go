package services

import "errors"

// Common service-level errors
var (
	// Not found
	ErrRoomNotFound  = errors.New("room not found")
	ErrTableNotFound = errors.New("table not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNoteNotFound  = errors.New("note not found")

	// State conflicts
	ErrNoteAlreadyProcessed = errors.New("note already processed")
	ErrRoomClosed           = errors.New("room is not active")

	// Validation
	ErrSameTable           = errors.New("cannot send a note to the sender's own table")
	ErrTablesNotInSameRoom = errors.New("tables must belong to the same room")

	// Quota
	ErrNoteQuotaReached = errors.New("note limit reached for this table")
)
