package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jvrm/bilhetinho-api/models"
)

// NoteService handles the note lifecycle: send, list, accept, ignore.
type NoteService struct {
	repo        NoteRepository
	maxPerTable int
}

func NewNoteService(repo NoteRepository, maxPerTable int) *NoteService {
	return &NoteService{
		repo:        repo,
		maxPerTable: maxPerTable,
	}
}

// Send creates a pending note from a user to a destination table.
// The sender's table and the destination must be distinct tables in the
// same room, the room must still be active, and each table has a send
// quota to keep one table from flooding the room.
func (ns *NoteService) Send(senderUserID, toTableID, text string, anonymous bool) (*models.Note, error) {
	sender, err := ns.repo.GetUser(senderUserID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	toTable, err := ns.repo.GetTable(toTableID)
	if err != nil {
		return nil, err
	}
	if toTable == nil {
		return nil, ErrTableNotFound
	}

	if sender.TableID == toTable.ID {
		return nil, ErrSameTable
	}
	if sender.RoomID != toTable.RoomID {
		return nil, ErrTablesNotInSameRoom
	}

	room, err := ns.repo.GetRoom(sender.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil || !room.IsActive {
		return nil, ErrRoomClosed
	}

	sent, err := ns.repo.CountNotesFromTable(sender.TableID)
	if err != nil {
		return nil, err
	}
	if sent >= ns.maxPerTable {
		return nil, ErrNoteQuotaReached
	}

	note := &models.Note{
		ID:           uuid.New().String(),
		RoomID:       room.ID,
		SenderUserID: sender.ID,
		FromTableID:  sender.TableID,
		ToTableID:    toTable.ID,
		Text:         text,
		IsAnonymous:  anonymous,
		Status:       models.NoteStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := ns.repo.CreateNote(note); err != nil {
		return nil, err
	}

	return note, nil
}

// Inbox returns the table's pending notes, newest first.
func (ns *NoteService) Inbox(tableID string) ([]models.Note, error) {
	return ns.listForTable(tableID, models.NoteStatusPending)
}

// Accepted returns the table's accepted notes, newest first.
func (ns *NoteService) Accepted(tableID string) ([]models.Note, error) {
	return ns.listForTable(tableID, models.NoteStatusAccepted)
}

// Ignored returns the table's ignored notes, newest first.
func (ns *NoteService) Ignored(tableID string) ([]models.Note, error) {
	return ns.listForTable(tableID, models.NoteStatusIgnored)
}

// Sent returns all notes sent from the table, any status, newest first.
func (ns *NoteService) Sent(tableID string) ([]models.Note, error) {
	table, err := ns.repo.GetTable(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	return ns.repo.GetNotesSentFromTable(tableID)
}

// Accept transitions a pending note to accepted.
func (ns *NoteService) Accept(noteID string) (*models.Note, error) {
	return ns.transition(noteID, models.NoteStatusAccepted)
}

// Ignore transitions a pending note to ignored.
func (ns *NoteService) Ignore(noteID string) (*models.Note, error) {
	return ns.transition(noteID, models.NoteStatusIgnored)
}

func (ns *NoteService) listForTable(tableID string, status models.NoteStatus) ([]models.Note, error) {
	table, err := ns.repo.GetTable(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	return ns.repo.GetNotesForTable(tableID, status)
}

func (ns *NoteService) transition(noteID string, to models.NoteStatus) (*models.Note, error) {
	ok, err := ns.repo.TransitionNote(noteID, to)
	if err != nil {
		return nil, err
	}

	if !ok {
		// Either the note does not exist or it is already terminal;
		// re-read to tell the two apart.
		note, err := ns.repo.GetNote(noteID)
		if err != nil {
			return nil, err
		}
		if note == nil {
			return nil, ErrNoteNotFound
		}
		return nil, ErrNoteAlreadyProcessed
	}

	note, err := ns.repo.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}
