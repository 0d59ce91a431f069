package database

import (
	"database/sql"
	"time"

	"github.com/jvrm/bilhetinho-api/models"
)

// ==================== NOTES ====================

func (r *Repository) CreateNote(note *models.Note) error {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	if note.Status == "" {
		note.Status = models.NoteStatusPending
	}

	isAnonymous := 0
	if note.IsAnonymous {
		isAnonymous = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO notes (id, room_id, sender_user_id, from_table_id, to_table_id,
			text, is_anonymous, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		note.ID, note.RoomID, note.SenderUserID, note.FromTableID, note.ToTableID,
		note.Text, isAnonymous, string(note.Status), note.CreatedAt,
	)
	return err
}

func (r *Repository) GetNote(noteID string) (*models.Note, error) {
	row := r.db.QueryRow(`
		SELECT id, room_id, sender_user_id, from_table_id, to_table_id,
		       text, is_anonymous, status, created_at
		FROM notes
		WHERE id = ?
	`, noteID)

	note, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetNotesForTable returns notes addressed to the table with the given
// status, newest first.
func (r *Repository) GetNotesForTable(tableID string, status models.NoteStatus) ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT id, room_id, sender_user_id, from_table_id, to_table_id,
		       text, is_anonymous, status, created_at
		FROM notes
		WHERE to_table_id = ? AND status = ?
		ORDER BY created_at DESC
	`, tableID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectNotes(rows)
}

// GetNotesSentFromTable returns notes sent from the table regardless of
// status, newest first.
func (r *Repository) GetNotesSentFromTable(tableID string) ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT id, room_id, sender_user_id, from_table_id, to_table_id,
		       text, is_anonymous, status, created_at
		FROM notes
		WHERE from_table_id = ?
		ORDER BY created_at DESC
	`, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectNotes(rows)
}

func (r *Repository) CountNotesFromTable(tableID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM notes WHERE from_table_id = ?
	`, tableID).Scan(&count)
	return count, err
}

// TransitionNote moves a pending note to a terminal status. The
// conditional WHERE makes concurrent transitions race safely: the loser
// matches zero rows and gets false back instead of overwriting.
func (r *Repository) TransitionNote(noteID string, to models.NoteStatus) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE notes SET status = ?
		WHERE id = ? AND status = ?
	`, string(to), noteID, string(models.NoteStatusPending))
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var note models.Note
	var isAnonymous int
	var status string

	err := row.Scan(
		&note.ID, &note.RoomID, &note.SenderUserID, &note.FromTableID, &note.ToTableID,
		&note.Text, &isAnonymous, &status, &note.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	note.IsAnonymous = isAnonymous == 1
	note.Status = models.NoteStatus(status)
	return &note, nil
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}
