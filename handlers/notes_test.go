package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/jvrm/bilhetinho-api/handlers"
	"github.com/jvrm/bilhetinho-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNote(t *testing.T) {
	application, _, tables, cleanup := setupTestEnv(t)
	defer cleanup()

	sender := createTestUser(t, application, "sender", tables[0].ID)

	fiberApp := setupTestApp()
	fiberApp.Post("/api/notes", handlers.SendNote(application))

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "Creates a pending note",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": tables[1].ID,
				"text":                 "Olá! Tudo bem?",
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				note := body["note"].(map[string]interface{})
				assert.Equal(t, "Olá! Tudo bem?", note["text"])
				assert.Equal(t, "pending", note["status"])
				assert.Equal(t, true, note["is_anonymous"])
				assert.Equal(t, tables[0].ID, note["from_table_id"])
				assert.Equal(t, tables[1].ID, note["to_table_id"])
			},
		},
		{
			name: "Named note keeps the flag",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": tables[1].ID,
				"text":                 "sem anonimato",
				"is_anonymous":         false,
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				note := body["note"].(map[string]interface{})
				assert.Equal(t, false, note["is_anonymous"])
			},
		},
		{
			name: "Empty text",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": tables[1].ID,
				"text":                 "",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Oversized text",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": tables[1].ID,
				"text":                 strings.Repeat("a", models.MaxNoteLength+1),
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown sender",
			requestBody: map[string]interface{}{
				"sender_user_id":       "no-such-user",
				"destination_table_id": tables[1].ID,
				"text":                 "oi",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Unknown destination table",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": "no-such-table",
				"text":                 "oi",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Sender's own table",
			requestBody: map[string]interface{}{
				"sender_user_id":       sender.ID,
				"destination_table_id": tables[0].ID,
				"text":                 "oi",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/api/notes", tt.requestBody)
			resp, err := fiberApp.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, decodeBody(t, resp))
			}
		})
	}
}

func TestSendNote_EmptyTextCreatesNothing(t *testing.T) {
	application, _, tables, cleanup := setupTestEnv(t)
	defer cleanup()

	sender := createTestUser(t, application, "sender", tables[0].ID)

	fiberApp := setupTestApp()
	fiberApp.Post("/api/notes", handlers.SendNote(application))

	req := jsonRequest(t, http.MethodPost, "/api/notes", map[string]interface{}{
		"sender_user_id":       sender.ID,
		"destination_table_id": tables[1].ID,
		"text":                 "",
	})
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	notes, err := application.Notes.Inbox(tables[1].ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSendNote_Quota(t *testing.T) {
	application, _, tables, cleanup := setupTestEnv(t)
	defer cleanup()

	sender := createTestUser(t, application, "sender", tables[0].ID)

	fiberApp := setupTestApp()
	fiberApp.Post("/api/notes", handlers.SendNote(application))

	send := func() *http.Response {
		req := jsonRequest(t, http.MethodPost, "/api/notes", map[string]interface{}{
			"sender_user_id":       sender.ID,
			"destination_table_id": tables[1].ID,
			"text":                 "oi",
		})
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	// The test app is configured with a quota of 10 notes per table.
	for i := 0; i < 10; i++ {
		resp := send()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := send()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestTableNotes(t *testing.T) {
	application, _, tables, cleanup := setupTestEnv(t)
	defer cleanup()

	sender := createTestUser(t, application, "sender", tables[0].ID)

	_, err := application.Notes.Send(sender.ID, tables[1].ID, "first", true)
	require.NoError(t, err)
	second, err := application.Notes.Send(sender.ID, tables[1].ID, "second", true)
	require.NoError(t, err)
	_, err = application.Notes.Send(sender.ID, tables[2].ID, "elsewhere", true)
	require.NoError(t, err)

	fiberApp := setupTestApp()
	fiberApp.Get("/api/tables/:id/notes", handlers.TableNotes(application))

	t.Run("Pending inbox, destination table only", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/tables/"+tables[1].ID+"/notes", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		notes := body["notes"].([]interface{})
		require.Len(t, notes, 2)
		for _, raw := range notes {
			note := raw.(map[string]interface{})
			assert.Equal(t, tables[1].ID, note["to_table_id"])
			assert.Equal(t, "pending", note["status"])
		}

		// Newest first
		newest := notes[0].(map[string]interface{})
		assert.Equal(t, second.ID, newest["id"])
	})

	t.Run("Empty inbox", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/tables/"+tables[5].ID+"/notes", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Empty(t, body["notes"])
	})

	t.Run("Unknown table", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/tables/no-such-table/notes", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAcceptAndIgnoreNote(t *testing.T) {
	application, _, tables, cleanup := setupTestEnv(t)
	defer cleanup()

	sender := createTestUser(t, application, "sender", tables[0].ID)

	fiberApp := setupTestApp()
	fiberApp.Post("/api/notes/:id/accept", handlers.AcceptNote(application))
	fiberApp.Post("/api/notes/:id/ignore", handlers.IgnoreNote(application))
	fiberApp.Get("/api/tables/:id/notes/accepted", handlers.AcceptedNotes(application))
	fiberApp.Get("/api/tables/:id/notes/ignored", handlers.IgnoredNotes(application))
	fiberApp.Get("/api/tables/:id/notes/sent", handlers.SentNotes(application))

	t.Run("Accept then accept again conflicts", func(t *testing.T) {
		note, err := application.Notes.Send(sender.ID, tables[1].ID, "accept me", true)
		require.NoError(t, err)

		req := jsonRequest(t, http.MethodPost, "/api/notes/"+note.ID+"/accept", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		got := body["note"].(map[string]interface{})
		assert.Equal(t, "accepted", got["status"])

		req = jsonRequest(t, http.MethodPost, "/api/notes/"+note.ID+"/accept", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		// The first transition's result sticks.
		stored, err := application.Repo.GetNote(note.ID)
		require.NoError(t, err)
		assert.Equal(t, models.NoteStatusAccepted, stored.Status)
	})

	t.Run("Ignore after accept conflicts", func(t *testing.T) {
		note, err := application.Notes.Send(sender.ID, tables[1].ID, "make up your mind", true)
		require.NoError(t, err)

		req := jsonRequest(t, http.MethodPost, "/api/notes/"+note.ID+"/ignore", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = jsonRequest(t, http.MethodPost, "/api/notes/"+note.ID+"/accept", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		stored, err := application.Repo.GetNote(note.ID)
		require.NoError(t, err)
		assert.Equal(t, models.NoteStatusIgnored, stored.Status)
	})

	t.Run("Unknown note", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/notes/no-such-note/accept", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Terminal notes show up in their listings", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/tables/"+tables[1].ID+"/notes/accepted", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Len(t, body["notes"], 1)

		req = jsonRequest(t, http.MethodGet, "/api/tables/"+tables[1].ID+"/notes/ignored", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		body = decodeBody(t, resp)
		assert.Len(t, body["notes"], 1)

		req = jsonRequest(t, http.MethodGet, "/api/tables/"+tables[0].ID+"/notes/sent", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		body = decodeBody(t, resp)
		assert.Len(t, body["notes"], 2)
	})
}

func TestSeedEndpoint(t *testing.T) {
	application, room, _, cleanup := setupTestEnv(t)
	defer cleanup()

	fiberApp := setupTestApp()
	fiberApp.Post("/api/seed", handlers.Seed(application))

	req := jsonRequest(t, http.MethodPost, "/api/seed", nil)
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["tables"], 10)

	// The previous room is gone.
	old, err := application.Repo.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Nil(t, old)
}
