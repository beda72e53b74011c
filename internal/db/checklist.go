package db

import (
	"database/sql"
	"time"

	"shopmate/internal/catalog"
	"shopmate/internal/errors"
)

// InsertChecklistItem appends a checklist submission to the log.
// Submissions are write-once; nothing downstream updates them.
func InsertChecklistItem(database *sql.DB, sessionID, originalText string) (*catalog.ChecklistItem, error) {
	now := time.Now().Unix()

	result, err := database.Exec(
		"INSERT INTO checklist_items (session_id, original_text, processed_text, is_processed, created_at) VALUES (?, ?, '', 0, ?)",
		sessionID, originalText, now,
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return &catalog.ChecklistItem{
		ID:           id,
		SessionID:    sessionID,
		OriginalText: originalText,
		CreatedAt:    time.Unix(now, 0),
	}, nil
}

// ListChecklistBySession returns a session's submissions, oldest first.
func ListChecklistBySession(database *sql.DB, sessionID string) ([]catalog.ChecklistItem, error) {
	rows, err := database.Query(
		"SELECT id, session_id, original_text, processed_text, is_processed, created_at FROM checklist_items WHERE session_id = ? ORDER BY id ASC",
		sessionID,
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	items := make([]catalog.ChecklistItem, 0)
	for rows.Next() {
		var (
			item        catalog.ChecklistItem
			isProcessed int
			createdAt   int64
		)
		if err := rows.Scan(&item.ID, &item.SessionID, &item.OriginalText, &item.ProcessedText, &isProcessed, &createdAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		item.IsProcessed = isProcessed != 0
		item.CreatedAt = time.Unix(createdAt, 0)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return items, nil
}
