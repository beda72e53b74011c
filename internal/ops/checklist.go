package ops

import (
	"database/sql"

	"shopmate/internal/catalog"
	"shopmate/internal/db"
	"shopmate/internal/errors"
)

// ListChecklist returns a session's recorded checklists, oldest first.
func ListChecklist(database *sql.DB, sessionID string) ([]catalog.ChecklistItem, error) {
	if blank(sessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}

	items, err := db.ListChecklistBySession(database, sessionID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []catalog.ChecklistItem{}
	}
	return items, nil
}
