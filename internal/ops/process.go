package ops

import (
	"database/sql"
	"fmt"
	"strings"

	"shopmate/internal/catalog"
	"shopmate/internal/db"
	"shopmate/internal/document"
	"shopmate/internal/errors"
	"shopmate/internal/recommend"
)

// ProcessChecklistInput contains parameters for the ProcessChecklist
// operation.
type ProcessChecklistInput struct {
	Text      string
	SessionID string
}

// ProcessOutput contains the result of checklist processing: the
// classified items and the products created for them.
type ProcessOutput struct {
	ExtractedText  string                    `json:"extractedText,omitempty"`
	ProcessedItems []recommend.ProcessedItem `json:"processedItems"`
	Products       []catalog.Product         `json:"products"`
	Message        string                    `json:"message"`
}

// ProcessChecklist runs the full pipeline on free-text checklist input:
// the catalog is reset to the default listings, the raw checklist is
// recorded for the session, and recommendations for each extracted item
// are inserted and returned.
func ProcessChecklist(database *sql.DB, engine *recommend.Engine, input ProcessChecklistInput) (*ProcessOutput, error) {
	if blank(input.Text) {
		return nil, errors.NewInvalidRequest("text is required")
	}
	if blank(input.SessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}

	if err := clearAndReseed(database); err != nil {
		return nil, err
	}

	if _, err := db.InsertChecklistItem(database, input.SessionID, input.Text); err != nil {
		return nil, err
	}

	processedItems := recommend.ProcessChecklist(input.Text)
	drafts := engine.Recommend(processedItems)

	created, err := db.InsertProducts(database, drafts)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = []catalog.Product{}
	}

	return &ProcessOutput{
		ProcessedItems: processedItems,
		Products:       created,
		Message:        fmt.Sprintf("Found %d product recommendations with working links", len(created)),
	}, nil
}

// ProcessDocumentInput contains parameters for the ProcessDocument
// operation.
type ProcessDocumentInput struct {
	Data        []byte
	ContentType string
	Filename    string
	SessionID   string
}

// ProcessDocument extracts checklist text from an uploaded file and
// runs the same pipeline as ProcessChecklist on it.
func ProcessDocument(database *sql.DB, engine *recommend.Engine, input ProcessDocumentInput) (*ProcessOutput, error) {
	if len(input.Data) == 0 {
		return nil, errors.NewInvalidRequest("no file uploaded")
	}
	if blank(input.SessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}

	extracted, err := document.ExtractText(input.Data, input.ContentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(extracted) == "" {
		return nil, errors.NewEmptyDocument()
	}

	if err := clearAndReseed(database); err != nil {
		return nil, err
	}

	if _, err := db.InsertChecklistItem(database, input.SessionID, extracted); err != nil {
		return nil, err
	}

	processedItems := recommend.ProcessChecklist(extracted)
	drafts := engine.Recommend(processedItems)

	created, err := db.InsertProducts(database, drafts)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = []catalog.Product{}
	}

	return &ProcessOutput{
		ExtractedText:  extracted,
		ProcessedItems: processedItems,
		Products:       created,
		Message:        fmt.Sprintf("Extracted text from %s and found %d product recommendations", input.Filename, len(created)),
	}, nil
}
