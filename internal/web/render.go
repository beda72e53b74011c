package web

import (
	"encoding/json"
	"log"
	"net/http"

	"shopmate/internal/errors"
)

// renderJSON writes v as a JSON response with the given status code.
func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// renderError maps an error to a JSON error response. Structured errors
// carry their own status; anything else is a 500 with the error text
// exposed in a separate field.
func renderError(w http.ResponseWriter, err error) {
	if sErr, ok := err.(*errors.ShopError); ok {
		if sErr.Status >= 500 {
			renderJSON(w, sErr.Status, map[string]any{
				"message": "Internal server error",
				"error":   sErr.Message,
			})
			return
		}
		renderJSON(w, sErr.Status, map[string]any{"message": sErr.Message})
		return
	}

	renderJSON(w, http.StatusInternalServerError, map[string]any{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
