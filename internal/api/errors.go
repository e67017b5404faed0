// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soraprompt/gallery/internal/catalog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its stable status class and writes
// the {"error": ...} body.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

// statusForError assigns each error of the catalog taxonomy its HTTP
// status class. Anything unrecognised is a storage-level failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, catalog.ErrMissingField),
		errors.Is(err, catalog.ErrTitleTooLong),
		errors.Is(err, catalog.ErrPromptTooLong),
		errors.Is(err, catalog.ErrInvalidSourceURL),
		errors.Is(err, catalog.ErrInvalidPagination),
		errors.Is(err, catalog.ErrCapacityExceeded):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrDuplicateID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
