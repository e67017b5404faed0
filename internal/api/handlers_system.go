// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/soraprompt/gallery/internal/log"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	n, err := s.svc.Seed(r.Context())
	if err != nil {
		logger.Error().Err(err).
			Str(log.FieldEvent, "catalog.seed_failed").
			Msg("seed reset failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "collection reset to seed data",
		"videos":  n,
	})
}
