// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/soraprompt/gallery/internal/catalog"
	"github.com/soraprompt/gallery/internal/log"
)

// maxBodyBytes bounds creation request bodies; a prompt tops out at
// 1000 characters, so anything near this limit is garbage anyway.
const maxBodyBytes = 64 * 1024

type listResponse struct {
	Videos     []catalog.Video `json:"videos"`
	Pagination catalog.Page    `json:"pagination"`
}

type searchResponse struct {
	Videos []catalog.Video `json:"videos"`
}

func (s *Server) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	var in catalog.Input
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := s.svc.Create(r.Context(), in)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			logger.Error().Err(err).
				Str(log.FieldEvent, "video.create_failed").
				Msg("video creation failed")
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"), 1)
	if err != nil {
		writeError(w, fmt.Errorf("%w: page=%q", catalog.ErrInvalidPagination, q.Get("page")))
		return
	}
	limit, err := queryInt(q.Get("limit"), s.cfg.DefaultLimit)
	if err != nil {
		writeError(w, fmt.Errorf("%w: limit=%q", catalog.ErrInvalidPagination, q.Get("limit")))
		return
	}

	videos, pagination, err := s.svc.List(r.Context(), q.Get("q"), page, limit)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			logger.Error().Err(err).
				Str(log.FieldEvent, "video.list_failed").
				Msg("video listing failed")
		}
		writeError(w, err)
		return
	}

	if videos == nil {
		videos = []catalog.Video{}
	}
	writeJSON(w, http.StatusOK, listResponse{Videos: videos, Pagination: pagination})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	videos, err := s.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.Error().Err(err).
			Str(log.FieldEvent, "video.search_failed").
			Msg("video search failed")
		writeError(w, err)
		return
	}

	if videos == nil {
		videos = []catalog.Video{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Videos: videos})
}

// queryInt parses an optional positive-integer query parameter.
func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
