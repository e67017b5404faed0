// SPDX-License-Identifier: MIT

// Package service implements the catalog operations against the store:
// creation with dedup and capacity enforcement, listing with search and
// pagination, and the bulk seed reset.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/soraprompt/gallery/internal/catalog"
	"github.com/soraprompt/gallery/internal/config"
	"github.com/soraprompt/gallery/internal/log"
	"github.com/soraprompt/gallery/internal/store"
	"github.com/soraprompt/gallery/internal/thumbnail"
)

// Service exposes the catalog operations backed by the store.
type Service struct {
	store  *store.Store
	cfg    *config.Config
	logger zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// New builds a Service on top of the given store.
func New(st *store.Store, cfg *config.Config) *Service {
	return &Service{
		store:  st,
		cfg:    cfg,
		logger: log.WithComponent("service"),
		now:    time.Now,
	}
}

// Create validates the input, derives the video ID and appends a new
// record. The dedup check, capacity check and append run as one store
// operation, so two racing requests for the same ID cannot both pass
// the check.
func (s *Service) Create(ctx context.Context, in catalog.Input) (catalog.Video, error) {
	in, err := in.Validate()
	if err != nil {
		return catalog.Video{}, err
	}

	id, err := catalog.ExtractVideoID(in.YoutubeURL)
	if err != nil {
		return catalog.Video{}, err
	}

	var created catalog.Video
	err = s.store.Update(ctx, func(c *catalog.Collection) error {
		for _, v := range c.Videos {
			if v.ID == id {
				return fmt.Errorf("%w: %s", catalog.ErrDuplicateID, id)
			}
		}
		if len(c.Videos) >= s.cfg.MaxVideos {
			return fmt.Errorf("%w: limit %d reached", catalog.ErrCapacityExceeded, s.cfg.MaxVideos)
		}

		created = catalog.Video{
			ID:            id,
			Title:         in.Title,
			Prompt:        in.Prompt,
			YoutubeURL:    in.YoutubeURL,
			ThumbnailURL:  thumbnail.CanonicalURL(id),
			ThumbnailURLs: thumbnail.Candidates(id),
			CreatedAt:     s.now().UTC(),
		}
		c.Videos = append([]catalog.Video{created}, c.Videos...)
		return nil
	})
	if err != nil {
		return catalog.Video{}, err
	}

	s.logger.Info().
		Str(log.FieldEvent, "video.created").
		Str(log.FieldVideoID, created.ID).
		Msg("video added to catalog")
	return created, nil
}

// List returns one page of the (optionally filtered) collection in its
// stored order, newest first, together with the pagination envelope.
func (s *Service) List(ctx context.Context, query string, page, limit int) ([]catalog.Video, catalog.Page, error) {
	coll, err := s.store.Load(ctx)
	if err != nil {
		return nil, catalog.Page{}, err
	}

	filtered := catalog.Filter(coll.Videos, query)
	return catalog.Paginate(filtered, page, limit)
}

// Search returns every match for the query, sorted by creation time
// descending.
func (s *Service) Search(ctx context.Context, query string) ([]catalog.Video, error) {
	coll, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := catalog.Filter(coll.Videos, query)
	out := make([]catalog.Video, len(matched))
	copy(out, matched)
	catalog.SortNewestFirst(out)
	return out, nil
}
