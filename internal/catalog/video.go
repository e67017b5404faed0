// SPDX-License-Identifier: MIT

// Package catalog holds the video catalog domain: the record type, input
// validation, YouTube ID extraction and the pure listing/search logic.
package catalog

import "time"

// Field limits for submitted entries.
const (
	MaxTitleLength  = 100
	MaxPromptLength = 1000
)

// Video is one catalog entry. The ID is the YouTube video identifier
// and doubles as the primary key; records are never updated in place.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Prompt        string    `json:"prompt"`
	YoutubeURL    string    `json:"youtubeUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	ThumbnailURLs []string  `json:"thumbnailUrls"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Collection is the persisted shape of the whole catalog, newest first.
type Collection struct {
	Videos []Video `json:"videos"`
}

// Input is a raw creation request before validation.
type Input struct {
	Title      string `json:"title"`
	Prompt     string `json:"prompt"`
	YoutubeURL string `json:"youtubeUrl"`
}
