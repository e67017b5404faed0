// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractVideoID parses a YouTube URL into the canonical video ID.
// Recognised forms are watch URLs (youtube.com/watch?v=<id>) and short
// links (youtu.be/<id>). Any other host, or a URL without an ID, is
// rejected with ErrInvalidSourceURL. Pure; no network access.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceURL, rawURL)
	}

	var id string
	switch {
	case strings.Contains(u.Hostname(), "youtube.com"):
		id = u.Query().Get("v")
	case u.Hostname() == "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
		if i := strings.IndexByte(id, '/'); i >= 0 {
			id = id[:i]
		}
	}

	if id == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceURL, rawURL)
	}
	return id, nil
}
