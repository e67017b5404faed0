// SPDX-License-Identifier: MIT

// Package thumbnail derives YouTube thumbnail URLs for a video ID and
// implements the client-side fallback chain over them.
package thumbnail

import "fmt"

// PlaceholderURL is the static image shown once every candidate failed.
const PlaceholderURL = "https://placehold.co/640x360/eee/999?text=Video+Unavailable"

// canonicalIndex selects the tier stored as a record's canonical
// thumbnailUrl (hqdefault, 480x360).
const canonicalIndex = 2

// Candidates returns the server-side thumbnail tiers for a video ID, in
// ascending resolution. The result depends only on id: same input, same
// ordered list, every time.
func Candidates(id string) []string {
	return []string{
		fmt.Sprintf("https://img.youtube.com/vi/%s/default.jpg", id),      // 120x90
		fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id),    // 320x180
		fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id),    // 480x360
		fmt.Sprintf("https://img.youtube.com/vi/%s/sddefault.jpg", id),    // 640x480
		fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id), // 1920x1080
	}
}

// CanonicalURL returns the tier used as a record's single thumbnailUrl.
func CanonicalURL(id string) string {
	return Candidates(id)[canonicalIndex]
}

// FallbackCandidates returns the display-side chain in descending
// resolution, terminated by the static placeholder.
func FallbackCandidates(id string) []string {
	return []string{
		fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id), // 480x360
		fmt.Sprintf("https://i.ytimg.com/vi/%s/mqdefault.jpg", id), // 320x180
		fmt.Sprintf("https://i.ytimg.com/vi/%s/default.jpg", id),   // 120x90
		PlaceholderURL,
	}
}
