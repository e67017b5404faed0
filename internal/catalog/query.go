// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Filter returns the videos whose title or prompt contains query,
// case-insensitively, preserving order. An empty query matches all.
func Filter(videos []Video, query string) []Video {
	if query == "" {
		return videos
	}
	q := strings.ToLower(query)

	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Prompt), q) {
			out = append(out, v)
		}
	}
	return out
}

// Page is the pagination envelope returned alongside a listing.
type Page struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Paginate validates the parameters and slices the filtered set.
// page starts at 1; limit must be in [1,100]. Total reflects the
// filtered count, not the unfiltered collection.
func Paginate(videos []Video, page, limit int) ([]Video, Page, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return nil, Page{}, fmt.Errorf("%w: page=%d limit=%d", ErrInvalidPagination, page, limit)
	}

	total := len(videos)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return videos[start:end], Page{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// SortNewestFirst orders videos by creation time, newest first. The
// sort is stable so records sharing a timestamp keep insertion order.
func SortNewestFirst(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}
