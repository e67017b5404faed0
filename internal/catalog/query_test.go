// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVideos(n int) []Video {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	videos := make([]Video, 0, n)
	// Newest first, matching the collection's prepend order.
	for i := n - 1; i >= 0; i-- {
		videos = append(videos, Video{
			ID:        fmt.Sprintf("vid%03d", i),
			Title:     fmt.Sprintf("Title %d", i),
			Prompt:    fmt.Sprintf("Prompt number %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return videos
}

func TestFilter(t *testing.T) {
	videos := []Video{
		{ID: "a", Title: "A stylish woman in Tokyo", Prompt: "neon signs at night"},
		{ID: "b", Title: "Octopus", Prompt: "deep OCEAN, bioluminescent"},
		{ID: "c", Title: "Corgi on a bicycle", Prompt: "san francisco streets"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all", "", []string{"a", "b", "c"}},
		{"title match", "tokyo", []string{"a"}},
		{"prompt match", "francisco", []string{"c"}},
		{"case-insensitive", "OcEaN", []string{"b"}},
		{"substring across records", "o", []string{"a", "b", "c"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(videos, tt.query)
			ids := make([]string, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPaginate_InvalidParams(t *testing.T) {
	videos := sampleVideos(3)

	for _, tc := range []struct{ page, limit int }{
		{0, 20}, {-1, 20}, {1, 0}, {1, -5}, {1, 101},
	} {
		_, _, err := Paginate(videos, tc.page, tc.limit)
		assert.ErrorIs(t, err, ErrInvalidPagination, "page=%d limit=%d", tc.page, tc.limit)
	}

	// Boundary: limit 100 is allowed.
	_, _, err := Paginate(videos, 1, 100)
	assert.NoError(t, err)
}

func TestPaginate_Slicing(t *testing.T) {
	videos := sampleVideos(25)

	items, page, err := Paginate(videos, 2, 10)
	require.NoError(t, err)

	assert.Len(t, items, 10)
	assert.Equal(t, videos[10].ID, items[0].ID)
	assert.Equal(t, Page{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, page)

	// Last page holds the remainder.
	items, _, err = Paginate(videos, 3, 10)
	require.NoError(t, err)
	assert.Len(t, items, 5)

	// Pages past the end are empty, not an error.
	items, page, err = Paginate(videos, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 25, page.Total)
}

func TestPaginate_AllPagesReproduceFilteredSet(t *testing.T) {
	videos := sampleVideos(23)
	limit := 7

	_, first, err := Paginate(videos, 1, limit)
	require.NoError(t, err)
	assert.Equal(t, 4, first.TotalPages)

	var concat []Video
	for p := 1; p <= first.TotalPages; p++ {
		items, _, err := Paginate(videos, p, limit)
		require.NoError(t, err)
		concat = append(concat, items...)
	}

	assert.Equal(t, videos, concat)
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	videos := []Video{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Minute)},
	}

	SortNewestFirst(videos)

	assert.Equal(t, "new", videos[0].ID)
	assert.Equal(t, "mid", videos[1].ID)
	assert.Equal(t, "old", videos[2].ID)
}

func TestSortNewestFirst_StableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	videos := []Video{
		{ID: "first", CreatedAt: ts},
		{ID: "second", CreatedAt: ts},
		{ID: "third", CreatedAt: ts},
	}

	SortNewestFirst(videos)

	assert.Equal(t, []string{"first", "second", "third"},
		[]string{videos[0].ID, videos[1].ID, videos[2].ID})
}
