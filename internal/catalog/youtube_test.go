// SPDX-License-Identifier: MIT

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=abc123", "abc123", false},
		{"watch url without www", "https://youtube.com/watch?v=abc123", "abc123", false},
		{"mobile watch url", "https://m.youtube.com/watch?v=abc123", "abc123", false},
		{"watch url with extra params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123", false},
		{"short link", "https://youtu.be/abc123", "abc123", false},
		{"short link with query", "https://youtu.be/abc123?si=xyz", "abc123", false},
		{"short link with trailing path", "https://youtu.be/abc123/extra", "abc123", false},
		{"other host", "https://vimeo.com/12345", "", true},
		{"watch url without v param", "https://www.youtube.com/watch", "", true},
		{"short link without id", "https://youtu.be/", "", true},
		{"not a url", "://not a url", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSourceURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
