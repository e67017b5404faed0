// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate trims the input fields and checks the field constraints.
// Length limits apply to the trimmed values and count characters, not
// bytes. On success the returned Input carries the trimmed title and
// prompt.
func (in Input) Validate() (Input, error) {
	title := strings.TrimSpace(in.Title)
	prompt := strings.TrimSpace(in.Prompt)
	url := strings.TrimSpace(in.YoutubeURL)

	if title == "" || prompt == "" || url == "" {
		return Input{}, ErrMissingField
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return Input{}, fmt.Errorf("%w: %d > %d characters", ErrTitleTooLong, n, MaxTitleLength)
	}
	if n := utf8.RuneCountInString(prompt); n > MaxPromptLength {
		return Input{}, fmt.Errorf("%w: %d > %d characters", ErrPromptTooLong, n, MaxPromptLength)
	}

	return Input{Title: title, Prompt: prompt, YoutubeURL: url}, nil
}
