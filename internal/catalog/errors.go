// SPDX-License-Identifier: MIT

package catalog

import "errors"

// Sentinel errors for validation and business-rule failures. Handlers
// map these to stable HTTP status classes via errors.Is.
var (
	ErrMissingField      = errors.New("missing or empty required field")
	ErrTitleTooLong      = errors.New("title exceeds maximum length")
	ErrPromptTooLong     = errors.New("prompt exceeds maximum length")
	ErrInvalidSourceURL  = errors.New("invalid YouTube URL")
	ErrDuplicateID       = errors.New("video already exists")
	ErrCapacityExceeded  = errors.New("video collection is full")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
