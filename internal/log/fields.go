// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldVideoID   = "video_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Store fields
	FieldPath       = "path"
	FieldQueueDepth = "queue_depth"
)
