// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // nil-safety contract
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRequestID(context.Background(), "req-7")
	logger := WithContext(ctx, base)
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry[FieldRequestID])
}

func TestWithComponent_AddsComponentField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Service: "gallery-test"})

	logger := WithComponent("store")
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry[FieldComponent])
}

func TestWithContext_NoFieldsWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := WithContext(context.Background(), base)
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry[FieldRequestID]
	assert.False(t, ok)
}
