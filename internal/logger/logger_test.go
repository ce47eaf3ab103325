package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := New("warn", FormatJSON, &buf)
	require.NoError(t, err)

	log.Info("skipped")
	log.Warn("kept", "user_id", 42)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(42), line["user_id"])
}

func TestNewRejectsUnknownInput(t *testing.T) {
	_, err := New("loud", FormatText, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := AddToContext(context.Background(), log)

	assert.Same(t, log, GetFromContext(ctx))
	assert.Same(t, slog.Default(), GetFromContext(context.Background()))
}
