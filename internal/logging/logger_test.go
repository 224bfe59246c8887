package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo)

	logger.Warn("save failed", "error", errors.New("disk full"))
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `err="disk full"`)
	assert.NotContains(t, out, "error=")
	assert.NotContains(t, out, "hidden")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(true))
	assert.Equal(t, slog.LevelInfo, Level(false))
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Error("ignored") })
}
