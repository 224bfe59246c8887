package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "\n"), 7)
}

func TestRendererFor_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	out, err := RendererFor(&buf)("# title")
	require.NoError(t, err)
	assert.Equal(t, "# title", out)
}

func TestNewRenderer(t *testing.T) {
	out, err := NewRenderer()("**bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
}

func TestStatus(t *testing.T) {
	assert.Contains(t, Status(true, "ok"), "ok")
	assert.Contains(t, Status(false, "failed"), "failed")
}
