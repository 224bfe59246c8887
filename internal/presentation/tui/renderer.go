package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Renderer transforms markdown before it is written out.
type Renderer func(string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
// Word wrap follows the terminal width when stdout is a terminal.
func NewRenderer() Renderer {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		opts = append(opts, glamour.WithWordWrap(w))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return Plain
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Plain returns markdown unchanged.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RendererFor picks glamour for terminals and plain markdown for pipes and
// files.
func RendererFor(w io.Writer) Renderer {
	if IsTerminal(w) {
		return NewRenderer()
	}
	return Plain
}
