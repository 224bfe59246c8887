package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the extrude ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Steel-to-copper gradient
	lines := []struct {
		text, color string
	}{
		{"            _                  _      ", "#94a3b8"},
		{"   _____  _| |_ _ __ _   _  __| | ___ ", "#a3a3a3"},
		{"  / _ \\ \\/ / __| '__| | | |/ _` |/ _ \\", "#d6a77a"},
		{" |  __/>  <| |_| |  | |_| | (_| |  __/", "#c97b4a"},
		{"  \\___/_/\\_\\\\__|_|   \\__,_|\\__,_|\\___|", "#b45309"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status colors a short status word: green for ok, red otherwise.
func Status(ok bool, text string) string {
	p := termenv.ColorProfile()
	color := "#22c55e"
	if !ok {
		color = "#ef4444"
	}
	return termenv.String(text).Foreground(p.Color(color)).Bold().String()
}
