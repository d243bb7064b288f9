// Package term detects terminals and builds [lipgloss.Renderer]s for them.
package term

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type fder interface {
	Fd() uintptr
}

var isTerminal = IsTerminal

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer creates a [lipgloss.Renderer] for w. Unless w is a terminal
// and plain is false, the renderer emits no escape sequences. On a terminal
// the color profile follows the environment (TERM, COLORTERM, NO_COLOR).
func NewRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	if plain || !isTerminal(w) {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.Ascii)

		return r
	}

	// isatty also recognizes Cygwin terminals, which termenv does not.
	return lipgloss.NewRenderer(w, termenv.WithTTY(true))
}
