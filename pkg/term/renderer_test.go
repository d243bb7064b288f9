package term_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/myproject/pkg/term"
)

func TestNewRendererTerminal(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	t.Cleanup(term.SetIsTerminal(func(io.Writer) bool { return true }))

	tcs := map[string]struct {
		wantProfile termenv.Profile
		wantStyled  bool
		plain       bool
	}{
		"styled": {
			wantProfile: termenv.TrueColor,
			wantStyled:  true,
		},
		"plain": {
			plain:       true,
			wantProfile: termenv.Ascii,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := term.NewRenderer(&bytes.Buffer{}, tc.plain)
			assert.Equal(t, tc.wantProfile, r.ColorProfile())

			got := r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Render("Hello")
			if tc.wantStyled {
				assert.Contains(t, got, "\x1b[")
				assert.Contains(t, got, "Hello")
			} else {
				assert.Equal(t, "Hello", got)
			}
		})
	}
}
