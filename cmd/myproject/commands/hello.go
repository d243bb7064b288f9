package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/macropower/myproject/pkg/greeting"
	"github.com/macropower/myproject/pkg/term"
)

var ErrInvalidLanguage = errors.New("invalid language")

// NewHelloCmd returns the hello command.
func NewHelloCmd() *cobra.Command {
	var (
		lang  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "hello [name...]",
		Short: "Print a greeting",
		Long:  "Print a greeting for each name, or for the world if no names are given.",
		RunE: func(cc *cobra.Command, names []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
			}

			lines := []string{greeting.Hello()}
			if len(names) > 0 {
				g := greeting.NewGreeter(greeting.WithLanguage(tag))

				lines = make([]string, 0, len(names))
				for _, name := range names {
					lines = append(lines, g.Greet(name))
				}
			}

			out := cc.OutOrStdout()
			style := term.NewRenderer(out, plain).NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

			for _, line := range lines {
				slog.Debug("greeting", "text", line, "lang", tag.String())

				_, err = fmt.Fprintln(out, style.Render(line))
				if err != nil {
					return fmt.Errorf("write greeting: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "BCP 47 language tag used to capitalize names")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling even when writing to a terminal")

	return cmd
}
