package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/macropower/myproject/pkg/version"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidOutput = errors.New("invalid output format")

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version of the myproject CLI",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return writeVersion(cc.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputText, "Output format (text, json, yaml)")

	return cmd
}

func writeVersion(w io.Writer, output string) error {
	info := version.Get()

	switch output {
	case OutputText:
		_, err := fmt.Fprintln(w, info.Version)
		if err != nil {
			return fmt.Errorf("write version: %w", err)
		}

	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(info)
		if err != nil {
			return fmt.Errorf("encode version as json: %w", err)
		}

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(info)
		if err != nil {
			return fmt.Errorf("encode version as yaml: %w", err)
		}

		err = enc.Close()
		if err != nil {
			return fmt.Errorf("encode version as yaml: %w", err)
		}

	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, output)
	}

	return nil
}
