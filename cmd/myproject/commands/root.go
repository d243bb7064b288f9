package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/myproject/pkg/log"
	"github.com/macropower/myproject/pkg/version"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	var prof *profiler

	stopProfiler := func() error {
		if prof == nil {
			return nil
		}

		p := prof
		prof = nil

		return p.Stop()
	}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().String(flagLogLevel, "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String(flagLogFormat, "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentFlags().String(flagCPUProfile, "", "Write a CPU profile to this file")
	cmd.PersistentFlags().String(flagMemProfile, "", "Write a memory profile to this file")
	cmd.PersistentFlags().Int(flagMemProfileRate, 512*1024, "Memory profiling rate as a fraction")

	must(cmd.MarkPersistentFlagFilename(flagCPUProfile))
	must(cmd.MarkPersistentFlagFilename(flagMemProfile))
	must(args.Bind(cmd.PersistentFlags()))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		prof, err = startProfiler(args)
		if err != nil {
			return err
		}

		slog.Debug("ready to go", "version", version.Version)

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return stopProfiler()
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewHelloCmd())

	for _, sub := range cmd.Commands() {
		stopOnError(sub, stopProfiler)
	}

	return cmd
}

// stopOnError runs stop when cmd fails. Cobra skips PersistentPostRunE after
// a failed RunE, so the profiler would otherwise keep running.
func stopOnError(cmd *cobra.Command, stop func() error) {
	runE := cmd.RunE
	if runE == nil {
		return
	}

	cmd.RunE = func(cc *cobra.Command, args []string) error {
		err := runE(cc, args)
		if err == nil {
			return nil
		}

		if stopErr := stop(); stopErr != nil {
			return multierror.Append(err, stopErr)
		}

		return err
	}
}
