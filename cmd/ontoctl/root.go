package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the root command's persistent flags; a pointer to it is
// passed to every subcommand's constructor.
type globalFlags struct {
	input    string
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "ontoctl",
		Short:         "Drive an ontology graph's CORE API from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flags.input, "input", "", "canonical project JSON file (required)")
	root.PersistentFlags().StringVar(&flags.output, "output", "", "output file (stdout if empty)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: error|warn|info|debug")

	root.AddCommand(
		newFocusCmd(flags),
		newClusterCmd(flags),
		newDeleteCmd(flags),
		newExpandCmd(flags),
		newFoldCmd(flags),
		newAbstractCmd(flags),
		newStatsCmd(flags),
	)

	return root
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", level)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}
