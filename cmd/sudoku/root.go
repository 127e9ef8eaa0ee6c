package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Strategy-based Sudoku solver and benchmark harness",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl := slog.LevelInfo
			switch strings.ToLower(logLevel) {
			case "debug":
				lvl = slog.LevelDebug
			case "warn":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(
		newSolveCommand(),
		newStepCommand(),
		newCandidatesCommand(),
		newBenchCommand(),
		newServeCommand(),
	)
	return root
}
