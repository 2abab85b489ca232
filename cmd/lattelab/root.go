package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lattelab",
		Short: "Latte Lab - benchmark simulation and prompt scoring backend",
		Long: `Latte Lab simulates benchmark-suite executions for the agent
evaluation dashboard and scores prompt text with a deterministic heuristic.

Runs are synthetic: each suite template is perturbed with bounded noise,
classified against a fixed threshold, and rolled up into the payload the
dashboard renders. Results persist in an embedded database.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newSuitesCommand())
	cmd.AddCommand(newExportCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
