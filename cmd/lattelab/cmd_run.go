package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spboyer/lattelab/internal/config"
	"github.com/spboyer/lattelab/internal/models"
)

func newRunCommand() *cobra.Command {
	var (
		suite     string
		threshold float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one benchmark run and persist it",
		Long: `Simulate one run for a suite, replace the suite snapshot, and append
a run-history record.

The threshold is recorded on the payload for dashboard display; it does not
change how benchmarks classify. Exit code 1 means the run completed but one
or more benchmarks failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			svc, closeStore, err := buildService(settings)
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			var thresholdPtr *float64
			if cmd.Flags().Changed("threshold") {
				thresholdPtr = &threshold
			}

			payload, record, err := svc.RunSimulation(cmd.Context(), suite, thresholdPtr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(payload); err != nil {
					return fmt.Errorf("encoding payload: %w", err)
				}
			} else {
				printRunTable(cmd, payload, record)
			}

			if payload.Summary.Failed > 0 {
				return &DegradedRunError{
					Message: fmt.Sprintf("%d of %d benchmarks failed", payload.Summary.Failed, payload.Summary.Total),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&suite, "suite", "output", "Suite to simulate (output, custom, crisis, all)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Display threshold recorded on the payload")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full payload as JSON")

	return cmd
}

func printRunTable(cmd *cobra.Command, payload models.SuitePayload, record models.RunRecord) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s — run %s (%s)\n\n", record.SuiteLabel, record.ID, record.Status)

	rows := [][]string{{"BENCHMARK", "STATUS", "RATE", "LATENCY", "TOKENS", "COST"}}
	for _, b := range payload.Benchmarks {
		rows = append(rows, []string{
			b.Name,
			string(b.Status),
			fmt.Sprintf("%.3f", b.SuccessRate),
			fmt.Sprintf("%.3fs", b.LatencySeconds),
			strconv.Itoa(b.TokensUsed),
			fmt.Sprintf("$%.5f", b.CostUSD),
		})
	}
	fmt.Fprint(out, renderTable(rows))

	fmt.Fprintf(out, "\n%d total, %d passed, %d failed\n",
		payload.Summary.Total, payload.Summary.Success, payload.Summary.Failed)

	for _, insight := range payload.FailureInsights {
		fmt.Fprintf(out, "\n%s: %s\n", insight.BenchmarkName, insight.TopIssues[0])
		fmt.Fprintf(out, "  fix: %s\n", insight.RecommendedFix)
	}
}
