package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spboyer/lattelab/internal/models"
	"github.com/spboyer/lattelab/internal/promptscore"
)

func newScoreCommand() *cobra.Command {
	var (
		filePath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "score [prompt text]",
		Short: "Score prompt text with the quality heuristic",
		Long: `Score arbitrary prompt text with the multi-factor quality heuristic.

The prompt comes from the arguments, from --file, or from stdin when
neither is given. Scoring is deterministic: the same prompt always yields
the same breakdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPrompt(cmd, args, filePath)
			if err != nil {
				return err
			}

			breakdown := promptscore.HeuristicScorer{}.Score(text)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(breakdown); err != nil {
					return fmt.Errorf("encoding breakdown: %w", err)
				}
				return nil
			}

			printScoreTable(out, breakdown)
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Read the prompt from a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the breakdown as JSON")

	return cmd
}

func readPrompt(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading prompt file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading prompt from stdin: %w", err)
	}
	return string(data), nil
}

func printScoreTable(out io.Writer, breakdown models.QualityScoreBreakdown) {
	rows := [][]string{
		{"FACTOR", "SCORE"},
		{"length", fmt.Sprintf("%.3f", breakdown.Length)},
		{"structure", fmt.Sprintf("%.3f", breakdown.Structure)},
		{"clarity", fmt.Sprintf("%.3f", breakdown.Clarity)},
		{"actionability", fmt.Sprintf("%.3f", breakdown.Actionability)},
		{"combined", fmt.Sprintf("%.3f", breakdown.Combined)},
	}
	fmt.Fprint(out, renderTable(rows))
	fmt.Fprintf(out, "\n%s\n", breakdown.Feedback)
}
