package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/config"
	"github.com/spboyer/lattelab/internal/wizard"
)

func newSuitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suites",
		Short: "Inspect and author benchmark suite catalogs",
	}

	cmd.AddCommand(newSuitesListCommand())
	cmd.AddCommand(newSuitesShowCommand())
	cmd.AddCommand(newSuitesValidateCommand())
	cmd.AddCommand(newSuitesInitCommand())

	return cmd
}

func newSuitesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the suites in the active catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			cat, err := loadCatalog(settings)
			if err != nil {
				return err
			}

			rows := [][]string{{"ID", "LABEL", "BENCHMARKS"}}
			for _, id := range cat.SuiteIDs() {
				rows = append(rows, []string{id, cat.Label(id), strconv.Itoa(len(cat.Resolve(id)))})
			}
			rows = append(rows, []string{catalog.SuiteAll, cat.Label(catalog.SuiteAll), strconv.Itoa(len(cat.Resolve(catalog.SuiteAll)))})

			fmt.Fprint(cmd.OutOrStdout(), renderTable(rows))
			return nil
		},
	}
}

func newSuitesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <suite-id>",
		Short: "Show the benchmark templates of a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			cat, err := loadCatalog(settings)
			if err != nil {
				return err
			}

			suite := args[0]
			templates := cat.Resolve(suite)
			if len(templates) == 0 {
				return fmt.Errorf("suite %q has no benchmarks (unknown suite?)", suite)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", cat.Label(suite))
			rows := [][]string{{"ID", "NAME", "ITER", "BASE RATE", "LATENCY", "COST"}}
			for _, tpl := range templates {
				rows = append(rows, []string{
					tpl.ID,
					tpl.Name,
					strconv.Itoa(tpl.Iterations),
					fmt.Sprintf("%.2f", tpl.BaseSuccess),
					fmt.Sprintf("%.2fs", tpl.LatencySeconds),
					fmt.Sprintf("$%.5f", tpl.CostUSD),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(rows))
			return nil
		},
	}
}

func newSuitesValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "Validate a suite catalog file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading catalog file: %w", err)
			}

			if errs := catalog.ValidateSuiteBytes(data); len(errs) > 0 {
				for _, msg := range errs {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", msg)
				}
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(errs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}

func newSuitesInitCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "init <suite-id>",
		Short: "Scaffold a suite catalog file",
		Long: `Scaffold a new suite catalog YAML file.

On a terminal this runs an interactive wizard; otherwise a starter file is
generated from defaults. Point LATTE_LAB_SUITES at the file to load it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suiteID := args[0]
			if err := wizard.ValidateID(suiteID); err != nil {
				return err
			}
			if outPath == "" {
				outPath = suiteID + ".suites.yaml"
			}
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists", outPath)
			}

			var draft *wizard.SuiteDraft
			isTTY := false
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				isTTY = term.IsTerminal(int(f.Fd()))
			}
			if isTTY {
				var err error
				draft, err = wizard.RunSuiteWizard(cmd.InOrStdin(), cmd.OutOrStdout(), suiteID)
				if err != nil {
					return err
				}
				// The CLI argument wins over whatever the form holds.
				if draft.ID != suiteID {
					return fmt.Errorf("wizard suite id %q does not match CLI argument %q", draft.ID, suiteID)
				}
			} else {
				draft = defaultDraft(suiteID)
			}

			content, err := wizard.GenerateSuiteYAML(draft)
			if err != nil {
				return fmt.Errorf("generating suite file: %w", err)
			}
			// The generated file must load through the same validated
			// path operators use.
			if _, err := catalog.Parse([]byte(content)); err != nil {
				return fmt.Errorf("generated catalog failed validation: %w", err)
			}

			if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nSet %s=%s to load it.\n", outPath, config.EnvSuitesFile, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default <suite-id>.suites.yaml)")

	return cmd
}

func defaultDraft(suiteID string) *wizard.SuiteDraft {
	title := cases.Title(language.English)
	label := title.String(strings.ReplaceAll(suiteID, "-", " ")) + " Suite"
	return &wizard.SuiteDraft{
		ID:               suiteID,
		Label:            label,
		BenchmarkID:      suiteID + "-check",
		BenchmarkName:    "Happy Path Check",
		Iterations:       3,
		BaseSuccess:      0.85,
		LatencySeconds:   0.5,
		CostUSD:          0.0002,
		FailureObjective: "Response accuracy",
		FailureReason:    "Observed deviation in latest run.",
	}
}
