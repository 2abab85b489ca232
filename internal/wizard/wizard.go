// Package wizard collects a new benchmark suite interactively and renders
// it as a catalog YAML file an operator can load via LATTE_LAB_SUITES.
package wizard

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// SuiteDraft holds all fields collected during the interactive wizard. The
// wizard seeds the file with one benchmark; operators add more by hand.
type SuiteDraft struct {
	ID               string
	Label            string
	BenchmarkID      string
	BenchmarkName    string
	Iterations       int
	BaseSuccess      float64
	LatencySeconds   float64
	CostUSD          float64
	FailureObjective string
	FailureReason    string
}

var kebabRe = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateID checks a suite or benchmark identifier: kebab-case, lowercase.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("identifier is required")
	}
	if !kebabRe.MatchString(id) {
		return fmt.Errorf("identifier must be kebab-case (got %q)", id)
	}
	return nil
}

const suiteYAMLTemplate = `suites:
  - id: {{ .ID }}
    label: {{ printf "%q" .Label }}
    benchmarks:
      - id: {{ .BenchmarkID }}
        name: {{ printf "%q" .BenchmarkName }}
        iterations: {{ .Iterations }}
        baseSuccess: {{ printf "%.2f" .BaseSuccess }}
        latencySeconds: {{ printf "%.2f" .LatencySeconds }}
        costUsd: {{ printf "%.5f" .CostUSD }}
        failureObjective: {{ printf "%q" .FailureObjective }}
        failureReason: {{ printf "%q" .FailureReason }}
`

// RunSuiteWizard runs an interactive huh form to collect suite metadata.
// If initialID is non-empty, it pre-populates the suite id field.
func RunSuiteWizard(in io.Reader, out io.Writer, initialID string) (*SuiteDraft, error) {
	var (
		id               = initialID
		label            string
		benchmarkName    string
		iterationsRaw    = "3"
		baseSuccessRaw   = "0.85"
		failureObjective string
		failureReason    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Suite id").
				Description("A kebab-case identifier for the suite").
				Placeholder("my-suite").
				Value(&id).
				Validate(func(s string) error {
					return ValidateID(strings.TrimSpace(s))
				}),
			huh.NewInput().
				Title("Suite label").
				Description("Display name shown on the dashboard").
				Placeholder("My Demo Suite").
				Value(&label).
				Validate(requireValue("label")),
			huh.NewInput().
				Title("First benchmark name").
				Description("The suite file starts with one benchmark; add more later").
				Placeholder("Happy Path Check").
				Value(&benchmarkName).
				Validate(requireValue("benchmark name")),
			huh.NewInput().
				Title("Iterations").
				Description("Target iteration count per run").
				Value(&iterationsRaw).
				Validate(validateInt),
			huh.NewInput().
				Title("Baseline success probability").
				Description("Between 0 and 1; noise is drawn around this").
				Value(&baseSuccessRaw).
				Validate(validateProbability),
			huh.NewInput().
				Title("Failure objective").
				Description("What a failure of this benchmark means").
				Placeholder("Response accuracy").
				Value(&failureObjective),
			huh.NewInput().
				Title("Failure reason").
				Description("Issue text shown in failure insights").
				Placeholder("Observed deviation in latest run.").
				Value(&failureReason),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	iterations, _ := strconv.Atoi(strings.TrimSpace(iterationsRaw))
	baseSuccess, _ := strconv.ParseFloat(strings.TrimSpace(baseSuccessRaw), 64)

	id = strings.TrimSpace(id)
	return &SuiteDraft{
		ID:               id,
		Label:            strings.TrimSpace(label),
		BenchmarkID:      id + "-check",
		BenchmarkName:    strings.TrimSpace(benchmarkName),
		Iterations:       iterations,
		BaseSuccess:      baseSuccess,
		LatencySeconds:   0.5,
		CostUSD:          0.0002,
		FailureObjective: strings.TrimSpace(failureObjective),
		FailureReason:    strings.TrimSpace(failureReason),
	}, nil
}

// GenerateSuiteYAML renders a catalog file from the given draft.
func GenerateSuiteYAML(draft *SuiteDraft) (string, error) {
	tmpl, err := template.New("suiteyaml").Parse(suiteYAMLTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, draft); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if v < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func validateProbability(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}
