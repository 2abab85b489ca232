// Package recommend produces the improvement recommendations attached to
// every simulated suite payload.
package recommend

import (
	"fmt"

	"github.com/spboyer/lattelab/internal/models"
)

// Impact levels used by the dashboard to order recommendation cards.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
)

// Build returns the recommendation pair for a suite. The records are
// templated per invocation: ids embed the suite so cards stay addressable
// when the dashboard shows several suites side by side, while the text is
// static product copy rather than something computed from the results.
func Build(suite string) []models.Recommendation {
	return []models.Recommendation{
		{
			ID:      fmt.Sprintf("rec-%s-playbook", suite),
			Title:   "Refresh evaluation playbook",
			Impact:  ImpactHigh,
			Summary: "Review the latest OmniBAR telemetry and confirm coverage of risky objectives.",
			Action:  "Draft a remediation checklist for the agent team.",
		},
		{
			ID:      fmt.Sprintf("rec-%s-guardrails", suite),
			Title:   "Tighten guardrails",
			Impact:  ImpactMedium,
			Summary: "Implement guardrail prompts for known failure modes captured in the insights panel.",
			Action:  "Experiment with a low-temperature retry policy and compare scores.",
		},
	}
}
