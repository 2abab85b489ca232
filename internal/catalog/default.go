package catalog

import "github.com/spboyer/lattelab/internal/models"

const (
	allLabel               = "Run Everything"
	defaultFailureCategory = "quality"
)

// Default returns the built-in catalog: the three demo suites the dashboard
// ships with. Baseline numbers are tuned so that most benchmarks hover near
// the 0.8 classification threshold and runs show a mix of outcomes.
func Default() *Catalog {
	return New([]Suite{
		{
			ID:    "output",
			Label: "Calculator Demo Suite",
			Benchmarks: []models.BenchmarkTemplate{
				{
					ID:               "calc-string-check",
					Name:             "Addition String Check",
					Iterations:       5,
					BaseSuccess:      0.93,
					LatencySeconds:   0.42,
					CostUSD:          0.00015,
					FailureObjective: "Addition accurate",
					FailureReason:    "Mismatch between expected string and response.",
				},
				{
					ID:               "calc-regex-match",
					Name:             "Multiplication Regex",
					Iterations:       4,
					BaseSuccess:      0.88,
					LatencySeconds:   0.38,
					CostUSD:          0.00012,
					FailureObjective: "Regex captures product",
					FailureReason:    "Output failed to match the expected multiplication pattern.",
				},
				{
					ID:               "calc-objective-run",
					Name:             "Combined Objective Run",
					Iterations:       3,
					BaseSuccess:      0.81,
					LatencySeconds:   0.55,
					CostUSD:          0.0002,
					FailureObjective: "All calculator objectives pass",
					FailureReason:    "One or more scenarios returned incorrect arithmetic.",
				},
			},
		},
		{
			ID:    "custom",
			Label: "Custom Agents Suite",
			Benchmarks: []models.BenchmarkTemplate{
				{
					ID:               "custom-weather",
					Name:             "Weather Agent Scenario",
					Iterations:       6,
					BaseSuccess:      0.79,
					LatencySeconds:   0.72,
					CostUSD:          0.00032,
					FailureObjective: "Weather summary accuracy",
					FailureReason:    "Temperature range omitted or mismatched city.",
				},
				{
					ID:               "custom-translate",
					Name:             "Translation Agent Accuracy",
					Iterations:       5,
					BaseSuccess:      0.84,
					LatencySeconds:   0.63,
					CostUSD:          0.00029,
					FailureObjective: "EN→ES translation fidelity",
					FailureReason:    "Idiomatic phrase translated too literally.",
				},
				{
					ID:               "custom-fallbacks",
					Name:             "Fallback Strategy Guardrails",
					Iterations:       4,
					BaseSuccess:      0.75,
					LatencySeconds:   0.81,
					CostUSD:          0.00033,
					FailureObjective: "Escalation to human",
					FailureReason:    "Agent failed to surface escalation guidance after tool failure.",
				},
			},
		},
		{
			ID:    "crisis",
			Label: "Crisis Command Suite",
			Benchmarks: []models.BenchmarkTemplate{
				{
					ID:               "crisis-inventory",
					Name:             "Inventory Fulfillment",
					Iterations:       7,
					BaseSuccess:      0.77,
					LatencySeconds:   0.94,
					CostUSD:          0.00041,
					FailureObjective: "Backorder mitigation",
					FailureReason:    "Critical SKUs not prioritized during shortage.",
				},
				{
					ID:               "crisis-routing",
					Name:             "Crisis Routing Plan",
					Iterations:       6,
					BaseSuccess:      0.7,
					LatencySeconds:   1.02,
					CostUSD:          0.00037,
					FailureObjective: "Delivery routing",
					FailureReason:    "Suboptimal route increased ETA beyond policy.",
				},
				{
					ID:               "crisis-communication",
					Name:             "Stakeholder Comms",
					Iterations:       5,
					BaseSuccess:      0.83,
					LatencySeconds:   0.88,
					CostUSD:          0.00035,
					FailureObjective: "Escalation cadence",
					FailureReason:    "Status updates missed 30-min SLA window.",
				},
			},
		},
	})
}
