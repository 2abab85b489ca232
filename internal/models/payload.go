package models

import "time"

// LiveRunStatus is the lifecycle state of a live-run stub.
type LiveRunStatus string

const (
	LiveRunCompleted LiveRunStatus = "completed"
	LiveRunQueued    LiveRunStatus = "queued"
)

// Summary is the aggregate count block of a suite payload.
// Total always equals Success + Failed.
type Summary struct {
	Total   int `json:"total" mapstructure:"total"`
	Success int `json:"success" mapstructure:"success"`
	Failed  int `json:"failed" mapstructure:"failed"`
}

// LiveRun is a fixed-shape live execution stub shown on the dashboard.
// StartedAt is null for queued runs.
type LiveRun struct {
	ID               string        `json:"id"`
	BenchmarkName    string        `json:"benchmarkName"`
	Status           LiveRunStatus `json:"status"`
	CurrentIteration int           `json:"currentIteration"`
	TotalIterations  int           `json:"totalIterations"`
	StartedAt        *time.Time    `json:"startedAt"`
}

// Recommendation is one templated improvement suggestion attached to a payload.
type Recommendation struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Impact  string `json:"impact"`
	Summary string `json:"summary"`
	Action  string `json:"action"`
}

// SuitePayload is the full simulated result set for one suite request.
// It is the unit persisted as a snapshot and returned to the dashboard.
type SuitePayload struct {
	Benchmarks      []BenchmarkResult `json:"benchmarks"`
	Summary         Summary           `json:"summary"`
	LiveRuns        []LiveRun         `json:"liveRuns"`
	FailureInsights []FailureInsight  `json:"failureInsights"`
	Recommendations []Recommendation  `json:"recommendations"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	Threshold       *float64          `json:"threshold"`
}
