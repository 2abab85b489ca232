package models

import "time"

// BenchmarkStatus classifies a simulated benchmark result.
type BenchmarkStatus string

const (
	BenchmarkSuccess BenchmarkStatus = "success"
	BenchmarkFailed  BenchmarkStatus = "failed"
)

// BenchmarkTemplate is the static configuration for one benchmark scenario.
// Templates are defined per suite and never mutated; every simulated result
// starts from a template's baseline numbers.
type BenchmarkTemplate struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Suite            string  `json:"suite" yaml:"suite"`
	Iterations       int     `json:"iterations" yaml:"iterations"`
	BaseSuccess      float64 `json:"baseSuccess" yaml:"baseSuccess"`
	LatencySeconds   float64 `json:"latencySeconds" yaml:"latencySeconds"`
	CostUSD          float64 `json:"costUsd" yaml:"costUsd"`
	FailureObjective string  `json:"failureObjective" yaml:"failureObjective"`
	FailureReason    string  `json:"failureReason" yaml:"failureReason"`
	FailureCategory  string  `json:"failureCategory,omitempty" yaml:"failureCategory,omitempty"`
}

// HistoryEntry is one point in a benchmark's synthetic evaluation history.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Objective string    `json:"objective"`
	Result    bool      `json:"result"`
	Message   string    `json:"message"`
}

// FailureRef describes the most recent failure attached to a failed benchmark.
type FailureRef struct {
	Objective string `json:"objective"`
	Reason    string `json:"reason"`
	Category  string `json:"category"`
}

// BenchmarkResult is one simulated outcome for a template. Field names are
// part of the dashboard wire format and must not change.
type BenchmarkResult struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Iterations           int             `json:"iterations"`
	SuccessRate          float64         `json:"successRate"`
	Status               BenchmarkStatus `json:"status"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	Suite                string          `json:"suite"`
	LatencySeconds       float64         `json:"latencySeconds"`
	TokensUsed           int             `json:"tokensUsed"`
	CostUSD              float64         `json:"costUsd"`
	ConfidenceReported   float64         `json:"confidenceReported"`
	ConfidenceCalibrated float64         `json:"confidenceCalibrated"`
	History              []HistoryEntry  `json:"history"`
	LatestFailure        *FailureRef     `json:"latestFailure,omitempty"`
}

// FailureInsight is the derived analytics record for a failed benchmark.
// One insight exists per failed result in a payload, never for successes.
type FailureInsight struct {
	ID              string         `json:"id"`
	BenchmarkID     string         `json:"benchmarkId"`
	BenchmarkName   string         `json:"benchmarkName"`
	FailureRate     float64        `json:"failureRate"`
	LastFailureAt   time.Time      `json:"lastFailureAt"`
	TopIssues       []string       `json:"topIssues"`
	RecommendedFix  string         `json:"recommendedFix"`
	FailureCategory string         `json:"failureCategory"`
	History         []HistoryEntry `json:"history"`
}
