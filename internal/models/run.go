package models

import "time"

// RunRecordStatus summarizes how a persisted simulation run went.
type RunRecordStatus string

const (
	// RunCompleted means every benchmark in the run classified as success.
	RunCompleted RunRecordStatus = "completed"
	// RunAttention means at least one benchmark failed and needs follow-up.
	RunAttention RunRecordStatus = "attention"
)

// RunRecord is the append-only history row written once per simulation
// invocation. Records are never mutated after being written.
type RunRecord struct {
	ID             string          `json:"id"`
	Suite          string          `json:"suite"`
	SuiteLabel     string          `json:"suiteLabel"`
	RequestedAt    time.Time       `json:"requestedAt"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	Summary        Summary         `json:"summary"`
	BenchmarkCount int             `json:"benchmarkCount"`
	Success        int             `json:"success"`
	Failed         int             `json:"failed"`
	Status         RunRecordStatus `json:"status"`
	Threshold      *float64        `json:"threshold"`
}

// SnapshotRecord wraps the most recently generated payload for a suite.
type SnapshotRecord struct {
	Suite     string       `json:"suite"`
	Data      SuitePayload `json:"data"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
