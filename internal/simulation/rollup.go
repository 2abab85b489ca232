package simulation

import (
	"time"

	"github.com/spboyer/lattelab/internal/models"
)

const (
	fallbackRunName       = "Calculator Demo"
	fallbackRunIterations = 3
	queuedRunName         = "OmniBAR Snapshot Builder"
	queuedRunIterations   = 5
)

// summarize counts results by status. Total always equals Success + Failed.
func summarize(results []models.BenchmarkResult) models.Summary {
	summary := models.Summary{Total: len(results)}
	for _, b := range results {
		if b.Status == models.BenchmarkSuccess {
			summary.Success++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// liveRunStubs fabricates the two live-execution cards: a completed run
// borrowing the first benchmark's identity, and a queued snapshot build
// that has not started (nil StartedAt).
func (e *Engine) liveRunStubs(benchmarks []models.BenchmarkResult, asOf time.Time) []models.LiveRun {
	name, iterations := fallbackRunName, fallbackRunIterations
	if len(benchmarks) > 0 {
		name, iterations = benchmarks[0].Name, benchmarks[0].Iterations
	}
	started := asOf
	return []models.LiveRun{
		{
			ID:               e.newID(),
			BenchmarkName:    name,
			Status:           models.LiveRunCompleted,
			CurrentIteration: iterations,
			TotalIterations:  iterations,
			StartedAt:        &started,
		},
		{
			ID:               e.newID(),
			BenchmarkName:    queuedRunName,
			Status:           models.LiveRunQueued,
			CurrentIteration: 0,
			TotalIterations:  queuedRunIterations,
		},
	}
}
