// Package simulation generates synthetic benchmark telemetry: bounded
// pseudo-random perturbation of suite templates plus the derived failure
// insights and rollups the dashboard renders.
package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/models"
	"github.com/spboyer/lattelab/internal/recommend"
)

// Classification threshold and noise bounds for simulated results. The
// threshold is fixed: a caller-supplied threshold is recorded on the payload
// for display but never changes classification.
const (
	successThreshold  = 0.8
	minLatencySeconds = 0.08
	baseTokens        = 600

	successJitter     = 0.08
	latencyJitterLow  = -0.20
	latencyJitterHigh = 0.25
	costJitter        = 0.0002
	tokenJitterLow    = -80
	tokenJitterHigh   = 120
)

const (
	historyDepth   = 3
	historySpacing = 5 * time.Minute
	historyMessage = "Objective evaluated via OmniBAR mock snapshot."
)

// Engine simulates suite executions. The random source and clock are
// injected so runs can be made deterministic for tests. An Engine is safe
// for concurrent use; construct with NewEngine.
type Engine struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the engine's random draws reproducible.
// A negative seed keeps the non-deterministic default.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed >= 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithClock replaces the time source. Each Simulate call reads the clock
// exactly once and derives every timestamp in the payload from that instant.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a simulation engine over the given catalog.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		rng:     rand.New(rand.NewSource(rand.Int63())),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine simulates from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Simulate produces the full payload for one suite request. Unknown suite
// ids yield an empty, valid payload with zero counts rather than an error.
func (e *Engine) Simulate(suite string, threshold *float64) models.SuitePayload {
	asOf := e.now().UTC()
	templates := e.catalog.Resolve(suite)

	benchmarks := make([]models.BenchmarkResult, 0, len(templates))
	insights := make([]models.FailureInsight, 0)

	for _, tpl := range templates {
		result, rate := e.perturb(tpl, asOf)
		if result.Status == models.BenchmarkFailed {
			insights = append(insights, deriveInsight(tpl, rate, result.History, asOf))
		}
		benchmarks = append(benchmarks, result)
	}

	return models.SuitePayload{
		Benchmarks:      benchmarks,
		Summary:         summarize(benchmarks),
		LiveRuns:        e.liveRunStubs(benchmarks, asOf),
		FailureInsights: insights,
		Recommendations: recommend.Build(suite),
		GeneratedAt:     asOf,
		Threshold:       threshold,
	}
}

// perturb draws noise around one template's baselines. It returns the
// result together with the unrounded success rate, which downstream
// derivations use.
func (e *Engine) perturb(tpl models.BenchmarkTemplate, asOf time.Time) (models.BenchmarkResult, float64) {
	rate := clamp01(tpl.BaseSuccess + e.uniform(-successJitter, successJitter))
	status := models.BenchmarkFailed
	if rate >= successThreshold {
		status = models.BenchmarkSuccess
	}

	latency := math.Max(tpl.LatencySeconds+e.uniform(latencyJitterLow, latencyJitterHigh), minLatencySeconds)
	cost := math.Max(tpl.CostUSD+e.uniform(-costJitter, costJitter), 0)
	tokens := int(baseTokens + e.uniform(tokenJitterLow, tokenJitterHigh))

	result := models.BenchmarkResult{
		ID:                   tpl.ID,
		Name:                 tpl.Name,
		Iterations:           tpl.Iterations,
		SuccessRate:          round3(rate),
		Status:               status,
		UpdatedAt:            asOf,
		Suite:                tpl.Suite,
		LatencySeconds:       round3(latency),
		TokensUsed:           tokens,
		CostUSD:              round5(cost),
		ConfidenceReported:   round3(clamp01(rate * 0.96)),
		ConfidenceCalibrated: round3(clamp01(rate * 0.92)),
		History:              historySlice(asOf, rate),
	}
	if status == models.BenchmarkFailed {
		result.LatestFailure = &models.FailureRef{
			Objective: tpl.FailureObjective,
			Reason:    tpl.FailureReason,
			Category:  tpl.FailureCategory,
		}
	}
	return result, rate
}

// historySlice builds the synthetic 3-point trace for one benchmark,
// most-recent first, spaced five minutes apart with timestamps truncated to
// whole seconds. The step-0 entry always reads as passing; older entries
// follow the rate.
func historySlice(asOf time.Time, rate float64) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, historyDepth)
	for step := 0; step < historyDepth; step++ {
		entries = append(entries, models.HistoryEntry{
			Timestamp: asOf.Add(-time.Duration(step) * historySpacing).Truncate(time.Second),
			Objective: fmt.Sprintf("Check %d", step+1),
			Result:    rate > 0.5 || step < 1,
			Message:   historyMessage,
		})
	}
	return entries
}

// uniform draws from [low, high).
func (e *Engine) uniform(low, high float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return low + e.rng.Float64()*(high-low)
}

// newID draws a random UUID from the engine's own source so seeded runs
// stay fully reproducible.
func (e *Engine) newID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return uuid.Must(uuid.NewRandomFromReader(e.rng)).String()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func round5(v float64) float64 { return math.Round(v*100000) / 100000 }
