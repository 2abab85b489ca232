// Package service implements the engine's query surface: snapshot reads
// with generate-on-first-access, simulation runs with persistence, run
// history, and prompt scoring. Everything above it (HTTP, CLI) is a thin
// adapter over this package.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/models"
	"github.com/spboyer/lattelab/internal/observability"
	"github.com/spboyer/lattelab/internal/promptscore"
	"github.com/spboyer/lattelab/internal/simulation"
	"github.com/spboyer/lattelab/internal/store"
)

// ErrMockModeDisabled is returned when a run is requested while mock mode
// is off. Real benchmark execution is not part of this system, so with the
// simulator disabled there is nothing to run.
var ErrMockModeDisabled = errors.New("mock mode is disabled and real benchmark execution is not supported")

// Service coordinates the simulation engine, the prompt scorer, and the
// persistence gateway. Safe for concurrent use; snapshot writes are
// serialized so concurrent requests for the same suite cannot interleave.
type Service struct {
	store    store.Store
	engine   *simulation.Engine
	scorer   promptscore.Scorer
	metrics  *observability.Metrics
	logger   *slog.Logger
	now      func() time.Time
	mockMode bool

	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics wires Prometheus collectors into the service.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMockMode toggles the mock-mode gate. Default is enabled.
func WithMockMode(enabled bool) Option {
	return func(s *Service) { s.mockMode = enabled }
}

// New builds a Service over the given collaborators.
func New(st store.Store, engine *simulation.Engine, scorer promptscore.Scorer, opts ...Option) *Service {
	s := &Service{
		store:    st,
		engine:   engine,
		scorer:   scorer,
		logger:   slog.Default(),
		now:      time.Now,
		mockMode: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the engine's suite catalog for callers that render suite
// listings.
func (s *Service) Catalog() *catalog.Catalog {
	return s.engine.Catalog()
}

// MockMode reports whether simulated runs are enabled.
func (s *Service) MockMode() bool {
	return s.mockMode
}

// GetSnapshot returns the current payload for a suite. A suite that has
// never been simulated is generated and persisted on first access.
func (s *Service) GetSnapshot(ctx context.Context, suite string) (models.SuitePayload, error) {
	record, err := s.store.GetSnapshot(ctx, suite)
	if err == nil {
		return record.Data, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.SuitePayload{}, fmt.Errorf("loading snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have generated the snapshot while we waited.
	if record, err := s.store.GetSnapshot(ctx, suite); err == nil {
		return record.Data, nil
	}

	s.logger.Debug("snapshot miss, generating", "suite", suite)
	payload := s.engine.Simulate(suite, nil)
	if err := s.store.UpsertSnapshot(ctx, suite, payload); err != nil {
		return models.SuitePayload{}, fmt.Errorf("persisting first snapshot: %w", err)
	}
	return payload, nil
}

// RunSimulation simulates one run for a suite, replaces the suite snapshot,
// and appends a run-history record. The optional threshold is recorded on
// the payload for display only.
func (s *Service) RunSimulation(ctx context.Context, suite string, threshold *float64) (models.SuitePayload, models.RunRecord, error) {
	if !s.mockMode {
		return models.SuitePayload{}, models.RunRecord{}, ErrMockModeDisabled
	}

	requestedAt := s.now().UTC()
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	payload := s.engine.Simulate(suite, threshold)

	record := models.RunRecord{
		ID:             uuid.NewString(),
		Suite:          suite,
		SuiteLabel:     s.engine.Catalog().Label(suite),
		RequestedAt:    requestedAt,
		GeneratedAt:    payload.GeneratedAt,
		Summary:        payload.Summary,
		BenchmarkCount: payload.Summary.Total,
		Success:        payload.Summary.Success,
		Failed:         payload.Summary.Failed,
		Status:         runStatus(payload.Summary),
		Threshold:      threshold,
	}

	if err := s.store.UpsertSnapshot(ctx, suite, payload); err != nil {
		return models.SuitePayload{}, models.RunRecord{}, fmt.Errorf("persisting snapshot: %w", err)
	}
	if err := s.store.AppendRunRecord(ctx, record); err != nil {
		return models.SuitePayload{}, models.RunRecord{}, fmt.Errorf("appending run record: %w", err)
	}

	s.metrics.ObserveSimulation(suite, string(record.Status), time.Since(start))
	s.logger.Info("simulation run persisted",
		"suite", suite,
		"run", record.ID,
		"total", record.Summary.Total,
		"failed", record.Summary.Failed,
		"status", record.Status)

	return payload, record, nil
}

// ScorePrompt evaluates prompt text with the heuristic scorer.
func (s *Service) ScorePrompt(text string) models.QualityScoreBreakdown {
	breakdown := s.scorer.Score(text)
	s.metrics.ObservePromptScore(breakdown.Combined)
	s.logger.Debug("prompt scored", "combined", breakdown.Combined)
	return breakdown
}

// ListRuns returns persisted run records newest first. An empty suite
// matches every record; limit <= 0 means no cap.
func (s *Service) ListRuns(ctx context.Context, suite string, limit int) ([]models.RunRecord, error) {
	records, err := s.store.ListRunRecords(ctx, suite, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return records, nil
}

// runStatus derives the history-row status: completed only when nothing
// failed.
func runStatus(summary models.Summary) models.RunRecordStatus {
	if summary.Failed == 0 {
		return models.RunCompleted
	}
	return models.RunAttention
}
