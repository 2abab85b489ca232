// Package store persists suite snapshots and run history in an embedded
// key-value database. Snapshots have replace-or-insert semantics keyed by
// suite; run records are append-only and never mutated after being written.
package store

import (
	"context"
	"errors"

	"github.com/spboyer/lattelab/internal/models"
)

// ErrNotFound is returned when no snapshot exists for a suite.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract the engine requires.
type Store interface {
	// UpsertSnapshot replaces the stored payload for a suite.
	UpsertSnapshot(ctx context.Context, suite string, payload models.SuitePayload) error
	// GetSnapshot returns the stored snapshot for a suite, or ErrNotFound.
	GetSnapshot(ctx context.Context, suite string) (*models.SnapshotRecord, error)
	// AppendRunRecord writes one run-history record.
	AppendRunRecord(ctx context.Context, record models.RunRecord) error
	// ListRunRecords returns run records newest first, optionally filtered
	// by suite. A limit <= 0 means no cap.
	ListRunRecords(ctx context.Context, suite string, limit int) ([]models.RunRecord, error)
	// Close releases the underlying database.
	Close() error
}
