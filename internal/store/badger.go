package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/go-viper/mapstructure/v2"

	"github.com/spboyer/lattelab/internal/models"
)

// Key spaces. Run keys embed a reverse timestamp so ascending iteration
// yields newest records first without an index.
const (
	snapshotPrefix = "snapshot/"
	runPrefix      = "run/"
)

// BadgerStore persists snapshots and run records in a BadgerDB instance.
// Values are JSON; run records are decoded back through a generic map so
// older rows with extra fields keep loading.
type BadgerStore struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ Store = (*BadgerStore)(nil)

// BadgerOption configures a BadgerStore.
type BadgerOption func(*badgerConfig)

type badgerConfig struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory keeps the database off disk, for tests and demos.
func WithInMemory(inMemory bool) BadgerOption {
	return func(c *badgerConfig) { c.inMemory = inMemory }
}

// WithLogger routes the store's (and badger's) log output.
func WithLogger(logger *slog.Logger) BadgerOption {
	return func(c *badgerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// OpenBadger opens (or creates) the database at path. The path is ignored
// when WithInMemory(true) is given.
func OpenBadger(path string, opts ...BadgerOption) (*BadgerStore, error) {
	cfg := badgerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	options := badger.DefaultOptions(path).
		WithInMemory(cfg.inMemory).
		WithLogger(&badgerSlogAdapter{logger: cfg.logger})
	if cfg.inMemory {
		options.Dir = ""
		options.ValueDir = ""
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", path, err)
	}
	return &BadgerStore{db: db, logger: cfg.logger}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// UpsertSnapshot replaces the stored payload for a suite.
func (s *BadgerStore) UpsertSnapshot(ctx context.Context, suite string, payload models.SuitePayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	record := models.SnapshotRecord{
		Suite:     suite,
		Data:      payload,
		UpdatedAt: payload.GeneratedAt,
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding snapshot for suite %q: %w", suite, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotPrefix+suite), value)
	})
	if err != nil {
		return fmt.Errorf("writing snapshot for suite %q: %w", suite, err)
	}
	s.logger.Debug("snapshot upserted", "suite", suite, "bytes", len(value))
	return nil
}

// GetSnapshot returns the stored snapshot for a suite, or ErrNotFound.
func (s *BadgerStore) GetSnapshot(ctx context.Context, suite string) (*models.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var record models.SnapshotRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotPrefix + suite))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("snapshot for suite %q: %w", suite, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot for suite %q: %w", suite, err)
	}
	return &record, nil
}

// AppendRunRecord writes one run-history record.
func (s *BadgerStore) AppendRunRecord(ctx context.Context, record models.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding run record %q: %w", record.ID, err)
	}

	key := runKey(record.RequestedAt, record.ID)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("writing run record %q: %w", record.ID, err)
	}
	s.logger.Debug("run record appended", "id", record.ID, "suite", record.Suite)
	return nil
}

// ListRunRecords returns run records newest first. An empty suite matches
// every record; limit <= 0 means no cap.
func (s *BadgerStore) ListRunRecords(ctx context.Context, suite string, limit int) ([]models.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]models.RunRecord, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && len(records) >= limit {
				return nil
			}
			var record models.RunRecord
			err := it.Item().Value(func(value []byte) error {
				return decodeRunRecord(value, &record)
			})
			if err != nil {
				return err
			}
			if suite != "" && record.Suite != suite {
				continue
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing run records: %w", err)
	}
	return records, nil
}

// decodeRunRecord tolerates rows written by older builds: the JSON goes
// through a generic map and is mapped onto the typed record field by field,
// so unknown keys are ignored instead of failing the whole listing.
func decodeRunRecord(value []byte, record *models.RunRecord) error {
	var raw map[string]any
	if err := json.Unmarshal(value, &raw); err != nil {
		return fmt.Errorf("parsing run record: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		Result:     record,
	})
	if err != nil {
		return fmt.Errorf("building run record decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding run record: %w", err)
	}
	return nil
}

func runKey(requestedAt time.Time, id string) []byte {
	reverse := uint64(math.MaxInt64 - requestedAt.UnixNano())
	return []byte(fmt.Sprintf("%s%020d-%s", runPrefix, reverse, id))
}

// badgerSlogAdapter routes badger's chatty internal logging onto slog,
// demoted one level so it only surfaces with --debug.
type badgerSlogAdapter struct {
	logger *slog.Logger
}

func (a *badgerSlogAdapter) Errorf(format string, args ...any) {
	a.logger.Error("badger: " + trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerSlogAdapter) Warningf(format string, args ...any) {
	a.logger.Warn("badger: " + trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerSlogAdapter) Infof(format string, args ...any) {
	a.logger.Debug("badger: " + trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerSlogAdapter) Debugf(format string, args ...any) {
	a.logger.Debug("badger: " + trimNewline(fmt.Sprintf(format, args...)))
}

func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
