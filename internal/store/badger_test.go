package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/models"
	"github.com/spboyer/lattelab/internal/simulation"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadger("", WithInMemory(true))
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func testPayload(t *testing.T, suite string) models.SuitePayload {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	}
	eng := simulation.NewEngine(catalog.Default(), simulation.WithSeed(21), simulation.WithClock(clock))
	return eng.Simulate(suite, nil)
}

func testRunRecord(id, suite string, requestedAt time.Time) models.RunRecord {
	threshold := 0.85
	return models.RunRecord{
		ID:             id,
		Suite:          suite,
		SuiteLabel:     "Calculator Demo Suite",
		RequestedAt:    requestedAt,
		GeneratedAt:    requestedAt.Add(12 * time.Millisecond),
		Summary:        models.Summary{Total: 3, Success: 2, Failed: 1},
		BenchmarkCount: 3,
		Success:        2,
		Failed:         1,
		Status:         models.RunAttention,
		Threshold:      &threshold,
	}
}

func TestBadgerStore_SnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	payload := testPayload(t, "output")
	if err := s.UpsertSnapshot(ctx, "output", payload); err != nil {
		t.Fatalf("UpsertSnapshot: %v", err)
	}

	record, err := s.GetSnapshot(ctx, "output")
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if record.Suite != "output" {
		t.Errorf("suite = %q", record.Suite)
	}
	if !record.UpdatedAt.Equal(payload.GeneratedAt) {
		t.Errorf("updatedAt = %v, want generation time %v", record.UpdatedAt, payload.GeneratedAt)
	}
	if len(record.Data.Benchmarks) != len(payload.Benchmarks) {
		t.Fatalf("stored %d benchmarks, want %d", len(record.Data.Benchmarks), len(payload.Benchmarks))
	}
	if record.Data.Benchmarks[0].SuccessRate != payload.Benchmarks[0].SuccessRate {
		t.Errorf("successRate changed across round trip")
	}
	if record.Data.Summary != payload.Summary {
		t.Errorf("summary = %+v, want %+v", record.Data.Summary, payload.Summary)
	}
}

func TestBadgerStore_UpsertReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := testPayload(t, "output")
	second := testPayload(t, "crisis")
	if err := s.UpsertSnapshot(ctx, "output", first); err != nil {
		t.Fatalf("UpsertSnapshot: %v", err)
	}
	if err := s.UpsertSnapshot(ctx, "output", second); err != nil {
		t.Fatalf("UpsertSnapshot: %v", err)
	}

	record, err := s.GetSnapshot(ctx, "output")
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if len(record.Data.Benchmarks) != len(second.Benchmarks) ||
		record.Data.Benchmarks[0].ID != second.Benchmarks[0].ID {
		t.Error("second upsert did not replace the first payload")
	}
}

func TestBadgerStore_GetSnapshotMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetSnapshot(context.Background(), "never-written")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_RunRecordsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		record := testRunRecord(id, "output", base.Add(time.Duration(i)*time.Minute))
		if err := s.AppendRunRecord(ctx, record); err != nil {
			t.Fatalf("AppendRunRecord(%s): %v", id, err)
		}
	}

	records, err := s.ListRunRecords(ctx, "output", 0)
	if err != nil {
		t.Fatalf("ListRunRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, want := range []string{"run-c", "run-b", "run-a"} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, want)
		}
	}
}

func TestBadgerStore_RunRecordFieldsSurvive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := testRunRecord("run-x", "crisis", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC))
	if err := s.AppendRunRecord(ctx, want); err != nil {
		t.Fatalf("AppendRunRecord: %v", err)
	}

	records, err := s.ListRunRecords(ctx, "crisis", 1)
	if err != nil {
		t.Fatalf("ListRunRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.ID != want.ID || got.SuiteLabel != want.SuiteLabel || got.Status != want.Status {
		t.Errorf("record = %+v", got)
	}
	if !got.RequestedAt.Equal(want.RequestedAt) || !got.GeneratedAt.Equal(want.GeneratedAt) {
		t.Errorf("timestamps = %v / %v", got.RequestedAt, got.GeneratedAt)
	}
	if got.Summary != want.Summary {
		t.Errorf("summary = %+v, want %+v", got.Summary, want.Summary)
	}
	if got.Threshold == nil || *got.Threshold != *want.Threshold {
		t.Errorf("threshold = %v", got.Threshold)
	}
}

func TestBadgerStore_ListFiltersAndLimits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	suites := []string{"output", "crisis", "output", "custom", "output"}
	for i, suite := range suites {
		record := testRunRecord("run-"+suite+"-"+string(rune('0'+i)), suite, base.Add(time.Duration(i)*time.Second))
		if err := s.AppendRunRecord(ctx, record); err != nil {
			t.Fatalf("AppendRunRecord: %v", err)
		}
	}

	records, err := s.ListRunRecords(ctx, "output", 2)
	if err != nil {
		t.Fatalf("ListRunRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want limit of 2", len(records))
	}
	for _, record := range records {
		if record.Suite != "output" {
			t.Errorf("record %s leaked from suite %q", record.ID, record.Suite)
		}
	}

	all, err := s.ListRunRecords(ctx, "", 0)
	if err != nil {
		t.Fatalf("ListRunRecords: %v", err)
	}
	if len(all) != len(suites) {
		t.Errorf("unfiltered listing returned %d records, want %d", len(all), len(suites))
	}
}

func TestBadgerStore_DecodeToleratesUnknownFields(t *testing.T) {
	var record models.RunRecord
	raw := []byte(`{
		"id": "legacy-1",
		"suite": "output",
		"suiteLabel": "Calculator Demo Suite",
		"requestedAt": "2025-03-04T10:00:00Z",
		"generatedAt": "2025-03-04T10:00:00.012Z",
		"summary": {"total": 3, "success": 3, "failed": 0},
		"benchmarkCount": 3,
		"success": 3,
		"failed": 0,
		"status": "completed",
		"threshold": null,
		"legacyColumn": "ignore me"
	}`)
	if err := decodeRunRecord(raw, &record); err != nil {
		t.Fatalf("decodeRunRecord: %v", err)
	}
	if record.ID != "legacy-1" || record.Status != models.RunCompleted {
		t.Errorf("record = %+v", record)
	}
	if record.Summary.Total != 3 || record.Summary.Failed != 0 {
		t.Errorf("summary = %+v", record.Summary)
	}
	if record.Threshold != nil {
		t.Errorf("threshold = %v, want nil", record.Threshold)
	}
}
