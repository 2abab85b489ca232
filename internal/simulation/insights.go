package simulation

import (
	"time"

	"github.com/spboyer/lattelab/internal/models"
)

const (
	fallbackIssue  = "Observed deviation in latest run."
	followUpIssue  = "Requires operator follow-up."
	recommendedFix = "Review prompt strategy and re-run targeted objectives."
)

// deriveInsight builds the failure-insight record for a failed benchmark.
// The failure rate derives from the unrounded success rate. The issue list
// always has exactly two entries.
func deriveInsight(tpl models.BenchmarkTemplate, rate float64, history []models.HistoryEntry, asOf time.Time) models.FailureInsight {
	reason := tpl.FailureReason
	if reason == "" {
		reason = fallbackIssue
	}
	return models.FailureInsight{
		ID:              "insight-" + tpl.ID,
		BenchmarkID:     tpl.ID,
		BenchmarkName:   tpl.Name,
		FailureRate:     round3(1 - rate),
		LastFailureAt:   asOf,
		TopIssues:       []string{reason, followUpIssue},
		RecommendedFix:  recommendedFix,
		FailureCategory: tpl.FailureCategory,
		History:         history,
	}
}
