// Package reporting renders suite payloads as plain-language reports:
// markdown for humans, HTML for the dashboard export, with optional
// compression on the way out.
package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/lattelab/internal/models"
)

// InterpretPassShare returns a plain-language health label for the share of
// benchmarks that classified as success (0–1).
func InterpretPassShare(share float64) string {
	pct := share * 100
	switch {
	case pct >= 100:
		return "Healthy — every benchmark passed"
	case pct >= 80:
		return "Mostly healthy — a few benchmarks need attention"
	case pct >= 50:
		return "Degraded — about half the benchmarks are failing"
	default:
		return "Critical — most benchmarks are failing"
	}
}

// InterpretRate explains one benchmark's success rate.
func InterpretRate(rate float64) string {
	pct := rate * 100
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 80:
		return "Good (80-90%)"
	case pct >= 50:
		return "Needs Work (50-80%)"
	default:
		return "Poor (<50%)"
	}
}

// MarkdownReport produces a markdown report for one suite payload.
func MarkdownReport(label string, payload models.SuitePayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", label)
	fmt.Fprintf(&b, "Generated %s\n\n", payload.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	s := payload.Summary
	if s.Total == 0 {
		b.WriteString("No benchmarks in this suite.\n")
		return b.String()
	}

	share := float64(s.Success) / float64(s.Total)
	fmt.Fprintf(&b, "**%s** — %d of %d benchmarks passing.\n\n", InterpretPassShare(share), s.Success, s.Total)
	if payload.Threshold != nil {
		fmt.Fprintf(&b, "Requested display threshold: %.2f\n\n", *payload.Threshold)
	}

	b.WriteString("## Benchmarks\n\n")
	b.WriteString("| Benchmark | Status | Success rate | Latency (s) | Tokens | Cost (USD) |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, bench := range payload.Benchmarks {
		fmt.Fprintf(&b, "| %s | %s | %.3f — %s | %.3f | %d | %.5f |\n",
			bench.Name, bench.Status, bench.SuccessRate, InterpretRate(bench.SuccessRate),
			bench.LatencySeconds, bench.TokensUsed, bench.CostUSD)
	}
	b.WriteString("\n")

	if len(payload.FailureInsights) > 0 {
		b.WriteString("## Failure insights\n\n")
		for _, insight := range payload.FailureInsights {
			fmt.Fprintf(&b, "### %s\n\n", insight.BenchmarkName)
			fmt.Fprintf(&b, "Failure rate %.3f, last failure %s.\n\n",
				insight.FailureRate, insight.LastFailureAt.Format("2006-01-02 15:04:05 MST"))
			for _, issue := range insight.TopIssues {
				fmt.Fprintf(&b, "- %s\n", issue)
			}
			fmt.Fprintf(&b, "\nRecommended fix: %s\n\n", insight.RecommendedFix)
		}
	}

	if len(payload.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range payload.Recommendations {
			fmt.Fprintf(&b, "- **%s** (%s impact): %s %s\n", rec.Title, rec.Impact, rec.Summary, rec.Action)
		}
	}

	return b.String()
}
