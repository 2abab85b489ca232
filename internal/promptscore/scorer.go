// Package promptscore evaluates raw prompt text with a deterministic
// multi-factor heuristic. It is the scoring path for prompts that have no
// ground-truth answer: four bounded sub-scores blended into one quality
// figure with human-readable feedback.
package promptscore

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spboyer/lattelab/internal/models"
)

const (
	emptyPromptFeedback = "Empty prompt - no content to evaluate"
	positiveFeedback    = "Good quality prompt with room for minor improvements"

	lengthFeedback    = "Consider adding more detail to your prompt"
	structureFeedback = "Try structuring your prompt more clearly"
	clarityFeedback   = "Use more specific terms and examples"
)

// Matching is substring-based on the lowercased prompt, so "showcase"
// satisfies "how". That looseness is part of the scoring contract.
var interrogativeWords = []string{
	"what", "how", "why", "when", "where", "who", "which", "can", "could", "would", "should",
}

var actionWords = []string{
	"create", "write", "explain", "describe", "analyze", "compare", "summarize", "generate", "help",
}

var exampleMarkers = []string{"example", "for instance", "such as"}

var imperativeOpeners = map[string]bool{
	"please": true,
	"can":    true,
	"could":  true,
	"would":  true,
}

var (
	listMarkerRe = regexp.MustCompile(`[-*]\s|\d+\.`)
	capitalRe    = regexp.MustCompile(`[A-Z][a-z]+`)
)

// Scorer evaluates prompt text and returns a quality breakdown.
type Scorer interface {
	Score(text string) models.QualityScoreBreakdown
}

// HeuristicScorer scores prompts with pattern heuristics. It holds no state
// and is safe for concurrent use.
type HeuristicScorer struct{}

// Score computes the four sub-scores and their mean for the given prompt.
// Empty or whitespace-only input short-circuits to a zero score; no
// sub-scores are computed.
func (HeuristicScorer) Score(text string) models.QualityScoreBreakdown {
	prompt := strings.TrimSpace(text)
	if prompt == "" {
		return models.QualityScoreBreakdown{Feedback: emptyPromptFeedback}
	}

	length := lengthScore(prompt)
	structure := structureScore(prompt)
	clarity := clarityScore(prompt)
	actionability := actionabilityScore(prompt)

	return models.QualityScoreBreakdown{
		Length:        length,
		Structure:     structure,
		Clarity:       clarity,
		Actionability: actionability,
		Combined:      round3((length + structure + clarity + actionability) / 4),
		Feedback:      buildFeedback(length, structure, clarity),
	}
}

// lengthScore steps over the word count; 10–150 words is the optimal band.
func lengthScore(prompt string) float64 {
	words := len(strings.Fields(prompt))
	switch {
	case words < 5:
		return 0.2
	case words < 10:
		return 0.5
	case words <= 150:
		return 1.0
	case words <= 250:
		return 0.7
	default:
		return 0.3
	}
}

func structureScore(prompt string) float64 {
	score := 0.0
	if strings.Contains(prompt, "?") {
		score += 0.4
	}
	if listMarkerRe.MatchString(prompt) {
		score += 0.3
	}
	if containsAny(strings.ToLower(prompt), interrogativeWords) {
		score += 0.3
	}
	return math.Min(1, score)
}

func clarityScore(prompt string) float64 {
	indicators := 0
	if strings.ContainsFunc(prompt, unicode.IsDigit) {
		indicators++
	}
	if capitalRe.MatchString(prompt) {
		indicators++
	}
	if containsAny(strings.ToLower(prompt), exampleMarkers) {
		indicators++
	}
	if len(strings.Fields(prompt)) > 15 {
		indicators++
	}
	return float64(indicators) / 4
}

func actionabilityScore(prompt string) float64 {
	score := 0.0
	if containsAny(strings.ToLower(prompt), actionWords) {
		score += 0.6
	}

	first := strings.ToLower(strings.Fields(prompt)[0])
	leading, _ := utf8.DecodeRuneInString(prompt)
	if imperativeOpeners[first] || unicode.IsUpper(leading) {
		score += 0.4
	}
	return math.Min(1, score)
}

// buildFeedback appends one clause per weak sub-score. Actionability never
// contributes a clause.
func buildFeedback(length, structure, clarity float64) string {
	var parts []string
	if length < 0.5 {
		parts = append(parts, lengthFeedback)
	}
	if structure < 0.5 {
		parts = append(parts, structureFeedback)
	}
	if clarity < 0.5 {
		parts = append(parts, clarityFeedback)
	}
	if len(parts) == 0 {
		return positiveFeedback
	}
	return strings.Join(parts, "; ")
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
