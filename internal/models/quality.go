package models

// QualityScoreBreakdown is the result of heuristic prompt scoring: four
// bounded sub-scores, their mean, and human-readable feedback.
type QualityScoreBreakdown struct {
	Length        float64 `json:"length"`
	Structure     float64 `json:"structure"`
	Clarity       float64 `json:"clarity"`
	Actionability float64 `json:"actionability"`
	Combined      float64 `json:"combined"`
	Feedback      string  `json:"feedback"`
}
