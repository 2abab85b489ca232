package webapi

// RunRequest is the body of POST /api/benchmarks/run.
type RunRequest struct {
	Suite     string   `json:"suite"`
	Threshold *float64 `json:"threshold"`
}

// ScoreRequest is the body of POST /api/score_prompt.
type ScoreRequest struct {
	Prompt string `json:"prompt"`
}

// ConfigResponse echoes the safe subset of settings the dashboard needs.
type ConfigResponse struct {
	MockMode bool              `json:"mockMode"`
	Suites   []SuiteInfo       `json:"suites"`
	Labels   map[string]string `json:"suiteLabels"`
	Version  string            `json:"version"`
}

// SuiteInfo is one catalog entry in the config echo.
type SuiteInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
