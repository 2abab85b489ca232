// Package webapi exposes the engine's query surface over HTTP: suite
// snapshots, simulation runs, run history, prompt scoring, and a safe
// config echo for the dashboard.
package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/spboyer/lattelab/internal/observability"
	"github.com/spboyer/lattelab/internal/service"
)

// Version is set at build time or defaults to dev.
var Version = "0.3.0"

// DefaultSuite is served when GET /api/benchmarks carries no suite query.
const DefaultSuite = "output"

// defaultRunLimit caps run-history listings when no limit query is given.
const defaultRunLimit = 20

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	svc *service.Service
}

// NewHandlers creates a new Handlers over the service.
func NewHandlers(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleConfig echoes the safe subset of runtime settings.
func (h *Handlers) HandleConfig(w http.ResponseWriter, _ *http.Request) {
	cat := h.svc.Catalog()
	suites := make([]SuiteInfo, 0)
	for _, id := range cat.SuiteIDs() {
		suites = append(suites, SuiteInfo{ID: id, Label: cat.Label(id)})
	}
	writeJSON(w, http.StatusOK, ConfigResponse{
		MockMode: h.svc.MockMode(),
		Suites:   suites,
		Labels:   cat.Labels(),
		Version:  Version,
	})
}

// HandleSnapshot returns the current payload for a suite, generating and
// persisting one on first access. Unknown suites yield an empty, valid
// payload with zero counts.
func (h *Handlers) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	suite := r.URL.Query().Get("suite")
	if suite == "" {
		suite = DefaultSuite
	}

	payload, err := h.svc.GetSnapshot(r.Context(), suite)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// HandleRun simulates one run for a suite, persists it, and returns the
// fresh payload.
func (h *Handlers) HandleRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Suite) == "" {
		req.Suite = DefaultSuite
	}

	payload, _, err := h.svc.RunSimulation(r.Context(), req.Suite, req.Threshold)
	if err != nil {
		if errors.Is(err, service.ErrMockModeDisabled) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// HandleRuns returns persisted run records, newest first.
func (h *Handlers) HandleRuns(w http.ResponseWriter, r *http.Request) {
	suite := r.URL.Query().Get("suite")

	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	records, err := h.svc.ListRuns(r.Context(), suite, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleScorePrompt scores arbitrary prompt text. Empty prompts are valid
// input and return the fixed zero-score breakdown, not an error.
func (h *Handlers) HandleScorePrompt(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ScorePrompt(req.Prompt))
}

// RegisterRoutes registers all web API routes on the given mux. The metrics
// handler is optional.
func RegisterRoutes(mux *http.ServeMux, svc *service.Service, metrics *observability.Metrics) {
	h := NewHandlers(svc)
	mux.HandleFunc("GET /api/healthz", h.HandleHealth)
	mux.HandleFunc("GET /api/config", h.HandleConfig)
	mux.HandleFunc("GET /api/benchmarks", h.HandleSnapshot)
	mux.HandleFunc("POST /api/benchmarks/run", h.HandleRun)
	mux.HandleFunc("GET /api/benchmarks/runs", h.HandleRuns)
	mux.HandleFunc("POST /api/score_prompt", h.HandleScorePrompt)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
