package webapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/models"
	"github.com/spboyer/lattelab/internal/observability"
	"github.com/spboyer/lattelab/internal/promptscore"
	"github.com/spboyer/lattelab/internal/service"
	"github.com/spboyer/lattelab/internal/simulation"
	"github.com/spboyer/lattelab/internal/store"
)

func newTestMux(t *testing.T, opts ...service.Option) (*http.ServeMux, *observability.Metrics) {
	t.Helper()
	st, err := store.OpenBadger("", store.WithInMemory(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	clock := func() time.Time {
		return time.Date(2025, 7, 2, 14, 15, 9, 0, time.UTC)
	}
	engine := simulation.NewEngine(catalog.Default(),
		simulation.WithSeed(123), simulation.WithClock(clock))
	svc := service.New(st, engine, promptscore.HeuristicScorer{}, opts...)

	metrics := observability.NewMetrics()
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc, metrics)
	return mux, metrics
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestHandleHealth(t *testing.T) {
	mux, _ := newTestMux(t)

	var resp HealthResponse
	rec := doJSON(t, mux, "GET", "/api/healthz", "", &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestHandleConfig(t *testing.T) {
	mux, _ := newTestMux(t)

	var resp ConfigResponse
	rec := doJSON(t, mux, "GET", "/api/config", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.MockMode)
	require.Len(t, resp.Suites, 3)
	assert.Equal(t, "output", resp.Suites[0].ID)
	assert.Equal(t, "Calculator Demo Suite", resp.Suites[0].Label)
	assert.Equal(t, "Run Everything", resp.Labels["all"])
}

func TestHandleSnapshot_DefaultSuite(t *testing.T) {
	mux, _ := newTestMux(t)

	var payload models.SuitePayload
	rec := doJSON(t, mux, "GET", "/api/benchmarks", "", &payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, payload.Summary.Total)
	for _, b := range payload.Benchmarks {
		assert.Equal(t, "output", b.Suite)
	}
}

func TestHandleSnapshot_UnknownSuiteIsEmptyNotError(t *testing.T) {
	mux, _ := newTestMux(t)

	var payload models.SuitePayload
	rec := doJSON(t, mux, "GET", "/api/benchmarks?suite=bogus", "", &payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, payload.Summary.Total)
	assert.Empty(t, payload.Benchmarks)
	assert.Empty(t, payload.FailureInsights)
	assert.Len(t, payload.LiveRuns, 2)
}

func TestHandleSnapshot_SecondReadServedFromStore(t *testing.T) {
	mux, _ := newTestMux(t)

	var first, second models.SuitePayload
	doJSON(t, mux, "GET", "/api/benchmarks?suite=crisis", "", &first)
	doJSON(t, mux, "GET", "/api/benchmarks?suite=crisis", "", &second)
	assert.Equal(t, first, second)
}

func TestHandleRun_PersistsAndReturnsPayload(t *testing.T) {
	mux, _ := newTestMux(t)

	var payload models.SuitePayload
	rec := doJSON(t, mux, "POST", "/api/benchmarks/run", `{"suite":"custom","threshold":0.85}`, &payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, payload.Summary.Total)
	require.NotNil(t, payload.Threshold)
	assert.Equal(t, 0.85, *payload.Threshold)

	var records []models.RunRecord
	rec = doJSON(t, mux, "GET", "/api/benchmarks/runs?suite=custom", "", &records)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, records, 1)
	assert.Equal(t, "custom", records[0].Suite)
	assert.Equal(t, "Custom Agents Suite", records[0].SuiteLabel)
}

func TestHandleRun_BadBody(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, "POST", "/api/benchmarks/run", `{"suite": not json`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.Contains(t, errResp.Error, "invalid request body")
}

func TestHandleRun_EmptySuiteDefaults(t *testing.T) {
	mux, _ := newTestMux(t)

	var payload models.SuitePayload
	rec := doJSON(t, mux, "POST", "/api/benchmarks/run", `{}`, &payload)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, payload.Benchmarks)
	assert.Equal(t, DefaultSuite, payload.Benchmarks[0].Suite)
}

func TestHandleRun_MockModeDisabled(t *testing.T) {
	mux, _ := newTestMux(t, service.WithMockMode(false))

	rec := doJSON(t, mux, "POST", "/api/benchmarks/run", `{"suite":"output"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleRuns_LimitValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, "GET", "/api/benchmarks/runs?limit=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, "GET", "/api/benchmarks/runs?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScorePrompt(t *testing.T) {
	mux, _ := newTestMux(t)

	var breakdown models.QualityScoreBreakdown
	rec := doJSON(t, mux, "POST", "/api/score_prompt", `{"prompt":"What is the capital of France?"}`, &breakdown)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, breakdown.Structure, 0.7)
	assert.Greater(t, breakdown.Combined, 0.0)
}

func TestHandleScorePrompt_EmptyPromptIsOK(t *testing.T) {
	mux, _ := newTestMux(t)

	var breakdown models.QualityScoreBreakdown
	rec := doJSON(t, mux, "POST", "/api/score_prompt", `{"prompt":"   "}`, &breakdown)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, breakdown.Combined)
	assert.Equal(t, "Empty prompt - no content to evaluate", breakdown.Feedback)
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, "GET", "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	mux, _ := newTestMux(t)
	handler := CORSMiddleware(mux, "http://localhost:5173")

	req := httptest.NewRequest("GET", "/api/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/api/healthz", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/benchmarks/run", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	mux, metrics := newTestMux(t)
	handler := LoggingMiddleware(mux, nil, metrics)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	metricsRec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(metricsRec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, metricsRec.Body.String(), `route="GET /api/healthz"`)
}
