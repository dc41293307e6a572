package web_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/persistence"
	"github.com/andrescamacho/give-me-the-odds/internal/adapters/web"
	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/config"
	"github.com/andrescamacho/give-me-the-odds/test/helpers"
)

type oddsResponse struct {
	Odds       float64 `json:"odds"`
	Percentage float64 `json:"percentage"`
	Encounters int     `json:"encounters"`
	Feasible   bool    `json:"feasible"`
	Path       []string `json:"path"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := helpers.NewTestDB(t)
	helpers.SeedRoutes(t, db, helpers.CanonicalUniverse())

	calculator := odds.NewCalculator(persistence.NewGormRouteRepository(db), 1)
	spec := mission.Spec{Autonomy: 6, Departure: "Tatooine", Arrival: "Endor"}

	return web.NewRouter(calculator, spec, &config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestComputeOdds_RawBody(t *testing.T) {
	router := newTestRouter(t)

	body := `{"countdown": 8, "bounty_hunters": [{"planet": "Hoth", "day": 6}, {"planet": "Hoth", "day": 7}, {"planet": "Hoth", "day": 8}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/odds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp oddsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Feasible)
	assert.InDelta(t, 0.81, resp.Odds, 1e-9)
	assert.InDelta(t, 81.0, resp.Percentage, 1e-9)
	assert.Equal(t, 2, resp.Encounters)
	assert.Equal(t, []string{"Tatooine", "Hoth", "Endor"}, resp.Path)
}

func TestComputeOdds_MultipartUpload(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("empire", "empire.json")
	require.NoError(t, err)
	_, err = part.Write([]byte(`{"countdown": 10, "bounty_hunters": [{"planet": "Hoth", "day": 6}, {"planet": "Hoth", "day": 7}, {"planet": "Hoth", "day": 8}]}`))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/odds", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp oddsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1.0, resp.Odds)
	assert.Equal(t, 0, resp.Encounters)
}

func TestComputeOdds_NoFeasiblePath(t *testing.T) {
	router := newTestRouter(t)

	body := `{"countdown": 7, "bounty_hunters": [{"planet": "Hoth", "day": 6}, {"planet": "Hoth", "day": 7}, {"planet": "Hoth", "day": 8}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/odds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Not reaching the destination in time is a result, not an error.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp oddsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Feasible)
	assert.Equal(t, 0.0, resp.Odds)
	assert.Empty(t, resp.Path)
}

func TestComputeOdds_InvalidDocument(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/odds", strings.NewReader(`{"countdown":`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeOdds_MultipartWithoutEmpireField(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/odds", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no empire document")
}

func TestComputeOdds_RateLimited(t *testing.T) {
	db := helpers.NewTestDB(t)
	helpers.SeedRoutes(t, db, helpers.CanonicalUniverse())
	calculator := odds.NewCalculator(persistence.NewGormRouteRepository(db), 1)
	spec := mission.Spec{Autonomy: 6, Departure: "Tatooine", Arrival: "Endor"}

	router := web.NewRouter(calculator, spec, &config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

	body := `{"countdown": 7, "bounty_hunters": []}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/odds", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[1])
}
