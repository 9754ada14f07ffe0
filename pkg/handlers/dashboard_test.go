package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/dashboard"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/diagnostics"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	dir := t.TempDir()
	store := &tabular.Store{
		Cooperative: models.Cooperative{Name: "Test Cooperative", TotalMembers: 1},
		Producers: []models.Producer{
			{
				ID:             1,
				ExternalID:     "p1",
				Name:           "Ama",
				NumTrees:       100,
				EstimatedYield: 500,
				FarmImages:     []string{},
				TreeHealth:     map[string]any{"healthy": float64(80)},
				RecentActivities: []models.Activity{
					{Date: "2023-06-15", Activity: "Applied fungicide treatment"},
				},
			},
		},
	}
	require.NoError(t, tabular.Save(dir, store))

	gen := diagnostics.NewGenerator(rand.New(rand.NewSource(1)))
	service := dashboard.NewService(dir, gen, zap.NewNop())

	mux := http.NewServeMux()
	NewDashboardHandler(service, zap.NewNop()).RegisterRoutes(mux)
	NewHealthHandler("test", zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestFullViewEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view dashboard.FullView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Test Cooperative", view.Cooperative.Name)
	assert.Equal(t, 100, view.Stats.TotalTrees)
	assert.Len(t, view.Diagnostics, diagnostics.SampleCount)
}

func TestProducerEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/producer/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var view dashboard.ProducerView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Ama", view.Producer.Name)
}

func TestProducerEndpointNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/producer/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Producer not found")
}

func TestProducerEndpointNonNumericID(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/producer/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity/1/2023-06-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var view dashboard.ActivityView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Applied fungicide treatment", view.Activity.Activity)
}

func TestActivityEndpointNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity/1/2023-01-01", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Activity not found")
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}
