package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/job-analyzer/internal/handlers"
	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/mocks"
)

func newHandlers() *Handlers {
	logger, _ := test.NewNullLogger()
	return &Handlers{
		Analyze: handlers.NewAnalyzeHandler(new(mocks.MockAnalyzerService), nil, logger),
	}
}

func TestHealth(t *testing.T) {
	app := New(Options{}, *newHandlers())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestRootListsEndpoints(t *testing.T) {
	app := New(Options{}, *newHandlers())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, AppName, body.Message)
	assert.Contains(t, body.Endpoints, "POST /api/v1/analyze/resume")
	assert.NotContains(t, body.Endpoints, "GET /api/v1/analyses")
}

func TestUnknownRouteUsesErrorPayload(t *testing.T) {
	app := New(Options{}, *newHandlers())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body.Message)
}
