package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/livemetrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLive(source LiveMetricsSource) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/metrics/live", NewLiveMetricsHandler(source, quietLogger()).Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLiveMetricsHandlerReturnsSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	resp := serveLive(snapshotStub{snap: livemetrics.Seed(now)})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "no-store", resp.Header().Get("Cache-Control"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	assert.Equal(t, float64(247), decoded["active_automations"])
	assert.Equal(t, 98.7, decoded["success_rate"])
	assert.Contains(t, decoded, "updated_at")
}

func TestLiveMetricsHandlerWithService(t *testing.T) {
	resp := serveLive(livemetrics.NewService(livemetrics.Options{}))
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestLiveMetricsHandlerSourceError(t *testing.T) {
	resp := serveLive(snapshotStub{err: errors.New("store offline")})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "store offline")
}
