package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opolancoh/employee-permissions/internal/interfaces/http/handlers/testutil"
)

func healthy(context.Context) error   { return nil }
func unhealthy(context.Context) error { return assert.AnError }

func TestHealthHandler_AllHealthy(t *testing.T) {
	h := NewHealthHandler(map[string]HealthCheck{
		"database": healthy,
		"search":   healthy,
	}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

	h.HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, map[string]string{"database": "healthy", "search": "healthy"}, body.Components)
}

func TestHealthHandler_OneUnhealthy(t *testing.T) {
	h := NewHealthHandler(map[string]HealthCheck{
		"database": healthy,
		"search":   unhealthy,
	}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

	h.HealthCheck(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "healthy", body.Components["database"])
	assert.Equal(t, "unhealthy", body.Components["search"])
}
