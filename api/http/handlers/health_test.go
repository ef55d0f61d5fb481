package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/avikamggh/ai-interviewer/pkg/health"
	"github.com/avikamggh/ai-interviewer/pkg/health/checkers"
)

func TestHealthAndReady(t *testing.T) {
	h := NewHealthHandler(health.NewService(checkers.NewCatalogChecker()))
	app := fiber.New()
	app.Get("/api/v1/health", h.Health)
	app.Get("/api/v1/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
