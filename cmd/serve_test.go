package cmd

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"model-compare/core/cache"
	"model-compare/core/config"
	"model-compare/core/metrics"
	"model-compare/core/middleware/auth"
	"model-compare/core/middleware/rayid"
	"model-compare/core/server"
	"model-compare/core/storage"
	"model-compare/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServer(t *testing.T, apiKey string) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		Server:  server.Config{ApiKey: apiKey},
		Storage: storage.Config{Bucket: "models"},
	}
	mappings, err := cache.New(8, time.Minute)
	require.NoError(t, err)

	app, err := newServer(cfg, zap.NewNop(), new(mocks.Client), mappings, metrics.NewCollector("test"))
	require.NoError(t, err)
	return app
}

func TestServer_Auth(t *testing.T) {
	app := setupServer(t, "secret")
	payload := `{"first": ` + archV1 + `, "second": ` + archV2 + `}`

	req := httptest.NewRequest("POST", "/compare", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	req = httptest.NewRequest("POST", "/compare", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_MetricsIsPublic(t *testing.T) {
	app := setupServer(t, "secret")

	req := httptest.NewRequest("POST", "/compare", strings.NewReader(`{"first": {}, "second": {}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.Header, "secret")
	_, err := app.Test(req)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_compare_runs_total{source="inline"} 1`)
}
