package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"workforce-bot-api/internal/bootstrap"
	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/server"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			ServiceName:        "Telegram Workforce Bot API",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			CorsAllowedOrigins: "*",
			ExposeErrorDetails: true,
			Timezone:           "UTC",
		},
		Database: config.DatabaseConfig{QueryTimeout: time.Second},
		Payroll:  config.PayrollConfig{WorkerTypesFile: filepath.Join(dir, "worker_types.yaml")},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	container, err := bootstrap.NewContainer(nil, cfg)
	require.NoError(t, err)
	t.Cleanup(container.Close)
	return server.New(cfg, container).GetApp()
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body
}

func TestServer_HealthWithoutDatabase(t *testing.T) {
	app := newTestServer(t, testConfig(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	body := decode(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "not configured", body["database"])
	assert.Len(t, body["endpoints"], 8)
}

func TestServer_DataEndpointWithoutDatabase(t *testing.T) {
	app := newTestServer(t, testConfig(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/hours/555", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Database connection not available", decode(t, resp)["detail"])
}

func TestServer_ValidationRunsBeforeStore(t *testing.T) {
	app := newTestServer(t, testConfig(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/conversation-history/42?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestServer(t, testConfig(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["detail"])
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	app := newTestServer(t, testConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}

func TestServer_RateLimitPerChat(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.RateLimit = config.RateLimitConfig{
		RedisURL: "redis://" + mr.Addr(),
		Limit:    2,
		Window:   time.Minute,
		Prefix:   "test",
	}
	app := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/payments/1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/payments/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too many requests", decode(t, resp)["detail"])

	// Other chats have their own bucket.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/telegram/payments/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// System endpoints are never limited.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
