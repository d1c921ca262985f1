package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/pkg/events"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{
			ServiceName: "Telegram Workforce Bot API",
			Timezone:    "UTC",
		},
		Database: config.DatabaseConfig{QueryTimeout: time.Second},
		Payroll: config.PayrollConfig{
			WorkerTypesFile: filepath.Join(t.TempDir(), "missing.yaml"),
		},
	}
}

func TestNewContainer_WithoutDatabase(t *testing.T) {
	c, err := newContainer(nil, testConfig(t), logger.NewNopLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.TelegramController)
	assert.NotNil(t, c.ConversationController)
	assert.NotNil(t, c.SystemController)
	assert.Nil(t, c.RateLimiter)
	assert.IsType(t, events.NopPublisher{}, c.Publisher)
}

func TestNewContainer_InvalidTimezone(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Timezone = "Mars/Olympus_Mons"

	_, err := newContainer(nil, cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "APP_TIMEZONE")
}

func TestNewContainer_InvalidWorkerTypesFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "worker_types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overrides:\n  dal: foreman\n"), 0o600))
	cfg.Payroll.WorkerTypesFile = path

	_, err := newContainer(nil, cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "load worker types")
}

func TestNewContainer_WithRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.RateLimit = config.RateLimitConfig{
		RedisURL: "redis://" + mr.Addr(),
		Limit:    5,
		Window:   time.Minute,
		Prefix:   "test",
	}

	c, err := newContainer(nil, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	assert.NotNil(t, c.RateLimiter)
	c.Close()
}
