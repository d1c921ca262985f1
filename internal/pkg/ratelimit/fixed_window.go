package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"workforce-bot-api/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// FixedWindowLimiter limits requests per key in a fixed time window shared
// through Redis. Redis failures let the request through.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration

	redisClient *redis.Client
	redisPrefix string
	logger      logger.ILogger
	now         func() time.Time
}

func NewRedisFixedWindowLimiter(redisURL, prefix string, limit int, window time.Duration, log logger.ILogger) (*FixedWindowLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	redisURL = strings.TrimSpace(redisURL)
	if redisURL == "" {
		return nil, errors.New("rate limiter redis url is required")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_REDIS_URL: %w", err)
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "workforce:ratelimit"
	}
	return &FixedWindowLimiter{
		limit:       limit,
		window:      window,
		redisClient: redis.NewClient(opts),
		redisPrefix: prefix,
		logger:      log,
		now:         time.Now,
	}, nil
}

// Allow returns true when the key is within quota.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	if windowMs <= 0 {
		return true
	}
	windowSlot := l.now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.redisPrefix, key, windowSlot)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.redisClient, []string{redisKey}, windowMs).Int64()
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("RATELIMIT", "Redis unavailable, allowing request", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return true
	}
	return count <= int64(l.limit)
}

func (l *FixedWindowLimiter) Close() error {
	if l == nil {
		return nil
	}
	return l.redisClient.Close()
}
