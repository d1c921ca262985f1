package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Payroll   PayrollConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	ServiceName        string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ExposeErrorDetails bool
	Timezone           string
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Connection      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type PayrollConfig struct {
	WorkerTypesFile  string
	DayRateUsernames []string
}

type RateLimitConfig struct {
	RedisURL string
	Limit    int
	Window   time.Duration
	Prefix   string
}

type EventsConfig struct {
	NatsURL string
	Subject string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	env := getEnv("GO_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", getEnv("PORT", "8000")),
			ServiceName:        getEnv("SERVICE_NAME", "Telegram Workforce Bot API"),
			Environment:        env,
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ExposeErrorDetails: getEnvAsBool("EXPOSE_ERROR_DETAILS", env != "production"),
			Timezone:           getEnv("APP_TIMEZONE", "Local"),
			ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Connection:      databaseDSN(),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			QueryTimeout:    getEnvAsDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		},
		Payroll: PayrollConfig{
			WorkerTypesFile:  getEnv("WORKER_TYPES_FILE", "config/worker_types.yaml"),
			DayRateUsernames: getEnvAsList("WORKER_DAY_RATE_USERNAMES"),
		},
		RateLimit: RateLimitConfig{
			RedisURL: getEnv("RATE_LIMIT_REDIS_URL", ""),
			Limit:    getEnvAsInt("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
			Prefix:   getEnv("RATE_LIMIT_PREFIX", "workforce:ratelimit"),
		},
		Events: EventsConfig{
			NatsURL: getEnv("NATS_URL", ""),
			Subject: getEnv("EVENTS_SUBJECT_PREFIX", "events"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}

	return cfg
}

// IsDatabaseConfigured reports whether a connection string is available.
func (c *Config) IsDatabaseConfigured() bool {
	return c.Database.Connection != ""
}

// Location resolves App.Timezone, defaulting to the server's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || strings.EqualFold(c.App.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.Database.MaxOpenConns))
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS, got %d", c.Database.MaxIdleConns))
	}
	if c.Database.QueryTimeout <= 0 {
		errs = append(errs, errors.New("DB_QUERY_TIMEOUT must be positive"))
	}
	if c.RateLimit.RedisURL != "" && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("rate limiting requires positive RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}

	return errors.Join(errs...)
}

// databaseDSN prefers DB_CONNECTION_STRING and falls back to the PG* variables
// used by the hosting platform.
func databaseDSN() string {
	if dsn := getEnv("DB_CONNECTION_STRING", ""); dsn != "" {
		return dsn
	}

	host := getEnv("PGHOST", "")
	user := getEnv("PGUSER", "")
	password := getEnv("PGPASSWORD", "")
	name := getEnv("PGDATABASE", "")
	if host == "" || user == "" || password == "" || name == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(user, password),
		Host:   host + ":" + getEnv("PGPORT", "5432"),
		Path:   "/" + name,
	}
	q := u.Query()
	q.Set("sslmode", getEnv("PGSSLMODE", "prefer"))
	u.RawQuery = q.Encode()

	return u.String()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
