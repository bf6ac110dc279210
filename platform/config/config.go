// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the API and scheduler binaries.
type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string
	RedisURL    string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	// BusinessUTCOffset is the fixed offset of the business timezone.
	// Every calendar-date comparison in the classification engine uses it,
	// regardless of the host machine's locale.
	BusinessUTCOffset time.Duration

	// UnpricedCutoff and CallStartCutoff gate the unpriced and
	// call-not-started categories. Canonical YYYY-MM-DD form.
	UnpricedCutoff  string
	CallStartCutoff string

	// SnapshotCron schedules the daily category-count snapshot job
	// (cron spec, business-local time). SnapshotTTL bounds retention.
	SnapshotCron string
	SnapshotTTL  time.Duration
}

// Load reads configuration from the environment (and .env, when present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	businessOffset, err := parseDuration("BUSINESS_TZ_OFFSET", getEnv("BUSINESS_TZ_OFFSET", "9h"))
	if err != nil {
		return nil, err
	}
	snapshotTTL, err := parseDuration("SNAPSHOT_TTL", getEnv("SNAPSHOT_TTL", "720h"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		BusinessUTCOffset: businessOffset,
		UnpricedCutoff:    getEnv("UNPRICED_CUTOFF_DATE", "2024-01-01"),
		CallStartCutoff:   getEnv("CALL_START_CUTOFF_DATE", "2024-07-01"),
		SnapshotCron:      getEnv("SNAPSHOT_CRON", "0 6 * * *"),
		SnapshotTTL:       snapshotTTL,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if err := validDate(cfg.UnpricedCutoff); err != nil {
		return nil, fmt.Errorf("UNPRICED_CUTOFF_DATE: %w", err)
	}
	if err := validDate(cfg.CallStartCutoff); err != nil {
		return nil, fmt.Errorf("CALL_START_CUTOFF_DATE: %w", err)
	}

	return cfg, nil
}

// BusinessLocation returns the fixed business timezone.
func (c *Config) BusinessLocation() *time.Location {
	return time.FixedZone("business", int(c.BusinessUTCOffset.Seconds()))
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: expected a duration like \"9h\", got %q", key, value)
	}
	return d, nil
}

func validDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
