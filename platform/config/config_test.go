package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/leads")
	t.Setenv("BUSINESS_TZ_OFFSET", "9h")
	t.Setenv("SNAPSHOT_TTL", "720h")
	t.Setenv("UNPRICED_CUTOFF_DATE", "2024-01-01")
	t.Setenv("CALL_START_CUTOFF_DATE", "2024-07-01")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BusinessUTCOffset != 9*time.Hour {
		t.Fatalf("expected +9h business offset, got %v", cfg.BusinessUTCOffset)
	}
	if cfg.SnapshotTTL != 720*time.Hour {
		t.Fatalf("expected 720h snapshot TTL, got %v", cfg.SnapshotTTL)
	}
	if cfg.UnpricedCutoff != "2024-01-01" || cfg.CallStartCutoff != "2024-07-01" {
		t.Fatalf("unexpected cutoffs: %s / %s", cfg.UnpricedCutoff, cfg.CallStartCutoff)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadRejectsBadBusinessOffset(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BUSINESS_TZ_OFFSET", "nine hours")

	if _, err := Load(); err == nil {
		t.Fatal("a malformed timezone offset must fail loudly, not fall back")
	}
}

func TestLoadRejectsBadSnapshotTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SNAPSHOT_TTL", "30d")

	if _, err := Load(); err == nil {
		t.Fatal("a malformed snapshot TTL must fail loudly, not yield an unbounded key")
	}
}

func TestLoadRejectsBadCutoffDate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UNPRICED_CUTOFF_DATE", "01/01/2024")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-canonical cutoff date")
	}
}
