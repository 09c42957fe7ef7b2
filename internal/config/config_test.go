package config_test

import (
	"testing"
	"time"

	"dashboard-seed-backend/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "ALLOWED_ORIGIN",
		"DATABASE_URL", "DATABASE_URL_UNPOOLED", "DATABASE_CA_CERT",
		"DATABASE_CONNECT_TIMEOUT",
		"SEED_MAX_RETRIES", "SEED_RETRY_BACKOFF", "SEED_CHUNK_SIZE",
		"DATABASE_MAX_RETRIES", "DATABASE_RETRY_BACKOFF",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.SeedMaxRetries != config.DefaultMaxRetries {
		t.Errorf("SeedMaxRetries = %d, want %d", cfg.SeedMaxRetries, config.DefaultMaxRetries)
	}
	if cfg.SeedRetryBackoff != config.DefaultRetryBackoff {
		t.Errorf("SeedRetryBackoff = %s, want %s", cfg.SeedRetryBackoff, config.DefaultRetryBackoff)
	}
	if cfg.SeedChunkSize != config.DefaultChunkSize {
		t.Errorf("SeedChunkSize = %d, want %d", cfg.SeedChunkSize, config.DefaultChunkSize)
	}
	if cfg.ReadMaxRetries != config.DefaultMaxRetries {
		t.Errorf("ReadMaxRetries = %d, want %d", cfg.ReadMaxRetries, config.DefaultMaxRetries)
	}
	if cfg.ReadRetryBackoff != config.DefaultRetryBackoff {
		t.Errorf("ReadRetryBackoff = %s, want %s", cfg.ReadRetryBackoff, config.DefaultRetryBackoff)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://pooled/db")
	t.Setenv("DATABASE_URL_UNPOOLED", "postgres://direct/db")
	t.Setenv("SEED_MAX_RETRIES", "3")
	t.Setenv("SEED_RETRY_BACKOFF", "250ms")
	t.Setenv("SEED_CHUNK_SIZE", "10")
	t.Setenv("DATABASE_MAX_RETRIES", "2")
	t.Setenv("DATABASE_RETRY_BACKOFF", "500ms")

	cfg := config.Load()

	if cfg.DatabaseURL != "postgres://pooled/db" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://pooled/db")
	}
	if cfg.SeedMaxRetries != 3 {
		t.Errorf("SeedMaxRetries = %d, want 3", cfg.SeedMaxRetries)
	}
	if cfg.SeedRetryBackoff != 250*time.Millisecond {
		t.Errorf("SeedRetryBackoff = %s, want 250ms", cfg.SeedRetryBackoff)
	}
	if cfg.SeedChunkSize != 10 {
		t.Errorf("SeedChunkSize = %d, want 10", cfg.SeedChunkSize)
	}
	if cfg.ReadMaxRetries != 2 {
		t.Errorf("ReadMaxRetries = %d, want 2", cfg.ReadMaxRetries)
	}
	if cfg.ReadRetryBackoff != 500*time.Millisecond {
		t.Errorf("ReadRetryBackoff = %s, want 500ms", cfg.ReadRetryBackoff)
	}
}

func TestDSNFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://pooled/db")

	cfg := config.Load()

	if cfg.DatabaseURLUnpooled != "postgres://pooled/db" {
		t.Errorf("DatabaseURLUnpooled = %q, want fallback to pooled DSN", cfg.DatabaseURLUnpooled)
	}

	clearEnv(t)
	t.Setenv("DATABASE_URL_UNPOOLED", "postgres://direct/db")

	cfg = config.Load()

	if cfg.DatabaseURL != "postgres://direct/db" {
		t.Errorf("DatabaseURL = %q, want fallback to unpooled DSN", cfg.DatabaseURL)
	}
}

func TestSeedDSNAppendsRootCert(t *testing.T) {
	cfg := &config.Config{
		DatabaseURLUnpooled: "postgres://host/db",
		DatabaseCACert:      "/etc/ssl/ca.pem",
	}
	want := "postgres://host/db?sslrootcert=/etc/ssl/ca.pem"
	if got := cfg.SeedDSN(); got != want {
		t.Errorf("SeedDSN() = %q, want %q", got, want)
	}

	cfg.DatabaseURLUnpooled = "postgres://host/db?sslmode=require"
	want = "postgres://host/db?sslmode=require&sslrootcert=/etc/ssl/ca.pem"
	if got := cfg.SeedDSN(); got != want {
		t.Errorf("SeedDSN() = %q, want %q", got, want)
	}

	cfg.DatabaseCACert = ""
	want = "postgres://host/db?sslmode=require"
	if got := cfg.SeedDSN(); got != want {
		t.Errorf("SeedDSN() without CA = %q, want %q", got, want)
	}
}

func TestSeedDSNKeywordForm(t *testing.T) {
	cfg := &config.Config{
		DatabaseURLUnpooled: "host=db.internal user=app dbname=dashboard",
		DatabaseCACert:      "/etc/ssl/ca.pem",
	}
	want := "host=db.internal user=app dbname=dashboard sslrootcert=/etc/ssl/ca.pem"
	if got := cfg.SeedDSN(); got != want {
		t.Errorf("SeedDSN() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with no DSN should fail")
	}

	cfg = &config.Config{
		DatabaseURL:    "postgres://host/db",
		SeedMaxRetries: 0,
		ReadMaxRetries: 5,
		SeedChunkSize:  50,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with zero seed retries should fail")
	}

	cfg.SeedMaxRetries = 5
	cfg.ReadMaxRetries = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with zero read retries should fail")
	}

	cfg.ReadMaxRetries = 5
	cfg.SeedChunkSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with zero chunk size should fail")
	}

	cfg.SeedChunkSize = 50
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
