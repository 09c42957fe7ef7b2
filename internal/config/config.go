package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Defaults for the seeding knobs. All of them can be overridden through
// the environment; tests inject a Config directly.
const (
	DefaultListenAddr     = ":8080"
	DefaultAllowedOrigin  = "http://localhost:3000"
	DefaultMaxRetries     = 5
	DefaultRetryBackoff   = 1 * time.Second
	DefaultChunkSize      = 50
	DefaultConnectTimeout = 5 * time.Second
)

type Config struct {
	ListenAddr    string
	AllowedOrigin string

	// DatabaseURL is the pooled DSN used by the read endpoints.
	// DatabaseURLUnpooled is preferred for seeding; each falls back to
	// the other when only one is set.
	DatabaseURL         string
	DatabaseURLUnpooled string

	// DatabaseCACert is an optional path to a custom CA bundle, appended
	// to the DSN as sslrootcert.
	DatabaseCACert string

	ConnectTimeout time.Duration

	// SeedMaxRetries bounds sequential connection attempts made by the
	// seeder. SeedRetryBackoff is the initial delay, doubled per attempt.
	SeedMaxRetries   int
	SeedRetryBackoff time.Duration

	// ReadMaxRetries and ReadRetryBackoff govern the boot-time pooled
	// connection used by the read endpoints.
	ReadMaxRetries   int
	ReadRetryBackoff time.Duration

	// SeedChunkSize is how many rows each concurrent insert batch carries.
	SeedChunkSize int
}

func Load() *Config {
	cfg := &Config{
		ListenAddr:          envOr("LISTEN_ADDR", DefaultListenAddr),
		AllowedOrigin:       envOr("ALLOWED_ORIGIN", DefaultAllowedOrigin),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DatabaseURLUnpooled: os.Getenv("DATABASE_URL_UNPOOLED"),
		DatabaseCACert:      os.Getenv("DATABASE_CA_CERT"),
		ConnectTimeout:      envDurationOr("DATABASE_CONNECT_TIMEOUT", DefaultConnectTimeout),
		SeedMaxRetries:      envIntOr("SEED_MAX_RETRIES", DefaultMaxRetries),
		SeedRetryBackoff:    envDurationOr("SEED_RETRY_BACKOFF", DefaultRetryBackoff),
		SeedChunkSize:       envIntOr("SEED_CHUNK_SIZE", DefaultChunkSize),
		ReadMaxRetries:      envIntOr("DATABASE_MAX_RETRIES", DefaultMaxRetries),
		ReadRetryBackoff:    envDurationOr("DATABASE_RETRY_BACKOFF", DefaultRetryBackoff),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = cfg.DatabaseURLUnpooled
	}
	if cfg.DatabaseURLUnpooled == "" {
		cfg.DatabaseURLUnpooled = cfg.DatabaseURL
	}

	return cfg
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if c.DatabaseURL == "" && c.DatabaseURLUnpooled == "" {
		return errors.New("DATABASE_URL or DATABASE_URL_UNPOOLED must be set")
	}
	if c.SeedMaxRetries < 1 {
		return errors.New("SEED_MAX_RETRIES must be at least 1")
	}
	if c.ReadMaxRetries < 1 {
		return errors.New("DATABASE_MAX_RETRIES must be at least 1")
	}
	if c.SeedChunkSize < 1 {
		return errors.New("SEED_CHUNK_SIZE must be at least 1")
	}
	return nil
}

// SeedDSN returns the DSN the seeder should dial, with the custom CA
// appended when configured.
func (c *Config) SeedDSN() string {
	return withRootCert(c.DatabaseURLUnpooled, c.DatabaseCACert)
}

// ReadDSN returns the pooled DSN used by the read endpoints.
func (c *Config) ReadDSN() string {
	return withRootCert(c.DatabaseURL, c.DatabaseCACert)
}

func withRootCert(dsn, caPath string) string {
	if dsn == "" || caPath == "" {
		return dsn
	}
	// Keyword/value DSNs ("host=... dbname=...") take a space-separated
	// parameter, not a query string.
	if !strings.Contains(dsn, "://") {
		return dsn + " sslrootcert=" + caPath
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "sslrootcert=" + caPath
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
