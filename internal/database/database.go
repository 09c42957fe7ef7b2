package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenFunc dials a database and returns a verified handle. The seeder and
// tests inject their own implementations.
type OpenFunc func(ctx context.Context, dsn string) (*gorm.DB, error)

// Open connects through the GORM postgres driver and pings the underlying
// connection before handing it out. A handle that fails the ping is closed
// and never returned.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return db, nil
}

// Connect calls open up to maxRetries times, sleeping backoff between
// attempts and doubling it each time. Retries are sequential; ctx
// cancellation aborts the wait.
func Connect(ctx context.Context, dsn string, maxRetries int, backoff time.Duration, open OpenFunc, log *zap.Logger) (*gorm.DB, error) {
	var lastErr error

	delay := backoff
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err := open(ctx, dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err

		log.Warn("database connection attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err))

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "connect cancelled")
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, errors.Wrapf(lastErr, "database unreachable after %d attempts", maxRetries)
}

// Close releases the underlying connection. A close failure is logged and
// swallowed so it never overrides the result already decided.
func Close(db *gorm.DB, log *zap.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("unwrap sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	}
}
