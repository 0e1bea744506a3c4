package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

const (
	memoryPath   = ":memory:"
	openTimeout  = 30 * time.Second
	openMaxTries = 6
)

// NewDB opens the DuckDB database at path. ":memory:" opens a private
// in-memory database. Opening is retried while another process holds the
// file lock.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if dsn == memoryPath {
		dsn = ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	db, err := backoff.Retry(ctx, func() (*sql.DB, error) {
		db, err := sql.Open("duckdb", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err != nil {
				_ = db.Close()
			}
		}
		if err == nil {
			return db, nil
		}
		if isLockError(err) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(openMaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			zap.S().Named("store").Warnw("database is locked, retrying", "path", path, "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	return db, nil
}

func isLockError(err error) bool {
	return strings.Contains(err.Error(), "Could not set lock")
}

func isConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Constraint Error")
}
