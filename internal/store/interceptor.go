package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// QueryInterceptor is the subset of *sql.DB and *sql.Tx used by the stores.
type QueryInterceptor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// loggingInterceptor logs every statement at debug level before running it.
type loggingInterceptor struct {
	conn QueryInterceptor
	log  *zap.SugaredLogger
}

func newLoggingInterceptor(conn QueryInterceptor) *loggingInterceptor {
	return &loggingInterceptor{conn: conn, log: zap.S().Named("sql")}
}

func (l *loggingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	l.log.Debugw("query", "sql", query, "args", args)
	return l.conn.QueryContext(ctx, query, args...)
}

func (l *loggingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	l.log.Debugw("query row", "sql", query, "args", args)
	return l.conn.QueryRowContext(ctx, query, args...)
}

func (l *loggingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	l.log.Debugw("exec", "sql", query, "args", args)
	return l.conn.ExecContext(ctx, query, args...)
}
