package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

const idColumn = "id"

type scanner interface {
	Scan(dest ...any) error
}

// schema describes how an entity maps to its table. scan reads the id
// followed by columns, values returns the writable columns in order.
type schema[T any] struct {
	table    string
	resource string
	columns  []string
	fields   listquery.FieldMap
	scan     func(s scanner) (T, error)
	values   func(item T) []any
}

func (s schema[T]) selectColumns() []string {
	return append([]string{idColumn}, s.columns...)
}

func (s schema[T]) returning() string {
	return "RETURNING " + strings.Join(s.selectColumns(), ", ")
}

// Table is the CRUD repository of an entity keyed by an integer id.
type Table[T any] struct {
	db     QueryInterceptor
	schema schema[T]
}

func newTable[T any](db QueryInterceptor, s schema[T]) *Table[T] {
	return &Table[T]{db: db, schema: s}
}

// Resource is the singular name used in error messages.
func (t *Table[T]) Resource() string {
	return t.schema.resource
}

func (t *Table[T]) List(ctx context.Context, d listquery.Descriptor) ([]T, error) {
	builder := listquery.Apply(
		sq.Select(t.schema.selectColumns()...).From(t.schema.table),
		d,
		t.schema.fields,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.schema.table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := t.schema.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Count returns the number of rows matching the filter of d. The window and
// the ordering of d are ignored.
func (t *Table[T]) Count(ctx context.Context, d listquery.Descriptor) (int, error) {
	builder := listquery.Filter(sq.Select("COUNT(*)").From(t.schema.table), d, t.schema.fields)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.schema.table, err)
	}
	return count, nil
}

func (t *Table[T]) Get(ctx context.Context, id int64) (T, error) {
	query, args, err := sq.Select(t.schema.selectColumns()...).
		From(t.schema.table).
		Where(sq.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		var zero T
		return zero, err
	}

	return t.scanOne(t.db.QueryRowContext(ctx, query, args...), id)
}

func (t *Table[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").From(t.schema.table).Where(sq.Eq{idColumn: id}).ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts item and returns the stored row with its generated id.
func (t *Table[T]) Create(ctx context.Context, item T) (T, error) {
	query, args, err := sq.Insert(t.schema.table).
		Columns(t.schema.columns...).
		Values(t.schema.values(item)...).
		Suffix(t.schema.returning()).
		ToSql()
	if err != nil {
		var zero T
		return zero, err
	}

	created, err := t.schema.scan(t.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return created, t.writeError("create", err)
	}
	return created, nil
}

// Update replaces every writable column of the row identified by id.
func (t *Table[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	values := t.schema.values(item)
	set := make(map[string]any, len(values))
	for i, col := range t.schema.columns {
		set[col] = values[i]
	}

	query, args, err := sq.Update(t.schema.table).
		SetMap(set).
		Where(sq.Eq{idColumn: id}).
		Suffix(t.schema.returning()).
		ToSql()
	if err != nil {
		var zero T
		return zero, err
	}

	updated, err := t.scanOne(t.db.QueryRowContext(ctx, query, args...), id)
	if err != nil && !srvErrors.IsResourceNotFoundError(err) {
		return updated, t.writeError("update", err)
	}
	return updated, err
}

// Delete removes the row identified by id and returns it.
func (t *Table[T]) Delete(ctx context.Context, id int64) (T, error) {
	query, args, err := sq.Delete(t.schema.table).
		Where(sq.Eq{idColumn: id}).
		Suffix(t.schema.returning()).
		ToSql()
	if err != nil {
		var zero T
		return zero, err
	}

	return t.scanOne(t.db.QueryRowContext(ctx, query, args...), id)
}

func (t *Table[T]) scanOne(row *sql.Row, id int64) (T, error) {
	item, err := t.schema.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return item, srvErrors.NewResourceNotFoundError(t.schema.resource, id)
	}
	return item, err
}

func (t *Table[T]) writeError(op string, err error) error {
	if isConstraintError(err) {
		return srvErrors.NewConflictError("cannot %s %s: %v", op, t.schema.resource, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, t.schema.resource, err)
}
