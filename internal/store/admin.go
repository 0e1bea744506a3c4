package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/pkg/listquery"
)

// adminFields is keyed by user id: the admins table has no surrogate key.
var adminFields = listquery.FieldMap{
	"id":     {Column: "user_id", Match: listquery.Exact, Kind: listquery.Text},
	"q":      {Column: "user_id", Match: listquery.Contains},
	"userId": {Column: "user_id", Match: listquery.Exact, Kind: listquery.Text},
}

type AdminStore struct {
	db QueryInterceptor
}

func NewAdminStore(db QueryInterceptor) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) List(ctx context.Context, d listquery.Descriptor) ([]models.Admin, error) {
	query, args, err := listquery.Apply(sq.Select("user_id", "created_at").From("admins"), d, adminFields).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (s *AdminStore) Count(ctx context.Context, d listquery.Descriptor) (int, error) {
	query, args, err := listquery.Filter(sq.Select("COUNT(*)").From("admins"), d, adminFields).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (s *AdminStore) Exists(ctx context.Context, userID string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, queryAdminExists, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant is idempotent.
func (s *AdminStore) Grant(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, queryGrantAdmin, userID)
	return err
}

// Revoke reports whether a row was removed.
func (s *AdminStore) Revoke(ctx context.Context, userID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, queryRevokeAdmin, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
