package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/learnloop/academy/internal/models"
	srvErrors "github.com/learnloop/academy/pkg/errors"
)

// ProgressStore persists the per-learner score and lesson completions.
type ProgressStore struct {
	db QueryInterceptor
}

func NewProgressStore(db QueryInterceptor) *ProgressStore {
	return &ProgressStore{db: db}
}

// Get returns the progress of userID or a ResourceNotFoundError when the
// learner never selected a course.
func (s *ProgressStore) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	row := s.db.QueryRowContext(ctx, queryGetProgress, userID)

	var (
		p        models.UserProgress
		courseID sql.NullInt64
	)
	err := row.Scan(&p.UserID, &p.UserName, &p.UserImageSrc, &courseID, &p.Hearts, &p.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewResourceNotFoundError("progress", userID)
	}
	if err != nil {
		return nil, err
	}
	if courseID.Valid {
		p.ActiveCourseID = &courseID.Int64
	}
	return &p, nil
}

// Upsert stores the identity and active course of p. Hearts and points are
// only written when the row is created.
func (s *ProgressStore) Upsert(ctx context.Context, p models.UserProgress) (*models.UserProgress, error) {
	var courseID sql.NullInt64
	if p.ActiveCourseID != nil {
		courseID = sql.NullInt64{Int64: *p.ActiveCourseID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, queryUpsertProgress,
		p.UserID, p.UserName, p.UserImageSrc, courseID, p.Hearts, p.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	return s.Get(ctx, p.UserID)
}

func (s *ProgressStore) UpdateScore(ctx context.Context, userID string, hearts, points int) error {
	res, err := s.db.ExecContext(ctx, queryUpdateScore, hearts, points, userID)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return srvErrors.NewResourceNotFoundError("progress", userID)
	}
	return nil
}

func (s *ProgressStore) IsLessonCompleted(ctx context.Context, userID string, lessonID int64) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, queryIsLessonCompleted, userID, lessonID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ProgressStore) MarkLessonCompleted(ctx context.Context, userID string, lessonID int64) error {
	_, err := s.db.ExecContext(ctx, queryMarkLessonCompleted, userID, lessonID)
	return err
}

// CompletedLessons returns the ids of the lessons userID completed, ascending.
func (s *ProgressStore) CompletedLessons(ctx context.Context, userID string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, queryCompletedLessons, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountCourseLessons returns how many lessons are reachable from courseID.
func (s *ProgressStore) CountCourseLessons(ctx context.Context, courseID int64) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, queryCountCourseLessons, courseID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
