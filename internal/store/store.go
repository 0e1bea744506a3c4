package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/learnloop/academy/internal/models"
)

// Store provides access to all storage repositories.
type Store struct {
	db            *sql.DB
	courses       *Table[models.Course]
	units         *Table[models.Unit]
	chapters      *Table[models.Chapter]
	lessons       *Table[models.Lesson]
	subscriptions *Table[models.Subscription]
	progress      *ProgressStore
	admins        *AdminStore
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, newLoggingInterceptor(db))
}

func newStore(db *sql.DB, qi QueryInterceptor) *Store {
	return &Store{
		db:            db,
		courses:       newTable(qi, courseSchema),
		units:         newTable(qi, unitSchema),
		chapters:      newTable(qi, chapterSchema),
		lessons:       newTable(qi, lessonSchema),
		subscriptions: newTable(qi, subscriptionSchema),
		progress:      NewProgressStore(qi),
		admins:        NewAdminStore(qi),
	}
}

func (s *Store) Courses() *Table[models.Course] {
	return s.courses
}

func (s *Store) Units() *Table[models.Unit] {
	return s.units
}

func (s *Store) Chapters() *Table[models.Chapter] {
	return s.chapters
}

func (s *Store) Lessons() *Table[models.Lesson] {
	return s.lessons
}

func (s *Store) Subscriptions() *Table[models.Subscription] {
	return s.subscriptions
}

func (s *Store) Progress() *ProgressStore {
	return s.progress
}

func (s *Store) Admins() *AdminStore {
	return s.admins
}

// WithTx runs fn against a Store bound to a single transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.db == nil {
		return errors.New("nested transactions are not supported")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(newStore(nil, newLoggingInterceptor(tx))); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

// Ping checks that the database answers. It fails on a transaction-bound Store.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("ping is not supported inside a transaction")
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
