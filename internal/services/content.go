package services

import (
	"context"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

type ListResult[T any] struct {
	Items []T
	Total int
}

// ContentService exposes CRUD over one Table. checkParent runs before
// create and update, checkChildren before delete.
type ContentService[T any] struct {
	table         *store.Table[T]
	checkParent   func(ctx context.Context, item T) error
	checkChildren func(ctx context.Context, id int64) error
}

func NewCourseService(st *store.Store) *ContentService[models.Course] {
	return &ContentService[models.Course]{
		table: st.Courses(),
		checkChildren: func(ctx context.Context, id int64) error {
			return refuseChildren(ctx, "course", id, st.Units(), "courseId")
		},
	}
}

func NewUnitService(st *store.Store) *ContentService[models.Unit] {
	return &ContentService[models.Unit]{
		table: st.Units(),
		checkParent: func(ctx context.Context, u models.Unit) error {
			return requireParent(ctx, st.Courses(), u.CourseID)
		},
		checkChildren: func(ctx context.Context, id int64) error {
			return refuseChildren(ctx, "unit", id, st.Chapters(), "unitId")
		},
	}
}

func NewChapterService(st *store.Store) *ContentService[models.Chapter] {
	return &ContentService[models.Chapter]{
		table: st.Chapters(),
		checkParent: func(ctx context.Context, c models.Chapter) error {
			return requireParent(ctx, st.Units(), c.UnitID)
		},
		checkChildren: func(ctx context.Context, id int64) error {
			return refuseChildren(ctx, "chapter", id, st.Lessons(), "chapterId")
		},
	}
}

func NewLessonService(st *store.Store) *ContentService[models.Lesson] {
	return &ContentService[models.Lesson]{
		table: st.Lessons(),
		checkParent: func(ctx context.Context, l models.Lesson) error {
			return requireParent(ctx, st.Chapters(), l.ChapterID)
		},
	}
}

// NewSubscriptionAdminService backs the admin view of subscriptions. They
// have no parent or child checks.
func NewSubscriptionAdminService(st *store.Store) *ContentService[models.Subscription] {
	return &ContentService[models.Subscription]{table: st.Subscriptions()}
}

// List runs the page query and the count query. The two reads are not
// isolated from concurrent writes.
func (s *ContentService[T]) List(ctx context.Context, d listquery.Descriptor) (*ListResult[T], error) {
	items, err := s.table.List(ctx, d)
	if err != nil {
		return nil, err
	}

	total, err := s.table.Count(ctx, d)
	if err != nil {
		return nil, err
	}

	return &ListResult[T]{Items: items, Total: total}, nil
}

func (s *ContentService[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.table.Get(ctx, id)
}

func (s *ContentService[T]) Create(ctx context.Context, item T) (T, error) {
	if s.checkParent != nil {
		if err := s.checkParent(ctx, item); err != nil {
			var zero T
			return zero, err
		}
	}
	return s.table.Create(ctx, item)
}

func (s *ContentService[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	if _, err := s.table.Get(ctx, id); err != nil {
		return item, err
	}
	if s.checkParent != nil {
		if err := s.checkParent(ctx, item); err != nil {
			return item, err
		}
	}
	return s.table.Update(ctx, id, item)
}

func (s *ContentService[T]) Delete(ctx context.Context, id int64) (T, error) {
	if s.checkChildren != nil {
		if err := s.checkChildren(ctx, id); err != nil {
			var zero T
			return zero, err
		}
	}
	return s.table.Delete(ctx, id)
}

func requireParent[P any](ctx context.Context, parents *store.Table[P], id int64) error {
	ok, err := parents.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return srvErrors.NewFieldValidationError(map[string]string{
			parents.Resource() + "Id": "does not exist",
		})
	}
	return nil
}

func refuseChildren[C any](ctx context.Context, resource string, id int64, children *store.Table[C], key string) error {
	n, err := children.Count(ctx, listquery.All(map[string]any{key: id}))
	if err != nil {
		return err
	}
	if n > 0 {
		return srvErrors.NewConflictError("%s %d still has %d %s(s)", resource, id, n, children.Resource())
	}
	return nil
}
