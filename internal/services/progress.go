package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
	srvErrors "github.com/learnloop/academy/pkg/errors"
)

const defaultLearnerName = "User"

// ProgressService implements the hearts and points economy.
type ProgressService struct {
	store         *store.Store
	subscriptions *SubscriptionService
	log           *zap.SugaredLogger
	// scoreMu serializes read-modify-write cycles on hearts and points. The
	// database file is locked to one process, so this covers every writer.
	scoreMu sync.Mutex
}

func NewProgressService(st *store.Store, subs *SubscriptionService) *ProgressService {
	return &ProgressService{
		store:         st,
		subscriptions: subs,
		log:           zap.S().Named("progress_service"),
	}
}

type ProgressOverview struct {
	Progress         models.UserProgress
	CompletedLessons []int64
	Subscribed       bool
}

func (s *ProgressService) Get(ctx context.Context, userID string) (*ProgressOverview, error) {
	p, err := s.store.Progress().Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.store.Progress().CompletedLessons(ctx, userID)
	if err != nil {
		return nil, err
	}

	subscribed, err := s.subscriptions.IsActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProgressOverview{Progress: *p, CompletedLessons: completed, Subscribed: subscribed}, nil
}

// SelectCourse makes courseID the active course of the learner, creating the
// progress row with full hearts on first use. The identity is refreshed on
// every call, the score never is.
func (s *ProgressService) SelectCourse(ctx context.Context, learner models.Learner, courseID int64) (*models.UserProgress, error) {
	if _, err := s.store.Courses().Get(ctx, courseID); err != nil {
		return nil, err
	}

	lessons, err := s.store.Progress().CountCourseLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if lessons == 0 {
		return nil, srvErrors.NewValidationError("course %d has no lessons yet", courseID)
	}

	name := learner.Name
	if name == "" {
		name = defaultLearnerName
	}

	p, err := s.store.Progress().Upsert(ctx, models.UserProgress{
		UserID:         learner.UserID,
		UserName:       name,
		UserImageSrc:   learner.ImageSrc,
		ActiveCourseID: &courseID,
		Hearts:         models.MaxHearts,
	})
	if err != nil {
		return nil, err
	}

	s.log.Debugw("active course selected", "user_id", learner.UserID, "course_id", courseID)
	return p, nil
}

// CompleteLesson awards the lesson points. A repeated completion is practice
// and also gives back one heart. A first completion needs a heart left
// unless the learner is subscribed.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID string, lessonID int64) (*models.UserProgress, error) {
	if _, err := s.store.Lessons().Get(ctx, lessonID); err != nil {
		return nil, err
	}

	subscribed, err := s.subscriptions.IsActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.updateScore(ctx, userID, func(tx *store.Store, p *models.UserProgress) (bool, error) {
		practice, err := tx.Progress().IsLessonCompleted(ctx, userID, lessonID)
		if err != nil {
			return false, err
		}

		if !practice && !subscribed && p.Hearts <= 0 {
			return false, srvErrors.NewConflictError("no hearts left")
		}

		p.Points += models.PointsPerLesson
		if practice {
			p.Hearts = min(p.Hearts+1, models.MaxHearts)
		}

		if err := tx.Progress().MarkLessonCompleted(ctx, userID, lessonID); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debugw("lesson completed", "user_id", userID, "lesson_id", lessonID, "hearts", result.Hearts, "points", result.Points)
	return result, nil
}

// ReduceHearts takes one heart for a mistake. Practicing a completed lesson
// and holding a subscription cost nothing.
func (s *ProgressService) ReduceHearts(ctx context.Context, userID string, lessonID int64) (*models.UserProgress, error) {
	if _, err := s.store.Lessons().Get(ctx, lessonID); err != nil {
		return nil, err
	}

	subscribed, err := s.subscriptions.IsActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.updateScore(ctx, userID, func(tx *store.Store, p *models.UserProgress) (bool, error) {
		practice, err := tx.Progress().IsLessonCompleted(ctx, userID, lessonID)
		if err != nil {
			return false, err
		}
		if practice || subscribed {
			return false, nil
		}

		if p.Hearts <= 0 {
			return false, srvErrors.NewConflictError("no hearts left")
		}
		p.Hearts--
		return true, nil
	})
}

// RefillHearts trades PointsToRefill points for a full set of hearts.
func (s *ProgressService) RefillHearts(ctx context.Context, userID string) (*models.UserProgress, error) {
	return s.updateScore(ctx, userID, func(_ *store.Store, p *models.UserProgress) (bool, error) {
		if p.Hearts >= models.MaxHearts {
			return false, srvErrors.NewConflictError("hearts are already full")
		}
		if p.Points < models.PointsToRefill {
			return false, srvErrors.NewValidationError("refilling hearts needs %d points, have %d", models.PointsToRefill, p.Points)
		}

		p.Hearts = models.MaxHearts
		p.Points -= models.PointsToRefill
		return true, nil
	})
}

// updateScore loads the progress of userID, lets fn change it and stores the
// new score when fn reports a change. Score updates are serialized and each
// runs in its own transaction.
func (s *ProgressService) updateScore(
	ctx context.Context,
	userID string,
	fn func(tx *store.Store, p *models.UserProgress) (bool, error),
) (*models.UserProgress, error) {
	s.scoreMu.Lock()
	defer s.scoreMu.Unlock()

	var result *models.UserProgress
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		p, err := tx.Progress().Get(ctx, userID)
		if err != nil {
			return err
		}

		changed, err := fn(tx, p)
		if err != nil {
			return err
		}
		if changed {
			if err := tx.Progress().UpdateScore(ctx, userID, p.Hearts, p.Points); err != nil {
				return err
			}
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
