package services

import (
	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
)

// Services groups every service built on one Store.
type Services struct {
	Courses       *ContentService[models.Course]
	Units         *ContentService[models.Unit]
	Chapters      *ContentService[models.Chapter]
	Lessons       *ContentService[models.Lesson]
	Subscriptions *ContentService[models.Subscription]
	Billing       *SubscriptionService
	Progress      *ProgressService
	Admins        *AdminService
}

func New(st *store.Store) *Services {
	billing := NewSubscriptionService(st)
	return &Services{
		Courses:       NewCourseService(st),
		Units:         NewUnitService(st),
		Chapters:      NewChapterService(st),
		Lessons:       NewLessonService(st),
		Subscriptions: NewSubscriptionAdminService(st),
		Billing:       billing,
		Progress:      NewProgressService(st, billing),
		Admins:        NewAdminService(st),
	}
}
