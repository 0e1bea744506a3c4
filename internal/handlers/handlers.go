package handlers

import (
	"context"

	v1 "github.com/learnloop/academy/api/v1"
	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/pkg/listquery"
)

type Handler struct {
	courses       *resource[models.Course, v1.Course, v1.CourseRequest]
	units         *resource[models.Unit, v1.Unit, v1.UnitRequest]
	chapters      *resource[models.Chapter, v1.Chapter, v1.ChapterRequest]
	lessons       *resource[models.Lesson, v1.Lesson, v1.LessonRequest]
	subscriptions *resource[models.Subscription, v1.Subscription, v1.SubscriptionRequest]

	adminSrv    *services.AdminService
	progressSrv *services.ProgressService
	billingSrv  *services.SubscriptionService
	parser      *listquery.Parser
	ping        func(ctx context.Context) error
}

// New builds the handler set. ping backs the health endpoint.
func New(svcs *services.Services, parser *listquery.Parser, ping func(ctx context.Context) error) *Handler {
	setupValidation()

	return &Handler{
		courses:       newResource[models.Course, v1.Course, v1.CourseRequest]("courses", svcs.Courses, v1.NewCourseFromModel, parser),
		units:         newResource[models.Unit, v1.Unit, v1.UnitRequest]("units", svcs.Units, v1.NewUnitFromModel, parser),
		chapters:      newResource[models.Chapter, v1.Chapter, v1.ChapterRequest]("chapters", svcs.Chapters, v1.NewChapterFromModel, parser),
		lessons:       newResource[models.Lesson, v1.Lesson, v1.LessonRequest]("lessons", svcs.Lessons, v1.NewLessonFromModel, parser),
		subscriptions: newResource[models.Subscription, v1.Subscription, v1.SubscriptionRequest]("subscriptions", svcs.Subscriptions, v1.NewSubscriptionFromModel, parser),
		adminSrv:      svcs.Admins,
		progressSrv:   svcs.Progress,
		billingSrv:    svcs.Billing,
		parser:        parser,
		ping:          ping,
	}
}
