package v1

import (
	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/services"
)

func NewCourseFromModel(m models.Course) Course {
	return Course{Id: m.ID, Title: m.Title, ImageSrc: m.ImageSrc}
}

func (r CourseRequest) ToModel() models.Course {
	return models.Course{Title: r.Title, ImageSrc: r.ImageSrc}
}

func NewUnitFromModel(m models.Unit) Unit {
	return Unit{
		Id:          m.ID,
		CourseId:    m.CourseID,
		Title:       m.Title,
		Description: m.Description,
		Position:    m.Position,
	}
}

func (r UnitRequest) ToModel() models.Unit {
	return models.Unit{
		CourseID:    r.CourseId,
		Title:       r.Title,
		Description: r.Description,
		Position:    r.Position,
	}
}

func NewChapterFromModel(m models.Chapter) Chapter {
	return Chapter{Id: m.ID, UnitId: m.UnitID, Title: m.Title, Position: m.Position}
}

func (r ChapterRequest) ToModel() models.Chapter {
	return models.Chapter{UnitID: r.UnitId, Title: r.Title, Position: r.Position}
}

func NewLessonFromModel(m models.Lesson) Lesson {
	return Lesson{
		Id:        m.ID,
		ChapterId: m.ChapterID,
		Title:     m.Title,
		Content:   m.Content,
		Position:  m.Position,
	}
}

func (r LessonRequest) ToModel() models.Lesson {
	return models.Lesson{
		ChapterID: r.ChapterId,
		Title:     r.Title,
		Content:   r.Content,
		Position:  r.Position,
	}
}

func NewSubscriptionFromModel(m models.Subscription) Subscription {
	return Subscription{
		Id:               m.ID,
		UserId:           m.UserID,
		CustomerId:       m.CustomerID,
		SubscriptionId:   m.SubscriptionID,
		PriceId:          m.PriceID,
		CurrentPeriodEnd: m.CurrentPeriodEnd,
	}
}

func (r SubscriptionRequest) ToModel() models.Subscription {
	return models.Subscription{
		UserID:           r.UserId,
		CustomerID:       r.CustomerId,
		SubscriptionID:   r.SubscriptionId,
		PriceID:          r.PriceId,
		CurrentPeriodEnd: r.CurrentPeriodEnd,
	}
}

func NewAdminFromModel(m models.Admin) Admin {
	return Admin{Id: m.UserID, UserId: m.UserID, CreatedAt: m.CreatedAt}
}

func NewUserProgressFromModel(m models.UserProgress) UserProgress {
	return UserProgress{
		UserId:         m.UserID,
		UserName:       m.UserName,
		UserImageSrc:   m.UserImageSrc,
		ActiveCourseId: m.ActiveCourseID,
		Hearts:         m.Hearts,
		Points:         m.Points,
	}
}

// NewUserProgressFromOverview adds the completed lessons and subscription flag.
func NewUserProgressFromOverview(o services.ProgressOverview) UserProgress {
	p := NewUserProgressFromModel(o.Progress)
	p.CompletedLessons = o.CompletedLessons
	p.Subscribed = o.Subscribed
	return p
}
