package models

import "time"

const (
	MaxHearts       = 5
	PointsToRefill  = 10
	PointsPerLesson = 10
)

// Learner is the identity of the caller as known from the identity provider.
type Learner struct {
	UserID   string
	Name     string
	ImageSrc string
}

type UserProgress struct {
	UserID         string
	UserName       string
	UserImageSrc   string
	ActiveCourseID *int64
	Hearts         int
	Points         int
}

type LessonProgress struct {
	UserID      string
	LessonID    int64
	Completed   bool
	CompletedAt time.Time
}
