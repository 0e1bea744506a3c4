package v1

import "time"

type Course struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	ImageSrc string `json:"imageSrc"`
}

type CourseRequest struct {
	Title    string `json:"title" binding:"notblank,max=200"`
	ImageSrc string `json:"imageSrc" binding:"max=500"`
}

type Unit struct {
	Id          int64  `json:"id"`
	CourseId    int64  `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type UnitRequest struct {
	CourseId    int64  `json:"courseId" binding:"required,gt=0"`
	Title       string `json:"title" binding:"notblank,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Position    int    `json:"position" binding:"gte=0"`
}

type Chapter struct {
	Id       int64  `json:"id"`
	UnitId   int64  `json:"unitId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type ChapterRequest struct {
	UnitId   int64  `json:"unitId" binding:"required,gt=0"`
	Title    string `json:"title" binding:"notblank,max=200"`
	Position int    `json:"position" binding:"gte=0"`
}

type Lesson struct {
	Id        int64  `json:"id"`
	ChapterId int64  `json:"chapterId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Position  int    `json:"position"`
}

type LessonRequest struct {
	ChapterId int64  `json:"chapterId" binding:"required,gt=0"`
	Title     string `json:"title" binding:"notblank,max=200"`
	Content   string `json:"content"`
	Position  int    `json:"position" binding:"gte=0"`
}

type Subscription struct {
	Id               int64     `json:"id"`
	UserId           string    `json:"userId"`
	CustomerId       string    `json:"customerId"`
	SubscriptionId   string    `json:"subscriptionId"`
	PriceId          string    `json:"priceId"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

// SubscriptionStatus is the learner view of billing. Subscription is nil
// when the learner never subscribed.
type SubscriptionStatus struct {
	Active       bool          `json:"active"`
	Subscription *Subscription `json:"subscription"`
}

// Admin carries the user id twice: list views key rows by "id".
type Admin struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminRequest struct {
	UserId string `json:"userId" binding:"notblank,max=200"`
}

type UserProgress struct {
	UserId           string  `json:"userId"`
	UserName         string  `json:"userName"`
	UserImageSrc     string  `json:"userImageSrc"`
	ActiveCourseId   *int64  `json:"activeCourseId"`
	Hearts           int     `json:"hearts"`
	Points           int     `json:"points"`
	CompletedLessons []int64 `json:"completedLessons,omitempty"`
	Subscribed       bool    `json:"subscribed"`
}

type SelectCourseRequest struct {
	CourseId int64 `json:"courseId" binding:"required,gt=0"`
}

type Health struct {
	Status string `json:"status"`
}

type Error struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type SubscriptionRequest struct {
	UserId           string    `json:"userId" binding:"notblank,max=200"`
	CustomerId       string    `json:"customerId" binding:"notblank,max=200"`
	SubscriptionId   string    `json:"subscriptionId" binding:"notblank,max=200"`
	PriceId          string    `json:"priceId" binding:"notblank,max=200"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd" binding:"required"`
}
