package models

// Course is the top of the content hierarchy: course → unit → chapter → lesson.
type Course struct {
	ID       int64
	Title    string
	ImageSrc string
}

type Unit struct {
	ID          int64
	CourseID    int64
	Title       string
	Description string
	Position    int
}

type Chapter struct {
	ID       int64
	UnitID   int64
	Title    string
	Position int
}

type Lesson struct {
	ID        int64
	ChapterID int64
	Title     string
	// Content is the lesson body, including the starter code of the sandbox.
	Content  string
	Position int
}
