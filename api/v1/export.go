package v1

import "time"

func (Course) ExportHeader() []string { return []string{"id", "title", "imageSrc"} }

func (c Course) ExportRow() []any { return []any{c.Id, c.Title, c.ImageSrc} }

func (Unit) ExportHeader() []string {
	return []string{"id", "courseId", "title", "description", "position"}
}

func (u Unit) ExportRow() []any {
	return []any{u.Id, u.CourseId, u.Title, u.Description, u.Position}
}

func (Chapter) ExportHeader() []string { return []string{"id", "unitId", "title", "position"} }

func (c Chapter) ExportRow() []any { return []any{c.Id, c.UnitId, c.Title, c.Position} }

func (Lesson) ExportHeader() []string {
	return []string{"id", "chapterId", "title", "content", "position"}
}

func (l Lesson) ExportRow() []any {
	return []any{l.Id, l.ChapterId, l.Title, l.Content, l.Position}
}

func (Subscription) ExportHeader() []string {
	return []string{"id", "userId", "customerId", "subscriptionId", "priceId", "currentPeriodEnd"}
}

func (s Subscription) ExportRow() []any {
	return []any{s.Id, s.UserId, s.CustomerId, s.SubscriptionId, s.PriceId, s.CurrentPeriodEnd.UTC().Format(time.RFC3339)}
}

func (Admin) ExportHeader() []string { return []string{"userId", "createdAt"} }

func (a Admin) ExportRow() []any {
	return []any{a.UserId, a.CreatedAt.UTC().Format(time.RFC3339)}
}
