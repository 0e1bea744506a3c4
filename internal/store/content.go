package store

import (
	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/pkg/listquery"
)

var courseSchema = schema[models.Course]{
	table:    "courses",
	resource: "course",
	columns:  []string{"title", "image_src"},
	fields: listquery.FieldMap{
		"id":       {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
		"q":        {Column: "title", Match: listquery.Contains},
		"title":    {Column: "title", Match: listquery.Contains},
		"imageSrc": {Column: "image_src", Match: listquery.Contains},
	},
	scan: func(s scanner) (models.Course, error) {
		var c models.Course
		err := s.Scan(&c.ID, &c.Title, &c.ImageSrc)
		return c, err
	},
	values: func(c models.Course) []any {
		return []any{c.Title, c.ImageSrc}
	},
}

var unitSchema = schema[models.Unit]{
	table:    "units",
	resource: "unit",
	columns:  []string{"course_id", "title", "description", "ordinal"},
	fields: listquery.FieldMap{
		"id":          {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
		"q":           {Column: "title", Match: listquery.Contains},
		"courseId":    {Column: "course_id", Match: listquery.Exact, Kind: listquery.Int},
		"title":       {Column: "title", Match: listquery.Contains},
		"description": {Column: "description", Match: listquery.Contains},
		"position":    {Column: "ordinal", Match: listquery.Exact, Kind: listquery.Int},
	},
	scan: func(s scanner) (models.Unit, error) {
		var u models.Unit
		err := s.Scan(&u.ID, &u.CourseID, &u.Title, &u.Description, &u.Position)
		return u, err
	},
	values: func(u models.Unit) []any {
		return []any{u.CourseID, u.Title, u.Description, u.Position}
	},
}

var chapterSchema = schema[models.Chapter]{
	table:    "chapters",
	resource: "chapter",
	columns:  []string{"unit_id", "title", "ordinal"},
	fields: listquery.FieldMap{
		"id":       {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
		"q":        {Column: "title", Match: listquery.Contains},
		"unitId":   {Column: "unit_id", Match: listquery.Exact, Kind: listquery.Int},
		"title":    {Column: "title", Match: listquery.Contains},
		"position": {Column: "ordinal", Match: listquery.Exact, Kind: listquery.Int},
	},
	scan: func(s scanner) (models.Chapter, error) {
		var c models.Chapter
		err := s.Scan(&c.ID, &c.UnitID, &c.Title, &c.Position)
		return c, err
	},
	values: func(c models.Chapter) []any {
		return []any{c.UnitID, c.Title, c.Position}
	},
}

var lessonSchema = schema[models.Lesson]{
	table:    "lessons",
	resource: "lesson",
	columns:  []string{"chapter_id", "title", "content", "ordinal"},
	fields: listquery.FieldMap{
		"id":        {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
		"q":         {Column: "title", Match: listquery.Contains},
		"chapterId": {Column: "chapter_id", Match: listquery.Exact, Kind: listquery.Int},
		"title":     {Column: "title", Match: listquery.Contains},
		"content":   {Column: "content", Match: listquery.Contains},
		"position":  {Column: "ordinal", Match: listquery.Exact, Kind: listquery.Int},
	},
	scan: func(s scanner) (models.Lesson, error) {
		var l models.Lesson
		err := s.Scan(&l.ID, &l.ChapterID, &l.Title, &l.Content, &l.Position)
		return l, err
	},
	values: func(l models.Lesson) []any {
		return []any{l.ChapterID, l.Title, l.Content, l.Position}
	},
}

var subscriptionSchema = schema[models.Subscription]{
	table:    "subscriptions",
	resource: "subscription",
	columns:  []string{"user_id", "customer_id", "subscription_id", "price_id", "current_period_end"},
	fields: listquery.FieldMap{
		"id":               {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
		"q":                {Column: "user_id", Match: listquery.Contains},
		"userId":           {Column: "user_id", Match: listquery.Exact, Kind: listquery.Text},
		"customerId":       {Column: "customer_id", Match: listquery.Exact, Kind: listquery.Text},
		"subscriptionId":   {Column: "subscription_id", Match: listquery.Exact, Kind: listquery.Text},
		"priceId":          {Column: "price_id", Match: listquery.Exact, Kind: listquery.Text},
		"currentPeriodEnd": {Column: "current_period_end", Match: listquery.Exact, Kind: listquery.Time},
	},
	scan: func(s scanner) (models.Subscription, error) {
		var sub models.Subscription
		err := s.Scan(&sub.ID, &sub.UserID, &sub.CustomerID, &sub.SubscriptionID, &sub.PriceID, &sub.CurrentPeriodEnd)
		return sub, err
	},
	values: func(sub models.Subscription) []any {
		return []any{sub.UserID, sub.CustomerID, sub.SubscriptionID, sub.PriceID, sub.CurrentPeriodEnd}
	},
}
