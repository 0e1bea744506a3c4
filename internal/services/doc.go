// Package services implements the business rules between the HTTP handlers
// and the store.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services
//	    ├── ContentService[Course] ────────► Store.Courses
//	    ├── ContentService[Unit] ──────────► Store.Units, Store.Courses
//	    ├── ContentService[Chapter] ───────► Store.Chapters, Store.Units
//	    ├── ContentService[Lesson] ────────► Store.Lessons, Store.Chapters
//	    ├── ContentService[Subscription] ──► Store.Subscriptions
//	    ├── SubscriptionService ───────────► Store.Subscriptions
//	    ├── ProgressService ───────────────► Store.Progress, SubscriptionService
//	    └── AdminService ──────────────────► Store.Admins
//
// Services hold a *store.Store and keep no per-request state, so one Services
// value is shared by every request. ProgressService also holds the lock that
// serializes score updates.
//
// # ContentService
//
// ContentService is the generic admin CRUD over one content table. It adds two
// rules on top of store.Table:
//
//   - A child must point to an existing parent. A unit with an unknown courseId
//     is rejected with a ValidationError keyed "courseId".
//   - A parent with children cannot be deleted. Deleting a course that still has
//     units returns a ConflictError.
//
// List runs the page query and the count query with the same filter, so the
// total matches what the page was cut from.
//
// Usage:
//
//	svcs := services.New(st)
//	page, err := svcs.Courses.List(ctx, d)
//	course, err := svcs.Courses.Create(ctx, models.Course{Title: "Spanish"})
//
// # SubscriptionService
//
// A learner is subscribed when their subscription row carries a price id and
// its current period ended less than a day ago. The clock can be replaced with
// WithClock in tests.
//
// # ProgressService
//
// ProgressService holds the hearts and points game:
//
//	┌────────────────────────────┬──────────────────────────────────────────────┐
//	│ Action                     │ Effect                                       │
//	├────────────────────────────┼──────────────────────────────────────────────┤
//	│ SelectCourse               │ active course set, new learners get 5 hearts │
//	│ CompleteLesson (first)     │ +10 points, needs hearts > 0 or subscription │
//	│ CompleteLesson (practice)  │ +10 points, +1 heart up to 5                 │
//	│ ReduceHearts               │ -1 heart, free when practicing or subscribed │
//	│ RefillHearts               │ -10 points, hearts back to 5                 │
//	└────────────────────────────┴──────────────────────────────────────────────┘
//
// CompleteLesson, ReduceHearts and RefillHearts read and write the score
// inside one transaction, one update at a time, so concurrent calls never
// overwrite each other: two completions of the same lesson cannot both count
// as first, and two mistakes always cost two hearts.
//
// # AdminService
//
// AdminService manages the admins table consulted by the table admin policy.
// Granting twice is a no-op. Revoking an unknown user returns a
// ResourceNotFoundError.
package services
