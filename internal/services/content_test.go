package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/internal/store"
	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

var _ = Describe("ContentService", func() {
	var (
		ctx context.Context
		st  *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		st, db = newTestStore(ctx)
	})

	AfterEach(func() {
		db.Close()
	})

	Context("List", func() {
		// Given three courses of which two match the filter
		// When we list the first page of one row
		// Then the total should count every matching row
		It("should report the filtered total independent of the window", func() {
			// Arrange
			svc := services.NewCourseService(st)
			for _, title := range []string{"Intro A", "Intro B", "Other"} {
				_, err := svc.Create(ctx, models.Course{Title: title})
				Expect(err).NotTo(HaveOccurred())
			}

			// Act
			result, err := svc.List(ctx, listquery.Parse(map[string]string{
				"filter": `{"title":"Intro"}`,
				"range":  "[0,0]",
			}))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Items).To(HaveLen(1))
			Expect(result.Total).To(Equal(2))
		})
	})

	Context("Create", func() {
		It("should reject a unit whose course does not exist", func() {
			// Act
			_, err := services.NewUnitService(st).Create(ctx, models.Unit{CourseID: 99, Title: "Orphan"})

			// Assert
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			var verr *srvErrors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
			Expect(err.(*srvErrors.ValidationError).Fields()).To(HaveKey("courseId"))
		})

		It("should create a lesson under an existing chapter", func() {
			// Arrange
			seeded := seedCourse(ctx, st, "Go", 0)

			// Act
			lesson, err := services.NewLessonService(st).Create(ctx, models.Lesson{ChapterID: seeded.chapter.ID, Title: "Hello"})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(lesson.ID).NotTo(BeZero())
		})
	})

	Context("Update", func() {
		It("should return ResourceNotFoundError for a missing chapter", func() {
			// Arrange
			seeded := seedCourse(ctx, st, "Go", 0)

			// Act
			_, err := services.NewChapterService(st).Update(ctx, 42, models.Chapter{UnitID: seeded.unit.ID, Title: "x"})

			// Assert
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should reject moving a chapter to a missing unit", func() {
			// Arrange
			seeded := seedCourse(ctx, st, "Go", 0)

			// Act
			_, err := services.NewChapterService(st).Update(ctx, seeded.chapter.ID, models.Chapter{UnitID: 42, Title: "x"})

			// Assert
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		// Given a course that still has a unit
		// When we delete the course
		// Then it should return ConflictError and keep the row
		It("should refuse to delete a parent with children", func() {
			// Arrange
			seeded := seedCourse(ctx, st, "Go", 1)

			// Act
			_, err := services.NewCourseService(st).Delete(ctx, seeded.course.ID)

			// Assert
			Expect(srvErrors.IsConflictError(err)).To(BeTrue())
			_, err = st.Courses().Get(ctx, seeded.course.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should delete a leaf lesson", func() {
			// Arrange
			seeded := seedCourse(ctx, st, "Go", 1)

			// Act
			deleted, err := services.NewLessonService(st).Delete(ctx, seeded.lessons[0].ID)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.ID).To(Equal(seeded.lessons[0].ID))
		})
	})
})
