package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
	"github.com/learnloop/academy/internal/store/migrations"
	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

var _ = Describe("ProgressStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		It("should return ResourceNotFoundError for an unknown learner", func() {
			_, err := s.Progress().Get(ctx, "nobody")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Upsert", func() {
		// Given an existing progress row with a score
		// When we upsert the identity and a new active course
		// Then the score should be kept
		It("should keep hearts and points of an existing row", func() {
			// Arrange
			courseID := int64(1)
			_, err := s.Progress().Upsert(ctx, models.UserProgress{UserID: "u1", UserName: "Ann", ActiveCourseID: &courseID, Hearts: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Progress().UpdateScore(ctx, "u1", 3, 40)).To(Succeed())

			// Act
			other := int64(2)
			p, err := s.Progress().Upsert(ctx, models.UserProgress{UserID: "u1", UserName: "Ann B", ActiveCourseID: &other, Hearts: 5})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(p.UserName).To(Equal("Ann B"))
			Expect(*p.ActiveCourseID).To(Equal(int64(2)))
			Expect(p.Hearts).To(Equal(3))
			Expect(p.Points).To(Equal(40))
		})
	})

	Context("UpdateScore", func() {
		It("should return ResourceNotFoundError for an unknown learner", func() {
			err := s.Progress().UpdateScore(ctx, "nobody", 1, 1)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("lesson completion", func() {
		It("should record completions once per lesson", func() {
			// Act
			Expect(s.Progress().MarkLessonCompleted(ctx, "u1", 3)).To(Succeed())
			Expect(s.Progress().MarkLessonCompleted(ctx, "u1", 3)).To(Succeed())
			Expect(s.Progress().MarkLessonCompleted(ctx, "u1", 1)).To(Succeed())

			// Assert
			done, err := s.Progress().IsLessonCompleted(ctx, "u1", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())

			done, err = s.Progress().IsLessonCompleted(ctx, "u2", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())

			ids, err := s.Progress().CompletedLessons(ctx, "u1")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{1, 3}))
		})
	})

	Context("CountCourseLessons", func() {
		It("should count lessons across units and chapters", func() {
			// Arrange
			course, err := s.Courses().Create(ctx, models.Course{Title: "Go"})
			Expect(err).NotTo(HaveOccurred())
			unit, err := s.Units().Create(ctx, models.Unit{CourseID: course.ID, Title: "Basics"})
			Expect(err).NotTo(HaveOccurred())
			chapter, err := s.Chapters().Create(ctx, models.Chapter{UnitID: unit.ID, Title: "Types"})
			Expect(err).NotTo(HaveOccurred())
			for _, title := range []string{"int", "string"} {
				_, err := s.Lessons().Create(ctx, models.Lesson{ChapterID: chapter.ID, Title: title})
				Expect(err).NotTo(HaveOccurred())
			}

			// Act
			n, err := s.Progress().CountCourseLessons(ctx, course.ID)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
		})
	})
})

var _ = Describe("AdminStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should grant idempotently and revoke", func() {
		// Act
		Expect(s.Admins().Grant(ctx, "alice")).To(Succeed())
		Expect(s.Admins().Grant(ctx, "alice")).To(Succeed())
		Expect(s.Admins().Grant(ctx, "bob")).To(Succeed())

		// Assert
		ok, err := s.Admins().Exists(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		total, err := s.Admins().Count(ctx, listquery.All(nil))
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))

		removed, err := s.Admins().Revoke(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(removed).To(BeTrue())

		removed, err = s.Admins().Revoke(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(removed).To(BeFalse())
	})

	It("should list admins sorted by user id", func() {
		// Arrange
		for _, id := range []string{"carol", "alice", "bob"} {
			Expect(s.Admins().Grant(ctx, id)).To(Succeed())
		}

		// Act
		admins, err := s.Admins().List(ctx, listquery.Parse(map[string]string{"sort": `["id","DESC"]`, "range": "[0,1]"}))

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(admins).To(HaveLen(2))
		Expect(admins[0].UserID).To(Equal("carol"))
		Expect(admins[1].UserID).To(Equal("bob"))
	})
})
