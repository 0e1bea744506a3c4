package listquery_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/pkg/listquery"
)

var _ = Describe("Response", func() {
	Describe("ContentRange", func() {
		DescribeTable("formats the served window",
			func(d listquery.Descriptor, total int, expected string) {
				Expect(listquery.ContentRange("courses", total, d)).To(Equal(expected))
			},
			Entry("page inside the collection", listquery.Descriptor{Start: 0, End: 9}, 42, "courses 0-9/42"),
			Entry("page past the end is clamped", listquery.Descriptor{Start: 40, End: 49}, 42, "courses 40-41/42"),
			Entry("fetch all covers everything", listquery.Descriptor{FetchAll: true, Start: 5, End: 6}, 3, "courses 0-2/3"),
			Entry("no match", listquery.Descriptor{Start: 0, End: 9}, 0, "courses */0"),
			Entry("page starting past the end", listquery.Descriptor{Start: 5, End: 9}, 3, "courses */3"),
			Entry("page starting on the last row", listquery.Descriptor{Start: 2, End: 9}, 3, "courses 2-2/3"),
		)
	})

	Describe("Respond", func() {
		var (
			rec *httptest.ResponseRecorder
			c   *gin.Context
		)

		BeforeEach(func() {
			gin.SetMode(gin.TestMode)
			rec = httptest.NewRecorder()
			c, _ = gin.CreateTestContext(rec)
		})

		It("should write the rows and the pagination headers", func() {
			type row struct {
				ID int `json:"id"`
			}

			listquery.Respond(c, "entities", []row{{ID: 1}, {ID: 2}}, 2, listquery.Descriptor{Start: 0, End: 1})

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`[{"id":1},{"id":2}]`))
			Expect(rec.Header().Get("Content-Range")).To(Equal("entities 0-1/2"))
			Expect(rec.Header().Get("X-Total-Count")).To(Equal("2"))
			Expect(rec.Header().Get("Access-Control-Expose-Headers")).To(Equal("Content-Range, X-Total-Count"))
			Expect(rec.Header().Get("Cache-Control")).To(Equal("no-cache, no-store, must-revalidate"))
			Expect(rec.Header().Get("Expires")).To(Equal("0"))
		})

		// Given a CORS middleware that already exposed the request id
		// When a list response is written
		// Then the request id should stay exposed next to the pagination headers
		It("should keep headers exposed by earlier middlewares", func() {
			c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Range")

			listquery.Respond(c, "entities", []int{1}, 1, listquery.Descriptor{Start: 0, End: 9})

			Expect(rec.Header().Get("Access-Control-Expose-Headers")).To(Equal("X-Request-ID, Content-Range, X-Total-Count"))
		})

		It("should write an empty array instead of null", func() {
			listquery.Respond[int](c, "entities", nil, 0, listquery.Descriptor{})

			Expect(rec.Body.String()).To(MatchJSON(`[]`))
			Expect(rec.Header().Get("X-Total-Count")).To(Equal("0"))
		})
	})
})
