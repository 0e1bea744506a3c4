package listquery_test

import (
	"math"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/pkg/listquery"
)

var _ = Describe("Parse", func() {
	Context("fetchAll", func() {
		// Given no query parameters at all
		// When we parse them
		// Then the descriptor should select the whole collection
		It("should fetch all when the parameter set is empty", func() {
			d := listquery.Parse(map[string]string{})

			Expect(d.FetchAll).To(BeTrue())
			Expect(d.SortField).To(Equal("id"))
			Expect(d.SortOrder).To(Equal(listquery.Asc))
			Expect(d.Filter).To(BeEmpty())
		})

		It("should honor an explicit fetchAll=true over a range", func() {
			d := listquery.Parse(map[string]string{"fetchAll": "true", "range": "[0,1]"})

			Expect(d.FetchAll).To(BeTrue())
		})

		It("should not fetch all when any other parameter is present", func() {
			d := listquery.Parse(map[string]string{"sort": `["title","DESC"]`})

			Expect(d.FetchAll).To(BeFalse())
		})

		It("should treat a malformed fetchAll as false", func() {
			d := listquery.Parse(map[string]string{"fetchAll": "yes please"})

			Expect(d.FetchAll).To(BeFalse())
		})

		// Given a parser configured to bound empty requests
		// When it parses an empty parameter set
		// Then it should return the default first page
		It("should return the first page for empty parameters when empty fetch-all is disabled", func() {
			p := listquery.NewParser(listquery.WithEmptyFetchAll(false), listquery.WithDefaultPageEnd(24))

			d := p.Parse(map[string]string{})

			Expect(d.FetchAll).To(BeFalse())
			Expect(d.Start).To(Equal(0))
			Expect(d.End).To(Equal(24))
		})
	})

	Context("range", func() {
		It("should parse a JSON range", func() {
			d := listquery.Parse(map[string]string{"range": "[5,14]"})

			Expect(d.Start).To(Equal(5))
			Expect(d.End).To(Equal(14))
			Expect(d.Limit()).To(Equal(uint64(10)))
			Expect(d.Offset()).To(Equal(uint64(5)))
		})

		It("should fall back to legacy _start/_end on a malformed range", func() {
			d := listquery.Parse(map[string]string{"range": "[5,", "_start": "20", "_end": "29"})

			Expect(d.Start).To(Equal(20))
			Expect(d.End).To(Equal(29))
		})

		It("should fall back to legacy parameters when the range has the wrong arity", func() {
			d := listquery.Parse(map[string]string{"range": "[1,2,3]", "_start": "3"})

			Expect(d.Start).To(Equal(3))
			Expect(d.End).To(Equal(10))
		})

		It("should default to 0 and 10 when nothing parses", func() {
			d := listquery.Parse(map[string]string{"range": "garbage", "_start": "x", "_end": "y"})

			Expect(d.Start).To(Equal(0))
			Expect(d.End).To(Equal(10))
		})

		It("should clamp negative and inverted windows", func() {
			d := listquery.Parse(map[string]string{"range": "[-4,-9]"})

			Expect(d.Start).To(Equal(0))
			Expect(d.End).To(Equal(0))

			d = listquery.Parse(map[string]string{"range": "[8,2]"})
			Expect(d.Start).To(Equal(8))
			Expect(d.End).To(Equal(8))
		})

		// Given a window reaching the largest integer
		// When it is parsed
		// Then the end should be capped so the page size does not overflow
		It("should cap huge windows", func() {
			d := listquery.Parse(map[string]string{"range": "[0,9223372036854775807]"})

			Expect(d.Start).To(Equal(0))
			Expect(d.End).To(Equal(listquery.MaxIndex))
			Expect(d.Limit()).To(Equal(uint64(listquery.MaxIndex) + 1))

			d = listquery.Parse(map[string]string{"range": "[9223372036854775807,9223372036854775807]"})
			Expect(d.Offset()).To(Equal(uint64(listquery.MaxIndex)))
			Expect(d.Limit()).To(Equal(uint64(1)))
		})

		It("should saturate the limit of a hand-built descriptor", func() {
			d := listquery.Descriptor{Start: -5, End: math.MaxInt}

			Expect(d.Offset()).To(Equal(uint64(0)))
			Expect(d.Limit()).To(Equal(uint64(listquery.MaxIndex) + 1))
		})
	})

	Context("sort", func() {
		It("should parse a JSON sort pair", func() {
			d := listquery.Parse(map[string]string{"sort": `["title","desc"]`})

			Expect(d.SortField).To(Equal("title"))
			Expect(d.SortOrder).To(Equal(listquery.Desc))
		})

		It("should default the field to id and read _order independently", func() {
			d := listquery.Parse(map[string]string{"sort": `{"title":1}`, "_order": "DESC"})

			Expect(d.SortField).To(Equal("id"))
			Expect(d.SortOrder).To(Equal(listquery.Desc))
		})

		It("should treat an unknown direction as ascending", func() {
			d := listquery.Parse(map[string]string{"sort": `["title","sideways"]`})

			Expect(d.SortOrder).To(Equal(listquery.Asc))
		})
	})

	Context("filter", func() {
		It("should parse a JSON object", func() {
			d := listquery.Parse(map[string]string{"filter": `{"title":"Intro","courseId":3,"id":[1,2]}`})

			Expect(d.Filter).To(HaveKeyWithValue("title", "Intro"))
			Expect(d.Filter).To(HaveKeyWithValue("courseId", float64(3)))
			Expect(d.Filter).To(HaveKey("id"))
		})

		It("should default to no filtering on malformed input", func() {
			for _, raw := range []string{`{"title":`, `["title"]`, `null`, `42`} {
				d := listquery.Parse(map[string]string{"filter": raw})
				Expect(d.Filter).To(BeEmpty(), "filter %q", raw)
				Expect(d.Filter).NotTo(BeNil())
			}
		})
	})

	// Given malformed range, sort and filter together
	// When we parse them
	// Then every field should degrade to its default without panicking
	It("should never fail on malformed input", func() {
		d := listquery.Parse(map[string]string{
			"range":  "[[",
			"sort":   "][",
			"filter": "{{",
		})

		Expect(d).To(Equal(listquery.Descriptor{
			FetchAll:  false,
			Start:     0,
			End:       10,
			SortField: "id",
			SortOrder: listquery.Asc,
			Filter:    map[string]any{},
		}))
	})

	It("should parse url values keeping the first value", func() {
		values := url.Values{}
		values.Add("range", "[0,4]")
		values.Add("range", "[10,14]")

		d := listquery.NewParser().ParseValues(values)

		Expect(d.Start).To(Equal(0))
		Expect(d.End).To(Equal(4))
	})
})
