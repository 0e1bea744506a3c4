package listquery

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderContentRange = "Content-Range"
	HeaderTotalCount   = "X-Total-Count"
)

const headerExposeHeaders = "Access-Control-Expose-Headers"

// ContentRange formats "<entity> <start>-<end>/<total>". A window that
// returned no row, because nothing matched or because it starts past the
// last match, is reported as "<entity> */<total>".
func ContentRange(entity string, total int, d Descriptor) string {
	total = max(total, 0)

	start, end := d.Start, total-1
	if d.FetchAll {
		start = 0
	} else if d.End < end {
		end = d.End
	}
	if total == 0 || start > end {
		return fmt.Sprintf("%s */%d", entity, total)
	}
	return fmt.Sprintf("%s %d-%d/%d", entity, start, end, total)
}

// SetHeaders writes pagination, cache and CORS exposure headers for a list
// response. Headers already exposed by an earlier middleware are kept.
func SetHeaders(h http.Header, entity string, total int, d Descriptor) {
	h.Set(HeaderContentRange, ContentRange(entity, total, d))
	h.Set(HeaderTotalCount, strconv.Itoa(total))
	exposeHeaders(h, HeaderContentRange, HeaderTotalCount)
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// Respond writes rows as a bare JSON array along with the list headers.
func Respond[T any](c *gin.Context, entity string, rows []T, total int, d Descriptor) {
	if rows == nil {
		rows = []T{}
	}
	SetHeaders(c.Writer.Header(), entity, total, d)
	c.JSON(http.StatusOK, rows)
}

func exposeHeaders(h http.Header, names ...string) {
	var exposed []string
	for _, v := range h.Values(headerExposeHeaders) {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				exposed = append(exposed, name)
			}
		}
	}

	for _, name := range names {
		if !slices.ContainsFunc(exposed, func(e string) bool { return strings.EqualFold(e, name) }) {
			exposed = append(exposed, name)
		}
	}
	h.Set(headerExposeHeaders, strings.Join(exposed, ", "))
}
