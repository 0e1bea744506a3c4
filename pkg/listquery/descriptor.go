package listquery

import (
	"math"
	"strings"
)

type Order string

const (
	Asc  Order = "ASC"
	Desc Order = "DESC"
)

// ParseOrder returns Desc for any casing of "desc" and Asc otherwise.
func ParseOrder(s string) Order {
	if Order(strings.ToUpper(strings.TrimSpace(s))) == Desc {
		return Desc
	}
	return Asc
}

// Descriptor is the parsed pagination, sort and filter intent of one request.
type Descriptor struct {
	FetchAll  bool
	Start     int
	End       int
	SortField string
	SortOrder Order
	Filter    map[string]any
}

// MaxIndex is the largest window index. Parse clamps larger values to it so
// LIMIT and OFFSET stay inside what the database accepts.
const MaxIndex = math.MaxInt32

// Limit is the page size of the window.
func (d Descriptor) Limit() uint64 {
	start, end := clampIndex(d.Start), clampIndex(d.End)
	if end < start {
		return 0
	}
	return uint64(end-start) + 1
}

func (d Descriptor) Offset() uint64 {
	return uint64(clampIndex(d.Start))
}

func clampIndex(i int) int {
	return min(max(i, 0), MaxIndex)
}

// All returns a descriptor that selects every row matching filter, ordered by id.
func All(filter map[string]any) Descriptor {
	if filter == nil {
		filter = map[string]any{}
	}
	return Descriptor{
		FetchAll:  true,
		SortField: IDField,
		SortOrder: Asc,
		Filter:    filter,
	}
}
