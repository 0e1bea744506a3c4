package listquery

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type MatchKind int

const (
	// Exact compares with "=", or IN when the filter value is an array.
	Exact MatchKind = iota
	// Contains is a case-sensitive substring match.
	Contains
)

// ValueKind is the type a filter value is converted to before it reaches SQL.
// Values that cannot be converted are dropped.
type ValueKind int

const (
	// Auto keeps strings and booleans and turns integral numbers into int64.
	Auto ValueKind = iota
	// Int accepts integral numbers and numeric strings.
	Int
	// Text accepts strings, numbers and booleans and compares their text.
	Text
	// Time accepts RFC 3339 timestamps and dates.
	Time
)

type Field struct {
	Column string
	Match  MatchKind
	Kind   ValueKind
}

// FieldMap maps the filter and sort keys a collection recognizes to SQL columns.
// The IDField entry names the primary key column; it defaults to "id".
type FieldMap map[string]Field

func (m FieldMap) idColumn() string {
	if f, ok := m[IDField]; ok && f.Column != "" {
		return f.Column
	}
	return IDField
}

// Apply adds the predicates, ordering and window of d to b.
func Apply(b sq.SelectBuilder, d Descriptor, fields FieldMap) sq.SelectBuilder {
	b = Filter(b, d, fields)
	b = b.OrderBy(orderBy(d, fields)...)
	if !d.FetchAll {
		b = b.Limit(d.Limit()).Offset(d.Offset())
	}
	return b
}

// Filter adds only the predicates of d to b. It is used for count queries.
func Filter(b sq.SelectBuilder, d Descriptor, fields FieldMap) sq.SelectBuilder {
	preds := predicates(d.Filter, fields)
	if len(preds) == 0 {
		return b
	}
	return b.Where(preds)
}

func predicates(filter map[string]any, fields FieldMap) sq.And {
	// keys are sorted so the generated SQL is deterministic
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	preds := sq.And{}
	for _, k := range keys {
		f, ok := fields[k]
		if !ok {
			continue
		}
		v := filter[k]
		if v == nil {
			continue
		}

		switch f.Match {
		case Contains:
			text, ok := toText(v)
			if !ok {
				logger().Debugw("ignoring non-scalar substring filter", "key", k, "value", v)
				continue
			}
			pattern := "%" + escapeLike(text) + "%"
			preds = append(preds, sq.Expr(f.Column+` LIKE ? ESCAPE '\'`, pattern))
		default:
			value, ok := exactValue(v, f.Kind)
			if !ok {
				logger().Debugw("ignoring filter value of the wrong type", "key", k, "value", v)
				continue
			}
			preds = append(preds, sq.Eq{f.Column: value})
		}
	}
	return preds
}

// exactValue converts a scalar, or every element of an array, to kind.
// Elements that do not convert are dropped. An array left with no element
// is rejected unless it was empty to begin with.
func exactValue(v any, kind ValueKind) (any, bool) {
	items, ok := v.([]any)
	if !ok {
		return convert(v, kind)
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		if c, ok := convert(item, kind); ok {
			out = append(out, c)
		}
	}
	if len(items) > 0 && len(out) == 0 {
		return nil, false
	}
	return out, true
}

func convert(v any, kind ValueKind) (any, bool) {
	switch kind {
	case Int:
		return toInt(v)
	case Text:
		return toText(v)
	case Time:
		return toTime(v)
	default:
		return toScalar(v)
	}
}

func orderBy(d Descriptor, fields FieldMap) []string {
	id := fields.idColumn()

	col := id
	if f, ok := fields[d.SortField]; ok && f.Column != "" {
		col = f.Column
	} else if d.SortField != "" && d.SortField != IDField {
		logger().Debugw("unknown sort field, ordering by id", "field", d.SortField)
	}

	order := Asc
	if d.SortOrder == Desc {
		order = Desc
	}

	clauses := []string{fmt.Sprintf("%s %s", col, order)}
	if col != id {
		clauses = append(clauses, id+" ASC")
	}
	return clauses
}

func toScalar(v any) (any, bool) {
	switch t := v.(type) {
	case string, bool, int, int64, time.Time:
		return t, true
	case float64:
		if i, ok := toInt(t); ok {
			return i, true
		}
		return t, true
	default:
		return nil, false
	}
}

func toInt(v any) (any, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) || math.Abs(t) >= 1<<53 {
			return nil, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, false
		}
		return i, true
	default:
		return nil, false
	}
}

func toText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func toTime(v any) (any, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return nil, false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
