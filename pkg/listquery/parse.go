package listquery

import (
	"encoding/json"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const (
	// IDField is the primary identifier every entity exposes to list views.
	IDField = "id"

	defaultPageStart = 0
	defaultPageEnd   = 10
)

type Parser struct {
	emptyFetchAll    bool
	defaultPageEnd   int
	defaultSortField string
}

type Option func(*Parser)

// WithEmptyFetchAll controls whether a request without any parameter returns
// the whole collection (the default) or the default first page.
func WithEmptyFetchAll(enabled bool) Option {
	return func(p *Parser) {
		p.emptyFetchAll = enabled
	}
}

func WithDefaultPageEnd(end int) Option {
	return func(p *Parser) {
		if end >= 0 {
			p.defaultPageEnd = end
		}
	}
}

func WithDefaultSortField(field string) Option {
	return func(p *Parser) {
		if field != "" {
			p.defaultSortField = field
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		emptyFetchAll:    true,
		defaultPageEnd:   defaultPageEnd,
		defaultSortField: IDField,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse builds a Descriptor with the default parser.
func Parse(params map[string]string) Descriptor {
	return defaultParser.Parse(params)
}

// ParseValues keeps the first value of every query parameter and parses the result.
func (p *Parser) ParseValues(values url.Values) Descriptor {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return p.Parse(params)
}

func (p *Parser) Parse(params map[string]string) Descriptor {
	d := Descriptor{
		FetchAll: p.fetchAll(params),
	}
	d.Start, d.End = p.window(params)
	d.SortField, d.SortOrder = p.sort(params)
	d.Filter = p.filter(params)
	return d
}

func (p *Parser) fetchAll(params map[string]string) bool {
	if raw, ok := params["fetchAll"]; ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			logger().Debugw("malformed fetchAll parameter", "value", raw, "error", err)
		}
		return v
	}
	return len(params) == 0 && p.emptyFetchAll
}

func (p *Parser) window(params map[string]string) (int, int) {
	start, end, ok := parseRange(params["range"])
	if !ok {
		start = atoiOr(params, "_start", defaultPageStart)
		end = atoiOr(params, "_end", p.defaultPageEnd)
	}

	start, end = clampIndex(start), clampIndex(end)
	if end < start {
		end = start
	}
	return start, end
}

func parseRange(raw string) (int, int, bool) {
	if raw == "" {
		return 0, 0, false
	}
	var r []int
	if err := json.Unmarshal([]byte(raw), &r); err != nil || len(r) != 2 {
		logger().Debugw("malformed range parameter", "value", raw, "error", err)
		return 0, 0, false
	}
	return r[0], r[1], true
}

func (p *Parser) sort(params map[string]string) (string, Order) {
	if raw := params["sort"]; raw != "" {
		var s []string
		err := json.Unmarshal([]byte(raw), &s)
		if err == nil && len(s) == 2 && s[0] != "" {
			return s[0], ParseOrder(s[1])
		}
		logger().Debugw("malformed sort parameter", "value", raw, "error", err)
	}

	order := Asc
	if raw, ok := params["_order"]; ok {
		order = ParseOrder(raw)
	}
	return p.defaultSortField, order
}

func (p *Parser) filter(params map[string]string) map[string]any {
	raw := params["filter"]
	if raw == "" {
		return map[string]any{}
	}

	var f map[string]any
	if err := json.Unmarshal([]byte(raw), &f); err != nil || f == nil {
		logger().Debugw("malformed filter parameter", "value", raw, "error", err)
		return map[string]any{}
	}
	return f
}

func atoiOr(params map[string]string, key string, def int) int {
	raw, ok := params[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger().Debugw("malformed pagination parameter", "key", key, "value", raw, "error", err)
		return def
	}
	return v
}

func logger() *zap.SugaredLogger {
	return zap.S().Named("listquery")
}
