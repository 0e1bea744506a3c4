// Package listquery translates collection-listing query parameters into SQL
// and formats paginated responses.
//
// Every admin list endpoint follows the same protocol:
//
//	GET /api/v1/admin/courses?range=[0,9]&sort=["title","DESC"]&filter={"title":"Intro"}
//
//	200 OK
//	Content-Range: courses 0-9/42
//	X-Total-Count: 42
//	Access-Control-Expose-Headers: Content-Range, X-Total-Count
//	Cache-Control: no-cache, no-store, must-revalidate
//
//	[ {...}, {...} ]
//
// # Flow
//
//	┌──────────────┐    Parse     ┌────────────┐   Apply / Filter   ┌───────────────────┐
//	│ query params │ ───────────► │ Descriptor │ ─────────────────► │ sq.SelectBuilder  │
//	└──────────────┘              └────────────┘                    └───────────────────┘
//	                                    │
//	                                    │ Respond(rows, total)
//	                                    ▼
//	                           JSON array + Content-Range
//
// # Parameters
//
//	┌──────────┬──────────────────────┬──────────────────────────────────────────┐
//	│ Name     │ Format               │ Fallback                                 │
//	├──────────┼──────────────────────┼──────────────────────────────────────────┤
//	│ fetchAll │ "true"               │ empty parameter set means fetch all      │
//	│ range    │ JSON [start,end]     │ _start / _end, then 0 / 10               │
//	│ sort     │ JSON [field,order]   │ field "id", _order, then ASC             │
//	│ filter   │ JSON object          │ no filtering                             │
//	└──────────┴──────────────────────┴──────────────────────────────────────────┘
//
// Parsing never fails. A malformed value is logged at debug level and replaced
// by its fallback so a list view always renders something.
//
// The window is zero-based and inclusive: range=[0,9] returns ten rows.
// Indexes are clamped to [0, MaxIndex]. A window that starts past the last
// match is reported as "<entity> */<total>".
//
// # Filters
//
// Filter keys are opaque to the parser. The caller passes a FieldMap naming the
// keys it recognizes, the SQL column behind each key and the predicate kind:
//
//	var courseFields = listquery.FieldMap{
//	    "id":    {Column: "id", Match: listquery.Exact, Kind: listquery.Int},
//	    "title": {Column: "title", Match: listquery.Contains},
//	}
//
// Exact fields compare with "=" (or IN when the filter value is an array),
// Contains fields use a case-sensitive substring match. Unrecognized keys are
// ignored. All predicates are combined with AND.
//
// The Kind of a field names the type its values are converted to (Int, Text,
// Time, or Auto). A value that does not convert, such as an object, a nested
// array or "abc" for an Int field, is dropped with a debug log. Contains
// fields only take scalar values.
//
// Sorting uses the same FieldMap. The "id" column is always appended as a
// secondary key so page boundaries stay stable.
package listquery
