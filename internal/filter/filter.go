// Package filter applies query-parameter predicates to record collections.
//
// Each filterable field is bound to one comparison strategy when its schema
// is declared, so filtering never inspects value types at runtime: plain
// string fields match on case-insensitive substring, string-array fields on
// case-insensitive equality against any element, optional fields fail their
// predicate when absent.
package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Matcher reports whether one field of a record matches a query value.
type Matcher[T any] func(rec T, query string) bool

// Schema maps query parameter names to field matchers for one entity type.
// Parameters without a schema entry are ignored rather than erroring.
type Schema[T any] map[string]Matcher[T]

// Text matches when the field contains the query as a case-insensitive
// substring.
func Text[T any](get func(T) string) Matcher[T] {
	return func(rec T, query string) bool {
		return ContainsFold(get(rec), query)
	}
}

// OptionalText is Text for fields that may be absent. An absent field never
// matches.
func OptionalText[T any](get func(T) (string, bool)) Matcher[T] {
	return func(rec T, query string) bool {
		v, ok := get(rec)
		return ok && ContainsFold(v, query)
	}
}

// List matches when any element equals the query, ignoring case. A nil or
// empty list never matches.
func List[T any](get func(T) []string) Matcher[T] {
	return func(rec T, query string) bool {
		for _, v := range get(rec) {
			if strings.EqualFold(v, query) {
				return true
			}
		}
		return false
	}
}

// Number matches when the field is present and equals the query parsed as a
// number. An unparsable query matches nothing.
func Number[T any](get func(T) (float64, bool)) Matcher[T] {
	return func(rec T, query string) bool {
		want, err := strconv.ParseFloat(query, 64)
		if err != nil {
			return false
		}
		v, ok := get(rec)
		return ok && v == want
	}
}

// Apply returns the records satisfying every schema-known predicate in
// params (logical AND), preserving input order. Only the first value of a
// repeated parameter is honored. Empty params return all records.
func Apply[T any](records []T, schema Schema[T], params url.Values) []T {
	type predicate struct {
		match Matcher[T]
		query string
	}
	var preds []predicate
	for key, vals := range params {
		m, ok := schema[key]
		if !ok || len(vals) == 0 {
			continue
		}
		preds = append(preds, predicate{match: m, query: vals[0]})
	}
	if len(preds) == 0 {
		return records
	}

	var out []T
	for _, rec := range records {
		keep := true
		for _, p := range preds {
			if !p.match(rec, p.query) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
