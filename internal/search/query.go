// Package search turns a free-text input plus the caller's active filter
// toggles into a structured predicate. The positional token-to-filter mapping
// is order-dependent and silently drops mismatched counts; callers depend on
// that behavior, so it lives here in one unit-testable place.
package search

import "strings"

// Field tags, in the priority order callers declare them.
const (
	FieldState      = "state"
	FieldCity       = "city"
	FieldVendorName = "vendor_name"
)

// Predicate maps field tags to values. Matching is case-insensitive
// substring per field; combination is logical AND.
type Predicate map[string]string

// Query is the outcome of Build. Exactly one of the three shapes applies:
// empty (no filter), local name match, or structured predicate.
type Query struct {
	// NameContains is set when no filters are active: the caller matches
	// entity display names locally instead of round-tripping a predicate.
	NameContains string
	Predicate    Predicate
}

// IsEmpty reports a no-filter query: return everything in default order.
func (q Query) IsEmpty() bool {
	return q.NameContains == "" && len(q.Predicate) == 0
}

// Local reports the client-side name-match mode.
func (q Query) Local() bool { return q.NameContains != "" }

// Build splits freeText on commas and zips the tokens positionally against
// activeFilters: the i-th filter receives the i-th token. Filters beyond the
// token count are omitted (never matched against ""); tokens beyond the
// filter count are dropped. Empty segments (double commas, stray whitespace)
// are treated as absent.
func Build(freeText string, activeFilters []string) Query {
	text := strings.TrimSpace(freeText)
	if text == "" {
		return Query{}
	}
	if len(activeFilters) == 0 {
		return Query{NameContains: strings.ToLower(text)}
	}
	tokens := tokenize(text)
	pred := Predicate{}
	for i, field := range activeFilters {
		if i >= len(tokens) {
			break
		}
		pred[field] = tokens[i]
	}
	return Query{Predicate: pred}
}

func tokenize(text string) []string {
	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// MatchName implements the local mode: case-insensitive substring match on a
// display name. needle is expected lowercased, as Build produces it.
func MatchName(name, needle string) bool {
	return strings.Contains(strings.ToLower(name), needle)
}
