// Package matching selects records for the match tools.
//
// There is no scoring model: a match is a uniform random sample without
// replacement, kept deliberately compatible with the shuffle-and-slice
// behavior this replaces.
package matching

import "math/rand"

// DefaultLimit is how many records a match tool returns when the caller
// does not ask for a specific count.
const DefaultLimit = 3

// Sample returns up to limit records drawn uniformly at random without
// replacement. The input slice is not modified. A limit of zero or less
// falls back to DefaultLimit.
func Sample[T any](records []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > len(records) {
		limit = len(records)
	}
	picked := make([]T, len(records))
	copy(picked, records)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:limit]
}
