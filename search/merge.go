package search

import (
	"slices"

	"github.com/samber/lo"
)

// Merge concatenates indexed and live paths, keeps the first occurrence of
// each exact path and then truncates to *limit when limit is set.
// A negative limit behaves like zero.
func Merge(indexed, live []string, limit *int) []string {
	merged := lo.Uniq(slices.Concat(indexed, live))
	if limit != nil {
		n := max(*limit, 0)
		if len(merged) > n {
			merged = merged[:n]
		}
	}
	return merged
}
