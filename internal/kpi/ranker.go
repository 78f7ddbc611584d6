// Package kpi computes the per-group performance indicators and the shared
// worst-first ranking all reports use.
package kpi

import (
	"sort"

	"itrs/internal/models"
)

// SortDirection states which end of the score scale is the bad end.
// Every KPI declares its polarity explicitly rather than relying on callers
// remembering whether a big number is good news.
type SortDirection int

const (
	// HigherIsWorse sorts the largest scores first (reaction time, reassignments)
	HigherIsWorse SortDirection = iota
	// LowerIsWorse sorts the smallest scores first (SLA compliance ratio)
	LowerIsWorse
)

// Entry is one ranked (key, score) pair
type Entry struct {
	Key   string
	Score float64
}

// TopN returns the worst n entries sorted worst-first according to the given
// direction. Ties break by key ascending so repeated runs over the same input
// produce identical reports. The input slice is not modified.
//
// Returns an EmptyInputError if there is nothing to rank.
func TopN(entries []Entry, direction SortDirection, n int) ([]Entry, error) {
	if len(entries) == 0 {
		return nil, models.NewEmptyInputError("no entries to rank")
	}

	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			if direction == HigherIsWorse {
				return ranked[i].Score > ranked[j].Score
			}
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Key < ranked[j].Key
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
