package kpi

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"itrs/internal/aggregate"
	"itrs/internal/config"
	"itrs/internal/models"
)

// ReactionTime computes the mean (or median, per configuration) reaction time
// in minutes for every group with at least one acknowledged incident and
// returns the worst cfg.TopN groups, longest reaction first.
//
// Groups whose incidents were all unacknowledged have no defined reaction
// time and are excluded from the ranking entirely; they are not scored zero.
func ReactionTime(records []models.IncidentRecord, cfg *config.ReportConfig) ([]Entry, error) {
	groups, err := aggregate.ByGroup(records)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, g := range groups {
		if len(g.ReactionTimes) == 0 {
			continue
		}

		minutes := make([]float64, len(g.ReactionTimes))
		for i, d := range g.ReactionTimes {
			minutes[i] = d.Minutes()
		}

		var score float64
		if cfg.ReactionAggregation == config.AggregationMedian {
			score = median(minutes)
		} else {
			score = stat.Mean(minutes, nil)
		}

		entries = append(entries, Entry{Key: g.GroupID, Score: score})
	}

	return TopN(entries, HigherIsWorse, cfg.TopN)
}

// median returns the conventional midpoint median: the middle element for odd
// counts, the mean of the two middle elements for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
