package kpi

import (
	"itrs/internal/aggregate"
	"itrs/internal/config"
	"itrs/internal/models"
)

// Reassignments scores every group by its average reassignments per incident
// and returns the worst cfg.TopN groups, highest average first.
//
// A zero incident count cannot occur: the aggregator only emits groups that
// appear in the input.
func Reassignments(records []models.IncidentRecord, cfg *config.ReportConfig) ([]Entry, error) {
	groups, err := aggregate.ByGroup(records)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, Entry{
			Key:   g.GroupID,
			Score: float64(g.TotalReassignments) / float64(g.IncidentCount),
		})
	}

	return TopN(entries, HigherIsWorse, cfg.TopN)
}
