// Package aggregate partitions incident records by support group and derives
// the raw per-group statistics the KPI calculators consume.
package aggregate

import (
	"sort"

	"itrs/internal/models"
)

// ByGroup partitions the records by support group and returns one GroupStats
// per distinct group observed, sorted by group id for determinism. Only groups
// present in the input appear; a group with zero incidents cannot occur.
//
// Incidents that were never acknowledged contribute to IncidentCount and to
// the reassignment and SLA aggregates, but not to ReactionTimes. That is
// per-metric policy, not an error.
//
// Returns a ValidationError if any record violates the data model invariants.
func ByGroup(records []models.IncidentRecord) ([]models.GroupStats, error) {
	byGroup := make(map[string]*models.GroupStats)

	for i := range records {
		r := &records[i]
		if err := r.Validate(); err != nil {
			return nil, err
		}

		stats, ok := byGroup[r.SupportGroup]
		if !ok {
			stats = &models.GroupStats{GroupID: r.SupportGroup}
			byGroup[r.SupportGroup] = stats
		}

		stats.IncidentCount++
		stats.TotalReassignments += r.ReassignmentCount
		if r.SLAMet {
			stats.SLACompliantCount++
		}
		if reaction, ok := r.ReactionTime(); ok {
			stats.ReactionTimes = append(stats.ReactionTimes, reaction)
		}
	}

	groups := make([]models.GroupStats, 0, len(byGroup))
	for _, stats := range byGroup {
		groups = append(groups, *stats)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].GroupID < groups[j].GroupID
	})

	return groups, nil
}
