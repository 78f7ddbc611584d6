package kpi

import (
	"itrs/internal/aggregate"
	"itrs/internal/config"
	"itrs/internal/models"
)

// SLACompliance scores every group by the fraction of its incidents the ITSM
// platform marked SLA compliant and returns the worst cfg.TopN groups, lowest
// fraction first. The score comes straight from the platform's own SLA flag;
// it is never recomputed from timestamps.
func SLACompliance(records []models.IncidentRecord, cfg *config.ReportConfig) ([]Entry, error) {
	groups, err := aggregate.ByGroup(records)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, Entry{
			Key:   g.GroupID,
			Score: float64(g.SLACompliantCount) / float64(g.IncidentCount),
		})
	}

	return TopN(entries, LowerIsWorse, cfg.TopN)
}
