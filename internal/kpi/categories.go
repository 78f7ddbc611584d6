package kpi

import (
	"itrs/internal/config"
	"itrs/internal/models"
)

// TopCategories counts incidents per category and returns the cfg.TopN most
// frequent categories, busiest first. It reuses the shared ranker with the
// HigherIsWorse direction: the categories generating the most incidents are
// the ones management wants on top.
func TopCategories(records []models.IncidentRecord, cfg *config.ReportConfig) ([]Entry, error) {
	counts := make(map[string]int)
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		counts[records[i].Category]++
	}

	entries := make([]Entry, 0, len(counts))
	for category, count := range counts {
		entries = append(entries, Entry{Key: category, Score: float64(count)})
	}

	return TopN(entries, HigherIsWorse, cfg.TopN)
}
