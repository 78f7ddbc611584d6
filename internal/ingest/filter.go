package ingest

import (
	"time"

	"itrs/internal/models"
)

// Window is a closed report window over incident opening times
type Window struct {
	From time.Time
	To   time.Time
}

// FilterWindow returns the records opened inside the window, bounds
// inclusive. The input slice is not modified.
func FilterWindow(records []models.IncidentRecord, w Window) []models.IncidentRecord {
	filtered := make([]models.IncidentRecord, 0, len(records))
	for i := range records {
		opened := records[i].OpenedAt
		if opened.Before(w.From) || opened.After(w.To) {
			continue
		}
		filtered = append(filtered, records[i])
	}
	return filtered
}

// AvailablePeriod returns the earliest and latest opening timestamps in the
// collection, so a caller can show the addressable report range before
// choosing a window. ok is false for an empty collection.
func AvailablePeriod(records []models.IncidentRecord) (from, to time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}

	from, to = records[0].OpenedAt, records[0].OpenedAt
	for i := range records[1:] {
		opened := records[i+1].OpenedAt
		if opened.Before(from) {
			from = opened
		}
		if opened.After(to) {
			to = opened
		}
	}
	return from, to, true
}
