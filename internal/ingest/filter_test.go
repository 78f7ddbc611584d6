package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itrs/internal/models"
)

func openedAt(day int) models.IncidentRecord {
	return models.IncidentRecord{
		ID:           "INC" + string(rune('0'+day)),
		OpenedAt:     time.Date(2016, 3, day, 12, 0, 0, 0, time.UTC),
		SupportGroup: "Group 1",
		Category:     "Category 1",
	}
}

func TestFilterWindow(t *testing.T) {
	records := []models.IncidentRecord{openedAt(1), openedAt(3), openedAt(5), openedAt(9)}
	window := Window{
		From: time.Date(2016, 3, 3, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2016, 3, 5, 23, 59, 0, 0, time.UTC),
	}

	filtered := FilterWindow(records, window)
	require.Len(t, filtered, 2)
	assert.Equal(t, 3, filtered[0].OpenedAt.Day())
	assert.Equal(t, 5, filtered[1].OpenedAt.Day())

	// Input untouched
	assert.Len(t, records, 4)
}

func TestFilterWindowBoundsInclusive(t *testing.T) {
	record := openedAt(4)
	window := Window{From: record.OpenedAt, To: record.OpenedAt}

	filtered := FilterWindow([]models.IncidentRecord{record}, window)
	assert.Len(t, filtered, 1)
}

func TestAvailablePeriod(t *testing.T) {
	records := []models.IncidentRecord{openedAt(7), openedAt(2), openedAt(9), openedAt(4)}

	from, to, ok := AvailablePeriod(records)
	require.True(t, ok)
	assert.Equal(t, 2, from.Day())
	assert.Equal(t, 9, to.Day())
}

func TestAvailablePeriodEmpty(t *testing.T) {
	_, _, ok := AvailablePeriod(nil)
	assert.False(t, ok)
}

func TestParseWindowBound(t *testing.T) {
	parsed, err := ParseWindowBound("2016-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2016, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseWindowBound("not a date at all %%")
	require.Error(t, err)
	assert.True(t, IsIngestError(err))
}
