package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itrs/internal/config"
	"itrs/internal/models"
)

func record(t *testing.T, id, group, opened, acked string) models.IncidentRecord {
	t.Helper()
	openedAt, err := time.Parse("2006-01-02 15:04", opened)
	require.NoError(t, err)

	r := models.IncidentRecord{
		ID:           id,
		OpenedAt:     openedAt,
		SupportGroup: group,
		Category:     "Category 1",
	}
	if acked != "" {
		ackedAt, err := time.Parse("2006-01-02 15:04", acked)
		require.NoError(t, err)
		r.AcknowledgedAt = &ackedAt
	}
	return r
}

func TestReactionTimeMean(t *testing.T) {
	// Two incidents acknowledged after 10 and 40 minutes: mean is 25
	records := []models.IncidentRecord{
		record(t, "INC1", "Group A", "2016-03-01 09:00", "2016-03-01 09:10"),
		record(t, "INC2", "Group A", "2016-03-01 09:00", "2016-03-01 09:40"),
	}

	entries, err := ReactionTime(records, config.Default())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Group A", entries[0].Key)
	assert.InDelta(t, 25.0, entries[0].Score, 1e-9)
}

func TestReactionTimeMedian(t *testing.T) {
	cfg := config.Default()
	cfg.ReactionAggregation = config.AggregationMedian

	records := []models.IncidentRecord{
		record(t, "INC1", "Group A", "2016-03-01 09:00", "2016-03-01 09:05"),
		record(t, "INC2", "Group A", "2016-03-01 09:00", "2016-03-01 09:15"),
		record(t, "INC3", "Group A", "2016-03-01 09:00", "2016-03-01 10:40"),
	}

	entries, err := ReactionTime(records, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Median of 5, 15, 100 minutes is 15; the 100-minute outlier is ignored
	assert.InDelta(t, 15.0, entries[0].Score, 1e-9)
}

func TestReactionTimeWorstFirst(t *testing.T) {
	records := []models.IncidentRecord{
		record(t, "INC1", "Group A", "2016-03-01 09:00", "2016-03-01 09:10"),
		record(t, "INC2", "Group B", "2016-03-01 09:00", "2016-03-01 10:00"),
		record(t, "INC3", "Group C", "2016-03-01 09:00", "2016-03-01 09:30"),
	}

	entries, err := ReactionTime(records, config.Default())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Longest reaction time ranks first
	assert.Equal(t, "Group B", entries[0].Key)
	assert.Equal(t, "Group C", entries[1].Key)
	assert.Equal(t, "Group A", entries[2].Key)
}

func TestReactionTimeExcludesGroupsWithoutAcknowledgements(t *testing.T) {
	records := []models.IncidentRecord{
		record(t, "INC1", "Group A", "2016-03-01 09:00", "2016-03-01 09:10"),
		record(t, "INC2", "Group B", "2016-03-01 09:00", ""),
	}

	entries, err := ReactionTime(records, config.Default())
	require.NoError(t, err)

	// Group B has no defined reaction metric and must not appear at all,
	// not appear with a zero score
	require.Len(t, entries, 1)
	assert.Equal(t, "Group A", entries[0].Key)
}

func TestReactionTimeAllUnacknowledged(t *testing.T) {
	records := []models.IncidentRecord{
		record(t, "INC1", "Group A", "2016-03-01 09:00", ""),
	}

	_, err := ReactionTime(records, config.Default())
	require.Error(t, err)
	assert.True(t, models.IsEmptyInputError(err))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "odd count", values: []float64{3, 1, 2}, want: 2},
		{name: "even count", values: []float64{40, 10}, want: 25},
		{name: "single value", values: []float64{7}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, median(tt.values), 1e-9)
		})
	}
}
