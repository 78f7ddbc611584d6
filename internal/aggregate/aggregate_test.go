package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itrs/internal/models"
)

func incident(t *testing.T, id, group string, opened string, acked string, reassignments int, slaMet bool) models.IncidentRecord {
	t.Helper()
	openedAt, err := time.Parse("2006-01-02 15:04", opened)
	require.NoError(t, err)

	record := models.IncidentRecord{
		ID:                id,
		OpenedAt:          openedAt,
		SupportGroup:      group,
		ReassignmentCount: reassignments,
		Category:          "Category 1",
		Severity:          "3 - Moderate",
		SLAMet:            slaMet,
	}
	if acked != "" {
		ackedAt, err := time.Parse("2006-01-02 15:04", acked)
		require.NoError(t, err)
		record.AcknowledgedAt = &ackedAt
	}
	return record
}

func TestByGroupPartitionsInput(t *testing.T) {
	records := []models.IncidentRecord{
		incident(t, "INC1", "Group 1", "2016-03-01 09:00", "2016-03-01 09:10", 2, true),
		incident(t, "INC2", "Group 2", "2016-03-01 10:00", "2016-03-01 10:05", 0, false),
		incident(t, "INC3", "Group 1", "2016-03-01 11:00", "", 1, true),
		incident(t, "INC4", "Group 3", "2016-03-01 12:00", "2016-03-01 12:30", 3, false),
		incident(t, "INC5", "Group 2", "2016-03-01 13:00", "2016-03-01 13:01", 0, true),
	}

	groups, err := ByGroup(records)
	require.NoError(t, err)

	// Every incident lands in exactly one group
	total := 0
	for _, g := range groups {
		total += g.IncidentCount
	}
	assert.Equal(t, len(records), total)

	// Only observed groups appear, sorted by id
	require.Len(t, groups, 3)
	assert.Equal(t, "Group 1", groups[0].GroupID)
	assert.Equal(t, "Group 2", groups[1].GroupID)
	assert.Equal(t, "Group 3", groups[2].GroupID)
}

func TestByGroupStats(t *testing.T) {
	records := []models.IncidentRecord{
		incident(t, "INC1", "Group 1", "2016-03-01 09:00", "2016-03-01 09:10", 2, true),
		incident(t, "INC2", "Group 1", "2016-03-01 10:00", "", 3, false),
		incident(t, "INC3", "Group 1", "2016-03-01 11:00", "2016-03-01 11:40", 0, true),
	}

	groups, err := ByGroup(records)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "Group 1", g.GroupID)
	assert.Equal(t, 3, g.IncidentCount)
	assert.Equal(t, 5, g.TotalReassignments)
	assert.Equal(t, 2, g.SLACompliantCount)

	// The unacknowledged incident counts toward IncidentCount but
	// contributes no reaction time
	require.Len(t, g.ReactionTimes, 2)
	assert.Equal(t, 10*time.Minute, g.ReactionTimes[0])
	assert.Equal(t, 40*time.Minute, g.ReactionTimes[1])
}

func TestByGroupEmptyInput(t *testing.T) {
	groups, err := ByGroup(nil)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestByGroupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.IncidentRecord)
	}{
		{
			name:   "negative reassignment count",
			mutate: func(r *models.IncidentRecord) { r.ReassignmentCount = -2 },
		},
		{
			name: "resolved before opened",
			mutate: func(r *models.IncidentRecord) {
				resolved := r.OpenedAt.Add(-time.Hour)
				r.ResolvedAt = &resolved
			},
		},
		{
			name:   "empty support group",
			mutate: func(r *models.IncidentRecord) { r.SupportGroup = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := incident(t, "INC1", "Group 1", "2016-03-01 09:00", "2016-03-01 09:10", 0, true)
			tt.mutate(&record)

			_, err := ByGroup([]models.IncidentRecord{record})
			require.Error(t, err)
			assert.True(t, models.IsValidationError(err))
		})
	}
}
