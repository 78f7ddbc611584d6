package kpi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itrs/internal/config"
	"itrs/internal/models"
)

func categorized(t *testing.T, id, category string) models.IncidentRecord {
	t.Helper()
	r := record(t, id, "Group 1", "2016-03-01 09:00", "2016-03-01 09:10")
	r.Category = category
	return r
}

func TestTopCategoriesBusiestFirst(t *testing.T) {
	var records []models.IncidentRecord
	add := func(category string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, categorized(t, fmt.Sprintf("INC-%s-%d", category, i), category))
		}
	}
	add("Category 26", 5)
	add("Category 9", 2)
	add("Category 53", 8)

	entries, err := TopCategories(records, config.Default())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Category 53", entries[0].Key)
	assert.InDelta(t, 8, entries[0].Score, 1e-9)
	assert.Equal(t, "Category 26", entries[1].Key)
	assert.Equal(t, "Category 9", entries[2].Key)
}

func TestTopCategoriesRespectsTopN(t *testing.T) {
	cfg := config.Default()
	cfg.TopN = 1

	records := []models.IncidentRecord{
		categorized(t, "INC1", "Category 1"),
		categorized(t, "INC2", "Category 2"),
		categorized(t, "INC3", "Category 2"),
	}

	entries, err := TopCategories(records, cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Category 2", entries[0].Key)
}

func TestTopCategoriesEmptyInput(t *testing.T) {
	_, err := TopCategories(nil, config.Default())
	require.Error(t, err)
	assert.True(t, models.IsEmptyInputError(err))
}
