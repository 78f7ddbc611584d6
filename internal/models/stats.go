package models

import "time"

// GroupStats holds the raw per-group statistics the KPI calculators consume.
// One GroupStats exists per support group observed in the input; stats are
// rebuilt fresh on every report run and discarded after ranking.
type GroupStats struct {
	// GroupID is the support group identifier
	GroupID string

	// IncidentCount is the total number of incidents assigned to the group,
	// including incidents that were never acknowledged
	IncidentCount int

	// ReactionTimes holds the open-to-acknowledge durations for incidents
	// that have both timestamps. Incidents without an acknowledgement are
	// absent here but still counted in IncidentCount.
	ReactionTimes []time.Duration

	// TotalReassignments is the sum of reassignment counts across the group
	TotalReassignments int

	// SLACompliantCount is the number of incidents the platform marked SLA compliant
	SLACompliantCount int
}

// ContingencyTable cross-tabulates observed incident counts over two
// categorical variables: category rows and severity-bucket columns.
// Row and column order is deterministic (lexicographic) so that derived
// statistics and rendered output are stable across runs.
type ContingencyTable struct {
	// Rows holds the category labels, sorted ascending
	Rows []string

	// Cols holds the severity bucket labels, sorted ascending
	Cols []string

	// Observed[i][j] is the incident count for Rows[i] x Cols[j]
	Observed [][]float64

	// RowTotals[i] is the marginal total of Rows[i]
	RowTotals []float64

	// ColTotals[j] is the marginal total of Cols[j]
	ColTotals []float64

	// GrandTotal is the total observation count
	GrandTotal float64
}

// Expected returns the expected count for cell (i, j) under the independence
// hypothesis: rowTotal * colTotal / grandTotal.
func (t *ContingencyTable) Expected(i, j int) float64 {
	return t.RowTotals[i] * t.ColTotals[j] / t.GrandTotal
}

// DegreesOfFreedom returns (rows-1) * (cols-1)
func (t *ContingencyTable) DegreesOfFreedom() int {
	return (len(t.Rows) - 1) * (len(t.Cols) - 1)
}
