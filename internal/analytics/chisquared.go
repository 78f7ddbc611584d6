// Package analytics answers whether incident severity is statistically
// associated with incident category via a chi-squared independence test.
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"itrs/internal/config"
	"itrs/internal/models"
)

// Severity bucket labels of the contingency table columns
const (
	BucketCritical = "critical"
	BucketOther    = "other"
)

// DependencyResult is the full outcome of a dependency analysis: the test
// statistic, its inputs, and the verdict at the configured significance level.
// The contingency table is included for audit and display.
type DependencyResult struct {
	// Statistic is the chi-squared test statistic
	Statistic float64

	// DegreesOfFreedom is (rows-1) * (cols-1)
	DegreesOfFreedom int

	// PValue is the probability of a statistic at least this large under
	// the independence hypothesis
	PValue float64

	// SignificanceLevel is the alpha the verdict was decided at
	SignificanceLevel float64

	// DependencyDetected is true when PValue < SignificanceLevel
	DependencyDetected bool

	// Table is the observed contingency table the statistic was computed from
	Table *models.ContingencyTable
}

// BuildContingencyTable cross-tabulates the records over category rows and
// severity-bucket columns ("critical" per cfg.CriticalLabels, "other" for the
// rest). A bucket with zero incidents overall is excluded from the table, as
// is any category absent from the input.
//
// Returns a ValidationError if a record violates the data model invariants.
func BuildContingencyTable(records []models.IncidentRecord, cfg *config.ReportConfig) (*models.ContingencyTable, error) {
	counts := make(map[string]map[string]float64)
	bucketTotals := map[string]float64{BucketCritical: 0, BucketOther: 0}

	for i := range records {
		r := &records[i]
		if err := r.Validate(); err != nil {
			return nil, err
		}

		bucket := BucketOther
		if cfg.IsCritical(r.Severity) {
			bucket = BucketCritical
		}

		if counts[r.Category] == nil {
			counts[r.Category] = make(map[string]float64)
		}
		counts[r.Category][bucket]++
		bucketTotals[bucket]++
	}

	rows := make([]string, 0, len(counts))
	for category := range counts {
		rows = append(rows, category)
	}
	sort.Strings(rows)

	// Only buckets that actually occur become columns
	var cols []string
	for _, bucket := range []string{BucketCritical, BucketOther} {
		if bucketTotals[bucket] > 0 {
			cols = append(cols, bucket)
		}
	}

	table := &models.ContingencyTable{
		Rows:      rows,
		Cols:      cols,
		Observed:  make([][]float64, len(rows)),
		RowTotals: make([]float64, len(rows)),
		ColTotals: make([]float64, len(cols)),
	}

	for i, category := range rows {
		table.Observed[i] = make([]float64, len(cols))
		for j, bucket := range cols {
			observed := counts[category][bucket]
			table.Observed[i][j] = observed
			table.RowTotals[i] += observed
			table.ColTotals[j] += observed
			table.GrandTotal += observed
		}
	}

	return table, nil
}

// AnalyzeDependency runs the chi-squared independence test between incident
// category and severity bucket:
//
//  1. Build the contingency table over the input records.
//  2. Expected cell count = rowTotal * colTotal / grandTotal.
//  3. Statistic = sum of (observed-expected)^2 / expected over all cells.
//  4. Degrees of freedom = (rows-1) * (cols-1).
//  5. p-value from the chi-squared survival function; dependency is detected
//     when p < cfg.SignificanceLevel.
//
// Returns an InsufficientDataError when the table is smaller than 2x2 or has
// a zero-expected-count cell; the test is invalid for such tables.
func AnalyzeDependency(records []models.IncidentRecord, cfg *config.ReportConfig) (*DependencyResult, error) {
	table, err := BuildContingencyTable(records, cfg)
	if err != nil {
		return nil, err
	}

	return TestIndependence(table, cfg.SignificanceLevel)
}

// TestIndependence computes the chi-squared statistic and verdict for an
// already built contingency table.
func TestIndependence(table *models.ContingencyTable, significanceLevel float64) (*DependencyResult, error) {
	if len(table.Rows) < 2 || len(table.Cols) < 2 {
		return nil, models.NewInsufficientDataError(
			"contingency table must be at least 2x2, got %dx%d", len(table.Rows), len(table.Cols))
	}

	statistic := 0.0
	for i := range table.Rows {
		for j := range table.Cols {
			expected := table.Expected(i, j)
			if expected == 0 {
				return nil, models.NewInsufficientDataError(
					"expected count is zero for cell (%s, %s)", table.Rows[i], table.Cols[j])
			}
			diff := table.Observed[i][j] - expected
			statistic += diff * diff / expected
		}
	}

	dof := table.DegreesOfFreedom()
	dist := distuv.ChiSquared{K: float64(dof)}
	pValue := dist.Survival(statistic)

	return &DependencyResult{
		Statistic:          statistic,
		DegreesOfFreedom:   dof,
		PValue:             pValue,
		SignificanceLevel:  significanceLevel,
		DependencyDetected: pValue < significanceLevel,
		Table:              table,
	}, nil
}
