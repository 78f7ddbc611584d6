package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"itrs/internal/analytics"
	"itrs/internal/kpi"
)

// Render writes the full report as console tables. Rendering is pure
// formatting; all numbers were fixed when the run completed.
func Render(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "Incident report %s (generated %s, %d incidents)\n",
		rep.RunID, rep.GeneratedAt.Format("2006-01-02 15:04:05"), rep.IncidentCount)
	if rep.Window != nil {
		fmt.Fprintf(w, "Report window: %s - %s\n",
			rep.Window.From.Format("2006-01-02"), rep.Window.To.Format("2006-01-02"))
	}

	renderRanked(w, rep, SectionReactionTime,
		"Reaction Time KPI (worst groups, longest first)",
		"Group", "Reaction time (min)", rep.ReactionTime, "%.1f")
	renderRanked(w, rep, SectionReassignments,
		"Reassignments KPI (worst groups, most transfers first)",
		"Group", "Avg reassignments", rep.Reassignments, "%.2f")
	renderRanked(w, rep, SectionSLA,
		"SLA KPI (worst groups, lowest compliance first)",
		"Group", "SLA compliance", rep.SLACompliance, "%.3f")
	renderRanked(w, rep, SectionCategories,
		"Top categories by incident volume",
		"Category", "Incidents", rep.TopCategories, "%.0f")

	renderDependency(w, rep)
}

func renderRanked(w io.Writer, rep *Report, section, title, keyHeader, scoreHeader string, entries []kpi.Entry, scoreFormat string) {
	fmt.Fprintf(w, "\n%s\n", title)

	if reason, skipped := rep.Skipped[section]; skipped {
		fmt.Fprintf(w, "  insufficient data: %s\n", reason)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", keyHeader, scoreHeader})
	for i, e := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Key,
			fmt.Sprintf(scoreFormat, e.Score),
		})
	}
	table.Render()
}

func renderDependency(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "\nCategory vs severity dependency analysis\n")

	if reason, skipped := rep.Skipped[SectionDependency]; skipped {
		fmt.Fprintf(w, "  insufficient data: %s\n", reason)
		return
	}

	RenderDependencyResult(w, rep.Dependency)
}

// RenderDependencyResult writes the dependency verdict and its contingency
// table. Exported for the standalone analyze command.
func RenderDependencyResult(w io.Writer, result *analytics.DependencyResult) {
	fmt.Fprintf(w, "  Chi2 statistic: %.4f\n", result.Statistic)
	fmt.Fprintf(w, "  Degrees of freedom: %d\n", result.DegreesOfFreedom)
	fmt.Fprintf(w, "  p-value: %.4f\n", result.PValue)
	if result.DependencyDetected {
		fmt.Fprintf(w, "  Verdict: severity depends on category (p < %.2f)\n", result.SignificanceLevel)
	} else {
		fmt.Fprintf(w, "  Verdict: no dependency detected (p >= %.2f)\n", result.SignificanceLevel)
	}

	// Contingency table for audit
	table := tablewriter.NewWriter(w)
	header := append([]string{"Category"}, result.Table.Cols...)
	header = append(header, "Total")
	table.SetHeader(header)
	for i, category := range result.Table.Rows {
		row := []string{category}
		for j := range result.Table.Cols {
			row = append(row, fmt.Sprintf("%.0f", result.Table.Observed[i][j]))
		}
		row = append(row, fmt.Sprintf("%.0f", result.Table.RowTotals[i]))
		table.Append(row)
	}
	footer := []string{"Total"}
	for j := range result.Table.Cols {
		footer = append(footer, fmt.Sprintf("%.0f", result.Table.ColTotals[j]))
	}
	footer = append(footer, fmt.Sprintf("%.0f", result.Table.GrandTotal))
	table.Append(footer)
	table.Render()
}
