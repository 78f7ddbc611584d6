package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itrs/internal/analytics"
	"itrs/internal/models"
	"itrs/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the category vs severity dependency analysis",
	Long: `Run only the chi-squared independence test between incident category
and severity bucket over the full export.`,
	Run: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	HandleError(err, "invalid configuration")

	records, err := loadRecords(cfg)
	HandleError(err, "failed to load incident export")

	result, err := analytics.AnalyzeDependency(records, cfg)
	if models.IsInsufficientDataError(err) {
		fmt.Fprintf(os.Stdout, "insufficient data: %v\n", err)
		return
	}
	HandleError(err, "dependency analysis failed")

	fmt.Fprintln(os.Stdout, "Category vs severity dependency analysis")
	report.RenderDependencyResult(os.Stdout, result)
}
