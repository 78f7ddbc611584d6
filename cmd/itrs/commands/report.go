package commands

import (
	"os"

	"github.com/spf13/cobra"

	"itrs/internal/ingest"
	"itrs/internal/report"
)

var (
	fromFlag        string
	toFlag          string
	topNFlag        int
	aggregationFlag string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the full incident report",
	Long: `Build the KPI reports (reaction time, reassignments, SLA compliance),
the top categories report, and the category-vs-severity dependency analysis
over the incident export, optionally limited to a report window.`,
	Run: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&fromFlag, "from", "", "Report window start (e.g. 2016-03-01); requires --to")
	reportCmd.Flags().StringVar(&toFlag, "to", "", "Report window end; requires --from")
	reportCmd.Flags().IntVar(&topNFlag, "top-n", 0, "Override the number of groups per KPI report")
	reportCmd.Flags().StringVar(&aggregationFlag, "aggregation", "", "Override the reaction time aggregation (mean or median)")
}

func runReport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	HandleError(err, "invalid configuration")

	if topNFlag > 0 {
		cfg.TopN = topNFlag
	}
	if aggregationFlag != "" {
		cfg.ReactionAggregation = aggregationFlag
	}
	HandleError(cfg.Validate(), "invalid configuration")

	records, err := loadRecords(cfg)
	HandleError(err, "failed to load incident export")

	var window *ingest.Window
	if fromFlag != "" || toFlag != "" {
		window, err = parseWindow(fromFlag, toFlag)
		HandleError(err, "invalid report window")
		records = ingest.FilterWindow(records, *window)
	}

	rep, err := report.RunAll(records, cfg)
	HandleError(err, "report run failed")
	rep.Window = window

	report.Render(os.Stdout, rep)
}

// parseWindow parses the --from/--to pair; both bounds are required
func parseWindow(from, to string) (*ingest.Window, error) {
	if from == "" || to == "" {
		return nil, ingest.NewIngestError("--from and --to must be given together")
	}

	fromTime, err := ingest.ParseWindowBound(from)
	if err != nil {
		return nil, err
	}
	toTime, err := ingest.ParseWindowBound(to)
	if err != nil {
		return nil, err
	}
	if toTime.Before(fromTime) {
		return nil, ingest.NewIngestError("window end %q precedes start %q", to, from)
	}

	return &ingest.Window{From: fromTime, To: toTime}, nil
}
