package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itrs/internal/ingest"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Show the date range covered by the incident export",
	Run:   runPeriod,
}

func runPeriod(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	HandleError(err, "invalid configuration")

	records, err := loadRecords(cfg)
	HandleError(err, "failed to load incident export")

	from, to, ok := ingest.AvailablePeriod(records)
	if !ok {
		fmt.Fprintln(os.Stdout, "export contains no usable incidents")
		return
	}
	fmt.Fprintf(os.Stdout, "Available period: %s to %s (%d incidents)\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), len(records))
}
