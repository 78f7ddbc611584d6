package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itrs/internal/config"
	"itrs/internal/ingest"
	"itrs/internal/logging"
	"itrs/internal/models"
)

const Version = "1.0.3"

var (
	logLevel   string
	configPath string
	inputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "itrs",
	Short: "ITRS - Incident Report System",
	Long: `ITRS computes support-group performance KPIs and dependency analytics
from an exported ITSM incident event log.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Initialize(logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML report configuration file (defaults apply when omitted)")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "incident_event_log.csv",
		"Path to the exported incident event log CSV")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(periodCmd)
}

// HandleError prints error and exits
func HandleError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}

// loadConfig returns the report configuration: defaults, or the --config file
func loadConfig() (*config.ReportConfig, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// loadRecords loads and normalizes the incident export named by --input
func loadRecords(cfg *config.ReportConfig) ([]models.IncidentRecord, error) {
	return ingest.LoadFile(inputPath, cfg)
}
