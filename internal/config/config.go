package config

import "fmt"

// Aggregation modes for the reaction time KPI
const (
	// AggregationMean averages the qualifying reaction times per group
	AggregationMean = "mean"
	// AggregationMedian takes the middle qualifying reaction time per group
	AggregationMedian = "median"
)

// ReportConfig holds the knobs the analysis components consume. It is passed
// explicitly to every component call; nothing in the engine reads shared
// configuration state.
type ReportConfig struct {
	// TopN is the number of worst-performing groups each KPI report lists
	TopN int `yaml:"top_n"`

	// ReactionAggregation selects mean or median reaction time per group
	ReactionAggregation string `yaml:"reaction_aggregation"`

	// SignificanceLevel is the alpha for the chi-squared dependency test
	SignificanceLevel float64 `yaml:"significance_level"`

	// CriticalLabels lists the severity labels counted as the "critical"
	// bucket of the dependency analysis; everything else is "other"
	CriticalLabels []string `yaml:"critical_labels"`

	// DayFirst controls whether ambiguous export dates parse day-first
	// (the ITSM export writes 29/02/2016, not 02/29/2016)
	DayFirst bool `yaml:"day_first"`
}

// Default returns the configuration used when no config file is given:
// worst-10 reports, mean reaction times, 0.05 significance, and the
// platform's "1 - Critical" priority label as the critical bucket.
func Default() *ReportConfig {
	return &ReportConfig{
		TopN:                10,
		ReactionAggregation: AggregationMean,
		SignificanceLevel:   0.05,
		CriticalLabels:      []string{"1 - Critical"},
		DayFirst:            true,
	}
}

// Validate checks that the configuration is valid
func (c *ReportConfig) Validate() error {
	if c.TopN < 1 {
		return NewConfigError("top_n must be at least 1")
	}

	if c.ReactionAggregation != AggregationMean && c.ReactionAggregation != AggregationMedian {
		return NewConfigError("reaction_aggregation must be %q or %q", AggregationMean, AggregationMedian)
	}

	if c.SignificanceLevel <= 0 || c.SignificanceLevel >= 1 {
		return NewConfigError("significance_level must be in (0, 1)")
	}

	if len(c.CriticalLabels) == 0 {
		return NewConfigError("critical_labels must list at least one severity label")
	}

	return nil
}

// IsCritical reports whether a severity label falls into the critical bucket
func (c *ReportConfig) IsCritical(severity string) bool {
	for _, label := range c.CriticalLabels {
		if severity == label {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration error
type ConfigError struct {
	message string
}

// NewConfigError creates a new configuration error
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{message: fmt.Sprintf(format, args...)}
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return e.message
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}
