package ingest

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// Export timestamp layouts, tried in order. The ITSM export writes day-first
// dates ("29/2/2016 01:16"); some exports carry seconds or zero padding.
var dayFirstLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
}

var monthFirstLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

// parseExportTimestamp parses a timestamp cell from the export. Empty cells
// and the export's "?" placeholder return (nil, true): the value is simply
// not present. Unparsable non-empty cells return ok=false so the caller can
// drop the row the way the original cleaning step coerced bad dates away.
func parseExportTimestamp(value string, dayFirst bool) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "?" {
		return nil, true
	}

	layouts := dayFirstLayouts
	if !dayFirst {
		layouts = monthFirstLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}

	// Fall back to general-purpose date parsing for exports with
	// unanticipated formats (ISO dates, month names)
	if t, ok := parseHumanDate(value); ok {
		return &t, true
	}

	return nil, false
}

// parseHumanDate parses a human-readable date string ("2016-03-01",
// "yesterday", "1 march 2016"). Used for export fallback parsing and for the
// CLI's report window flags.
func parseHumanDate(value string) (time.Time, bool) {
	parser := dps.Parser{}
	cfg := &dps.Configuration{
		PreferredDateSource: dps.CurrentPeriod,
	}

	parsed, err := parser.Parse(cfg, value)
	if err != nil || parsed.IsZero() {
		return time.Time{}, false
	}
	return parsed.Time, true
}

// ParseWindowBound parses a CLI-supplied report window bound.
func ParseWindowBound(value string) (time.Time, error) {
	t, ok := parseHumanDate(value)
	if !ok {
		return time.Time{}, NewIngestError("could not parse date %q", value)
	}
	return t, nil
}
