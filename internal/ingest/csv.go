// Package ingest loads an exported ITSM incident event log and normalizes it
// into the IncidentRecord collection the analysis engine consumes. The export
// is one CSV row per incident state change; ingestion collapses those to one
// record per incident and drops rows the export left malformed, mirroring the
// platform's own cleaning rules.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"itrs/internal/config"
	"itrs/internal/logging"
	"itrs/internal/models"
)

var logger = logging.GetLogger("ingest")

// The export writes synthetic identifiers; anything else is a broken row
var (
	groupPattern    = regexp.MustCompile(`^Group \d+$`)
	categoryPattern = regexp.MustCompile(`^Category \d+$`)
)

// Columns the loader needs to build records. resolved_at may be empty per
// row but the column itself must exist.
var requiredColumns = []string{
	"number",
	"opened_at",
	"sys_created_at",
	"resolved_at",
	"assignment_group",
	"reassignment_count",
	"category",
	"priority",
	"made_sla",
}

// LoadFile reads and normalizes an incident export from disk
func LoadFile(path string, cfg *config.ReportConfig) ([]models.IncidentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open incident export %q: %w", path, err)
	}
	defer f.Close()

	records, err := Load(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load incident export %q: %w", path, err)
	}
	return records, nil
}

// Load reads the export CSV and returns one IncidentRecord per incident.
//
// The export carries every state transition as its own row; the last row per
// incident number wins, so each record reflects the incident's final state.
// Rows that fail the cleaning rules (malformed group or category identifier,
// missing or unparsable open/acknowledge timestamps, unreadable counters) are
// dropped and counted, not errors: the export is known to be dirty.
func Load(r io.Reader, cfg *config.ReportConfig) ([]models.IncidentRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, NewIngestError("could not read export header: %v", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, NewIngestError("export is missing required column %q", name)
		}
	}

	byID := make(map[string]int)
	var records []models.IncidentRecord
	rows, dropped := 0, 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewIngestError("could not read export row: %v", err)
		}
		rows++

		record, ok := buildRecord(row, col, cfg)
		if !ok {
			dropped++
			continue
		}

		// Last state transition per incident wins
		if idx, seen := byID[record.ID]; seen {
			records[idx] = record
		} else {
			byID[record.ID] = len(records)
			records = append(records, record)
		}
	}

	logger.InfoWithFields("incident export loaded",
		logging.Field("rows", rows),
		logging.Field("dropped", dropped),
		logging.Field("incidents", len(records)),
	)

	return records, nil
}

// buildRecord converts one export row to an IncidentRecord, applying the
// cleaning rules. Returns ok=false when the row must be dropped.
func buildRecord(row []string, col map[string]int, cfg *config.ReportConfig) (models.IncidentRecord, bool) {
	cell := func(name string) string {
		idx := col[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	id := cell("number")
	group := cell("assignment_group")
	category := cell("category")
	if id == "" || !groupPattern.MatchString(group) || !categoryPattern.MatchString(category) {
		return models.IncidentRecord{}, false
	}

	openedAt, ok := parseExportTimestamp(cell("opened_at"), cfg.DayFirst)
	if !ok || openedAt == nil {
		return models.IncidentRecord{}, false
	}

	// sys_created_at marks first ownership of the incident; rows without it
	// cannot anchor any time-based metric and are removed, same as the
	// opened_at rule above
	acknowledgedAt, ok := parseExportTimestamp(cell("sys_created_at"), cfg.DayFirst)
	if !ok || acknowledgedAt == nil {
		return models.IncidentRecord{}, false
	}
	if acknowledgedAt.Before(*openedAt) {
		return models.IncidentRecord{}, false
	}

	resolvedAt, ok := parseExportTimestamp(cell("resolved_at"), cfg.DayFirst)
	if !ok {
		return models.IncidentRecord{}, false
	}
	if resolvedAt != nil && resolvedAt.Before(*acknowledgedAt) {
		return models.IncidentRecord{}, false
	}

	reassignments, err := strconv.Atoi(cell("reassignment_count"))
	if err != nil || reassignments < 0 {
		return models.IncidentRecord{}, false
	}

	slaMet, err := strconv.ParseBool(strings.ToLower(cell("made_sla")))
	if err != nil {
		return models.IncidentRecord{}, false
	}

	return models.IncidentRecord{
		ID:                id,
		OpenedAt:          *openedAt,
		AcknowledgedAt:    acknowledgedAt,
		ResolvedAt:        resolvedAt,
		SupportGroup:      group,
		ReassignmentCount: reassignments,
		Category:          category,
		Severity:          cell("priority"),
		SLAMet:            slaMet,
	}, true
}
