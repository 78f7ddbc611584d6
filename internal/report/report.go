// Package report runs the analysis components over a loaded incident
// collection and renders the results. It is the caller of record for the
// engine's error policy: sections that cannot be computed for lack of data
// are skipped with a reason, anything else aborts the run.
package report

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"itrs/internal/analytics"
	"itrs/internal/config"
	"itrs/internal/ingest"
	"itrs/internal/kpi"
	"itrs/internal/logging"
	"itrs/internal/models"
)

var logger = logging.GetLogger("report")

// Section names used as Skipped keys and rendered headings
const (
	SectionReactionTime  = "reaction_time"
	SectionReassignments = "reassignments"
	SectionSLA           = "sla_compliance"
	SectionCategories    = "top_categories"
	SectionDependency    = "dependency"
)

// Report is the complete outcome of one report run
type Report struct {
	// RunID uniquely identifies this run in logs and rendered output
	RunID string

	// GeneratedAt is when the run happened
	GeneratedAt time.Time

	// Window is the report window the records were filtered to, nil if the
	// whole export was analyzed
	Window *ingest.Window

	// IncidentCount is the number of incidents analyzed
	IncidentCount int

	// ReactionTime holds the worst groups by mean/median reaction minutes
	ReactionTime []kpi.Entry

	// Reassignments holds the worst groups by average reassignments
	Reassignments []kpi.Entry

	// SLACompliance holds the worst groups by SLA compliance ratio
	SLACompliance []kpi.Entry

	// TopCategories holds the busiest incident categories
	TopCategories []kpi.Entry

	// Dependency is the category-vs-severity analysis, nil if skipped
	Dependency *analytics.DependencyResult

	// Skipped maps section name to the reason it produced no result
	Skipped map[string]string
}

// RunAll executes every report section over the same immutable record
// collection. The sections are independent pure computations, so they run
// concurrently; each writes only its own result field.
//
// EmptyInputError and InsufficientDataError from a section mark that section
// skipped instead of failing the run. A ValidationError aborts: a malformed
// record poisons every metric, not one section.
func RunAll(records []models.IncidentRecord, cfg *config.ReportConfig) (*Report, error) {
	rep := &Report{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		IncidentCount: len(records),
		Skipped:       make(map[string]string),
	}

	var mu sync.Mutex
	skipOrFail := func(section string, err error) error {
		if models.IsEmptyInputError(err) || models.IsInsufficientDataError(err) {
			mu.Lock()
			rep.Skipped[section] = err.Error()
			mu.Unlock()
			logger.WarnWithFields("report section skipped",
				logging.Field("run_id", rep.RunID),
				logging.Field("section", section),
				logging.Field("reason", err.Error()),
			)
			return nil
		}
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		entries, err := kpi.ReactionTime(records, cfg)
		if err != nil {
			return skipOrFail(SectionReactionTime, err)
		}
		rep.ReactionTime = entries
		return nil
	})
	g.Go(func() error {
		entries, err := kpi.Reassignments(records, cfg)
		if err != nil {
			return skipOrFail(SectionReassignments, err)
		}
		rep.Reassignments = entries
		return nil
	})
	g.Go(func() error {
		entries, err := kpi.SLACompliance(records, cfg)
		if err != nil {
			return skipOrFail(SectionSLA, err)
		}
		rep.SLACompliance = entries
		return nil
	})
	g.Go(func() error {
		entries, err := kpi.TopCategories(records, cfg)
		if err != nil {
			return skipOrFail(SectionCategories, err)
		}
		rep.TopCategories = entries
		return nil
	})
	g.Go(func() error {
		result, err := analytics.AnalyzeDependency(records, cfg)
		if err != nil {
			return skipOrFail(SectionDependency, err)
		}
		rep.Dependency = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.InfoWithFields("report run complete",
		logging.Field("run_id", rep.RunID),
		logging.Field("incidents", rep.IncidentCount),
		logging.Field("skipped_sections", len(rep.Skipped)),
	)

	return rep, nil
}
