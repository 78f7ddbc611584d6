package models

import "time"

// IncidentRecord represents a single normalized incident from an ITSM export.
// One record exists per reported incident; the engine never mutates records
// after ingestion produces them.
//
// Optional timestamps are pointers: nil means "never happened", never a zero
// sentinel. An incident that was never acknowledged has AcknowledgedAt == nil
// and still counts toward its group's incident total.
type IncidentRecord struct {
	// ID is the unique incident identifier from the export (e.g. "INC0000045")
	ID string

	// OpenedAt is when the incident was logged
	OpenedAt time.Time

	// AcknowledgedAt is when a support group first took ownership, nil if never
	AcknowledgedAt *time.Time

	// ResolvedAt is when the incident was resolved, nil if still open
	ResolvedAt *time.Time

	// SupportGroup identifies the group finally responsible for the incident
	SupportGroup string

	// ReassignmentCount is the number of group-to-group transfers before resolution
	ReassignmentCount int

	// Category is the classification label assigned by the platform
	Category string

	// Severity is the severity/priority label (e.g. "1 - Critical")
	Severity string

	// SLAMet is the platform's own SLA compliance verdict for this incident
	SLAMet bool
}

// Validate checks that the record satisfies the data model invariants:
// opened_at <= acknowledged_at <= resolved_at where present, a non-negative
// reassignment count, and non-empty group and category identifiers.
func (r *IncidentRecord) Validate() error {
	if r.ID == "" {
		return NewValidationError("incident id must not be empty")
	}

	if r.OpenedAt.IsZero() {
		return NewValidationError("incident %s: opened_at is required", r.ID)
	}

	if r.SupportGroup == "" {
		return NewValidationError("incident %s: support_group must not be empty", r.ID)
	}

	if r.Category == "" {
		return NewValidationError("incident %s: category must not be empty", r.ID)
	}

	if r.ReassignmentCount < 0 {
		return NewValidationError("incident %s: reassignment_count must be non-negative, got %d", r.ID, r.ReassignmentCount)
	}

	if r.AcknowledgedAt != nil && r.AcknowledgedAt.Before(r.OpenedAt) {
		return NewValidationError("incident %s: acknowledged_at precedes opened_at", r.ID)
	}

	if r.ResolvedAt != nil {
		if r.ResolvedAt.Before(r.OpenedAt) {
			return NewValidationError("incident %s: resolved_at precedes opened_at", r.ID)
		}
		if r.AcknowledgedAt != nil && r.ResolvedAt.Before(*r.AcknowledgedAt) {
			return NewValidationError("incident %s: resolved_at precedes acknowledged_at", r.ID)
		}
	}

	return nil
}

// ReactionTime returns the elapsed open-to-acknowledge duration.
// The second return value is false when the incident was never acknowledged.
func (r *IncidentRecord) ReactionTime() (time.Duration, bool) {
	if r.AcknowledgedAt == nil {
		return 0, false
	}
	return r.AcknowledgedAt.Sub(r.OpenedAt), true
}

// IsValid checks if the record is valid
func (r *IncidentRecord) IsValid() bool {
	return r.Validate() == nil
}
