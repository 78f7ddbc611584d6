package ingest

import "fmt"

// IngestError represents a failure to read or interpret the export file
type IngestError struct {
	message string
}

// NewIngestError creates a new ingest error
func NewIngestError(format string, args ...interface{}) *IngestError {
	return &IngestError{message: fmt.Sprintf(format, args...)}
}

// Error returns the error message
func (e *IngestError) Error() string {
	return e.message
}

// IsIngestError checks if an error is an ingest error
func IsIngestError(err error) bool {
	_, ok := err.(*IngestError)
	return ok
}
