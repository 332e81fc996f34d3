package sourcecallback

import (
	"context"

	"github.com/agronomiq/soilreport/report"
)

// FetchFunc produces the full record set for an export.
type FetchFunc func(ctx context.Context) ([]report.TestRecord, error)

// Source wraps a callback function as a RecordSource. Useful for in-memory
// fixtures and for wiring record stores the module has no adapter for.
type Source struct {
	fn FetchFunc
}

// NewSource creates a callback-based RecordSource.
func NewSource(fn FetchFunc) *Source {
	return &Source{fn: fn}
}

// Fetch delegates to the configured callback.
func (s *Source) Fetch(ctx context.Context) ([]report.TestRecord, error) {
	if s == nil || s.fn == nil {
		return nil, report.NewError(report.KindValidation, "callback source requires a function", nil)
	}
	return s.fn(ctx)
}

// Static creates a Source that always returns the given records.
func Static(records []report.TestRecord) *Source {
	return NewSource(func(ctx context.Context) ([]report.TestRecord, error) {
		return records, nil
	})
}
