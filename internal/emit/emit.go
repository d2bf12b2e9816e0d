// Package emit defines the interface for extraction record sinks.
package emit

import "github.com/threadmill/replyminer/internal/report"

// Emitter is the interface record sinks must implement. Each emitter renders
// finished extraction records to its destination (human-readable stdout, a
// JSON stream, etc.).
type Emitter interface {
	// Emit writes one record to the sink. It returns an error if the sink
	// cannot accept the record.
	Emit(rec report.Record) error

	// Name returns the human-readable name of this emitter.
	Name() string
}
