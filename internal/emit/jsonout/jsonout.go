// Package jsonout implements an Emitter that streams pretty-printed JSON
// records, one document per record.
package jsonout

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/threadmill/replyminer/internal/report"
)

// Emitter writes extraction records as an indented JSON stream.
type Emitter struct {
	enc *json.Encoder
}

// New creates an Emitter writing to w.
func New(w io.Writer) *Emitter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Emitter{enc: enc}
}

// Emit writes one record as a pretty-printed JSON document.
func (e *Emitter) Emit(rec report.Record) error {
	if err := e.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// Name returns the emitter name.
func (e *Emitter) Name() string {
	return "json"
}
