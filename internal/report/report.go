// Package report defines the extraction record emitted for each reply.
package report

import (
	"github.com/google/uuid"

	"github.com/threadmill/replyminer/internal/thread"
)

// Record is the structured result of processing one reply: the reply's header
// metadata joined with the outcome of signature detection. Records are built
// only for replies whose sender could be identified.
type Record struct {
	ID        string           `json:"id"`
	Source    string           `json:"source"`
	Metadata  thread.Metadata  `json:"metadata"`
	Signature thread.Signature `json:"signature"`
}

// New builds a Record with a fresh identifier.
func New(source string, md thread.Metadata, sig thread.Signature) Record {
	return Record{
		ID:        uuid.NewString(),
		Source:    source,
		Metadata:  md,
		Signature: sig,
	}
}
