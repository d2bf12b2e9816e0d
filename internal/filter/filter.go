// Package filter evaluates record selection expressions.
package filter

import (
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"

	"github.com/threadmill/replyminer/internal/report"
)

// Filter decides which extraction records are emitted. Expressions see one
// reply's record as their environment, for example:
//
//	lines > 5 && has_signature
//	sender == "John Smith" || "Poe" in subject
type Filter struct {
	program *vm.Program
}

// New compiles a filter expression. The expression must evaluate to a
// boolean; compilation failures surface immediately rather than per record.
func New(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(env(report.Record{})))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &Filter{program: program}, nil
}

// Match evaluates the filter against one record.
func (f *Filter) Match(rec report.Record) (bool, error) {
	out, err := expr.Run(f.program, env(rec))
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %w", err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", out)
	}
	return ok, nil
}

// env flattens a record into the expression environment. Absent header fields
// appear as empty strings so expressions do not have to nil-check.
func env(rec report.Record) map[string]interface{} {
	var sender, address, subject, timestamp string
	if rec.Metadata.Sender != nil {
		sender = rec.Metadata.Sender.Name
		if rec.Metadata.Sender.Address != nil {
			address = *rec.Metadata.Sender.Address
		}
	}
	if rec.Metadata.Subject != nil {
		subject = *rec.Metadata.Subject
	}
	if rec.Metadata.Timestamp != nil {
		timestamp = *rec.Metadata.Timestamp
	}

	recipients := make([]string, 0, len(rec.Metadata.Recipients))
	for _, r := range rec.Metadata.Recipients {
		recipients = append(recipients, r.Name)
	}

	return map[string]interface{}{
		"source":               rec.Source,
		"sender":               sender,
		"address":              address,
		"recipients":           recipients,
		"subject":              subject,
		"timestamp":            timestamp,
		"lines":                rec.Metadata.Lines,
		"has_signature":        rec.Signature.HasSignature,
		"address_in_signature": rec.Signature.AddressInSignature,
	}
}
