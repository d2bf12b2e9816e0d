// Package stdout implements an Emitter that prints records to standard output.
package stdout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/threadmill/replyminer/internal/contact"
	"github.com/threadmill/replyminer/internal/report"
)

// Emitter prints extraction records to stdout in a human-readable format.
type Emitter struct {
	// writer is the output destination, defaulting to os.Stdout.
	writer io.Writer
}

// New creates a new stdout Emitter that writes to os.Stdout.
func New() *Emitter {
	return &Emitter{writer: os.Stdout}
}

// NewWithWriter creates a new stdout Emitter that writes to the given writer.
// This is useful for testing.
func NewWithWriter(w io.Writer) *Emitter {
	return &Emitter{writer: w}
}

// Emit prints the record to stdout in a readable format.
func (e *Emitter) Emit(rec report.Record) error {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString(fmt.Sprintf("Record: %s\n", rec.ID))
	b.WriteString(fmt.Sprintf("Source: %s\n", rec.Source))

	if rec.Metadata.Sender != nil {
		b.WriteString(fmt.Sprintf("From: %s\n", formatContact(*rec.Metadata.Sender)))
	}

	if len(rec.Metadata.Recipients) > 0 {
		recipients := make([]string, 0, len(rec.Metadata.Recipients))
		for _, r := range rec.Metadata.Recipients {
			recipients = append(recipients, formatContact(r))
		}
		b.WriteString(fmt.Sprintf("To: %s\n", strings.Join(recipients, ", ")))
	}

	if rec.Metadata.Timestamp != nil {
		b.WriteString(fmt.Sprintf("Sent: %s\n", *rec.Metadata.Timestamp))
	}
	if rec.Metadata.Subject != nil {
		b.WriteString(fmt.Sprintf("Subject: %s\n", *rec.Metadata.Subject))
	}
	b.WriteString(fmt.Sprintf("Lines: %d\n", rec.Metadata.Lines))

	if rec.Signature.HasSignature {
		b.WriteString("Signature:\n")
		for _, line := range strings.Split(rec.Signature.Signature, "\n") {
			b.WriteString("  " + line + "\n")
		}
		if rec.Signature.AddressInSignature {
			b.WriteString("Signature contains sender address\n")
		}
	}

	b.WriteString("========================================\n")

	_, err := fmt.Fprint(e.writer, b.String())
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Name returns the emitter name.
func (e *Emitter) Name() string {
	return "stdout"
}

// formatContact renders a contact the way it appeared in the header, with the
// sanitized name alongside when it differs.
func formatContact(c contact.Contact) string {
	name := c.NameOriginal
	if name == "" {
		name = c.Name
	}
	if c.Address != nil && *c.Address != "" {
		return fmt.Sprintf("%s <%s>", name, *c.Address)
	}
	return name
}
