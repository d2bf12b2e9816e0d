package thread

import (
	"errors"
	"fmt"
	"strings"

	"github.com/threadmill/replyminer/internal/contact"
)

// DefaultLengthDivisor bounds the signature search to the back half of a reply.
const DefaultLengthDivisor = 2

// ErrInvalidLengthDivisor reports a non-positive length divisor. A zero
// divisor would disable the search bound silently, so it is rejected instead.
var ErrInvalidLengthDivisor = errors.New("length divisor must be a positive integer")

// Signature is the outcome of signature detection for one reply. When
// HasSignature is false the remaining fields are zero.
type Signature struct {
	HasSignature       bool   `json:"has_signature"`
	Signature          string `json:"signature"`
	ReplyText          string `json:"reply_text"`
	AddressInSignature bool   `json:"address_in_signature"`
}

// DetectSignature searches a reply backward for a trailing block that restates
// the sender's name. The first line (from the end) whose sanitized tokens all
// occur case-insensitively within the sender's sanitized name starts the
// signature; at least two such tokens are required, so a lone "Thanks" cannot
// match. Only the last len(reply)/lengthDivisor lines are examined. A sender
// with an empty sanitized name never matches, and replies of fewer than two
// lines are never split.
func DetectSignature(reply Reply, sender contact.Contact, lengthDivisor int, s *contact.Sanitizer) (Signature, error) {
	var sig Signature
	if lengthDivisor < 1 {
		return sig, fmt.Errorf("%w, got %d", ErrInvalidLengthDivisor, lengthDivisor)
	}

	limit := len(reply) / lengthDivisor
	senderName := strings.ToLower(sender.Name)

	for j := 0; j < limit; j++ {
		tokens := strings.Fields(s.Sanitize(reply[len(reply)-1-j]))
		if len(tokens) < 2 || !allContained(tokens, senderName) {
			continue
		}

		start := len(reply) - 1 - j
		sig.HasSignature = true
		sig.Signature = strings.TrimSpace(strings.Join(reply[start:], "\n"))
		sig.ReplyText = strings.TrimSpace(strings.Join(reply[:start], "\n"))
		if sender.Address != nil && *sender.Address != "" {
			sig.AddressInSignature = strings.Contains(
				strings.ToLower(sig.Signature), strings.ToLower(*sender.Address))
		}
		break
	}
	return sig, nil
}

// allContained reports whether every token occurs, case-insensitively, as a
// substring of name.
func allContained(tokens []string, name string) bool {
	for _, tok := range tokens {
		if !strings.Contains(name, strings.ToLower(tok)) {
			return false
		}
	}
	return true
}
