// Package contact parses mail header participants and sanitizes personal names.
package contact

import (
	"fmt"
	"os"
	"strings"
)

// TitleSet is the reference list of honorifics, ranks, and suffixes the
// sanitizer strips from personal names. It is built once at startup and never
// mutated afterwards, so concurrent readers need no locking.
type TitleSet map[string]struct{}

// NewTitleSet builds a TitleSet from the given tokens.
func NewTitleSet(tokens []string) TitleSet {
	s := make(TitleSet, len(tokens))
	for _, tok := range tokens {
		s[tok] = struct{}{}
	}
	return s
}

// LoadTitles reads a title word list from path. Titles are separated by
// whitespace; lines beginning with "#" are comments and contribute nothing.
// A missing or unreadable list is an error: without it names cannot be
// sanitized at all.
func LoadTitles(path string) (TitleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read title list: %w", err)
	}

	s := TitleSet{}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			s[tok] = struct{}{}
		}
	}
	return s, nil
}

// Contains reports whether tok is a known title. Matching is case-sensitive.
func (s TitleSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}
