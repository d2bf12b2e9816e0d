package contact

import (
	"strings"
	"unicode"
)

// Sanitizer normalizes personal names against a process-wide TitleSet.
type Sanitizer struct {
	titles TitleSet
}

// NewSanitizer creates a Sanitizer backed by the given TitleSet.
func NewSanitizer(titles TitleSet) *Sanitizer {
	return &Sanitizer{titles: titles}
}

// Sanitize cleans up a person's name by removing non-alphabetic characters,
// capitalized initials and acronyms ("J.", "MA", "CEO"), and titles or
// suffixes ("Captain", "Dr", "Jr"):
//
//	Sanitize("Brigadier General John A. B. C. Smith") == "John Smith"
//
// The all-caps check also drops genuine single-letter and all-caps surnames,
// an accepted limitation of the heuristic. Sanitize never fails; a name whose
// every token is discarded comes back as the empty string. The result is
// stable: sanitizing an already-sanitized name returns it unchanged.
func (s *Sanitizer) Sanitize(name string) string {
	var kept []string
	for _, part := range strings.Fields(name) {
		part = strings.Map(letterOnly, part)

		// Empty tokens fall out here too: "" equals its own upper form.
		if part == strings.ToUpper(part) {
			continue
		}
		if s.titles.Contains(part) {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " ")
}

func letterOnly(r rune) rune {
	if unicode.IsLetter(r) {
		return r
	}
	return -1
}
