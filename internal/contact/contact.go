package contact

import (
	"regexp"
	"strings"
)

// contactPattern splits "Display Name <address>" style lines. Square brackets
// appear in some client exports, so both delimiters are accepted.
var contactPattern = regexp.MustCompile(`^(.*)[<\[](.*)[>\]]`)

// Contact is one parsed header participant.
type Contact struct {
	// NameOriginal is the raw text preceding the bracketed address, or the
	// whole line when no address was found.
	NameOriginal string `json:"name_original"`
	// Name is the sanitized form of NameOriginal.
	Name string `json:"name"`
	// Address is the bracketed address with any "mailto:" prefix removed,
	// or nil when the line carried no bracketed address.
	Address *string `json:"address"`
}

// ParseContact parses a header line containing a display name and, optionally,
// a bracket-delimited address. Lines that do not fit that shape are treated as
// a bare name. It never fails: a blank line yields an empty name and no
// address.
func (s *Sanitizer) ParseContact(line string) Contact {
	if m := contactPattern.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[1])
		addr := strings.ReplaceAll(strings.TrimSpace(m[2]), "mailto:", "")
		return Contact{
			NameOriginal: name,
			Name:         s.Sanitize(name),
			Address:      &addr,
		}
	}
	return Contact{
		NameOriginal: line,
		Name:         s.Sanitize(line),
	}
}
