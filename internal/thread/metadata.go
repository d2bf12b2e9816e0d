package thread

import (
	"strings"

	"github.com/threadmill/replyminer/internal/contact"
)

// headerScanLimit is the last line index examined for header fields. Headers
// sit at the top of a reply; anything header-shaped further down is content.
const headerScanLimit = 10

// Metadata holds the header fields recovered from one reply. Fields are nil
// when no matching header line was found, keeping "absent" distinguishable
// from an empty value.
type Metadata struct {
	Sender     *contact.Contact  `json:"sender"`
	Recipients []contact.Contact `json:"recipients"`
	Timestamp  *string           `json:"timestamp"`
	Subject    *string           `json:"subject"`
	Lines      int               `json:"lines"`
}

// ExtractMetadata scans the top of a reply for sender, recipient, timestamp,
// and subject headers. Prefix matching is exact-case. The first occurrence of
// each field wins, except recipients, which accumulate one contact per "To: "
// or "Cc: " line; a line listing several comma-separated addresses is still
// parsed as a single contact. Timestamp and subject are captured verbatim.
func ExtractMetadata(reply Reply, s *contact.Sanitizer) Metadata {
	md := Metadata{Lines: len(reply)}

	for i, line := range reply {
		switch {
		case strings.HasPrefix(line, "From: "):
			if md.Sender == nil {
				c := s.ParseContact(line[len("From: "):])
				md.Sender = &c
			}
		case strings.HasPrefix(line, "To: "), strings.HasPrefix(line, "Cc: "):
			md.Recipients = append(md.Recipients, s.ParseContact(line[len("To: "):]))
		case strings.HasPrefix(line, "Sent: "):
			if md.Timestamp == nil {
				v := line[len("Sent: "):]
				md.Timestamp = &v
			}
		case strings.HasPrefix(line, "Subject: "):
			if md.Subject == nil {
				v := line[len("Subject: "):]
				md.Subject = &v
			}
		}

		if i >= headerScanLimit {
			break
		}
	}
	return md
}
