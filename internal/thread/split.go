// Package thread splits a concatenated mail thread into the replies it
// contains and runs header and signature heuristics over each one.
package thread

import (
	"regexp"
	"strings"
)

// Reply is one contiguous run of lines within a thread. Every reply after the
// first begins at a "From: " header line; the first may begin mid-conversation.
type Reply []string

// replyPrefix marks the start of a new reply. Matching is an exact byte
// comparison, not a header parse.
const replyPrefix = "From: "

// separatorPattern matches "----- Original Message -----" style lines that
// some clients insert above quoted replies.
var separatorPattern = regexp.MustCompile(`(?i)^-+\s*original message\s*-+$`)

// SplitReplies splits a raw message into replies. Separator lines are removed
// first so they cannot be mistaken for content; afterwards every line with the
// "From: " prefix starts a new reply. Text without any such line comes back as
// a single reply spanning the whole message. Joining the returned replies in
// order reconstructs the separator-stripped input exactly.
func SplitReplies(text string) []Reply {
	lines := strings.Split(text, "\n")

	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if separatorPattern.MatchString(line) {
			continue
		}
		filtered = append(filtered, line)
	}

	bounds := []int{0}
	for i, line := range filtered {
		if i > 0 && strings.HasPrefix(line, replyPrefix) {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(filtered))

	replies := make([]Reply, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		replies = append(replies, Reply(filtered[bounds[i]:bounds[i+1]]))
	}
	return replies
}
