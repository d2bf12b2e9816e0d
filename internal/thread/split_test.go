package thread

import (
	"strings"
	"testing"
)

func TestSplitReplies(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Sounds good, see you then.",
		"",
		"From: John Smith <jsmith@example.com>",
		"Sent: Monday, June 1, 2015 9:13 AM",
		"Subject: Re: lunch",
		"",
		"Works for me.",
		"",
		"From: Jane Doe <jdoe@example.com>",
		"Subject: lunch",
		"",
		"Lunch on Friday?",
	}, "\n")

	replies := SplitReplies(text)
	if len(replies) != 3 {
		t.Fatalf("got %d replies, want 3", len(replies))
	}
	if replies[0][0] != "Sounds good, see you then." {
		t.Errorf("first reply starts with %q", replies[0][0])
	}
	if !strings.HasPrefix(replies[1][0], "From: John Smith") {
		t.Errorf("second reply starts with %q", replies[1][0])
	}
	if !strings.HasPrefix(replies[2][0], "From: Jane Doe") {
		t.Errorf("third reply starts with %q", replies[2][0])
	}
}

func TestSplitReplies_Reconstruction(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"intro line",
		"From: A <a@x.com>",
		"body one",
		"From: B <b@x.com>",
		"body two",
		"",
	}, "\n")

	replies := SplitReplies(text)

	var all []string
	for _, r := range replies {
		all = append(all, r...)
	}
	if got := strings.Join(all, "\n"); got != text {
		t.Errorf("joined replies do not reconstruct input:\ngot  %q\nwant %q", got, text)
	}
}

func TestSplitReplies_NoBoundaries(t *testing.T) {
	t.Parallel()

	text := "just a note\nwith two lines"
	replies := SplitReplies(text)
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	if got := strings.Join(replies[0], "\n"); got != text {
		t.Errorf("single reply: got %q, want %q", got, text)
	}
}

func TestSplitReplies_LeadingBoundary(t *testing.T) {
	t.Parallel()

	text := "From: A <a@x.com>\nhello"
	replies := SplitReplies(text)
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	if len(replies[0]) != 2 {
		t.Errorf("reply has %d lines, want 2", len(replies[0]))
	}
}

func TestSplitReplies_SeparatorLinesRemoved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"plain", "-----Original Message-----"},
		{"spaced", "--- Original Message ---"},
		{"lowercase", "----original message----"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text := "hello\n" + tt.line + "\nFrom: A <a@x.com>\nbody"
			replies := SplitReplies(text)
			if len(replies) != 2 {
				t.Fatalf("got %d replies, want 2", len(replies))
			}
			for _, r := range replies {
				for _, line := range r {
					if strings.Contains(strings.ToLower(line), "original message") {
						t.Errorf("separator line survived: %q", line)
					}
				}
			}
		})
	}
}

func TestSplitReplies_SeparatorLookalikeKept(t *testing.T) {
	t.Parallel()

	// Content mentioning the phrase without the dash framing must survive.
	text := "the original message said hello\nFrom: A <a@x.com>\nbody"
	replies := SplitReplies(text)
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want 2", len(replies))
	}
	if replies[0][0] != "the original message said hello" {
		t.Errorf("content line was removed: %q", replies[0][0])
	}
}

func TestSplitReplies_PrefixIsExact(t *testing.T) {
	t.Parallel()

	// "From:" without the trailing space is not a boundary.
	text := "From:tight@example.com\nbody\nfrom: lower case\nmore"
	replies := SplitReplies(text)
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
}
