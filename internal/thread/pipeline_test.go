package thread

import (
	"strings"
	"testing"
)

// TestThreadEndToEnd runs the splitter, metadata extractor, and signature
// detector over a small Outlook-style thread the way the CLI driver does.
func TestThreadEndToEnd(t *testing.T) {
	t.Parallel()

	s := testSanitizer()
	text := strings.Join([]string{
		"Great, booked the table.",
		"",
		"Jane Doe",
		"",
		"-----Original Message-----",
		"From: Dr. John A. Smith <mailto:jsmith@example.com>",
		"Sent: Monday, June 1, 2015 9:13 AM",
		"To: Jane Doe <jdoe@example.com>",
		"Cc: Bob Jones <bjones@example.com>",
		"Subject: Re: lunch",
		"",
		"Works for me. Friday it is.",
		"",
		"Thanks,",
		"John Smith",
		"jsmith@example.com",
		"",
		"-----Original Message-----",
		"From: Jane Doe <jdoe@example.com>",
		"Subject: lunch",
		"",
		"Lunch on Friday?",
	}, "\n")

	replies := SplitReplies(text)
	if len(replies) != 3 {
		t.Fatalf("got %d replies, want 3", len(replies))
	}

	// First reply has no headers, so no sender; the driver would skip it.
	if md := ExtractMetadata(replies[0], s); md.Sender != nil {
		t.Errorf("first reply should have no sender, got %+v", md.Sender)
	}

	md := ExtractMetadata(replies[1], s)
	if md.Sender == nil {
		t.Fatal("second reply sender absent")
	}
	if md.Sender.Name != "John Smith" {
		t.Errorf("sender name: got %q, want %q", md.Sender.Name, "John Smith")
	}
	if md.Sender.Address == nil || *md.Sender.Address != "jsmith@example.com" {
		t.Errorf("sender address: got %v, want jsmith@example.com", md.Sender.Address)
	}
	if len(md.Recipients) != 2 {
		t.Fatalf("got %d recipients, want 2", len(md.Recipients))
	}
	if md.Timestamp == nil || *md.Timestamp != "Monday, June 1, 2015 9:13 AM" {
		t.Errorf("timestamp: got %v", md.Timestamp)
	}

	sig, err := DetectSignature(replies[1], *md.Sender, DefaultLengthDivisor, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sig.HasSignature {
		t.Fatal("expected signature in second reply")
	}
	if !strings.HasPrefix(sig.Signature, "John Smith") {
		t.Errorf("signature: got %q", sig.Signature)
	}
	if !sig.AddressInSignature {
		t.Error("signature block repeats the sender address")
	}
	if strings.Contains(sig.ReplyText, "John Smith\njsmith") {
		t.Error("reply text should not contain the signature block")
	}

	md = ExtractMetadata(replies[2], s)
	if md.Sender == nil || md.Sender.Name != "Jane Doe" {
		t.Errorf("third reply sender: got %+v", md.Sender)
	}
}
