package htmltext

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>saved mail</title></head><body>
<p>From: John Smith &lt;jsmith@example.com&gt;</p>
<p>Subject: lunch</p>
<div>Works for me.<br>See you there.</div>
<script>var tracking = 1;</script>
</body></html>`

	text, err := Convert(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(text, "\n")
	want := []string{
		"From: John Smith <jsmith@example.com>",
		"Subject: lunch",
		"Works for me.",
		"See you there.",
	}
	got := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			got = append(got, line)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if strings.Contains(text, "tracking") {
		t.Error("script content should be removed")
	}
	if strings.Contains(text, "saved mail") {
		t.Error("head content should be removed")
	}
}

func TestConvert_BlankLineCollapse(t *testing.T) {
	t.Parallel()

	text, err := Convert("<body><p>a</p><p></p><p></p><p>b</p></body>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "\n\n\n") {
		t.Errorf("blank runs should collapse, got %q", text)
	}
	if !strings.Contains(text, "a") || !strings.Contains(text, "b") {
		t.Errorf("content lost: %q", text)
	}
}

func TestConvert_PlainTextPassthrough(t *testing.T) {
	t.Parallel()

	// Text with no markup survives as a single line.
	text, err := Convert("just words")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "just words" {
		t.Errorf("got %q, want %q", text, "just words")
	}
}
