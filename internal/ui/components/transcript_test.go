package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func entry(text string) TranscriptEntry {
	return TranscriptEntry{Prefix: "> ", PrefixStyle: lipgloss.NewStyle(), Text: text}
}

func TestTranscript_ShowsNewestLines(t *testing.T) {
	var tr Transcript
	for _, s := range []string{"one", "two", "three"} {
		tr.Append(entry(s))
	}

	view := tr.View(40, 1)
	if !strings.Contains(view, "three") || strings.Contains(view, "two") {
		t.Fatalf("view = %q, want only the newest line", view)
	}
}

func TestTranscript_Scroll(t *testing.T) {
	var tr Transcript
	for _, s := range []string{"one", "two", "three"} {
		tr.Append(entry(s))
	}

	tr.ScrollUp(100)
	view := tr.View(40, 1)
	if !strings.Contains(view, "one") {
		t.Fatalf("scrolled to top, view = %q", view)
	}

	tr.ScrollDown(100)
	if view := tr.View(40, 1); !strings.Contains(view, "three") {
		t.Fatalf("scrolled to bottom, view = %q", view)
	}
}

func TestTranscript_AppendResetsScroll(t *testing.T) {
	var tr Transcript
	tr.Append(entry("one"))
	tr.Append(entry("two"))
	tr.ScrollUp(5)
	tr.Append(entry("three"))
	if view := tr.View(40, 1); !strings.Contains(view, "three") {
		t.Fatalf("view = %q, want newest after append", view)
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d", tr.Len())
	}
}

func TestTranscript_ZeroHeight(t *testing.T) {
	var tr Transcript
	tr.Append(entry("x"))
	if tr.View(40, 0) != "" {
		t.Fatal("expected empty view")
	}
}

func TestProgressBar_ClampsFill(t *testing.T) {
	over := NewProgressBar("", 150, true, 20).View()
	if !strings.Contains(over, "150.0%") {
		t.Fatalf("view = %q", over)
	}
}
