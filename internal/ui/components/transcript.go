package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TranscriptEntry is one message in a chat log.
type TranscriptEntry struct {
	Prefix      string
	PrefixStyle lipgloss.Style
	Text        string
}

// Transcript is a scrollable chat log that keeps the newest lines in view.
type Transcript struct {
	entries []TranscriptEntry

	// offset is how many lines the view is scrolled up from the bottom.
	offset int
}

// Append adds an entry and scrolls back to the newest message.
func (t *Transcript) Append(e TranscriptEntry) {
	t.entries = append(t.entries, e)
	t.offset = 0
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns the logged entries in order.
func (t *Transcript) Entries() []TranscriptEntry {
	return t.entries
}

// ScrollUp moves the view n lines towards older messages.
func (t *Transcript) ScrollUp(n int) {
	t.offset += n
}

// ScrollDown moves the view n lines towards newer messages.
func (t *Transcript) ScrollDown(n int) {
	t.offset = max(t.offset-n, 0)
}

// lines wraps every entry to width and separates entries by a blank line.
func (t *Transcript) lines(width int) []string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var out []string
	for i, e := range t.entries {
		if i > 0 {
			out = append(out, "")
		}
		rendered := wrap.Render(e.PrefixStyle.Render(e.Prefix) + e.Text)
		out = append(out, strings.Split(rendered, "\n")...)
	}
	return out
}

// View renders the last height lines of the log, shifted by the scroll
// offset.
func (t *Transcript) View(width, height int) string {
	if height <= 0 {
		return ""
	}
	all := t.lines(width)

	maxOffset := max(len(all)-height, 0)
	t.offset = min(t.offset, maxOffset)

	end := len(all) - t.offset
	start := max(end-height, 0)
	return strings.Join(all[start:end], "\n")
}
