package numwords

import (
	"errors"
	"strings"
	"testing"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{19, "nineteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{70, "seventy"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{110, "one hundred ten"},
		{345, "three hundred forty-five"},
		{600, "six hundred"},
		{999, "nine hundred ninety-nine"},
	}

	for _, tc := range tests {
		if got := ToWords(tc.n); got != tc.want {
			t.Errorf("ToWords(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestToWords_Clamps(t *testing.T) {
	if got := ToWords(-5); got != "zero" {
		t.Errorf("ToWords(-5) = %q, want zero", got)
	}
	if got := ToWords(1500); got != "nine hundred ninety-nine" {
		t.Errorf("ToWords(1500) = %q, want nine hundred ninety-nine", got)
	}
}

func TestToWordsChecked(t *testing.T) {
	if _, err := ToWordsChecked(1000); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for 1000, got %v", err)
	}
	if _, err := ToWordsChecked(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for -1, got %v", err)
	}
	got, err := ToWordsChecked(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "forty-two" {
		t.Errorf("ToWordsChecked(42) = %q", got)
	}
}

func TestToWords_NoStraySpaces(t *testing.T) {
	for n := 0; n <= Max; n++ {
		w := ToWords(n)
		if strings.HasPrefix(w, " ") || strings.HasSuffix(w, " ") || strings.Contains(w, "  ") {
			t.Fatalf("ToWords(%d) = %q has stray whitespace", n, w)
		}
		if strings.HasSuffix(w, "-") {
			t.Fatalf("ToWords(%d) = %q ends with hyphen", n, w)
		}
	}
}
