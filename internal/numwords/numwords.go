// Package numwords spells out whole numbers in English words.
package numwords

import (
	"errors"
	"fmt"
	"strings"
)

// Max is the largest number the converter handles.
const Max = 999

// ErrOutOfRange is returned by ToWordsChecked for numbers outside [0, Max].
var ErrOutOfRange = errors.New("number out of range")

var ones = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// ToWords converts n to its English words representation, e.g.
// 999 -> "nine hundred ninety-nine". Values outside [0, Max] are clamped.
func ToWords(n int) string {
	if n < 0 {
		n = 0
	}
	if n > Max {
		n = Max
	}
	if n == 0 {
		return "zero"
	}

	var b strings.Builder
	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" hundred")
		n %= 100
		if n > 0 {
			b.WriteByte(' ')
		}
	}

	if n >= 20 {
		b.WriteString(tens[n/10])
		n %= 10
		if n > 0 {
			b.WriteByte('-')
			b.WriteString(ones[n])
		}
	} else if n > 0 {
		b.WriteString(ones[n])
	}

	return b.String()
}

// ToWordsChecked is like ToWords but rejects out-of-range input.
func ToWordsChecked(n int) (string, error) {
	if n < 0 || n > Max {
		return "", fmt.Errorf("%w: %d (want 0-%d)", ErrOutOfRange, n, Max)
	}
	return ToWords(n), nil
}
