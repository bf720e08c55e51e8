package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Widths of the zero-padded sequential identifiers.
const (
	UnitIDWidth     = 3
	RegisterIDWidth = 3
	MovementIDWidth = 6
)

// ParseSequence reads the numeric value of a sequential identifier.
// Missing or malformed values count as 0.
func ParseSequence(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CompareSequence orders two sequential identifiers by numeric value, so "1000"
// sorts after "999". Equal values fall back to the string form.
func CompareSequence(a, b string) int {
	if d := ParseSequence(a) - ParseSequence(b); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// FormatSequence zero-pads n to width digits.
func FormatSequence(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// NextSequence returns the identifier following the highest one among siblings,
// together with its numeric value. suffix extracts each sibling's identifier.
//
// The computation is a plain max+1 scan: callers must run it inside the write
// critical section of the parent (row lock or store mutex) or two concurrent
// allocations on the same parent can produce the same id.
func NextSequence[T any](siblings []T, suffix func(T) string, width int) (string, int) {
	highest := 0
	for _, s := range siblings {
		if n := ParseSequence(suffix(s)); n > highest {
			highest = n
		}
	}
	next := highest + 1
	return FormatSequence(next, width), next
}

// NextSequenceRange allocates count consecutive identifiers after the current maximum,
// in order.
func NextSequenceRange[T any](siblings []T, suffix func(T) string, width, count int) []string {
	_, first := NextSequence(siblings, suffix, width)
	ids := make([]string, count)
	for i := range ids {
		ids[i] = FormatSequence(first+i, width)
	}
	return ids
}
