package quartz

import (
	"strconv"
	"strings"
)

// fillRange returns the values from..to (inclusive) taken every step.
func fillRange(from, to, step int) []int {
	if to < from {
		return nil
	}
	arr := make([]int, 0, (to-from)/step+1)
	for i := from; ; i += step {
		arr = append(arr, i)
		if i > to-step {
			break
		}
	}
	return arr
}

// fillWrappedRange returns the values of a range that passes the upper
// bound of a cyclic field and continues from its lower bound, e.g. FRI-MON.
func fillWrappedRange(from, to, step, min, max int) []int {
	span := max - min + 1
	end := to + span
	arr := make([]int, 0, (end-from)/step+1)
	for i := from; ; i += step {
		arr = append(arr, (i-min)%span+min)
		if i > end-step {
			break
		}
	}
	return arr
}

// atoi converts a string of decimal digits, reporting values which do not
// fit into an int.
func atoi(str string) (int, bool) {
	i, err := strconv.Atoi(str)
	return i, err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// isSpecialToken reports whether an upper-cased term uses one of the
// '?', 'L', 'W' or '#' tokens reserved for the day fields.
func isSpecialToken(term string) bool {
	if strings.ContainsAny(term, "?#") {
		return true
	}
	parts := strings.FieldsFunc(term, func(r rune) bool {
		return r == '-' || r == '/'
	})
	for _, part := range parts {
		trimmed := strings.TrimRight(part, "LW")
		if trimmed != part && (trimmed == "" || isDigits(trimmed)) {
			return true
		}
	}
	return false
}
