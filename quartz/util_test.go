package quartz

import (
	"math"
	"testing"

	"github.com/reugn/go-quartz-cron/internal/assert"
)

func TestFillRange(t *testing.T) {
	assert.Equal(t, fillRange(1, 5, 1), []int{1, 2, 3, 4, 5})
	assert.Equal(t, fillRange(5, 11, 3), []int{5, 8, 11})
	assert.Equal(t, fillRange(0, 59, 30), []int{0, 30})
	assert.Equal(t, len(fillRange(5, 1, 1)), 0)
	assert.Equal(t, fillRange(1970, 2299, math.MaxInt), []int{1970})
	assert.Equal(t, fillRange(math.MaxInt-1, math.MaxInt, 1), []int{math.MaxInt - 1, math.MaxInt})
}

func TestFillWrappedRange(t *testing.T) {
	// FRI-MON
	assert.Equal(t, fillWrappedRange(6, 2, 1, 1, 7), []int{6, 7, 1, 2})
	// NOV-FEB
	assert.Equal(t, fillWrappedRange(11, 2, 1, 1, 12), []int{11, 12, 1, 2})
	// 22-2 hours, every other hour
	assert.Equal(t, fillWrappedRange(22, 2, 2, 0, 23), []int{22, 0, 2})
	// 50-10/15 minutes
	assert.Equal(t, fillWrappedRange(50, 10, 15, 0, 59), []int{50, 5})
	assert.Equal(t, fillWrappedRange(50, 10, 59, 0, 59), []int{50})
}

func TestIsSpecialToken(t *testing.T) {
	tests := []struct {
		term     string
		expected bool
	}{
		{"?", true},
		{"L", true},
		{"W", true},
		{"LW", true},
		{"5L", true},
		{"15W", true},
		{"2#1", true},
		{"L-1", true},
		{"1-L", true},
		{"JUL", false},
		{"JUL-DEC", false},
		{"WED", false},
		{"*/5", false},
		{"10-20/2", false},
		{"FOO", false},
	}
	for _, test := range tests {
		assert.Equal(t, isSpecialToken(test.term), test.expected)
	}
}

func TestSplitFields(t *testing.T) {
	tokens, err := splitFields(" 0  0 0 1 * ? ")
	assert.IsNil(t, err)
	assert.Equal(t, tokens, [fieldCount]string{"0", "0", "0", "1", "*", "?", "*"})

	tokens, err = splitFields("0 0 0 1 * ? 2030")
	assert.IsNil(t, err)
	assert.Equal(t, tokens[Year], "2030")

	_, err = splitFields("0 0 0 1 *")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	_, err = splitFields("\t\n")
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestFieldParser(t *testing.T) {
	tests := []struct {
		field    CronField
		text     string
		kind     SpecKind
		values   []int
		rendered string
	}{
		{Seconds, "*", AllValues, nil, "*"},
		{Seconds, "0,30,15,30", ValueList, []int{0, 15, 30}, "0,15,30"},
		{Minutes, "*/20", ValueList, []int{0, 20, 40}, "0,20,40"},
		{Hours, "20/2", ValueList, []int{20, 22}, "20,22"},
		{DayOfMonth, "?", NoSpecificValue, nil, "?"},
		{DayOfMonth, "L", ValueList, []int{}, "L"},
		{DayOfMonth, "lw", ValueList, []int{}, "lw"},
		{DayOfMonth, "15w", ValueList, []int{15}, "15"},
		{Month, "jan,Mar-May", ValueList, []int{1, 3, 4, 5}, "1,3,4,5"},
		{DayOfWeek, "SUN,SAT", ValueList, []int{1, 7}, "1,7"},
		{DayOfWeek, "2#3", ValueList, []int{2}, "2"},
		{DayOfWeek, "MON/2", ValueList, []int{2, 4, 6}, "2,4,6"},
		{Year, "2024,2026", ValueList, []int{2024, 2026}, "2024,2026"},
	}
	for _, test := range tests {
		spec, err := newFieldParser(test.field, defaultYearHorizon).parse(test.text)
		assert.IsNil(t, err)
		assert.Equal(t, spec.Kind(), test.kind)
		assert.Equal(t, spec.Values(), test.values)
		assert.Equal(t, spec.String(), test.rendered)
		assert.Equal(t, spec.Raw(), test.text)
	}
}
