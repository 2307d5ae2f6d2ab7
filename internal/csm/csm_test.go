package csm

import (
	"testing"
	"time"

	"github.com/reugn/go-quartz-cron/internal/assert"
)

func TestDayMatchers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		matcher  DayMatcher
		year     int
		month    int
		expected []int
	}{
		{"every-day-feb-2023", EveryDay(), 2023, 2, seq(1, 28)},
		{"days-of-month", DaysOfMonth([]int{1, 15, 31}), 2024, 4, []int{1, 15}},
		{"last-day-leap", LastDayOfMonth(), 2024, 2, []int{29}},
		{"last-weekday-sunday", LastWeekdayOfMonth(), 2024, 3, []int{29}},
		{"nearest-weekday-saturday-first", NearestWeekday(1), 2024, 6, []int{3}},
		{"nearest-weekday-sunday-last", NearestWeekday(30), 2024, 6, []int{28}},
		{"nearest-weekday-saturday", NearestWeekday(15), 2025, 3, []int{14}},
		{"nearest-weekday-short-month", NearestWeekday(31), 2024, 4, nil},
		{"days-of-week", DaysOfWeek([]int{1, 7}), 2024, 6, []int{1, 2, 8, 9, 15, 16, 22, 23, 29, 30}},
		{"last-friday", LastDayOfWeek(6), 2024, 5, []int{31}},
		{"second-sunday", NthDayOfWeek(1, 2), 2024, 12, []int{8}},
		{"fifth-tuesday-missing", NthDayOfWeek(3, 5), 2024, 2, nil},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var days []int
			for day := 1; day <= lastDayOfMonth(test.year, test.month); day++ {
				if test.matcher(test.year, test.month, day) {
					days = append(days, day)
				}
			}
			assert.Equal(t, days, test.expected)
		})
	}
}

func TestCommonNode(t *testing.T) {
	t.Parallel()
	node := NewCommonNode(58, 0, 59, nil)
	assert.False(t, node.Next())
	assert.Equal(t, node.Value(), 59)
	assert.True(t, node.Next())
	assert.Equal(t, node.Value(), 0)

	node = NewCommonNode(20, 0, 59, []int{10, 30})
	assert.False(t, node.isValid())
	assert.False(t, node.Next())
	assert.Equal(t, node.Value(), 30)
	assert.True(t, node.Next())
	assert.Equal(t, node.Value(), 10)
	node.Reset()
	assert.Equal(t, node.Value(), 10)
}

func TestDayNode(t *testing.T) {
	t.Parallel()
	year := NewCommonNode(2024, 1970, 9999, nil)
	month := NewCommonNode(2, 1, 12, nil)
	day := NewDayNode(10, DaysOfMonth([]int{5, 30}), month, year)

	assert.False(t, day.isValid())
	assert.True(t, day.Next())
	day.Reset()
	assert.Equal(t, day.Value(), 5)
	// there is no February 30
	assert.True(t, day.Next())
	assert.False(t, day.isValid())
}

func TestCronStateMachine(t *testing.T) {
	t.Parallel()
	year := NewCommonNode(2024, 1970, 9999, nil)
	month := NewCommonNode(2, 1, 12, nil)
	day := NewDayNode(28, LastDayOfMonth(), month, year)
	hour := NewCommonNode(23, 0, 23, []int{0, 12})
	minute := NewCommonNode(59, 0, 59, []int{30})
	second := NewCommonNode(59, 0, 59, []int{0})
	csm := NewCronStateMachine(second, minute, hour, day, month, year)

	expected := []time.Time{
		time.Date(2024, 2, 29, 0, 30, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 30, 0, 0, time.UTC),
	}
	for _, next := range expected {
		actual, ok := csm.NextTriggerTime(time.UTC)
		assert.True(t, ok)
		assert.Equal(t, actual, next)
	}
	assert.Equal(t, csm.Value(), expected[len(expected)-1])
}

func TestCronStateMachineExhausted(t *testing.T) {
	t.Parallel()
	year := NewCommonNode(2024, 1970, 2025, []int{2025})
	month := NewCommonNode(1, 1, 12, []int{2})
	day := NewDayNode(1, DaysOfMonth([]int{30}), month, year)
	hour := NewCommonNode(0, 0, 23, nil)
	minute := NewCommonNode(0, 0, 59, nil)
	second := NewCommonNode(0, 0, 59, nil)
	csm := NewCronStateMachine(second, minute, hour, day, month, year)

	_, ok := csm.NextTriggerTime(time.UTC)
	assert.False(t, ok)
}

func seq(from, to int) []int {
	values := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, i)
	}
	return values
}
