package csm

// DayMatcher reports whether the given day of the given month is a fire day.
// Months are 1-based and the day is always within the month.
type DayMatcher func(year, month, day int) bool

// EveryDay matches every day.
func EveryDay() DayMatcher {
	return func(_, _, _ int) bool {
		return true
	}
}

// DaysOfMonth matches the listed days of month.
func DaysOfMonth(days []int) DayMatcher {
	return func(_, _, day int) bool {
		return contains(days, day)
	}
}

// LastDayOfMonth matches the last day of every month.
func LastDayOfMonth() DayMatcher {
	return func(year, month, day int) bool {
		return day == lastDayOfMonth(year, month)
	}
}

// LastWeekdayOfMonth matches the last Monday to Friday day of every month.
func LastWeekdayOfMonth() DayMatcher {
	return func(year, month, day int) bool {
		last := makeDateTime(year, month, lastDayOfMonth(year, month))
		return day == closestWeekday(last)
	}
}

// NearestWeekday matches the Monday to Friday day closest to the given day
// of month, without leaving the month. Months shorter than the given day
// are skipped.
func NearestWeekday(dayOfMonth int) DayMatcher {
	return func(year, month, day int) bool {
		if dayOfMonth > lastDayOfMonth(year, month) {
			return false
		}
		return day == closestWeekday(makeDateTime(year, month, dayOfMonth))
	}
}

// DaysOfWeek matches the listed weekdays, numbered 1 (Sunday) to 7 (Saturday).
func DaysOfWeek(weekdays []int) DayMatcher {
	return func(year, month, day int) bool {
		return contains(weekdays, weekdayOf(year, month, day))
	}
}

// LastDayOfWeek matches the last occurrence of the weekday in every month.
func LastDayOfWeek(weekday int) DayMatcher {
	return func(year, month, day int) bool {
		return weekdayOf(year, month, day) == weekday &&
			day+7 > lastDayOfMonth(year, month)
	}
}

// NthDayOfWeek matches the n-th occurrence of the weekday in every month.
// Months with fewer occurrences are skipped.
func NthDayOfWeek(weekday, n int) DayMatcher {
	return func(year, month, day int) bool {
		return weekdayOf(year, month, day) == weekday && (day-1)/7+1 == n
	}
}

// weekdayOf returns the weekday numbered 1 (Sunday) to 7 (Saturday).
func weekdayOf(year, month, day int) int {
	return int(makeDateTime(year, month, day).Weekday()) + 1
}
