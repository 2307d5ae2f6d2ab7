package preview

import (
	"time"

	"github.com/reugn/go-quartz-cron/internal/csm"
	"github.com/reugn/go-quartz-cron/quartz"
)

// lastYear bounds the search of expressions with an open year field.
const lastYear = 9999

// preallocLimit caps the capacity reserved up front by NextN.
const preallocLimit = 64

// NextN returns up to n fire times of the expression strictly after from,
// as wall clock times in the location of from. Fewer than n times are
// returned when the schedule runs out, for example when every listed year
// has passed.
func NextN(expr *quartz.CronExpression, from time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	machine := newStateMachine(expr, from)
	times := make([]time.Time, 0, min(n, preallocLimit))
	for len(times) < n {
		next, ok := machine.NextTriggerTime(from.Location())
		if !ok {
			break
		}
		times = append(times, next)
	}
	return times
}

// Next returns the first fire time of the expression strictly after from.
// It returns false if there is none.
func Next(expr *quartz.CronExpression, from time.Time) (time.Time, bool) {
	times := NextN(expr, from, 1)
	if len(times) == 0 {
		return time.Time{}, false
	}
	return times[0], true
}

func newStateMachine(expr *quartz.CronExpression, from time.Time) *csm.CronStateMachine {
	years := expr.Field(quartz.Year).Values()
	yearMax := lastYear
	if len(years) > 0 && years[len(years)-1] > yearMax {
		yearMax = years[len(years)-1]
	}

	year := csm.NewCommonNode(from.Year(), minYear, yearMax, years)
	month := csm.NewCommonNode(int(from.Month()), 1, 12, expr.Field(quartz.Month).Values())
	day := csm.NewDayNode(from.Day(), dayMatcher(expr), month, year)
	hour := csm.NewCommonNode(from.Hour(), 0, 23, expr.Field(quartz.Hours).Values())
	minute := csm.NewCommonNode(from.Minute(), 0, 59, expr.Field(quartz.Minutes).Values())
	second := csm.NewCommonNode(from.Second(), 0, 59, expr.Field(quartz.Seconds).Values())

	return csm.NewCronStateMachine(second, minute, hour, day, month, year)
}

// dayMatcher selects the days from whichever day field is not '?'.
func dayMatcher(expr *quartz.CronExpression) csm.DayMatcher {
	dom := expr.Field(quartz.DayOfMonth)
	if dom.Kind() != quartz.NoSpecificValue {
		switch {
		case expr.LastDayOfMonth() && expr.NearestWeekday():
			return csm.LastWeekdayOfMonth()
		case expr.LastDayOfMonth():
			return csm.LastDayOfMonth()
		case expr.NearestWeekday():
			return csm.NearestWeekday(dom.Values()[0])
		case dom.Kind() == quartz.AllValues:
			return csm.EveryDay()
		}
		return csm.DaysOfMonth(dom.Values())
	}

	dow := expr.Field(quartz.DayOfWeek)
	switch {
	case expr.LastDayOfWeek():
		return csm.LastDayOfWeek(dow.Values()[0])
	case expr.NthDayOfWeek() > 0:
		return csm.NthDayOfWeek(dow.Values()[0], expr.NthDayOfWeek())
	case dow.Kind() == quartz.AllValues:
		return csm.EveryDay()
	}
	return csm.DaysOfWeek(dow.Values())
}
