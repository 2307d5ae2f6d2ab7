// Package preview computes upcoming fire times of a validated cron
// expression. NextN walks the parsed field model directly. Compile and
// StandardSchedule translate it for github.com/gorhill/cronexpr and
// github.com/robfig/cron/v3, for consumers which schedule with those
// libraries.
package preview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/reugn/go-quartz-cron/quartz"
)

// The year window supported by cronexpr.
const (
	minYear = 1970
	maxYear = 2099
)

// ErrUnsupported is returned when an expression cannot be represented in
// the dialect of another cron library.
var ErrUnsupported = errors.New("unsupported dialect")

// Dialect translates the expression into the seven-field cronexpr dialect:
// day-of-week values are 0-based (SUN=0), '?' becomes '*', and year values
// are limited to 1970-2099.
func Dialect(expr *quartz.CronExpression) (string, error) {
	parts := make([]string, 0, 7)
	for _, field := range []quartz.CronField{quartz.Seconds, quartz.Minutes,
		quartz.Hours, quartz.DayOfMonth, quartz.Month} {
		parts = append(parts, dialectField(expr.Field(field), 0))
	}

	// day-of-month tokens
	switch dom := expr.Field(quartz.DayOfMonth); {
	case expr.LastDayOfMonth() && expr.NearestWeekday():
		parts[quartz.DayOfMonth] = "LW"
	case expr.LastDayOfMonth():
		parts[quartz.DayOfMonth] = "L"
	case expr.NearestWeekday():
		parts[quartz.DayOfMonth] = strconv.Itoa(dom.Values()[0]) + "W"
	}

	dow := expr.Field(quartz.DayOfWeek)
	switch {
	case expr.LastDayOfWeek():
		parts = append(parts, strconv.Itoa(dow.Values()[0]-1)+"L")
	case expr.NthDayOfWeek() > 0:
		parts = append(parts, fmt.Sprintf("%d#%d", dow.Values()[0]-1, expr.NthDayOfWeek()))
	default:
		parts = append(parts, dialectField(dow, -1))
	}

	year, err := dialectYear(expr.Field(quartz.Year))
	if err != nil {
		return "", err
	}
	parts = append(parts, year)
	return strings.Join(parts, " "), nil
}

func dialectField(spec quartz.FieldSpec, offset int) string {
	if spec.Kind() != quartz.ValueList {
		return "*"
	}
	values := spec.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v + offset)
	}
	return strings.Join(s, ",")
}

func dialectYear(spec quartz.FieldSpec) (string, error) {
	if spec.Kind() != quartz.ValueList {
		return "*", nil
	}
	years := make([]string, 0)
	for _, year := range spec.Values() {
		if year >= minYear && year <= maxYear {
			years = append(years, strconv.Itoa(year))
		}
	}
	if len(years) == 0 {
		return "", fmt.Errorf("%w: years %s are outside %d-%d",
			ErrUnsupported, spec, minYear, maxYear)
	}
	return strings.Join(years, ","), nil
}

// Compile translates the expression with Dialect and compiles it with
// cronexpr.
func Compile(expr *quartz.CronExpression) (*cronexpr.Expression, error) {
	line, err := Dialect(expr)
	if err != nil {
		return nil, err
	}
	schedule, err := cronexpr.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupported, line, err)
	}
	return schedule, nil
}

// CompatNextN returns up to n fire times strictly after from, as computed
// by cronexpr. Years after 2099 are never produced.
func CompatNextN(expr *quartz.CronExpression, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	schedule, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return schedule.NextN(from, uint(n)), nil
}
