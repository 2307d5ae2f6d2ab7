package preview

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/reugn/go-quartz-cron/quartz"
)

var standardParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour |
	cron.Dom | cron.Month | cron.Dow)

// Standard translates the expression into the six-field dialect of
// github.com/robfig/cron/v3 (with seconds, SUN=0). Expressions using the
// L, W or # tokens, or restricting the year, have no such form.
func Standard(expr *quartz.CronExpression) (string, error) {
	switch {
	case expr.LastDayOfMonth(), expr.NearestWeekday(),
		expr.LastDayOfWeek(), expr.NthDayOfWeek() > 0:
		return "", fmt.Errorf("%w: %q uses L, W or #", ErrUnsupported, expr)
	case expr.Field(quartz.Year).Kind() != quartz.AllValues:
		return "", fmt.Errorf("%w: %q restricts the year", ErrUnsupported, expr)
	}

	parts := make([]string, 0, 6)
	for _, field := range []quartz.CronField{quartz.Seconds, quartz.Minutes,
		quartz.Hours, quartz.DayOfMonth, quartz.Month} {
		parts = append(parts, dialectField(expr.Field(field), 0))
	}
	parts = append(parts, dialectField(expr.Field(quartz.DayOfWeek), -1))
	return strings.Join(parts, " "), nil
}

// StandardSchedule translates the expression with Standard and parses it
// with robfig/cron, for consumers which schedule with that library.
func StandardSchedule(expr *quartz.CronExpression) (cron.Schedule, error) {
	spec, err := Standard(expr)
	if err != nil {
		return nil, err
	}
	schedule, err := standardParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupported, spec, err)
	}
	return schedule, nil
}
