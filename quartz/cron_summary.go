package quartz

import (
	"fmt"
	"strings"
)

// String returns the expression exactly as it was given.
func (c *CronExpression) String() string {
	return c.expression
}

// CronExpression returns the expression exactly as it was given.
func (c *CronExpression) CronExpression() string {
	return c.expression
}

// ExpressionSummary returns a field by field description of the parsed
// expression, one "name: value" line per field.
func (c *CronExpression) ExpressionSummary() string {
	var b strings.Builder
	for _, field := range []CronField{Seconds, Minutes, Hours, DayOfMonth, Month, DayOfWeek} {
		fmt.Fprintf(&b, "%s: %s\n", field, c.fields[field])
	}
	fmt.Fprintf(&b, "lastdayOfWeek: %t\n", c.lastDayOfWeek)
	fmt.Fprintf(&b, "nearestWeekday: %t\n", c.nearestWeekday)
	fmt.Fprintf(&b, "NthDayOfWeek: %d\n", c.nthDayOfWeek)
	fmt.Fprintf(&b, "lastdayOfMonth: %t\n", c.lastDayOfMonth)
	fmt.Fprintf(&b, "%s: %s\n", Year, c.fields[Year])
	return b.String()
}

// Canonical re-serializes the parsed expression as seven fields with names,
// ranges and steps resolved into value lists. Parsing the result yields an
// equivalent expression.
func (c *CronExpression) Canonical() string {
	parts := make([]string, fieldCount)
	for i, spec := range c.fields {
		parts[i] = canonicalField(spec)
	}
	return strings.Join(parts, " ")
}

func canonicalField(spec FieldSpec) string {
	switch spec.kind {
	case AllValues:
		return "*"
	case NoSpecificValue:
		return "?"
	}
	if term, ok := spec.specialTerm(); ok {
		switch term.special {
		case specialLastDay:
			return "L"
		case specialLastWeekday:
			return "LW"
		case specialNearestWeekday:
			return fmt.Sprintf("%dW", term.values[0])
		case specialSaturday:
			return "L"
		case specialLastOfWeekday:
			return fmt.Sprintf("%dL", term.values[0])
		case specialNthOfWeekday:
			return fmt.Sprintf("%d#%d", term.values[0], term.nth)
		}
	}
	return joinInts(spec.values, ",")
}
