package quartz

import (
	"sort"
	"strconv"
	"strings"
)

// CronField identifies one of the seven positional fields of a cron
// expression.
//
//	<second> <minute> <hour> <day-of-month> <month> <day-of-week> [<year>]
type CronField int

// Cron expression fields, in positional order.
const (
	Seconds CronField = iota
	Minutes
	Hours
	DayOfMonth
	Month
	DayOfWeek
	Year

	// NoField is used by errors which are not tied to a single field.
	NoField CronField = -1
)

// fieldCount is the number of fields in a complete expression.
const fieldCount = 7

// defaultYearHorizon is the last year produced when expanding an open-ended
// year term such as "*/5" or "2020/2", and the last year an explicit year
// range may end with. Literal years are not limited by it.
const defaultYearHorizon = 2299

// maxYearHorizon is the largest configurable year horizon.
const maxYearHorizon = 9999

var (
	monthNames = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
		"JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	dayNames = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

// fieldInfo describes the bounds and capabilities of a field.
type fieldInfo struct {
	label string // summary label
	min   int
	max   int // 0 when unbounded
	names []string
	// day fields accept '?' and the L, W and # tokens
	dayField bool
	// cyclic fields accept wraparound ranges
	cyclic bool
}

var fieldTable = [fieldCount]fieldInfo{
	Seconds:    {label: "seconds", min: 0, max: 59, cyclic: true},
	Minutes:    {label: "minutes", min: 0, max: 59, cyclic: true},
	Hours:      {label: "hours", min: 0, max: 23, cyclic: true},
	DayOfMonth: {label: "daysOfMonth", min: 1, max: 31, dayField: true, cyclic: true},
	Month:      {label: "months", min: 1, max: 12, names: monthNames, cyclic: true},
	DayOfWeek:  {label: "daysOfWeek", min: 1, max: 7, names: dayNames, dayField: true, cyclic: true},
	Year:       {label: "years", min: 1970},
}

// String returns the summary label of the field.
func (f CronField) String() string {
	if f < Seconds || f > Year {
		return "unknown"
	}
	return fieldTable[f].label
}

func (f CronField) info() *fieldInfo {
	return &fieldTable[f]
}

func (f CronField) names() []string {
	return fieldTable[f].names
}

// lookupName resolves a three-letter month or weekday name to its
// 1-based ordinal. The name is expected to be upper case.
func (f CronField) lookupName(name string) (int, bool) {
	for i, v := range fieldTable[f].names {
		if v == name {
			return i + 1, true
		}
	}
	return 0, false
}

// SpecKind is the shape of a parsed field.
type SpecKind int

const (
	// AllValues is the '*' wildcard.
	AllValues SpecKind = iota
	// NoSpecificValue is the '?' placeholder of the day fields.
	NoSpecificValue
	// ValueList is an explicit set of values built from one or more terms.
	ValueList
)

// String returns a short name of the kind.
func (k SpecKind) String() string {
	switch k {
	case AllValues:
		return "all"
	case NoSpecificValue:
		return "unspecified"
	case ValueList:
		return "list"
	}
	return "unknown"
}

// special marks a day field term written with one of the L, W or # tokens.
type special int

const (
	noSpecial special = iota
	// "L" in the day-of-month field
	specialLastDay
	// "LW"
	specialLastWeekday
	// "<n>W"
	specialNearestWeekday
	// "L" alone in the day-of-week field, a synonym for SAT
	specialSaturday
	// "<n>L" in the day-of-week field
	specialLastOfWeekday
	// "<n>#<m>"
	specialNthOfWeekday
)

// fieldTerm is one comma separated component of a field.
type fieldTerm struct {
	raw     string
	values  []int
	special special
	nth     int
}

// FieldSpec is the parsed form of a single cron field. The zero value is
// an AllValues spec.
type FieldSpec struct {
	kind   SpecKind
	raw    string
	terms  []fieldTerm
	values []int
}

func newListSpec(raw string, terms []fieldTerm) FieldSpec {
	set := make(map[int]struct{})
	for _, term := range terms {
		for _, v := range term.values {
			set[v] = struct{}{}
		}
	}
	values := make([]int, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Ints(values)
	return FieldSpec{kind: ValueList, raw: raw, terms: terms, values: values}
}

// Kind returns the shape of the field.
func (s FieldSpec) Kind() SpecKind {
	return s.kind
}

// Raw returns the field text as it appeared in the expression.
func (s FieldSpec) Raw() string {
	if s.raw == "" && s.kind == AllValues {
		return "*"
	}
	return s.raw
}

// Values returns a copy of the sorted set of values of a ValueList field.
// It returns nil for AllValues and NoSpecificValue fields, and an empty
// slice for the "L" and "LW" day-of-month tokens.
func (s FieldSpec) Values() []int {
	if s.kind != ValueList {
		return nil
	}
	values := make([]int, len(s.values))
	copy(values, s.values)
	return values
}

// Contains reports whether the value is a member of a ValueList field.
func (s FieldSpec) Contains(value int) bool {
	i := sort.SearchInts(s.values, value)
	return i < len(s.values) && s.values[i] == value
}

// String renders the field the way it appears in the expression summary.
func (s FieldSpec) String() string {
	switch s.kind {
	case AllValues:
		return "*"
	case NoSpecificValue:
		return "?"
	}
	if len(s.values) == 0 {
		return s.raw
	}
	return joinInts(s.values, ",")
}

// specialTerm returns the special term of the field, if any.
func (s FieldSpec) specialTerm() (fieldTerm, bool) {
	for _, term := range s.terms {
		if term.special != noSpecial {
			return term, true
		}
	}
	return fieldTerm{}, false
}

func joinInts(values []int, sep string) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, sep)
}
