package quartz

import (
	"strings"
)

// splitFields splits the expression on runs of whitespace. The year field
// is optional and defaults to '*'.
func splitFields(expression string) ([fieldCount]string, error) {
	var result [fieldCount]string
	tokens := strings.Fields(expression)
	if len(tokens) == 0 {
		return result, malformedError(NoField, "", "expression is empty")
	}
	if len(tokens) < fieldCount-1 || len(tokens) > fieldCount {
		return result, malformedError(NoField, "",
			"expected %d or %d fields, found %d", fieldCount-1, fieldCount, len(tokens))
	}
	copy(result[:], tokens)
	if len(tokens) == fieldCount-1 {
		result[Year] = "*"
	}
	return result, nil
}

// fieldParser parses the text of a single field.
type fieldParser struct {
	field       CronField
	info        *fieldInfo
	yearHorizon int
}

func newFieldParser(field CronField, yearHorizon int) *fieldParser {
	return &fieldParser{
		field:       field,
		info:        field.info(),
		yearHorizon: yearHorizon,
	}
}

// parse parses a field into a FieldSpec. Special day tokens are accepted
// inside lists here; their combination with other terms is rejected by
// the cross-field validation.
func (p *fieldParser) parse(raw string) (FieldSpec, error) {
	switch raw {
	case "?":
		if !p.info.dayField {
			return FieldSpec{}, illegalTokenError(p.field, raw)
		}
		return FieldSpec{kind: NoSpecificValue, raw: raw}, nil
	case "*":
		return FieldSpec{kind: AllValues, raw: raw}, nil
	}

	parts := strings.Split(raw, ",")
	terms := make([]fieldTerm, 0, len(parts))
	for _, part := range parts {
		term, err := p.parseTerm(part)
		if err != nil {
			return FieldSpec{}, err
		}
		terms = append(terms, term)
	}
	return newListSpec(raw, terms), nil
}

func (p *fieldParser) parseTerm(raw string) (fieldTerm, error) {
	term := strings.ToUpper(raw)
	if term == "" {
		return fieldTerm{}, malformedError(p.field, raw, "empty list element")
	}

	switch p.field {
	case DayOfMonth:
		if t, ok, err := p.parseDayOfMonthSpecial(raw, term); ok || err != nil {
			return t, err
		}
	case DayOfWeek:
		if t, ok, err := p.parseDayOfWeekSpecial(raw, term); ok || err != nil {
			return t, err
		}
	default:
		if isSpecialToken(term) {
			return fieldTerm{}, illegalTokenError(p.field, raw)
		}
	}

	values, err := p.parseRange(raw, term)
	if err != nil {
		return fieldTerm{}, err
	}
	return fieldTerm{raw: raw, values: values}, nil
}

// parseDayOfMonthSpecial recognizes the L, LW and <n>W tokens.
func (p *fieldParser) parseDayOfMonthSpecial(raw, term string) (fieldTerm, bool, error) {
	switch {
	case term == "?":
		return fieldTerm{}, false, conflictingFieldsError(p.field, raw,
			"'?' must be the entire field")
	case strings.Contains(term, "#"):
		return fieldTerm{}, false, illegalTokenError(p.field, raw)
	case term == "L":
		return fieldTerm{raw: raw, special: specialLastDay}, true, nil
	case term == "LW":
		return fieldTerm{raw: raw, special: specialLastWeekday}, true, nil
	case strings.HasSuffix(term, "W") && isDigits(term[:len(term)-1]):
		day, err := p.parseValue(raw, term[:len(term)-1])
		if err != nil {
			return fieldTerm{}, false, err
		}
		return fieldTerm{raw: raw, values: []int{day}, special: specialNearestWeekday}, true, nil
	case strings.ContainsAny(term, "LW"):
		return fieldTerm{}, false, malformedError(p.field, raw,
			"expected L, LW or <day>W")
	}
	return fieldTerm{}, false, nil
}

// parseDayOfWeekSpecial recognizes the L, <n>L and <n>#<m> tokens.
func (p *fieldParser) parseDayOfWeekSpecial(raw, term string) (fieldTerm, bool, error) {
	switch {
	case term == "?":
		return fieldTerm{}, false, conflictingFieldsError(p.field, raw,
			"'?' must be the entire field")
	case term == "L":
		return fieldTerm{raw: raw, values: []int{7}, special: specialSaturday}, true, nil
	case strings.Contains(term, "#"):
		day, nth, found := strings.Cut(term, "#")
		if !found || strings.Contains(nth, "#") || !isDigits(nth) {
			return fieldTerm{}, false, malformedError(p.field, raw,
				"expected <weekday>#<n>")
		}
		weekday, err := p.parseValue(raw, day)
		if err != nil {
			return fieldTerm{}, false, err
		}
		n, ok := atoi(nth)
		if !ok || n < 1 || n > 5 {
			return fieldTerm{}, false, outOfRangeError(p.field, raw,
				"occurrence must be between 1 and 5")
		}
		return fieldTerm{
			raw:     raw,
			values:  []int{weekday},
			special: specialNthOfWeekday,
			nth:     n,
		}, true, nil
	case strings.HasSuffix(term, "L"):
		day := term[:len(term)-1]
		if strings.ContainsAny(day, "-/") {
			return fieldTerm{}, false, malformedError(p.field, raw,
				"expected <weekday>L")
		}
		weekday, err := p.parseValue(raw, day)
		if err != nil {
			return fieldTerm{}, false, err
		}
		return fieldTerm{raw: raw, values: []int{weekday}, special: specialLastOfWeekday}, true, nil
	case strings.HasSuffix(term, "W") && (term == "W" || term == "LW" || isDigits(term[:len(term)-1])):
		return fieldTerm{}, false, illegalTokenError(p.field, raw)
	}
	return fieldTerm{}, false, nil
}

// parseRange parses a value, a range or a stepped term and expands it
// into its member values.
func (p *fieldParser) parseRange(raw, term string) ([]int, error) {
	base, stepText, hasStep := strings.Cut(term, "/")
	step := 1
	if hasStep {
		if !isDigits(stepText) {
			return nil, malformedError(p.field, raw, "step must be a positive integer")
		}
		var ok bool
		step, ok = atoi(stepText)
		if !ok || step == 0 || (p.info.max > 0 && step > p.info.max) {
			if p.info.max > 0 {
				return nil, outOfRangeError(p.field, raw,
					"step must be between 1 and %d", p.info.max)
			}
			return nil, outOfRangeError(p.field, raw, "step must be greater than 0")
		}
	}

	if base == "*" {
		return fillRange(p.info.min, p.upperBound(p.info.min), step), nil
	}

	if from, to, isRange := strings.Cut(base, "-"); isRange {
		if strings.Contains(to, "-") {
			return nil, malformedError(p.field, raw, "too many hyphens")
		}
		start, err := p.parseValue(raw, from)
		if err != nil {
			return nil, err
		}
		end, err := p.parseValue(raw, to)
		if err != nil {
			return nil, err
		}
		if start > end {
			if !p.info.cyclic {
				return nil, malformedError(p.field, raw,
					"range start %d is after range end %d", start, end)
			}
			return fillWrappedRange(start, end, step, p.info.min, p.info.max), nil
		}
		if p.info.max == 0 && end > p.yearHorizon {
			return nil, outOfRangeError(p.field, raw,
				"range must end by the year horizon %d", p.yearHorizon)
		}
		return fillRange(start, end, step), nil
	}

	value, err := p.parseValue(raw, base)
	if err != nil {
		return nil, err
	}
	if !hasStep {
		return []int{value}, nil
	}
	return fillRange(value, p.upperBound(value), step), nil
}

// parseValue resolves a number or a name and validates it against the
// bounds of the field.
func (p *fieldParser) parseValue(raw, s string) (int, error) {
	var value int
	switch {
	case s == "":
		return 0, malformedError(p.field, raw, "missing value")
	case isDigits(s):
		var ok bool
		if value, ok = atoi(s); !ok {
			return 0, p.outOfRange(raw)
		}
	case len(p.info.names) > 0 && isLetters(s):
		var ok bool
		if value, ok = p.field.lookupName(s); !ok {
			return 0, unknownNameError(p.field, raw)
		}
	default:
		return 0, malformedError(p.field, raw, "invalid value %q", s)
	}

	if value < p.info.min || (p.info.max > 0 && value > p.info.max) {
		return 0, p.outOfRange(raw)
	}
	return value, nil
}

func (p *fieldParser) outOfRange(raw string) error {
	if p.info.max == 0 {
		return outOfRangeError(p.field, raw, "must be at least %d", p.info.min)
	}
	return outOfRangeError(p.field, raw, "must be between %d and %d", p.info.min, p.info.max)
}

// upperBound returns the last value of an open-ended term starting at from.
func (p *fieldParser) upperBound(from int) int {
	if p.info.max > 0 {
		return p.info.max
	}
	if from > p.yearHorizon {
		return from
	}
	return p.yearHorizon
}
