package quartz

import (
	"github.com/reugn/go-quartz-cron/logger"
)

// CronExpression represents a parsed and validated Quartz cron expression.
//
// An expression is made up of six or seven fields separated by white space:
//
//	Field Name     Mandatory   Allowed Values          Allowed Special Characters
//	----------     ---------   --------------          --------------------------
//	Seconds        YES         0-59                    , - * /
//	Minutes        YES         0-59                    , - * /
//	Hours          YES         0-23                    , - * /
//	Day of month   YES         1-31                    , - * ? / L W
//	Month          YES         1-12 or JAN-DEC         , - * /
//	Day of week    YES         1-7 or SUN-SAT          , - * ? / L #
//	Year           NO          1970 and later, empty   , - * /
//
// Exactly one of the day-of-month and day-of-week fields must be '?'.
// A CronExpression is immutable and safe for concurrent use.
type CronExpression struct {
	expression string
	fields     [fieldCount]FieldSpec

	lastDayOfWeek  bool
	nearestWeekday bool
	nthDayOfWeek   int
	lastDayOfMonth bool
}

// ParserOptions configures a Parser.
type ParserOptions struct {
	// Logger receives a trace record for every accepted expression and a
	// debug record for every rejected one. Defaults to logger.NoOpLogger.
	Logger logger.Logger

	// YearHorizon is the last year produced when expanding open-ended
	// year terms such as "*/4" or "2024/2", and the last year an explicit
	// range such as "2024-2030" may end with. Literal years are not limited
	// by it. Defaults to 2299, and is capped at 9999.
	YearHorizon int
}

// Parser constructs CronExpressions. It is safe for concurrent use.
type Parser struct {
	logger      logger.Logger
	yearHorizon int
}

// NewParser returns a new Parser with the default configuration.
func NewParser() *Parser {
	return NewParserWithOptions(ParserOptions{})
}

// NewParserWithOptions returns a new Parser configured as specified.
func NewParserWithOptions(opts ParserOptions) *Parser {
	p := &Parser{
		logger:      opts.Logger,
		yearHorizon: opts.YearHorizon,
	}
	if p.logger == nil {
		p.logger = logger.NoOpLogger{}
	}
	switch {
	case p.yearHorizon < fieldTable[Year].min:
		p.yearHorizon = defaultYearHorizon
	case p.yearHorizon > maxYearHorizon:
		p.yearHorizon = maxYearHorizon
	}
	return p
}

var defaultParser = NewParser()

// NewCronExpression parses and validates the expression using the default
// Parser. The returned error unwraps to ErrCronParse and to the kind of
// the failure.
func NewCronExpression(expression string) (*CronExpression, error) {
	return defaultParser.Parse(expression)
}

// IsValidExpression reports whether the expression can be parsed.
func IsValidExpression(expression string) bool {
	return defaultParser.IsValid(expression)
}

// Parse parses and validates the expression.
func (p *Parser) Parse(expression string) (*CronExpression, error) {
	expr, err := p.parse(expression)
	if err != nil {
		p.logger.Debug("Rejected cron expression", "expression", expression, "error", err)
		return nil, err
	}
	p.logger.Trace("Parsed cron expression", "expression", expression)
	return expr, nil
}

// IsValid reports whether the expression can be parsed. It does not log.
func (p *Parser) IsValid(expression string) bool {
	_, err := p.parse(expression)
	return err == nil
}

func (p *Parser) parse(expression string) (*CronExpression, error) {
	tokens, err := splitFields(expression)
	if err != nil {
		return nil, err
	}

	var specs [fieldCount]FieldSpec
	for i, token := range tokens {
		specs[i], err = newFieldParser(CronField(i), p.yearHorizon).parse(token)
		if err != nil {
			return nil, err
		}
	}

	if err := validateFields(&specs); err != nil {
		return nil, err
	}
	return newCronExpression(expression, specs), nil
}

func newCronExpression(expression string, specs [fieldCount]FieldSpec) *CronExpression {
	expr := &CronExpression{
		expression: expression,
		fields:     specs,
	}
	if term, ok := specs[DayOfMonth].specialTerm(); ok {
		switch term.special {
		case specialLastDay:
			expr.lastDayOfMonth = true
		case specialLastWeekday:
			expr.lastDayOfMonth = true
			expr.nearestWeekday = true
		case specialNearestWeekday:
			expr.nearestWeekday = true
		}
	}
	if term, ok := specs[DayOfWeek].specialTerm(); ok {
		switch term.special {
		case specialLastOfWeekday:
			expr.lastDayOfWeek = true
		case specialNthOfWeekday:
			expr.nthDayOfWeek = term.nth
		}
	}
	return expr
}

// Field returns the parsed form of the given field.
func (c *CronExpression) Field(field CronField) FieldSpec {
	if field < Seconds || field > Year {
		return FieldSpec{}
	}
	return c.fields[field]
}

// LastDayOfWeek reports whether the day-of-week field selects the last
// occurrence of a weekday in the month, e.g. "6L".
func (c *CronExpression) LastDayOfWeek() bool {
	return c.lastDayOfWeek
}

// NearestWeekday reports whether the day-of-month field uses the W token.
func (c *CronExpression) NearestWeekday() bool {
	return c.nearestWeekday
}

// NthDayOfWeek returns n for a day-of-week field of the form "<day>#<n>",
// and 0 otherwise.
func (c *CronExpression) NthDayOfWeek() int {
	return c.nthDayOfWeek
}

// LastDayOfMonth reports whether the day-of-month field is "L" or "LW".
func (c *CronExpression) LastDayOfMonth() bool {
	return c.lastDayOfMonth
}
