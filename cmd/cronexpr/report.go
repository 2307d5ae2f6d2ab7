package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reugn/go-quartz-cron/preview"
	"github.com/reugn/go-quartz-cron/quartz"
)

// report is the outcome of checking a single expression.
type report struct {
	Expression string   `yaml:"expression"`
	Valid      bool     `yaml:"valid"`
	Kind       string   `yaml:"kind,omitempty"`
	Error      string   `yaml:"error,omitempty"`
	Canonical  string   `yaml:"canonical,omitempty"`
	Summary    *summary `yaml:"summary,omitempty"`
	Next       []string `yaml:"next,omitempty"`
	Dialect    string   `yaml:"dialect,omitempty"`

	// ExpressionSummary text for the text output
	summaryText string
}

// summary mirrors CronExpression.ExpressionSummary in structured form.
type summary struct {
	Seconds        string `yaml:"seconds"`
	Minutes        string `yaml:"minutes"`
	Hours          string `yaml:"hours"`
	DaysOfMonth    string `yaml:"daysOfMonth"`
	Months         string `yaml:"months"`
	DaysOfWeek     string `yaml:"daysOfWeek"`
	LastDayOfWeek  bool   `yaml:"lastdayOfWeek"`
	NearestWeekday bool   `yaml:"nearestWeekday"`
	NthDayOfWeek   int    `yaml:"NthDayOfWeek"`
	LastDayOfMonth bool   `yaml:"lastdayOfMonth"`
	Years          string `yaml:"years"`
}

func newReport(parser *quartz.Parser, expression string, opts *options, from time.Time) *report {
	r := &report{Expression: expression}
	expr, err := parser.Parse(expression)
	if err != nil {
		r.Kind = errorKind(err)
		r.Error = err.Error()
		return r
	}
	r.Valid = true

	if opts.canonical {
		r.Canonical = expr.Canonical()
	}
	if opts.summary {
		r.Summary = newSummary(expr)
		r.summaryText = expr.ExpressionSummary()
	}
	for _, t := range preview.NextN(expr, from, opts.next) {
		r.Next = append(r.Next, t.Format(time.RFC3339))
	}
	if opts.dialect != "" {
		r.Dialect = dialect(expr, opts.dialect)
	}
	return r
}

func newSummary(expr *quartz.CronExpression) *summary {
	return &summary{
		Seconds:        expr.Field(quartz.Seconds).String(),
		Minutes:        expr.Field(quartz.Minutes).String(),
		Hours:          expr.Field(quartz.Hours).String(),
		DaysOfMonth:    expr.Field(quartz.DayOfMonth).String(),
		Months:         expr.Field(quartz.Month).String(),
		DaysOfWeek:     expr.Field(quartz.DayOfWeek).String(),
		LastDayOfWeek:  expr.LastDayOfWeek(),
		NearestWeekday: expr.NearestWeekday(),
		NthDayOfWeek:   expr.NthDayOfWeek(),
		LastDayOfMonth: expr.LastDayOfMonth(),
		Years:          expr.Field(quartz.Year).String(),
	}
}

// dialect returns the expression in the named dialect, or the reason it
// has no such form.
func dialect(expr *quartz.CronExpression, name string) string {
	translate := preview.Dialect
	if name == "robfig" {
		translate = preview.Standard
	}
	line, err := translate(expr)
	if err != nil {
		return err.Error()
	}
	return line
}

var errorKinds = []struct {
	err  error
	name string
}{
	{quartz.ErrMalformedExpression, "MalformedExpression"},
	{quartz.ErrUnknownFieldName, "UnknownFieldName"},
	{quartz.ErrValueOutOfRange, "ValueOutOfRange"},
	{quartz.ErrIllegalToken, "IllegalToken"},
	{quartz.ErrConflictingFields, "ConflictingFields"},
}

// errorKind returns the name of the failure kind err unwraps to.
func errorKind(err error) string {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "Unknown"
}

func writeText(w io.Writer, reports []*report, styles *palette) error {
	var b strings.Builder
	for _, r := range reports {
		b.Reset()
		if !r.Valid {
			fmt.Fprintf(&b, "%s: %s: %s\n", r.Expression, styles.invalid.Render("invalid"), r.Error)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", r.Expression, styles.valid.Render("valid"))
			if r.Canonical != "" {
				fmt.Fprintf(&b, "  canonical: %s\n", r.Canonical)
			}
			for _, line := range strings.SplitAfter(r.summaryText, "\n") {
				if line != "" {
					b.WriteString("  " + line)
				}
			}
			for _, next := range r.Next {
				fmt.Fprintf(&b, "  next: %s\n", next)
			}
			if r.Dialect != "" {
				fmt.Fprintf(&b, "  dialect: %s\n", r.Dialect)
			}
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, reports []*report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
