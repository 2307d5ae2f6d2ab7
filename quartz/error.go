package quartz

import (
	"errors"
	"fmt"
	"strings"
)

// Errors
var (
	// ErrCronParse is matched by every error returned while constructing
	// a CronExpression.
	ErrCronParse = errors.New("parse cron expression")

	ErrMalformedExpression = errors.New("malformed expression")
	ErrUnknownFieldName    = errors.New("unknown field name")
	ErrValueOutOfRange     = errors.New("value out of range")
	ErrIllegalToken        = errors.New("illegal token")
	ErrConflictingFields   = errors.New("conflicting fields")
)

// CronParseError describes why a cron expression was rejected.
// It unwraps to ErrCronParse and to one of the kind errors
// (ErrMalformedExpression, ErrUnknownFieldName, ErrValueOutOfRange,
// ErrIllegalToken, ErrConflictingFields).
type CronParseError struct {
	// Err is the kind of the failure.
	Err error
	// Field is the field the failure was detected in, or NoField when
	// the failure concerns the expression as a whole.
	Field CronField
	// Token is the offending substring, if any.
	Token string
	// Message is a human-readable description of the failure.
	Message string
}

var _ error = (*CronParseError)(nil)

// Error implements the error interface.
func (e *CronParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", ErrCronParse, e.Err)
	if e.Field != NoField {
		fmt.Fprintf(&b, ": %s field", e.Field)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, ": %q", e.Token)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

// Unwrap returns the umbrella and the kind errors.
func (e *CronParseError) Unwrap() []error {
	return []error{ErrCronParse, e.Err}
}

// malformedError returns a cron parse error which unwraps to
// ErrMalformedExpression.
func malformedError(field CronField, token, format string, args ...any) error {
	return newCronParseError(ErrMalformedExpression, field, token, format, args...)
}

// unknownNameError returns a cron parse error which unwraps to
// ErrUnknownFieldName.
func unknownNameError(field CronField, token string) error {
	return newCronParseError(ErrUnknownFieldName, field, token,
		"expected one of %s", strings.Join(field.names(), ","))
}

// outOfRangeError returns a cron parse error which unwraps to
// ErrValueOutOfRange.
func outOfRangeError(field CronField, token, format string, args ...any) error {
	return newCronParseError(ErrValueOutOfRange, field, token, format, args...)
}

// illegalTokenError returns a cron parse error which unwraps to
// ErrIllegalToken.
func illegalTokenError(field CronField, token string) error {
	return newCronParseError(ErrIllegalToken, field, token,
		"special characters are not allowed in the %s field", field)
}

// conflictingFieldsError returns a cron parse error which unwraps to
// ErrConflictingFields.
func conflictingFieldsError(field CronField, token, format string, args ...any) error {
	return newCronParseError(ErrConflictingFields, field, token, format, args...)
}

func newCronParseError(kind error, field CronField, token, format string, args ...any) *CronParseError {
	return &CronParseError{
		Err:     kind,
		Field:   field,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}
