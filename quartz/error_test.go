package quartz

import (
	"errors"
	"testing"

	"github.com/reugn/go-quartz-cron/internal/assert"
)

func TestMalformedError(t *testing.T) {
	err := malformedError(Seconds, "0/a", "step must be a positive integer")
	assert.ErrorIs(t, err, ErrCronParse)
	assert.ErrorIs(t, err, ErrMalformedExpression)
	assert.False(t, errors.Is(err, ErrValueOutOfRange))
	assert.Equal(t, err.Error(),
		`parse cron expression: malformed expression: seconds field: "0/a": step must be a positive integer`)
}

func TestUnknownNameError(t *testing.T) {
	err := unknownNameError(Month, "Foo")
	assert.ErrorIs(t, err, ErrUnknownFieldName)
	assert.Equal(t, err.Error(),
		`parse cron expression: unknown field name: months field: "Foo": `+
			`expected one of JAN,FEB,MAR,APR,MAY,JUN,JUL,AUG,SEP,OCT,NOV,DEC`)
}

func TestOutOfRangeError(t *testing.T) {
	err := outOfRangeError(Hours, "102", "must be between %d and %d", 0, 23)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.Equal(t, err.Error(),
		`parse cron expression: value out of range: hours field: "102": must be between 0 and 23`)
}

func TestIllegalTokenError(t *testing.T) {
	err := illegalTokenError(Year, "?")
	assert.ErrorIs(t, err, ErrIllegalToken)
	assert.Equal(t, err.Error(),
		`parse cron expression: illegal token: years field: "?": special characters are not allowed in the years field`)
}

func TestConflictingFieldsError(t *testing.T) {
	err := conflictingFieldsError(NoField, "", "use '?' in one of the day fields")
	assert.ErrorIs(t, err, ErrConflictingFields)
	assert.Equal(t, err.Error(),
		`parse cron expression: conflicting fields: use '?' in one of the day fields`)

	var parseErr *CronParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, parseErr.Field, NoField)
}
