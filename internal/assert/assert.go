// Package assert provides the generic test assertions used across the
// module's tests.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Equal verifies that two values are deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies that two values are not deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// IsNil verifies that the value is nil.
func IsNil(t *testing.T, a any) {
	t.Helper()
	if !isNil(a) {
		t.Fatalf("%v is not nil", a)
	}
}

// NotNil verifies that the value is not nil.
func NotNil(t *testing.T, a any) {
	t.Helper()
	if isNil(a) {
		t.Fatal("value is nil")
	}
}

// ErrorIs verifies that err matches target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

// True verifies that the condition holds.
func True(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("condition is false")
	}
}

// False verifies that the condition does not hold.
func False(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Fatal("condition is true")
	}
}

// Contains verifies that s contains substr.
func Contains(t *testing.T, s string, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%q does not contain %q", s, substr)
	}
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	switch v := reflect.ValueOf(a); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
