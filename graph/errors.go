package graph

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the runtime surface of generated code.
var (
	// ErrMissingResolver is returned when a resolver-method dispatch key
	// has no registered implementation at query time.
	ErrMissingResolver = errors.New("graph: resolver not registered")

	// ErrInvalidEnumValue is returned when a record holds a wire string
	// that matches no constant of the expected enum type.
	ErrInvalidEnumValue = errors.New("graph: invalid enum value")
)

// MissingResolverError reports a resolver-method dispatch key with no
// registered callback. Synthesis always succeeds regardless of whether
// the registry will later be populated; this error surfaces only when a
// query actually executes.
type MissingResolverError struct {
	Key string
}

// Error returns the error string.
func (e *MissingResolverError) Error() string {
	return fmt.Sprintf("graph: no resolver registered for %q", e.Key)
}

// Is reports whether the target matches the sentinel for MissingResolverError.
func (e *MissingResolverError) Is(err error) bool {
	return err == ErrMissingResolver
}

// NewMissingResolverError returns a new MissingResolverError for the
// given composite "ClassName.methodName" key.
func NewMissingResolverError(key string) *MissingResolverError {
	return &MissingResolverError{Key: key}
}

// InvalidEnumValueError reports a wire string that matches no constant
// of the expected enum type.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

// Error returns the error string.
func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("graph: value %q matches no constant of enum %q", e.Value, e.Enum)
}

// Is reports whether the target matches the sentinel for InvalidEnumValueError.
func (e *InvalidEnumValueError) Is(err error) bool {
	return err == ErrInvalidEnumValue
}

// NewInvalidEnumValueError returns a new InvalidEnumValueError.
func NewInvalidEnumValueError(enum, value string) *InvalidEnumValueError {
	return &InvalidEnumValueError{Enum: enum, Value: value}
}

// IsMissingResolverError reports whether the error is a MissingResolverError.
func IsMissingResolverError(err error) bool {
	var mre *MissingResolverError
	return errors.As(err, &mre)
}

// IsInvalidEnumValueError reports whether the error is an InvalidEnumValueError.
func IsInvalidEnumValueError(err error) bool {
	var iev *InvalidEnumValueError
	return errors.As(err, &iev)
}
