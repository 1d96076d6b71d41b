// Package gen compiles linked declarations into GraphQL schema-type
// descriptors and the Go source that rebuilds them at program startup.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrTypeInference indicates a declared type no inference rule accepts.
	ErrTypeInference = errors.New("graphgen: type inference failed")
	// ErrInvalidUsage indicates a marker used outside its supported position.
	ErrInvalidUsage = errors.New("graphgen: invalid marker usage")
	// ErrEmptyUnion indicates a union declaration with no member types.
	ErrEmptyUnion = errors.New("graphgen: empty union")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("graphgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("graphgen: code generation failed")
)

// TypeInferenceError reports a declared type that matched no inference
// rule. Owner and Member locate the declaration site.
type TypeInferenceError struct {
	Owner  string
	Member string
	Type   string
}

// Error implements the error interface.
func (e *TypeInferenceError) Error() string {
	var b strings.Builder
	b.WriteString("graphgen: cannot infer schema type")
	if e.Type != "" {
		fmt.Fprintf(&b, " for %s", e.Type)
	}
	if e.Owner != "" {
		fmt.Fprintf(&b, " on %s", e.Owner)
		if e.Member != "" {
			fmt.Fprintf(&b, ".%s", e.Member)
		}
	} else if e.Member != "" {
		fmt.Fprintf(&b, " on %s", e.Member)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for TypeInferenceError.
func (e *TypeInferenceError) Is(target error) bool {
	return target == ErrTypeInference
}

// NewTypeInferenceError creates a new TypeInferenceError.
func NewTypeInferenceError(owner, member, typeName string) *TypeInferenceError {
	return &TypeInferenceError{
		Owner:  owner,
		Member: member,
		Type:   typeName,
	}
}

// InvalidUsageError reports a marker used in a position the schema model
// does not support, such as a union referenced as an input field type.
type InvalidUsageError struct {
	Owner   string
	Member  string
	Message string
}

// Error implements the error interface.
func (e *InvalidUsageError) Error() string {
	var b strings.Builder
	b.WriteString("graphgen: invalid usage")
	if e.Owner != "" {
		fmt.Fprintf(&b, " on %s", e.Owner)
		if e.Member != "" {
			fmt.Fprintf(&b, ".%s", e.Member)
		}
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for InvalidUsageError.
func (e *InvalidUsageError) Is(target error) bool {
	return target == ErrInvalidUsage
}

// NewInvalidUsageError creates a new InvalidUsageError.
func NewInvalidUsageError(owner, member, message string) *InvalidUsageError {
	return &InvalidUsageError{
		Owner:   owner,
		Member:  member,
		Message: message,
	}
}

// EmptyUnionError reports a union declaration whose member list resolved
// to nothing.
type EmptyUnionError struct {
	Union string
}

// Error implements the error interface.
func (e *EmptyUnionError) Error() string {
	return fmt.Sprintf("graphgen: union %q has no member types", e.Union)
}

// Is reports whether the target matches the sentinel error for EmptyUnionError.
func (e *EmptyUnionError) Is(target error) bool {
	return target == ErrEmptyUnion
}

// NewEmptyUnionError creates a new EmptyUnionError.
func NewEmptyUnionError(union string) *EmptyUnionError {
	return &EmptyUnionError{Union: union}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("graphgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("graphgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "plan", "render", "write", "sdl", "snapshot"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("graphgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsTypeInferenceError reports whether the error is a TypeInferenceError.
func IsTypeInferenceError(err error) bool {
	var infErr *TypeInferenceError
	return errors.As(err, &infErr)
}

// IsInvalidUsageError reports whether the error is an InvalidUsageError.
func IsInvalidUsageError(err error) bool {
	var usageErr *InvalidUsageError
	return errors.As(err, &usageErr)
}

// IsEmptyUnionError reports whether the error is an EmptyUnionError.
func IsEmptyUnionError(err error) bool {
	var unionErr *EmptyUnionError
	return errors.As(err, &unionErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
