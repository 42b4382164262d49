package formerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNestedArray indicates an array field whose item type is itself an
	// array. Arrays of arrays are not supported and abort the pass.
	ErrNestedArray = errors.New("arrays of arrays are not supported")

	// ErrUnreachableType indicates that scalar conversion was reached with
	// a non-scalar type. This signals a schema or dispatch inconsistency
	// and should never occur through normal dispatch.
	ErrUnreachableType = errors.New("unreachable field type")

	// ErrSchema indicates a schema definition failure.
	ErrSchema = errors.New("schema error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrSource indicates a value source lookup failure.
	ErrSource = errors.New("value source error")
)

// SchemaError represents a defect in a schema, either detected while
// loading a definition or while mapping against it.
type SchemaError struct {
	// Field is the schema field name involved, if known
	Field string
	// Path is the flat-key path where the defect was detected ("" if unknown)
	Path string
	// DeclaredType is the declared field type that triggered the defect
	DeclaredType string
	// Message describes the defect
	Message string
	// Sentinel classifies the defect: ErrNestedArray, ErrUnreachableType,
	// or ErrSchema
	Sentinel error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Field != "" {
		msg += " in field " + e.Field
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %q)", e.Path)
	}
	if e.DeclaredType != "" {
		msg += fmt.Sprintf(" [type %s]", e.DeclaredType)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns the classifying sentinel for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Sentinel
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema || (e.Sentinel != nil && target == e.Sentinel)
}

// ConfigError represents an invalid mapper configuration.
type ConfigError struct {
	// Option is the option name that was invalid
	Option string
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for option " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// SourceError represents a failed value source lookup.
type SourceError struct {
	// Key is the flat key whose lookup failed
	Key string
	// Cause is the underlying error from the value source
	Cause error
}

// Error returns a human-readable error message.
func (e *SourceError) Error() string {
	msg := "value source error"
	if e.Key != "" {
		msg += fmt.Sprintf(" for key %q", e.Key)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}
