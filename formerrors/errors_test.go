package formerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError_NestedArray(t *testing.T) {
	err := &SchemaError{
		Field:        "tags",
		Path:         "customers_1_tags",
		DeclaredType: "array",
		Message:      "item type is array",
		Sentinel:     ErrNestedArray,
	}

	assert.True(t, errors.Is(err, ErrNestedArray))
	assert.True(t, errors.Is(err, ErrSchema))
	assert.False(t, errors.Is(err, ErrUnreachableType))
	assert.Contains(t, err.Error(), "tags")
	assert.Contains(t, err.Error(), "customers_1_tags")
}

func TestSchemaError_UnreachableType(t *testing.T) {
	err := &SchemaError{
		Field:        "extras",
		DeclaredType: "array",
		Message:      "conversion reached with non-scalar type",
		Sentinel:     ErrUnreachableType,
	}

	assert.True(t, errors.Is(err, ErrUnreachableType))
	assert.False(t, errors.Is(err, ErrNestedArray))
}

func TestSchemaError_As(t *testing.T) {
	var wrapped error = fmt.Errorf("mapping failed: %w", &SchemaError{
		Field:    "items",
		Sentinel: ErrNestedArray,
	})

	var schemaErr *SchemaError
	require.True(t, errors.As(wrapped, &schemaErr))
	assert.Equal(t, "items", schemaErr.Field)
	assert.True(t, errors.Is(wrapped, ErrNestedArray))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "delimiter", Message: "must not be empty"}

	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Equal(t, "configuration error for option delimiter: must not be empty", err.Error())
}

func TestSourceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &SourceError{Key: "customers_1_name", Cause: cause}

	assert.True(t, errors.Is(err, ErrSource))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "customers_1_name")
	assert.Contains(t, err.Error(), "connection reset")
}
