package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
fields:
  name: string
  age: integer
  customers:
    type: array
    items:
      type: customer
      entity:
        fields:
          name: string
`

func TestHandleMapFields(t *testing.T) {
	input := mapFieldsInput{
		Schema: testSchema,
		Source: map[string]any{
			"name":             "jeswin",
			"age":              "33",
			"customers_1_name": "alice",
		},
		Whitelist: []string{"name", "age", "customers_name"},
	}

	result, output, err := handleMapFields(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result, "no error result expected")

	assert.True(t, output.Changed)
	assert.Equal(t, "jeswin", output.Entity["name"])
	assert.Equal(t, 33, output.Entity["age"])

	customers, ok := output.Entity["customers"].([]any)
	require.True(t, ok)
	require.Len(t, customers, 1)
}

func TestHandleMapFields_RespectsWhitelist(t *testing.T) {
	input := mapFieldsInput{
		Schema:    testSchema,
		Source:    map[string]any{"name": "jeswin", "age": "33"},
		Whitelist: []string{"name"},
	}

	result, output, err := handleMapFields(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "jeswin", output.Entity["name"])
	assert.NotContains(t, output.Entity, "age")
}

func TestHandleMapFields_BadSchema(t *testing.T) {
	input := mapFieldsInput{Schema: "fields: [not, a, mapping]"}

	result, _, err := handleMapFields(context.Background(), nil, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSanitizeError(t *testing.T) {
	err := errors.New("cannot read schema file /home/user/secrets/schema.yaml: no such file")
	assert.NotContains(t, sanitizeError(err), "/home/user")
}
