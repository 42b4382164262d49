package mapper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/formtools/formerrors"
	"github.com/erraggy/formtools/schema"
)

func testMapper(t *testing.T) *Mapper {
	t.Helper()
	m, err := New(WithSource(MapSource{}))
	require.NoError(t, err)
	return m
}

func TestConvert_Integer(t *testing.T) {
	m := testMapper(t)
	def := &schema.FieldDefinition{Type: schema.TypeInteger}

	cases := []struct {
		raw     any
		want    int
		present bool
	}{
		{"33", 33, true},
		{"33abc", 33, true},
		{"12.9", 12, true},
		{"-7", -7, true},
		{"  42  ", 42, true},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		v, present, err := m.convert(tc.raw, "n", def, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.present, present, "raw %v", tc.raw)
		if tc.present {
			assert.Equal(t, tc.want, v, "raw %v", tc.raw)
		}
	}
}

func TestConvert_Number(t *testing.T) {
	m := testMapper(t)
	def := &schema.FieldDefinition{Type: schema.TypeNumber}

	v, present, err := m.convert("3.25", "n", def, nil)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, 3.25, v)

	v, present, err = m.convert("1e3x", "n", def, nil)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, 1000.0, v)

	_, present, err = m.convert("x", "n", def, nil)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestConvert_UnreachableTypeIsFatal(t *testing.T) {
	m := testMapper(t)

	_, _, err := m.convert("x", "f", &schema.FieldDefinition{Type: schema.TypeArray}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, formerrors.ErrUnreachableType))

	_, _, err = m.convert("x", "f", &schema.FieldDefinition{Type: "customer"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, formerrors.ErrUnreachableType))

	_, _, err = m.convert("x", "f", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, formerrors.ErrUnreachableType))
}

func TestConvert_FalsyShortCircuitsTypeCheck(t *testing.T) {
	// A falsy raw value converts to nothing even for defective definitions:
	// the falsy check runs before type dispatch.
	m := testMapper(t)
	_, present, err := m.convert("", "f", nil, nil)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestIsFalsy(t *testing.T) {
	assert.True(t, isFalsy(nil))
	assert.True(t, isFalsy(""))
	assert.True(t, isFalsy(false))
	assert.True(t, isFalsy(0))
	assert.True(t, isFalsy(0.0))
	assert.False(t, isFalsy("0"))
	assert.False(t, isFalsy(" "))
	assert.False(t, isFalsy(true))
	assert.False(t, isFalsy(1))
}

func TestParseLeadingFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3.25", 3.25, true},
		{".5", 0.5, true},
		{"12.", 12, true},
		{"-2.5e2", -250, true},
		{"1e", 1, true},
		{"abc", 0, false},
		{".", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingFloat(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestExtractScalar_AppendsToSequence(t *testing.T) {
	// On an ordered sequence the overwrite policy does not apply: values
	// are always appended.
	m := newMapper(t, MapSource{"tags_1": "go"})
	seq := &sequence{}
	parent := &parentPath{delim: "_"}
	parent.push("tags")

	changed, err := m.extractScalar(context.Background(), sequenceTarget{seq: seq}, "1",
		&schema.FieldDefinition{Type: schema.TypeString}, nil, parent)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []any{"go"}, seq.items)
}
