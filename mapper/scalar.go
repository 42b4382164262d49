package mapper

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/formtools/formerrors"
	"github.com/erraggy/formtools/sanitize"
	"github.com/erraggy/formtools/schema"
)

// extractScalar resolves one flat key, converts the raw value, and writes
// it into tgt under the configured overwrite policy. An absent key or an
// inconvertible value leaves the target untouched.
func (m *Mapper) extractScalar(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, es *schema.EntitySchema, parent *parentPath) (bool, error) {
	key := parent.key(field)

	raw, ok, err := m.source.Get(ctx, key)
	if err != nil {
		return false, &formerrors.SourceError{Key: key, Cause: err}
	}
	if !ok {
		m.logger.Debug("value absent", "key", key)
		return false, nil
	}

	v, present, err := m.convert(raw, field, def, es)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}

	if !m.overwrite && tgt.has(field) {
		m.logger.Debug("field already set, keeping existing value", "key", key)
		return false, nil
	}
	tgt.put(field, v)
	return true, nil
}

// convert parses and sanitizes a single raw value according to the field's
// declared type. A falsy raw value (nil, empty string, false, numeric
// zero) converts to nothing: present is false and the field stays unset.
func (m *Mapper) convert(raw any, field string, def *schema.FieldDefinition, es *schema.EntitySchema) (v any, present bool, err error) {
	if isFalsy(raw) {
		return nil, false, nil
	}
	if def == nil || !def.Type.Scalar() {
		declared := "<nil>"
		if def != nil {
			declared = string(def.Type)
		}
		return nil, false, &formerrors.SchemaError{
			Field:        field,
			DeclaredType: declared,
			Message:      "scalar conversion reached with non-scalar type",
			Sentinel:     formerrors.ErrUnreachableType,
		}
	}

	switch def.Type {
	case schema.TypeInteger:
		n, ok := parseLeadingInt(asString(raw))
		return n, ok, nil

	case schema.TypeNumber:
		f, ok := parseLeadingFloat(asString(raw))
		return f, ok, nil

	case schema.TypeString:
		s := asString(raw)
		if es != nil && es.HTMLFields[field] {
			return sanitize.RichText(s), true, nil
		}
		return sanitize.Escape(s), true, nil

	default: // TypeBoolean
		return raw == true || raw == "true", true, nil
	}
}

// isFalsy reports whether a raw value converts to nothing at all.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	default:
		return false
	}
}

// asString renders a raw value for parsing.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// parseLeadingInt parses the longest leading base-10 integer of s,
// ignoring surrounding whitespace and truncating trailing garbage, so
// "33abc" parses as 33 and "12.9" as 12. Returns false when no digits
// lead the string.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		// Out of range for int.
		return 0, false
	}
	return n, true
}

// parseLeadingFloat parses the longest leading decimal number of s,
// including an optional fraction and exponent. Returns false when no
// digits lead the string.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
