package mapper

import (
	"context"
	"strconv"
	"strings"

	"github.com/erraggy/formtools/formerrors"
	"github.com/erraggy/formtools/schema"
)

// buildArray builds an array-typed field using one of the two encodings.
// CSV mode applies when the enclosing entity schema names the field in
// CSVFields; otherwise elements are enumerated by 1-based index.
func (m *Mapper) buildArray(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, es *schema.EntitySchema, wl whitelist, parent *parentPath) (bool, error) {
	if def.Items != nil && def.Items.Type == schema.TypeArray {
		return false, &formerrors.SchemaError{
			Field:        field,
			Path:         parent.key(field),
			DeclaredType: string(schema.TypeArray),
			Message:      "item type is array",
			Sentinel:     formerrors.ErrNestedArray,
		}
	}

	if es != nil && es.CSVFields[field] {
		return m.buildCSVArray(ctx, tgt, field, def, es, wl, parent)
	}
	return m.buildIndexedArray(ctx, tgt, field, def, es, wl, parent)
}

// buildCSVArray fetches one flat key holding a comma-separated scalar list
// and converts each item with the array's item type. Items that convert to
// nothing (empty segments) are skipped. Note the whitelist check: CSV mode
// matches the literal field name, not the first segment of a split path;
// see whitelist.containsLiteral.
func (m *Mapper) buildCSVArray(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, es *schema.EntitySchema, wl whitelist, parent *parentPath) (bool, error) {
	if !wl.containsLiteral(field, m.delimiter) {
		return false, nil
	}

	key := parent.key(field)
	raw, ok, err := m.source.Get(ctx, key)
	if err != nil {
		return false, &formerrors.SourceError{Key: key, Cause: err}
	}
	if !ok {
		m.logger.Debug("value absent", "key", key)
		return false, nil
	}

	var items []any
	for _, part := range strings.Split(asString(raw), ",") {
		v, present, err := m.convert(part, field, def.Items, es)
		if err != nil {
			return false, err
		}
		if present {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return false, nil
	}

	tgt.put(field, items)
	m.logger.Debug("built csv array", "key", key, "elements", len(items))
	return true, nil
}

// buildIndexedArray enumerates elements under 1-based index segments,
// re-dispatching each index against the item definition into a fresh
// sequence. Enumeration stops at the first index that produces no change;
// gaps terminate the array. The sequence is attached to the field only if
// at least one element was produced and the field was previously unset.
func (m *Mapper) buildIndexedArray(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, es *schema.EntitySchema, wl whitelist, parent *parentPath) (bool, error) {
	parent.push(field)
	defer parent.pop()

	seq := &sequence{}
	st := sequenceTarget{seq: seq}
	for idx := 1; ; idx++ {
		ch, err := m.dispatch(ctx, st, strconv.Itoa(idx), def.Items, es, wl, parent)
		if err != nil {
			return false, err
		}
		if !ch {
			break
		}
	}

	if len(seq.items) == 0 {
		return false, nil
	}
	if !tgt.has(field) {
		tgt.put(field, seq.items)
	}
	m.logger.Debug("built indexed array", "field", field, "elements", len(seq.items))
	return true, nil
}
