package mapper

import (
	"context"

	"github.com/erraggy/formtools/schema"
)

// walk iterates the schema's properties in declared order, narrowing the
// whitelist to each field and dispatching on its type. It reports whether
// any field was written.
func (m *Mapper) walk(ctx context.Context, tgt target, es *schema.EntitySchema, wl whitelist, parent *parentPath) (bool, error) {
	changed := false
	for _, prop := range es.Schema.Properties {
		ch, err := m.dispatch(ctx, tgt, prop.Name, prop.Def, es, wl.filter(prop.Name), parent)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	return changed, nil
}

// dispatch routes one field to scalar extraction, array building, or
// nested-entity building based on its declared type. The declared type
// selects exactly one branch.
func (m *Mapper) dispatch(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, es *schema.EntitySchema, wl whitelist, parent *parentPath) (bool, error) {
	if def == nil {
		return false, nil
	}

	switch {
	case def.Type == schema.TypeArray:
		// The whitelist is re-checked inside, per encoding.
		return m.buildArray(ctx, tgt, field, def, es, wl, parent)

	case def.Type.Scalar():
		// A scalar is writable only when it is the leading match in the
		// narrowed whitelist.
		if len(wl) == 0 || wl[0].head() != field {
			return false, nil
		}
		return m.extractScalar(ctx, tgt, field, def, es, parent)

	default:
		return m.buildObject(ctx, tgt, field, def, wl, parent)
	}
}
