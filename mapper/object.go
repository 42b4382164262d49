package mapper

import (
	"context"

	"github.com/erraggy/formtools/schema"
)

// buildObject instantiates and recursively populates a nested entity
// field. A custom type without a factory has no constructible
// representation and is skipped entirely; that is policy, not an error.
// The fresh entity is attached to the parent only if some descendant field
// actually changed, so empty nested objects are never produced.
func (m *Mapper) buildObject(ctx context.Context, tgt target, field string, def *schema.FieldDefinition, wl whitelist, parent *parentPath) (bool, error) {
	es := def.Entity
	if es == nil || es.Schema == nil || es.New == nil {
		m.logger.Debug("entity field has no factory, skipping subtree", "field", field)
		return false, nil
	}

	// Descend one schema level: every whitelist entry sheds its leading
	// segment.
	sub := wl.descend()

	parent.push(field)
	defer parent.pop()

	entity := es.New()
	changed, err := m.walk(ctx, keyedTarget{entity: entity}, es, sub, parent)
	if err != nil {
		return false, err
	}
	if !changed {
		// Nothing below wrote; the entity is discarded, never attached.
		return false, nil
	}

	tgt.put(field, entity)
	return true, nil
}
