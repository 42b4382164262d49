// Package schema defines the entity schema model consumed by the mapper.
//
// A Schema is an ordered list of named field definitions. Declaration order
// is significant: it determines the order in which fields are written during
// a mapping pass. An EntitySchema wraps a Schema together with an optional
// entity factory and the per-field encoding sets (CSV arrays, rich-text
// fields).
//
// Schemas may be built programmatically:
//
//	es := &schema.EntitySchema{
//		New: schema.NewMapEntity,
//		Schema: schema.NewSchema().
//			Add("name", &schema.FieldDefinition{Type: schema.TypeString}).
//			Add("age", &schema.FieldDefinition{Type: schema.TypeInteger}),
//	}
//
// or loaded from a YAML definition via Load or LoadBytes:
//
//	fields:
//	  name: string
//	  age: integer
//	  customerids:
//	    type: array
//	    items: integer
//	csv: [customerids]
//
// Field declaration order in the YAML document is preserved.
package schema
