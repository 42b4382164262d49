// Package formtools provides tools for decoding flat, delimiter-encoded
// key/value sources (such as submitted form fields) into nested,
// schema-typed entity trees.
//
// A flat source holds leaf values under delimiter-joined keys such as
// "customers_1_name". Given a schema describing the nested field structure
// and an explicit whitelist of permitted field paths, the mapper walks the
// schema, pulls matching flat keys from a pluggable value source, converts
// and sanitizes scalar values, and assembles arrays and nested objects.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - schema: entity schema definitions and YAML loading
//   - mapper: the mapping pass from flat source to entity tree
//   - sanitize: HTML escaping and permissive rich-text sanitization
//
// Structured error types live in the formerrors package.
//
// # Quick Start
//
// Map submitted form fields onto an entity:
//
//	import (
//		"github.com/erraggy/formtools/mapper"
//		"github.com/erraggy/formtools/schema"
//	)
//
//	es := &schema.EntitySchema{
//		Schema: schema.NewSchema().
//			Add("name", &schema.FieldDefinition{Type: schema.TypeString}).
//			Add("age", &schema.FieldDefinition{Type: schema.TypeInteger}),
//	}
//
//	m, err := mapper.New(mapper.WithSource(mapper.MapSource{
//		"name": "jeswin",
//		"age":  "33",
//	}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entity := schema.MapEntity{}
//	changed, err := m.Map(context.Background(), entity, es, []string{"name", "age"})
//
// After the pass, entity holds {"name": "jeswin", "age": 33} and changed
// reports whether any field was written.
package formtools
