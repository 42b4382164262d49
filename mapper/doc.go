// Package mapper implements the mapping pass from a flat, delimiter-encoded
// key/value source onto a nested, schema-typed entity tree.
//
// A Mapper walks an entity schema's declared fields in order, builds the
// flat key for each field from the accumulated parent path, fetches the raw
// value from a pluggable ValueSource, converts and sanitizes scalars, and
// assembles arrays and nested entities. An explicit whitelist of permitted
// field paths gates every write: a field absent from the effective
// whitelist is never written.
//
// # Quick Start
//
//	m, err := mapper.New(mapper.WithSource(mapper.MapSource{
//		"customers_1_name": "alice",
//		"customers_1_age":  "30",
//	}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entity := schema.MapEntity{}
//	changed, err := m.Map(ctx, entity, customerListSchema,
//		[]string{"customers_name", "customers_age"})
//
// # Array Encodings
//
// Array fields use one of two mutually exclusive encodings:
//
//   - Indexed (default): each element occupies its own flat-key namespace
//     under a 1-based index segment ("customers_1_name", "customers_2_name",
//     ...). Enumeration is strictly ascending and stops at the first index
//     that produces no change; gaps terminate the array.
//   - CSV: one flat key holds a comma-separated scalar list
//     ("customerids" -> "1,54,66"). Selected by naming the field in the
//     enclosing EntitySchema's CSVFields set.
//
// Arrays of arrays are unsupported in both encodings and abort the pass.
//
// # Ordering and Concurrency
//
// A pass is a single sequential chain: schema fields in declared order,
// array indices in ascending order, one value lookup at a time. No state is
// retained between Map calls, so a Mapper is safe for concurrent use as
// long as its ValueSource is.
package mapper
