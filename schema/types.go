package schema

// Type identifies the declared type of a field. The four scalar types and
// TypeArray are handled directly by the mapper; any other value is treated
// as a custom entity type marker and dispatches to nested-entity mapping.
type Type string

const (
	// TypeString is a sanitized text field.
	TypeString Type = "string"

	// TypeInteger is a base-10 integer field.
	TypeInteger Type = "integer"

	// TypeNumber is a floating-point field.
	TypeNumber Type = "number"

	// TypeBoolean is a boolean field. Only the boolean literal true and the
	// exact string "true" convert to true.
	TypeBoolean Type = "boolean"

	// TypeArray is an array field. Its FieldDefinition must carry Items.
	TypeArray Type = "array"
)

// Scalar reports whether t is one of the four scalar types.
func (t Type) Scalar() bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	default:
		return false
	}
}

// FieldDefinition describes a single field's declared structure.
type FieldDefinition struct {
	// Type is the declared type. Scalar types and TypeArray are built in;
	// anything else marks a nested entity and requires Entity to be set.
	Type Type

	// Items is the element definition for TypeArray fields.
	Items *FieldDefinition

	// Entity is the nested entity schema for custom-typed fields and for
	// array items of entity type.
	Entity *EntitySchema
}

// Property is one named field in declaration order.
type Property struct {
	Name string
	Def  *FieldDefinition
}

// Schema is an ordered mapping from field name to definition. Iteration
// order is declaration order.
type Schema struct {
	Properties []Property
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Add appends a field definition and returns the schema for chaining.
func (s *Schema) Add(name string, def *FieldDefinition) *Schema {
	s.Properties = append(s.Properties, Property{Name: name, Def: def})
	return s
}

// Property returns the definition for name, if declared.
func (s *Schema) Property(name string) (*FieldDefinition, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Def, true
		}
	}
	return nil, false
}

// Entity is a keyed structure under construction during a mapping pass.
// Implementations report and accept field values by name.
type Entity interface {
	// Get returns the current value for field and whether it is set.
	Get(field string) (any, bool)

	// Set writes value under field, replacing any existing value.
	Set(field string, value any)
}

// Factory produces a fresh, empty entity instance. A nil Factory on an
// EntitySchema means the entity cannot be constructed and its subtree is
// never mapped.
type Factory func() Entity

// MapEntity is the default map-backed Entity implementation.
type MapEntity map[string]any

// Get implements Entity.
func (e MapEntity) Get(field string) (any, bool) {
	v, ok := e[field]
	return v, ok
}

// Set implements Entity.
func (e MapEntity) Set(field string, value any) {
	e[field] = value
}

// NewMapEntity is a Factory producing empty MapEntity instances.
func NewMapEntity() Entity {
	return MapEntity{}
}

// Ensure MapEntity implements Entity at compile time.
var _ Entity = MapEntity{}

// EntitySchema wraps a Schema with construction and encoding metadata.
type EntitySchema struct {
	// Schema holds the ordered field definitions.
	Schema *Schema

	// New constructs a fresh entity instance. When nil the entity has no
	// constructible representation and the mapper silently skips the
	// subtree; that is a legitimate signal, not an error.
	New Factory

	// CSVFields names array fields using the CSV encoding: one flat key
	// holding a comma-separated scalar list instead of per-index keys.
	CSVFields map[string]bool

	// HTMLFields names string fields whose values receive permissive
	// rich-text sanitization instead of full escaping.
	HTMLFields map[string]bool
}
