package schema

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/formtools/formerrors"
)

// Load reads a YAML entity schema definition from path.
// See LoadBytes for the accepted document shape.
func Load(path string) (*EntitySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &formerrors.SchemaError{
			Message:  fmt.Sprintf("cannot read schema file %s: %v", path, err),
			Sentinel: formerrors.ErrSchema,
		}
	}
	return LoadBytes(data)
}

// LoadBytes decodes a YAML entity schema definition, preserving field
// declaration order. The document shape is:
//
//	fields:
//	  name: string
//	  age: integer
//	  address:
//	    type: address
//	    entity:
//	      fields:
//	        city: string
//	  customerids:
//	    type: array
//	    items: integer
//	csv: [customerids]
//	html: [bio]
//	construct: true
//
// A field may be declared as a bare scalar type name, or as a mapping with
// "type" plus optional "items" (arrays) and "entity" (nested entities).
// Loaded entity schemas receive a MapEntity factory unless "construct" is
// explicitly false, since factories cannot be expressed in YAML.
func LoadBytes(data []byte) (*EntitySchema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &formerrors.SchemaError{
			Message:  fmt.Sprintf("invalid schema YAML: %v", err),
			Sentinel: formerrors.ErrSchema,
		}
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &formerrors.SchemaError{
				Message:  "empty schema document",
				Sentinel: formerrors.ErrSchema,
			}
		}
		node = node.Content[0]
	}

	return decodeEntityNode(node)
}

// decodeEntityNode decodes one entity schema mapping node, recursively
// handling nested entity definitions.
func decodeEntityNode(node *yaml.Node) (*EntitySchema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, schemaNodeError(node, "entity schema must be a mapping")
	}

	es := &EntitySchema{
		Schema: NewSchema(),
		New:    NewMapEntity,
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case "fields":
			if err := decodeFields(es.Schema, val); err != nil {
				return nil, err
			}
		case "csv":
			set, err := decodeStringSet(val)
			if err != nil {
				return nil, err
			}
			es.CSVFields = set
		case "html":
			set, err := decodeStringSet(val)
			if err != nil {
				return nil, err
			}
			es.HTMLFields = set
		case "construct":
			var construct bool
			if err := val.Decode(&construct); err != nil {
				return nil, schemaNodeError(val, "construct must be a boolean")
			}
			if !construct {
				es.New = nil
			}
		default:
			return nil, schemaNodeError(node.Content[i], fmt.Sprintf("unknown schema key %q", key))
		}
	}

	return es, nil
}

// decodeFields decodes the ordered "fields" mapping into schema properties.
func decodeFields(s *Schema, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return schemaNodeError(node, "fields must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		def, err := decodeFieldNode(name, node.Content[i+1])
		if err != nil {
			return err
		}
		s.Add(name, def)
	}
	return nil
}

// decodeFieldNode decodes a single field definition: either a bare type
// name scalar, or a mapping with type/items/entity.
func decodeFieldNode(name string, node *yaml.Node) (*FieldDefinition, error) {
	if node.Kind == yaml.ScalarNode {
		return &FieldDefinition{Type: Type(node.Value)}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fieldNodeError(name, node, "field definition must be a type name or a mapping")
	}

	def := &FieldDefinition{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case "type":
			if val.Kind != yaml.ScalarNode {
				return nil, fieldNodeError(name, val, "type must be a scalar")
			}
			def.Type = Type(val.Value)
		case "items":
			items, err := decodeFieldNode(name, val)
			if err != nil {
				return nil, err
			}
			def.Items = items
		case "entity":
			entity, err := decodeEntityNode(val)
			if err != nil {
				return nil, err
			}
			def.Entity = entity
		default:
			return nil, fieldNodeError(name, node.Content[i], fmt.Sprintf("unknown field key %q", key))
		}
	}

	if def.Type == "" {
		return nil, fieldNodeError(name, node, "field definition is missing a type")
	}
	// An entity declared on an array applies to its items.
	if def.Type == TypeArray && def.Items != nil && def.Items.Entity == nil && def.Entity != nil {
		def.Items.Entity = def.Entity
	}
	return def, nil
}

// decodeStringSet decodes a sequence of strings into a set.
func decodeStringSet(node *yaml.Node) (map[string]bool, error) {
	var names []string
	if err := node.Decode(&names); err != nil {
		return nil, schemaNodeError(node, "expected a list of field names")
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}

func schemaNodeError(node *yaml.Node, msg string) error {
	return &formerrors.SchemaError{
		Message:  fmt.Sprintf("%s (line %d)", msg, node.Line),
		Sentinel: formerrors.ErrSchema,
	}
}

func fieldNodeError(field string, node *yaml.Node, msg string) error {
	return &formerrors.SchemaError{
		Field:    field,
		Message:  fmt.Sprintf("%s (line %d)", msg, node.Line),
		Sentinel: formerrors.ErrSchema,
	}
}
