package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/formtools/mapper"
	"github.com/erraggy/formtools/schema"
)

type mapFieldsInput struct {
	Schema      string         `json:"schema"                 jsonschema:"YAML entity schema definition"`
	Source      map[string]any `json:"source"                 jsonschema:"Flat key/value source to map from"`
	Whitelist   []string       `json:"whitelist"              jsonschema:"Permitted field paths"`
	Delimiter   string         `json:"delimiter,omitempty"    jsonschema:"Path delimiter (default underscore)"`
	NoOverwrite bool           `json:"no_overwrite,omitempty" jsonschema:"First write wins for scalar fields"`
}

type mapFieldsOutput struct {
	Changed bool           `json:"changed"`
	Entity  map[string]any `json:"entity"`
}

func handleMapFields(ctx context.Context, _ *mcp.CallToolRequest, input mapFieldsInput) (*mcp.CallToolResult, mapFieldsOutput, error) {
	es, err := schema.LoadBytes([]byte(input.Schema))
	if err != nil {
		return errResult(err), mapFieldsOutput{}, nil
	}

	opts := []mapper.Option{mapper.WithSource(mapper.MapSource(input.Source))}
	if input.Delimiter != "" {
		opts = append(opts, mapper.WithDelimiter(input.Delimiter))
	}
	if input.NoOverwrite {
		opts = append(opts, mapper.WithOverwrite(false))
	}

	m, err := mapper.New(opts...)
	if err != nil {
		return errResult(err), mapFieldsOutput{}, nil
	}

	entity := schema.MapEntity{}
	changed, err := m.Map(ctx, entity, es, input.Whitelist)
	if err != nil {
		return errResult(err), mapFieldsOutput{}, nil
	}

	return nil, mapFieldsOutput{Changed: changed, Entity: entity}, nil
}
