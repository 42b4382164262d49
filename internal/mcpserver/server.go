// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the formtools mapping pass as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/formtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `formtools MCP server — decodes flat, delimiter-encoded key/value sources (form submissions) into nested, schema-typed entity trees.

Provide the entity schema as a YAML document (fields in declaration order, with optional csv/html/construct keys), the flat source as a key/value object, and the whitelist of permitted field paths. Only whitelisted fields are ever written. Array fields use either per-index flat keys (customers_1_name) or, when listed under csv, one comma-separated value.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "formtools", Version: formtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "map_fields",
		Description: "Map a flat key/value source onto a nested entity tree using a YAML entity schema and a whitelist of permitted field paths. Returns the mapped entity and whether anything was written. Set no_overwrite for first-write-wins scalar semantics; delimiter defaults to underscore.",
	}, handleMapFields)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
