// Command formtools maps flat, delimiter-encoded key/value sources onto
// nested, schema-typed entity trees.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/formtools"
	"github.com/erraggy/formtools/internal/mcpserver"
	"github.com/erraggy/formtools/mapper"
	"github.com/erraggy/formtools/schema"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("formtools v%s\n", formtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "map":
		if err := handleMap(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// mapFlags contains flags for the map command
type mapFlags struct {
	schemaPath  string
	sourcePath  string
	whitelist   string
	delimiter   string
	noOverwrite bool
}

func setupMapFlags() (*flag.FlagSet, *mapFlags) {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	flags := &mapFlags{}

	fs.StringVar(&flags.schemaPath, "schema", "", "path to the YAML entity schema definition (required)")
	fs.StringVar(&flags.sourcePath, "source", "", "path to a YAML/JSON file holding the flat key/value source (required)")
	fs.StringVar(&flags.whitelist, "whitelist", "", "comma-separated permitted field paths (required)")
	fs.StringVar(&flags.delimiter, "delimiter", mapper.DefaultDelimiter, "path segment delimiter")
	fs.BoolVar(&flags.noOverwrite, "no-overwrite", false, "first write wins for scalar fields")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: formtools map [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Map a flat key/value source onto a nested entity tree.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  formtools map -schema customer.yaml -source form.yaml -whitelist name,age\n")
		_, _ = fmt.Fprintf(output, "  formtools map -schema customer.yaml -source form.yaml -whitelist customers_name -no-overwrite\n")
	}

	return fs, flags
}

func handleMap(args []string, out *os.File) error {
	fs, flags := setupMapFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.schemaPath == "" || flags.sourcePath == "" || flags.whitelist == "" {
		fs.Usage()
		return fmt.Errorf("-schema, -source, and -whitelist are required")
	}

	es, err := schema.Load(flags.schemaPath)
	if err != nil {
		return err
	}

	src, err := loadSource(flags.sourcePath)
	if err != nil {
		return err
	}

	opts := []mapper.Option{
		mapper.WithSource(src),
		mapper.WithDelimiter(flags.delimiter),
	}
	if flags.noOverwrite {
		opts = append(opts, mapper.WithOverwrite(false))
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return err
	}

	entity := schema.MapEntity{}
	changed, err := m.Map(context.Background(), entity, es, strings.Split(flags.whitelist, ","))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, string(data))
	if !changed {
		fmt.Fprintln(os.Stderr, "warning: no fields were written")
	}
	return nil
}

// loadSource reads a flat key/value document. YAML is a superset of JSON,
// so both formats decode through the YAML path.
func loadSource(path string) (mapper.MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read source file %s: %w", path, err)
	}
	var src map[string]any
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("cannot parse source file %s: %w", path, err)
	}
	return mapper.MapSource(src), nil
}

func printUsage() {
	fmt.Println("formtools - map flat form fields onto nested entity trees")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  formtools <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  map       Map a flat key/value source onto an entity")
	fmt.Println("  mcp       Start the MCP server over stdio")
	fmt.Println("  version   Print the version")
	fmt.Println("  help      Show this help")
	fmt.Println()
	fmt.Println("Run 'formtools <command> -h' for command-specific flags.")
}
