package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHandleMap(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.yaml", `
fields:
  name: string
  age: integer
`)
	sourcePath := writeFile(t, dir, "source.yaml", `
name: jeswin
age: "33"
`)
	outPath := filepath.Join(dir, "out.json")
	out, err := os.Create(outPath)
	require.NoError(t, err)

	err = handleMap([]string{
		"-schema", schemaPath,
		"-source", sourcePath,
		"-whitelist", "name,age",
	}, out)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entity map[string]any
	require.NoError(t, json.Unmarshal(data, &entity))
	assert.Equal(t, "jeswin", entity["name"])
	assert.Equal(t, float64(33), entity["age"])
}

func TestHandleMap_MissingFlags(t *testing.T) {
	err := handleMap(nil, os.Stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestLoadSource_BadFile(t *testing.T) {
	_, err := loadSource(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
