package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// These tests change the working directory, so they cannot run in parallel.

func TestRunGenerateWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "schema.graphql", "enum Role {\n  ADMIN\n  USER\n}\n")
	t.Chdir(dir)

	err := generateCommand().Run(context.Background(), []string{"generate"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "schema.generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export enum Role")
}

func TestRunGenerateBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "codegen.yaml", "typescript:\n  enumsAsTypes: [unclosed\n")
	writeFile(t, dir, "schema.graphql", "enum Role {\n  ADMIN\n}\n")
	t.Chdir(dir)

	err := generateCommand().Run(context.Background(), []string{"generate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")

	// Nothing is generated when the config cannot be read.
	_, statErr := os.Stat(filepath.Join(dir, "schema.generated.ts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunGenerateAppliesConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "codegen.yaml", "typescript:\n  enumsAsTypes: true\n")
	writeFile(t, dir, "schema.graphql", "enum Role {\n  ADMIN\n  USER\n}\n")
	t.Chdir(dir)

	err := generateCommand().Run(context.Background(), []string{"generate"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "schema.generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export type Role =")
	assert.NotContains(t, string(data), "export enum Role")
}
