// Package language defines the contract between the schema pipeline and the
// per-target generators, and the registry the CLI discovers them through.
package language

import (
	"sort"

	codegen "github.com/negative0/graphql-code-generator"
)

// Language is one generation target. An implementation renders a schema
// graph into source files for its language.
type Language interface {
	// Name is the identifier the language registers under, e.g. "typescript".
	Name() string

	// Generate renders the schema in ctx into a map of filename to file
	// content. Paths are relative to ctx.OutputDir.
	Generate(ctx *GenerateContext) (map[string][]byte, error)
}

// GenerateContext carries everything a generation run consumes.
type GenerateContext struct {
	// Schema is the type graph to generate declarations for.
	Schema *codegen.Schema

	// OutputDir is the directory where files will be written.
	OutputDir string

	// TypeScript holds the raw TypeScript generator options.
	// Nil means all defaults.
	TypeScript *codegen.TypeScriptOptions
}

// registry holds every language registered at init time, keyed by name.
var registry = make(map[string]Language)

// Register adds a language to the registry under its own name. Languages
// call it from init; later registrations with the same name win.
func Register(lang Language) {
	registry[lang.Name()] = lang
}

// Get looks up a registered language by name.
func Get(name string) (Language, bool) { //nolint:ireturn
	lang, ok := registry[name]

	return lang, ok
}

// RegisteredLanguages returns the names of all registered languages, sorted.
func RegisteredLanguages() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
