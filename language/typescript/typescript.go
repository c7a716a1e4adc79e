package typescript

import (
	codegen "github.com/negative0/graphql-code-generator"
	"github.com/negative0/graphql-code-generator/language"
)

// TypeScript implements language.Language for TypeScript declaration
// generation.
type TypeScript struct{}

// New creates a new TypeScript generator.
func New() *TypeScript {
	return &TypeScript{}
}

// Name returns "typescript".
func (t *TypeScript) Name() string {
	return codegen.LangTypeScript
}

// Generate produces the declaration file for the schema in the context.
// On aggregated configuration errors the partial file is returned alongside
// the error so callers decide whether to keep it.
func (t *TypeScript) Generate(ctx *language.GenerateContext) (map[string][]byte, error) {
	out, err := Generate(ctx.Schema, ctx.TypeScript)
	if out == nil {
		return nil, err
	}

	return map[string][]byte{codegen.DefaultOutputFile: []byte(out.Source)}, err
}

// Generate runs the full pipeline: option resolution, then emission.
func Generate(schema *codegen.Schema, opts *codegen.TypeScriptOptions) (*Output, error) {
	cfg := Resolve(opts)

	return NewEmitter(schema, cfg).Emit()
}

//nolint:gochecknoinits // Registration pattern requires init.
func init() {
	language.Register(New())
}
