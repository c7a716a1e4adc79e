package codegen

// Language names.
const (
	LangTypeScript = "typescript"
)

// DefaultOutputFile is the filename generators use when the configuration
// does not name one.
const DefaultOutputFile = "schema.generated.ts"
