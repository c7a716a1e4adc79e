// Package typescript generates TypeScript declarations from a GraphQL
// schema graph.
//
// The generator is a single-threaded, side-effect-free transformation: a run
// is a pure function from (schema, options) to an ordered declaration
// sequence. Identical inputs always produce byte-identical output.
package typescript

import (
	codegen "github.com/negative0/graphql-code-generator"
)

// KindAlias marks wrapper alias declarations in the output sequence.
const KindAlias = codegen.TypeKind("alias")

// Declaration is one output unit: a named, fully rendered top-level
// declaration. Declarations are append-only and never mutated after
// creation.
type Declaration struct {
	// Name is the declared type name.
	Name string

	// Kind is the schema category the declaration came from, or KindAlias
	// for wrapper aliases.
	Kind codegen.TypeKind

	// Body is the rendered declaration text, without the preceding
	// description comment.
	Body string

	// Wrappers names the wrapper aliases the body references.
	Wrappers []string

	// Description is the documentation text attached to the declaration,
	// if any.
	Description string
}
