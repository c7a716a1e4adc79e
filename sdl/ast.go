package sdl

import (
	"strconv"
	"strings"

	codegen "github.com/negative0/graphql-code-generator"
)

// Document is a parsed SDL file: an ordered list of type system definitions.
type Document struct {
	Definitions []*Definition `parser:"@@*"`
}

// Definition is one type system definition, with its optional leading
// description.
type Definition struct {
	Description *string `parser:"@(BlockString | String)?"`

	Scalar    *ScalarDef    `parser:"( @@"`
	Enum      *EnumDef      `parser:"| @@"`
	Input     *InputDef     `parser:"| @@"`
	Object    *ObjectDef    `parser:"| @@"`
	Interface *InterfaceDef `parser:"| @@"`
	Union     *UnionDef     `parser:"| @@"`
	Schema    *SchemaBlock  `parser:"| @@ )"`
}

// ScalarDef declares a custom scalar.
// Example: scalar DateTime
type ScalarDef struct {
	Name       string       `parser:"'scalar' @Ident"`
	Directives []*Directive `parser:"@@*"`
}

// EnumDef declares an enum type with its ordered members.
type EnumDef struct {
	Name       string          `parser:"'enum' @Ident"`
	Directives []*Directive    `parser:"@@*"`
	Values     []*EnumValueDef `parser:"'{' @@+ '}'"`
}

// EnumValueDef is one enum member.
type EnumValueDef struct {
	Description *string      `parser:"@(BlockString | String)?"`
	Name        string       `parser:"@Ident"`
	Directives  []*Directive `parser:"@@*"`
}

// ObjectDef declares an object type.
// Example: type User implements Node & Timestamped { ... }
type ObjectDef struct {
	Name       string       `parser:"'type' @Ident"`
	Interfaces []string     `parser:"('implements' '&'? @Ident ('&' @Ident)*)?"`
	Directives []*Directive `parser:"@@*"`
	Fields     []*FieldDef  `parser:"'{' @@+ '}'"`
}

// InterfaceDef declares an interface type.
type InterfaceDef struct {
	Name       string       `parser:"'interface' @Ident"`
	Interfaces []string     `parser:"('implements' '&'? @Ident ('&' @Ident)*)?"`
	Directives []*Directive `parser:"@@*"`
	Fields     []*FieldDef  `parser:"'{' @@+ '}'"`
}

// UnionDef declares a union type.
// Example: union SearchResult = User | Post
type UnionDef struct {
	Name       string       `parser:"'union' @Ident"`
	Directives []*Directive `parser:"@@* '='"`
	Members    []string     `parser:"'|'? @Ident ('|' @Ident)*"`
}

// InputDef declares an input object type. Its fields are input value
// definitions, the same shape as arguments.
type InputDef struct {
	Name       string           `parser:"'input' @Ident"`
	Directives []*Directive     `parser:"@@*"`
	Fields     []*InputValueDef `parser:"'{' @@+ '}'"`
}

// FieldDef is one output field of an object or interface type.
type FieldDef struct {
	Description *string          `parser:"@(BlockString | String)?"`
	Name        string           `parser:"@Ident"`
	Args        []*InputValueDef `parser:"('(' @@+ ')')?"`
	Type        *TypeExpr        `parser:"':' @@"`
	Directives  []*Directive     `parser:"@@*"`
}

// InputValueDef is an argument definition or an input-object field.
type InputValueDef struct {
	Description *string      `parser:"@(BlockString | String)?"`
	Name        string       `parser:"@Ident ':'"`
	Type        *TypeExpr    `parser:"@@"`
	Default     *Value       `parser:"('=' @@)?"`
	Directives  []*Directive `parser:"@@*"`
}

// TypeExpr is a type reference: a named type or a list, with an optional
// non-null marker.
type TypeExpr struct {
	Named   *string   `parser:"( @Ident"`
	List    *TypeExpr `parser:"| '[' @@ ']' )"`
	NonNull bool      `parser:"@'!'?"`
}

// ToRef converts the type expression to the codegen reference model, where
// nullability is explicit at every level.
func (t *TypeExpr) ToRef() *codegen.TypeRef {
	var ref *codegen.TypeRef

	if t.List != nil {
		ref = codegen.ListOf(t.List.ToRef())
	} else {
		name := ""
		if t.Named != nil {
			name = *t.Named
		}

		ref = codegen.Named(name)
	}

	ref.Nullable = !t.NonNull

	return ref
}

// Directive is a directive application. Directives are parsed so schemas
// that carry them load cleanly, but the generator does not act on them.
type Directive struct {
	Name string          `parser:"'@' @Ident"`
	Args []*DirectiveArg `parser:"('(' @@+ ')')?"`
}

// DirectiveArg is one named argument of a directive application.
type DirectiveArg struct {
	Name  string `parser:"@Ident ':'"`
	Value *Value `parser:"@@"`
}

// SchemaBlock names the root operation types. The generator does not use
// it, but schemas that declare one must still parse.
type SchemaBlock struct {
	Directives []*Directive     `parser:"'schema' @@*"`
	Operations []*RootOperation `parser:"'{' @@+ '}'"`
}

// RootOperation is one root operation binding inside a schema block.
type RootOperation struct {
	Operation string `parser:"@('query' | 'mutation' | 'subscription') ':'"`
	Type      string `parser:"@Ident"`
}

// Value is an input value literal, used for argument defaults.
type Value struct {
	String *string        `parser:"  @(String | BlockString)"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
	List   []*Value       `parser:"| '[' @@* ']'"`
	Object []*ObjectField `parser:"| '{' @@* '}'"`
}

// ObjectField is one field of an input object literal.
type ObjectField struct {
	Name  string `parser:"@Ident ':'"`
	Value *Value `parser:"@@"`
}

// Text renders the value back to canonical GraphQL text, for carrying
// default values through to the schema model.
func (v *Value) Text() string {
	switch {
	case v.String != nil:
		return strconv.Quote(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	case v.List != nil:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.Text()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case v.Object != nil:
		parts := make([]string, len(v.Object))
		for i, f := range v.Object {
			parts[i] = f.Name + ": " + f.Value.Text()
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "null"
	}
}
