// Package codegen provides the schema model and configuration surface for
// generating statically-typed declarations from a GraphQL type system.
//
// The package holds the language-independent pieces: the borrowed schema
// graph (TypeDef, Field, TypeRef), the raw configuration loaded from
// codegen.yaml, and the error taxonomy shared by all generators. Target
// languages live under language/ and consume these by value.
package codegen

// TypeKind represents the kind of a named schema type.
type TypeKind string

// Type kind constants.
const (
	KindScalar      TypeKind = "scalar"
	KindEnum        TypeKind = "enum"
	KindObject      TypeKind = "object"
	KindInterface   TypeKind = "interface"
	KindUnion       TypeKind = "union"
	KindInputObject TypeKind = "inputObject"
)

// BuiltinScalars are the scalar names every schema provides without
// declaring them.
var BuiltinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// TypeDef is one named schema type. It is owned by the schema collaborator
// and borrowed, read-only, for the duration of a generation run.
type TypeDef struct {
	// Kind is the category of this type.
	Kind TypeKind

	// Name is the schema-visible type name.
	Name string

	// Description is the optional documentation text.
	Description string

	// Fields holds the ordered members for object, interface and
	// inputObject types.
	Fields []*Field

	// EnumValues holds the ordered members for enum types.
	EnumValues []*EnumValue

	// MemberTypes holds the ordered member type names for union types.
	MemberTypes []string

	// Interfaces holds the names of interfaces implemented by an object
	// or interface type.
	Interfaces []string
}

// Field belongs to exactly one object, interface or inputObject type.
type Field struct {
	// Name is the field name.
	Name string

	// Type is the field's type reference.
	Type *TypeRef

	// Description is the optional documentation text.
	Description string

	// Args are the field's arguments. Only output fields carry arguments.
	Args []*Argument

	// Default is the raw default value text for inputObject fields,
	// or nil when no default is declared.
	Default *string
}

// Argument is one argument of an output field.
type Argument struct {
	// Name is the argument name.
	Name string

	// Type is the argument's type reference.
	Type *TypeRef

	// Description is the optional documentation text.
	Description string

	// Default is the raw default value text, or nil when no default
	// is declared.
	Default *string
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	// Name is the member name; it doubles as the member's literal value.
	Name string

	// Description is the optional documentation text.
	Description string
}

// Schema is the full type graph handed to a generation run. It preserves
// source declaration order and is immutable once built.
type Schema struct {
	types  []*TypeDef
	byName map[string]*TypeDef
}

// NewSchema builds a Schema from an ordered list of type definitions.
// Later definitions shadow earlier ones with the same name; callers that
// care about duplicates are expected to reject them before reaching here.
func NewSchema(types []*TypeDef) *Schema {
	byName := make(map[string]*TypeDef, len(types))
	for _, def := range types {
		byName[def.Name] = def
	}

	return &Schema{types: types, byName: byName}
}

// Types returns all type definitions in declaration order.
func (s *Schema) Types() []*TypeDef {
	return s.types
}

// Lookup returns the type definition with the given name, or nil.
func (s *Schema) Lookup(name string) *TypeDef {
	return s.byName[name]
}

// TypesOfKind returns the definitions of the given kind in declaration order.
func (s *Schema) TypesOfKind(kind TypeKind) []*TypeDef {
	var defs []*TypeDef

	for _, def := range s.types {
		if def.Kind == kind {
			defs = append(defs, def)
		}
	}

	return defs
}

// Implementors returns the object types implementing the named interface,
// in declaration order.
func (s *Schema) Implementors(iface string) []*TypeDef {
	var defs []*TypeDef

	for _, def := range s.types {
		if def.Kind != KindObject {
			continue
		}

		for _, name := range def.Interfaces {
			if name == iface {
				defs = append(defs, def)

				break
			}
		}
	}

	return defs
}
