package typescript

import (
	"strings"

	codegen "github.com/negative0/graphql-code-generator"
)

// categoryOrder fixes the emission order of type declarations regardless of
// source declaration order, keeping output diff-stable across re-ordered
// schema input.
var categoryOrder = []codegen.TypeKind{
	codegen.KindScalar,
	codegen.KindEnum,
	codegen.KindInputObject,
	codegen.KindObject,
	codegen.KindInterface,
	codegen.KindUnion,
}

// Output is the result of one emission run: wrapper alias declarations
// first, in dependency order, then type declarations in category order,
// plus the assembled source text.
type Output struct {
	Declarations []Declaration
	Source       string
}

// Emitter walks a schema's named types and produces the ordered declaration
// sequence. One Emitter serves one run; independent runs never share state.
type Emitter struct {
	schema   *codegen.Schema
	cfg      RenderConfig
	wrappers *WrapperRegistry
	types    *typeRenderer
}

// NewEmitter creates an emitter for one run over the given schema.
func NewEmitter(schema *codegen.Schema, cfg RenderConfig) *Emitter {
	wrappers := NewWrapperRegistry(cfg)

	return &Emitter{
		schema:   schema,
		cfg:      cfg,
		wrappers: wrappers,
		types:    &typeRenderer{schema: schema, cfg: cfg, wrappers: wrappers},
	}
}

// Emit produces the declaration sequence.
//
// An UnresolvedReferenceError aborts the run with no output. Configuration
// errors are isolated: declarations referencing a broken wrapper alias are
// dropped, unrelated declarations still emit, and the aggregated
// ConfigurationErrors are returned alongside the partial output.
func (e *Emitter) Emit() (*Output, error) {
	var typeDecls []Declaration

	for _, kind := range categoryOrder {
		if !e.cfg.TypeFilter.Allows(kind) {
			continue
		}

		for _, def := range e.schema.TypesOfKind(kind) {
			decls, err := e.renderType(def)
			if err != nil {
				return nil, err
			}

			typeDecls = append(typeDecls, decls...)
		}
	}

	aliasDecls, invalid, cfgErrs := e.wrappers.Declarations(e.cfg)

	if len(invalid) > 0 {
		typeDecls = dropReferencing(typeDecls, invalid)
		// A valid alias whose only referencers were just dropped must not
		// survive as an orphan in the partial output.
		aliasDecls = pruneOrphanAliases(aliasDecls, typeDecls)
	}

	all := make([]Declaration, 0, len(aliasDecls)+len(typeDecls))
	all = append(all, aliasDecls...)
	all = append(all, typeDecls...)

	out := &Output{Declarations: all, Source: e.assemble(all)}

	if len(cfgErrs) > 0 {
		return out, cfgErrs
	}

	return out, nil
}

func (e *Emitter) renderType(def *codegen.TypeDef) ([]Declaration, error) {
	switch def.Kind {
	case codegen.KindScalar:
		return []Declaration{e.renderScalar(def)}, nil
	case codegen.KindEnum:
		return []Declaration{renderEnum(def, e.cfg)}, nil
	case codegen.KindInputObject:
		decl, err := e.renderObjectLike(def, InputPosition)
		if err != nil {
			return nil, err
		}

		return []Declaration{decl}, nil
	case codegen.KindObject, codegen.KindInterface:
		return e.renderObjectWithArgs(def)
	case codegen.KindUnion:
		decl, err := e.renderUnion(def)
		if err != nil {
			return nil, err
		}

		return []Declaration{decl}, nil
	default:
		return nil, nil
	}
}

// renderScalar renders a custom scalar as a type alias. Built-in scalars
// never reach here; they map to TypeScript primitives at use sites.
func (e *Emitter) renderScalar(def *codegen.TypeDef) Declaration {
	value := e.cfg.Scalars[def.Name]
	if value == "" {
		value = defaultScalarType
	}

	return Declaration{
		Name:        def.Name,
		Kind:        codegen.KindScalar,
		Body:        exportPrefix(e.cfg) + "type " + def.Name + " = " + value + ";",
		Description: def.Description,
	}
}

// renderObjectWithArgs renders an object or interface declaration, followed
// by one companion Args declaration per field that takes arguments.
func (e *Emitter) renderObjectWithArgs(def *codegen.TypeDef) ([]Declaration, error) {
	decl, err := e.renderObjectLike(def, OutputPosition)
	if err != nil {
		return nil, err
	}

	decls := []Declaration{decl}

	for _, f := range def.Fields {
		if len(f.Args) == 0 {
			continue
		}

		argsDecl, err := e.renderFieldArgs(def, f)
		if err != nil {
			return nil, err
		}

		decls = append(decls, argsDecl)
	}

	return decls, nil
}

func (e *Emitter) renderObjectLike(def *codegen.TypeDef, pos Position) (Declaration, error) {
	e.wrappers.BeginDeclaration()

	var b strings.Builder

	b.WriteString(exportPrefix(e.cfg) + "type " + def.Name + " = {\n")

	for _, f := range def.Fields {
		rendered, err := e.types.Render(f.Type, pos, def.Name+"."+f.Name)
		if err != nil {
			return Declaration{}, err
		}

		e.writeFieldDescription(&b, f.Description)
		b.WriteString("  " + e.fieldPrefix() + f.Name + optionalMarker(e.types.fieldOptional(f, pos)) + ": " + rendered + ";\n")
	}

	b.WriteString("};")

	return Declaration{
		Name:        def.Name,
		Kind:        def.Kind,
		Body:        b.String(),
		Wrappers:    e.wrappers.TakeReferenced(),
		Description: def.Description,
	}, nil
}

// renderFieldArgs renders the companion declaration for one field's
// arguments, e.g. QueryUserArgs for Query.user. Arguments render in input
// position.
func (e *Emitter) renderFieldArgs(def *codegen.TypeDef, f *codegen.Field) (Declaration, error) {
	e.wrappers.BeginDeclaration()

	name := def.Name + pascalCase(f.Name) + "Args"

	var b strings.Builder

	b.WriteString(exportPrefix(e.cfg) + "type " + name + " = {\n")

	for _, a := range f.Args {
		rendered, err := e.types.Render(a.Type, InputPosition, def.Name+"."+f.Name+"("+a.Name+")")
		if err != nil {
			return Declaration{}, err
		}

		e.writeFieldDescription(&b, a.Description)
		b.WriteString("  " + e.fieldPrefix() + a.Name + optionalMarker(e.types.argOptional(a)) + ": " + rendered + ";\n")
	}

	b.WriteString("};")

	return Declaration{
		Name:     name,
		Kind:     def.Kind,
		Body:     b.String(),
		Wrappers: e.wrappers.TakeReferenced(),
	}, nil
}

func (e *Emitter) renderUnion(def *codegen.TypeDef) (Declaration, error) {
	arms := make([]string, 0, len(def.MemberTypes)+1)
	taken := make(map[string]bool, len(def.MemberTypes))

	for _, member := range def.MemberTypes {
		if e.schema.Lookup(member) == nil {
			return Declaration{}, &codegen.UnresolvedReferenceError{TypeName: member, Site: def.Name}
		}

		arms = append(arms, member)
		taken[member] = true
	}

	if e.cfg.FutureProofUnions {
		arms = append(arms, quoteLiteral(sentinelName(unionSentinel, taken)))
	}

	return Declaration{
		Name:        def.Name,
		Kind:        codegen.KindUnion,
		Body:        exportPrefix(e.cfg) + "type " + def.Name + " = " + strings.Join(arms, " | ") + ";",
		Description: def.Description,
	}, nil
}

func (e *Emitter) fieldPrefix() string {
	if e.cfg.ImmutableTypes {
		return "readonly "
	}

	return ""
}

func (e *Emitter) writeFieldDescription(b *strings.Builder, desc string) {
	if desc == "" || e.cfg.DisableDescriptions {
		return
	}

	b.WriteString(descriptionComment(desc, "  "))
}

func optionalMarker(optional bool) string {
	if optional {
		return "?"
	}

	return ""
}

// dropReferencing filters out declarations that reference any of the given
// wrapper aliases.
func dropReferencing(decls []Declaration, invalid map[string]bool) []Declaration {
	kept := decls[:0:0]

	for _, d := range decls {
		broken := false

		for _, alias := range d.Wrappers {
			if invalid[alias] {
				broken = true

				break
			}
		}

		if !broken {
			kept = append(kept, d)
		}
	}

	return kept
}

// pruneOrphanAliases keeps only the alias declarations that at least one of
// the surviving type declarations still references.
func pruneOrphanAliases(aliases, decls []Declaration) []Declaration {
	referenced := make(map[string]bool)

	for _, d := range decls {
		for _, alias := range d.Wrappers {
			referenced[alias] = true
		}
	}

	kept := aliases[:0:0]

	for _, a := range aliases {
		if referenced[a.Name] {
			kept = append(kept, a)
		}
	}

	return kept
}

// assemble joins declarations into one source unit, prefixing description
// comments where configured.
func (e *Emitter) assemble(decls []Declaration) string {
	parts := make([]string, 0, len(decls))

	for _, d := range decls {
		text := d.Body
		if d.Description != "" && !e.cfg.DisableDescriptions {
			text = descriptionComment(d.Description, "") + text
		}

		parts = append(parts, text)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n") + "\n"
}

// descriptionComment renders a JSDoc block for the given text at the given
// indent. Comment terminators inside the text are defused.
func descriptionComment(desc, indent string) string {
	desc = strings.ReplaceAll(desc, "*/", "*\\/")
	lines := strings.Split(desc, "\n")

	if len(lines) == 1 {
		return indent + "/** " + lines[0] + " */\n"
	}

	var b strings.Builder

	b.WriteString(indent + "/**\n")

	for _, line := range lines {
		if line == "" {
			b.WriteString(indent + " *\n")
		} else {
			b.WriteString(indent + " * " + line + "\n")
		}
	}

	b.WriteString(indent + " */\n")

	return b.String()
}
