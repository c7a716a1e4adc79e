package typescript

import (
	"strings"

	codegen "github.com/negative0/graphql-code-generator"
)

// Position distinguishes output fields from input positions (arguments and
// input-object fields). Maybe and InputMaybe are tracked independently so
// the two alias bodies can diverge.
type Position int

// Rendering positions.
const (
	OutputPosition Position = iota
	InputPosition
)

// typeRenderer renders type references against one schema and one resolved
// configuration.
type typeRenderer struct {
	schema   *codegen.Schema
	cfg      RenderConfig
	wrappers *WrapperRegistry
}

// Render renders a full field type reference: leaf resolution, optional
// field wrapping of the innermost value, list nesting, per-level nullable
// wrapping, and finally the entire-field wrapper. site names the use site
// for error reporting, e.g. "User.posts".
func (r *typeRenderer) Render(ref *codegen.TypeRef, pos Position, site string) (string, error) {
	out, err := r.render(ref, pos, site)
	if err != nil {
		return "", err
	}

	if r.cfg.WrapEntireFieldDefinitions && pos == OutputPosition {
		out = r.wrappers.Wrap(WrapperEntireFieldWrapper, out)
	}

	return out, nil
}

func (r *typeRenderer) render(ref *codegen.TypeRef, pos Position, site string) (string, error) {
	var out string

	if ref.IsList() {
		inner, err := r.render(ref.OfType, pos, site)
		if err != nil {
			return "", err
		}

		if r.cfg.ImmutableTypes {
			out = "ReadonlyArray<" + inner + ">"
		} else {
			out = "Array<" + inner + ">"
		}
	} else {
		leaf, err := r.leaf(ref.Name, pos, site)
		if err != nil {
			return "", err
		}

		out = leaf
	}

	if ref.Nullable {
		out = r.maybe(out, pos)
	}

	return out, nil
}

// leaf resolves the named leaf to output type text, applying interface
// substitution and the field wrapper.
func (r *typeRenderer) leaf(name string, pos Position, site string) (string, error) {
	var base string

	switch {
	case builtinScalarTypes[name] != "":
		base = builtinScalarTypes[name]

	default:
		def := r.schema.Lookup(name)
		if def == nil {
			return "", &codegen.UnresolvedReferenceError{TypeName: name, Site: site}
		}

		if def.Kind == codegen.KindInterface && r.cfg.UseImplementingTypes {
			base = r.implementorUnion(def)
		} else {
			base = def.Name
		}
	}

	if r.cfg.WrapFieldDefinitions && pos == OutputPosition {
		base = r.wrappers.Wrap(WrapperFieldWrapper, base)
	}

	return base, nil
}

// implementorUnion substitutes an interface use site with the union of its
// implementing object types.
func (r *typeRenderer) implementorUnion(def *codegen.TypeDef) string {
	impls := r.schema.Implementors(def.Name)

	arms := make([]string, 0, len(impls)+1)
	taken := make(map[string]bool, len(impls))

	for _, impl := range impls {
		arms = append(arms, impl.Name)
		taken[impl.Name] = true
	}

	if r.cfg.FutureProofUnions {
		arms = append(arms, quoteLiteral(sentinelName(unionSentinel, taken)))
	}

	if len(arms) == 0 {
		return "never"
	}

	return strings.Join(arms, " | ")
}

func (r *typeRenderer) maybe(inner string, pos Position) string {
	if pos == InputPosition {
		return r.wrappers.Wrap(WrapperInputMaybe, inner)
	}

	return r.wrappers.Wrap(WrapperMaybe, inner)
}

// fieldOptional reports whether an output or input-object field carries the
// optional-member marker at its declaration site. Only the field's own
// nesting level matters; inner list levels never do.
func (r *typeRenderer) fieldOptional(f *codegen.Field, pos Position) bool {
	if pos == InputPosition {
		if f.Default != nil {
			return !r.cfg.AvoidOptionals.DefaultValue
		}

		return f.Type.Nullable && !r.cfg.AvoidOptionals.InputValue
	}

	return f.Type.Nullable && !r.cfg.AvoidOptionals.Field
}

// argOptional reports whether an argument carries the optional marker.
// An argument with a declared default is optional unless the defaultValue
// category suppresses it; otherwise nullability and the object category
// decide.
func (r *typeRenderer) argOptional(a *codegen.Argument) bool {
	if a.Default != nil {
		return !r.cfg.AvoidOptionals.DefaultValue
	}

	return a.Type.Nullable && !r.cfg.AvoidOptionals.Object
}
