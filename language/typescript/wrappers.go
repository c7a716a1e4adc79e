package typescript

import (
	codegen "github.com/negative0/graphql-code-generator"
)

// Wrapper alias names.
const (
	WrapperMaybe              = "Maybe"
	WrapperInputMaybe         = "InputMaybe"
	WrapperFieldWrapper       = "FieldWrapper"
	WrapperEntireFieldWrapper = "EntireFieldWrapper"
)

// wrapperOrder fixes the emission order of alias declarations.
var wrapperOrder = []string{
	WrapperMaybe,
	WrapperInputMaybe,
	WrapperFieldWrapper,
	WrapperEntireFieldWrapper,
}

// wrapperOptions maps alias names to the configuration options that
// override their bodies, for error reporting.
var wrapperOptions = map[string]string{
	WrapperMaybe:              "maybeValue",
	WrapperInputMaybe:         "inputMaybeValue",
	WrapperFieldWrapper:       "fieldWrapperValue",
	WrapperEntireFieldWrapper: "entireFieldWrapperValue",
}

// WrapperRegistry owns the wrapper alias bodies and tracks which aliases
// rendered fields actually referenced. An alias declaration is materialized
// at most once, and only if referenced; override bodies are validated
// lazily, at the point the declaration is assembled.
type WrapperRegistry struct {
	bodies  map[string]string
	used    map[string]bool
	current map[string]bool
}

// NewWrapperRegistry creates a registry with the resolved alias bodies.
func NewWrapperRegistry(cfg RenderConfig) *WrapperRegistry {
	return &WrapperRegistry{
		bodies: map[string]string{
			WrapperMaybe:              cfg.MaybeValue,
			WrapperInputMaybe:         cfg.InputMaybeValue,
			WrapperFieldWrapper:       cfg.FieldWrapperValue,
			WrapperEntireFieldWrapper: cfg.EntireFieldWrapperValue,
		},
		used: make(map[string]bool),
	}
}

// Wrap marks the alias as referenced and returns the wrapped type text.
func (r *WrapperRegistry) Wrap(alias, inner string) string {
	r.used[alias] = true
	if r.current != nil {
		r.current[alias] = true
	}

	return alias + "<" + inner + ">"
}

// BeginDeclaration starts tracking alias references for one declaration.
func (r *WrapperRegistry) BeginDeclaration() {
	r.current = make(map[string]bool)
}

// TakeReferenced returns the aliases referenced since BeginDeclaration,
// in fixed wrapper order, and stops tracking.
func (r *WrapperRegistry) TakeReferenced() []string {
	var refs []string

	for _, alias := range wrapperOrder {
		if r.current[alias] {
			refs = append(refs, alias)
		}
	}

	r.current = nil

	return refs
}

// Declarations materializes the referenced alias declarations in fixed
// order. Each override body is validated here; invalid bodies yield a
// ConfigurationError and the alias is reported in invalid so dependent
// declarations can be dropped while the rest of the run proceeds.
func (r *WrapperRegistry) Declarations(cfg RenderConfig) (decls []Declaration, invalid map[string]bool, errs codegen.ConfigurationErrors) {
	invalid = make(map[string]bool)

	for _, alias := range wrapperOrder {
		if !r.used[alias] {
			continue
		}

		body := r.bodies[alias]

		if err := validateTypeExpr(body); err != nil {
			invalid[alias] = true
			errs = append(errs, &codegen.ConfigurationError{
				Option: wrapperOptions[alias],
				Value:  body,
				Reason: err.Error(),
			})

			continue
		}

		decl := Declaration{
			Name: alias,
			Kind: KindAlias,
			Body: exportPrefix(cfg) + "type " + alias + "<T> = " + body + ";",
		}
		decls = append(decls, decl)
	}

	return decls, invalid, errs
}

func exportPrefix(cfg RenderConfig) string {
	if cfg.NoExport {
		return ""
	}

	return "export "
}
