package typescript

import (
	codegen "github.com/negative0/graphql-code-generator"
)

// EnumMode is the resolved enum representation. Exactly one mode applies to
// a run; the raw boolean flags collapse by fixed precedence and never fail.
type EnumMode int

// Enum representation modes, in precedence order.
const (
	// EnumModePlain renders a (possibly const) enum declaration.
	EnumModePlain EnumMode = iota

	// EnumModeTypes renders a string-literal union type alias.
	EnumModeTypes

	// EnumModeConst renders a const object literal plus a derived type.
	EnumModeConst
)

// TypeFilter restricts which type categories are emitted.
type TypeFilter int

// Type filter values.
const (
	// FilterAll emits every category.
	FilterAll TypeFilter = iota

	// FilterEnumsAndScalars emits only enum and scalar declarations.
	FilterEnumsAndScalars

	// FilterEnumsOnly emits only enum declarations.
	FilterEnumsOnly
)

// Allows reports whether the filter permits the given type kind.
func (f TypeFilter) Allows(kind codegen.TypeKind) bool {
	switch f {
	case FilterEnumsOnly:
		return kind == codegen.KindEnum
	case FilterEnumsAndScalars:
		return kind == codegen.KindEnum || kind == codegen.KindScalar
	default:
		return true
	}
}

// AvoidOptionals is the fully resolved per-category optional-marker policy.
type AvoidOptionals struct {
	// Field suppresses optional markers on output fields.
	Field bool

	// InputValue suppresses optional markers on input-object fields.
	InputValue bool

	// Object suppresses optional markers on input arguments.
	Object bool

	// DefaultValue suppresses optionality granted by default values.
	DefaultValue bool
}

// RenderConfig is the fully resolved policy snapshot consumed by every
// rendering call. It has no optional fields, is built once per run, and is
// threaded explicitly; nothing reads it from ambient state.
type RenderConfig struct {
	AvoidOptionals AvoidOptionals

	EnumMode     EnumMode
	ConstEnums   bool
	NumericEnums bool

	FutureProofEnums  bool
	FutureProofUnions bool

	TypeFilter TypeFilter

	ImmutableTypes       bool
	NoExport             bool
	DisableDescriptions  bool
	UseImplementingTypes bool
	AllowEnumStringTypes bool

	WrapFieldDefinitions       bool
	WrapEntireFieldDefinitions bool

	// Wrapper alias bodies, unvalidated. The wrapper registry validates
	// them lazily when an alias declaration is assembled.
	MaybeValue              string
	InputMaybeValue         string
	FieldWrapperValue       string
	EntireFieldWrapperValue string

	// Scalars maps custom scalar names to TypeScript type text.
	Scalars map[string]string
}

// Wrapper alias default bodies.
const (
	DefaultMaybeValue              = "T | null"
	DefaultFieldWrapperValue       = "T"
	DefaultEntireFieldWrapperValue = "T | Promise<T> | (() => T | Promise<T>)"
)

// Resolve normalizes raw options into a RenderConfig. Contradictory flag
// combinations never fail: the enum representation collapses by fixed
// precedence (enumsAsTypes > enumsAsConst > plain), and onlyEnums wins over
// onlyOperationTypes because "enums only" is strictly narrower.
func Resolve(opts *codegen.TypeScriptOptions) RenderConfig {
	if opts == nil {
		opts = &codegen.TypeScriptOptions{}
	}

	cfg := RenderConfig{
		AvoidOptionals: AvoidOptionals{
			Field:        boolValue(opts.AvoidOptionals.Field),
			InputValue:   boolValue(opts.AvoidOptionals.InputValue),
			Object:       boolValue(opts.AvoidOptionals.Object),
			DefaultValue: boolValue(opts.AvoidOptionals.DefaultValue),
		},
		FutureProofEnums:           opts.FutureProofEnums,
		FutureProofUnions:          opts.FutureProofUnions,
		ImmutableTypes:             opts.ImmutableTypes,
		NoExport:                   opts.NoExport,
		DisableDescriptions:        opts.DisableDescriptions,
		UseImplementingTypes:       opts.UseImplementingTypes,
		AllowEnumStringTypes:       opts.AllowEnumStringTypes,
		WrapFieldDefinitions:       opts.WrapFieldDefinitions,
		WrapEntireFieldDefinitions: opts.WrapEntireFieldDefinitions,
		Scalars:                    opts.Scalars,
	}

	switch {
	case opts.EnumsAsTypes:
		cfg.EnumMode = EnumModeTypes
	case opts.EnumsAsConst:
		cfg.EnumMode = EnumModeConst
	default:
		cfg.EnumMode = EnumModePlain
		// constEnums and numericEnums only have effect in plain mode.
		cfg.ConstEnums = opts.ConstEnums
		cfg.NumericEnums = opts.NumericEnums
	}

	switch {
	case opts.OnlyEnums:
		cfg.TypeFilter = FilterEnumsOnly
	case opts.OnlyOperationTypes:
		cfg.TypeFilter = FilterEnumsAndScalars
	default:
		cfg.TypeFilter = FilterAll
	}

	cfg.MaybeValue = stringOr(opts.MaybeValue, DefaultMaybeValue)
	cfg.InputMaybeValue = stringOr(opts.InputMaybeValue, cfg.MaybeValue)
	cfg.FieldWrapperValue = stringOr(opts.FieldWrapperValue, DefaultFieldWrapperValue)
	cfg.EntireFieldWrapperValue = stringOr(opts.EntireFieldWrapperValue, DefaultEntireFieldWrapperValue)

	return cfg
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func stringOr(s, fallback string) string {
	if s != "" {
		return s
	}

	return fallback
}
