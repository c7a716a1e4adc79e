package codegen

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeScriptOptions is the raw, partially-shorthand option surface for the
// TypeScript generator, as it appears under "typescript:" in codegen.yaml.
// Every field is optional; resolution to a concrete policy happens inside
// the generator.
type TypeScriptOptions struct {
	// AvoidOptionals suppresses optional-member markers, either globally
	// (bare boolean) or per category.
	AvoidOptionals AvoidOptionalsConfig `yaml:"avoidOptionals,omitempty"`

	// ConstEnums prefixes plain enum declarations with const.
	ConstEnums bool `yaml:"constEnums,omitempty"`

	// EnumsAsTypes renders enums as string-literal union types.
	EnumsAsTypes bool `yaml:"enumsAsTypes,omitempty"`

	// NumericEnums assigns sequential integer values in plain enum mode.
	NumericEnums bool `yaml:"numericEnums,omitempty"`

	// FutureProofEnums appends a sentinel member to every enum.
	FutureProofEnums bool `yaml:"futureProofEnums,omitempty"`

	// FutureProofUnions appends a sentinel arm to every union.
	FutureProofUnions bool `yaml:"futureProofUnions,omitempty"`

	// EnumsAsConst renders enums as a const object plus a derived type.
	EnumsAsConst bool `yaml:"enumsAsConst,omitempty"`

	// OnlyEnums restricts output to enum declarations.
	OnlyEnums bool `yaml:"onlyEnums,omitempty"`

	// OnlyOperationTypes restricts output to enums and scalars.
	OnlyOperationTypes bool `yaml:"onlyOperationTypes,omitempty"`

	// ImmutableTypes emits readonly fields and readonly array syntax.
	ImmutableTypes bool `yaml:"immutableTypes,omitempty"`

	// MaybeValue overrides the Maybe alias body. Default "T | null".
	MaybeValue string `yaml:"maybeValue,omitempty"`

	// InputMaybeValue overrides the InputMaybe alias body.
	// Defaults to Maybe's body.
	InputMaybeValue string `yaml:"inputMaybeValue,omitempty"`

	// NoExport omits the export qualifier from top-level declarations.
	NoExport bool `yaml:"noExport,omitempty"`

	// DisableDescriptions suppresses description comments.
	DisableDescriptions bool `yaml:"disableDescriptions,omitempty"`

	// UseImplementingTypes substitutes interface use sites with a union of
	// the implementing object types.
	UseImplementingTypes bool `yaml:"useImplementingTypes,omitempty"`

	// WrapFieldDefinitions wraps the innermost field value type with the
	// FieldWrapper alias.
	WrapFieldDefinitions bool `yaml:"wrapFieldDefinitions,omitempty"`

	// FieldWrapperValue overrides the FieldWrapper alias body. Default "T".
	FieldWrapperValue string `yaml:"fieldWrapperValue,omitempty"`

	// WrapEntireFieldDefinitions wraps the fully rendered field type with
	// the EntireFieldWrapper alias.
	WrapEntireFieldDefinitions bool `yaml:"wrapEntireFieldDefinitions,omitempty"`

	// EntireFieldWrapperValue overrides the EntireFieldWrapper alias body.
	// Default "T | Promise<T> | (() => T | Promise<T>)".
	EntireFieldWrapperValue string `yaml:"entireFieldWrapperValue,omitempty"`

	// AllowEnumStringTypes permits raw string literals where enum values
	// are expected (adds "| string" to enum union types).
	AllowEnumStringTypes bool `yaml:"allowEnumStringTypes,omitempty"`

	// Scalars maps custom scalar names to TypeScript type text.
	// Unmapped custom scalars render as "any".
	Scalars map[string]string `yaml:"scalars,omitempty"`
}

// AvoidOptionalsConfig is a boolean-or-record option shape. A bare boolean
// applies to all four categories; a record sets each category independently,
// absent keys defaulting to false.
type AvoidOptionalsConfig struct {
	// Field controls output-field optional markers.
	Field *bool `yaml:"field,omitempty"`

	// InputValue controls input-object-field optional markers.
	InputValue *bool `yaml:"inputValue,omitempty"`

	// Object controls input-argument optional markers.
	Object *bool `yaml:"object,omitempty"`

	// DefaultValue controls optionality granted by default-value presence.
	DefaultValue *bool `yaml:"defaultValue,omitempty"`
}

// UnmarshalYAML accepts either a bare boolean or a per-category record.
func (a *AvoidOptionalsConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var all bool
		if err := node.Decode(&all); err != nil {
			return fmt.Errorf("avoidOptionals: %w", err)
		}

		a.Field = &all
		a.InputValue = &all
		a.Object = &all
		a.DefaultValue = &all

		return nil
	}

	type record AvoidOptionalsConfig

	return node.Decode((*record)(a))
}

// All sets every category to the given value. Used by callers constructing
// options programmatically, mirroring the bare-boolean shorthand.
func (a *AvoidOptionalsConfig) All(v bool) {
	a.Field = &v
	a.InputValue = &v
	a.Object = &v
	a.DefaultValue = &v
}
