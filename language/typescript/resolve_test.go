package typescript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	codegen "github.com/negative0/graphql-code-generator"
	"github.com/negative0/graphql-code-generator/language/typescript"
)

func TestResolveEnumMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts codegen.TypeScriptOptions
		want typescript.EnumMode
	}{
		{
			name: "default is plain",
			want: typescript.EnumModePlain,
		},
		{
			name: "enumsAsTypes",
			opts: codegen.TypeScriptOptions{EnumsAsTypes: true},
			want: typescript.EnumModeTypes,
		},
		{
			name: "enumsAsConst",
			opts: codegen.TypeScriptOptions{EnumsAsConst: true},
			want: typescript.EnumModeConst,
		},
		{
			name: "enumsAsTypes wins over enumsAsConst",
			opts: codegen.TypeScriptOptions{EnumsAsTypes: true, EnumsAsConst: true},
			want: typescript.EnumModeTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := typescript.Resolve(&tt.opts)
			assert.Equal(t, tt.want, cfg.EnumMode)
		})
	}
}

func TestResolveEnumFlagsOutsidePlainMode(t *testing.T) {
	t.Parallel()

	// constEnums and numericEnums only apply to the plain representation;
	// under enumsAsTypes or enumsAsConst they must not leak through.
	cfg := typescript.Resolve(&codegen.TypeScriptOptions{
		EnumsAsTypes: true,
		ConstEnums:   true,
		NumericEnums: true,
	})
	assert.False(t, cfg.ConstEnums)
	assert.False(t, cfg.NumericEnums)

	cfg = typescript.Resolve(&codegen.TypeScriptOptions{
		ConstEnums:   true,
		NumericEnums: true,
	})
	assert.True(t, cfg.ConstEnums)
	assert.True(t, cfg.NumericEnums)
}

func TestResolveTypeFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts codegen.TypeScriptOptions
		want typescript.TypeFilter
	}{
		{
			name: "default emits everything",
			want: typescript.FilterAll,
		},
		{
			name: "onlyOperationTypes",
			opts: codegen.TypeScriptOptions{OnlyOperationTypes: true},
			want: typescript.FilterEnumsAndScalars,
		},
		{
			name: "onlyEnums",
			opts: codegen.TypeScriptOptions{OnlyEnums: true},
			want: typescript.FilterEnumsOnly,
		},
		{
			name: "onlyEnums wins over onlyOperationTypes",
			opts: codegen.TypeScriptOptions{OnlyEnums: true, OnlyOperationTypes: true},
			want: typescript.FilterEnumsOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := typescript.Resolve(&tt.opts)
			assert.Equal(t, tt.want, cfg.TypeFilter)
		})
	}
}

func TestTypeFilterAllows(t *testing.T) {
	t.Parallel()

	assert.True(t, typescript.FilterAll.Allows(codegen.KindObject))
	assert.True(t, typescript.FilterEnumsAndScalars.Allows(codegen.KindEnum))
	assert.True(t, typescript.FilterEnumsAndScalars.Allows(codegen.KindScalar))
	assert.False(t, typescript.FilterEnumsAndScalars.Allows(codegen.KindObject))
	assert.True(t, typescript.FilterEnumsOnly.Allows(codegen.KindEnum))
	assert.False(t, typescript.FilterEnumsOnly.Allows(codegen.KindScalar))
}

func TestResolveAvoidOptionals(t *testing.T) {
	t.Parallel()

	var opts codegen.TypeScriptOptions

	opts.AvoidOptionals.All(true)

	cfg := typescript.Resolve(&opts)
	assert.Equal(t, typescript.AvoidOptionals{
		Field:        true,
		InputValue:   true,
		Object:       true,
		DefaultValue: true,
	}, cfg.AvoidOptionals)

	yes := true
	cfg = typescript.Resolve(&codegen.TypeScriptOptions{
		AvoidOptionals: codegen.AvoidOptionalsConfig{Field: &yes},
	})
	assert.Equal(t, typescript.AvoidOptionals{Field: true}, cfg.AvoidOptionals)
}

func TestResolveWrapperBodies(t *testing.T) {
	t.Parallel()

	cfg := typescript.Resolve(nil)
	assert.Equal(t, typescript.DefaultMaybeValue, cfg.MaybeValue)
	assert.Equal(t, typescript.DefaultMaybeValue, cfg.InputMaybeValue)
	assert.Equal(t, typescript.DefaultFieldWrapperValue, cfg.FieldWrapperValue)
	assert.Equal(t, typescript.DefaultEntireFieldWrapperValue, cfg.EntireFieldWrapperValue)

	// inputMaybeValue defaults to the resolved maybeValue, not the built-in.
	cfg = typescript.Resolve(&codegen.TypeScriptOptions{MaybeValue: "T | undefined"})
	assert.Equal(t, "T | undefined", cfg.MaybeValue)
	assert.Equal(t, "T | undefined", cfg.InputMaybeValue)

	cfg = typescript.Resolve(&codegen.TypeScriptOptions{
		MaybeValue:      "T | undefined",
		InputMaybeValue: "T | null | undefined",
	})
	assert.Equal(t, "T | undefined", cfg.MaybeValue)
	assert.Equal(t, "T | null | undefined", cfg.InputMaybeValue)
}
