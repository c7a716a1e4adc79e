package typescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	codegen "github.com/negative0/graphql-code-generator"
)

func colorEnum() *codegen.TypeDef {
	return &codegen.TypeDef{
		Kind: codegen.KindEnum,
		Name: "Color",
		EnumValues: []*codegen.EnumValue{
			{Name: "RED"},
			{Name: "GREEN"},
			{Name: "BLUE"},
		},
	}
}

func TestRenderEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  *codegen.TypeDef
		cfg  RenderConfig
		want string
	}{
		{
			name: "plain",
			def:  colorEnum(),
			want: "export enum Color {\n" +
				"  RED = 'RED',\n" +
				"  GREEN = 'GREEN',\n" +
				"  BLUE = 'BLUE'\n" +
				"}",
		},
		{
			name: "const plain",
			def:  colorEnum(),
			cfg:  RenderConfig{ConstEnums: true},
			want: "export const enum Color {\n" +
				"  RED = 'RED',\n" +
				"  GREEN = 'GREEN',\n" +
				"  BLUE = 'BLUE'\n" +
				"}",
		},
		{
			name: "numeric plain",
			def:  colorEnum(),
			cfg:  RenderConfig{NumericEnums: true},
			want: "export enum Color {\n" +
				"  RED = 0,\n" +
				"  GREEN = 1,\n" +
				"  BLUE = 2\n" +
				"}",
		},
		{
			name: "as types",
			def:  colorEnum(),
			cfg:  RenderConfig{EnumMode: EnumModeTypes},
			want: "export type Color = 'RED' | 'GREEN' | 'BLUE';",
		},
		{
			name: "as types with string escape hatch",
			def:  colorEnum(),
			cfg:  RenderConfig{EnumMode: EnumModeTypes, AllowEnumStringTypes: true},
			want: "export type Color = 'RED' | 'GREEN' | 'BLUE' | string;",
		},
		{
			name: "as const",
			def:  colorEnum(),
			cfg:  RenderConfig{EnumMode: EnumModeConst},
			want: "export const Color = {\n" +
				"  RED: 'RED',\n" +
				"  GREEN: 'GREEN',\n" +
				"  BLUE: 'BLUE'\n" +
				"} as const;\n\n" +
				"export type Color = typeof Color[keyof typeof Color];",
		},
		{
			name: "future proof as types",
			def:  colorEnum(),
			cfg:  RenderConfig{EnumMode: EnumModeTypes, FutureProofEnums: true},
			want: "export type Color = 'RED' | 'GREEN' | 'BLUE' | '%future added value';",
		},
		{
			name: "future proof plain quotes sentinel key",
			def:  colorEnum(),
			cfg:  RenderConfig{FutureProofEnums: true},
			want: "export enum Color {\n" +
				"  RED = 'RED',\n" +
				"  GREEN = 'GREEN',\n" +
				"  BLUE = 'BLUE',\n" +
				"  '%future added value' = '%future added value'\n" +
				"}",
		},
		{
			name: "no export",
			def:  colorEnum(),
			cfg:  RenderConfig{EnumMode: EnumModeTypes, NoExport: true},
			want: "type Color = 'RED' | 'GREEN' | 'BLUE';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decl := renderEnum(tt.def, tt.cfg)
			if diff := cmp.Diff(tt.want, decl.Body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderEnumSentinelCollision(t *testing.T) {
	t.Parallel()

	def := &codegen.TypeDef{
		Kind: codegen.KindEnum,
		Name: "Weird",
		EnumValues: []*codegen.EnumValue{
			{Name: "%future added value"},
		},
	}

	decl := renderEnum(def, RenderConfig{EnumMode: EnumModeTypes, FutureProofEnums: true})
	assert.Equal(t,
		"export type Weird = '%future added value' | '%future added value1';",
		decl.Body)
}

func TestRenderEnumFutureProofDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	def := colorEnum()
	renderEnum(def, RenderConfig{EnumMode: EnumModeTypes, FutureProofEnums: true})
	assert.Len(t, def.EnumValues, 3)
}

func TestRenderEnumMemberDescriptions(t *testing.T) {
	t.Parallel()

	def := &codegen.TypeDef{
		Kind: codegen.KindEnum,
		Name: "Status",
		EnumValues: []*codegen.EnumValue{
			{Name: "PENDING", Description: "Work has not started."},
			{Name: "DONE"},
		},
	}

	decl := renderEnum(def, RenderConfig{})
	want := "export enum Status {\n" +
		"  /** Work has not started. */\n" +
		"  PENDING = 'PENDING',\n" +
		"  DONE = 'DONE'\n" +
		"}"
	assert.Equal(t, want, decl.Body)

	decl = renderEnum(def, RenderConfig{DisableDescriptions: true})
	assert.NotContains(t, decl.Body, "Work has not started.")
}
