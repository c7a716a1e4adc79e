package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codegen "github.com/negative0/graphql-code-generator"
)

func TestParseTypeRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *codegen.TypeRef
	}{
		{
			name:     "nullable named",
			input:    "String",
			expected: codegen.Named("String"),
		},
		{
			name:     "non-null named",
			input:    "String!",
			expected: codegen.NonNull(codegen.Named("String")),
		},
		{
			name:     "nullable list of non-null",
			input:    "[Int!]",
			expected: codegen.ListOf(codegen.NonNull(codegen.Named("Int"))),
		},
		{
			name:     "non-null list of nullable",
			input:    "[Post]!",
			expected: codegen.NonNull(codegen.ListOf(codegen.Named("Post"))),
		},
		{
			name:  "nested lists",
			input: "[[ID]!]!",
			expected: codegen.NonNull(codegen.ListOf(
				codegen.NonNull(codegen.ListOf(codegen.Named("ID"))),
			)),
		},
		{
			name:     "surrounding whitespace",
			input:    "  User  ",
			expected: codegen.Named("User"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := codegen.ParseTypeRef(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestParseTypeRefErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: codegen.ErrEmptyTypeRef},
		{name: "blank", input: "   ", want: codegen.ErrEmptyTypeRef},
		{name: "bare bang", input: "!", want: codegen.ErrEmptyTypeRef},
		{name: "unclosed list", input: "[String", want: codegen.ErrInvalidTypeRef},
		{name: "bad name", input: "3D", want: codegen.ErrInvalidTypeRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := codegen.ParseTypeRef(tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTypeRefString(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"String", "String!", "[Int!]", "[[ID]!]!"} {
		ref, err := codegen.ParseTypeRef(s)
		require.NoError(t, err)
		assert.Equal(t, s, ref.String())
	}
}

func TestTypeRefLeaf(t *testing.T) {
	t.Parallel()

	ref, err := codegen.ParseTypeRef("[[Post!]]!")
	require.NoError(t, err)
	assert.Equal(t, "Post", ref.Leaf())
	assert.True(t, ref.IsList())
}

func TestSchemaLookup(t *testing.T) {
	t.Parallel()

	schema := codegen.NewSchema([]*codegen.TypeDef{
		{Kind: codegen.KindEnum, Name: "Color"},
		{Kind: codegen.KindObject, Name: "User", Interfaces: []string{"Node"}},
		{Kind: codegen.KindInterface, Name: "Node"},
		{Kind: codegen.KindObject, Name: "Post", Interfaces: []string{"Node"}},
	})

	require.NotNil(t, schema.Lookup("User"))
	assert.Nil(t, schema.Lookup("Missing"))

	enums := schema.TypesOfKind(codegen.KindEnum)
	require.Len(t, enums, 1)
	assert.Equal(t, "Color", enums[0].Name)

	impls := schema.Implementors("Node")
	require.Len(t, impls, 2)
	assert.Equal(t, "User", impls[0].Name)
	assert.Equal(t, "Post", impls[1].Name)
}
