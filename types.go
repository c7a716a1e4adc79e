package codegen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Type reference parsing errors.
var (
	ErrEmptyTypeRef   = errors.New("empty type reference")
	ErrInvalidTypeRef = errors.New("invalid type reference")
)

// TypeRef is a recursive type reference: either a named leaf or a list
// wrapping an inner reference, with a nullability flag at every level.
// In GraphQL notation, "[String!]" is a nullable list of non-null strings.
type TypeRef struct {
	// Name is the named leaf type. Empty for list levels.
	Name string

	// OfType is the element reference for list levels. Nil for leaves.
	OfType *TypeRef

	// Nullable reports whether this level admits null.
	Nullable bool
}

// IsList reports whether this level is a list wrapping.
func (t *TypeRef) IsList() bool {
	return t.OfType != nil
}

// Leaf returns the named leaf at the bottom of the reference.
func (t *TypeRef) Leaf() string {
	for t.OfType != nil {
		t = t.OfType
	}

	return t.Name
}

// String returns the GraphQL notation for the reference, e.g. "[Post!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}

	var base string
	if t.OfType != nil {
		base = "[" + t.OfType.String() + "]"
	} else {
		base = t.Name
	}

	if !t.Nullable {
		return base + "!"
	}

	return base
}

// Named creates a nullable reference to a named type.
func Named(name string) *TypeRef {
	return &TypeRef{Name: name, Nullable: true}
}

// ListOf creates a nullable list reference wrapping elem.
func ListOf(elem *TypeRef) *TypeRef {
	return &TypeRef{OfType: elem, Nullable: true}
}

// NonNull returns a copy of t with nullability stripped at the outer level.
func NonNull(t *TypeRef) *TypeRef {
	c := *t
	c.Nullable = false

	return &c
}

// ParseTypeRef parses a GraphQL type string into a TypeRef.
// Supports named types, list nesting and non-null markers.
//
// Examples:
//
//	"String"     -> nullable String
//	"String!"    -> non-null String
//	"[Int!]"     -> nullable list of non-null Int
//	"[[ID]!]!"   -> non-null list of non-null lists of nullable ID
func ParseTypeRef(s string) (*TypeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyTypeRef
	}

	return parseTypeRef(s)
}

func parseTypeRef(s string) (*TypeRef, error) {
	nullable := true
	if strings.HasSuffix(s, "!") {
		nullable = false
		s = strings.TrimSpace(s[:len(s)-1])
	}

	if s == "" {
		return nil, ErrEmptyTypeRef
	}

	// List: [T]
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTypeRef, s)
		}

		elem, err := parseTypeRef(strings.TrimSpace(s[1 : len(s)-1]))
		if err != nil {
			return nil, err
		}

		ref := ListOf(elem)
		ref.Nullable = nullable

		return ref, nil
	}

	if !isName(s) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTypeRef, s)
	}

	ref := Named(s)
	ref.Nullable = nullable

	return ref, nil
}

// isName reports whether s is a valid GraphQL name.
func isName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}
