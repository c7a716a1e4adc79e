package typescript

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// builtinScalarTypes maps the built-in GraphQL scalars to TypeScript types.
var builtinScalarTypes = map[string]string{
	"Int":     "number",
	"Float":   "number",
	"String":  "string",
	"Boolean": "boolean",
	"ID":      "string",
}

// defaultScalarType is the rendering for custom scalars without a mapping.
const defaultScalarType = "any"

// reservedWords are TypeScript keywords that cannot be used as identifiers.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
}

// IsReservedWord reports whether s is a TypeScript keyword.
func IsReservedWord(s string) bool {
	return reservedWords[s]
}

// isIdentifier reports whether s is a valid TypeScript identifier.
func isIdentifier(s string) bool {
	if s == "" || IsReservedWord(s) {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' && r != '$' {
				return false
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
				return false
			}
		}
	}

	return true
}

// quoteLiteral renders s as a single-quoted TypeScript string literal.
func quoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('\'')

	return b.String()
}

// memberKey renders an object/enum member key, quoting it when it is not a
// valid identifier.
func memberKey(name string) string {
	if isIdentifier(name) {
		return name
	}

	return quoteLiteral(name)
}

// pascalCase upper-cases the first rune of s.
func pascalCase(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
