package sdl

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// sdlLexer is the custom lexer for GraphQL SDL.
var sdlLexer = newSDLLexer()

var parser = participle.MustBuild[Document](
	participle.Lexer(sdlLexer),
	participle.Map(unquoteString, "String"),
	participle.Map(unquoteBlockString, "BlockString"),
	participle.Elide("Whitespace", "Comment", "Comma"),
	participle.UseLookahead(2), //nolint:mnd // descriptions precede definition keywords
)

// Parse parses an SDL document.
func Parse(filename string, data []byte) (*Document, error) {
	return parser.ParseBytes(filename, data)
}

// ParseString parses an SDL document from a string.
func ParseString(filename, input string) (*Document, error) {
	return parser.ParseString(filename, input)
}

// unquoteString strips the quotes from a string token and resolves the
// GraphQL escape sequences.
func unquoteString(tok lexer.Token) (lexer.Token, error) {
	raw := tok.Value
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}

	var b strings.Builder

	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			b.WriteByte(raw[i])

			continue
		}

		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		default:
			// Covers \" \\ \/ and passes unknown escapes through.
			b.WriteByte(raw[i])
		}
	}

	tok.Value = b.String()

	return tok, nil
}

// unquoteBlockString strips the triple quotes and applies the block string
// value algorithm: drop the common indentation and surrounding blank lines.
func unquoteBlockString(tok lexer.Token) (lexer.Token, error) {
	raw := tok.Value
	if len(raw) >= 6 {
		raw = raw[3 : len(raw)-3]
	}

	raw = strings.ReplaceAll(raw, `\"""`, `"""`)
	lines := strings.Split(raw, "\n")

	// Common indentation of all lines after the first.
	indent := -1

	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}

		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent > 0 {
		for i, line := range lines[1:] {
			if len(line) >= indent {
				lines[i+1] = line[indent:]
			} else {
				lines[i+1] = strings.TrimLeft(line, " \t")
			}
		}
	}

	// Trim leading and trailing blank lines.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	tok.Value = strings.Join(lines[start:end], "\n")

	return tok, nil
}
