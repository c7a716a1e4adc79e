// Package sdl parses GraphQL schema definition language into the codegen
// schema model.
package sdl

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	tEOF         lexer.TokenType = lexer.EOF
	tComment     lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	tBlockString                               // triple-quoted strings
	tString                                    // quoted strings
	tNumber                                    // int and float values
	tIdent                                     // names
	tPunct                                     // punctuators
	tComma                                     // insignificant commas
	tWhitespace                                // spaces, tabs, newlines
)

// Lexer errors.
var (
	ErrUnterminatedBlockString = &LexerError{msg: "unterminated block string"}
	ErrUnterminatedString      = &LexerError{msg: "unterminated string"}
	ErrUnexpectedCharacter     = &LexerError{msg: "unexpected character"}
)

// LexerError represents a lexer error with position.
type LexerError struct {
	msg string
	pos lexer.Position
	ch  rune
}

func (e *LexerError) Error() string {
	if e.ch != 0 {
		return e.pos.String() + ": " + e.msg + ": " + string(e.ch)
	}

	return e.pos.String() + ": " + e.msg
}

func (e *LexerError) withPos(pos lexer.Position) *LexerError {
	return &LexerError{msg: e.msg, pos: pos, ch: e.ch}
}

func (e *LexerError) withChar(ch rune) *LexerError {
	return &LexerError{msg: e.msg, pos: e.pos, ch: ch}
}

// sdlDefinition implements lexer.Definition for GraphQL SDL.
type sdlDefinition struct {
	symbols map[string]lexer.TokenType
}

// newSDLLexer creates a new lexer Definition for GraphQL SDL.
func newSDLLexer() *sdlDefinition {
	return &sdlDefinition{
		symbols: map[string]lexer.TokenType{
			"EOF":         tEOF,
			"Comment":     tComment,
			"BlockString": tBlockString,
			"String":      tString,
			"Number":      tNumber,
			"Ident":       tIdent,
			"Punct":       tPunct,
			"Comma":       tComma,
			"Whitespace":  tWhitespace,
		},
	}
}

// Symbols returns the mapping of symbol names to token types.
func (d *sdlDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex creates a new Lexer for the given reader.
//
//nolint:ireturn // Required by participle's lexer.Definition interface.
func (d *sdlDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return d.LexBytes(filename, data)
}

// LexBytes implements lexer.BytesDefinition for efficiency.
//
//nolint:ireturn // Required by participle's lexer.BytesDefinition interface.
func (d *sdlDefinition) LexBytes(filename string, data []byte) (lexer.Lexer, error) {
	return newLexerState(filename, string(data)), nil
}

// LexString implements lexer.StringDefinition for efficiency.
//
//nolint:ireturn // Required by participle's lexer.StringDefinition interface.
func (d *sdlDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	return newLexerState(filename, input), nil
}

// lexerState holds the state for lexing.
type lexerState struct {
	filename string
	input    string
	offset   int
	line     int
	col      int
}

func newLexerState(filename, input string) *lexerState {
	return &lexerState{filename: filename, input: input, line: 1, col: 1}
}

// Next returns the next token.
func (l *lexerState) Next() (lexer.Token, error) {
	if l.eof() {
		return lexer.EOFToken(l.pos()), nil
	}

	start := l.pos()
	r := l.peek()

	// Whitespace
	if isSpace(r) {
		for !l.eof() && isSpace(l.peek()) {
			l.advance()
		}

		return l.token(tWhitespace, start), nil
	}

	// Commas are insignificant in GraphQL
	if r == ',' {
		l.advance()

		return l.token(tComma, start), nil
	}

	// Comment
	if r == '#' {
		for !l.eof() && l.peek() != '\n' {
			l.advance()
		}

		return l.token(tComment, start), nil
	}

	// Block string or string
	if r == '"' {
		if l.match(`"""`) {
			return l.scanBlockString(start)
		}

		return l.scanString(start)
	}

	// Number (int or float, possibly negative)
	if isDigit(r) || (r == '-' && isDigit(l.peekNext())) {
		return l.scanNumber(start), nil
	}

	// Name
	if isNameStart(r) {
		l.advance() // consume first char

		for !l.eof() && isNameContinue(l.peek()) {
			l.advance()
		}

		return l.token(tIdent, start), nil
	}

	// Punctuators
	l.advance()

	if strings.ContainsRune("!$&():=@[]{|}", r) {
		return l.token(tPunct, start), nil
	}

	return lexer.Token{}, ErrUnexpectedCharacter.withPos(start).withChar(r)
}

func (l *lexerState) pos() lexer.Position {
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *lexerState) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexerState) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	return r
}

// peekNext returns the rune after the current one without consuming either.
func (l *lexerState) peekNext() rune {
	_, size := utf8.DecodeRuneInString(l.input[l.offset:])
	if l.offset+size >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset+size:])

	return r
}

func (l *lexerState) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexerState) match(s string) bool {
	return strings.HasPrefix(l.input[l.offset:], s)
}

func (l *lexerState) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: l.input[start.Offset:l.offset],
		Pos:   start,
	}
}

func (l *lexerState) scanBlockString(start lexer.Position) (lexer.Token, error) {
	l.advance() // opening """
	l.advance()
	l.advance()

	for !l.eof() {
		if l.match(`\"""`) {
			l.advance()
			l.advance()
			l.advance()
			l.advance()

			continue
		}

		if l.match(`"""`) {
			l.advance() // closing """
			l.advance()
			l.advance()

			return l.token(tBlockString, start), nil
		}

		l.advance()
	}

	return lexer.Token{}, ErrUnterminatedBlockString.withPos(start)
}

func (l *lexerState) scanString(start lexer.Position) (lexer.Token, error) {
	l.advance() // opening quote

	for !l.eof() {
		switch l.peek() {
		case '\\':
			l.advance()

			if !l.eof() {
				l.advance() // escaped char
			}
		case '"':
			l.advance() // closing quote

			return l.token(tString, start), nil
		case '\n':
			return lexer.Token{}, ErrUnterminatedString.withPos(start)
		default:
			l.advance()
		}
	}

	return lexer.Token{}, ErrUnterminatedString.withPos(start)
}

func (l *lexerState) scanNumber(start lexer.Position) lexer.Token {
	if l.peek() == '-' {
		l.advance()
	}

	l.digits()

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // decimal point
		l.digits()
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()

		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}

		l.digits()
	}

	return l.token(tNumber, start)
}

func (l *lexerState) digits() {
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
}

// Character helpers.

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
