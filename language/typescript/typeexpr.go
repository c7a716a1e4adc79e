package typescript

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type expression validation errors.
var (
	ErrEmptyTypeExpr      = errors.New("empty type expression")
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnexpectedEnd      = errors.New("unexpected end of type expression")
)

// validateTypeExpr checks that s parses as a TypeScript type expression.
// It covers the surface wrapper bodies realistically use: named and
// qualified types, generic arguments, unions, intersections, literals,
// array and tuple syntax, object types, and function types.
func validateTypeExpr(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyTypeExpr
	}

	toks, err := lexTypeExpr(s)
	if err != nil {
		return err
	}

	p := &exprParser{toks: toks}
	if err := p.parseUnion(); err != nil {
		return err
	}

	if !p.eof() {
		return fmt.Errorf("unexpected %q after type expression", p.peek().text)
	}

	return nil
}

type exprTokenKind int

const (
	tokEOF exprTokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokPunct
)

type exprToken struct {
	kind exprTokenKind
	text string
}

func lexTypeExpr(s string) ([]exprToken, error) {
	var toks []exprToken

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i += size

		case unicode.IsLetter(r) || r == '_' || r == '$':
			start := i
			for i < len(s) {
				r, size := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
					break
				}
				i += size
			}

			toks = append(toks, exprToken{kind: tokIdent, text: s[start:i]})

		case r >= '0' && r <= '9':
			start := i
			for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
				i++
			}

			toks = append(toks, exprToken{kind: tokNumber, text: s[start:i]})

		case r == '\'' || r == '"':
			quote := byte(r)
			start := i
			i++

			for {
				if i >= len(s) {
					return nil, ErrUnterminatedString
				}

				if s[i] == '\\' && i+1 < len(s) {
					i += 2

					continue
				}

				if s[i] == quote {
					i++

					break
				}

				i++
			}

			toks = append(toks, exprToken{kind: tokString, text: s[start:i]})

		case r == '=' && i+1 < len(s) && s[i+1] == '>':
			toks = append(toks, exprToken{kind: tokPunct, text: "=>"})
			i += 2

		case strings.ContainsRune("|&<>()[]{},.:;?-", r):
			toks = append(toks, exprToken{kind: tokPunct, text: string(r)})
			i += size

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedChar, r)
		}
	}

	return toks, nil
}

type exprParser struct {
	toks []exprToken
	pos  int
}

func (p *exprParser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *exprParser) peek() exprToken {
	if p.eof() {
		return exprToken{kind: tokEOF}
	}

	return p.toks[p.pos]
}

func (p *exprParser) next() exprToken {
	tok := p.peek()
	p.pos++

	return tok
}

func (p *exprParser) acceptPunct(text string) bool {
	if tok := p.peek(); tok.kind == tokPunct && tok.text == text {
		p.pos++

		return true
	}

	return false
}

func (p *exprParser) expectPunct(text string) error {
	if !p.acceptPunct(text) {
		if p.eof() {
			return fmt.Errorf("%w: expected %q", ErrUnexpectedEnd, text)
		}

		return fmt.Errorf("expected %q, found %q", text, p.peek().text)
	}

	return nil
}

// parseUnion := '|'? intersection ('|' intersection)*
func (p *exprParser) parseUnion() error {
	p.acceptPunct("|")

	if err := p.parseIntersection(); err != nil {
		return err
	}

	for p.acceptPunct("|") {
		if err := p.parseIntersection(); err != nil {
			return err
		}
	}

	return nil
}

// parseIntersection := postfix ('&' postfix)*
func (p *exprParser) parseIntersection() error {
	if err := p.parsePostfix(); err != nil {
		return err
	}

	for p.acceptPunct("&") {
		if err := p.parsePostfix(); err != nil {
			return err
		}
	}

	return nil
}

// parsePostfix := primary ('[' ']' | '[' union ']')*
func (p *exprParser) parsePostfix() error {
	if err := p.parsePrimary(); err != nil {
		return err
	}

	for p.acceptPunct("[") {
		if p.acceptPunct("]") {
			continue
		}

		if err := p.parseUnion(); err != nil {
			return err
		}

		if err := p.expectPunct("]"); err != nil {
			return err
		}
	}

	return nil
}

func (p *exprParser) parsePrimary() error {
	tok := p.peek()

	switch tok.kind {
	case tokIdent:
		p.next()

		// Type operators apply to a following type.
		if tok.text == "keyof" || tok.text == "typeof" || tok.text == "readonly" {
			return p.parsePostfix()
		}

		return p.parseNameRest()

	case tokString, tokNumber:
		p.next()

		return nil

	case tokPunct:
		switch tok.text {
		case "-":
			p.next()

			if lit := p.peek(); lit.kind == tokNumber {
				p.next()

				return nil
			}

			return fmt.Errorf("expected number after %q", "-")
		case "(":
			return p.parseParenOrFunction()
		case "{":
			return p.parseObjectType()
		case "[":
			return p.parseTupleType()
		}
	}

	if p.eof() {
		return ErrUnexpectedEnd
	}

	return fmt.Errorf("unexpected %q in type expression", tok.text)
}

// parseNameRest handles qualified names and generic arguments after the
// leading identifier has been consumed.
func (p *exprParser) parseNameRest() error {
	for p.acceptPunct(".") {
		if tok := p.next(); tok.kind != tokIdent {
			return fmt.Errorf("expected identifier after %q, found %q", ".", tok.text)
		}
	}

	if p.acceptPunct("<") {
		if err := p.parseUnion(); err != nil {
			return err
		}

		for p.acceptPunct(",") {
			if err := p.parseUnion(); err != nil {
				return err
			}
		}

		return p.expectPunct(">")
	}

	return nil
}

// parseParenOrFunction handles both parenthesized types and function types.
// The open paren has not been consumed yet.
func (p *exprParser) parseParenOrFunction() error {
	if err := p.expectPunct("("); err != nil {
		return err
	}

	// () => T
	if p.acceptPunct(")") {
		if err := p.expectPunct("=>"); err != nil {
			return err
		}

		return p.parseUnion()
	}

	// Attempt a parameter list: ident '?'? (':' type)? (',' ...)* ')' '=>' type.
	save := p.pos
	if err := p.parseParamList(); err == nil {
		return nil
	}

	// Fall back to a parenthesized type.
	p.pos = save

	if err := p.parseUnion(); err != nil {
		return err
	}

	return p.expectPunct(")")
}

func (p *exprParser) parseParamList() error {
	for {
		if tok := p.next(); tok.kind != tokIdent {
			return fmt.Errorf("expected parameter name, found %q", tok.text)
		}

		p.acceptPunct("?")

		if p.acceptPunct(":") {
			if err := p.parseUnion(); err != nil {
				return err
			}
		}

		if p.acceptPunct(",") {
			continue
		}

		break
	}

	if err := p.expectPunct(")"); err != nil {
		return err
	}

	if err := p.expectPunct("=>"); err != nil {
		return err
	}

	return p.parseUnion()
}

// parseObjectType := '{' (member (';'|',')?)* '}'
func (p *exprParser) parseObjectType() error {
	if err := p.expectPunct("{"); err != nil {
		return err
	}

	for !p.acceptPunct("}") {
		if p.eof() {
			return fmt.Errorf("%w: expected %q", ErrUnexpectedEnd, "}")
		}

		// Optional readonly modifier.
		if tok := p.peek(); tok.kind == tokIdent && tok.text == "readonly" {
			p.next()
		}

		if tok := p.next(); tok.kind != tokIdent && tok.kind != tokString {
			return fmt.Errorf("expected member name, found %q", tok.text)
		}

		p.acceptPunct("?")

		if err := p.expectPunct(":"); err != nil {
			return err
		}

		if err := p.parseUnion(); err != nil {
			return err
		}

		if !p.acceptPunct(";") {
			p.acceptPunct(",")
		}
	}

	return nil
}

// parseTupleType := '[' (union (',' union)*)? ']'
func (p *exprParser) parseTupleType() error {
	if err := p.expectPunct("["); err != nil {
		return err
	}

	if p.acceptPunct("]") {
		return nil
	}

	if err := p.parseUnion(); err != nil {
		return err
	}

	for p.acceptPunct(",") {
		if err := p.parseUnion(); err != nil {
			return err
		}
	}

	return p.expectPunct("]")
}
