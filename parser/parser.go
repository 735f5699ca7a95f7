// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser turns Dhall source text into the ast package's
// representation, ready for the normalize package to reduce. It is a
// straightforward recursive-descent parser over the scanner's token
// stream, holding the scanner plus one token of lookahead.
//
// A handful of deliberate simplifications keep the grammar tractable
// without a type checker in the loop (see DESIGN.md): union values use
// the pre-standardization "< Tag = e | Other : T >" literal form instead
// of the constructor-function desugaring that requires type inference,
// and import resolution (network, filesystem, CBOR cache, "as Location")
// is entirely out of scope — imports only ever parse down to an Embed
// carrying an *imports.Descriptor, never resolved.
package parser

import (
	"fmt"

	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/errors"
	"github.com/dhall-lang/dhall-go/imports"
	"github.com/dhall-lang/dhall-go/literal"
	"github.com/dhall-lang/dhall-go/scanner"
	"github.com/dhall-lang/dhall-go/token"
)

// Parser holds the state for a single parse of one source file.
type Parser struct {
	file *token.File
	scan scanner.Scanner
	err  errors.List

	tok token.Token
}

// ParseExpr parses a complete Dhall expression from src, reporting every
// syntax error found (not just the first) in the returned error's
// concrete type, errors.List.
func ParseExpr(filename string, src []byte) (ast.Expr, error) {
	var p Parser
	p.file = token.NewFile(filename, len(src))
	p.scan.Init(p.file, src)
	p.next()

	e := p.parseExpr()
	p.expect(token.EOF, "end of input")

	p.err = append(p.err, p.scan.Errors()...)
	return e, p.err.Err()
}

func (p *Parser) next() { p.tok = p.scan.Scan() }

func (p *Parser) pos() token.Position { return p.tok.Pos.Position() }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.err.Addf(p.pos(), format, args...)
}

// expect consumes the current token if it has the given kind, and
// otherwise records a syntax error without advancing (so the caller's
// enclosing production can still try to recover structurally).
func (p *Parser) expect(k token.Kind, what string) token.Token {
	tok := p.tok
	if tok.Kind != k {
		p.errorf("expected %s, found %q", what, tok.Literal)
		return tok
	}
	p.next()
	return tok
}

func (p *Parser) isKeyword(lit string) bool {
	return p.tok.Kind == token.KEYWORD && p.tok.Literal == lit
}

func (p *Parser) note(span token.Pos, e ast.Expr) ast.Expr {
	return &ast.Note{Span: span, Expr: e}
}

// parseExpr parses the lowest-precedence forms: lambda, forall/Pi, let,
// if, and trailing type annotation, falling through to the operator
// grammar for everything else.
func (p *Parser) parseExpr() ast.Expr {
	start := p.tok.Pos

	switch {
	case p.tok.Kind == token.LAMBDA:
		return p.parseLambda(start)

	case p.isKeyword("forall"):
		return p.parsePi(start)

	case p.isKeyword("let"):
		return p.parseLet(start)

	case p.isKeyword("if"):
		return p.parseIf(start)
	}

	e := p.parseOperatorExpr(0)
	switch {
	case p.tok.Kind == token.COLON:
		p.next()
		t := p.parseExpr()
		return p.note(start, &ast.Annot{Expr: e, Type: t})

	case p.tok.Kind == token.ARROW:
		// Non-dependent function type sugar: `A -> B` desugars to
		// `forall (_ : A) -> B`, right-associative like forall itself.
		p.next()
		codomain := p.parseExpr()
		return p.note(start, &ast.Pi{Label: "_", Domain: e, Codomain: codomain})
	}
	return e
}

func (p *Parser) parseLambda(start token.Pos) ast.Expr {
	p.next() // consume \ or λ
	p.expect(token.LPAREN, "(")
	label := p.parseAnyLabel()
	p.expect(token.COLON, ":")
	domain := p.parseExpr()
	p.expect(token.RPAREN, ")")
	p.expectArrow()
	body := p.parseExpr()
	return p.note(start, &ast.Lam{Label: label, Domain: domain, Body: body})
}

func (p *Parser) parsePi(start token.Pos) ast.Expr {
	p.next() // consume forall
	p.expect(token.LPAREN, "(")
	label := p.parseAnyLabel()
	p.expect(token.COLON, ":")
	domain := p.parseExpr()
	p.expect(token.RPAREN, ")")
	p.expectArrow()
	codomain := p.parseExpr()
	return p.note(start, &ast.Pi{Label: label, Domain: domain, Codomain: codomain})
}

// expectArrow consumes the "->"/"→" that follows a binder; the scanner
// collapses both spellings into one ARROW kind.
func (p *Parser) expectArrow() { p.expect(token.ARROW, "->") }

func (p *Parser) parseLet(start token.Pos) ast.Expr {
	p.next() // consume let
	label := p.parseAnyLabel()
	var annotation ast.Expr
	if p.tok.Kind == token.COLON {
		p.next()
		annotation = p.parseExpr()
	}
	p.expect(token.EQUAL, "=")
	value := p.parseExpr()
	if !p.isKeyword("in") {
		p.errorf("expected %q, found %q", "in", p.tok.Literal)
	} else {
		p.next()
	}
	body := p.parseExpr()
	return p.note(start, ast.NewLet(label, annotation, value, body))
}

func (p *Parser) parseIf(start token.Pos) ast.Expr {
	p.next() // consume if
	cond := p.parseExpr()
	p.expectKeyword("then")
	t := p.parseExpr()
	p.expectKeyword("else")
	f := p.parseExpr()
	return p.note(start, &ast.BoolIf{Cond: cond, True: t, False: f})
}

func (p *Parser) expectKeyword(word string) {
	if !p.isKeyword(word) {
		p.errorf("expected %q, found %q", word, p.tok.Literal)
		return
	}
	p.next()
}

// parseAnyLabel accepts either a bare identifier or a backtick-quoted
// label as a binder name.
func (p *Parser) parseAnyLabel() ast.Label {
	switch p.tok.Kind {
	case token.IDENT, token.LABEL:
		lit := p.tok.Literal
		p.next()
		return ast.Label(lit)
	default:
		p.errorf("expected a label, found %q", p.tok.Literal)
		return ""
	}
}

// precedence level table, lowest to highest, matching Dhall's published
// grammar (operator-expression ::= import-alt-expression and so on down
// to application-expression).
var precedenceTable = []struct {
	kind token.Kind
	op   ast.Operator
}{
	{token.QUESTION, ast.ImportAlt},
	{token.OROR, ast.BoolOr},
	{token.PLUS, ast.NaturalPlus},
	{token.PLUSPLUS, ast.TextAppend},
	{token.HASH, ast.ListAppend},
	{token.ANDAND, ast.BoolAnd},
	{token.COMBINE, ast.Combine},
	{token.PREFER, ast.Prefer},
	{token.COMBINETYPES, ast.CombineTypes},
	{token.STAR, ast.NaturalTimes},
	{token.DOUBLEEQ, ast.BoolEQ},
	{token.NOTEQ, ast.BoolNE},
}

// parseOperatorExpr implements precedence climbing over precedenceTable;
// level indexes into the table, and falls through to application parsing
// once every level is exhausted.
func (p *Parser) parseOperatorExpr(level int) ast.Expr {
	if level >= len(precedenceTable) {
		return p.parseApplicationExpr()
	}
	start := p.tok.Pos
	left := p.parseOperatorExpr(level + 1)
	entry := precedenceTable[level]
	for p.tok.Kind == entry.kind {
		p.next()
		right := p.parseOperatorExpr(level + 1)
		left = p.note(start, &ast.BinOp{Op: entry.op, L: left, R: right})
	}
	return left
}

// parseApplicationExpr parses `f a b c`, including the keyword-led forms
// (merge, Some) that apply like ordinary functions in Dhall's grammar.
func (p *Parser) parseApplicationExpr() ast.Expr {
	start := p.tok.Pos

	if p.isKeyword("merge") {
		p.next()
		handlers := p.parseSelectorExpr()
		scrutinee := p.parseSelectorExpr()
		return p.note(start, &ast.Merge{Handlers: handlers, Scrutinee: scrutinee})
	}
	if p.isKeyword("Some") {
		p.next()
		item := p.parseSelectorExpr()
		return p.note(start, ast.NewOptionalLit(nil, []ast.Expr{item}))
	}

	fn := p.parseSelectorExpr()
	var args []ast.Expr
	for p.startsSelectorExpr() {
		args = append(args, p.parseSelectorExpr())
	}
	if len(args) == 0 {
		return fn
	}
	return p.note(start, ast.NewApp(fn, args...))
}

// startsSelectorExpr reports whether the current token could begin
// another application argument, i.e. is not an operator, keyword
// terminator, or closing bracket.
func (p *Parser) startsSelectorExpr() bool {
	switch p.tok.Kind {
	case token.IDENT, token.LABEL, token.NATURAL, token.INTEGER, token.DOUBLE, token.TEXT,
		token.LPAREN, token.LBRACE, token.LBRACK, token.LT, token.PATH, token.LAMBDA:
		return true
	case token.KEYWORD:
		switch p.tok.Literal {
		case "True", "False", "Type", "Kind", "Sort", "Infinity", "NaN", "None", "missing", "env", "Some":
			return true
		}
		return false
	}
	return false
}

// parseSelectorExpr parses a primary expression followed by zero or more
// `.label` field projections.
func (p *Parser) parseSelectorExpr() ast.Expr {
	start := p.tok.Pos
	e := p.parsePrimaryExpr()
	for p.tok.Kind == token.DOT {
		p.next()
		label := p.parseAnyLabel()
		e = p.note(start, &ast.Field{Record: e, Label: label})
	}
	return e
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	start := p.tok.Pos
	tok := p.tok

	switch tok.Kind {
	case token.LPAREN:
		p.next()
		e := p.parseExpr()
		p.expect(token.RPAREN, ")")
		return e

	case token.NATURAL:
		p.next()
		n, err := literal.ParseNatural(tok.Literal)
		if err != nil {
			p.errorf("%s", err)
			return ast.NewNatural(0)
		}
		return p.note(start, ast.NewNatural(n))

	case token.INTEGER:
		p.next()
		n, err := literal.ParseInteger(tok.Literal)
		if err != nil {
			p.errorf("%s", err)
			return &ast.IntegerLit{}
		}
		return p.note(start, ast.NewInteger(n))

	case token.DOUBLE:
		p.next()
		f, err := literal.ParseDouble(tok.Literal)
		if err != nil {
			p.errorf("%s", err)
		}
		return p.note(start, &ast.DoubleLit{Value: f})

	case token.TEXT:
		p.next()
		lit, err := p.parseTextLiteral(tok.Literal, start)
		if err != nil {
			p.errorf("%s", err)
			return &ast.TextLit{}
		}
		return lit

	case token.PATH:
		p.next()
		return p.note(start, p.parseImport(tok.Literal))

	case token.LBRACE:
		return p.parseRecordOrUnused()

	case token.LBRACK:
		return p.parseListLit(start)

	case token.LT:
		return p.parseUnion(start)

	case token.IDENT:
		p.next()
		return p.parseIdentOrBuiltin(tok, start)

	case token.LABEL:
		p.next()
		return p.note(start, p.varExpr(ast.Label(tok.Literal)))

	case token.KEYWORD:
		return p.parseKeywordPrimary(tok, start)
	}

	p.errorf("unexpected token %q", tok.Literal)
	p.next()
	return &ast.BoolLit{Value: false}
}

func (p *Parser) parseKeywordPrimary(tok token.Token, start token.Pos) ast.Expr {
	switch tok.Literal {
	case "True":
		p.next()
		return p.note(start, &ast.BoolLit{Value: true})
	case "False":
		p.next()
		return p.note(start, &ast.BoolLit{Value: false})
	case "Type":
		p.next()
		return p.note(start, &ast.ConstExpr{Const: ast.TypeUniverse})
	case "Kind", "Sort":
		p.next()
		return p.note(start, &ast.ConstExpr{Const: ast.KindUniverse})
	case "Infinity", "NaN":
		p.next()
		f, _ := literal.ParseDouble(tok.Literal)
		return p.note(start, &ast.DoubleLit{Value: f})
	case "None":
		p.next()
		return p.note(start, ast.NewOptionalLit(nil, nil))
	case "missing":
		p.next()
		return p.note(start, &ast.Embed{Payload: &imports.Descriptor{Location: imports.MissingImport()}})
	case "env":
		p.next()
		p.expect(token.COLON, ":")
		name := p.parseAnyLabel()
		return p.note(start, &ast.Embed{Payload: &imports.Descriptor{Location: imports.EnvImport(string(name))}})
	default:
		p.errorf("unexpected keyword %q", tok.Literal)
		p.next()
		return &ast.BoolLit{Value: false}
	}
}

// parseIdentOrBuiltin disambiguates a bare identifier between a built-in
// name and an ordinary variable reference with an optional "@n"
// disambiguator. Signed integers never reach it: the scanner returns
// them as INTEGER tokens.
func (p *Parser) parseIdentOrBuiltin(tok token.Token, start token.Pos) ast.Expr {
	if b, ok := ast.LookupBuiltin(tok.Literal); ok {
		return p.note(start, &ast.BuiltinExpr{Builtin: b})
	}
	return p.note(start, p.varExpr(ast.Label(tok.Literal)))
}

// varExpr parses the optional "@n" index suffix and builds the Var. n is
// exactly what the source specifies — it already counts same-named
// shadowing, not positional binder depth, so no scope bookkeeping is
// needed here.
func (p *Parser) varExpr(name ast.Label) ast.Expr {
	index := 0
	if p.tok.Kind == token.AT {
		p.next()
		tok := p.tok
		p.expect(token.NATURAL, "a variable index")
		n, err := literal.ParseNatural(tok.Literal)
		if err != nil {
			p.errorf("%s", err)
		} else {
			index = int(n)
		}
	}
	return &ast.VarExpr{V: ast.V{Name: name, Index: index}}
}

func (p *Parser) parseListLit(start token.Pos) ast.Expr {
	p.next() // consume [
	var items []ast.Expr
	for p.tok.Kind != token.RBRACK {
		items = append(items, p.parseExpr())
		if p.tok.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RBRACK, "]")
	return p.note(start, &ast.ListLit{Items: items})
}

// parseRecordOrUnused dispatches between record type, record literal, and
// the empty forms `{}`/`{=}` sharing the leading brace. Union type/literal
// syntax lives in parseUnion, entered from the `<` token instead; records
// here never also host union syntax.
func (p *Parser) parseRecordOrUnused() ast.Expr {
	start := p.tok.Pos
	p.next() // consume {
	if p.tok.Kind == token.RBRACE {
		p.next()
		return p.note(start, ast.NewRecordType(nil))
	}
	if p.tok.Kind == token.EQUAL {
		p.next()
		p.expect(token.RBRACE, "}")
		return p.note(start, ast.NewRecordLit(nil))
	}

	var fields []ast.FieldEntry
	isType := false
	first := true
	for {
		label := p.parseAnyLabel()
		var expr ast.Expr
		switch p.tok.Kind {
		case token.COLON:
			p.next()
			expr = p.parseExpr()
			if first {
				isType = true
			} else if !isType {
				p.errorf("mixed record type and record literal fields")
			}
		case token.EQUAL:
			p.next()
			expr = p.parseExpr()
			if first {
				isType = false
			} else if isType {
				p.errorf("mixed record type and record literal fields")
			}
		default:
			p.errorf("expected %q or %q after field label", ":", "=")
		}
		fields = append(fields, ast.FieldEntry{Label: label, Expr: expr})
		first = false
		if p.tok.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RBRACE, "}")
	if isType {
		return p.note(start, ast.NewRecordType(fields))
	}
	return p.note(start, ast.NewRecordLit(fields))
}

// parseUnion parses both union types and union literals, which share a
// bracket and only differ in whether one alternative uses "=" instead of
// ":". This targets Dhall's pre-standard-version-6 union literal grammar
// (`< Foo = 1 | Bar : Natural >`) rather than the later constructor-field
// desugaring, since the latter needs type inference to know which
// alternative a bare field selection picks — out of scope here (see
// DESIGN.md).
func (p *Parser) parseUnion(start token.Pos) ast.Expr {
	p.next() // consume <
	if p.tok.Kind == token.GT {
		p.next()
		return p.note(start, ast.NewUnionType(nil))
	}

	var tag ast.Label
	var value ast.Expr
	var alts []ast.FieldEntry
	hasValue := false

	for {
		label := p.parseAnyLabel()
		switch p.tok.Kind {
		case token.EQUAL:
			if hasValue {
				p.errorf("union literal may only select one alternative")
			}
			p.next()
			value = p.parseExpr()
			tag = label
			hasValue = true
		case token.COLON:
			p.next()
			typ := p.parseExpr()
			alts = append(alts, ast.FieldEntry{Label: label, Expr: typ})
		default:
			alts = append(alts, ast.FieldEntry{Label: label, Expr: nil})
		}
		if p.tok.Kind == token.PIPE {
			p.next()
			continue
		}
		break
	}
	p.expect(token.GT, ">")

	if hasValue {
		return p.note(start, &ast.UnionLit{Tag: tag, Value: value, Others: ast.SortFields(alts)})
	}
	return p.note(start, ast.NewUnionType(alts))
}

// parseImport turns a scanned PATH token into an Embed(ImportDescriptor),
// classifying its Prefix from the leading characters and splitting the
// remainder on "/" into path components.
func (p *Parser) parseImport(raw string) ast.Expr {
	var prefix imports.Prefix
	rest := raw
	switch {
	case len(raw) >= 2 && raw[:2] == "./":
		prefix, rest = imports.Here, raw[2:]
	case len(raw) >= 3 && raw[:3] == "../":
		prefix, rest = imports.Parent, raw[3:]
	case len(raw) >= 2 && raw[:2] == "~/":
		prefix, rest = imports.Home, raw[2:]
	case len(raw) >= 1 && raw[0] == '/':
		prefix, rest = imports.Absolute, raw[1:]
	default:
		prefix, rest = imports.Here, raw
	}
	var mode imports.Mode
	if p.isKeyword("as") {
		p.next()
		if p.tok.Kind == token.IDENT && p.tok.Literal == "Text" {
			mode = imports.RawText
			p.next()
		} else {
			p.errorf("expected %q after %q", "Text", "as")
		}
	}
	return &ast.Embed{Payload: &imports.Descriptor{
		Location: imports.LocalImport(prefix, splitPath(rest)),
		Mode:     mode,
	}}
}

func splitPath(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseTextLiteral splits raw (the scanner's unprocessed content between
// the outer quotes) into literal runs and "${ }" interpolation holes,
// unescaping each literal run via the literal package and recursively
// parsing each hole as a fresh expression.
func (p *Parser) parseTextLiteral(raw string, start token.Pos) (ast.Expr, error) {
	var chunks []ast.TextChunk
	var pending string
	i := 0
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) {
			pending += raw[i : i+2]
			i += 2
			continue
		}
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			prefix, err := literal.UnescapeText(pending)
			if err != nil {
				return nil, err
			}
			pending = ""
			depth := 1
			j := i + 2
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						continue
					}
				}
				j++
			}
			if depth != 0 {
				return nil, fmt.Errorf("unterminated interpolation in text literal")
			}
			hole := raw[i+2 : j]
			expr, err := ParseExpr("<interpolation>", []byte(hole))
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, ast.TextChunk{Prefix: prefix, Expr: expr})
			i = j + 1
			continue
		}
		pending += string(raw[i])
		i++
	}
	suffix, err := literal.UnescapeText(pending)
	if err != nil {
		return nil, err
	}
	return p.note(start, &ast.TextLit{Chunks: chunks, Suffix: suffix}), nil
}
