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

// Package scanner implements a scanner for Dhall source text. It takes a
// []byte as source which can then be tokenized through repeated calls to
// the Scan method.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhall-lang/dhall-go/errors"
	"github.com/dhall-lang/dhall-go/token"
)

// A Scanner holds the scanner's internal state while processing a given
// text. It can be allocated as part of another data structure but must be
// initialized via Init before use.
type Scanner struct {
	file *token.File
	src  []byte
	err  errors.List

	ch       rune
	offset   int
	rdOffset int

	ErrorCount int
}

const eof = -1

// Init prepares s to tokenize src, associating positions with file.
func (s *Scanner) Init(file *token.File, src []byte) {
	s.file = file
	s.src = src
	s.offset = 0
	s.rdOffset = 0
	s.ch = ' '
	s.err = nil
	s.ErrorCount = 0
	s.next()
}

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.file.AddLine(s.offset)
		}
		s.ch = eof
	}
}

func (s *Scanner) peek() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

func (s *Scanner) error(offset int, msg string) {
	s.ErrorCount++
	s.err.Add(s.file.Pos(offset).Position(), msg)
}

// Errors returns every error accumulated since Init.
func (s *Scanner) Errors() errors.List { return s.err }

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r) || r == '/' || r == '-'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isPathRune(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' || r == '/' || r == '%' || r == '~'
}

// isPathStartAfterSlash distinguishes an absolute import path ("/etc/x")
// from the start of a "/\" (Combine) or "//" (Prefer, CombineTypes)
// operator: a path never continues with another slash or a backslash.
func isPathStartAfterSlash(next byte) bool {
	return next != '/' && next != '\\' && next != 0
}

// scanPath reads a local import path: any run of path runes starting
// from a recognized prefix ("./", "../", "~/", or a bare "/").
func (s *Scanner) scanPath(pos token.Pos) token.Token {
	offset := s.offset
	for isPathRune(s.ch) {
		s.next()
	}
	return token.Token{Kind: token.PATH, Literal: string(s.src[offset:s.offset]), Pos: pos}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r':
			s.next()
		case s.ch == '-' && s.peek() == '-':
			for s.ch != '\n' && s.ch != eof {
				s.next()
			}
		case s.ch == '{' && s.peek() == '-':
			s.next()
			s.next()
			depth := 1
			for depth > 0 && s.ch != eof {
				if s.ch == '{' && s.peek() == '-' {
					depth++
					s.next()
				} else if s.ch == '-' && s.peek() == '}' {
					depth--
					s.next()
				}
				s.next()
			}
		default:
			return
		}
	}
}

// Scan reads and returns the next token from the source.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()

	pos := s.file.Pos(s.offset)
	ch := s.ch

	switch {
	case ch == eof:
		return token.Token{Kind: token.EOF, Pos: pos}

	case isLetter(ch) && ch != 'λ':
		lit := s.scanIdentifier()
		kind := token.IDENT
		if token.Keywords[lit] {
			kind = token.KEYWORD
		}
		return token.Token{Kind: kind, Literal: lit, Pos: pos}

	case isDigit(ch):
		return s.scanNumber(pos)

	case ch == '`':
		return s.scanQuotedLabel(pos)

	case ch == '"':
		return s.scanText(pos)

	case ch == '.' && (s.peek() == '/' || s.peek() == '.'):
		return s.scanPath(pos)

	case ch == '~' && s.peek() == '/':
		return s.scanPath(pos)

	case ch == '/' && isPathStartAfterSlash(s.peek()):
		return s.scanPath(pos)

	case (ch == '+' || ch == '-') && isDigit(rune(s.peek())):
		return s.scanSignedNumber(pos, ch)

	case ch == '-' && s.rdOffset+len("Infinity") <= len(s.src) && string(s.src[s.rdOffset:s.rdOffset+len("Infinity")]) == "Infinity":
		s.next()
		for range "Infinity" {
			s.next()
		}
		return token.Token{Kind: token.DOUBLE, Literal: "-Infinity", Pos: pos}
	}

	s.next()
	switch ch {
	case '(':
		return token.Token{Kind: token.LPAREN, Pos: pos}
	case ')':
		return token.Token{Kind: token.RPAREN, Pos: pos}
	case '{':
		return token.Token{Kind: token.LBRACE, Pos: pos}
	case '}':
		return token.Token{Kind: token.RBRACE, Pos: pos}
	case '[':
		return token.Token{Kind: token.LBRACK, Pos: pos}
	case ']':
		return token.Token{Kind: token.RBRACK, Pos: pos}
	case ',':
		return token.Token{Kind: token.COMMA, Pos: pos}
	case ':':
		return token.Token{Kind: token.COLON, Pos: pos}
	case '@':
		return token.Token{Kind: token.AT, Pos: pos}
	case '?':
		return token.Token{Kind: token.QUESTION, Pos: pos}
	case '<':
		return token.Token{Kind: token.LT, Pos: pos}
	case '>':
		return token.Token{Kind: token.GT, Pos: pos}
	case 'λ':
		return token.Token{Kind: token.LAMBDA, Pos: pos}
	case '∀':
		return token.Token{Kind: token.KEYWORD, Literal: "forall", Pos: pos}
	case '→':
		return token.Token{Kind: token.ARROW, Pos: pos}
	case '.':
		return token.Token{Kind: token.DOT, Pos: pos}
	case '=':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.DOUBLEEQ, Pos: pos}
		}
		return token.Token{Kind: token.EQUAL, Pos: pos}
	case '!':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.NOTEQ, Pos: pos}
		}
	case '&':
		if s.ch == '&' {
			s.next()
			return token.Token{Kind: token.ANDAND, Pos: pos}
		}
	case '|':
		if s.ch == '|' {
			s.next()
			return token.Token{Kind: token.OROR, Pos: pos}
		}
		return token.Token{Kind: token.PIPE, Pos: pos}
	case '+':
		if s.ch == '+' {
			s.next()
			return token.Token{Kind: token.PLUSPLUS, Pos: pos}
		}
		return token.Token{Kind: token.PLUS, Pos: pos}
	case '*':
		return token.Token{Kind: token.STAR, Pos: pos}
	case '#':
		return token.Token{Kind: token.HASH, Pos: pos}
	case '\\':
		return token.Token{Kind: token.LAMBDA, Pos: pos}
	case '-':
		if s.ch == '>' {
			s.next()
			return token.Token{Kind: token.ARROW, Pos: pos}
		}
	case '/':
		if s.ch == '\\' {
			s.next()
			return token.Token{Kind: token.COMBINE, Pos: pos}
		}
		if s.ch == '/' {
			s.next()
			if s.ch == '\\' && s.peek() == '\\' {
				s.next()
				s.next()
				return token.Token{Kind: token.COMBINETYPES, Pos: pos}
			}
			return token.Token{Kind: token.PREFER, Pos: pos}
		}
	}

	s.error(s.offset, "illegal character "+string(ch))
	return token.Token{Kind: token.ILLEGAL, Literal: string(ch), Pos: pos}
}

func (s *Scanner) scanIdentifier() string {
	offset := s.offset
	for isIdentRune(s.ch) {
		s.next()
	}
	return string(s.src[offset:s.offset])
}

// scanSignedNumber reads a signed Integer literal: sign is a required
// prefix, not a unary operator, in this grammar position.
func (s *Scanner) scanSignedNumber(pos token.Pos, sign rune) token.Token {
	offset := s.offset
	s.next() // consume the sign
	for isDigit(s.ch) {
		s.next()
	}
	return token.Token{Kind: token.INTEGER, Literal: string(s.src[offset:s.offset]), Pos: pos}
}

func (s *Scanner) scanNumber(pos token.Pos) token.Token {
	offset := s.offset
	for isDigit(s.ch) {
		s.next()
	}
	isDouble := false
	if s.ch == '.' && isDigit(rune(s.peek())) {
		isDouble = true
		s.next()
		for isDigit(s.ch) {
			s.next()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		isDouble = true
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		for isDigit(s.ch) {
			s.next()
		}
	}
	lit := string(s.src[offset:s.offset])
	if isDouble {
		return token.Token{Kind: token.DOUBLE, Literal: lit, Pos: pos}
	}
	return token.Token{Kind: token.NATURAL, Literal: lit, Pos: pos}
}

// scanQuotedLabel reads a backtick-quoted label, e.g. `let`, which names
// an identifier that would otherwise collide with a keyword.
func (s *Scanner) scanQuotedLabel(pos token.Pos) token.Token {
	s.next() // consume opening `
	offset := s.offset
	for s.ch != '`' && s.ch != eof {
		s.next()
	}
	lit := string(s.src[offset:s.offset])
	if s.ch == '`' {
		s.next()
	} else {
		s.error(s.offset, "unterminated quoted label")
	}
	return token.Token{Kind: token.LABEL, Literal: lit, Pos: pos}
}

// scanText reads a double-quoted text literal in full, including any
// ${ }-delimited interpolation holes, and returns it as a single TEXT
// token whose Literal is the raw content between the quotes (escapes and
// interpolation markers intact). The parser package is responsible for
// splitting that raw content into literal/expression chunks and
// unescaping each literal run.
func (s *Scanner) scanText(pos token.Pos) token.Token {
	s.next() // consume opening "
	offset := s.offset
	for {
		switch s.ch {
		case eof:
			s.error(s.offset, "unterminated text literal")
			return token.Token{Kind: token.TEXT, Literal: string(s.src[offset:s.offset]), Pos: pos}
		case '"':
			lit := string(s.src[offset:s.offset])
			s.next()
			return token.Token{Kind: token.TEXT, Literal: lit, Pos: pos}
		case '\\':
			s.next()
			if s.ch != eof {
				s.next()
			}
		case '$':
			s.next()
			if s.ch == '{' {
				depth := 1
				s.next()
				for depth > 0 && s.ch != eof {
					switch s.ch {
					case '{':
						depth++
					case '}':
						depth--
					case '"':
						s.skipNestedText()
						continue
					}
					s.next()
				}
			}
		default:
			s.next()
		}
	}
}

// skipNestedText consumes a text literal found inside an interpolation
// hole, so its braces are never mistaken for the hole's own delimiters.
// Interpolation holes nested inside that inner literal are skipped
// without further brace-balancing, a known simplification: only one level
// of ${ ... } containing a plain string is handled precisely.
func (s *Scanner) skipNestedText() {
	s.next() // consume opening "
	for s.ch != '"' && s.ch != eof {
		if s.ch == '\\' {
			s.next()
		}
		s.next()
	}
	if s.ch == '"' {
		s.next() // consume closing "
	}
}
