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

package token

// Kind identifies the lexical category of a single token produced by the
// scanner.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	IDENT   // x, foo_bar, Natural/even (builtin identifiers scan as one IDENT)
	LABEL   // `quoted label`
	NATURAL // 123
	INTEGER // +123, -123
	DOUBLE  // 1.5, 1e10 (Infinity and NaN scan as KEYWORD)
	TEXT    // "literal text", raw, with any ${...} holes left in place
	KEYWORD // let, in, if, then, else, merge, Some, None, as, forall / ∀, using, missing, env, ...

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	LBRACK // [
	RBRACK // ]
	COMMA  // ,
	COLON  // :
	DOT    // .
	EQUAL  // =
	ARROW  // -> or →
	LAMBDA // \ or λ
	AT     // @

	PLUS         // +
	STAR         // *
	DOUBLEEQ     // ==
	NOTEQ        // !=
	ANDAND       // &&
	OROR         // ||
	PLUSPLUS     // ++
	HASH         // #
	COMBINE      // /\
	COMBINETYPES // //\\
	PREFER       // //
	QUESTION     // ?

	PATH // ./foo/bar.dhall, ../x, ~/x, /abs/x — a local import path

	LT   // <
	GT   // >
	PIPE // |
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:   "IDENT",
	LABEL:   "LABEL",
	NATURAL: "NATURAL",
	INTEGER: "INTEGER",
	DOUBLE:  "DOUBLE",
	TEXT:    "TEXT",
	KEYWORD: "KEYWORD",

	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",
	LBRACK: "[",
	RBRACK: "]",
	COMMA:  ",",
	COLON:  ":",
	DOT:    ".",
	EQUAL:  "=",
	ARROW:  "->",
	LAMBDA: "\\",
	AT:     "@",

	PLUS:         "+",
	STAR:         "*",
	DOUBLEEQ:     "==",
	NOTEQ:        "!=",
	ANDAND:       "&&",
	OROR:         "||",
	PLUSPLUS:     "++",
	HASH:         "#",
	COMBINE:      `/\`,
	COMBINETYPES: `//\\`,
	PREFER:       "//",
	QUESTION:     "?",
	PATH:         "PATH",
	LT:           "<",
	GT:           ">",
	PIPE:         "|",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<invalid token>"
}

// Keywords is the set of reserved words that scan as KEYWORD instead of
// IDENT; the parser dispatches on Token.Literal to tell them apart.
var Keywords = map[string]bool{
	"let": true, "in": true, "if": true, "then": true, "else": true,
	"merge": true, "Some": true, "None": true, "as": true,
	"forall": true, "missing": true, "env": true, "using": true,
	"Infinity": true, "NaN": true, "True": true, "False": true,
	"Type": true, "Kind": true, "Sort": true,
}

// Token is a single scanned lexeme together with its source position and
// (for literal-carrying kinds) the raw text the scanner read.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Pos
}
