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

package ast

// Operator enumerates Dhall's infix operators, each carried by a BinOp
// node rather than by its own Expr variant.
type Operator int8

const (
	BoolOr Operator = iota
	BoolAnd
	BoolEQ
	BoolNE
	NaturalPlus
	NaturalTimes
	TextAppend
	ListAppend
	Combine
	CombineTypes
	Prefer
	ImportAlt
)

var operatorSymbols = map[Operator]string{
	BoolOr:       "||",
	BoolAnd:      "&&",
	BoolEQ:       "==",
	BoolNE:       "!=",
	NaturalPlus:  "+",
	NaturalTimes: "*",
	TextAppend:   "++",
	ListAppend:   "#",
	Combine:      "/\\",
	CombineTypes: "//\\\\",
	Prefer:       "//",
	ImportAlt:    "?",
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return "<invalid operator>"
}
