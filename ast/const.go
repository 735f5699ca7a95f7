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

// Universe is one of Dhall's two sort levels.
type Universe int8

const (
	TypeUniverse Universe = iota
	KindUniverse
)

func (u Universe) String() string {
	if u == KindUniverse {
		return "Kind"
	}
	return "Type"
}

// Builtin enumerates the built-in identifiers the normalizer knows how to
// rewrite applications of, plus the handful of built-in type constructors
// that appear as ordinary Expr values (Natural, List, ...).
type Builtin int8

const (
	BNatural Builtin = iota
	BInteger
	BDouble
	BText
	BBool
	BList
	BOptional

	NaturalIsZero
	NaturalEven
	NaturalOdd
	NaturalToInteger
	NaturalShow
	NaturalFold
	NaturalBuild

	ListBuild
	ListFold
	ListLength
	ListHead
	ListLast
	ListReverse
	ListIndexed

	OptionalFold
	OptionalBuild
)

var builtinNames = map[Builtin]string{
	BNatural:  "Natural",
	BInteger:  "Integer",
	BDouble:   "Double",
	BText:     "Text",
	BBool:     "Bool",
	BList:     "List",
	BOptional: "Optional",

	NaturalIsZero:    "Natural/isZero",
	NaturalEven:      "Natural/even",
	NaturalOdd:       "Natural/odd",
	NaturalToInteger: "Natural/toInteger",
	NaturalShow:      "Natural/show",
	NaturalFold:      "Natural/fold",
	NaturalBuild:     "Natural/build",

	ListBuild:   "List/build",
	ListFold:    "List/fold",
	ListLength:  "List/length",
	ListHead:    "List/head",
	ListLast:    "List/last",
	ListReverse: "List/reverse",
	ListIndexed: "List/indexed",

	OptionalFold:  "Optional/fold",
	OptionalBuild: "Optional/build",
}

func (b Builtin) String() string {
	if s, ok := builtinNames[b]; ok {
		return s
	}
	return "<invalid builtin>"
}

var builtinByName = func() map[string]Builtin {
	m := make(map[string]Builtin, len(builtinNames))
	for b, s := range builtinNames {
		m[s] = b
	}
	return m
}()

// LookupBuiltin maps a built-in identifier's textual name back to its
// Builtin value, as used by the parser and by Field/Var disambiguation
// (a bare reference to "Natural/even" denotes Builtin, not Var).
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtinByName[name]
	return b, ok
}
