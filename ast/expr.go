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

import (
	"github.com/cockroachdb/apd/v2"

	"github.com/dhall-lang/dhall-go/token"
)

// Expr is the sum type over every Dhall construct. It is implemented by
// pointer types below — an Expr value is already a cheap, shareable
// reference, so no extra box type is needed.
//
// bx exists only to name the idea at call sites that build a child node;
// it is the identity function because an Expr is already pointer-backed.
type Expr interface {
	exprNode()
}

// bx wraps e for storage as a child of another node. Expr values are
// pointer-backed, so this is pointer duplication, not a copy.
func bx(e Expr) Expr { return e }

func (*ConstExpr) exprNode()   {}
func (*VarExpr) exprNode()     {}
func (*Lam) exprNode()         {}
func (*Pi) exprNode()          {}
func (*App) exprNode()         {}
func (*Let) exprNode()         {}
func (*Annot) exprNode()       {}
func (*BuiltinExpr) exprNode() {}
func (*BoolLit) exprNode()     {}
func (*NaturalLit) exprNode()  {}
func (*IntegerLit) exprNode()  {}
func (*DoubleLit) exprNode()   {}
func (*TextLit) exprNode()     {}
func (*BinOp) exprNode()       {}
func (*BoolIf) exprNode()      {}
func (*ListLit) exprNode()     {}
func (*OptionalLit) exprNode() {}
func (*RecordType) exprNode()  {}
func (*RecordLit) exprNode()   {}
func (*UnionType) exprNode()   {}
func (*UnionLit) exprNode()    {}
func (*Merge) exprNode()       {}
func (*Field) exprNode()       {}
func (*Note) exprNode()        {}
func (*Embed) exprNode()       {}

// ConstExpr is a universe, Type or Kind.
type ConstExpr struct{ Const Universe }

// VarExpr is a reference to a binder, free or bound.
type VarExpr struct{ V V }

// Lam is `λ(x : A) → b`.
type Lam struct {
	Label  Label
	Domain Expr
	Body   Expr
}

// Pi is `∀(x : A) → B`, the type of Lam.
type Pi struct {
	Label    Label
	Domain   Expr
	Codomain Expr
}

// App is n-ary application in the surface tree; Spine and the normalizer
// treat it as left-associated (App(App(f, a), b) semantically).
type App struct {
	Fn   Expr
	Args []Expr
}

// Let is `let x (: A)? = r in body`. Annotation is optional (nil if
// absent) and, like everywhere else in this kernel, transparent to
// reduction: the normalizer drops it without checking it.
type Let struct {
	Label      Label
	Annotation Expr // may be nil
	Value      Expr
	Body       Expr
}

// Annot is `e : T`.
type Annot struct {
	Expr Expr
	Type Expr
}

// BuiltinExpr references one of Dhall's built-in identifiers.
type BuiltinExpr struct{ Builtin Builtin }

type BoolLit struct{ Value bool }

// NaturalLit is an arbitrary-precision non-negative integer, represented
// as an apd.Decimal with zero exponent (so its Coeff is exactly the
// value).
type NaturalLit struct{ Value apd.Decimal }

// IntegerLit is an arbitrary-precision signed integer.
type IntegerLit struct{ Value apd.Decimal }

// DoubleLit is an IEEE-754 double-precision float.
type DoubleLit struct{ Value float64 }

// TextChunk is one literal run followed by the expression that is
// interpolated immediately after it.
type TextChunk struct {
	Prefix string
	Expr   Expr
}

// TextLit is interpolated text: zero or more (literal, expr) chunks
// followed by a final literal suffix.
type TextLit struct {
	Chunks []TextChunk
	Suffix string
}

// IsLiteral reports whether t has no interpolated holes, i.e. is plain
// text equal to its Suffix.
func (t *TextLit) IsLiteral() bool { return len(t.Chunks) == 0 }

// BinOp applies an infix Operator to two operands.
type BinOp struct {
	Op   Operator
	L, R Expr
}

// BoolIf is `if c then t else f`.
type BoolIf struct {
	Cond, True, False Expr
}

// ListLit is `[a, b, c]`, optionally annotated with its element type
// (required when the list is empty).
type ListLit struct {
	Type  Expr // may be nil
	Items []Expr
}

// OptionalLit carries 0 or 1 items; enforced at construction by
// NewOptionalLit.
type OptionalLit struct {
	Type  Expr // may be nil
	Items []Expr
}

// NewOptionalLit builds an OptionalLit, panicking if items holds more
// than one element — an Optional carries at most one value, and the
// bound is enforced at construction.
func NewOptionalLit(typ Expr, items []Expr) *OptionalLit {
	if len(items) > 1 {
		panic("ast: OptionalLit may carry at most one item")
	}
	return &OptionalLit{Type: typ, Items: items}
}

// FieldEntry is a single (Label, Expr) pair. Records, record literals,
// and unions all reuse this shape. For unions, Expr is nil when the
// variant carries no payload (e.g. `< Foo | Bar : Natural >`'s `Foo`).
type FieldEntry struct {
	Label Label
	Expr  Expr
}

// RecordType is `{ a : T, b : U }`.
type RecordType struct{ Fields []FieldEntry }

// RecordLit is `{ a = 1, b = 2 }`.
type RecordLit struct{ Fields []FieldEntry }

// UnionType is `< Foo | Bar : Natural >`.
type UnionType struct{ Alternatives []FieldEntry }

// UnionLit is a value of a union type: a chosen Tag with its Value, plus
// the types of the other alternatives so the full union type can be
// reconstructed without re-checking. Value is nil when Tag names a
// parameterless alternative (`< Foo | Bar : Natural >`'s `Foo`).
type UnionLit struct {
	Tag    Label
	Value  Expr
	Others []FieldEntry
}

// Merge is `merge handlers scrutinee (: resultType)?`.
type Merge struct {
	Handlers   Expr
	Scrutinee  Expr
	ResultType Expr // may be nil
}

// Field projects a label out of a record.
type Field struct {
	Record Expr
	Label  Label
}

// Note attaches a source span to an expression. Shift and subst rewrite
// the wrapped expression and keep the Note around the result; normalize
// drops the Note and returns the normal form of the wrapped expression.
type Note struct {
	Span token.Pos
	Expr Expr
}

// Embed carries an unresolved or resolved import. Payload is opaque to
// the kernel; by convention it holds an *imports.Descriptor, but the
// kernel never type-asserts it, only copies the pointer through
// shift/subst/normalize.
type Embed struct{ Payload any }
