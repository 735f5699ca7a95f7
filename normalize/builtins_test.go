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

package normalize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/normalize"
)

func builtin(b ast.Builtin) ast.Expr { return &ast.BuiltinExpr{Builtin: b} }

// TestNaturalPredicates covers the literal-argument rewrites for the
// Natural predicates and conversions.
func TestNaturalPredicates(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		want ast.Expr
	}{
		{"isZero 0", ast.NewApp(builtin(ast.NaturalIsZero), natural(0)), &ast.BoolLit{Value: true}},
		{"isZero 3", ast.NewApp(builtin(ast.NaturalIsZero), natural(3)), &ast.BoolLit{Value: false}},
		{"even 10", ast.NewApp(builtin(ast.NaturalEven), natural(10)), &ast.BoolLit{Value: true}},
		{"odd 10", ast.NewApp(builtin(ast.NaturalOdd), natural(10)), &ast.BoolLit{Value: false}},
		{"odd 7", ast.NewApp(builtin(ast.NaturalOdd), natural(7)), &ast.BoolLit{Value: true}},
		{"show 42", ast.NewApp(builtin(ast.NaturalShow), natural(42)), &ast.TextLit{Suffix: "42"}},
		{"toInteger 5", ast.NewApp(builtin(ast.NaturalToInteger), natural(5)), ast.NewInteger(5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize.Normalize(tc.expr)
			if diff := cmp.Diff(tc.want, got, ast.CmpOptions); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// TestNaturalBuiltinStuckOnVariable checks that a predicate applied to a
// non-literal stays a stuck application rather than erroring.
func TestNaturalBuiltinStuckOnVariable(t *testing.T) {
	e := ast.NewApp(builtin(ast.NaturalIsZero), varE("n", 0))
	got := normalize.Normalize(e)
	want := &ast.App{Fn: builtin(ast.NaturalIsZero), Args: []ast.Expr{varE("n", 0)}}
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("stuck builtin (-want +got):\n%s", diff)
	}
}

// TestListHeadLastIndexed covers the remaining List builtins over a
// literal list.
func TestListHeadLastIndexed(t *testing.T) {
	natType := builtin(ast.BNatural)
	xs := &ast.ListLit{Type: natType, Items: []ast.Expr{natural(10), natural(20), natural(30)}}

	head := normalize.Normalize(ast.NewApp(builtin(ast.ListHead), natType, xs))
	if diff := cmp.Diff(ast.NewOptionalLit(natType, []ast.Expr{natural(10)}), head, ast.CmpOptions); diff != "" {
		t.Errorf("List/head (-want +got):\n%s", diff)
	}

	last := normalize.Normalize(ast.NewApp(builtin(ast.ListLast), natType, xs))
	if diff := cmp.Diff(ast.NewOptionalLit(natType, []ast.Expr{natural(30)}), last, ast.CmpOptions); diff != "" {
		t.Errorf("List/last (-want +got):\n%s", diff)
	}

	empty := &ast.ListLit{Type: natType}
	noHead := normalize.Normalize(ast.NewApp(builtin(ast.ListHead), natType, empty))
	if diff := cmp.Diff(ast.NewOptionalLit(natType, nil), noHead, ast.CmpOptions); diff != "" {
		t.Errorf("List/head on empty list (-want +got):\n%s", diff)
	}

	indexed := normalize.Normalize(ast.NewApp(builtin(ast.ListIndexed), natType, &ast.ListLit{Type: natType, Items: []ast.Expr{natural(7), natural(8)}}))
	recType := ast.NewRecordType([]ast.FieldEntry{
		{Label: "index", Expr: builtin(ast.BNatural)},
		{Label: "value", Expr: natType},
	})
	want := &ast.ListLit{Type: recType, Items: []ast.Expr{
		ast.NewRecordLit([]ast.FieldEntry{{Label: "index", Expr: natural(0)}, {Label: "value", Expr: natural(7)}}),
		ast.NewRecordLit([]ast.FieldEntry{{Label: "index", Expr: natural(1)}, {Label: "value", Expr: natural(8)}}),
	}}
	if diff := cmp.Diff(want, indexed, ast.CmpOptions); diff != "" {
		t.Errorf("List/indexed (-want +got):\n%s", diff)
	}
}

// TestListBuildFullEvaluation checks that List/build with a well-behaved
// builder reduces all the way to a list literal — the builder's cons/nil
// traversal must be read back off the normalized spine no matter how the
// normalizer shaped the intermediate applications.
func TestListBuildFullEvaluation(t *testing.T) {
	natType := builtin(ast.BNatural)
	// g = λ(L : Type) → λ(c : Natural → L → L) → λ(n : L) → c 1 (c 2 n)
	g := &ast.Lam{
		Label:  "L",
		Domain: &ast.ConstExpr{Const: ast.TypeUniverse},
		Body: &ast.Lam{
			Label:  "c",
			Domain: &ast.Pi{Label: "_", Domain: natType, Codomain: &ast.Pi{Label: "_", Domain: varE("L", 0), Codomain: varE("L", 0)}},
			Body: &ast.Lam{
				Label:  "n",
				Domain: varE("L", 0),
				Body: ast.NewApp(varE("c", 0), natural(1),
					ast.NewApp(varE("c", 0), natural(2), varE("n", 0))),
			},
		},
	}
	got := normalize.Normalize(ast.NewApp(builtin(ast.ListBuild), natType, g))
	want := &ast.ListLit{Type: natType, Items: []ast.Expr{natural(1), natural(2)}}
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("List/build (-want +got):\n%s", diff)
	}
}

// TestListBuildStuckOnFreeBuilder checks the totality decision: a builder
// that does not traverse list-shaped leaves the whole redex untouched.
func TestListBuildStuckOnFreeBuilder(t *testing.T) {
	natType := builtin(ast.BNatural)
	e := ast.NewApp(builtin(ast.ListBuild), natType, varE("g", 0))
	got := normalize.Normalize(e)
	if _, ok := got.(*ast.App); !ok {
		t.Fatalf("List/build over a free builder should stay stuck, got %#v", got)
	}
}

// TestBuildFoldFusionLaw checks the build/fold collapse in the shape the
// reduction relation gives it: the fold application arrives as build's
// first argument, before any type argument.
func TestBuildFoldFusionLaw(t *testing.T) {
	natType := builtin(ast.BNatural)
	inner := ast.NewApp(ast.NewApp(builtin(ast.ListFold), natType), varE("e", 0))
	got := normalize.Normalize(ast.NewApp(builtin(ast.ListBuild), inner))
	if diff := cmp.Diff(varE("e", 0), got, ast.CmpOptions); diff != "" {
		t.Errorf("List/build . List/fold fusion (-want +got):\n%s", diff)
	}

	optInner := ast.NewApp(ast.NewApp(builtin(ast.OptionalFold), natType), varE("e", 0))
	gotOpt := normalize.Normalize(ast.NewApp(builtin(ast.OptionalBuild), optInner))
	if diff := cmp.Diff(varE("e", 0), gotOpt, ast.CmpOptions); diff != "" {
		t.Errorf("Optional/build . Optional/fold fusion (-want +got):\n%s", diff)
	}

	natInner := ast.NewApp(builtin(ast.NaturalFold), varE("e", 0))
	gotNat := normalize.Normalize(ast.NewApp(builtin(ast.NaturalBuild), natInner))
	if diff := cmp.Diff(varE("e", 0), gotNat, ast.CmpOptions); diff != "" {
		t.Errorf("Natural/build . Natural/fold fusion (-want +got):\n%s", diff)
	}
}

// TestOptionalFold covers both branches of Optional/fold over literals.
func TestOptionalFold(t *testing.T) {
	natType := builtin(ast.BNatural)
	just := &ast.Lam{
		Label:  "x",
		Domain: natType,
		Body:   &ast.BinOp{Op: ast.NaturalPlus, L: varE("x", 0), R: natural(1)},
	}
	nothing := natural(0)

	some := ast.NewOptionalLit(natType, []ast.Expr{natural(41)})
	got := normalize.Normalize(ast.NewApp(builtin(ast.OptionalFold), natType, some, natType, just, nothing))
	if diff := cmp.Diff(natural(42), got, ast.CmpOptions); diff != "" {
		t.Errorf("Optional/fold over Some (-want +got):\n%s", diff)
	}

	none := ast.NewOptionalLit(natType, nil)
	got = normalize.Normalize(ast.NewApp(builtin(ast.OptionalFold), natType, none, natType, just, nothing))
	if diff := cmp.Diff(natural(0), got, ast.CmpOptions); diff != "" {
		t.Errorf("Optional/fold over None (-want +got):\n%s", diff)
	}
}

// TestOptionalBuild checks Optional/build's unconditional expansion with
// a builder that takes the Some branch.
func TestOptionalBuild(t *testing.T) {
	natType := builtin(ast.BNatural)
	// g = λ(O : Type) → λ(some : Natural → O) → λ(none : O) → some 9
	g := &ast.Lam{
		Label:  "O",
		Domain: &ast.ConstExpr{Const: ast.TypeUniverse},
		Body: &ast.Lam{
			Label:  "some",
			Domain: &ast.Pi{Label: "_", Domain: natType, Codomain: varE("O", 0)},
			Body: &ast.Lam{
				Label:  "none",
				Domain: varE("O", 0),
				Body:   ast.NewApp(varE("some", 0), natural(9)),
			},
		},
	}
	got := normalize.Normalize(ast.NewApp(builtin(ast.OptionalBuild), natType, g))
	want := ast.NewOptionalLit(natType, []ast.Expr{natural(9)})
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("Optional/build (-want +got):\n%s", diff)
	}
}

// TestNaturalBuildClosedNumeral checks Natural/build's evaluate-then-
// check strategy on a builder that counts to two.
func TestNaturalBuildClosedNumeral(t *testing.T) {
	// g = λ(N : Type) → λ(s : N → N) → λ(z : N) → s (s z)
	g := &ast.Lam{
		Label:  "N",
		Domain: &ast.ConstExpr{Const: ast.TypeUniverse},
		Body: &ast.Lam{
			Label:  "s",
			Domain: &ast.Pi{Label: "_", Domain: varE("N", 0), Codomain: varE("N", 0)},
			Body: &ast.Lam{
				Label:  "z",
				Domain: varE("N", 0),
				Body:   ast.NewApp(varE("s", 0), ast.NewApp(varE("s", 0), varE("z", 0))),
			},
		},
	}
	got := normalize.Normalize(ast.NewApp(builtin(ast.NaturalBuild), g))
	if diff := cmp.Diff(natural(2), got, ast.CmpOptions); diff != "" {
		t.Errorf("Natural/build (-want +got):\n%s", diff)
	}
}

// TestAnnotationAndNoteTransparency checks that type annotations and
// source notes both vanish under normalization.
func TestAnnotationAndNoteTransparency(t *testing.T) {
	e := &ast.Annot{
		Expr: &ast.Note{Expr: &ast.BinOp{Op: ast.NaturalPlus, L: natural(2), R: natural(3)}},
		Type: builtin(ast.BNatural),
	}
	got := normalize.Normalize(e)
	if diff := cmp.Diff(natural(5), got, ast.CmpOptions); diff != "" {
		t.Errorf("annotation/note transparency (-want +got):\n%s", diff)
	}
}

// TestBoolIf covers the literal-condition reductions and the stuck form.
func TestBoolIf(t *testing.T) {
	taken := normalize.Normalize(&ast.BoolIf{Cond: &ast.BoolLit{Value: true}, True: natural(1), False: natural(2)})
	if diff := cmp.Diff(natural(1), taken, ast.CmpOptions); diff != "" {
		t.Errorf("if true (-want +got):\n%s", diff)
	}

	stuck := normalize.Normalize(&ast.BoolIf{
		Cond:  varE("b", 0),
		True:  &ast.BinOp{Op: ast.NaturalPlus, L: natural(1), R: natural(1)},
		False: natural(3),
	})
	want := &ast.BoolIf{Cond: varE("b", 0), True: natural(2), False: natural(3)}
	if diff := cmp.Diff(want, stuck, ast.CmpOptions); diff != "" {
		t.Errorf("stuck if still normalizes branches (-want +got):\n%s", diff)
	}
}

// TestTextAppendAndInterpolation checks ++ over closed literals and that
// an interpolated chunk blocks the rewrite without blocking its own
// normalization.
func TestTextAppendAndInterpolation(t *testing.T) {
	got := normalize.Normalize(&ast.BinOp{
		Op: ast.TextAppend,
		L:  &ast.TextLit{Suffix: "foo"},
		R:  &ast.TextLit{Suffix: "bar"},
	})
	if diff := cmp.Diff(&ast.TextLit{Suffix: "foobar"}, got, ast.CmpOptions); diff != "" {
		t.Errorf("text append (-want +got):\n%s", diff)
	}

	holed := &ast.TextLit{
		Chunks: []ast.TextChunk{{Prefix: "n = ", Expr: &ast.BinOp{Op: ast.NaturalPlus, L: natural(1), R: natural(1)}}},
	}
	got = normalize.Normalize(&ast.BinOp{Op: ast.TextAppend, L: holed, R: &ast.TextLit{Suffix: "!"}})
	want := &ast.BinOp{
		Op: ast.TextAppend,
		L:  &ast.TextLit{Chunks: []ast.TextChunk{{Prefix: "n = ", Expr: natural(2)}}},
		R:  &ast.TextLit{Suffix: "!"},
	}
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("interpolated operand stays stuck (-want +got):\n%s", diff)
	}
}

// TestIdempotenceComposite re-checks invariant I2 over a term that
// exercises several rule families at once.
func TestIdempotenceComposite(t *testing.T) {
	natType := builtin(ast.BNatural)
	e := ast.NewLet("xs", nil,
		&ast.BinOp{Op: ast.ListAppend,
			L: &ast.ListLit{Type: natType, Items: []ast.Expr{natural(1)}},
			R: &ast.ListLit{Items: []ast.Expr{natural(2), natural(3)}},
		},
		ast.NewApp(builtin(ast.ListLength), natType, varE("xs", 0)),
	)
	once := normalize.Normalize(e)
	twice := normalize.Normalize(once)
	if diff := cmp.Diff(once, twice, ast.CmpOptions); diff != "" {
		t.Errorf("normalize not idempotent (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(natural(3), once, ast.CmpOptions); diff != "" {
		t.Errorf("composite term (-want +got):\n%s", diff)
	}
}
