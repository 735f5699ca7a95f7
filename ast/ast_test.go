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

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhall-lang/dhall-go/ast"
)

func TestNewAppMergesSpines(t *testing.T) {
	f := &ast.VarExpr{V: ast.Var0("f")}
	a := ast.NewNatural(1)
	b := ast.NewNatural(2)

	one := ast.NewApp(ast.NewApp(f, a), b)
	flat := ast.NewApp(f, a, b)
	if diff := cmp.Diff(flat, one, ast.CmpOptions); diff != "" {
		t.Errorf("NewApp did not merge nested applications (-want +got):\n%s", diff)
	}
	if got := ast.NewApp(f); got != ast.Expr(f) {
		t.Errorf("NewApp with no arguments should return fn unchanged")
	}
}

func TestSpine(t *testing.T) {
	f := &ast.VarExpr{V: ast.Var0("f")}
	a := ast.NewNatural(1)
	b := ast.NewNatural(2)

	// Nested partial applications must flatten to one (head, args) pair.
	e := &ast.App{
		Fn:   &ast.App{Fn: f, Args: []ast.Expr{a}},
		Args: []ast.Expr{b},
	}
	head, args := ast.Spine(e)
	if head != ast.Expr(f) {
		t.Errorf("Spine head = %#v, want f", head)
	}
	if diff := cmp.Diff([]ast.Expr{a, b}, args, ast.CmpOptions); diff != "" {
		t.Errorf("Spine args (-want +got):\n%s", diff)
	}

	head, args = ast.Spine(f)
	if head != ast.Expr(f) || args != nil {
		t.Errorf("Spine of a non-App should be (e, nil)")
	}
}

func TestRecordConstructionSortsFields(t *testing.T) {
	lit := ast.NewRecordLit([]ast.FieldEntry{
		{Label: "z", Expr: ast.NewNatural(1)},
		{Label: "a", Expr: ast.NewNatural(2)},
	})
	if lit.Fields[0].Label != "a" || lit.Fields[1].Label != "z" {
		t.Errorf("fields not sorted: %v, %v", lit.Fields[0].Label, lit.Fields[1].Label)
	}

	if v, ok := ast.Lookup(lit.Fields, "z"); !ok {
		t.Error("Lookup missed an existing field")
	} else if diff := cmp.Diff(ast.Expr(ast.NewNatural(1)), v, ast.CmpOptions); diff != "" {
		t.Errorf("Lookup value (-want +got):\n%s", diff)
	}
	if _, ok := ast.Lookup(lit.Fields, "missing"); ok {
		t.Error("Lookup invented a field")
	}
}

func TestNewOptionalLitEnforcesArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a two-item OptionalLit")
		}
	}()
	ast.NewOptionalLit(nil, []ast.Expr{ast.NewNatural(1), ast.NewNatural(2)})
}

func TestLookupBuiltin(t *testing.T) {
	b, ok := ast.LookupBuiltin("Natural/even")
	if !ok || b != ast.NaturalEven {
		t.Errorf("LookupBuiltin(Natural/even) = %v, %v", b, ok)
	}
	if _, ok := ast.LookupBuiltin("Natural/frobnicate"); ok {
		t.Error("LookupBuiltin accepted an unknown name")
	}
}

func TestNaturalArithmetic(t *testing.T) {
	a, b := ast.NewNatural(6), ast.NewNatural(7)
	if got := a.Mul(b); got.String() != "42" {
		t.Errorf("6 * 7 = %s", got)
	}
	if got := a.Add(b); got.String() != "13" {
		t.Errorf("6 + 7 = %s", got)
	}
	if !ast.NewNatural(0).IsZero() || ast.NewNatural(1).IsZero() {
		t.Error("IsZero misclassified")
	}
	if !a.Even() || b.Even() {
		t.Error("Even misclassified")
	}
	if got := b.Dec(); got.String() != "6" {
		t.Errorf("Dec(7) = %s", got)
	}
	if got := a.ToInteger(); got.String() != "+6" {
		t.Errorf("toInteger 6 = %s", got)
	}
	if got := ast.NewInteger(-3); got.String() != "-3" {
		t.Errorf("NewInteger(-3) = %s", got)
	}
}

func TestSprint(t *testing.T) {
	natType := &ast.BuiltinExpr{Builtin: ast.BNatural}
	cases := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			"lambda",
			&ast.Lam{Label: "x", Domain: natType, Body: &ast.BinOp{
				Op: ast.NaturalPlus,
				L:  &ast.VarExpr{V: ast.Var0("x")},
				R:  ast.NewNatural(1),
			}},
			`\(x : Natural) -> x + 1`,
		},
		{
			"record literal",
			ast.NewRecordLit([]ast.FieldEntry{
				{Label: "b", Expr: ast.NewNatural(2)},
				{Label: "a", Expr: ast.NewNatural(1)},
			}),
			"{ a = 1, b = 2 }",
		},
		{
			"union type",
			ast.NewUnionType([]ast.FieldEntry{
				{Label: "Right", Expr: natType},
				{Label: "Left", Expr: nil},
			}),
			"< Left | Right : Natural >",
		},
		{
			"union literal without payload",
			&ast.UnionLit{Tag: "Empty", Others: []ast.FieldEntry{{Label: "Full", Expr: natType}}},
			"< Empty | Full : Natural >",
		},
		{
			"shadowed variable",
			&ast.VarExpr{V: ast.V{Name: "x", Index: 2}},
			"x@2",
		},
		{
			"optional literals",
			ast.NewOptionalLit(natType, []ast.Expr{ast.NewNatural(5)}),
			"Some 5",
		},
		{
			"non-dependent pi",
			&ast.Pi{Label: "_", Domain: natType, Codomain: natType},
			"Natural -> Natural",
		},
		{
			"stuck application",
			ast.NewApp(&ast.BuiltinExpr{Builtin: ast.NaturalIsZero}, &ast.VarExpr{V: ast.Var0("n")}),
			"Natural/isZero n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ast.Sprint(tc.expr); got != tc.want {
				t.Errorf("Sprint = %q, want %q", got, tc.want)
			}
		})
	}
}
