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

func varE(name ast.Label, n int) ast.Expr {
	return &ast.VarExpr{V: ast.V{Name: name, Index: n}}
}

// TestShiftRoundTrip checks invariant I1: shift(+1) then shift(-1) is the
// identity.
func TestShiftRoundTrip(t *testing.T) {
	e := &ast.Lam{
		Label:  "x",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body: &ast.App{
			Fn:   varE("f", 0),
			Args: []ast.Expr{varE("x", 0), varE("y", 3)},
		},
	}

	v := ast.Var0("y")
	up := normalize.Shift(1, v, e)
	down := normalize.Shift(-1, v, up)

	if diff := cmp.Diff(e, down, ast.CmpOptions); diff != "" {
		t.Errorf("shift(-1) . shift(+1) != identity (-want +got):\n%s", diff)
	}
}

func TestShiftSkipsDifferentName(t *testing.T) {
	e := varE("x", 2)
	got := normalize.Shift(1, ast.Var0("y"), e)
	if diff := cmp.Diff(e, got, ast.CmpOptions); diff != "" {
		t.Errorf("shift on unrelated name changed the expression:\n%s", diff)
	}
}

func TestShiftBoundOccurrenceUntouched(t *testing.T) {
	// λ(x : Natural) → x  — the occurrence of x is bound by the Lam, so
	// shifting the free variable x@0 must not touch it.
	e := &ast.Lam{
		Label:  "x",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("x", 0),
	}
	got := normalize.Shift(1, ast.Var0("x"), e)
	if diff := cmp.Diff(e, got, ast.CmpOptions); diff != "" {
		t.Errorf("shift touched a bound occurrence:\n%s", diff)
	}
}

func TestShiftFreeOccurrencePastBinder(t *testing.T) {
	// λ(y : Natural) → x@0 — x is free here; shifting x@0 should bump it,
	// even though we just crossed a binder (for a different name).
	e := &ast.Lam{
		Label:  "y",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("x", 0),
	}
	want := &ast.Lam{
		Label:  "y",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("x", 1),
	}
	got := normalize.Shift(1, ast.Var0("x"), e)
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("shift across an unrelated binder misbehaved:\n%s", diff)
	}
}
