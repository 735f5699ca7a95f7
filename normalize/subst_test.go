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

// TestSubstAvoidsCapture exercises the binder-crossing rule: substituting
// `y` for `x@0` inside `λ(y : Natural) → x` must shift the free
// occurrence of y in the replacement, or it would be captured by the new
// binder.
func TestSubstAvoidsCapture(t *testing.T) {
	// e = λ(y : Natural) → x
	e := &ast.Lam{
		Label:  "y",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("x", 0),
	}
	repl := varE("y", 0) // the replacement mentions the binder's own name

	got := normalize.Subst(ast.Var0("x"), repl, e)

	// Correct result: λ(y : Natural) → y@1 — the replacement's y was
	// shifted to refer past the new binder, not captured by it.
	want := &ast.Lam{
		Label:  "y",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("y", 1),
	}
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("subst allowed capture (-want +got):\n%s", diff)
	}
}

func TestSubstCrossesSameNameBinder(t *testing.T) {
	// e = λ(x : Natural) → x@1 (a reference to the *outer* x).
	// Substituting x@0 in the outer scope: after crossing the x binder the
	// target becomes x@1, so the inner x@1 is the occurrence replaced by
	// 42, and nothing at index 0 inside the body is touched.
	e := &ast.Lam{
		Label:  "x",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   varE("x", 1),
	}
	got := normalize.Subst(ast.Var0("x"), ast.NewNatural(42), e)
	want := &ast.Lam{
		Label:  "x",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body:   ast.NewNatural(42),
	}
	if diff := cmp.Diff(want, got, ast.CmpOptions); diff != "" {
		t.Errorf("subst did not reach the shadowed outer reference:\n%s", diff)
	}
}
