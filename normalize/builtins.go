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

package normalize

import "github.com/dhall-lang/dhall-go/ast"

// asBuiltinApp decomposes e's application spine and reports whether its
// head is a bare Builtin, returning the builtin and its so-far applied
// arguments.
func asBuiltinApp(e ast.Expr) (ast.Builtin, []ast.Expr, bool) {
	head, args := ast.Spine(e)
	b, ok := head.(*ast.BuiltinExpr)
	if !ok {
		return 0, nil, false
	}
	return b.Builtin, args, true
}

// rewriteBuiltin attempts one of the built-in application rewrites for
// head applied to args (accumulated left to right as normalizeApp feeds
// arguments in one at a time). It returns handled == false when args
// isn't (yet, or ever going to be, for a stuck redex) in a shape any rule
// matches — the caller leaves the application as-is in that case.
//
// Fusion is checked strictly before the matching non-fusion rule fires,
// and for List/fold, Natural/fold, and Optional/fold it is checked at a
// shorter argument count than full saturation, since the fused shape
// only needs the builtin's first one or two arguments to decide.
func rewriteBuiltin(head ast.Builtin, args []ast.Expr) (ast.Expr, bool) {
	switch head {
	case ast.NaturalIsZero:
		if n, ok := natArg(args, 1, 0); ok {
			return &ast.BoolLit{Value: n.IsZero()}, true
		}
	case ast.NaturalEven:
		if n, ok := natArg(args, 1, 0); ok {
			return &ast.BoolLit{Value: n.Even()}, true
		}
	case ast.NaturalOdd:
		if n, ok := natArg(args, 1, 0); ok {
			return &ast.BoolLit{Value: !n.Even()}, true
		}
	case ast.NaturalToInteger:
		if n, ok := natArg(args, 1, 0); ok {
			return n.ToInteger(), true
		}
	case ast.NaturalShow:
		if n, ok := natArg(args, 1, 0); ok {
			return &ast.TextLit{Suffix: n.String()}, true
		}

	case ast.NaturalFold:
		if len(args) == 1 {
			if e2, ok := fusionArg(args[0], ast.NaturalBuild, 1); ok {
				return Normalize(e2[0]), true
			}
		}
		if len(args) == 4 {
			n, ok := args[0].(*ast.NaturalLit)
			if !ok {
				break
			}
			return naturalFold(n, args[2], args[3]), true
		}

	case ast.NaturalBuild:
		if len(args) == 1 {
			if e2, ok := fusionArg(args[0], ast.NaturalFold, 1); ok {
				return Normalize(e2[0]), true
			}
			if result, ok := naturalBuild(args[0]); ok {
				return result, true
			}
		}

	case ast.ListFold:
		if len(args) == 2 {
			if e2, ok := fusionArg(args[1], ast.ListBuild, 2); ok {
				return Normalize(e2[1]), true
			}
		}
		if len(args) == 5 {
			xs, ok := args[1].(*ast.ListLit)
			if !ok {
				break
			}
			return listFold(xs, args[3], args[4]), true
		}

	case ast.ListBuild:
		if len(args) == 1 {
			// The fused partner may arrive before the element type does:
			// `List/build (List/fold T e)` collapses to e without ever
			// seeing List/build's own type argument.
			if e2, ok := fusionArg(args[0], ast.ListFold, 2); ok {
				return Normalize(e2[1]), true
			}
		}
		if len(args) == 2 {
			if e2, ok := fusionArg(args[1], ast.ListFold, 2); ok {
				return Normalize(e2[1]), true
			}
			if result, ok := listBuild(args[0], args[1]); ok {
				return result, true
			}
		}

	case ast.ListLength:
		if xs, ok := listArg(args, 2, 1); ok {
			return ast.NewNatural(uint64(len(xs.Items))), true
		}
	case ast.ListHead:
		if xs, ok := listArg(args, 2, 1); ok {
			items := xs.Items
			if len(items) > 1 {
				items = items[:1]
			}
			return Normalize(ast.NewOptionalLit(args[0], append([]ast.Expr(nil), items...))), true
		}
	case ast.ListLast:
		if xs, ok := listArg(args, 2, 1); ok {
			var items []ast.Expr
			if len(xs.Items) > 0 {
				items = xs.Items[len(xs.Items)-1:]
			}
			return Normalize(ast.NewOptionalLit(args[0], append([]ast.Expr(nil), items...))), true
		}
	case ast.ListReverse:
		if xs, ok := listArg(args, 2, 1); ok {
			rev := make([]ast.Expr, len(xs.Items))
			for i, item := range xs.Items {
				rev[len(xs.Items)-1-i] = item
			}
			return Normalize(&ast.ListLit{Type: xs.Type, Items: rev}), true
		}
	case ast.ListIndexed:
		if xs, ok := listArg(args, 2, 1); ok {
			return listIndexed(xs), true
		}

	case ast.OptionalFold:
		if len(args) == 2 {
			if e2, ok := fusionArg(args[1], ast.OptionalBuild, 2); ok {
				return Normalize(e2[1]), true
			}
		}
		if len(args) == 5 {
			xs, ok := args[1].(*ast.OptionalLit)
			if !ok {
				break
			}
			if len(xs.Items) == 1 {
				return Normalize(ast.NewApp(args[3], xs.Items[0])), true
			}
			return Normalize(args[4]), true
		}

	case ast.OptionalBuild:
		if len(args) == 1 {
			if e2, ok := fusionArg(args[0], ast.OptionalFold, 2); ok {
				return Normalize(e2[1]), true
			}
		}
		if len(args) == 2 {
			if e2, ok := fusionArg(args[1], ast.OptionalFold, 2); ok {
				return Normalize(e2[1]), true
			}
			return Normalize(optionalBuildExpand(args[0], args[1])), true
		}
	}
	return nil, false
}

// natArg reports whether args has exactly n entries and args[i] is a
// NaturalLit.
func natArg(args []ast.Expr, n, i int) (*ast.NaturalLit, bool) {
	if len(args) != n {
		return nil, false
	}
	v, ok := args[i].(*ast.NaturalLit)
	return v, ok
}

// listArg reports whether args has exactly n entries and args[i] is a
// ListLit.
func listArg(args []ast.Expr, n, i int) (*ast.ListLit, bool) {
	if len(args) != n {
		return nil, false
	}
	v, ok := args[i].(*ast.ListLit)
	return v, ok
}

// fusionArg reports whether e's application spine is exactly builtin b
// applied to arity arguments, returning those arguments.
func fusionArg(e ast.Expr, b ast.Builtin, arity int) ([]ast.Expr, bool) {
	hb, hargs, ok := asBuiltinApp(e)
	if !ok || hb != b || len(hargs) != arity {
		return nil, false
	}
	return hargs, true
}

// naturalFold iterates succ n times over zero, re-normalizing at every
// step to keep the accumulator in normal form.
func naturalFold(n *ast.NaturalLit, succ, zero ast.Expr) ast.Expr {
	acc := zero
	for cur := n; !cur.IsZero(); cur = cur.Dec() {
		acc = Normalize(ast.NewApp(succ, acc))
	}
	return Normalize(acc)
}

// naturalBuild attempts full evaluation of `Natural/build g`: instantiate
// g at Natural with a real successor function and zero, normalize, and
// keep the result only if it came out as a closed numeral; otherwise the
// redex is left stuck rather than guessing at a builder that didn't
// traverse numeral-shaped.
func naturalBuild(g ast.Expr) (ast.Expr, bool) {
	succ := &ast.Lam{
		Label:  "x",
		Domain: &ast.BuiltinExpr{Builtin: ast.BNatural},
		Body: &ast.BinOp{
			Op: ast.NaturalPlus,
			L:  &ast.VarExpr{V: ast.Var0("x")},
			R:  ast.NewNatural(1),
		},
	}
	candidate := ast.NewApp(g, &ast.BuiltinExpr{Builtin: ast.BNatural}, succ, ast.NewNatural(0))
	result := Normalize(candidate)
	if _, ok := result.(*ast.NaturalLit); ok {
		return result, true
	}
	return nil, false
}

// listFold right-folds cons over xs.Items starting from nil: the last
// element is consed first, so the result rebuilds the list in order.
func listFold(xs *ast.ListLit, cons, nilv ast.Expr) ast.Expr {
	acc := nilv
	for i := len(xs.Items) - 1; i >= 0; i-- {
		acc = Normalize(ast.NewApp(cons, xs.Items[i], acc))
	}
	return acc
}

// listCons and listNil are free variables used only as markers: applying
// them never reduces (nothing binds "Cons" or "Nil" here), so a build
// argument's structure survives normalization intact and can be read back
// as a list.
var (
	listCons ast.Expr = &ast.VarExpr{V: ast.Var0("Cons")}
	listNil  ast.Expr = &ast.VarExpr{V: ast.Var0("Nil")}
)

// listBuild attempts full evaluation of `List/build A g`.
func listBuild(elemType, g ast.Expr) (ast.Expr, bool) {
	listOfA := ast.NewApp(&ast.BuiltinExpr{Builtin: ast.BList}, elemType)
	candidate := ast.NewApp(g, listOfA, listCons, listNil)
	labeled := Normalize(candidate)
	items, ok := listSpine(labeled)
	if !ok {
		return nil, false
	}
	return Normalize(&ast.ListLit{Type: elemType, Items: items}), true
}

// listSpine walks a Cons/Cons/.../Nil chain built by listBuild back into
// a Go slice, outermost Cons first. Each link is decomposed through
// ast.Spine, since the normalizer may have left it as one flat two-
// argument App or as nested partial applications. It reports ok == false
// if the chain is not a clean Cons*-then-Nil spine — meaning List/build's
// argument didn't actually traverse list-shaped, and the redex is left
// stuck.
func listSpine(e ast.Expr) ([]ast.Expr, bool) {
	var items []ast.Expr
	for {
		if v, ok := e.(*ast.VarExpr); ok && v.V == ast.Var0("Nil") {
			return items, true
		}
		head, args := ast.Spine(e)
		hv, ok := head.(*ast.VarExpr)
		if !ok || hv.V != ast.Var0("Cons") || len(args) != 2 {
			return nil, false
		}
		items = append(items, args[0])
		e = args[1]
	}
}

// listIndexed builds {index, value} records for List/indexed.
func listIndexed(xs *ast.ListLit) ast.Expr {
	elemType := xs.Type
	recType := ast.NewRecordType([]ast.FieldEntry{
		{Label: "index", Expr: &ast.BuiltinExpr{Builtin: ast.BNatural}},
		{Label: "value", Expr: elemType},
	})
	items := make([]ast.Expr, len(xs.Items))
	for i, item := range xs.Items {
		items[i] = ast.NewRecordLit([]ast.FieldEntry{
			{Label: "index", Expr: ast.NewNatural(uint64(i))},
			{Label: "value", Expr: item},
		})
	}
	return Normalize(&ast.ListLit{Type: recType, Items: items})
}

// optionalBuildExpand instantiates g at Optional A with a real Some
// function and None; either branch of g already yields an Optional
// literal, so no closedness check follows.
func optionalBuildExpand(elemType, g ast.Expr) ast.Expr {
	optOfA := ast.NewApp(&ast.BuiltinExpr{Builtin: ast.BOptional}, elemType)
	some := &ast.Lam{
		Label:  "x",
		Domain: elemType,
		Body:   ast.NewOptionalLit(elemType, []ast.Expr{&ast.VarExpr{V: ast.Var0("x")}}),
	}
	none := ast.NewOptionalLit(elemType, nil)
	return ast.NewApp(g, optOfA, some, none)
}
