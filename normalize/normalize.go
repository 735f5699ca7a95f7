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

// Normalize reduces e to normal form by recursive descent, applying beta
// reduction and the built-in rewrite rules for Natural, List, Optional,
// booleans, records, and unions at every redex it finds. Every Expr
// variant has a branch that returns a value; the only panics in this
// package are the internal-invariant guards in the default cases of
// Normalize, Shift and Subst, reached only by an Expr type the ast
// package does not define.
func Normalize(e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.ConstExpr:
		return x
	case *ast.VarExpr:
		return x
	case *ast.BuiltinExpr:
		return x
	case *ast.Embed:
		return x

	case *ast.Lam:
		return &ast.Lam{Label: x.Label, Domain: Normalize(x.Domain), Body: Normalize(x.Body)}

	case *ast.Pi:
		return &ast.Pi{Label: x.Label, Domain: Normalize(x.Domain), Codomain: Normalize(x.Codomain)}

	case *ast.App:
		return normalizeApp(Normalize(x.Fn), x.Args)

	case *ast.Let:
		v := ast.Var0(x.Label)
		r2 := Shift(1, v, x.Value)
		b2 := Subst(v, r2, x.Body)
		b3 := Shift(-1, v, b2)
		return Normalize(b3)

	case *ast.Annot:
		return Normalize(x.Expr)

	case *ast.Note:
		return Normalize(x.Expr)

	case *ast.BoolLit:
		return x
	case *ast.NaturalLit:
		return x
	case *ast.IntegerLit:
		return x
	case *ast.DoubleLit:
		return x

	case *ast.TextLit:
		return normalizeText(x)

	case *ast.BinOp:
		return normalizeBinOp(x)

	case *ast.BoolIf:
		cond := Normalize(x.Cond)
		if b, ok := cond.(*ast.BoolLit); ok {
			if b.Value {
				return Normalize(x.True)
			}
			return Normalize(x.False)
		}
		return &ast.BoolIf{Cond: cond, True: Normalize(x.True), False: Normalize(x.False)}

	case *ast.ListLit:
		return &ast.ListLit{Type: normalizeOpt(x.Type), Items: normalizeAll(x.Items)}

	case *ast.OptionalLit:
		return &ast.OptionalLit{Type: normalizeOpt(x.Type), Items: normalizeAll(x.Items)}

	case *ast.RecordType:
		return ast.NewRecordType(normalizeFields(x.Fields))

	case *ast.RecordLit:
		return ast.NewRecordLit(normalizeFields(x.Fields))

	case *ast.UnionType:
		return ast.NewUnionType(normalizeFields(x.Alternatives))

	case *ast.UnionLit:
		return &ast.UnionLit{
			Tag:    x.Tag,
			Value:  normalizeOpt(x.Value),
			Others: normalizeFields(x.Others),
		}

	case *ast.Merge:
		return normalizeMerge(x)

	case *ast.Field:
		return normalizeField(x)

	default:
		panic("normalize: unhandled Expr in Normalize")
	}
}

func normalizeOpt(e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return Normalize(e)
}

func normalizeAll(es []ast.Expr) []ast.Expr {
	if es == nil {
		return nil
	}
	out := make([]ast.Expr, len(es))
	for i, e := range es {
		out[i] = Normalize(e)
	}
	return out
}

func normalizeFields(fields []ast.FieldEntry) []ast.FieldEntry {
	out := make([]ast.FieldEntry, len(fields))
	for i, f := range fields {
		out[i] = ast.FieldEntry{Label: f.Label, Expr: normalizeOpt(f.Expr)}
	}
	return out
}

// normalizeApp threads rawArgs through fn (already normalized) one at a
// time: a Lam immediately beta-reduces, a builtin-headed spine is offered
// to rewriteBuiltin after every argument, and anything left over at the
// end becomes a (stuck, or simply unsaturated) App.
//
// cur is not necessarily a bare *ast.BuiltinExpr: a builtin that was not
// yet saturated the last time it was normalized (e.g. the Fn of this very
// App, or the value a let-bound name was normalized to) comes back as a
// stuck *ast.App{Fn: BuiltinExpr, Args: [...]}. Every iteration
// re-decomposes cur through ast.Spine to find the builtin head and its
// already-applied arguments, so the rewrite table sees the builtin's full
// argument list no matter how many partial applications it was built up
// through.
func normalizeApp(fn ast.Expr, rawArgs []ast.Expr) ast.Expr {
	cur := fn
	var pending []ast.Expr
	for _, raw := range rawArgs {
		arg := Normalize(raw)
		if lam, ok := cur.(*ast.Lam); ok {
			cur = beta(lam, arg)
			continue
		}
		pending = append(pending, arg)
		head, spineArgs := ast.Spine(cur)
		if b, ok := head.(*ast.BuiltinExpr); ok {
			allArgs := make([]ast.Expr, 0, len(spineArgs)+len(pending))
			allArgs = append(allArgs, spineArgs...)
			allArgs = append(allArgs, pending...)
			if result, handled := rewriteBuiltin(b.Builtin, allArgs); handled {
				cur = result
				pending = nil
			}
		}
	}
	if len(pending) == 0 {
		return cur
	}
	return &ast.App{Fn: cur, Args: pending}
}

// beta performs the three-step shift/subst/shift dance that keeps
// de Bruijn indices consistent across the substitution, then normalizes
// the result.
func beta(lam *ast.Lam, arg ast.Expr) ast.Expr {
	v := ast.Var0(lam.Label)
	a2 := Shift(1, v, arg)
	b2 := Subst(v, a2, lam.Body)
	b3 := Shift(-1, v, b2)
	return Normalize(b3)
}

func normalizeText(x *ast.TextLit) ast.Expr {
	if x.Chunks == nil {
		return &ast.TextLit{Suffix: x.Suffix}
	}
	chunks := make([]ast.TextChunk, len(x.Chunks))
	for i, c := range x.Chunks {
		chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: Normalize(c.Expr)}
	}
	return &ast.TextLit{Chunks: chunks, Suffix: x.Suffix}
}

func normalizeField(x *ast.Field) ast.Expr {
	record := Normalize(x.Record)
	lit, ok := record.(*ast.RecordLit)
	if !ok {
		return &ast.Field{Record: record, Label: x.Label}
	}
	if v, ok := ast.Lookup(lit.Fields, x.Label); ok {
		return Normalize(v)
	}
	return &ast.Field{Record: ast.NewRecordLit(normalizeFields(lit.Fields)), Label: x.Label}
}
