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

// Subst replaces free occurrences of v in e with repl. Crossing a
// binder named x always shifts repl by +1 on V(x,0) — even when x != v.Name
// — because repl may itself mention x freely, and entering the new binder
// would otherwise let that reference be captured. When the binder's name
// does match v.Name, the target index is additionally bumped by one so it
// keeps referring to the same (now one-further-out) occurrence.
func Subst(v ast.V, repl ast.Expr, e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.VarExpr:
		if x.V == v {
			return repl
		}
		return x

	case *ast.ConstExpr, *ast.BuiltinExpr:
		return x

	case *ast.Lam:
		domain := Subst(v, repl, x.Domain)
		v2, repl2 := cross(x.Label, v, repl)
		return &ast.Lam{Label: x.Label, Domain: domain, Body: Subst(v2, repl2, x.Body)}

	case *ast.Pi:
		domain := Subst(v, repl, x.Domain)
		v2, repl2 := cross(x.Label, v, repl)
		return &ast.Pi{Label: x.Label, Domain: domain, Codomain: Subst(v2, repl2, x.Codomain)}

	case *ast.App:
		fn := Subst(v, repl, x.Fn)
		args := make([]ast.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = Subst(v, repl, a)
		}
		return &ast.App{Fn: fn, Args: args}

	case *ast.Let:
		var annot ast.Expr
		if x.Annotation != nil {
			annot = Subst(v, repl, x.Annotation)
		}
		value := Subst(v, repl, x.Value)
		v2, repl2 := cross(x.Label, v, repl)
		return &ast.Let{Label: x.Label, Annotation: annot, Value: value, Body: Subst(v2, repl2, x.Body)}

	case *ast.Annot:
		return &ast.Annot{Expr: Subst(v, repl, x.Expr), Type: Subst(v, repl, x.Type)}

	case *ast.BoolLit, *ast.NaturalLit, *ast.IntegerLit, *ast.DoubleLit:
		return x

	case *ast.TextLit:
		chunks := make([]ast.TextChunk, len(x.Chunks))
		for i, c := range x.Chunks {
			chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: Subst(v, repl, c.Expr)}
		}
		return &ast.TextLit{Chunks: chunks, Suffix: x.Suffix}

	case *ast.BinOp:
		return &ast.BinOp{Op: x.Op, L: Subst(v, repl, x.L), R: Subst(v, repl, x.R)}

	case *ast.BoolIf:
		return &ast.BoolIf{
			Cond:  Subst(v, repl, x.Cond),
			True:  Subst(v, repl, x.True),
			False: Subst(v, repl, x.False),
		}

	case *ast.ListLit:
		return &ast.ListLit{Type: substOpt(v, repl, x.Type), Items: substAll(v, repl, x.Items)}

	case *ast.OptionalLit:
		return &ast.OptionalLit{Type: substOpt(v, repl, x.Type), Items: substAll(v, repl, x.Items)}

	case *ast.RecordType:
		return &ast.RecordType{Fields: substFields(v, repl, x.Fields)}

	case *ast.RecordLit:
		return &ast.RecordLit{Fields: substFields(v, repl, x.Fields)}

	case *ast.UnionType:
		return &ast.UnionType{Alternatives: substFields(v, repl, x.Alternatives)}

	case *ast.UnionLit:
		return &ast.UnionLit{
			Tag:    x.Tag,
			Value:  substOpt(v, repl, x.Value),
			Others: substFields(v, repl, x.Others),
		}

	case *ast.Merge:
		return &ast.Merge{
			Handlers:   Subst(v, repl, x.Handlers),
			Scrutinee:  Subst(v, repl, x.Scrutinee),
			ResultType: substOpt(v, repl, x.ResultType),
		}

	case *ast.Field:
		return &ast.Field{Record: Subst(v, repl, x.Record), Label: x.Label}

	case *ast.Note:
		return &ast.Note{Span: x.Span, Expr: Subst(v, repl, x.Expr)}

	case *ast.Embed:
		return x

	default:
		panic("normalize: unhandled Expr in Subst")
	}
}

// cross computes the (target, replacement) pair to recurse with when
// descending past a binder named label, per the rule in Subst's doc
// comment.
func cross(label ast.Label, v ast.V, repl ast.Expr) (ast.V, ast.Expr) {
	repl2 := Shift(1, ast.Var0(label), repl)
	if label == v.Name {
		return v.Shifted(1), repl2
	}
	return v, repl2
}

func substOpt(v ast.V, repl ast.Expr, e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return Subst(v, repl, e)
}

func substAll(v ast.V, repl ast.Expr, es []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, len(es))
	for i, e := range es {
		out[i] = Subst(v, repl, e)
	}
	return out
}

func substFields(v ast.V, repl ast.Expr, fields []ast.FieldEntry) []ast.FieldEntry {
	out := make([]ast.FieldEntry, len(fields))
	for i, f := range fields {
		out[i] = ast.FieldEntry{Label: f.Label, Expr: substOpt(v, repl, f.Expr)}
	}
	return out
}
