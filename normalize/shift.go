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

// Package normalize implements the kernel's variable machinery (shift,
// subst) and the beta/iota normalizer built on top of them. Every
// function here is total: it accepts any well-formed Expr and returns a
// new Expr, never an error. Errors only ever arise at the parser
// boundary (package errors); an ill-typed term just normalizes to a
// stuck residual instead.
package normalize

import "github.com/dhall-lang/dhall-go/ast"

// Shift adds d (±1) to every free occurrence of v's name in e whose index
// is >= v.Index, recursing structurally and bumping the target index by
// one upon entering a binder that shares v's name. It never touches a
// bound occurrence and never mutates e.
func Shift(d int, v ast.V, e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.VarExpr:
		if x.V.Name == v.Name && x.V.Index >= v.Index {
			return &ast.VarExpr{V: x.V.Shifted(d)}
		}
		return x

	case *ast.ConstExpr, *ast.BuiltinExpr:
		return x

	case *ast.Lam:
		domain := Shift(d, v, x.Domain)
		body := x.Body
		if x.Label == v.Name {
			body = Shift(d, v.Shifted(1), body)
		} else {
			body = Shift(d, v, body)
		}
		return &ast.Lam{Label: x.Label, Domain: domain, Body: body}

	case *ast.Pi:
		domain := Shift(d, v, x.Domain)
		codomain := x.Codomain
		if x.Label == v.Name {
			codomain = Shift(d, v.Shifted(1), codomain)
		} else {
			codomain = Shift(d, v, codomain)
		}
		return &ast.Pi{Label: x.Label, Domain: domain, Codomain: codomain}

	case *ast.App:
		fn := Shift(d, v, x.Fn)
		args := make([]ast.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = Shift(d, v, a)
		}
		return &ast.App{Fn: fn, Args: args}

	case *ast.Let:
		var annot ast.Expr
		if x.Annotation != nil {
			annot = Shift(d, v, x.Annotation)
		}
		value := Shift(d, v, x.Value)
		body := x.Body
		if x.Label == v.Name {
			body = Shift(d, v.Shifted(1), body)
		} else {
			body = Shift(d, v, body)
		}
		return &ast.Let{Label: x.Label, Annotation: annot, Value: value, Body: body}

	case *ast.Annot:
		return &ast.Annot{Expr: Shift(d, v, x.Expr), Type: Shift(d, v, x.Type)}

	case *ast.BoolLit, *ast.NaturalLit, *ast.IntegerLit, *ast.DoubleLit:
		return x

	case *ast.TextLit:
		chunks := make([]ast.TextChunk, len(x.Chunks))
		for i, c := range x.Chunks {
			chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: Shift(d, v, c.Expr)}
		}
		return &ast.TextLit{Chunks: chunks, Suffix: x.Suffix}

	case *ast.BinOp:
		return &ast.BinOp{Op: x.Op, L: Shift(d, v, x.L), R: Shift(d, v, x.R)}

	case *ast.BoolIf:
		return &ast.BoolIf{
			Cond:  Shift(d, v, x.Cond),
			True:  Shift(d, v, x.True),
			False: Shift(d, v, x.False),
		}

	case *ast.ListLit:
		return &ast.ListLit{Type: shiftOpt(d, v, x.Type), Items: shiftAll(d, v, x.Items)}

	case *ast.OptionalLit:
		return &ast.OptionalLit{Type: shiftOpt(d, v, x.Type), Items: shiftAll(d, v, x.Items)}

	case *ast.RecordType:
		return &ast.RecordType{Fields: shiftFields(d, v, x.Fields)}

	case *ast.RecordLit:
		return &ast.RecordLit{Fields: shiftFields(d, v, x.Fields)}

	case *ast.UnionType:
		return &ast.UnionType{Alternatives: shiftFields(d, v, x.Alternatives)}

	case *ast.UnionLit:
		return &ast.UnionLit{
			Tag:    x.Tag,
			Value:  shiftOpt(d, v, x.Value),
			Others: shiftFields(d, v, x.Others),
		}

	case *ast.Merge:
		return &ast.Merge{
			Handlers:   Shift(d, v, x.Handlers),
			Scrutinee:  Shift(d, v, x.Scrutinee),
			ResultType: shiftOpt(d, v, x.ResultType),
		}

	case *ast.Field:
		return &ast.Field{Record: Shift(d, v, x.Record), Label: x.Label}

	case *ast.Note:
		return &ast.Note{Span: x.Span, Expr: Shift(d, v, x.Expr)}

	case *ast.Embed:
		return x

	default:
		panic("normalize: unhandled Expr in Shift")
	}
}

func shiftOpt(d int, v ast.V, e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return Shift(d, v, e)
}

func shiftAll(d int, v ast.V, es []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, len(es))
	for i, e := range es {
		out[i] = Shift(d, v, e)
	}
	return out
}

func shiftFields(d int, v ast.V, fields []ast.FieldEntry) []ast.FieldEntry {
	out := make([]ast.FieldEntry, len(fields))
	for i, f := range fields {
		out[i] = ast.FieldEntry{Label: f.Label, Expr: shiftOpt(d, v, f.Expr)}
	}
	return out
}
