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

// normalizeBinOp normalizes both operands and then tries the rewrite
// rule for x.Op, falling back to preserving the BinOp node (with its
// now-normalized children) whenever the operands' shapes don't match —
// e.g. `x && y` where x didn't reduce to a BoolLit because it mentions a
// free variable.
func normalizeBinOp(x *ast.BinOp) ast.Expr {
	l := Normalize(x.L)
	r := Normalize(x.R)

	switch x.Op {
	case ast.BoolAnd:
		if a, b, ok := boolPair(l, r); ok {
			return &ast.BoolLit{Value: a && b}
		}
	case ast.BoolOr:
		if a, b, ok := boolPair(l, r); ok {
			return &ast.BoolLit{Value: a || b}
		}
	case ast.BoolEQ:
		if a, b, ok := boolPair(l, r); ok {
			return &ast.BoolLit{Value: a == b}
		}
	case ast.BoolNE:
		if a, b, ok := boolPair(l, r); ok {
			return &ast.BoolLit{Value: a != b}
		}

	case ast.NaturalPlus:
		if a, b, ok := natPair(l, r); ok {
			return a.Add(b)
		}
	case ast.NaturalTimes:
		if a, b, ok := natPair(l, r); ok {
			return a.Mul(b)
		}

	case ast.TextAppend:
		if a, b, ok := literalTextPair(l, r); ok {
			return &ast.TextLit{Suffix: a + b}
		}

	case ast.ListAppend:
		if a, b, ok := listPair(l, r); ok {
			typ := a.Type
			if typ == nil {
				typ = b.Type
			}
			items := make([]ast.Expr, 0, len(a.Items)+len(b.Items))
			items = append(items, a.Items...)
			items = append(items, b.Items...)
			return &ast.ListLit{Type: typ, Items: items}
		}

	case ast.Combine:
		if a, b, ok := recordLitPair(l, r); ok {
			return combineRecordLits(ast.Combine, a, b)
		}
	case ast.CombineTypes:
		if a, b, ok := recordTypePair(l, r); ok {
			return combineRecordTypes(a, b)
		}
	case ast.Prefer:
		if a, b, ok := recordLitPair(l, r); ok {
			return preferRecordLit(a, b)
		}

	case ast.ImportAlt:
		// Import resolution is out of scope for the kernel; `?` is pure
		// congruence here, left for the import resolver to collapse.
	}

	return &ast.BinOp{Op: x.Op, L: l, R: r}
}

func boolPair(l, r ast.Expr) (bool, bool, bool) {
	a, ok1 := l.(*ast.BoolLit)
	b, ok2 := r.(*ast.BoolLit)
	if !ok1 || !ok2 {
		return false, false, false
	}
	return a.Value, b.Value, true
}

func natPair(l, r ast.Expr) (*ast.NaturalLit, *ast.NaturalLit, bool) {
	a, ok1 := l.(*ast.NaturalLit)
	b, ok2 := r.(*ast.NaturalLit)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return a, b, true
}

func literalTextPair(l, r ast.Expr) (string, string, bool) {
	a, ok1 := l.(*ast.TextLit)
	b, ok2 := r.(*ast.TextLit)
	if !ok1 || !ok2 || !a.IsLiteral() || !b.IsLiteral() {
		return "", "", false
	}
	return a.Suffix, b.Suffix, true
}

func listPair(l, r ast.Expr) (*ast.ListLit, *ast.ListLit, bool) {
	a, ok1 := l.(*ast.ListLit)
	b, ok2 := r.(*ast.ListLit)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return a, b, true
}

func recordLitPair(l, r ast.Expr) (*ast.RecordLit, *ast.RecordLit, bool) {
	a, ok1 := l.(*ast.RecordLit)
	b, ok2 := r.(*ast.RecordLit)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return a, b, true
}

func recordTypePair(l, r ast.Expr) (*ast.RecordType, *ast.RecordType, bool) {
	a, ok1 := l.(*ast.RecordType)
	b, ok2 := r.(*ast.RecordType)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return a, b, true
}

// combineRecordLits implements `/\`: fields present on only one side
// pass through; fields present on both recursively combine.
func combineRecordLits(op ast.Operator, a, b *ast.RecordLit) *ast.RecordLit {
	return ast.NewRecordLit(mergeFields(a.Fields, b.Fields, func(av, bv ast.Expr) ast.Expr {
		return Normalize(&ast.BinOp{Op: op, L: av, R: bv})
	}))
}

// combineRecordTypes implements `//\\` the same way, over field types.
func combineRecordTypes(a, b *ast.RecordType) *ast.RecordType {
	return ast.NewRecordType(mergeFields(a.Fields, b.Fields, func(av, bv ast.Expr) ast.Expr {
		return Normalize(&ast.BinOp{Op: ast.CombineTypes, L: av, R: bv})
	}))
}

// preferRecordLit implements `//`: on collision the right-hand value
// wins outright, with no recursion into nested records.
func preferRecordLit(a, b *ast.RecordLit) *ast.RecordLit {
	return ast.NewRecordLit(mergeFields(a.Fields, b.Fields, func(_, bv ast.Expr) ast.Expr {
		return bv
	}))
}

func mergeFields(a, b []ast.FieldEntry, onCollision func(av, bv ast.Expr) ast.Expr) []ast.FieldEntry {
	bv := make(map[ast.Label]ast.Expr, len(b))
	for _, f := range b {
		bv[f.Label] = f.Expr
	}
	seen := make(map[ast.Label]bool, len(a)+len(b))
	out := make([]ast.FieldEntry, 0, len(a)+len(b))
	for _, f := range a {
		seen[f.Label] = true
		if other, ok := bv[f.Label]; ok {
			out = append(out, ast.FieldEntry{Label: f.Label, Expr: onCollision(f.Expr, other)})
		} else {
			out = append(out, f)
		}
	}
	for _, f := range b {
		if !seen[f.Label] {
			out = append(out, f)
		}
	}
	return out
}
