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

import "sort"

// NewApp applies fn to args, left-associating multiple arguments into a
// single n-ary App node the way the parser's chained-application
// production does: `f a b c` parses as one App{Fn: f, Args: [a,b,c]}
// rather than nested binary applications.
func NewApp(fn Expr, args ...Expr) Expr {
	if len(args) == 0 {
		return fn
	}
	if a, ok := fn.(*App); ok {
		merged := make([]Expr, 0, len(a.Args)+len(args))
		merged = append(merged, a.Args...)
		merged = append(merged, args...)
		return &App{Fn: a.Fn, Args: merged}
	}
	return &App{Fn: fn, Args: append([]Expr(nil), args...)}
}

// Spine decomposes e into its applied head and argument list, collapsing
// any nesting of App nodes (an App whose own Fn is again an App, as a
// partially-applied builtin can be). The normalizer's built-in rewrite
// table dispatches on (head, args) instead of matching deep
// App(App(App(...))) trees directly.
func Spine(e Expr) (head Expr, args []Expr) {
	a, ok := e.(*App)
	if !ok {
		return e, nil
	}
	innerHead, innerArgs := Spine(a.Fn)
	args = make([]Expr, 0, len(innerArgs)+len(a.Args))
	args = append(args, innerArgs...)
	args = append(args, a.Args...)
	return innerHead, args
}

// SortFields sorts fields by label in place and returns it, establishing
// the deterministic lexicographic order every record and union carries,
// whether built from user- or normalizer-supplied entries.
func SortFields(fields []FieldEntry) []FieldEntry {
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Label.Less(fields[j].Label)
	})
	return fields
}

// NewRecordType builds a RecordType with fields in label order.
func NewRecordType(fields []FieldEntry) *RecordType {
	return &RecordType{Fields: SortFields(fields)}
}

// NewRecordLit builds a RecordLit with fields in label order.
func NewRecordLit(fields []FieldEntry) *RecordLit {
	return &RecordLit{Fields: SortFields(fields)}
}

// NewUnionType builds a UnionType with alternatives in label order.
func NewUnionType(alts []FieldEntry) *UnionType {
	return &UnionType{Alternatives: SortFields(alts)}
}

// Lookup returns the expression bound to label in fields, or nil if
// absent.
func Lookup(fields []FieldEntry, label Label) (Expr, bool) {
	// Fields are kept sorted; a linear scan is simplest and, at Dhall
	// record sizes, fast enough. Binary search would save little here.
	for _, f := range fields {
		if f.Label == label {
			return f.Expr, true
		}
	}
	return nil, false
}

// NewLam builds a Lam.
func NewLam(label Label, domain, body Expr) *Lam {
	return &Lam{Label: label, Domain: domain, Body: body}
}

// NewPi builds a Pi type.
func NewPi(label Label, domain, codomain Expr) *Pi {
	return &Pi{Label: label, Domain: domain, Codomain: codomain}
}

// NewLet builds a Let binding; annotation may be nil.
func NewLet(label Label, annotation, value, body Expr) *Let {
	return &Let{Label: label, Annotation: annotation, Value: value, Body: body}
}
