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

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders e as Dhall source text. It is not a pretty-printer in
// the sense of line-wrapping or alignment; operands of binary operators
// and of applications are parenthesized unless they are atomic. The
// output does not always reparse to an equivalent tree: the element type
// of a List or Optional literal and the annotation of a merge are not
// printed, text is written without re-escaping, doubles use Go's 'g'
// formatting (so 1.0 prints as "1"), and an Embed prints as an
// "<import:...>" placeholder.
func Sprint(e Expr) string {
	var b strings.Builder
	sprint(&b, e)
	return b.String()
}

func sprint(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case *ConstExpr:
		b.WriteString(x.Const.String())
	case *VarExpr:
		b.WriteString(string(x.V.Name))
		if x.V.Index != 0 {
			fmt.Fprintf(b, "@%d", x.V.Index)
		}
	case *Lam:
		fmt.Fprintf(b, "\\(%s : ", x.Label)
		sprint(b, x.Domain)
		b.WriteString(") -> ")
		sprint(b, x.Body)
	case *Pi:
		if x.Label == "_" {
			sprint(b, x.Domain)
			b.WriteString(" -> ")
		} else {
			fmt.Fprintf(b, "forall (%s : ", x.Label)
			sprint(b, x.Domain)
			b.WriteString(") -> ")
		}
		sprint(b, x.Codomain)
	case *App:
		sprintAtom(b, x.Fn)
		for _, a := range x.Args {
			b.WriteByte(' ')
			sprintAtom(b, a)
		}
	case *Let:
		b.WriteString("let ")
		b.WriteString(string(x.Label))
		if x.Annotation != nil {
			b.WriteString(" : ")
			sprint(b, x.Annotation)
		}
		b.WriteString(" = ")
		sprint(b, x.Value)
		b.WriteString(" in ")
		sprint(b, x.Body)
	case *Annot:
		sprint(b, x.Expr)
		b.WriteString(" : ")
		sprint(b, x.Type)
	case *BuiltinExpr:
		b.WriteString(x.Builtin.String())
	case *BoolLit:
		if x.Value {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case *NaturalLit:
		b.WriteString(x.String())
	case *IntegerLit:
		b.WriteString(x.String())
	case *DoubleLit:
		b.WriteString(strconv.FormatFloat(x.Value, 'g', -1, 64))
	case *TextLit:
		b.WriteByte('"')
		for _, c := range x.Chunks {
			b.WriteString(c.Prefix)
			b.WriteString("${")
			sprint(b, c.Expr)
			b.WriteByte('}')
		}
		b.WriteString(x.Suffix)
		b.WriteByte('"')
	case *BinOp:
		sprintAtom(b, x.L)
		fmt.Fprintf(b, " %s ", x.Op)
		sprintAtom(b, x.R)
	case *BoolIf:
		b.WriteString("if ")
		sprint(b, x.Cond)
		b.WriteString(" then ")
		sprint(b, x.True)
		b.WriteString(" else ")
		sprint(b, x.False)
	case *ListLit:
		b.WriteByte('[')
		for i, item := range x.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			sprint(b, item)
		}
		b.WriteByte(']')
	case *OptionalLit:
		if len(x.Items) == 0 {
			b.WriteString("None")
		} else {
			b.WriteString("Some ")
			sprintAtom(b, x.Items[0])
		}
	case *RecordType:
		sprintFields(b, x.Fields, ":")
	case *RecordLit:
		sprintFields(b, x.Fields, "=")
	case *UnionType:
		sprintUnion(b, x.Alternatives)
	case *UnionLit:
		b.WriteString("< ")
		b.WriteString(string(x.Tag))
		if x.Value != nil {
			b.WriteString(" = ")
			sprint(b, x.Value)
		}
		for _, f := range x.Others {
			b.WriteString(" | ")
			sprintUnionAlt(b, f)
		}
		b.WriteString(" >")
	case *Merge:
		b.WriteString("merge ")
		sprintAtom(b, x.Handlers)
		b.WriteByte(' ')
		sprintAtom(b, x.Scrutinee)
	case *Field:
		sprintAtom(b, x.Record)
		b.WriteByte('.')
		b.WriteString(string(x.Label))
	case *Note:
		sprint(b, x.Expr)
	case *Embed:
		fmt.Fprintf(b, "<import:%v>", x.Payload)
	default:
		b.WriteString("<?>")
	}
}

// sprintAtom wraps e in parens unless it is already lexically atomic, so
// operator and application contexts stay unambiguous.
func sprintAtom(b *strings.Builder, e Expr) {
	switch e.(type) {
	case *VarExpr, *ConstExpr, *BuiltinExpr, *BoolLit, *NaturalLit, *IntegerLit,
		*DoubleLit, *TextLit, *ListLit, *RecordType, *RecordLit, *UnionType, *UnionLit:
		sprint(b, e)
	default:
		b.WriteByte('(')
		sprint(b, e)
		b.WriteByte(')')
	}
}

func sprintFields(b *strings.Builder, fields []FieldEntry, sep string) {
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, " %s %s ", f.Label, sep)
		sprint(b, f.Expr)
	}
	if len(fields) > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('}')
}

func sprintUnion(b *strings.Builder, alts []FieldEntry) {
	b.WriteString("< ")
	for i, f := range alts {
		if i > 0 {
			b.WriteString(" | ")
		}
		sprintUnionAlt(b, f)
	}
	b.WriteString(" >")
}

func sprintUnionAlt(b *strings.Builder, f FieldEntry) {
	b.WriteString(string(f.Label))
	if f.Expr != nil {
		b.WriteString(" : ")
		sprint(b, f.Expr)
	}
}
