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

// Package ast defines the single expression representation shared by every
// stage of the kernel: the parser builds it, shift/subst/normalize rewrite
// it, and external consumers (a type checker, a value extractor) read it
// back. There is no separate "surface" tree and "core" IR — Dhall's AST
// plays both roles.
package ast

// Label is an interned Dhall identifier. Equality is by characters;
// ordering is lexicographic and is used only to key record and union
// fields into a deterministic order.
type Label string

// Less reports whether l sorts before o under the ordering record and
// union fields are normalized to.
func (l Label) Less(o Label) bool { return string(l) < string(o) }

// V is a reference to the n-th most recent binder named Name, counting
// outward from the occurrence; n == 0 denotes the innermost binder of
// that name. Shadowing is per-name: a binder named "y" does not change
// the index of an occurrence of "x".
type V struct {
	Name  Label
	Index int
}

// Var0 constructs a V with index 0, the common case of referring to the
// nearest enclosing binder of Name.
func Var0(name Label) V { return V{Name: name, Index: 0} }

// Shifted returns a copy of v with its index adjusted by d. It does not
// check whether v is the variable shift/subst are targeting; callers use
// this only once they know the name matches.
func (v V) Shifted(d int) V { return V{Name: v.Name, Index: v.Index + d} }
