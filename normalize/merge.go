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

// normalizeMerge implements `merge handlers scrutinee (: T)?`, following
// dhall-lang's standard normalization rules: the handler keyed by the
// scrutinee's tag is applied to the tag's payload, or used directly when
// the alternative carries none. Anything else stays a stuck Merge with
// normalized children.
func normalizeMerge(x *ast.Merge) ast.Expr {
	handlers := Normalize(x.Handlers)
	scrutinee := Normalize(x.Scrutinee)
	resultType := normalizeOpt(x.ResultType)

	h, hOK := handlers.(*ast.RecordLit)
	u, uOK := scrutinee.(*ast.UnionLit)
	if hOK && uOK {
		if handler, ok := ast.Lookup(h.Fields, u.Tag); ok {
			if u.Value == nil {
				// u.Tag names a parameterless alternative: the handler is
				// used directly, not applied.
				return Normalize(handler)
			}
			return Normalize(ast.NewApp(handler, u.Value))
		}
	}

	return &ast.Merge{Handlers: handlers, Scrutinee: scrutinee, ResultType: resultType}
}
