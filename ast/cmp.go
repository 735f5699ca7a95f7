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
	"github.com/cockroachdb/apd/v2"
	"github.com/google/go-cmp/cmp"
)

// CmpOptions configures go-cmp to compare expression trees built from
// this package. apd.Decimal carries an unexported math/big.Int under the
// hood, so go-cmp needs a Comparer for it instead of trying (and
// panicking on) a field-by-field diff.
var CmpOptions = cmp.Options{
	cmp.Comparer(func(a, b apd.Decimal) bool {
		return a.Negative == b.Negative &&
			a.Exponent == b.Exponent &&
			a.Coeff.Cmp(&b.Coeff) == 0
	}),
}
