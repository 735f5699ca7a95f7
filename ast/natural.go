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
	"math/big"

	"github.com/cockroachdb/apd/v2"
)

// Naturals and Integers are modeled as apd.Decimal rather than machine
// words: the Dhall standard defines both as unbounded, and apd.Decimal's
// Coeff is already a math/big.Int, so arithmetic below goes straight
// through math/big.

// NewNatural builds a NaturalLit from a non-negative machine integer.
func NewNatural(n uint64) *NaturalLit {
	var d apd.Decimal
	d.Coeff.SetUint64(n)
	return &NaturalLit{Value: d}
}

// NewNaturalFromBigInt builds a NaturalLit from an arbitrary non-negative
// big.Int. It panics if v is negative.
func NewNaturalFromBigInt(v *big.Int) *NaturalLit {
	if v.Sign() < 0 {
		panic("ast: negative value is not a Natural")
	}
	var d apd.Decimal
	d.Coeff.Set(v)
	return &NaturalLit{Value: d}
}

// Int returns n's value as a math/big.Int.
func (n *NaturalLit) Int() *big.Int { return new(big.Int).Set(&n.Value.Coeff) }

// IsZero reports whether n is the literal 0.
func (n *NaturalLit) IsZero() bool { return n.Value.Coeff.Sign() == 0 }

// Even reports whether n is divisible by two.
func (n *NaturalLit) Even() bool { return n.Value.Coeff.Bit(0) == 0 }

// Cmp compares two Naturals as math/big.Int.Cmp does.
func (n *NaturalLit) Cmp(o *NaturalLit) int { return n.Value.Coeff.Cmp(&o.Value.Coeff) }

// Add returns n + o.
func (n *NaturalLit) Add(o *NaturalLit) *NaturalLit {
	var d apd.Decimal
	d.Coeff.Add(&n.Value.Coeff, &o.Value.Coeff)
	return &NaturalLit{Value: d}
}

// Mul returns n * o.
func (n *NaturalLit) Mul(o *NaturalLit) *NaturalLit {
	var d apd.Decimal
	d.Coeff.Mul(&n.Value.Coeff, &o.Value.Coeff)
	return &NaturalLit{Value: d}
}

// Dec returns n - 1; it panics if n is zero, since the normalizer only
// ever calls it after checking IsZero (see Natural/fold's bounded loop).
func (n *NaturalLit) Dec() *NaturalLit {
	if n.IsZero() {
		panic("ast: Dec of zero Natural")
	}
	var d apd.Decimal
	one := big.NewInt(1)
	d.Coeff.Sub(&n.Value.Coeff, one)
	return &NaturalLit{Value: d}
}

func (n *NaturalLit) String() string { return n.Value.Coeff.String() }

// NewInteger builds an IntegerLit from a signed machine integer.
func NewInteger(n int64) *IntegerLit {
	var d apd.Decimal
	d.Coeff.SetUint64(absUint64(n))
	d.Negative = n < 0
	return &IntegerLit{Value: d}
}

// ToInteger converts a Natural to an Integer, as Natural/toInteger does.
func (n *NaturalLit) ToInteger() *IntegerLit {
	var d apd.Decimal
	d.Coeff.Set(&n.Value.Coeff)
	return &IntegerLit{Value: d}
}

func (n *IntegerLit) String() string {
	s := n.Value.Coeff.String()
	if n.Value.Negative {
		return "-" + s
	}
	return "+" + s
}

func absUint64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}
