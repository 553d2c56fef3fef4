// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"github.com/consensys/vanishing/pkg/field"
	"github.com/consensys/vanishing/pkg/trace"
)

// Inv represents the multiplicative inverse of a term, under the convention
// that the inverse of zero is zero.  There is no division and hence no
// failure case; this totality is what makes 1 - e*e⁻¹ a sound zero test.
type Inv[F field.Element[F]] struct{ Arg Term[F] }

// Invert constructs the (zero-mapped) multiplicative inverse of a term.
func Invert[F field.Element[F]](arg Term[F]) Term[F] {
	return &Inv[F]{arg}
}

// EvalAt implementation for the Term interface.
func (p *Inv[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	val, err := p.Arg.EvalAt(k, tr)
	//
	return val.Inverse(), err
}

// Lisp implementation for the Term interface.
func (p *Inv[F]) Lisp() string {
	return lispOfTerms("inv", p.Arg)
}
