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

// Mul represents the product of one or more terms.
type Mul[F field.Element[F]] struct{ Args []Term[F] }

// Product multiplies one or more terms together.
func Product[F field.Element[F]](terms ...Term[F]) Term[F] {
	if len(terms) == 1 {
		return terms[0]
	}
	//
	return &Mul[F]{terms}
}

// EvalAt implementation for the Term interface.
func (p *Mul[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	// Evaluate first argument
	val, err := p.Args[0].EvalAt(k, tr)
	// Continue evaluating the rest
	for i := 1; err == nil && i < len(p.Args); i++ {
		var ith F
		// Evaluate ith argument
		ith, err = p.Args[i].EvalAt(k, tr)
		val = val.Mul(ith)
	}
	// Done
	return val, err
}

// Lisp implementation for the Term interface.
func (p *Mul[F]) Lisp() string {
	return lispOfTerms("*", p.Args...)
}
