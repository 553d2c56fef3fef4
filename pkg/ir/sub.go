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

// Sub represents the subtraction of one or more terms from a first term.
type Sub[F field.Element[F]] struct{ Args []Term[F] }

// Subtract one or more terms from a given term.
func Subtract[F field.Element[F]](head Term[F], tail ...Term[F]) Term[F] {
	if len(tail) == 0 {
		return head
	}
	//
	return &Sub[F]{append([]Term[F]{head}, tail...)}
}

// EvalAt implementation for the Term interface.
func (p *Sub[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	// Evaluate first argument
	val, err := p.Args[0].EvalAt(k, tr)
	// Continue evaluating the rest
	for i := 1; err == nil && i < len(p.Args); i++ {
		var ith F
		// Evaluate ith argument
		ith, err = p.Args[i].EvalAt(k, tr)
		val = val.Sub(ith)
	}
	// Done
	return val, err
}

// Lisp implementation for the Term interface.
func (p *Sub[F]) Lisp() string {
	return lispOfTerms("-", p.Args...)
}
