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

// Constant represents a fixed field element within an expression.
type Constant[F field.Element[F]] struct{ Value F }

// Const constructs a term representing a given field element.
func Const[F field.Element[F]](value F) Term[F] {
	return &Constant[F]{value}
}

// Const64 constructs a term representing a given unsigned integer.
func Const64[F field.Element[F]](value uint64) Term[F] {
	return &Constant[F]{field.Uint64[F](value)}
}

// One constructs a term representing the multiplicative identity.
func One[F field.Element[F]]() Term[F] {
	return Const64[F](1)
}

// EvalAt implementation for the Term interface.
func (p *Constant[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	return p.Value, nil
}

// Lisp implementation for the Term interface.
func (p *Constant[F]) Lisp() string {
	return p.Value.String()
}
