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

// IfZero returns the (optional) true branch when the condition evaluates to
// zero, and the (optional) false branch otherwise.  A missing branch
// evaluates to zero, meaning the constraint is vacuous on that side.  Only
// the taken branch is evaluated; hence a constraint whose untaken branch
// reads beyond the trace bounds remains well-defined.
type IfZero[F field.Element[F]] struct {
	// Condition selecting between the two branches.
	Condition Term[F]
	// True branch (optional).
	TrueBranch Term[F]
	// False branch (optional).
	FalseBranch Term[F]
}

// If constructs a conditional whose body applies only when the condition
// evaluates to zero.
func If[F field.Element[F]](condition Term[F], trueBranch Term[F]) Term[F] {
	return &IfZero[F]{condition, trueBranch, nil}
}

// IfNot constructs a conditional whose body applies only when the condition
// evaluates to a non-zero value.
func IfNot[F field.Element[F]](condition Term[F], falseBranch Term[F]) Term[F] {
	return &IfZero[F]{condition, nil, falseBranch}
}

// IfElse constructs a conditional with both branches, where the true branch
// is taken when the condition evaluates to zero.
func IfElse[F field.Element[F]](condition Term[F], trueBranch Term[F], falseBranch Term[F]) Term[F] {
	return &IfZero[F]{condition, trueBranch, falseBranch}
}

// EvalAt implementation for the Term interface.
func (p *IfZero[F]) EvalAt(k int, tr trace.Trace[F]) (F, error) {
	// Evaluate condition
	cond, err := p.Condition.EvalAt(k, tr)
	//
	if err != nil {
		return cond, err
	} else if cond.IsZero() && p.TrueBranch != nil {
		return p.TrueBranch.EvalAt(k, tr)
	} else if !cond.IsZero() && p.FalseBranch != nil {
		return p.FalseBranch.EvalAt(k, tr)
	}
	// Untaken branch, hence vacuous.
	return field.Zero[F](), nil
}

// Lisp implementation for the Term interface.
func (p *IfZero[F]) Lisp() string {
	if p.FalseBranch == nil {
		return lispOfTerms("if", p.Condition, p.TrueBranch)
	} else if p.TrueBranch == nil {
		return lispOfTerms("ifnot", p.Condition, p.FalseBranch)
	}
	//
	return lispOfTerms("if", p.Condition, p.TrueBranch, p.FalseBranch)
}
