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
	"testing"

	"github.com/consensys/vanishing/pkg/field/gf251"
	"github.com/consensys/vanishing/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type F = gf251.Element

// Construct a two column trace with four rows.
func newTestTrace(t *testing.T) trace.Trace[F] {
	tr, err := trace.NewArrayTrace(
		trace.RawColumn[F]{Name: "X", Data: elements(1, 2, 3, 4)},
		trace.RawColumn[F]{Name: "Y", Data: elements(5, 6, 7, 8)},
	)
	require.NoError(t, err)
	//
	return tr
}

func elements(vals ...uint8) []F {
	elems := make([]F, len(vals))
	for i, v := range vals {
		elems[i] = gf251.New(v)
	}
	//
	return elems
}

func checkEval(t *testing.T, expected uint8, expr Term[F], k int, tr trace.Trace[F]) {
	t.Helper()
	//
	val, err := expr.EvalAt(k, tr)
	require.NoError(t, err)
	assert.Equal(t, expected, val.Uint8(), "%s at row %d", expr.Lisp(), k)
}

func TestEvalConstant(t *testing.T) {
	checkEval(t, 9, Const64[F](9), 0, newTestTrace(t))
	checkEval(t, 9, Const(gf251.New(9)), 0, newTestTrace(t))
	checkEval(t, 1, One[F](), 0, newTestTrace(t))
}

func TestEvalSum(t *testing.T) {
	tr := newTestTrace(t)
	//
	checkEval(t, 6, Sum(Column[F]("X"), Column[F]("Y")), 0, tr)
	checkEval(t, 9, Sum(Const64[F](1), Const64[F](3), Const64[F](5)), 0, tr)
}

func TestEvalSubtract(t *testing.T) {
	tr := newTestTrace(t)
	//
	checkEval(t, 4, Subtract(Column[F]("Y"), Column[F]("X")), 0, tr)
	checkEval(t, 1, Subtract(Const64[F](6), Const64[F](3), Const64[F](2)), 0, tr)
	// x - y wraps around in the field
	checkEval(t, 251-4, Subtract(Column[F]("X"), Column[F]("Y")), 0, tr)
}

func TestEvalProduct(t *testing.T) {
	tr := newTestTrace(t)
	//
	checkEval(t, 5, Product(Column[F]("X"), Column[F]("Y")), 0, tr)
	checkEval(t, 30, Product(Const64[F](2), Const64[F](3), Const64[F](5)), 0, tr)
}

func TestEvalColumnAccess(t *testing.T) {
	tr := newTestTrace(t)
	//
	for k := 0; k < 4; k++ {
		checkEval(t, uint8(k+1), Column[F]("X"), k, tr)
		checkEval(t, uint8(k+5), Column[F]("Y"), k, tr)
	}
	// Shifted accesses
	checkEval(t, 2, NewColumnAccess[F]("X", 1), 0, tr)
	checkEval(t, 1, NewColumnAccess[F]("X", -1), 1, tr)
}

func TestEvalColumnAccessUndefined(t *testing.T) {
	tr := newTestTrace(t)
	// Reads beyond either end of the trace are undefined.
	_, err := NewColumnAccess[F]("X", -1).EvalAt(0, tr)
	assert.ErrorIs(t, err, trace.ErrOutOfBounds)
	//
	_, err = NewColumnAccess[F]("X", 1).EvalAt(3, tr)
	assert.ErrorIs(t, err, trace.ErrOutOfBounds)
}

func TestEvalUnknownColumn(t *testing.T) {
	tr := newTestTrace(t)
	// An unknown column is an error, not an undefined read.
	_, err := Column[F]("Z").EvalAt(0, tr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, trace.ErrOutOfBounds)
}

func TestEvalShifted(t *testing.T) {
	tr := newTestTrace(t)
	// Shifting a compound term shifts every access within it.
	sum := Shifted(Sum(Column[F]("X"), Column[F]("Y")), 1)
	checkEval(t, 8, sum, 0, tr)
	// Shifting a column access collapses into the access itself.
	assert.Equal(t, "(shift X 2)", Shifted(NewColumnAccess[F]("X", 1), 1).Lisp())
	// Zero shifts are a no-op.
	assert.Equal(t, "X", Shifted(Column[F]("X"), 0).Lisp())
}

func TestEvalInvert(t *testing.T) {
	tr := newTestTrace(t)
	// x * x⁻¹ = 1 for non-zero x
	checkEval(t, 1, Product(Column[F]("X"), Invert(Column[F]("X"))), 2, tr)
	// 0⁻¹ = 0
	checkEval(t, 0, Invert(Const64[F](0)), 0, tr)
}

func TestEvalIfZero(t *testing.T) {
	tr := newTestTrace(t)
	zero := Const64[F](0)
	//
	checkEval(t, 10, IfElse(zero, Const64[F](10), Const64[F](20)), 0, tr)
	checkEval(t, 20, IfElse(One[F](), Const64[F](10), Const64[F](20)), 0, tr)
	// Missing branches evaluate to zero.
	checkEval(t, 0, If(One[F](), Const64[F](10)), 0, tr)
	checkEval(t, 0, IfNot(zero, Const64[F](10)), 0, tr)
}

func TestEvalIfZeroLazy(t *testing.T) {
	tr := newTestTrace(t)
	// The untaken branch reads row -1, but must not be evaluated: the
	// conditional remains defined at row 0.
	expr := IfElse(Const64[F](0),
		Column[F]("X"),
		NewColumnAccess[F]("X", -1))
	//
	checkEval(t, 1, expr, 0, tr)
}

func TestLisp(t *testing.T) {
	assert.Equal(t, "(+ X Y)", Sum(Column[F]("X"), Column[F]("Y")).Lisp())
	assert.Equal(t, "(- X 1)", Subtract(Column[F]("X"), One[F]()).Lisp())
	assert.Equal(t, "(* 2 X)", Product(Const64[F](2), Column[F]("X")).Lisp())
	assert.Equal(t, "(inv X)", Invert(Column[F]("X")).Lisp())
	assert.Equal(t, "(if CT X Y)", IfElse(Column[F]("CT"), Column[F]("X"), Column[F]("Y")).Lisp())
	assert.Equal(t, "(ifnot CT X)", IfNot(Column[F]("CT"), Column[F]("X")).Lisp())
	assert.Equal(t, "(shift X -1)", NewColumnAccess[F]("X", -1).Lisp())
}
