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
package algebra

import (
	"testing"

	"github.com/consensys/vanishing/pkg/field/bls12_377"
	"github.com/consensys/vanishing/pkg/ir"
	"github.com/consensys/vanishing/pkg/trace"
	"github.com/stretchr/testify/require"
)

// The byte decomposition scenarios accumulate values beyond a single byte,
// hence run over the production field.
type B = bls12_377.Element

func blsColumn(name string, vals ...uint64) trace.RawColumn[B] {
	data := make([]B, len(vals))
	for i, v := range vals {
		data[i] = bls12_377.New(v)
	}
	//
	return trace.RawColumn[B]{Name: name, Data: data}
}

func newBlsTrace(t *testing.T, columns ...trace.RawColumn[B]) trace.Trace[B] {
	t.Helper()
	//
	tr, err := trace.NewArrayTrace(columns...)
	require.NoError(t, err)
	//
	return tr
}

func TestCounterConstancy(t *testing.T) {
	expr := CounterConstancy(ir.Column[F]("CT"), ir.Column[F]("X"))
	// X changes only at counter resets.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2, 0, 1),
		column("X", 9, 9, 9, 4, 4)))
	// X changes mid-segment.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2, 0, 1),
		column("X", 9, 8, 9, 4, 4)), 1, 2)
}

func TestByteDecomposition(t *testing.T) {
	expr := ByteDecomposition(ir.Column[B]("CT"), ir.Column[B]("ACC"), ir.Column[B]("BYTE"))
	// ACC is the big-endian accumulation of BYTE, restarting at CT = 0.
	checkVanishes(t, expr, newBlsTrace(t,
		blsColumn("CT", 0, 1, 2, 0, 1),
		blsColumn("BYTE", 0xde, 0xad, 0xbe, 0xca, 0xfe),
		blsColumn("ACC", 0xde, 0xdead, 0xdeadbe, 0xca, 0xcafe)))
	// Corrupted accumulation fails at the offending row.
	checkVanishes(t, expr, newBlsTrace(t,
		blsColumn("CT", 0, 1, 2, 0, 1),
		blsColumn("BYTE", 0xde, 0xad, 0xbe, 0xca, 0xfe),
		blsColumn("ACC", 0xde, 0xdead, 0xdeadbf, 0xca, 0xcafe)), 2)
}

func TestByteDecompositionBaseCase(t *testing.T) {
	expr := ByteDecomposition(ir.Column[B]("CT"), ir.Column[B]("ACC"), ir.Column[B]("BYTE"))
	// The base case at row 0 must be checked, even though the untaken
	// accumulation branch would read row -1.
	checkVanishes(t, expr, newBlsTrace(t,
		blsColumn("CT", 0, 1),
		blsColumn("BYTE", 0xde, 0xad),
		blsColumn("ACC", 1, 0x1ad)), 0)
}

func TestPlateauConstraint(t *testing.T) {
	expr := PlateauConstraint(ir.Column[F]("CT"), ir.Column[F]("X"), ir.Column[F]("C"))
	// X is 0 at each segment start, holds through the interior, and
	// increments by one at the boundary (CT = C), across three segments.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2, 0, 1, 2, 0, 1, 2),
		column("C", 2, 2, 2, 2, 2, 2, 2, 2, 2),
		column("X", 0, 0, 1, 0, 0, 1, 0, 0, 1)))
	// X deviating mid-segment fails.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2, 0, 1, 2),
		column("C", 2, 2, 2, 2, 2, 2),
		column("X", 0, 0, 1, 0, 1, 2)), 4)
	// X failing to increment at the boundary fails.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2),
		column("C", 2, 2, 2),
		column("X", 0, 0, 0)), 2)
}

func TestPlateauConstraintSentinel(t *testing.T) {
	expr := PlateauConstraint(ir.Column[F]("CT"), ir.Column[F]("X"), ir.Column[F]("C"))
	// C = 0 means "no active level", forcing X = 1 regardless of CT.
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2),
		column("C", 0, 0, 0),
		column("X", 1, 1, 1)))
	checkVanishes(t, expr, newTrace(t,
		column("CT", 0, 1, 2),
		column("C", 0, 0, 0),
		column("X", 1, 0, 1)), 1)
}

func TestStampConstancy(t *testing.T) {
	expr := StampConstancy(ir.Column[F]("STAMP"), ir.Column[F]("C"))
	// C changes only where STAMP changes.
	checkVanishes(t, expr, newTrace(t,
		column("STAMP", 5, 5, 5, 7, 7),
		column("C", 1, 1, 1, 3, 3)))
	// C changes while STAMP stays constant.
	checkVanishes(t, expr, newTrace(t,
		column("STAMP", 5, 5, 5, 7, 7),
		column("C", 1, 2, 1, 3, 3)), 0, 1)
}
