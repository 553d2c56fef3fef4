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
package trace

import (
	"testing"

	"github.com/consensys/vanishing/pkg/field/gf251"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type F = gf251.Element

func column(name string, vals ...uint8) RawColumn[F] {
	data := make([]F, len(vals))
	for i, v := range vals {
		data[i] = gf251.New(v)
	}
	//
	return RawColumn[F]{Name: name, Data: data}
}

func TestArrayTraceGet(t *testing.T) {
	tr, err := NewArrayTrace(column("X", 1, 2, 3), column("Y", 4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 3, tr.Height())
	//
	for k := 0; k < 3; k++ {
		x, err := tr.Get("X", k)
		require.NoError(t, err)
		assert.Equal(t, uint8(k+1), x.Uint8())
		//
		y, err := tr.Get("Y", k)
		require.NoError(t, err)
		assert.Equal(t, uint8(k+4), y.Uint8())
	}
}

func TestArrayTraceGetOutOfBounds(t *testing.T) {
	tr, err := NewArrayTrace(column("X", 1, 2, 3))
	require.NoError(t, err)
	//
	_, err = tr.Get("X", -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	//
	_, err = tr.Get("X", 3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestArrayTraceGetUnknownColumn(t *testing.T) {
	tr, err := NewArrayTrace(column("X", 1, 2, 3))
	require.NoError(t, err)
	//
	_, err = tr.Get("Z", 0)
	require.ErrorContains(t, err, `unknown column "Z"`)
	assert.NotErrorIs(t, err, ErrOutOfBounds)
}

func TestArrayTraceColumns(t *testing.T) {
	// Declaration order is preserved.
	tr, err := NewArrayTrace(column("Y", 1), column("X", 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "X"}, tr.Columns())
}

func TestArrayTraceEmpty(t *testing.T) {
	tr, err := NewArrayTrace[F]()
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.Columns())
}

func TestArrayTraceDuplicateColumn(t *testing.T) {
	_, err := NewArrayTrace(column("X", 1), column("X", 2))
	require.ErrorContains(t, err, `duplicate column "X"`)
}

func TestArrayTraceRaggedColumns(t *testing.T) {
	_, err := NewArrayTrace(column("X", 1, 2), column("Y", 3))
	require.ErrorContains(t, err, `column "Y" has height 1, expected 2`)
}
