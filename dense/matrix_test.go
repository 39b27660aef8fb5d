// Copyright 2025 llrraa Authors
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

package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixStorageOrders(t *testing.T) {
	cm := NewMatrix[float64](3, 2)
	cm.Set(2, 1, 7)
	assert.Equal(t, 7.0, cm.At(2, 1))
	assert.Equal(t, 7.0, cm.data[1*3+2])
	assert.Equal(t, 3, cm.Stride())
	assert.Equal(t, ColMajor, cm.Order())

	rm := NewMatrixRowMajor[float64](3, 2)
	rm.Set(2, 1, 7)
	assert.Equal(t, 7.0, rm.At(2, 1))
	assert.Equal(t, 7.0, rm.data[2*2+1])
	assert.Equal(t, 2, rm.Stride())
	assert.Equal(t, RowMajor, rm.Order())
}

func TestMatrixTraits(t *testing.T) {
	d := NewMatrix[float64](3, 2).Traits()
	assert.Equal(t, Dynamic, d.MaxRows)
	assert.Equal(t, Dynamic, d.MaxCols)
	assert.True(t, d.Direct)
	assert.True(t, d.Linear)

	f := NewFixed[float64](3, 2).Traits()
	assert.Equal(t, 3, f.Rows)
	assert.Equal(t, 2, f.MaxCols)

	assert.Equal(t, 1, NewVector[float64](5).Traits().MaxCols)
	assert.Equal(t, 1, NewRowVector[float64](5).Traits().MaxRows)
	assert.True(t, NewVector[float64](5).Traits().IsVector())
	assert.False(t, d.IsVector())
}

func TestFromRows(t *testing.T) {
	m := FromRows[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))

	assert.Panics(t, func() { FromRows[float64]([][]float64{{1, 2}, {3}}) })
	assert.Panics(t, func() { NewMatrix[float64](-1, 2) })
}

func TestCloneAndFill(t *testing.T) {
	m := FromRows[float64]([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 9.0, c.At(0, 0))

	m.Fill(2)
	assert.Equal(t, 2.0, m.At(1, 1))
	m.SetZero()
	assert.Equal(t, 0.0, m.At(1, 1))
}

func TestMapMatrixSubView(t *testing.T) {
	// A 4x3 column-major view into an 8-row buffer.
	buf := make([]float64, 8*3)
	for i := range buf {
		buf[i] = float64(i)
	}
	m := MapMatrix[float64](buf, 4, 3, 8, ColMajor)
	assert.Equal(t, buf[1*8+2], m.At(2, 1))
	assert.False(t, m.Traits().Linear)
	assert.True(t, m.Traits().Direct)

	unit := MapMatrix[float64](buf[:12], 4, 3, 4, ColMajor)
	assert.True(t, unit.Traits().Linear)

	assert.Panics(t, func() { MapMatrix[float64](buf, 9, 3, 8, ColMajor) })
	assert.Panics(t, func() { MapMatrix[float64](buf[:10], 4, 3, 8, ColMajor) })
}

func TestVectorOf(t *testing.T) {
	v := VectorOf([]float64{1, 2, 3})
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	assert.Equal(t, 2.0, v.At(1, 0))
}
