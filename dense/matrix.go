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
	"fmt"

	"github.com/llrraa/go-dense/packet"
)

// Operand is the read-only contract every matrix expression exposes to
// the product core: shape, coefficient access, packet access along the
// contiguous direction, and the static trait bundle.
type Operand[T packet.Scalar] interface {
	Rows() int
	Cols() int
	At(r, c int) T
	Packet(r, c int) packet.Packet[T]
	Traits() Traits
}

// Direct extends Operand with raw storage access: a base slice and the
// outer stride. Only meaningful when Traits().Direct is set.
type Direct[T packet.Scalar] interface {
	Operand[T]
	Data() []T
	Stride() int
}

// Matrix is a dense matrix with owned storage.
//
// Storage order is column-major unless constructed otherwise. A matrix
// built through one of the Fixed constructors advertises its sizes in its
// traits, which enables the unrolled evaluator paths; a regular matrix
// advertises Dynamic sizes, which is what routes large products into the
// blocked kernels.
type Matrix[T packet.Scalar] struct {
	data       []T
	rows, cols int
	// staticRows and staticCols are the advertised construction-time
	// sizes, or Dynamic. They always match rows/cols when not Dynamic.
	staticRows, staticCols int
	order                  Order
}

// NewMatrix returns a zeroed rows x cols column-major matrix with
// runtime-only shape.
func NewMatrix[T packet.Scalar](rows, cols int) *Matrix[T] {
	return newWithOrder[T](rows, cols, ColMajor)
}

// NewMatrixRowMajor returns a zeroed rows x cols row-major matrix with
// runtime-only shape.
func NewMatrixRowMajor[T packet.Scalar](rows, cols int) *Matrix[T] {
	return newWithOrder[T](rows, cols, RowMajor)
}

// NewFixed returns a zeroed rows x cols column-major matrix whose shape
// is advertised as fixed in its traits.
func NewFixed[T packet.Scalar](rows, cols int) *Matrix[T] {
	m := newWithOrder[T](rows, cols, ColMajor)
	m.staticRows, m.staticCols = rows, cols
	return m
}

// NewVector returns a zeroed n x 1 column vector. The column dimension is
// fixed at 1; the length stays dynamic.
func NewVector[T packet.Scalar](n int) *Matrix[T] {
	m := newWithOrder[T](n, 1, ColMajor)
	m.staticCols = 1
	return m
}

// NewRowVector returns a zeroed 1 x n row vector.
func NewRowVector[T packet.Scalar](n int) *Matrix[T] {
	m := newWithOrder[T](1, n, RowMajor)
	m.staticRows = 1
	return m
}

func newWithOrder[T packet.Scalar](rows, cols int, order Order) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("dense: negative matrix dimension %dx%d", rows, cols))
	}
	return &Matrix[T]{
		data:       make([]T, rows*cols),
		rows:       rows,
		cols:       cols,
		staticRows: Dynamic,
		staticCols: Dynamic,
		order:      order,
	}
}

// FromRows builds a dynamic-shape column-major matrix from row slices.
// All rows must have the same length.
func FromRows[T packet.Scalar](rows [][]T) *Matrix[T] {
	m := buildFromRows(rows, NewMatrix[T])
	return m
}

// FixedFromRows is FromRows with a fixed advertised shape.
func FixedFromRows[T packet.Scalar](rows [][]T) *Matrix[T] {
	return buildFromRows(rows, NewFixed[T])
}

// VectorOf builds a dynamic-length column vector from values.
func VectorOf[T packet.Scalar](values []T) *Matrix[T] {
	v := NewVector[T](len(values))
	copy(v.data, values)
	return v
}

func buildFromRows[T packet.Scalar](rows [][]T, ctor func(r, c int) *Matrix[T]) *Matrix[T] {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	m := ctor(nr, nc)
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Sprintf("dense: ragged row %d: got %d values, want %d", i, len(row), nc))
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) stride() int {
	if m.order == RowMajor {
		return m.cols
	}
	return m.rows
}

// At returns the coefficient at (r, c).
func (m *Matrix[T]) At(r, c int) T {
	if m.order == RowMajor {
		return m.data[r*m.stride()+c]
	}
	return m.data[c*m.stride()+r]
}

// Set stores v at (r, c).
func (m *Matrix[T]) Set(r, c int, v T) {
	if m.order == RowMajor {
		m.data[r*m.stride()+c] = v
	} else {
		m.data[c*m.stride()+r] = v
	}
}

// Packet loads a packet along the contiguous direction starting at
// (r, c): across the columns of row r for a row-major matrix, down the
// rows of column c otherwise. Loads are clamped at the matrix edge.
func (m *Matrix[T]) Packet(r, c int) packet.Packet[T] {
	w := packet.Width[T]()
	if m.order == RowMajor {
		base := r * m.stride()
		end := min(c+w, m.cols)
		return packet.Load(m.data[base+c : base+end])
	}
	base := c * m.stride()
	end := min(r+w, m.rows)
	return packet.Load(m.data[base+r : base+end])
}

// Data returns the backing slice.
func (m *Matrix[T]) Data() []T { return m.data }

// Stride returns the outer stride: the distance between consecutive
// columns (column-major) or rows (row-major).
func (m *Matrix[T]) Stride() int { return m.stride() }

// Order returns the storage order.
func (m *Matrix[T]) Order() Order { return m.order }

// Traits implements Operand.
func (m *Matrix[T]) Traits() Traits {
	return Traits{
		Rows:         m.staticRows,
		Cols:         m.staticCols,
		MaxRows:      m.staticRows,
		MaxCols:      m.staticCols,
		Order:        m.order,
		Direct:       true,
		PacketAccess: true,
		Aligned:      true,
		Linear:       true,
		ReadCost:     readCost[T](),
	}
}

// SetZero clears every coefficient.
func (m *Matrix[T]) SetZero() {
	clear(m.data)
}

// Fill sets every coefficient to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy sharing nothing with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := *m
	c.data = make([]T, len(m.data))
	copy(c.data, m.data)
	return &c
}

var _ Direct[float64] = (*Matrix[float64])(nil)
