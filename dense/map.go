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

// Map wraps a caller-owned slice as a read-only matrix operand with an
// explicit outer stride. The stride may exceed the inner dimension, which
// describes a sub-view of a larger buffer.
type Map[T packet.Scalar] struct {
	data               []T
	rows, cols, stride int
	order              Order
}

// MapMatrix wraps data as a rows x cols operand. stride is the distance
// between consecutive columns (ColMajor) or rows (RowMajor).
func MapMatrix[T packet.Scalar](data []T, rows, cols, stride int, order Order) *Map[T] {
	inner, outer := rows, cols
	if order == RowMajor {
		inner, outer = cols, rows
	}
	if stride < inner {
		panic(fmt.Sprintf("dense: map stride %d shorter than inner dimension %d", stride, inner))
	}
	if outer > 0 && len(data) < (outer-1)*stride+inner {
		panic(fmt.Sprintf("dense: map slice too short for %dx%d with stride %d", rows, cols, stride))
	}
	return &Map[T]{data: data, rows: rows, cols: cols, stride: stride, order: order}
}

func (m *Map[T]) Rows() int { return m.rows }
func (m *Map[T]) Cols() int { return m.cols }

func (m *Map[T]) At(r, c int) T {
	if m.order == RowMajor {
		return m.data[r*m.stride+c]
	}
	return m.data[c*m.stride+r]
}

func (m *Map[T]) Packet(r, c int) packet.Packet[T] {
	w := packet.Width[T]()
	if m.order == RowMajor {
		base := r * m.stride
		end := min(c+w, m.cols)
		return packet.Load(m.data[base+c : base+end])
	}
	base := c * m.stride
	end := min(r+w, m.rows)
	return packet.Load(m.data[base+r : base+end])
}

func (m *Map[T]) Data() []T   { return m.data }
func (m *Map[T]) Stride() int { return m.stride }

func (m *Map[T]) Traits() Traits {
	inner := m.rows
	if m.order == RowMajor {
		inner = m.cols
	}
	return Traits{
		Rows:         Dynamic,
		Cols:         Dynamic,
		MaxRows:      Dynamic,
		MaxCols:      Dynamic,
		Order:        m.order,
		Direct:       true,
		PacketAccess: true,
		Aligned:      true,
		Linear:       m.stride == inner,
		ReadCost:     readCost[T](),
	}
}

var _ Direct[float32] = (*Map[float32])(nil)
