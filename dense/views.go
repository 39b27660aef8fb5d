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

// Transposed is a zero-copy transpose view: same coefficients, swapped
// indices and flipped storage order.
type Transposed[T packet.Scalar] struct {
	op Operand[T]
}

// Transpose returns the transpose view of op.
func Transpose[T packet.Scalar](op Operand[T]) Transposed[T] {
	return Transposed[T]{op: op}
}

func (t Transposed[T]) Rows() int     { return t.op.Cols() }
func (t Transposed[T]) Cols() int     { return t.op.Rows() }
func (t Transposed[T]) At(r, c int) T { return t.op.At(c, r) }

// Packet flips with the order flip: the contiguous direction of the
// transpose is the base's contiguous direction with indices swapped.
func (t Transposed[T]) Packet(r, c int) packet.Packet[T] {
	return t.op.Packet(c, r)
}

func (t Transposed[T]) Traits() Traits {
	b := t.op.Traits()
	order := RowMajor
	if b.Order == RowMajor {
		order = ColMajor
	}
	return Traits{
		Rows:                b.Cols,
		Cols:                b.Rows,
		MaxRows:             b.MaxCols,
		MaxCols:             b.MaxRows,
		Order:               order,
		Direct:              b.Direct,
		PacketAccess:        b.PacketAccess,
		Aligned:             b.Aligned,
		Linear:              b.Linear,
		ReadCost:            b.ReadCost,
		EvalBeforeNesting:   b.EvalBeforeNesting,
		EvalBeforeAssigning: b.EvalBeforeAssigning,
	}
}

// Data and Stride delegate to the base; valid only when the base has
// direct access.
func (t Transposed[T]) Data() []T   { return t.op.(Direct[T]).Data() }
func (t Transposed[T]) Stride() int { return t.op.(Direct[T]).Stride() }

// Conjugated is an element-wise complex-conjugate view. For real element
// types it is the identity.
type Conjugated[T packet.Scalar] struct {
	op Operand[T]
}

// Conjugate returns the conjugate view of op.
func Conjugate[T packet.Scalar](op Operand[T]) Conjugated[T] {
	return Conjugated[T]{op: op}
}

// Adjoint returns the conjugate transpose of op.
func Adjoint[T packet.Scalar](op Operand[T]) Transposed[T] {
	return Transposed[T]{op: Conjugated[T]{op: op}}
}

func (v Conjugated[T]) Rows() int     { return v.op.Rows() }
func (v Conjugated[T]) Cols() int     { return v.op.Cols() }
func (v Conjugated[T]) At(r, c int) T { return packet.ConjScalar(v.op.At(r, c)) }

func (v Conjugated[T]) Packet(r, c int) packet.Packet[T] {
	return packet.Conj(v.op.Packet(r, c))
}

func (v Conjugated[T]) Traits() Traits {
	b := v.op.Traits()
	// The conjugation is applied on read, so raw storage access would
	// skip it. Extraction strips the wrapper and turns it into a kernel
	// flag instead.
	b.Direct = false
	b.Linear = false
	return b
}

// Scaled is a scalar-multiple view: every coefficient of op times a
// constant factor. Extraction absorbs the factor into the kernel alpha.
type Scaled[T packet.Scalar] struct {
	op     Operand[T]
	factor T
}

// ScaleView returns the alpha-times-op view.
func ScaleView[T packet.Scalar](alpha T, op Operand[T]) Scaled[T] {
	return Scaled[T]{op: op, factor: alpha}
}

func (v Scaled[T]) Rows() int     { return v.op.Rows() }
func (v Scaled[T]) Cols() int     { return v.op.Cols() }
func (v Scaled[T]) At(r, c int) T { return v.factor * v.op.At(r, c) }

func (v Scaled[T]) Packet(r, c int) packet.Packet[T] {
	return packet.Mul(packet.Set(v.factor), v.op.Packet(r, c))
}

func (v Scaled[T]) Traits() Traits {
	b := v.op.Traits()
	b.Direct = false
	b.Linear = false
	if b.ReadCost != Dynamic {
		b.ReadCost += mulCost[T]()
	}
	return b
}

// colView is a rows x 1 view of one column of an operand.
type colView[T packet.Scalar] struct {
	op Operand[T]
	j  int
}

// Col returns column j of op as a column-vector operand.
func Col[T packet.Scalar](op Operand[T], j int) Operand[T] {
	if j < 0 || j >= op.Cols() {
		panic(fmt.Sprintf("dense: column %d out of range [0,%d)", j, op.Cols()))
	}
	return colView[T]{op: op, j: j}
}

func (v colView[T]) Rows() int     { return v.op.Rows() }
func (v colView[T]) Cols() int     { return 1 }
func (v colView[T]) At(r, _ int) T { return v.op.At(r, v.j) }

func (v colView[T]) Packet(r, _ int) packet.Packet[T] {
	return v.op.Packet(r, v.j)
}

func (v colView[T]) Traits() Traits {
	b := v.op.Traits()
	// A single column of a column-major base keeps direct contiguous
	// access; of a row-major base it is strided and loses it.
	direct := b.Direct && b.Order == ColMajor
	return Traits{
		Rows:         b.Rows,
		Cols:         1,
		MaxRows:      b.MaxRows,
		MaxCols:      1,
		Order:        ColMajor,
		Direct:       direct,
		PacketAccess: b.PacketAccess && b.Order == ColMajor,
		Aligned:      b.Aligned && b.Order == ColMajor,
		Linear:       direct,
		ReadCost:     b.ReadCost,
	}
}

func (v colView[T]) Data() []T {
	d := v.op.(Direct[T])
	base := v.j * d.Stride()
	return d.Data()[base : base+v.op.Rows()]
}

func (v colView[T]) Stride() int { return v.op.Rows() }

// rowView is a 1 x cols view of one row of an operand.
type rowView[T packet.Scalar] struct {
	op Operand[T]
	i  int
}

// Row returns row i of op as a row-vector operand.
func Row[T packet.Scalar](op Operand[T], i int) Operand[T] {
	if i < 0 || i >= op.Rows() {
		panic(fmt.Sprintf("dense: row %d out of range [0,%d)", i, op.Rows()))
	}
	return rowView[T]{op: op, i: i}
}

func (v rowView[T]) Rows() int     { return 1 }
func (v rowView[T]) Cols() int     { return v.op.Cols() }
func (v rowView[T]) At(_, c int) T { return v.op.At(v.i, c) }

func (v rowView[T]) Packet(_, c int) packet.Packet[T] {
	return v.op.Packet(v.i, c)
}

func (v rowView[T]) Traits() Traits {
	b := v.op.Traits()
	direct := b.Direct && b.Order == RowMajor
	return Traits{
		Rows:         1,
		Cols:         b.Cols,
		MaxRows:      1,
		MaxCols:      b.MaxCols,
		Order:        RowMajor,
		Direct:       direct,
		PacketAccess: b.PacketAccess && b.Order == RowMajor,
		Aligned:      b.Aligned && b.Order == RowMajor,
		Linear:       direct,
		ReadCost:     b.ReadCost,
	}
}

func (v rowView[T]) Data() []T {
	d := v.op.(Direct[T])
	base := v.i * d.Stride()
	return d.Data()[base : base+v.op.Cols()]
}

func (v rowView[T]) Stride() int { return v.op.Cols() }

var (
	_ Direct[float64]  = Transposed[float64]{}
	_ Operand[float64] = Conjugated[float64]{}
	_ Operand[float64] = Scaled[float64]{}
	_ Direct[float64]  = colView[float64]{}
	_ Direct[float64]  = rowView[float64]{}
)
