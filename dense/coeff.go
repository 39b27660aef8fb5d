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
	"github.com/llrraa/go-dense/internal/kernel"
	"github.com/llrraa/go-dense/packet"
)

// At computes one coefficient of the product: the dot of row r of the
// left operand with column c of the right one, accumulated left to right
// in k. The variant was chosen at construction; all four produce the sum
// in ascending k order, though the vectorized ones reassociate it across
// lanes.
func (p *Product[T]) At(r, c int) T {
	switch p.kind {
	case coeffUnrolled:
		return coeffUnrolledAt(p.lhs, p.rhs, r, c, p.inner)
	case coeffInnerVec:
		return p.coeffInnerVecAt(r, c)
	case coeffDot:
		return p.coeffDotAt(r, c)
	default:
		return p.coeffDynamicAt(r, c)
	}
}

// coeffDynamicAt is the runtime-loop variant: first term initializes the
// accumulator, the rest fold in one by one.
func (p *Product[T]) coeffDynamicAt(r, c int) T {
	if p.inner == 0 {
		panic("dense: product coefficient of an empty inner dimension")
	}
	res := p.lhs.At(r, 0) * p.rhs.At(0, c)
	for k := 1; k < p.inner; k++ {
		res += p.lhs.At(r, k) * p.rhs.At(k, c)
	}
	return res
}

// coeffInnerVecAt vectorizes along the inner dimension: the left operand
// is row-major and the right column-major, so both stream packets in k.
// The packet accumulator collapses with a horizontal sum; any scalar
// remainder past the last full packet folds in afterwards.
func (p *Product[T]) coeffInnerVecAt(r, c int) T {
	w := packet.Width[T]()
	acc := packet.Mul(p.lhs.Packet(r, 0), p.rhs.Packet(0, c))
	for k := w; k+w <= p.inner; k += w {
		acc = packet.MulAdd(p.lhs.Packet(r, k), p.rhs.Packet(k, c), acc)
	}
	res := packet.ReduceSum(acc)
	for k := p.inner - p.inner%w; k < p.inner; k++ {
		res += p.lhs.At(r, k) * p.rhs.At(k, c)
	}
	return res
}

// coeffDotAt delegates a dynamic inner dimension to the dot kernel when
// both operands expose the needed contiguous row and column.
func (p *Product[T]) coeffDotAt(r, c int) T {
	if p.inner == 0 {
		panic("dense: product coefficient of an empty inner dimension")
	}
	ld := p.lhs.(Direct[T])
	rd := p.rhs.(Direct[T])
	row := ld.Data()[r*ld.Stride():][:p.inner]
	col := rd.Data()[c*rd.Stride():][:p.inner]
	return kernel.Dot(row, col, false, false)
}
