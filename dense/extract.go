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

// extractFactors strips scalar-multiple and conjugate wrappers off an
// operand so the kernels see a plain view plus one fused alpha and one
// conjugation bit: op == alpha * maybeConj(base).
//
// Transpose views are kept in the base (the kernels absorb them as a
// storage-order flip) but extraction recurses through them, so a factor
// buried under a transpose is still fused. Shapes are preserved: the base
// has the same dimensions as op.
func extractFactors[T packet.Scalar](op Operand[T]) (base Operand[T], alpha T, conj bool) {
	switch v := op.(type) {
	case Scaled[T]:
		base, alpha, conj = extractFactors(v.op)
		alpha *= v.factor
		return base, alpha, conj
	case Conjugated[T]:
		base, alpha, conj = extractFactors(v.op)
		return base, packet.ConjScalar(alpha), !conj
	case Transposed[T]:
		base, alpha, conj = extractFactors(v.op)
		return Transposed[T]{op: base}, alpha, conj
	default:
		return op, T(1), false
	}
}

// toMat converts a direct-access operand into the kernel descriptor.
// Reports false for operands without a raw storage view; the caller
// materializes those first.
func toMat[T packet.Scalar](op Operand[T], conj bool) (kernel.Mat[T], bool) {
	switch v := op.(type) {
	case *Matrix[T]:
		return kernel.Mat[T]{Data: v.data, Stride: v.stride(), RowMajor: v.order == RowMajor, Conj: conj}, true
	case *Map[T]:
		return kernel.Mat[T]{Data: v.data, Stride: v.stride, RowMajor: v.order == RowMajor, Conj: conj}, true
	case Transposed[T]:
		m, ok := toMat(v.op, conj)
		m.RowMajor = !m.RowMajor
		return m, ok
	default:
		return kernel.Mat[T]{}, false
	}
}

// vecData returns the contiguous unit-stride slice behind a vector-shaped
// operand, when one exists.
func vecData[T packet.Scalar](op Operand[T]) ([]T, bool) {
	switch v := op.(type) {
	case *Matrix[T]:
		// An owned n x 1 or 1 x n matrix is contiguous in either order.
		if v.rows == 1 || v.cols == 1 {
			return v.data, true
		}
	case *Map[T]:
		if v.rows == 1 && v.order == RowMajor {
			return v.data[:v.cols], true
		}
		if v.cols == 1 && v.order == ColMajor {
			return v.data[:v.rows], true
		}
		if (v.rows == 1 || v.cols == 1) && v.stride == 1 {
			return v.data[:v.rows*v.cols], true
		}
	case Transposed[T]:
		return vecData(v.op)
	case colView[T]:
		t := v.Traits()
		if t.Direct {
			return v.Data(), true
		}
	case rowView[T]:
		t := v.Traits()
		if t.Direct {
			return v.Data(), true
		}
	}
	return nil, false
}

// vecAt reads element i of a vector-shaped operand.
func vecAt[T packet.Scalar](op Operand[T], i int) T {
	if op.Rows() == 1 {
		return op.At(0, i)
	}
	return op.At(i, 0)
}
