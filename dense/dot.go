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

	"github.com/llrraa/go-dense/internal/kernel"
	"github.com/llrraa/go-dense/packet"
)

// Dot returns the sum of u[i] * v[i] over two vector-shaped operands of
// equal length. Scalar factors and conjugate wrappers on either side are
// stripped and fused; contiguous operands go through the SIMD dot kernel.
// An empty pair sums to zero.
func Dot[T packet.Scalar](u, v Operand[T]) T {
	un := vecLen(u)
	vn := vecLen(v)
	if un != vn {
		panic(fmt.Sprintf("dense: dot of vectors with lengths %d and %d", un, vn))
	}

	ubase, ua, uconj := extractFactors(u)
	vbase, va, vconj := extractFactors(v)
	scale := ua * va

	if us, ok := vecData(ubase); ok {
		if vs, ok := vecData(vbase); ok {
			return scale * kernel.Dot(us[:un], vs[:vn], uconj, vconj)
		}
	}
	var sum T
	for i := 0; i < un; i++ {
		a := vecAt(ubase, i)
		if uconj {
			a = packet.ConjScalar(a)
		}
		b := vecAt(vbase, i)
		if vconj {
			b = packet.ConjScalar(b)
		}
		sum += a * b
	}
	return scale * sum
}

func vecLen[T packet.Scalar](op Operand[T]) int {
	if op.Rows() != 1 && op.Cols() != 1 {
		panic(fmt.Sprintf("dense: %dx%d operand is not a vector", op.Rows(), op.Cols()))
	}
	return op.Rows() * op.Cols()
}
