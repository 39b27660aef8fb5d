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
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/llrraa/go-dense/packet"
)

func randScalar[T packet.Scalar](rng *rand.Rand) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(rng.Float64()*2 - 1)).(T)
	case float64:
		return any(rng.Float64()*2 - 1).(T)
	case complex64:
		return any(complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))).(T)
	default:
		return any(complex(rng.Float64()*2-1, rng.Float64()*2-1)).(T)
	}
}

func fillRandom[T packet.Scalar](m *Matrix[T], rng *rand.Rand) {
	for i := range m.data {
		m.data[i] = randScalar[T](rng)
	}
}

func randMatrix[T packet.Scalar](rows, cols int, order Order, rng *rand.Rand) *Matrix[T] {
	m := newWithOrder[T](rows, cols, order)
	fillRandom(m, rng)
	return m
}

func randVector[T packet.Scalar](n int, rng *rand.Rand) *Matrix[T] {
	v := NewVector[T](n)
	fillRandom(v, rng)
	return v
}

// naiveMul is the reference triple loop, reading both operands through
// the expression interface so views are covered too.
func naiveMul[T packet.Scalar](a, b Operand[T]) *Matrix[T] {
	m := NewMatrix[T](a.Rows(), b.Cols())
	for j := 0; j < b.Cols(); j++ {
		for i := 0; i < a.Rows(); i++ {
			var sum T
			for k := 0; k < a.Cols(); k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			m.Set(i, j, sum)
		}
	}
	return m
}

func absScalar[T packet.Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	default:
		return cmplx.Abs(any(v).(complex128))
	}
}

// maxDiff returns the largest absolute coefficient difference.
func maxDiff[T packet.Scalar](got, want Operand[T]) float64 {
	worst := 0.0
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			if d := absScalar(got.At(i, j) - want.At(i, j)); d > worst {
				worst = d
			}
		}
	}
	return worst
}

func frobNorm[T packet.Scalar](m Operand[T]) float64 {
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a := absScalar(m.At(i, j))
			sum += a * a
		}
	}
	return math.Sqrt(sum)
}
