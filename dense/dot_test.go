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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llrraa/go-dense/packet"
)

func TestDotReal(t *testing.T) {
	rng := rand.New(rand.NewSource(81))
	u := randVector[float64](37, rng)
	v := randVector[float64](37, rng)

	var want float64
	for i := 0; i < 37; i++ {
		want += u.At(i, 0) * v.At(i, 0)
	}
	assert.InDelta(t, want, Dot[float64](u, v), 1e-12)
}

func TestDotComplexConjugate(t *testing.T) {
	rng := rand.New(rand.NewSource(82))
	u := randVector[complex128](19, rng)
	v := randVector[complex128](19, rng)

	var want complex128
	for i := 0; i < 19; i++ {
		want += packet.ConjScalar(u.At(i, 0)) * v.At(i, 0)
	}
	got := Dot[complex128](Conjugate[complex128](u), v)
	assert.InDelta(t, 0, absScalar(got-want), 1e-12)
}

func TestDotScaledFusion(t *testing.T) {
	rng := rand.New(rand.NewSource(83))
	u := randVector[float64](24, rng)
	v := randVector[float64](24, rng)

	plain := Dot[float64](u, v)
	scaled := Dot[float64](ScaleView[float64](2, u), ScaleView[float64](-3, v))
	assert.InDelta(t, -6*plain, scaled, 1e-12)
}

func TestDotRowColMix(t *testing.T) {
	rng := rand.New(rand.NewSource(84))
	u := randVector[float64](16, rng)
	v := randVector[float64](16, rng)

	// A row vector against a column vector is still a dot of lengths.
	assert.InDelta(t, Dot[float64](u, v), Dot[float64](Transpose[float64](u), v), 1e-12)
}

// A strided column of a row-major matrix has no contiguous slice; the
// fallback reads coefficients one by one.
func TestDotNonContiguousFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(85))
	m := randMatrix[float64](6, 5, RowMajor, rng)
	v := randVector[float64](6, rng)

	col := Col[float64](m, 2)
	var want float64
	for i := 0; i < 6; i++ {
		want += m.At(i, 2) * v.At(i, 0)
	}
	assert.InDelta(t, want, Dot[float64](col, v), 1e-12)
}

func TestDotEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Dot[float64](NewVector[float64](0), NewVector[float64](0)))
}

func TestDotPanics(t *testing.T) {
	assert.Panics(t, func() { Dot[float64](NewVector[float64](3), NewVector[float64](4)) })
	assert.Panics(t, func() { Dot[float64](NewMatrix[float64](2, 2), NewVector[float64](4)) })
}
