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
	"github.com/stretchr/testify/require"
)

// A scaled operand read once is kept by reference; read repeatedly it is
// cheaper to evaluate into a temporary first.
func TestNestingCostDecision(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	a := NewFixed[float64](2, 2)
	fillRandom(a, rng)

	single := NewFixed[float64](2, 1)
	fillRandom(single, rng)
	p := Mul[float64](ScaleView[float64](2, a), single)
	_, kept := p.lhs.(Scaled[float64])
	assert.True(t, kept, "operand read once should stay by reference")

	wide := NewFixed[float64](2, 2)
	fillRandom(wide, rng)
	p2 := Mul[float64](ScaleView[float64](2, a), wide)
	_, materialized := p2.lhs.(*Matrix[float64])
	assert.True(t, materialized, "operand read per column should be evaluated once")

	// Either way the coefficients are those of (2*A)*B.
	want := naiveMul[float64](ScaleView[float64](2, a), wide)
	assert.Zero(t, maxDiff[float64](p2, want))
}

// Complex scaling costs enough per read that even a single sweep prefers
// the temporary.
func TestNestingComplexScaledMaterialized(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	a := randMatrix[complex128](10, 10, ColMajor, rng)
	b := randMatrix[complex128](10, 10, ColMajor, rng)

	p := Mul[complex128](ScaleView[complex128](2, a), b)
	require.Equal(t, ModeCacheFriendly, p.Mode())
	_, materialized := p.lhs.(*Matrix[complex128])
	assert.True(t, materialized)
}

func TestNestingRealScaledKeptInBlockedMode(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	a := randMatrix[float64](10, 10, ColMajor, rng)
	b := randMatrix[float64](10, 10, ColMajor, rng)

	p := Mul[float64](ScaleView[float64](2, a), b)
	require.Equal(t, ModeCacheFriendly, p.Mode())
	_, kept := p.lhs.(Scaled[float64])
	assert.True(t, kept, "factor should survive to be fused into the kernel alpha")
}

func TestNestedProductMaterialized(t *testing.T) {
	rng := rand.New(rand.NewSource(54))
	a := randMatrix[float64](10, 10, ColMajor, rng)
	b := randMatrix[float64](10, 10, ColMajor, rng)
	c := randMatrix[float64](10, 10, ColMajor, rng)

	p := Mul[float64](Mul[float64](a, b), c)
	_, materialized := p.lhs.(*Matrix[float64])
	require.True(t, materialized, "a nested product must never be re-evaluated per coefficient")

	out := NewMatrix[float64](10, 10)
	out.AssignNoAlias(p)
	want := naiveMul[float64](naiveMul[float64](a, b), c)
	assert.LessOrEqual(t, maxDiff[float64](out, want), 1e-12)
}

// Materializing keeps statically-vector dimensions, so a nested mat-vec
// product still routes the outer product to the mat-vec kernel.
func TestMaterializePreservesVectorShape(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	a := randMatrix[float64](10, 10, ColMajor, rng)
	b := randMatrix[float64](10, 10, ColMajor, rng)
	v := randVector[float64](10, rng)

	p := Mul[float64](a, Mul[float64](b, v))
	require.Equal(t, 1, p.rhs.Traits().MaxCols)

	y := NewVector[float64](10)
	y.AssignNoAlias(p)
	want := naiveMul[float64](a, naiveMul[float64](b, v))
	assert.LessOrEqual(t, maxDiff[float64](y, want), 1e-12)
}
