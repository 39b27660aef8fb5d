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

// Plain Assign evaluates through a temporary, so the destination may back
// one of the operands.
func TestAssignAliasedOperand(t *testing.T) {
	rng := rand.New(rand.NewSource(71))
	a := randMatrix[float64](12, 12, ColMajor, rng)

	want := naiveMul[float64](a, a)
	a.Assign(Mul[float64](a, a))
	assert.LessOrEqual(t, maxDiff[float64](a, want), 1e-12)
}

func TestMulAssign(t *testing.T) {
	rng := rand.New(rand.NewSource(72))
	c := randMatrix[float64](16, 16, ColMajor, rng)
	b := randMatrix[float64](16, 16, RowMajor, rng)

	want := naiveMul[float64](c, b)
	c.MulAssign(b)
	assert.LessOrEqual(t, maxDiff[float64](c, want), 1e-12)
}

// Assigning alpha*(A*B) fuses the factor into the kernels instead of
// scaling a temporary afterwards.
func TestAssignScaledProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(73))
	a := randMatrix[float64](16, 16, ColMajor, rng)
	b := randMatrix[float64](16, 16, ColMajor, rng)

	c := NewMatrix[float64](16, 16)
	c.Assign(ScaleView[float64](3, Mul[float64](a, b)))
	assert.LessOrEqual(t, maxDiff[float64](c, naiveMul[float64](ScaleView[float64](3, a), b)), 1e-12)
}

func TestAddSubAssignRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(74))
	a := randMatrix[float64](16, 16, ColMajor, rng)
	b := randMatrix[float64](16, 16, ColMajor, rng)

	c := randMatrix[float64](16, 16, ColMajor, rng)
	orig := c.Clone()
	c.AddAssign(Mul[float64](a, b))
	c.SubAssign(Mul[float64](a, b))
	assert.LessOrEqual(t, maxDiff[float64](c, orig), 1e-12)
}

// Below the blocked threshold, accumulation runs the lazy coefficient
// loop; the semantics must not change.
func TestAccumulateLazyPath(t *testing.T) {
	rng := rand.New(rand.NewSource(75))
	a := randMatrix[float64](4, 4, ColMajor, rng)
	b := randMatrix[float64](4, 4, ColMajor, rng)

	p := Mul[float64](a, b)
	require.False(t, p.useBlockedPath())

	c := NewMatrix[float64](4, 4)
	c.AddScaled(2, p)
	ref := naiveMul[float64](a, b)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, 2*ref.At(i, j), c.At(i, j), 1e-13)
		}
	}
}

// The packet fast path of lazyAssign has scalar tails past the last full
// packet; an inner dimension that is no multiple of the width exercises
// them in both storage orders.
func TestLazyAssignPacketTail(t *testing.T) {
	rng := rand.New(rand.NewSource(78))
	old := ProductThreshold()
	defer SetProductThreshold(old)
	SetProductThreshold(100)

	a := randMatrix[float64](9, 5, ColMajor, rng)
	b := randMatrix[float64](5, 7, ColMajor, rng)
	p := Mul[float64](a, b)
	require.True(t, p.Traits().PacketAccess)
	require.Equal(t, ColMajor, p.Traits().Order)
	c := NewMatrix[float64](9, 7)
	c.AssignNoAlias(p)
	assert.LessOrEqual(t, maxDiff[float64](c, naiveMul[float64](a, b)), 1e-12)

	ar := randMatrix[float64](6, 5, RowMajor, rng)
	br := randMatrix[float64](5, 9, RowMajor, rng)
	pr := Mul[float64](ar, br)
	require.True(t, pr.Traits().PacketAccess)
	require.Equal(t, RowMajor, pr.Traits().Order)
	cr := NewMatrixRowMajor[float64](6, 9)
	cr.AssignNoAlias(pr)
	assert.LessOrEqual(t, maxDiff[float64](cr, naiveMul[float64](ar, br)), 1e-12)
}

func TestAssignIntoRowMajor(t *testing.T) {
	rng := rand.New(rand.NewSource(76))
	a := NewFixed[float64](5, 6)
	fillRandom(a, rng)
	b := NewFixed[float64](6, 4)
	fillRandom(b, rng)

	c := NewMatrixRowMajor[float64](5, 4)
	c.Assign(Mul[float64](a, b))
	assert.LessOrEqual(t, maxDiff[float64](c, naiveMul[float64](a, b)), 1e-12)
}

func TestAssignNonProductExpression(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	a := randMatrix[float64](6, 9, RowMajor, rng)

	c := NewMatrix[float64](9, 6)
	c.Assign(Transpose[float64](a))
	for i := 0; i < 9; i++ {
		for j := 0; j < 6; j++ {
			assert.Equal(t, a.At(j, i), c.At(i, j))
		}
	}

	s := NewMatrix[float64](6, 9)
	s.Assign(ScaleView[float64](-2, a))
	assert.Equal(t, -2*a.At(1, 2), s.At(1, 2))
}

func TestAssignShapePanics(t *testing.T) {
	a := NewMatrix[float64](3, 3)
	b := NewMatrix[float64](3, 3)
	c := NewMatrix[float64](2, 3)
	assert.Panics(t, func() { c.Assign(Mul[float64](a, b)) })
	assert.Panics(t, func() { c.AssignNoAlias(Mul[float64](a, b)) })
	assert.Panics(t, func() { c.AddAssign(Mul[float64](a, b)) })
}
