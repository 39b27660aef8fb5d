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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dynTraits(order Order, direct bool) Traits {
	return Traits{
		Rows: Dynamic, Cols: Dynamic, MaxRows: Dynamic, MaxCols: Dynamic,
		Order: order, Direct: direct, ReadCost: 1,
	}
}

func TestProductModeClassifier(t *testing.T) {
	fixed := Traits{Rows: 4, Cols: 4, MaxRows: 4, MaxCols: 4, Direct: true, ReadCost: 1}
	boundedOuter := Traits{Rows: 4, Cols: Dynamic, MaxRows: 4, MaxCols: Dynamic, Direct: true, ReadCost: 1}
	boundedCols := Traits{Rows: Dynamic, Cols: 4, MaxRows: Dynamic, MaxCols: 4, Direct: true, ReadCost: 1}
	colVec := Traits{Rows: Dynamic, Cols: 1, MaxRows: Dynamic, MaxCols: 1, Order: ColMajor, Direct: true, ReadCost: 1}
	rowVec := Traits{Rows: 1, Cols: Dynamic, MaxRows: 1, MaxCols: Dynamic, Order: RowMajor, Direct: true, ReadCost: 1}

	cases := []struct {
		name     string
		lhs, rhs Traits
		want     Mode
	}{
		{"dynamic-dynamic", dynTraits(ColMajor, true), dynTraits(ColMajor, true), ModeCacheFriendly},
		{"fixed-fixed", fixed, fixed, ModeNormal},
		{"fixed-dynamic", fixed, dynTraits(ColMajor, true), ModeNormal},
		{"dynamic-fixed", dynTraits(ColMajor, true), fixed, ModeCacheFriendly},
		{"bounded-outer-dims", boundedOuter, boundedCols, ModeNormal},
		{"matvec", dynTraits(ColMajor, true), colVec, ModeCacheFriendly},
		{"matvec-rowmajor-direct-lhs", dynTraits(RowMajor, true), colVec, ModeCacheFriendly},
		{"matvec-rowmajor-indirect-lhs", dynTraits(RowMajor, false), colVec, ModeNormal},
		{"vecmat", rowVec, dynTraits(RowMajor, true), ModeCacheFriendly},
		{"vecmat-colmajor-direct-rhs", rowVec, dynTraits(ColMajor, true), ModeCacheFriendly},
		{"vecmat-colmajor-indirect-rhs", rowVec, dynTraits(ColMajor, false), ModeNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, productMode(tc.lhs, tc.rhs))
		})
	}
}

func TestModeThroughMul(t *testing.T) {
	dyn := Mul[float64](NewMatrix[float64](8, 8), NewMatrix[float64](8, 8))
	assert.Equal(t, ModeCacheFriendly, dyn.Mode())

	fixed := Mul[float64](NewFixed[float64](8, 8), NewFixed[float64](8, 8))
	assert.Equal(t, ModeNormal, fixed.Mode())

	// A row-major left operand without raw storage cannot feed the mat-vec
	// kernels, so the product stays lazy.
	wrapped := Mul[float64](Conjugate[float64](NewMatrixRowMajor[float64](8, 8)), NewVector[float64](8))
	assert.Equal(t, ModeNormal, wrapped.Mode())
}

func TestBlockedPathThreshold(t *testing.T) {
	old := ProductThreshold()
	defer SetProductThreshold(old)
	SetProductThreshold(8)

	mk := func(m, n, k int) *Product[float64] {
		return Mul[float64](NewMatrix[float64](m, k), NewMatrix[float64](k, n))
	}
	require.Equal(t, ModeCacheFriendly, mk(4, 4, 4).Mode())
	assert.False(t, mk(4, 4, 4).useBlockedPath())
	assert.True(t, mk(8, 8, 8).useBlockedPath())
	// One outer dimension at the threshold is enough.
	assert.True(t, mk(7, 9, 8).useBlockedPath())
	// A short inner dimension is not.
	assert.False(t, mk(9, 9, 7).useBlockedPath())

	assert.Panics(t, func() { SetProductThreshold(0) })
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "cachefriendly", ModeCacheFriendly.String())
	assert.Equal(t, "colmajor", ColMajor.String())
	assert.Equal(t, "rowmajor", RowMajor.String())
}
