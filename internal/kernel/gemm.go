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

package kernel

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/llrraa/go-dense/packet"
)

// gemmPacked computes C += alpha * A * B for floating-point scalars.
//
// C is rows x cols, row-major with leading stride ldc. A and B may have
// either storage order and carry conjugation flags (no-ops for floats);
// packing absorbs both. Accumulation per coefficient runs in ascending
// depth order across panels.
func gemmPacked[T packet.Real](c []T, ldc int, a, b Mat[T], rows, cols, depth int, alpha T) {
	if rows == 0 || cols == 0 || depth == 0 {
		return
	}
	p := Blocking[T]()
	lanes := hwy.Zero[T]().NumLanes()

	packedA := GetScratch[T](packedPanelLen(min(p.Mc, rows), min(p.Kc, depth), p.Mr))
	defer PutScratch(packedA)
	packedB := GetScratch[T](packedPanelLen(min(p.Nc, cols), min(p.Kc, depth), p.Nr))
	defer PutScratch(packedB)
	tile := GetScratch[T](p.Mr * p.Nr)
	defer PutScratch(tile)

	for jc := 0; jc < cols; jc += p.Nc {
		nc := min(p.Nc, cols-jc)
		for pc := 0; pc < depth; pc += p.Kc {
			kc := min(p.Kc, depth-pc)
			packRHS(packedB, b, pc, jc, kc, nc, p.Nr)
			for ic := 0; ic < rows; ic += p.Mc {
				mc := min(p.Mc, rows-ic)
				packLHS(packedA, a, ic, pc, mc, kc, p.Mr)

				for jr := 0; jr < nc; jr += p.Nr {
					bPanel := packedB[(jr/p.Nr)*kc*p.Nr:]
					jCount := min(p.Nr, nc-jr)
					for ir := 0; ir < mc; ir += p.Mr {
						aPanel := packedA[(ir/p.Mr)*kc*p.Mr:]
						iCount := min(p.Mr, mc-ir)
						gemmMicroF(c, ldc, aPanel, bPanel,
							ic+ir, jc+jr, iCount, jCount, kc, lanes, alpha, tile)
					}
				}
			}
		}
	}
}

// gemmMicroF accumulates one register tile: 4 rows x 2 vector widths of
// destination columns, held in 8 accumulators across the packed depth.
// alpha multiplies the tile once at write-back. Partial tiles stage
// through tile and clip; the packed panels are zero-padded so the
// accumulation loop itself never branches on the remainder.
func gemmMicroF[T hwy.Floats](c []T, ldc int, aPanel, bPanel []T,
	row0, col0, iCount, jCount, kc, lanes int, alpha T, tile []T) {

	acc00 := hwy.Zero[T]()
	acc01 := hwy.Zero[T]()
	acc10 := hwy.Zero[T]()
	acc11 := hwy.Zero[T]()
	acc20 := hwy.Zero[T]()
	acc21 := hwy.Zero[T]()
	acc30 := hwy.Zero[T]()
	acc31 := hwy.Zero[T]()

	nr := 2 * lanes
	for k := 0; k < kc; k++ {
		ak := aPanel[k*4:]
		vA0 := hwy.Set(ak[0])
		vA1 := hwy.Set(ak[1])
		vA2 := hwy.Set(ak[2])
		vA3 := hwy.Set(ak[3])

		bk := bPanel[k*nr:]
		vB0 := hwy.Load(bk)
		vB1 := hwy.Load(bk[lanes:])

		acc00 = hwy.MulAdd(vA0, vB0, acc00)
		acc01 = hwy.MulAdd(vA0, vB1, acc01)
		acc10 = hwy.MulAdd(vA1, vB0, acc10)
		acc11 = hwy.MulAdd(vA1, vB1, acc11)
		acc20 = hwy.MulAdd(vA2, vB0, acc20)
		acc21 = hwy.MulAdd(vA2, vB1, acc21)
		acc30 = hwy.MulAdd(vA3, vB0, acc30)
		acc31 = hwy.MulAdd(vA3, vB1, acc31)
	}

	if iCount == 4 && jCount == nr {
		vAlpha := hwy.Set(alpha)
		r0 := row0*ldc + col0
		r1 := r0 + ldc
		r2 := r1 + ldc
		r3 := r2 + ldc

		vC := hwy.Load(c[r0:])
		hwy.Store(hwy.MulAdd(vAlpha, acc00, vC), c[r0:])
		vC = hwy.Load(c[r0+lanes:])
		hwy.Store(hwy.MulAdd(vAlpha, acc01, vC), c[r0+lanes:])

		vC = hwy.Load(c[r1:])
		hwy.Store(hwy.MulAdd(vAlpha, acc10, vC), c[r1:])
		vC = hwy.Load(c[r1+lanes:])
		hwy.Store(hwy.MulAdd(vAlpha, acc11, vC), c[r1+lanes:])

		vC = hwy.Load(c[r2:])
		hwy.Store(hwy.MulAdd(vAlpha, acc20, vC), c[r2:])
		vC = hwy.Load(c[r2+lanes:])
		hwy.Store(hwy.MulAdd(vAlpha, acc21, vC), c[r2+lanes:])

		vC = hwy.Load(c[r3:])
		hwy.Store(hwy.MulAdd(vAlpha, acc30, vC), c[r3:])
		vC = hwy.Load(c[r3+lanes:])
		hwy.Store(hwy.MulAdd(vAlpha, acc31, vC), c[r3+lanes:])
		return
	}

	// Partial tile: stage the accumulators, then add the live region.
	hwy.Store(acc00, tile[0:])
	hwy.Store(acc01, tile[lanes:])
	hwy.Store(acc10, tile[nr:])
	hwy.Store(acc11, tile[nr+lanes:])
	hwy.Store(acc20, tile[2*nr:])
	hwy.Store(acc21, tile[2*nr+lanes:])
	hwy.Store(acc30, tile[3*nr:])
	hwy.Store(acc31, tile[3*nr+lanes:])

	for r := 0; r < iCount; r++ {
		cRow := (row0+r)*ldc + col0
		for j := 0; j < jCount; j++ {
			c[cRow+j] += alpha * tile[r*nr+j]
		}
	}
}

// gemmPackedCx is the complex-scalar engine. Same blocking as the
// floating-point path, with a 4x2 scalar register tile; conjugation of
// either operand is applied during packing.
func gemmPackedCx[T packet.Complex](c []T, ldc int, a, b Mat[T], rows, cols, depth int, alpha T) {
	if rows == 0 || cols == 0 || depth == 0 {
		return
	}
	p := Blocking[T]()

	packedA := GetScratch[T](packedPanelLen(min(p.Mc, rows), min(p.Kc, depth), p.Mr))
	defer PutScratch(packedA)
	packedB := GetScratch[T](packedPanelLen(min(p.Nc, cols), min(p.Kc, depth), p.Nr))
	defer PutScratch(packedB)

	for jc := 0; jc < cols; jc += p.Nc {
		nc := min(p.Nc, cols-jc)
		for pc := 0; pc < depth; pc += p.Kc {
			kc := min(p.Kc, depth-pc)
			packRHS(packedB, b, pc, jc, kc, nc, p.Nr)
			for ic := 0; ic < rows; ic += p.Mc {
				mc := min(p.Mc, rows-ic)
				packLHS(packedA, a, ic, pc, mc, kc, p.Mr)

				for jr := 0; jr < nc; jr += p.Nr {
					bPanel := packedB[(jr/p.Nr)*kc*p.Nr:]
					jCount := min(p.Nr, nc-jr)
					for ir := 0; ir < mc; ir += p.Mr {
						aPanel := packedA[(ir/p.Mr)*kc*p.Mr:]
						iCount := min(p.Mr, mc-ir)
						gemmMicroCx(c, ldc, aPanel, bPanel,
							ic+ir, jc+jr, iCount, jCount, kc, alpha)
					}
				}
			}
		}
	}
}

func gemmMicroCx[T packet.Complex](c []T, ldc int, aPanel, bPanel []T,
	row0, col0, iCount, jCount, kc int, alpha T) {

	var acc00, acc01, acc10, acc11, acc20, acc21, acc30, acc31 T
	for k := 0; k < kc; k++ {
		ak := aPanel[k*4:]
		b0 := bPanel[k*2]
		b1 := bPanel[k*2+1]

		acc00 += ak[0] * b0
		acc01 += ak[0] * b1
		acc10 += ak[1] * b0
		acc11 += ak[1] * b1
		acc20 += ak[2] * b0
		acc21 += ak[2] * b1
		acc30 += ak[3] * b0
		acc31 += ak[3] * b1
	}

	tile := [4][2]T{
		{acc00, acc01},
		{acc10, acc11},
		{acc20, acc21},
		{acc30, acc31},
	}
	for r := 0; r < iCount; r++ {
		cRow := (row0+r)*ldc + col0
		for j := 0; j < jCount; j++ {
			c[cRow+j] += alpha * tile[r][j]
		}
	}
}
