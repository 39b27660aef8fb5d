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

// gemvColF computes y += alpha * A * x for a column-major A with leading
// stride lda. One column per step, vectorized along y: the column walk
// keeps A accesses contiguous and y hot in registers.
func gemvColF[T hwy.Floats](a []T, lda int, x, y []T, rows, cols int, alpha T) {
	lanes := hwy.Zero[T]().NumLanes()
	for k := 0; k < cols; k++ {
		f := alpha * x[k]
		vF := hwy.Set(f)
		col := a[k*lda:]

		var i int
		for i = 0; i+lanes <= rows; i += lanes {
			vY := hwy.Load(y[i:])
			vY = hwy.MulAdd(vF, hwy.Load(col[i:]), vY)
			hwy.Store(vY, y[i:])
		}
		for ; i < rows; i++ {
			y[i] += f * col[i]
		}
	}
}

func gemvColCx[T packet.Complex](a []T, lda int, conjA bool, x []T, conjX bool, y []T, rows, cols int, alpha T) {
	for k := 0; k < cols; k++ {
		xv := x[k]
		if conjX {
			xv = packet.ConjScalar(xv)
		}
		f := alpha * xv
		col := a[k*lda : k*lda+rows]
		if conjA {
			for i, v := range col {
				y[i] += f * packet.ConjScalar(v)
			}
		} else {
			for i, v := range col {
				y[i] += f * v
			}
		}
	}
}

// gemvRowF computes y += alpha * A * x for a row-major A with leading
// stride lda. One dot product per destination row.
func gemvRowF[T hwy.Floats](a []T, lda int, x, y []T, rows, cols int, alpha T) {
	lanes := hwy.Zero[T]().NumLanes()
	for r := 0; r < rows; r++ {
		row := a[r*lda:]
		sum := hwy.Zero[T]()

		var j int
		for j = 0; j+lanes <= cols; j += lanes {
			sum = hwy.MulAdd(hwy.Load(row[j:]), hwy.Load(x[j:]), sum)
		}
		acc := hwy.ReduceSum(sum)
		for ; j < cols; j++ {
			acc += row[j] * x[j]
		}
		y[r] += alpha * acc
	}
}

func gemvRowCx[T packet.Complex](a []T, lda int, conjA bool, x []T, conjX bool, y []T, rows, cols int, alpha T) {
	for r := 0; r < rows; r++ {
		row := a[r*lda : r*lda+cols]
		var acc T
		switch {
		case conjA && conjX:
			for j, v := range row {
				acc += packet.ConjScalar(v) * packet.ConjScalar(x[j])
			}
		case conjA:
			for j, v := range row {
				acc += packet.ConjScalar(v) * x[j]
			}
		case conjX:
			for j, v := range row {
				acc += v * packet.ConjScalar(x[j])
			}
		default:
			for j, v := range row {
				acc += v * x[j]
			}
		}
		y[r] += alpha * acc
	}
}
