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

// dotF computes the dot product of a and b over the shorter length,
// SIMD lanes first and a scalar tail after the reduce.
func dotF[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		sum = hwy.MulAdd(hwy.Load(a[i:]), hwy.Load(b[i:]), sum)
	}
	result := hwy.ReduceSum(sum)
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

func dotCx[T packet.Complex](a, b []T, conjA, conjB bool) T {
	n := min(len(a), len(b))
	var sum T
	switch {
	case conjA && conjB:
		for i := 0; i < n; i++ {
			sum += packet.ConjScalar(a[i]) * packet.ConjScalar(b[i])
		}
	case conjA:
		for i := 0; i < n; i++ {
			sum += packet.ConjScalar(a[i]) * b[i]
		}
	case conjB:
		for i := 0; i < n; i++ {
			sum += a[i] * packet.ConjScalar(b[i])
		}
	default:
		for i := 0; i < n; i++ {
			sum += a[i] * b[i]
		}
	}
	return sum
}
