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
	"sync"

	"github.com/llrraa/go-dense/packet"
)

// Scratch buffers back packed GEMM panels and mat-vec staging vectors.
// They are pooled per element type and handed back grown, so steady-state
// products allocate nothing. Buffers come back with arbitrary contents;
// every user overwrites before reading.

var (
	scratchF32  = sync.Pool{New: func() any { return new([]float32) }}
	scratchF64  = sync.Pool{New: func() any { return new([]float64) }}
	scratchC64  = sync.Pool{New: func() any { return new([]complex64) }}
	scratchC128 = sync.Pool{New: func() any { return new([]complex128) }}
)

func scratchPool[T packet.Scalar]() *sync.Pool {
	var zero T
	switch any(zero).(type) {
	case float32:
		return &scratchF32
	case float64:
		return &scratchF64
	case complex64:
		return &scratchC64
	default:
		return &scratchC128
	}
}

// GetScratch returns a length-n buffer from the per-type pool.
func GetScratch[T packet.Scalar](n int) []T {
	buf := *scratchPool[T]().Get().(*[]T)
	if cap(buf) < n {
		buf = make([]T, n)
	}
	return buf[:n]
}

// PutScratch returns a buffer obtained from GetScratch to its pool.
func PutScratch[T packet.Scalar](buf []T) {
	scratchPool[T]().Put(&buf)
}
