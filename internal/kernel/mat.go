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

import "github.com/llrraa/go-dense/packet"

// Mat describes a dense matrix operand in memory.
//
// Stride is the distance between consecutive rows for row-major storage,
// or between consecutive columns for column-major storage. When Conj is
// set every coefficient is conjugated on read; for real element types the
// flag has no effect.
type Mat[T packet.Scalar] struct {
	Data     []T
	Stride   int
	RowMajor bool
	Conj     bool
}

// At returns the coefficient at (r, c), conjugated if requested.
func (m Mat[T]) At(r, c int) T {
	var v T
	if m.RowMajor {
		v = m.Data[r*m.Stride+c]
	} else {
		v = m.Data[c*m.Stride+r]
	}
	if m.Conj {
		v = packet.ConjScalar(v)
	}
	return v
}

// Trans returns the transposed view: same memory, flipped storage order.
func (m Mat[T]) Trans() Mat[T] {
	return Mat[T]{Data: m.Data, Stride: m.Stride, RowMajor: !m.RowMajor, Conj: m.Conj}
}
