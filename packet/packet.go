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

package packet

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// Real is the constraint for real floating-point scalars. Its type set is
// a subset of hwy.Floats, so a Real-constrained type parameter can flow
// into the hwy kernels directly.
type Real interface {
	float32 | float64
}

// Complex is the constraint for complex floating-point scalars.
type Complex interface {
	complex64 | complex128
}

// Scalar is the constraint for all supported dense scalar types.
//
// The constraint deliberately has no tilde terms: code that dispatches on
// the concrete type with any(...) type assertions relies on T being exactly
// one of the four types.
type Scalar interface {
	Real | Complex
}

// Packet is a short vector of lanes of type T.
//
// A full packet holds Width[T]() lanes. Packets loaded near the end of a
// slice may be shorter; operations use the shorter of their operands.
type Packet[T Scalar] struct {
	lanes []T
}

// Width returns the number of lanes a full packet of T holds under the
// current SIMD register width. Always at least 1.
func Width[T Scalar]() int {
	var dummy T
	n := hwy.CurrentWidth() / int(unsafe.Sizeof(dummy))
	if n < 1 {
		n = 1
	}
	return n
}

// NumLanes returns the number of lanes held by this packet.
func (p Packet[T]) NumLanes() int {
	return len(p.lanes)
}

// Load creates a packet from the leading lanes of src, clamped to the
// slice length.
func Load[T Scalar](src []T) Packet[T] {
	n := min(len(src), Width[T]())
	lanes := make([]T, n)
	copy(lanes, src[:n])
	return Packet[T]{lanes: lanes}
}

// Store writes the packet's lanes to dst, clamped to the slice length.
func Store[T Scalar](p Packet[T], dst []T) {
	n := min(len(dst), len(p.lanes))
	copy(dst[:n], p.lanes[:n])
}

// Set creates a packet with all lanes set to value.
func Set[T Scalar](value T) Packet[T] {
	lanes := make([]T, Width[T]())
	for i := range lanes {
		lanes[i] = value
	}
	return Packet[T]{lanes: lanes}
}

// Zero creates a packet with all lanes set to zero.
func Zero[T Scalar]() Packet[T] {
	return Packet[T]{lanes: make([]T, Width[T]())}
}

// Add performs element-wise addition.
func Add[T Scalar](a, b Packet[T]) Packet[T] {
	n := min(len(a.lanes), len(b.lanes))
	lanes := make([]T, n)
	for i := range n {
		lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return Packet[T]{lanes: lanes}
}

// Mul performs element-wise multiplication.
func Mul[T Scalar](a, b Packet[T]) Packet[T] {
	n := min(len(a.lanes), len(b.lanes))
	lanes := make([]T, n)
	for i := range n {
		lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return Packet[T]{lanes: lanes}
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Scalar](a, b, c Packet[T]) Packet[T] {
	n := min(min(len(a.lanes), len(b.lanes)), len(c.lanes))
	lanes := make([]T, n)
	for i := range n {
		lanes[i] = a.lanes[i]*b.lanes[i] + c.lanes[i]
	}
	return Packet[T]{lanes: lanes}
}

// ReduceSum returns the sum of all lanes, accumulated in lane order.
func ReduceSum[T Scalar](p Packet[T]) T {
	var sum T
	for _, v := range p.lanes {
		sum += v
	}
	return sum
}

// Conj conjugates every lane. For real scalars this is the identity.
func Conj[T Scalar](p Packet[T]) Packet[T] {
	lanes := make([]T, len(p.lanes))
	for i, v := range p.lanes {
		lanes[i] = ConjScalar(v)
	}
	return Packet[T]{lanes: lanes}
}

// ConjScalar returns the complex conjugate of v. Reals pass through.
func ConjScalar[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}
