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

import "github.com/llrraa/go-dense/packet"

// Dynamic marks a dimension or cost that is only known at runtime.
const Dynamic = -1

// Order is the storage order of an operand.
type Order uint8

const (
	// ColMajor stores consecutive rows of one column adjacently.
	ColMajor Order = iota
	// RowMajor stores consecutive columns of one row adjacently.
	RowMajor
)

func (o Order) String() string {
	if o == RowMajor {
		return "rowmajor"
	}
	return "colmajor"
}

// Traits is the static description of an operand, computed once when an
// expression is formed. The mode classifier, the kernel selector and the
// evaluator choices are pure functions over these values; none of them is
// consulted per coefficient.
type Traits struct {
	// Rows and Cols are the construction-time sizes, or Dynamic.
	Rows, Cols int
	// MaxRows and MaxCols bound the runtime sizes, or Dynamic. A value of
	// 1 identifies a vector dimension.
	MaxRows, MaxCols int
	// Order is the storage order coefficients are laid out in.
	Order Order
	// Direct reports whether a base slice plus outer stride is available.
	Direct bool
	// PacketAccess reports whether Packet loads along the contiguous
	// direction are valid.
	PacketAccess bool
	// Aligned reports whether packet loads start at a lane boundary.
	Aligned bool
	// Linear reports whether the coefficients are contiguous end to end,
	// with no gap between outer runs.
	Linear bool
	// ReadCost estimates the cost of reading one coefficient, in units of
	// one scalar load. Dynamic when it depends on runtime sizes.
	ReadCost int
	// EvalBeforeNesting forces materialization into a temporary when the
	// operand is nested inside another expression.
	EvalBeforeNesting bool
	// EvalBeforeAssigning forces materialization before plain assignment,
	// which makes the assignment alias-safe.
	EvalBeforeAssigning bool
}

// IsVector reports whether one dimension is statically 1.
func (t Traits) IsVector() bool {
	return t.MaxRows == 1 || t.MaxCols == 1
}

// Scalar cost model. Complex arithmetic expands to several real
// operations, which shifts the unrolling and nesting decisions.
func mulCost[T packet.Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return 6
	}
	return 1
}

func addCost[T packet.Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return 2
	}
	return 1
}

func readCost[T packet.Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return 2
	}
	return 1
}
