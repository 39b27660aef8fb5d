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
	"fmt"

	"k8s.io/klog/v2"

	"github.com/llrraa/go-dense/packet"
)

// coeffKind selects the coefficient-evaluator variant, fixed at product
// construction.
type coeffKind uint8

const (
	coeffDynamic coeffKind = iota
	coeffUnrolled
	coeffInnerVec
	coeffDot
)

// Product is the lazy matrix-product expression A * B. It behaves as a
// matrix whose coefficients are computed on demand; assigning it to a
// destination picks between lazy evaluation and the blocked kernels
// according to the mode fixed at construction.
type Product[T packet.Scalar] struct {
	lhs, rhs Operand[T]
	mode     Mode
	inner    int
	kind     coeffKind
	// unrolledPacket gates the generated unrolled packet bodies.
	unrolledPacket bool
	traits         Traits
}

// Mul forms the product expression a * b. Panics when the inner
// dimensions disagree. Operands are captured by reference or through a
// temporary according to the nesting cost model.
func Mul[T packet.Scalar](a, b Operand[T]) *Product[T] {
	if a.Cols() != b.Rows() {
		panic(fmt.Sprintf("dense: invalid matrix product: %dx%d times %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	mode := productMode(a.Traits(), b.Traits())

	var lhs, rhs Operand[T]
	if mode == ModeCacheFriendly {
		// The kernels read packed panels, so each operand is swept once.
		// The right operand's temporary, if one is made, is laid out
		// column-major to match the packers' preferred direction.
		lhs = nestOperand(a, 1, ColMajor)
		rhs = nestOperand(b, 1, ColMajor)
	} else {
		lhs = nestOperand(a, max(b.Cols(), 1), ColMajor)
		rhs = nestOperand(b, max(a.Rows(), 1), ColMajor)
	}

	p := &Product[T]{lhs: lhs, rhs: rhs, mode: mode, inner: lhs.Cols()}
	p.traits, p.kind, p.unrolledPacket = productTraits[T](lhs.Traits(), rhs.Traits(), mode)

	if klog.V(2).Enabled() {
		klog.Infof("dense: product %dx%dx%d mode=%v kind=%d", p.Rows(), p.Cols(), p.inner, mode, p.kind)
	}
	return p
}

// statInner is the construction-time inner size: known only when both
// operands agree on it statically.
func statInner(lhs, rhs Traits) int {
	if lhs.Cols == Dynamic || rhs.Rows == Dynamic {
		return Dynamic
	}
	return min(lhs.Cols, rhs.Rows)
}

func productTraits[T packet.Scalar](lt, rt Traits, mode Mode) (Traits, coeffKind, bool) {
	w := packet.Width[T]()
	inner := statInner(lt, rt)

	// A packet of the result can be formed from packets of one operand
	// when that operand is contiguous along the result packet's
	// direction and the spanned dimension does not end mid-packet.
	canVecRhs := rt.Order == RowMajor && rt.PacketAccess &&
		(rt.Cols == Dynamic || rt.Cols%w == 0)
	canVecLhs := lt.Order == ColMajor && lt.PacketAccess &&
		(lt.Rows == Dynamic || lt.Rows%w == 0)
	canVecInner := lt.Order == RowMajor && rt.Order == ColMajor &&
		lt.PacketAccess && rt.PacketAccess && lt.Aligned && rt.Aligned &&
		inner != Dynamic && inner%w == 0

	evalToRowMajor := rt.Order == RowMajor
	if mode == ModeCacheFriendly {
		evalToRowMajor = evalToRowMajor && lt.Order == RowMajor
	} else {
		evalToRowMajor = evalToRowMajor && !canVecLhs
	}
	order := ColMajor
	if evalToRowMajor {
		order = RowMajor
	}

	cost := Dynamic
	if inner != Dynamic && lt.ReadCost != Dynamic && rt.ReadCost != Dynamic {
		cost = inner*(mulCost[T]()+lt.ReadCost+rt.ReadCost) + (inner-1)*addCost[T]()
	}

	t := Traits{
		Rows:                lt.Rows,
		Cols:                rt.Cols,
		MaxRows:             lt.MaxRows,
		MaxCols:             rt.MaxCols,
		Order:               order,
		Direct:              false,
		PacketAccess:        canVecLhs || canVecRhs,
		Aligned:             (canVecLhs && lt.Aligned) || (canVecRhs && rt.Aligned),
		Linear:              false,
		ReadCost:            cost,
		EvalBeforeNesting:   true,
		EvalBeforeAssigning: true,
	}

	unrollOK := inner != Dynamic && inner >= 1 && inner <= unrollCeiling &&
		cost != Dynamic && cost <= unrollingLimit

	kind := coeffDynamic
	switch {
	case canVecInner && unrollOK:
		kind = coeffInnerVec
	case unrollOK:
		kind = coeffUnrolled
	case inner == Dynamic && lt.Direct && lt.Order == RowMajor &&
		rt.Direct && rt.Order == ColMajor:
		kind = coeffDot
	}
	return t, kind, unrollOK && t.PacketAccess
}

// Rows returns the number of rows of the result.
func (p *Product[T]) Rows() int { return p.lhs.Rows() }

// Cols returns the number of columns of the result.
func (p *Product[T]) Cols() int { return p.rhs.Cols() }

// InnerSize returns the contracted dimension.
func (p *Product[T]) InnerSize() int { return p.inner }

// Mode returns the evaluation strategy fixed at construction.
func (p *Product[T]) Mode() Mode { return p.mode }

// Traits implements Operand.
func (p *Product[T]) Traits() Traits { return p.traits }

// AtLinear reads element i of a vector-shaped product.
func (p *Product[T]) AtLinear(i int) T {
	switch {
	case p.Rows() == 1:
		return p.At(0, i)
	case p.Cols() == 1:
		return p.At(i, 0)
	default:
		panic("dense: linear access on a matrix-shaped product")
	}
}

// useBlockedPath reports whether the blocked kernels pay off at the
// runtime sizes: the inner size and at least one outer dimension must
// reach the threshold. Below it even a cache-friendly product evaluates
// lazily.
func (p *Product[T]) useBlockedPath() bool {
	return p.inner >= blockedThreshold &&
		(p.Rows() >= blockedThreshold || p.Cols() >= blockedThreshold)
}

var _ Operand[complex128] = (*Product[complex128])(nil)
