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

// nestOperand decides how a product captures an operand: by reference, or
// through a temporary evaluated once up front.
//
// readCount is how many times every coefficient of the operand will be
// read while the product is evaluated (the other operand's outer
// dimension). Evaluating into a temporary costs one pass plus readCount
// cheap reads; reading the expression in place costs readCount expensive
// reads. The cheaper side wins. Operands that must not be re-evaluated
// per coefficient (nested products) are always materialized.
func nestOperand[T packet.Scalar](op Operand[T], readCount int, tmpOrder Order) Operand[T] {
	t := op.Traits()
	if t.EvalBeforeNesting || t.ReadCost == Dynamic {
		return materialize(op, tmpOrder)
	}
	scalar := readCost[T]()
	if (readCount+1)*scalar < readCount*t.ReadCost {
		return materialize(op, tmpOrder)
	}
	return op
}

// materialize evaluates op into a fresh matrix with the requested storage
// order. The copy advertises a dynamic shape, which keeps the mode
// classification of the enclosing product unchanged except for vector
// dimensions, preserved so the kernel selector still sees them.
func materialize[T packet.Scalar](op Operand[T], order Order) *Matrix[T] {
	m := newWithOrder[T](op.Rows(), op.Cols(), order)
	t := op.Traits()
	if t.MaxRows == 1 {
		m.staticRows = 1
	}
	if t.MaxCols == 1 {
		m.staticCols = 1
	}
	if p, ok := op.(*Product[T]); ok {
		m.assignProduct(p)
	} else {
		m.lazyAssign(op)
	}
	return m
}
