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

	"github.com/llrraa/go-dense/packet"
)

func (m *Matrix[T]) checkShape(rows, cols int) {
	if m.rows != rows || m.cols != cols {
		panic(fmt.Sprintf("dense: cannot assign %dx%d result to %dx%d matrix",
			rows, cols, m.rows, m.cols))
	}
}

// Assign evaluates expr into m (C = expr). Expressions flagged
// EvalBeforeAssigning, products among them, are materialized into a
// temporary first, which makes this form safe when m's storage also backs
// one of the operands.
func (m *Matrix[T]) Assign(expr Operand[T]) {
	m.checkShape(expr.Rows(), expr.Cols())
	t := expr.Traits()
	if !t.EvalBeforeAssigning {
		m.lazyAssign(expr)
		return
	}
	tmp := newWithOrder[T](expr.Rows(), expr.Cols(), t.Order)
	switch e := expr.(type) {
	case *Product[T]:
		tmp.assignProduct(e)
	case Scaled[T]:
		// alpha * (A*B) goes through the kernels with the factor fused.
		if p, ok := e.op.(*Product[T]); ok {
			tmp.accumulate(p, e.factor)
		} else {
			tmp.lazyAssign(expr)
		}
	default:
		tmp.lazyAssign(expr)
	}
	m.lazyAssign(tmp)
}

// AssignNoAlias evaluates the product straight into m (C = A*B) without
// the protective temporary. The caller asserts that m aliases neither
// operand.
func (m *Matrix[T]) AssignNoAlias(p *Product[T]) {
	m.checkShape(p.Rows(), p.Cols())
	m.SetZero()
	m.assignProduct(p)
}

// assignProduct writes p into m, assuming m is already zeroed when the
// blocked path runs.
func (m *Matrix[T]) assignProduct(p *Product[T]) {
	if p.mode == ModeCacheFriendly && p.useBlockedPath() {
		runBlocked(m, p, T(1))
		return
	}
	m.lazyAssign(p)
}

// AddAssign accumulates the product into m (C += A*B). The caller asserts
// that m aliases neither operand.
func (m *Matrix[T]) AddAssign(p *Product[T]) {
	m.accumulate(p, T(1))
}

// SubAssign subtracts the product from m (C -= A*B). The caller asserts
// that m aliases neither operand.
func (m *Matrix[T]) SubAssign(p *Product[T]) {
	m.accumulate(p, -T(1))
}

// AddScaled accumulates alpha times the product into m (C += alpha*A*B),
// feeding alpha to the kernels so no scaled temporary is formed. The
// caller asserts that m aliases neither operand.
func (m *Matrix[T]) AddScaled(alpha T, p *Product[T]) {
	m.accumulate(p, alpha)
}

// MulAssign replaces m with m * b (C = C*B). Routed through Assign, so
// the product is materialized before m is overwritten.
func (m *Matrix[T]) MulAssign(b Operand[T]) {
	m.Assign(Mul[T](m, b))
}

func (m *Matrix[T]) accumulate(p *Product[T], alpha T) {
	m.checkShape(p.Rows(), p.Cols())
	if p.mode == ModeCacheFriendly && p.useBlockedPath() {
		runBlocked(m, p, alpha)
		return
	}
	ld := m.stride()
	if m.order == RowMajor {
		for i := 0; i < m.rows; i++ {
			row := m.data[i*ld:]
			for j := 0; j < m.cols; j++ {
				row[j] += alpha * p.At(i, j)
			}
		}
		return
	}
	for j := 0; j < m.cols; j++ {
		col := m.data[j*ld:]
		for i := 0; i < m.rows; i++ {
			col[i] += alpha * p.At(i, j)
		}
	}
}

// lazyAssign copies expr into m coefficient by coefficient, or packet by
// packet when expr can produce packets in m's storage order. Iteration
// follows m's order so writes stay sequential.
func (m *Matrix[T]) lazyAssign(expr Operand[T]) {
	w := packet.Width[T]()
	et := expr.Traits()
	ld := m.stride()

	if et.PacketAccess && et.Order == m.order && w > 1 {
		if m.order == RowMajor {
			for i := 0; i < m.rows; i++ {
				row := m.data[i*ld:]
				j := 0
				for ; j+w <= m.cols; j += w {
					packet.Store(expr.Packet(i, j), row[j:j+w])
				}
				for ; j < m.cols; j++ {
					row[j] = expr.At(i, j)
				}
			}
			return
		}
		for j := 0; j < m.cols; j++ {
			col := m.data[j*ld:]
			i := 0
			for ; i+w <= m.rows; i += w {
				packet.Store(expr.Packet(i, j), col[i:i+w])
			}
			for ; i < m.rows; i++ {
				col[i] = expr.At(i, j)
			}
		}
		return
	}

	if m.order == RowMajor {
		for i := 0; i < m.rows; i++ {
			row := m.data[i*ld:]
			for j := 0; j < m.cols; j++ {
				row[j] = expr.At(i, j)
			}
		}
		return
	}
	for j := 0; j < m.cols; j++ {
		col := m.data[j*ld:]
		for i := 0; i < m.rows; i++ {
			col[i] = expr.At(i, j)
		}
	}
}
