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
	"k8s.io/klog/v2"

	"github.com/llrraa/go-dense/internal/kernel"
	"github.com/llrraa/go-dense/packet"
)

// runBlocked dispatches dst += alpha * lhs * rhs into the cache-friendly
// kernels. The route is picked from the operands' static shape, storage
// order and access capabilities: products against a statically-known
// vector go to the specialized mat-vec kernels, everything else to the
// packed GEMM. The destination must not alias either operand.
func runBlocked[T packet.Scalar](dst *Matrix[T], p *Product[T], alpha T) {
	if p.Rows() == 0 || p.Cols() == 0 || p.inner == 0 {
		return
	}
	switch {
	case p.rhs.Traits().MaxCols == 1:
		runMatVec(dst, p, alpha)
	case p.lhs.Traits().MaxRows == 1:
		runVecMat(dst, p, alpha)
	default:
		runGemm(dst, p, alpha)
	}
}

// runGemm feeds the packed GEMM kernel. Scalar factors and conjugations
// are stripped off both operands and fused into a single alpha plus two
// conjugation flags; operands without raw storage are materialized
// column-major first. A column-major destination receives the transposed
// product through its transposed (row-major) view, which is the same
// memory.
func runGemm[T packet.Scalar](dst *Matrix[T], p *Product[T], alpha T) {
	lbase, la, lconj := extractFactors(p.lhs)
	rbase, ra, rconj := extractFactors(p.rhs)
	actual := alpha * la * ra

	aMat, ok := toMat(lbase, lconj)
	if !ok {
		tmp := materialize(lbase, ColMajor)
		aMat = kernel.Mat[T]{Data: tmp.data, Stride: tmp.stride(), Conj: lconj}
	}
	bMat, ok := toMat(rbase, rconj)
	if !ok {
		tmp := materialize(rbase, ColMajor)
		bMat = kernel.Mat[T]{Data: tmp.data, Stride: tmp.stride(), Conj: rconj}
	}

	m, n, k := p.Rows(), p.Cols(), p.inner
	if klog.V(2).Enabled() {
		klog.Infof("dense: gemm %dx%dx%d dst=%v", m, n, k, dst.order)
	}
	if dst.order == RowMajor {
		kernel.Gemm(dst.data, dst.stride(), aMat, bMat, m, n, k, actual)
	} else {
		kernel.Gemm(dst.data, dst.stride(), bMat.Trans(), aMat.Trans(), n, m, k, actual)
	}
}

// vecSlice returns a unit-stride slice holding the n elements of a
// vector-shaped operand. When the operand is not contiguous it is staged
// through scratch, folding the conjugation in; the returned flag is the
// conjugation still left for the kernel to apply. release must be called
// when the slice is no longer needed.
func vecSlice[T packet.Scalar](op Operand[T], n int, conj bool) (xs []T, conjOut bool, release func()) {
	if s, ok := vecData(op); ok {
		return s[:n], conj, func() {}
	}
	buf := kernel.GetScratch[T](n)
	for i := 0; i < n; i++ {
		v := vecAt(op, i)
		if conj {
			v = packet.ConjScalar(v)
		}
		buf[i] = v
	}
	return buf, false, func() { kernel.PutScratch(buf) }
}

// runMatVec handles matrix times column vector. The destination is an
// owned m x 1 matrix and therefore contiguous.
func runMatVec[T packet.Scalar](dst *Matrix[T], p *Product[T], alpha T) {
	m, k := p.Rows(), p.inner
	y := dst.data

	lbase, la, lconj := extractFactors(p.lhs)
	lt := lbase.Traits()
	aMat, lok := toMat(lbase, lconj)

	switch {
	case lt.Order == ColMajor && lt.Direct && lok:
		rbase, ra, rconj := extractFactors(p.rhs)
		xs, cx, release := vecSlice(rbase, k, rconj)
		defer release()
		kernel.GemvColMajor(aMat.Data, aMat.Stride, aMat.Conj, xs, cx, y, m, k, alpha*la*ra)
	case lt.Order == ColMajor:
		// No raw storage: accumulate column by column through the
		// expression, factors and all.
		for kk := 0; kk < k; kk++ {
			f := alpha * vecAt(p.rhs, kk)
			for i := 0; i < m; i++ {
				y[i] += f * p.lhs.At(i, kk)
			}
		}
	case lok:
		rbase, ra, rconj := extractFactors(p.rhs)
		xs, cx, release := vecSlice(rbase, k, rconj)
		defer release()
		kernel.GemvRowMajor(aMat.Data, aMat.Stride, aMat.Conj, xs, cx, y, m, k, alpha*la*ra)
	default:
		runGemm(dst, p, alpha)
	}
}

// runVecMat handles row vector times matrix by applying the mat-vec
// kernels to the transposed right operand: a row-major B exposes its rows
// as the columns of B^T, a column-major B its columns as B^T's rows. The
// destination is an owned 1 x n matrix and therefore contiguous.
func runVecMat[T packet.Scalar](dst *Matrix[T], p *Product[T], alpha T) {
	n, k := p.Cols(), p.inner
	y := dst.data

	rbase, ra, rconj := extractFactors(p.rhs)
	rt := rbase.Traits()
	bMat, rok := toMat(rbase, rconj)

	switch {
	case rt.Order == RowMajor && rt.Direct && rok:
		lbase, la, lconj := extractFactors(p.lhs)
		xs, cx, release := vecSlice(lbase, k, lconj)
		defer release()
		kernel.GemvColMajor(bMat.Data, bMat.Stride, bMat.Conj, xs, cx, y, n, k, alpha*la*ra)
	case rt.Order == RowMajor:
		// Linear combination of the right operand's rows through the
		// expression.
		for j := 0; j < k; j++ {
			f := alpha * vecAt(p.lhs, j)
			for c := 0; c < n; c++ {
				y[c] += f * p.rhs.At(j, c)
			}
		}
	case rok:
		lbase, la, lconj := extractFactors(p.lhs)
		xs, cx, release := vecSlice(lbase, k, lconj)
		defer release()
		kernel.GemvRowMajor(bMat.Data, bMat.Stride, bMat.Conj, xs, cx, y, n, k, alpha*la*ra)
	default:
		runGemm(dst, p, alpha)
	}
}
