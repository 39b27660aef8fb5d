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

// The public kernels are generic over all four scalar types but the
// engines are split: floating-point paths run on hwy vectors, complex
// paths on scalar tiles with explicit conjugation. Each call resolves the
// concrete element type once, here, and never again inside the loops.
// The Scalar constraint has no tilde terms, so these assertions are total.

func matF32[T packet.Scalar](m Mat[T]) Mat[float32] {
	return Mat[float32]{Data: any(m.Data).([]float32), Stride: m.Stride, RowMajor: m.RowMajor, Conj: m.Conj}
}

func matF64[T packet.Scalar](m Mat[T]) Mat[float64] {
	return Mat[float64]{Data: any(m.Data).([]float64), Stride: m.Stride, RowMajor: m.RowMajor, Conj: m.Conj}
}

func matC64[T packet.Scalar](m Mat[T]) Mat[complex64] {
	return Mat[complex64]{Data: any(m.Data).([]complex64), Stride: m.Stride, RowMajor: m.RowMajor, Conj: m.Conj}
}

func matC128[T packet.Scalar](m Mat[T]) Mat[complex128] {
	return Mat[complex128]{Data: any(m.Data).([]complex128), Stride: m.Stride, RowMajor: m.RowMajor, Conj: m.Conj}
}

// Gemm computes C += alpha * A * B.
//
// C is rows x cols, row-major with leading stride ldc. A is rows x depth
// and B is depth x cols, in any storage order, with optional conjugation.
// A column-major destination is handled by the caller through the
// transpose of the whole product; this entry point never reorders C.
func Gemm[T packet.Scalar](c []T, ldc int, a, b Mat[T], rows, cols, depth int, alpha T) {
	switch al := any(alpha).(type) {
	case float32:
		gemmPacked(any(c).([]float32), ldc, matF32(a), matF32(b), rows, cols, depth, al)
	case float64:
		gemmPacked(any(c).([]float64), ldc, matF64(a), matF64(b), rows, cols, depth, al)
	case complex64:
		gemmPackedCx(any(c).([]complex64), ldc, matC64(a), matC64(b), rows, cols, depth, al)
	case complex128:
		gemmPackedCx(any(c).([]complex128), ldc, matC128(a), matC128(b), rows, cols, depth, al)
	}
}

// GemvColMajor computes y += alpha * op(A) * op(x) for a column-major A
// with leading stride lda. x and y are unit-stride and at least cols and
// rows long. conjA and conjX request element-wise conjugation; both are
// no-ops for real element types.
func GemvColMajor[T packet.Scalar](a []T, lda int, conjA bool, x []T, conjX bool, y []T, rows, cols int, alpha T) {
	switch al := any(alpha).(type) {
	case float32:
		gemvColF(any(a).([]float32), lda, any(x).([]float32), any(y).([]float32), rows, cols, al)
	case float64:
		gemvColF(any(a).([]float64), lda, any(x).([]float64), any(y).([]float64), rows, cols, al)
	case complex64:
		gemvColCx(any(a).([]complex64), lda, conjA, any(x).([]complex64), conjX, any(y).([]complex64), rows, cols, al)
	case complex128:
		gemvColCx(any(a).([]complex128), lda, conjA, any(x).([]complex128), conjX, any(y).([]complex128), rows, cols, al)
	}
}

// GemvRowMajor computes y += alpha * op(A) * op(x) for a row-major A with
// leading stride lda: one dot product per destination row.
func GemvRowMajor[T packet.Scalar](a []T, lda int, conjA bool, x []T, conjX bool, y []T, rows, cols int, alpha T) {
	switch al := any(alpha).(type) {
	case float32:
		gemvRowF(any(a).([]float32), lda, any(x).([]float32), any(y).([]float32), rows, cols, al)
	case float64:
		gemvRowF(any(a).([]float64), lda, any(x).([]float64), any(y).([]float64), rows, cols, al)
	case complex64:
		gemvRowCx(any(a).([]complex64), lda, conjA, any(x).([]complex64), conjX, any(y).([]complex64), rows, cols, al)
	case complex128:
		gemvRowCx(any(a).([]complex128), lda, conjA, any(x).([]complex128), conjX, any(y).([]complex128), rows, cols, al)
	}
}

// Dot computes the sum of op(a[i]) * op(b[i]) over the shorter of the two
// slices. Returns 0 for empty input.
func Dot[T packet.Scalar](a, b []T, conjA, conjB bool) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(dotF(any(a).([]float32), any(b).([]float32))).(T)
	case float64:
		return any(dotF(any(a).([]float64), any(b).([]float64))).(T)
	case complex64:
		return any(dotCx(any(a).([]complex64), any(b).([]complex64), conjA, conjB)).(T)
	default:
		return any(dotCx(any(a).([]complex128), any(b).([]complex128), conjA, conjB)).(T)
	}
}
