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

// Package dense implements a lazy dense matrix-product engine for real
// and complex floating-point scalars.
//
// Mul(a, b) forms a product expression without computing anything. The
// expression behaves as a matrix: At(r, c) computes single coefficients
// on demand, and assigning it to a destination evaluates the whole
// product, fusing scalar factors and conjugations from the operands into
// the compute kernels:
//
//	c := dense.NewMatrix[float64](m, n)
//	c.Assign(dense.Mul[float64](a, b))              // C = A*B
//	c.AddAssign(dense.Mul[float64](a, b))           // C += A*B
//	c.AddScaled(2, dense.Mul[float64](a, b))        // C += 2*A*B
//
// # Evaluation strategy
//
// When the product is formed, the operands' traits classify it once:
// operands with construction-time-bounded sizes evaluate lazily, with the
// inner sum unrolled or vectorized where the static shape allows it;
// unbounded operands route assignment into the blocked kernels of
// internal/kernel, picking packed GEMM or a specialized mat-vec kernel by
// shape and storage order. Tiny runtime sizes fall back to lazy
// evaluation even then; see SetProductThreshold.
//
// Plain Assign always materializes a product into a temporary before
// writing, so C may alias the operands. The NoAlias, AddAssign, SubAssign
// and AddScaled forms skip the temporary and require no aliasing.
//
// Shape mismatches, like every other API misuse here, panic: they are
// programming errors, not data errors. Numerical exceptions (NaN, Inf)
// propagate as ordinary values.
//
// # Views
//
// Transpose, Conjugate, Adjoint, ScaleView, Row, Col and MapMatrix wrap
// operands without copying. Scalar factors and conjugations are absorbed
// when a wrapped operand meets a kernel, so Mul(ScaleView(2, a), b) and
// two-times-the-product cost the same.
//
// Within one strategy the inner summation order is fixed (ascending k),
// so repeated evaluation of the same expression is bit-reproducible.
// Different strategies reassociate the sum differently and may disagree
// at ULP level.
package dense
