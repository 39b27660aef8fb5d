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

// Package kernel implements the cache-friendly compute kernels behind the
// dense matrix product: a packed, blocked general matrix-matrix multiply,
// the two matrix-vector kernels, and dot products.
//
// All kernels work on raw slices with explicit strides and accumulate into
// the destination:
//
//	C += alpha * op(A) * op(B)
//	y += alpha * op(A) * x
//
// where op is the identity or element-wise conjugation. Operand storage
// order is absorbed during packing, so a single kernel serves every
// order combination. The GEMM destination is always row-major; callers
// with a column-major destination compute the transposed product into the
// transposed view instead, which touches the same memory.
//
// # Blocking
//
// The GEMM follows the classic three-level blocking scheme: panels of Kc
// depth are packed into micro-panels of Mr rows (left) and Nr columns
// (right), and a register kernel accumulates an Mr x Nr tile across the
// packed depth. Floating-point tiles hold hwy vectors; complex tiles hold
// scalar accumulators. Blocking parameters come from Blocking and are
// tuned per architecture.
//
// Everything here is single-threaded. Scratch buffers for packed panels
// and staging vectors are pooled per element type and returned on exit.
package kernel
