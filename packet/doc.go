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

// Package packet provides a small portable SIMD-lane abstraction over the
// four dense scalar types: float32, float64, complex64 and complex128.
//
// The lane count per type is derived from the active SIMD register width
// reported by the hwy package, so a Packet[float32] holds 8 lanes under
// AVX2 and 4 under NEON. Complex packets use the same register budget,
// giving half the lanes of the corresponding real type.
//
// # Operations
//
// The operation set mirrors the classic packet primitives of expression
// template libraries:
//
//   - Load / Store - move lanes between packets and slices
//   - Set - broadcast one scalar to all lanes
//   - Zero - all-zero packet
//   - Add / Mul / MulAdd - element-wise arithmetic
//   - ReduceSum - horizontal sum of all lanes
//   - Conj - element-wise complex conjugation (identity for reals)
//
// Loads and stores are bounds-clamped: reading near the end of a slice
// yields a short packet rather than a fault, and the arithmetic operations
// operate on the shorter of their operands. This matches the access rules
// the evaluators rely on at matrix edges.
//
// Hot floating-point kernels do not go through this package; they use the
// hwy vector API directly. Packet exists for the code paths that must be
// generic over complex scalars as well, where hwy has no lane support.
package packet
