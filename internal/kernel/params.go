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

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
	"k8s.io/klog/v2"

	"github.com/llrraa/go-dense/packet"
)

// CacheParams holds the blocking parameters of the packed GEMM.
type CacheParams struct {
	// Mr is the number of destination rows per register tile.
	Mr int
	// Nr is the number of destination columns per register tile. For
	// floating-point types this is two vector widths; for complex types it
	// is a small scalar tile.
	Nr int
	// Kc is the depth of the packed panels, sized for L1 residency.
	Kc int
	// Mc is the number of left-hand rows packed per panel, sized for L2.
	Mc int
	// Nc is the number of right-hand columns packed per panel.
	Nc int
}

// Panel byte budgets. The depth budget scales inversely with element size
// so a packed strip stays L1-resident for every scalar type. Architecture
// init functions may raise these.
var (
	kcBytes = 1024
	mcRows  = 128
	ncCols  = 512
)

// Blocking returns the GEMM blocking parameters for element type T under
// the current SIMD configuration.
func Blocking[T packet.Scalar]() CacheParams {
	var zero T
	elem := int(unsafe.Sizeof(zero))

	kc := kcBytes / elem
	if kc < 16 {
		kc = 16
	}

	switch any(zero).(type) {
	case complex64, complex128:
		// Complex tiles accumulate in scalars, so the register tile is
		// fixed and independent of the SIMD width.
		return CacheParams{Mr: 4, Nr: 2, Kc: kc, Mc: mcRows, Nc: ncCols}
	}

	lanes := hwy.CurrentWidth() / elem
	if lanes < 1 {
		lanes = 1
	}
	return CacheParams{Mr: 4, Nr: 2 * lanes, Kc: kc, Mc: mcRows, Nc: ncCols}
}

func logBlocking(arch string) {
	if klog.V(2).Enabled() {
		klog.Infof("kernel: %s blocking kcBytes=%d mcRows=%d ncCols=%d simd=%s",
			arch, kcBytes, mcRows, ncCols, hwy.CurrentName())
	}
}
