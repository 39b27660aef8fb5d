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
	"os"
	"strconv"

	"k8s.io/klog/v2"
)

const (
	// unrollCeiling is the largest inner size with generated unrolled
	// evaluator bodies. Keep in sync with the -max argument below.
	unrollCeiling = 16
	// unrollingLimit caps the total per-coefficient cost the unrolled
	// paths accept. Complex products hit it well before the ceiling.
	unrollingLimit = 100
)

//go:generate go run ../cmd/unrollgen -max 16 -out zz_unroll_gen.go

// blockedThreshold is the size below which a cache-friendly product falls
// back to lazy evaluation anyway: packing setup does not amortize on tiny
// operands.
var blockedThreshold = 8

func init() {
	s := os.Getenv("DENSE_PRODUCT_THRESHOLD")
	if s == "" {
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		klog.Warningf("dense: ignoring DENSE_PRODUCT_THRESHOLD=%q, keeping %d", s, blockedThreshold)
		return
	}
	blockedThreshold = v
}

// ProductThreshold returns the current blocked-path size threshold.
func ProductThreshold() int { return blockedThreshold }

// SetProductThreshold sets the blocked-path size threshold. Products whose
// inner size and both outer sizes stay below it are evaluated lazily even
// in cache-friendly mode. Panics if n < 1.
func SetProductThreshold(n int) {
	if n < 1 {
		panic("dense: product threshold must be at least 1")
	}
	blockedThreshold = n
}
