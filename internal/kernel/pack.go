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

// packLHS packs a panelRows x panelK panel of A, starting at
// (rowStart, colStart), into micro-panels of mr rows.
//
// The packed layout is [ceil(panelRows/mr)][panelK][mr]: for each strip of
// mr rows, all depth positions are stored consecutively with the mr row
// values adjacent. The register kernel then reads one contiguous group of
// mr broadcast sources per depth step. The last strip is zero-padded to mr
// rows so the kernel never branches on the row remainder.
//
// Reading goes through Mat.At, which absorbs the source storage order and
// conjugation. Packing is O(panelRows * panelK) against the O(mc*kc*nc)
// multiply, so the per-element branch is lower order.
func packLHS[T packet.Scalar](dst []T, a Mat[T], rowStart, colStart, panelRows, panelK, mr int) {
	idx := 0
	for base := 0; base < panelRows; base += mr {
		active := min(mr, panelRows-base)
		for k := 0; k < panelK; k++ {
			for r := 0; r < active; r++ {
				dst[idx] = a.At(rowStart+base+r, colStart+k)
				idx++
			}
			for r := active; r < mr; r++ {
				dst[idx] = 0
				idx++
			}
		}
	}
}

// packRHS packs a panelK x panelCols panel of B, starting at
// (rowStart, colStart), into micro-panels of nr columns.
//
// The packed layout is [ceil(panelCols/nr)][panelK][nr], zero-padded in
// the last strip, so the register kernel loads full nr-wide groups at
// every depth step.
func packRHS[T packet.Scalar](dst []T, b Mat[T], rowStart, colStart, panelK, panelCols, nr int) {
	idx := 0
	for base := 0; base < panelCols; base += nr {
		active := min(nr, panelCols-base)
		for k := 0; k < panelK; k++ {
			for c := 0; c < active; c++ {
				dst[idx] = b.At(rowStart+k, colStart+base+c)
				idx++
			}
			for c := active; c < nr; c++ {
				dst[idx] = 0
				idx++
			}
		}
	}
}

// packedPanelLen returns the buffer length needed to pack count outer
// elements (rows or columns) in strips of strip, at depth depth.
func packedPanelLen(count, depth, strip int) int {
	strips := (count + strip - 1) / strip
	return strips * depth * strip
}
