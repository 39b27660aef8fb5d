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

// Mode is the evaluation strategy of a product, fixed when the product
// expression is formed.
type Mode uint8

const (
	// ModeNormal evaluates coefficients lazily, one dot product per entry.
	ModeNormal Mode = iota
	// ModeCacheFriendly routes assignment through the blocked kernels.
	ModeCacheFriendly
)

func (m Mode) String() string {
	if m == ModeCacheFriendly {
		return "cachefriendly"
	}
	return "normal"
}

// productMode classifies a product from the operand traits. The blocked
// kernels pay a fixed setup cost; they are worth it only for operands
// whose sizes are not bounded at construction time, and only when the
// shapes the kernels cannot serve are excluded.
func productMode(lhs, rhs Traits) Mode {
	if lhs.MaxCols != Dynamic {
		return ModeNormal
	}
	if lhs.MaxRows != Dynamic && rhs.MaxCols != Dynamic {
		return ModeNormal
	}
	if rhs.IsVector() && lhs.Order == RowMajor && !lhs.Direct {
		return ModeNormal
	}
	if lhs.IsVector() && rhs.Order == ColMajor && !rhs.Direct {
		return ModeNormal
	}
	return ModeCacheFriendly
}
