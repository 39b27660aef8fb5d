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

import "github.com/llrraa/go-dense/packet"

// Packet computes one packet of the result, oriented by the product's
// evaluation order. For a row-major result the packet spans adjacent
// columns of row r, formed from broadcast left coefficients times right
// packets; for a column-major result it spans rows of column c with the
// roles swapped. The first inner step multiplies, the rest fuse.
//
// Valid when the product's PacketAccess trait is set; the lanes past the
// matrix edge are clamped by the operand loads.
func (p *Product[T]) Packet(r, c int) packet.Packet[T] {
	if p.inner == 0 {
		panic("dense: product packet of an empty inner dimension")
	}
	if p.traits.Order == RowMajor {
		if p.unrolledPacket {
			return packetUnrolledRow(p.lhs, p.rhs, r, c, p.inner)
		}
		acc := packet.Mul(packet.Set(p.lhs.At(r, 0)), p.rhs.Packet(0, c))
		for k := 1; k < p.inner; k++ {
			acc = packet.MulAdd(packet.Set(p.lhs.At(r, k)), p.rhs.Packet(k, c), acc)
		}
		return acc
	}
	if p.unrolledPacket {
		return packetUnrolledCol(p.lhs, p.rhs, r, c, p.inner)
	}
	acc := packet.Mul(p.lhs.Packet(r, 0), packet.Set(p.rhs.At(0, c)))
	for k := 1; k < p.inner; k++ {
		acc = packet.MulAdd(p.lhs.Packet(r, k), packet.Set(p.rhs.At(k, c)), acc)
	}
	return acc
}
