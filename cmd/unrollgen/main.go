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

// unrollgen emits the unrolled product-evaluator bodies for the dense
// package: one fully unrolled scalar sum and two unrolled packet
// accumulations per static inner size, up to a configurable ceiling.
//
// Usage (from the dense package directory):
//
//	go run ../cmd/unrollgen -max 16 -out zz_unroll_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
)

const header = `// Copyright 2025 llrraa Authors
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

// Code generated by unrollgen. DO NOT EDIT.

package dense

import "github.com/llrraa/go-dense/packet"
`

func main() {
	maxN := flag.Int("max", 16, "largest inner size to unroll")
	out := flag.String("out", "zz_unroll_gen.go", "output file")
	flag.Parse()
	if *maxN < 1 {
		log.Fatalf("unrollgen: -max must be at least 1, got %d", *maxN)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	emitCoeff(&buf, *maxN)
	emitPacket(&buf, *maxN, "packetUnrolledRow",
		"row-major results: the packet spans adjacent columns of row r,",
		"built from broadcast left coefficients times right packets",
		func(k int) string {
			return fmt.Sprintf("packet.Set(lhs.At(r, %d)), rhs.Packet(%d, c)", k, k)
		})
	emitPacket(&buf, *maxN, "packetUnrolledCol",
		"column-major results: the packet spans adjacent rows of column c,",
		"built from left packets times broadcast right coefficients",
		func(k int) string {
			return fmt.Sprintf("lhs.Packet(r, %d), packet.Set(rhs.At(%d, c))", k, k)
		})

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("unrollgen: generated code does not format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("unrollgen: %v", err)
	}
}

func emitCoeff(buf *bytes.Buffer, maxN int) {
	fmt.Fprintf(buf, `
// coeffUnrolledAt computes one product coefficient with the inner sum
// emitted as a single expression, accumulating left to right in k.
func coeffUnrolledAt[T packet.Scalar](lhs, rhs Operand[T], r, c, n int) T {
	switch n {
`)
	for n := 1; n <= maxN; n++ {
		fmt.Fprintf(buf, "\tcase %d:\n\t\treturn ", n)
		for k := 0; k < n; k++ {
			if k > 0 {
				fmt.Fprintf(buf, " +\n\t\t\t")
			}
			fmt.Fprintf(buf, "lhs.At(r, %d)*rhs.At(%d, c)", k, k)
		}
		fmt.Fprintf(buf, "\n")
	}
	fmt.Fprintf(buf, `	default:
		panic("dense: no unrolled coefficient body for this inner size")
	}
}
`)
}

func emitPacket(buf *bytes.Buffer, maxN int, name, doc1, doc2 string, term func(k int) string) {
	fmt.Fprintf(buf, `
// %s computes one result packet for %s
// %s. The first term multiplies, the rest fuse.
func %s[T packet.Scalar](lhs, rhs Operand[T], r, c, n int) packet.Packet[T] {
	switch n {
`, name, doc1, doc2, name)
	for n := 1; n <= maxN; n++ {
		fmt.Fprintf(buf, "\tcase %d:\n", n)
		if n == 1 {
			fmt.Fprintf(buf, "\t\treturn packet.Mul(%s)\n", term(0))
			continue
		}
		fmt.Fprintf(buf, "\t\tacc := packet.Mul(%s)\n", term(0))
		for k := 1; k < n-1; k++ {
			fmt.Fprintf(buf, "\t\tacc = packet.MulAdd(%s, acc)\n", term(k))
		}
		fmt.Fprintf(buf, "\t\treturn packet.MulAdd(%s, acc)\n", term(n-1))
	}
	fmt.Fprintf(buf, `	default:
		panic("dense: no unrolled packet body for this inner size")
	}
}
`)
}
