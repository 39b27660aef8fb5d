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
	"math/rand"
	"testing"
)

func TestDotSmall(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	if got := Dot(a, b, false, false); got != 32 {
		t.Errorf("Dot = %f, want 32", got)
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot[float64](nil, nil, false, false); got != 0 {
		t.Errorf("empty Dot = %f, want 0", got)
	}
}

func TestDotTailLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 70; n++ {
		a := make([]float64, n)
		b := make([]float64, n)
		randFill(a, rng)
		randFill(b, rng)

		var want float64
		for i := range a {
			want += a[i] * b[i]
		}
		got := Dot(a, b, false, false)
		if d := scalarDiff(got, want); d > 1e-11 {
			t.Fatalf("n=%d: Dot = %v, want %v", n, got, want)
		}
	}
}

func TestDotComplexConj(t *testing.T) {
	a := []complex128{1 + 2i, 3 - 1i}
	b := []complex128{2 - 1i, 1 + 1i}

	// Plain: (1+2i)(2-1i) + (3-1i)(1+1i) = (4+3i) + (4+2i) = 8+5i
	if got := Dot(a, b, false, false); got != 8+5i {
		t.Errorf("Dot = %v, want 8+5i", got)
	}
	// Conjugate-left: (1-2i)(2-1i) + (3+1i)(1+1i) = (0-5i) + (2+4i) = 2-1i
	if got := Dot(a, b, true, false); got != 2-1i {
		t.Errorf("conj Dot = %v, want 2-1i", got)
	}
}

func BenchmarkDotF64(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, 4096)
	y := make([]float64, 4096)
	randFill(x, rng)
	randFill(y, rng)

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Dot(x, y, false, false)
	}
	_ = sink
}
