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

package packet

import (
	"math"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func TestWidth(t *testing.T) {
	t.Logf("SIMD level: %s, width: %d bytes", hwy.CurrentName(), hwy.CurrentWidth())

	w32 := Width[float32]()
	w64 := Width[float64]()
	wc64 := Width[complex64]()
	wc128 := Width[complex128]()

	if w32 < 1 || w64 < 1 || wc64 < 1 || wc128 < 1 {
		t.Fatalf("lane counts must be at least 1: %d %d %d %d", w32, w64, wc64, wc128)
	}
	if w32 != 2*w64 && w64 != 1 {
		t.Errorf("float32 lanes = %d, want twice float64 lanes (%d)", w32, w64)
	}
	if wc64 != w64 {
		t.Errorf("complex64 lanes = %d, want same as float64 (%d)", wc64, w64)
	}
}

func TestLoadStoreClamped(t *testing.T) {
	src := []float64{1, 2, 3}
	p := Load(src)
	if p.NumLanes() > len(src) {
		t.Fatalf("loaded %d lanes from a slice of %d", p.NumLanes(), len(src))
	}

	dst := make([]float64, 2)
	Store(p, dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("clamped store wrote %v", dst)
	}
}

func TestArithmetic(t *testing.T) {
	n := Width[float32]()
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range n {
		a[i] = float32(i + 1)
		b[i] = 2
	}

	sum := make([]float32, n)
	Store(Add(Load(a), Load(b)), sum)
	prod := make([]float32, n)
	Store(Mul(Load(a), Load(b)), prod)
	fma := make([]float32, n)
	Store(MulAdd(Load(a), Load(b), Set[float32](1)), fma)

	for i := range n {
		if sum[i] != a[i]+2 {
			t.Errorf("Add lane %d = %f, want %f", i, sum[i], a[i]+2)
		}
		if prod[i] != a[i]*2 {
			t.Errorf("Mul lane %d = %f, want %f", i, prod[i], a[i]*2)
		}
		if fma[i] != a[i]*2+1 {
			t.Errorf("MulAdd lane %d = %f, want %f", i, fma[i], a[i]*2+1)
		}
	}
}

func TestReduceSum(t *testing.T) {
	n := Width[float64]()
	src := make([]float64, n)
	var want float64
	for i := range n {
		src[i] = float64(i + 1)
		want += float64(i + 1)
	}
	got := ReduceSum(Load(src))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ReduceSum = %f, want %f", got, want)
	}
}

func TestComplexMulAdd(t *testing.T) {
	a := Set[complex64](1 + 2i)
	b := Set[complex64](3 - 1i)
	c := Set[complex64](1i)

	out := make([]complex64, Width[complex64]())
	Store(MulAdd(a, b, c), out)

	want := complex64((1+2i)*(3-1i) + 1i)
	for i, v := range out {
		if v != want {
			t.Errorf("lane %d = %v, want %v", i, v, want)
		}
	}
}

func TestConj(t *testing.T) {
	if ConjScalar(float64(3.5)) != 3.5 {
		t.Error("real conjugation must be the identity")
	}
	if ConjScalar(complex(1.0, 2.0)) != complex(1.0, -2.0) {
		t.Error("complex128 conjugation failed")
	}
	if ConjScalar(complex64(2-3i)) != complex64(2+3i) {
		t.Error("complex64 conjugation failed")
	}

	p := Conj(Set[complex128](5 + 7i))
	out := make([]complex128, Width[complex128]())
	Store(p, out)
	for i, v := range out {
		if v != 5-7i {
			t.Errorf("lane %d = %v, want 5-7i", i, v)
		}
	}
}
