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

//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	// Wider vectors burn through packed panels faster; deepen them so the
	// register kernel amortizes more loads per write-back. Server parts
	// with AVX-512 also carry larger L2 caches.
	if cpu.X86.HasAVX512F {
		kcBytes = 1536
		mcRows = 256
	} else if cpu.X86.HasAVX2 {
		kcBytes = 1024
		mcRows = 128
	}
	logBlocking("amd64")
}
