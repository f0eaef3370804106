// Copyright 2025 go-lanes Authors
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

package buffer

import "github.com/x448/float16"

// Half-precision interop. Kernels compute in float32; these helpers move
// data between float16 storage and aligned float32 buffers. IEEE 754
// rounding (round to nearest even) applies on the way down.

// FromFloat16 widens half-precision values into dst and returns how many
// elements were converted (the shorter extent).
func FromFloat16(dst []float32, src []float16.Float16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = src[i].Float32()
	}
	return n
}

// ToFloat16 narrows float32 values into dst and returns how many elements
// were converted. Values beyond the float16 range become infinities.
func ToFloat16(dst []float16.Float16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float16.Fromfloat32(src[i])
	}
	return n
}

// AllocFromFloat16 allocates an aligned float32 buffer holding the
// widened contents of src. alignment 0 selects the register width.
func AllocFromFloat16(src []float16.Float16, alignment int) (*Buffer[float32], error) {
	b, err := Alloc[float32](len(src), alignment)
	if err != nil {
		return nil, err
	}
	FromFloat16(b.Data(), src)
	return b, nil
}
