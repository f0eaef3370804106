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

package lane

import "unsafe"

// Saturated operations clamp to the type's range instead of wrapping,
// matching hardware saturating vector arithmetic on narrow integers.

// rangeOf returns the minimum and maximum value of T.
func rangeOf[T Integers]() (lo, hi T) {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if zero-1 < 0 {
		hi = T(1)<<(bits-1) - 1
		return ^hi, hi
	}
	return zero, ^zero
}

// SaturatedAddScalar adds two values, clamping instead of wrapping.
// For example uint8: 250 + 10 = 255, not 4.
func SaturatedAddScalar[T Integers](x, y T) T {
	lo, hi := rangeOf[T]()
	s := x + y
	if y >= 0 {
		if s < x {
			s = hi
		}
	} else if s > x {
		s = lo
	}
	return s
}

// SaturatedSubScalar subtracts y from x, clamping instead of wrapping.
// For example uint8: 10 - 20 = 0, not 246.
func SaturatedSubScalar[T Integers](x, y T) T {
	lo, hi := rangeOf[T]()
	d := x - y
	if y <= 0 {
		if d < x {
			d = hi
		}
	} else if d > x {
		d = lo
	}
	return d
}

// SaturatedAdd performs lane-wise addition that clamps instead of
// wrapping.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = SaturatedAddScalar(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs lane-wise subtraction that clamps instead of
// wrapping.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = SaturatedSubScalar(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Clamp limits each lane to [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := min(len(v.data), min(len(lo.data), len(hi.data)))
	result := make([]T, n)
	for i := range n {
		x := v.data[i]
		if x < lo.data[i] {
			x = lo.data[i]
		}
		if x > hi.data[i] {
			x = hi.data[i]
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}
