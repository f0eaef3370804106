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

// Comparisons produce a mask whose extent equals the shorter operand, so
// masks from tail groups line up with the lanes that exist.

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = pred(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal returns a mask selecting lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask selecting lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// Less returns a mask selecting lanes where a < b.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a mask selecting lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// Greater returns a mask selecting lanes where a > b.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask selecting lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// FirstN returns a mask selecting the first n lanes of a full group.
// Negative n selects none; n beyond the lane count selects all.
func FirstN[T Lanes](n int) Mask[T] {
	lanes := MaxLanes[T]()
	if n < 0 {
		n = 0
	}
	if n > lanes {
		n = lanes
	}
	bits := make([]bool, lanes)
	for i := range n {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskFrom builds a mask from explicit per-lane booleans.
func MaskFrom[T Lanes](bits []bool) Mask[T] {
	data := make([]bool, len(bits))
	copy(data, bits)
	return Mask[T]{bits: data}
}

// MaskAnd selects lanes present in both masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr selects lanes present in either mask.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor selects lanes present in exactly one mask.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot inverts a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i := range bits {
		bits[i] = !m.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskAndNot selects lanes in a but not in b.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && !b.bits[i]
	}
	return Mask[T]{bits: bits}
}
