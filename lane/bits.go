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

// Bitwise operations on integer lanes.

// And performs lane-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Or performs lane-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// Xor performs lane-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: result}
}

// AndNot computes (NOT a) AND b per lane, matching the hardware operand
// order of vector andnot instructions.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = ^a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Not inverts every bit of every lane.
func Not[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = ^v.data[i]
	}
	return Vec[T]{data: result}
}
