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

// ReduceSum collapses a lane group to one scalar by pairwise (tree)
// summation: the top half is folded onto the bottom half until one lane
// remains. For floats this rounds differently from a left-to-right scan,
// and typically more accurately; callers comparing against a sequential
// sum must use a tolerance. Batch reducers keep a running vector
// accumulator across groups and call this exactly once at the end.
func ReduceSum[T Lanes](v Vec[T]) T {
	n := len(v.data)
	if n == 0 {
		var zero T
		return zero
	}
	buf := make([]T, n)
	copy(buf, v.data)
	for n > 1 {
		half := n / 2
		fold := n - half
		for i := range half {
			buf[i] += buf[fold+i]
		}
		n = fold
	}
	return buf[0]
}

// ReduceMin returns the smallest lane. An empty group reduces to zero.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the largest lane. An empty group reduces to zero.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
