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

package kernel

import (
	"math"

	"github.com/ajroetker/go-lanes/lane"
)

// Stock kernels. Each constructor captures its parameters as full-width
// lane groups once, so the vector half allocates nothing per group.

// ScaleKernel multiplies every element by factor.
func ScaleKernel[T lane.Lanes](factor T) Kernel[T] {
	f := lane.Set(factor)
	return Kernel[T]{
		Name:   "scale",
		Vector: func(v lane.Vec[T]) lane.Vec[T] { return lane.Mul(v, f) },
		Scalar: func(x T) T { return x * factor },
	}
}

// ClampKernel limits every element to [lo, hi].
func ClampKernel[T lane.Lanes](lo, hi T) Kernel[T] {
	loV := lane.Set(lo)
	hiV := lane.Set(hi)
	return Kernel[T]{
		Name:   "clamp",
		Vector: func(v lane.Vec[T]) lane.Vec[T] { return lane.Clamp(v, loV, hiV) },
		Scalar: func(x T) T {
			if x < lo {
				return lo
			}
			if x > hi {
				return hi
			}
			return x
		},
	}
}

// SqrtKernel takes the square root of every element.
func SqrtKernel[T lane.Floats]() Kernel[T] {
	return Kernel[T]{
		Name:   "sqrt",
		Vector: lane.Sqrt[T],
		Scalar: func(x T) T { return T(math.Sqrt(float64(x))) },
	}
}

// AddKernel adds two batches element-wise.
func AddKernel[T lane.Lanes]() Kernel2[T] {
	return Kernel2[T]{
		Name:   "add",
		Vector: lane.Add[T],
		Scalar: func(a, b T) T { return a + b },
	}
}

// MulKernel multiplies two batches element-wise.
func MulKernel[T lane.Lanes]() Kernel2[T] {
	return Kernel2[T]{
		Name:   "mul",
		Vector: lane.Mul[T],
		Scalar: func(a, b T) T { return a * b },
	}
}

// AXPYKernel computes alpha*x + y. Both halves fuse the multiply-add,
// so vector and scalar results match bit for bit.
func AXPYKernel[T lane.Floats](alpha T) Kernel2[T] {
	a := lane.Set(alpha)
	return Kernel2[T]{
		Name:   "axpy",
		Vector: func(x, y lane.Vec[T]) lane.Vec[T] { return lane.FMA(a, x, y) },
		Scalar: func(x, y T) T { return T(math.FMA(float64(alpha), float64(x), float64(y))) },
	}
}

// SaturatedAddKernel adds two batches element-wise, clamping to the
// type's range instead of wrapping.
func SaturatedAddKernel[T lane.Integers]() Kernel2[T] {
	return Kernel2[T]{
		Name:   "saturated-add",
		Vector: lane.SaturatedAdd[T],
		Scalar: lane.SaturatedAddScalar[T],
	}
}

// Above selects elements strictly greater than threshold.
func Above[T lane.Lanes](threshold T) Predicate[T] {
	t := lane.Set(threshold)
	return Predicate[T]{
		Name:   "above",
		Vector: func(v lane.Vec[T]) lane.Mask[T] { return lane.Greater(v, t) },
		Scalar: func(x T) bool { return x > threshold },
	}
}
