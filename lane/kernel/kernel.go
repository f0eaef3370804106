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

// Package kernel runs paired scalar/vector operations over whole arrays:
// full lane groups go through the vector half, the remainder through the
// scalar half, so any element count N produces the same result as a pure
// scalar pass.
//
// # Drivers
//
// Apply, Apply2 and Apply3 cover unary, binary and ternary element-wise
// kernels; ApplyWhere applies a kernel only where a predicate holds,
// blending so deselected elements keep their previous bits. Reduce, Sum
// and Dot collapse arrays to one scalar with a single documented rounding
// discipline. The *Desc variants take an explicit lane descriptor; the
// short forms use the native one.
//
// # Kernel pairs
//
// A kernel is a vector operation over one lane group plus the equivalent
// scalar operation over one element. The two halves must agree for every
// input: exactly for integer kernels, within rounding tolerance for float
// kernels whose evaluation order differs (fused multiply-add). Verify
// probes a pair over sample inputs before it is trusted or benchmarked.
//
//	k := kernel.Kernel[float32]{
//		Name:   "plus1",
//		Vector: func(v lane.Vec[float32]) lane.Vec[float32] { return lane.Add(v, lane.Set[float32](1)) },
//		Scalar: func(x float32) float32 { return x + 1 },
//	}
//	err := kernel.Apply(dst, src, k)
//
// Element types are unified by the compiler, so a scalar half can never
// be paired with a vector half of another element type.
package kernel

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-lanes/lane"
)

// ErrPrecondition is the kind for every driver validation failure:
// mismatched input/output lengths, a lane count the active level cannot
// load, or a kernel with a missing half. Drivers validate before the
// first write, so a failed call leaves the output untouched. Test with
// errors.Is.
var ErrPrecondition = errors.New("kernel precondition")

// VecOp transforms one lane group.
type VecOp[T lane.Lanes] func(lane.Vec[T]) lane.Vec[T]

// ScalarOp transforms one element; the reference the vector half must match.
type ScalarOp[T lane.Lanes] func(T) T

// VecOp2 combines two lane groups.
type VecOp2[T lane.Lanes] func(a, b lane.Vec[T]) lane.Vec[T]

// ScalarOp2 combines two elements.
type ScalarOp2[T lane.Lanes] func(a, b T) T

// VecOp3 combines three lane groups.
type VecOp3[T lane.Lanes] func(a, b, c lane.Vec[T]) lane.Vec[T]

// ScalarOp3 combines three elements.
type ScalarOp3[T lane.Lanes] func(a, b, c T) T

// Kernel pairs a unary vector operation with its scalar reference.
type Kernel[T lane.Lanes] struct {
	Name   string
	Vector VecOp[T]
	Scalar ScalarOp[T]
}

// Kernel2 pairs a binary vector operation with its scalar reference.
type Kernel2[T lane.Lanes] struct {
	Name   string
	Vector VecOp2[T]
	Scalar ScalarOp2[T]
}

// Kernel3 pairs a ternary vector operation with its scalar reference.
type Kernel3[T lane.Lanes] struct {
	Name   string
	Vector VecOp3[T]
	Scalar ScalarOp3[T]
}

// Predicate pairs a per-group mask producer with its per-element
// reference, for ApplyWhere.
type Predicate[T lane.Lanes] struct {
	Name   string
	Vector func(lane.Vec[T]) lane.Mask[T]
	Scalar func(T) bool
}

// New builds a unary kernel, rejecting missing halves immediately rather
// than at first use.
func New[T lane.Lanes](name string, vector VecOp[T], scalar ScalarOp[T]) (Kernel[T], error) {
	if vector == nil || scalar == nil {
		return Kernel[T]{}, errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", name)
	}
	return Kernel[T]{Name: name, Vector: vector, Scalar: scalar}, nil
}

// New2 builds a binary kernel, rejecting missing halves immediately.
func New2[T lane.Lanes](name string, vector VecOp2[T], scalar ScalarOp2[T]) (Kernel2[T], error) {
	if vector == nil || scalar == nil {
		return Kernel2[T]{}, errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", name)
	}
	return Kernel2[T]{Name: name, Vector: vector, Scalar: scalar}, nil
}

// New3 builds a ternary kernel, rejecting missing halves immediately.
func New3[T lane.Lanes](name string, vector VecOp3[T], scalar ScalarOp3[T]) (Kernel3[T], error) {
	if vector == nil || scalar == nil {
		return Kernel3[T]{}, errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", name)
	}
	return Kernel3[T]{Name: name, Vector: vector, Scalar: scalar}, nil
}

func (k Kernel[T]) validate() error {
	if k.Vector == nil || k.Scalar == nil {
		return errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", k.Name)
	}
	return nil
}

func (k Kernel2[T]) validate() error {
	if k.Vector == nil || k.Scalar == nil {
		return errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", k.Name)
	}
	return nil
}

func (k Kernel3[T]) validate() error {
	if k.Vector == nil || k.Scalar == nil {
		return errors.Wrapf(ErrPrecondition, "kernel %q needs both halves", k.Name)
	}
	return nil
}

func (p Predicate[T]) validate() error {
	if p.Vector == nil || p.Scalar == nil {
		return errors.Wrapf(ErrPrecondition, "predicate %q needs both halves", p.Name)
	}
	return nil
}

// checkDesc rejects lane counts the active level cannot load in one
// group: zero or negative, or wider than the register.
func checkDesc[T lane.Lanes](d lane.Desc[T]) error {
	if d.Lanes() <= 0 {
		return errors.Wrapf(ErrPrecondition, "zero lane width")
	}
	if limit := lane.MaxLanes[T](); d.Lanes() > limit {
		return errors.Wrapf(ErrPrecondition, "lane width %d exceeds the supported %d", d.Lanes(), limit)
	}
	return nil
}

func checkLen[T lane.Lanes](what string, got []T, want int) error {
	if len(got) != want {
		return errors.Wrapf(ErrPrecondition, "%s length %d, want %d", what, len(got), want)
	}
	return nil
}
