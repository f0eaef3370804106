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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-lanes/lane"
)

// Reducers fold a batch to one value. The order is fixed: a vector
// accumulator absorbs every full lane group, collapses pairwise exactly
// once, and the remainder folds in sequentially after that. For floats
// the result therefore differs from a left-to-right scalar sum by
// rounding only, and is identical across runs for the same batch length
// and lane count.

// Reducer pairs the three parts of a fold: a lane-wise combine for full
// groups, a scalar combine for the tail, and a horizontal collapse of
// the vector accumulator. Init is the identity value; it seeds both
// accumulators.
type Reducer[T lane.Lanes] struct {
	Name     string
	Init     T
	Vector   func(acc, group lane.Vec[T]) lane.Vec[T]
	Scalar   func(acc, x T) T
	Collapse func(lane.Vec[T]) T
}

func (r Reducer[T]) validate() error {
	if r.Vector == nil || r.Scalar == nil || r.Collapse == nil {
		return errors.Wrapf(ErrPrecondition, "reducer %q needs vector, scalar and collapse parts", r.Name)
	}
	return nil
}

// Reduce folds src to a single value using the native lane count.
// An empty batch returns r.Init.
func Reduce[T lane.Lanes](src []T, r Reducer[T]) (T, error) {
	return ReduceDesc(lane.DescOf[T](), src, r)
}

// ReduceDesc is Reduce with an explicit lane descriptor.
func ReduceDesc[T lane.Lanes](d lane.Desc[T], src []T, r Reducer[T]) (T, error) {
	var zero T
	if err := r.validate(); err != nil {
		return zero, err
	}
	if err := checkDesc(d); err != nil {
		return zero, err
	}

	n := len(src)
	w := d.Lanes()
	i := 0
	acc := r.Init
	if n >= w {
		vacc := d.Set(r.Init)
		for ; i+w <= n; i += w {
			vacc = r.Vector(vacc, lane.Load(src[i:i+w]))
		}
		acc = r.Scalar(acc, r.Collapse(vacc))
	}
	for ; i < n; i++ {
		acc = r.Scalar(acc, src[i])
	}
	return acc, nil
}

// SumReducer returns the addition fold with identity zero.
func SumReducer[T lane.Lanes]() Reducer[T] {
	return Reducer[T]{
		Name:     "sum",
		Init:     0,
		Vector:   lane.Add[T],
		Scalar:   func(acc, x T) T { return acc + x },
		Collapse: lane.ReduceSum[T],
	}
}

// Sum adds up src. An empty batch sums to zero.
func Sum[T lane.Lanes](src []T) (T, error) {
	return Reduce(src, SumReducer[T]())
}

// SumDesc is Sum with an explicit lane descriptor.
func SumDesc[T lane.Lanes](d lane.Desc[T], src []T) (T, error) {
	return ReduceDesc(d, src, SumReducer[T]())
}

// Dot computes the inner product of a and b using the native lane
// count. Full groups accumulate with fused multiply-add; the tail
// multiplies and adds with separate roundings. Lengths must match.
func Dot[T lane.Floats](a, b []T) (T, error) {
	return DotDesc(lane.DescOf[T](), a, b)
}

// DotDesc is Dot with an explicit lane descriptor.
func DotDesc[T lane.Floats](d lane.Desc[T], a, b []T) (T, error) {
	var zero T
	if err := checkDesc(d); err != nil {
		return zero, err
	}
	if err := checkLen("second input", b, len(a)); err != nil {
		return zero, err
	}

	n := len(a)
	w := d.Lanes()
	i := 0
	var acc T
	if n >= w {
		vacc := d.Zero()
		for ; i+w <= n; i += w {
			vacc = lane.FMA(lane.Load(a[i:i+w]), lane.Load(b[i:i+w]), vacc)
		}
		acc = lane.ReduceSum(vacc)
	}
	for ; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc, nil
}

// MinOf returns the smallest element of src. Minimum has no identity
// across all lane types, so the accumulator seeds from the data and an
// empty batch is a precondition error.
func MinOf[T lane.Lanes](src []T) (T, error) {
	return MinOfDesc(lane.DescOf[T](), src)
}

// MinOfDesc is MinOf with an explicit lane descriptor.
func MinOfDesc[T lane.Lanes](d lane.Desc[T], src []T) (T, error) {
	var zero T
	if err := checkDesc(d); err != nil {
		return zero, err
	}
	n := len(src)
	if n == 0 {
		return zero, errors.Wrap(ErrPrecondition, "min of an empty batch")
	}

	w := d.Lanes()
	i := 0
	acc := src[0]
	if n >= w {
		vacc := lane.Load(src[:w])
		i = w
		for ; i+w <= n; i += w {
			vacc = lane.Min(vacc, lane.Load(src[i:i+w]))
		}
		acc = lane.ReduceMin(vacc)
	} else {
		i = 1
	}
	for ; i < n; i++ {
		if src[i] < acc {
			acc = src[i]
		}
	}
	return acc, nil
}

// MaxOf returns the largest element of src. An empty batch is a
// precondition error.
func MaxOf[T lane.Lanes](src []T) (T, error) {
	return MaxOfDesc(lane.DescOf[T](), src)
}

// MaxOfDesc is MaxOf with an explicit lane descriptor.
func MaxOfDesc[T lane.Lanes](d lane.Desc[T], src []T) (T, error) {
	var zero T
	if err := checkDesc(d); err != nil {
		return zero, err
	}
	n := len(src)
	if n == 0 {
		return zero, errors.Wrap(ErrPrecondition, "max of an empty batch")
	}

	w := d.Lanes()
	i := 0
	acc := src[0]
	if n >= w {
		vacc := lane.Load(src[:w])
		i = w
		for ; i+w <= n; i += w {
			vacc = lane.Max(vacc, lane.Load(src[i:i+w]))
		}
		acc = lane.ReduceMax(vacc)
	} else {
		i = 1
	}
	for ; i < n; i++ {
		if src[i] > acc {
			acc = src[i]
		}
	}
	return acc, nil
}
