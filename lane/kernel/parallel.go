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
	"github.com/ajroetker/go-lanes/lane"
	"github.com/ajroetker/go-lanes/lane/workpool"
)

// Parallel drivers split the batch across a workpool. Partitions are
// group-aligned, so each worker runs the same vector-then-tail loop as
// the serial driver over its own range. Element-wise results are
// identical to the serial driver; reductions combine per-partition
// values in partition order, so a fixed pool size gives a fixed result.
// A nil pool runs serially.

// ApplyPar is Apply with the batch split across pool workers.
func ApplyPar[T lane.Lanes](p *workpool.Pool, dst, src []T, k Kernel[T]) error {
	if p == nil {
		return Apply(dst, src, k)
	}
	if err := k.validate(); err != nil {
		return err
	}
	if err := checkLen("output", dst, len(src)); err != nil {
		return err
	}

	w := lane.DescOf[T]().Lanes()
	p.Run(len(src), w, func(start, end int) {
		i := start
		for ; i+w <= end; i += w {
			lane.Store(k.Vector(lane.Load(src[i:i+w])), dst[i:i+w])
		}
		for ; i < end; i++ {
			dst[i] = k.Scalar(src[i])
		}
	})
	return nil
}

// Apply2Par is Apply2 with the batch split across pool workers.
func Apply2Par[T lane.Lanes](p *workpool.Pool, dst, a, b []T, k Kernel2[T]) error {
	if p == nil {
		return Apply2(dst, a, b, k)
	}
	if err := k.validate(); err != nil {
		return err
	}
	if err := checkLen("second input", b, len(a)); err != nil {
		return err
	}
	if err := checkLen("output", dst, len(a)); err != nil {
		return err
	}

	w := lane.DescOf[T]().Lanes()
	p.Run(len(a), w, func(start, end int) {
		i := start
		for ; i+w <= end; i += w {
			va := lane.Load(a[i : i+w])
			vb := lane.Load(b[i : i+w])
			lane.Store(k.Vector(va, vb), dst[i:i+w])
		}
		for ; i < end; i++ {
			dst[i] = k.Scalar(a[i], b[i])
		}
	})
	return nil
}

// ReducePar is Reduce with the batch split across pool workers. Each
// partition folds on its own, and the partial values combine in
// partition order through r.Scalar. r.Init must be a true identity,
// since idle partitions contribute it unchanged.
func ReducePar[T lane.Lanes](p *workpool.Pool, src []T, r Reducer[T]) (T, error) {
	if p == nil {
		return Reduce(src, r)
	}
	var zero T
	if err := r.validate(); err != nil {
		return zero, err
	}

	d := lane.DescOf[T]()
	w := d.Lanes()
	partials := make([]T, p.NumWorkers())
	for i := range partials {
		partials[i] = r.Init
	}
	p.RunParts(len(src), w, func(part, start, end int) {
		acc := r.Init
		i := start
		if end-start >= w {
			vacc := d.Set(r.Init)
			for ; i+w <= end; i += w {
				vacc = r.Vector(vacc, lane.Load(src[i:i+w]))
			}
			acc = r.Scalar(acc, r.Collapse(vacc))
		}
		for ; i < end; i++ {
			acc = r.Scalar(acc, src[i])
		}
		partials[part] = acc
	})

	acc := r.Init
	for _, v := range partials {
		acc = r.Scalar(acc, v)
	}
	return acc, nil
}

// SumPar adds up src across pool workers.
func SumPar[T lane.Lanes](p *workpool.Pool, src []T) (T, error) {
	return ReducePar(p, src, SumReducer[T]())
}

// DotPar computes the inner product of a and b across pool workers.
// Lengths must match. Per-partition products sum in partition order.
func DotPar[T lane.Floats](p *workpool.Pool, a, b []T) (T, error) {
	if p == nil {
		return Dot(a, b)
	}
	var zero T
	if err := checkLen("second input", b, len(a)); err != nil {
		return zero, err
	}

	d := lane.DescOf[T]()
	w := d.Lanes()
	partials := make([]T, p.NumWorkers())
	p.RunParts(len(a), w, func(part, start, end int) {
		var acc T
		i := start
		if end-start >= w {
			vacc := d.Zero()
			for ; i+w <= end; i += w {
				vacc = lane.FMA(lane.Load(a[i:i+w]), lane.Load(b[i:i+w]), vacc)
			}
			acc = lane.ReduceSum(vacc)
		}
		for ; i < end; i++ {
			acc += a[i] * b[i]
		}
		partials[part] = acc
	})

	var acc T
	for _, v := range partials {
		acc += v
	}
	return acc, nil
}
