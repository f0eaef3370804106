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

import "github.com/ajroetker/go-lanes/lane"

// ApplyWhere runs a unary kernel over the elements of src selected by
// the predicate, writing results into dst. Deselected positions keep
// their prior dst bits exactly; the vector half still computes a full
// group and the blend discards the deselected lanes. With an all-true
// predicate the result matches Apply.
func ApplyWhere[T lane.Lanes](dst, src []T, p Predicate[T], k Kernel[T]) error {
	return ApplyWhereDesc(lane.DescOf[T](), dst, src, p, k)
}

// ApplyWhereDesc is ApplyWhere with an explicit lane descriptor.
func ApplyWhereDesc[T lane.Lanes](d lane.Desc[T], dst, src []T, p Predicate[T], k Kernel[T]) error {
	if err := k.validate(); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	if err := checkDesc(d); err != nil {
		return err
	}
	if err := checkLen("output", dst, len(src)); err != nil {
		return err
	}

	n := len(src)
	w := d.Lanes()
	i := 0
	for ; i+w <= n; i += w {
		v := lane.Load(src[i : i+w])
		m := p.Vector(v)
		lane.BlendedStore(k.Vector(v), m, dst[i:i+w])
	}
	for ; i < n; i++ {
		if p.Scalar(src[i]) {
			dst[i] = k.Scalar(src[i])
		}
	}
	return nil
}
