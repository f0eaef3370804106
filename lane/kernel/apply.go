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

// The batch loop is written once here, parameterized by the kernel pair:
// full lane groups through the vector half, then the remainder one
// element at a time through the scalar half. N = 0 is a no-op and N < W
// runs entirely scalar. Non-finite values pass through untouched; what
// they mean is the kernel's concern.

// Apply runs a unary kernel over src into dst using the native lane
// count. dst may be src itself for in-place operation; lengths must
// match. Validation happens before the first write.
func Apply[T lane.Lanes](dst, src []T, k Kernel[T]) error {
	return ApplyDesc(lane.DescOf[T](), dst, src, k)
}

// ApplyDesc is Apply with an explicit lane descriptor.
func ApplyDesc[T lane.Lanes](d lane.Desc[T], dst, src []T, k Kernel[T]) error {
	if err := k.validate(); err != nil {
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
		lane.Store(k.Vector(lane.Load(src[i:i+w])), dst[i:i+w])
	}
	for ; i < n; i++ {
		dst[i] = k.Scalar(src[i])
	}
	return nil
}

// Apply2 runs a binary kernel over a and b into dst using the native
// lane count. dst may alias either input; all lengths must match.
func Apply2[T lane.Lanes](dst, a, b []T, k Kernel2[T]) error {
	return Apply2Desc(lane.DescOf[T](), dst, a, b, k)
}

// Apply2Desc is Apply2 with an explicit lane descriptor.
func Apply2Desc[T lane.Lanes](d lane.Desc[T], dst, a, b []T, k Kernel2[T]) error {
	if err := k.validate(); err != nil {
		return err
	}
	if err := checkDesc(d); err != nil {
		return err
	}
	if err := checkLen("second input", b, len(a)); err != nil {
		return err
	}
	if err := checkLen("output", dst, len(a)); err != nil {
		return err
	}

	n := len(a)
	w := d.Lanes()
	i := 0
	for ; i+w <= n; i += w {
		va := lane.Load(a[i : i+w])
		vb := lane.Load(b[i : i+w])
		lane.Store(k.Vector(va, vb), dst[i:i+w])
	}
	for ; i < n; i++ {
		dst[i] = k.Scalar(a[i], b[i])
	}
	return nil
}

// Apply3 runs a ternary kernel over a, b and c into dst using the native
// lane count. dst may alias any input; all lengths must match.
func Apply3[T lane.Lanes](dst, a, b, c []T, k Kernel3[T]) error {
	return Apply3Desc(lane.DescOf[T](), dst, a, b, c, k)
}

// Apply3Desc is Apply3 with an explicit lane descriptor.
func Apply3Desc[T lane.Lanes](d lane.Desc[T], dst, a, b, c []T, k Kernel3[T]) error {
	if err := k.validate(); err != nil {
		return err
	}
	if err := checkDesc(d); err != nil {
		return err
	}
	if err := checkLen("second input", b, len(a)); err != nil {
		return err
	}
	if err := checkLen("third input", c, len(a)); err != nil {
		return err
	}
	if err := checkLen("output", dst, len(a)); err != nil {
		return err
	}

	n := len(a)
	w := d.Lanes()
	i := 0
	for ; i+w <= n; i += w {
		va := lane.Load(a[i : i+w])
		vb := lane.Load(b[i : i+w])
		vc := lane.Load(c[i : i+w])
		lane.Store(k.Vector(va, vb, vc), dst[i:i+w])
	}
	for ; i < n; i++ {
		dst[i] = k.Scalar(a[i], b[i], c[i])
	}
	return nil
}
