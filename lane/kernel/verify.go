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

	"github.com/pkg/errors"

	"github.com/ajroetker/go-lanes/lane"
)

// ErrMismatch reports a kernel whose vector half disagrees with its
// scalar half. Test with errors.Is.
var ErrMismatch = errors.New("kernel mismatch")

// within reports whether two results agree. Exact matches and NaN on
// both sides always agree; with tol > 0 an absolute difference up to
// tol also agrees.
func within[T lane.Lanes](a, b T, tol float64) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	if tol <= 0 {
		return false
	}
	return math.Abs(fa-fb) <= tol
}

// Verify runs k element by element through its scalar half and in lane
// groups through its vector half, then compares the two outputs. The
// first disagreement beyond tol comes back as an ErrMismatch naming the
// index and both values. Pass tol 0 to require exact agreement, as
// integer kernels should.
func Verify[T lane.Lanes](src []T, k Kernel[T], tol float64) error {
	if err := k.validate(); err != nil {
		return err
	}

	want := make([]T, len(src))
	for i, x := range src {
		want[i] = k.Scalar(x)
	}
	got := make([]T, len(src))
	if err := Apply(got, src, k); err != nil {
		return err
	}

	for i := range src {
		if !within(want[i], got[i], tol) {
			return errors.Wrapf(ErrMismatch, "kernel %q at %d: scalar %v, vector %v", k.Name, i, want[i], got[i])
		}
	}
	return nil
}

// Verify2 is Verify for a binary kernel. Lengths must match.
func Verify2[T lane.Lanes](a, b []T, k Kernel2[T], tol float64) error {
	if err := k.validate(); err != nil {
		return err
	}
	if err := checkLen("second input", b, len(a)); err != nil {
		return err
	}

	want := make([]T, len(a))
	for i := range a {
		want[i] = k.Scalar(a[i], b[i])
	}
	got := make([]T, len(a))
	if err := Apply2(got, a, b, k); err != nil {
		return err
	}

	for i := range a {
		if !within(want[i], got[i], tol) {
			return errors.Wrapf(ErrMismatch, "kernel %q at %d: scalar %v, vector %v", k.Name, i, want[i], got[i])
		}
	}
	return nil
}
