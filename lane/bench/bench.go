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

// Package bench times a scalar implementation against its lane-parallel
// counterpart over a fixed iteration count. It exists for the quick
// wall-clock comparisons the example programs print; use go test -bench
// for anything rigorous.
package bench

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrPrecondition reports unusable benchmark setup. Test with errors.Is.
var ErrPrecondition = errors.New("benchmark precondition")

// Result holds one timed comparison.
type Result struct {
	Label      string
	Iterations int
	Scalar     time.Duration
	Vector     time.Duration
}

// ScalarMicros returns the per-iteration scalar time in microseconds.
func (r Result) ScalarMicros() float64 {
	return float64(r.Scalar.Nanoseconds()) / float64(r.Iterations) / 1e3
}

// VectorMicros returns the per-iteration vector time in microseconds.
func (r Result) VectorMicros() float64 {
	return float64(r.Vector.Nanoseconds()) / float64(r.Iterations) / 1e3
}

// Speedup returns how many times faster the vector path ran. Zero when
// the vector time is too small to measure.
func (r Result) Speedup() float64 {
	if r.Vector <= 0 {
		return 0
	}
	return float64(r.Scalar) / float64(r.Vector)
}

func (r Result) String() string {
	return fmt.Sprintf("%s: scalar %.1fµs, vector %.1fµs, %.2fx (%d iterations)",
		r.Label, r.ScalarMicros(), r.VectorMicros(), r.Speedup(), r.Iterations)
}

// Compare runs scalar and vector each iterations times and reports the
// wall-clock totals. Both run once untimed first to warm caches. The
// two functions must compute the same thing over the same data; Compare
// only times them.
func Compare(label string, iterations int, scalar, vector func()) (Result, error) {
	if iterations < 1 {
		return Result{}, errors.Wrapf(ErrPrecondition, "%s: %d iterations", label, iterations)
	}
	if scalar == nil || vector == nil {
		return Result{}, errors.Wrapf(ErrPrecondition, "%s: needs both functions", label)
	}

	scalar()
	vector()

	start := time.Now()
	for range iterations {
		scalar()
	}
	scalarTime := time.Since(start)

	start = time.Now()
	for range iterations {
		vector()
	}
	vectorTime := time.Since(start)

	r := Result{Label: label, Iterations: iterations, Scalar: scalarTime, Vector: vectorTime}
	klog.V(2).Infof("bench: %s", r)
	return r, nil
}
