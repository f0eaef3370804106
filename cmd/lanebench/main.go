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

// Command lanebench checks stock kernels against their scalar references
// and times both paths over aligned batches.
//
// Usage:
//
//	lanebench                        # all scenarios, 4096 elements
//	lanebench -run clamp,dot -size 65536 -iters 200
//	lanebench -workers 8 -run dot    # adds a parallel dot timing
//	LANES_LEVEL=sse2 lanebench       # force a narrower lane level
//
// Each scenario first proves the vector path agrees with the scalar
// reference, then reports wall-clock times and the speedup.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-lanes/lane"
	"github.com/ajroetker/go-lanes/lane/bench"
	"github.com/ajroetker/go-lanes/lane/buffer"
	"github.com/ajroetker/go-lanes/lane/kernel"
	"github.com/ajroetker/go-lanes/lane/workpool"
)

var (
	size    = flag.Int("size", 4096, "Batch length in elements")
	iters   = flag.Int("iters", 1000, "Timed iterations per path")
	workers = flag.Int("workers", 0, "Pool size for the parallel dot timing (0 disables it)")
	run     = flag.String("run", "all", "Comma-separated scenarios (clamp,axpy,dot) or 'all'")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *size < 1 {
		fmt.Fprintf(os.Stderr, "Error: -size must be at least 1\n")
		os.Exit(1)
	}
	if *iters < 1 {
		fmt.Fprintf(os.Stderr, "Error: -iters must be at least 1\n")
		os.Exit(1)
	}

	fmt.Printf("lane level %s, %d-byte groups, %d float32 lanes\n",
		lane.Active(), lane.Width(), lane.MaxLanes[float32]())
	fmt.Printf("batch of %s elements, %s iterations per path\n\n",
		humanize.Comma(int64(*size)), humanize.Comma(int64(*iters)))

	scenarios := map[string]func() error{
		"clamp": clampScenario,
		"axpy":  axpyScenario,
		"dot":   dotScenario,
	}
	order := []string{"clamp", "axpy", "dot"}

	selected := parseRun(*run, order)
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid scenarios in %q (have %s)\n", *run, strings.Join(order, ","))
		os.Exit(1)
	}

	for _, name := range selected {
		if err := scenarios[name](); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func parseRun(s string, order []string) []string {
	if s == "all" {
		return order
	}
	known := map[string]bool{}
	for _, name := range order {
		known[name] = true
	}
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if known[p] {
			result = append(result, p)
		}
	}
	return result
}

// alloc returns a lane-aligned float32 batch and its release function.
func alloc(n int) (*buffer.Buffer[float32], []float32, error) {
	buf, err := buffer.Alloc[float32](n, 0)
	if err != nil {
		return nil, nil, err
	}
	return buf, buf.Data(), nil
}

func clampScenario() error {
	buf, src, err := alloc(*size)
	if err != nil {
		return err
	}
	defer buf.Release()
	out, dst, err := alloc(*size)
	if err != nil {
		return err
	}
	defer out.Release()

	for i := range src {
		src[i] = float32(i%101) - 50
	}
	k := kernel.ClampKernel[float32](-20, 20)

	if err := kernel.Verify(src, k, 0); err != nil {
		return err
	}
	fmt.Println("clamp [-20, 20]: scalar and vector paths agree")

	r, err := bench.Compare("clamp", *iters,
		func() {
			for i, x := range src {
				dst[i] = k.Scalar(x)
			}
		},
		func() {
			if err := kernel.Apply(dst, src, k); err != nil {
				panic(err)
			}
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("  %s\n\n", r)
	return nil
}

func axpyScenario() error {
	xb, x, err := alloc(*size)
	if err != nil {
		return err
	}
	defer xb.Release()
	yb, y, err := alloc(*size)
	if err != nil {
		return err
	}
	defer yb.Release()
	ob, dst, err := alloc(*size)
	if err != nil {
		return err
	}
	defer ob.Release()

	for i := range x {
		x[i] = float32(i%97) * 0.25
		y[i] = float32(i%89) * 0.5
	}
	const alpha = float32(1.5)
	k := kernel.AXPYKernel(alpha)

	if err := kernel.Verify2(x, y, k, 0); err != nil {
		return err
	}
	fmt.Printf("axpy alpha=%.1f: scalar and vector paths agree\n", alpha)

	r, err := bench.Compare("axpy", *iters,
		func() {
			for i := range x {
				dst[i] = k.Scalar(x[i], y[i])
			}
		},
		func() {
			if err := kernel.Apply2(dst, x, y, k); err != nil {
				panic(err)
			}
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("  %s\n\n", r)
	return nil
}

func dotScenario() error {
	ab, a, err := alloc(*size)
	if err != nil {
		return err
	}
	defer ab.Release()
	bb, b, err := alloc(*size)
	if err != nil {
		return err
	}
	defer bb.Release()

	for i := range a {
		a[i] = float32(i%31) * 0.0625
		b[i] = float32(i%29)*0.125 - 1
	}

	var scalar float64
	for i := range a {
		scalar += float64(a[i]) * float64(b[i])
	}
	vector, err := kernel.Dot(a, b)
	if err != nil {
		return err
	}
	if rel := relDiff(scalar, float64(vector)); rel > 1e-4 {
		return fmt.Errorf("dot disagrees: scalar %g, vector %g (relative %g)", scalar, vector, rel)
	}
	fmt.Printf("dot: scalar %.4f, vector %.4f agree within 1e-4\n", scalar, vector)

	r, err := bench.Compare("dot", *iters,
		func() {
			var acc float32
			for i := range a {
				acc += a[i] * b[i]
			}
			sink = acc
		},
		func() {
			v, err := kernel.Dot(a, b)
			if err != nil {
				panic(err)
			}
			sink = v
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("  %s\n", r)

	if *workers > 0 {
		pool := workpool.New(*workers)
		defer pool.Close()

		p, err := bench.Compare(fmt.Sprintf("dot %d workers", pool.NumWorkers()), *iters,
			func() {
				v, err := kernel.Dot(a, b)
				if err != nil {
					panic(err)
				}
				sink = v
			},
			func() {
				v, err := kernel.DotPar(pool, a, b)
				if err != nil {
					panic(err)
				}
				sink = v
			},
		)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()
	return nil
}

var sink float32

func relDiff(want, got float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(want-got) / math.Abs(want)
}
