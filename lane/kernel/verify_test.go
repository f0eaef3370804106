package kernel

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lane"
)

func TestVerifyStockKernels(t *testing.T) {
	src := make([]float32, 67)
	for i := range src {
		src[i] = float32(i)*0.75 - 20
	}

	assert.NoError(t, Verify(src, ClampKernel[float32](-10, 10), 0))
	assert.NoError(t, Verify(src, ScaleKernel[float32](2.5), 0))

	pos := make([]float32, 67)
	for i := range pos {
		pos[i] = float32(i) * 0.5
	}
	assert.NoError(t, Verify(pos, SqrtKernel[float32](), 0))
}

func TestVerifyIntegerKernelExact(t *testing.T) {
	src := make([]int32, 50)
	for i := range src {
		src[i] = int32(i) - 25
	}
	assert.NoError(t, Verify(src, ScaleKernel[int32](3), 0))
}

func TestVerifyNaNAgrees(t *testing.T) {
	src := []float32{-1, -4, 9, -16}
	assert.NoError(t, Verify(src, SqrtKernel[float32](), 0))
}

func TestVerifyCatchesMismatch(t *testing.T) {
	skewed, err := New("skewed",
		func(v lane.Vec[float32]) lane.Vec[float32] { return lane.Add(v, lane.Set[float32](1)) },
		func(x float32) float32 { return x },
	)
	require.NoError(t, err)

	src := make([]float32, lane.MaxLanes[float32]())
	err = Verify(src, skewed, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch), "got %v", err)
	assert.ErrorContains(t, err, "skewed")
	assert.ErrorContains(t, err, "at 0")
}

func TestVerifyTolerance(t *testing.T) {
	jittered, err := New("jittered",
		func(v lane.Vec[float32]) lane.Vec[float32] { return lane.Add(v, lane.Set[float32](5e-7)) },
		func(x float32) float32 { return x },
	)
	require.NoError(t, err)

	src := make([]float32, lane.MaxLanes[float32]())
	for i := range src {
		src[i] = float32(i + 1)
	}
	err = Verify(src, jittered, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch), "got %v", err)

	assert.NoError(t, Verify(src, jittered, 1e-6))
}

func TestVerify2(t *testing.T) {
	n := 45
	x := make([]float32, n)
	y := make([]float32, n)
	for i := range x {
		x[i] = float32(i) * 0.3
		y[i] = float32(n-i) * 0.7
	}
	assert.NoError(t, Verify2(x, y, AXPYKernel[float32](1.25), 0))
	assert.NoError(t, Verify2(x, y, AddKernel[float32](), 0))

	a := make([]uint8, 64)
	b := make([]uint8, 64)
	for i := range a {
		a[i] = uint8(i * 4)
		b[i] = uint8(255 - i*2)
	}
	assert.NoError(t, Verify2(a, b, SaturatedAddKernel[uint8](), 0))
}

func TestVerify2LengthMismatch(t *testing.T) {
	err := Verify2(make([]float32, 4), make([]float32, 5), AddKernel[float32](), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition), "got %v", err)
}
