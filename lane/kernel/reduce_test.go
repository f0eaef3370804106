package kernel

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lane"
)

func TestSumIntegers(t *testing.T) {
	src := make([]int32, 100)
	for i := range src {
		src[i] = int32(i + 1)
	}
	got, err := Sum(src)
	require.NoError(t, err)
	assert.Equal(t, int32(5050), got)
}

func TestSumEmpty(t *testing.T) {
	got, err := Sum[float32](nil)
	require.NoError(t, err)
	assert.Equal(t, float32(0), got)
}

func TestSumDeterministic(t *testing.T) {
	src := make([]float32, 1000)
	for i := range src {
		src[i] = float32(i%97) * 0.013
	}
	first, err := Sum(src)
	require.NoError(t, err)
	for range 10 {
		again, err := Sum(src)
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(first), math.Float32bits(again))
	}
}

func TestSumTailLengths(t *testing.T) {
	w := lane.MaxLanes[float64]()
	for _, n := range []int{1, w - 1, w, w + 1, 3*w + 2} {
		if n <= 0 {
			continue
		}
		src := make([]float64, n)
		for i := range src {
			src[i] = 1
		}
		got, err := Sum(src)
		require.NoError(t, err)
		assert.Equal(t, float64(n), got, "n=%d", n)
	}
}

func TestDotKnownValue(t *testing.T) {
	a := []float32{0.5, -0.3, 0.8}
	b := []float32{0.2, 0.7, -0.4}

	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.InDelta(t, -0.43, got, 1e-6)

	var scalar float32
	for i := range a {
		scalar += a[i] * b[i]
	}
	assert.InDelta(t, scalar, got, 1e-6)
}

func TestDotLong(t *testing.T) {
	const n = 1024
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i%17) * 0.25
		b[i] = float32(i%13)*0.5 - 1.5
	}

	var want float64
	for i := range a {
		want += float64(a[i]) * float64(b[i])
	}

	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.InEpsilon(t, want, float64(got), 1e-4)
}

func TestDotExact(t *testing.T) {
	const n = 1024
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = 0.5
		b[i] = 2
	}
	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, float32(n), got)
}

func TestDotAllZero(t *testing.T) {
	a := make([]float32, 129)
	b := make([]float32, 129)
	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), math.Float32bits(got))
}

func TestDotLengthMismatch(t *testing.T) {
	_, err := Dot(make([]float32, 8), make([]float32, 9))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition), "got %v", err)
}

func TestMinMaxOf(t *testing.T) {
	src := []float32{3, -7, 12, 0.5, -7.5, 11, 2, -1, 6}

	lo, err := MinOf(src)
	require.NoError(t, err)
	assert.Equal(t, float32(-7.5), lo)

	hi, err := MaxOf(src)
	require.NoError(t, err)
	assert.Equal(t, float32(12), hi)
}

func TestMinMaxOfSingle(t *testing.T) {
	lo, err := MinOf([]int32{42})
	require.NoError(t, err)
	assert.Equal(t, int32(42), lo)

	hi, err := MaxOf([]int32{42})
	require.NoError(t, err)
	assert.Equal(t, int32(42), hi)
}

func TestMinMaxOfEmpty(t *testing.T) {
	_, err := MinOf[float32](nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition), "got %v", err)

	_, err = MaxOf[float32](nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition), "got %v", err)
}

func TestReduceCustom(t *testing.T) {
	product := Reducer[float64]{
		Name:   "product",
		Init:   1,
		Vector: lane.Mul[float64],
		Scalar: func(acc, x float64) float64 { return acc * x },
		Collapse: func(v lane.Vec[float64]) float64 {
			acc := 1.0
			for _, x := range v.Data() {
				acc *= x
			}
			return acc
		},
	}

	src := []float64{1, 2, 3, 4, 5, 6, 7}
	got, err := Reduce(src, product)
	require.NoError(t, err)
	assert.Equal(t, float64(5040), got)
}

func TestReduceRejectsPartialReducer(t *testing.T) {
	_, err := Reduce([]float32{1}, Reducer[float32]{Name: "half", Scalar: func(acc, x float32) float32 { return acc + x }})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrecondition), "got %v", err)
}

func TestReduceDescFixedWidth(t *testing.T) {
	src := make([]int64, 11)
	for i := range src {
		src[i] = int64(i + 1)
	}
	got, err := SumDesc(lane.Fixed[int64](2), src)
	require.NoError(t, err)
	assert.Equal(t, int64(66), got)
}

func BenchmarkDot1024(b *testing.B) {
	a := make([]float32, 1024)
	c := make([]float32, 1024)
	for i := range a {
		a[i] = float32(i%17) * 0.25
		c[i] = float32(i%13)*0.5 - 1.5
	}
	b.ResetTimer()
	for range b.N {
		if _, err := Dot(a, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDot1024Scalar(b *testing.B) {
	a := make([]float32, 1024)
	c := make([]float32, 1024)
	for i := range a {
		a[i] = float32(i%17) * 0.25
		c[i] = float32(i%13)*0.5 - 1.5
	}
	b.ResetTimer()
	for range b.N {
		var acc float32
		for i := range a {
			acc += a[i] * c[i]
		}
		_ = acc
	}
}
