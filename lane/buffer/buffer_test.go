package buffer

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/ajroetker/go-lanes/lane"
)

func TestAlloc(t *testing.T) {
	counts := []int{1, 7, 16, 17, 63, 64, 65, 1024}
	alignments := []int{16, 32, 64, 128}

	for _, alignment := range alignments {
		for _, count := range counts {
			t.Run(fmt.Sprintf("count=%d/align=%d", count, alignment), func(t *testing.T) {
				buf, err := Alloc[float32](count, alignment)
				require.NoError(t, err)
				defer buf.Release()

				assert.Equal(t, count, buf.Len())
				assert.Equal(t, alignment, buf.Alignment())

				addr := uintptr(unsafe.Pointer(&buf.Data()[0]))
				assert.Equal(t, uintptr(0), addr%uintptr(alignment),
					"address %#x not aligned to %d", addr, alignment)
				assert.True(t, buf.Aligned(alignment))

				for i, x := range buf.Data() {
					assert.Zero(t, x, "element %d not zeroed", i)
				}
			})
		}
	}
}

func TestAllocDefaultAlignment(t *testing.T) {
	buf, err := Alloc[float64](128, 0)
	require.NoError(t, err)
	defer buf.Release()

	assert.Equal(t, lane.Width(), buf.Alignment())
	assert.True(t, buf.Aligned(lane.Width()))
}

func TestAllocZeroCount(t *testing.T) {
	buf, err := Alloc[int32](0, 64)
	require.NoError(t, err)
	defer buf.Release()

	assert.Equal(t, 0, buf.Len())
	assert.Nil(t, buf.Data())
}

func TestAllocErrors(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		alignment int
	}{
		{"alignment not power of two", 16, 24},
		{"alignment three", 16, 3},
		{"negative alignment", 16, -32},
		{"negative count", -1, 32},
		{"size overflow", math.MaxInt / 4, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Alloc[float32](tt.count, tt.alignment)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAllocation), "error kind: %v", err)
			assert.Nil(t, buf)
		})
	}
}

func TestRelease(t *testing.T) {
	buf, err := Alloc[float32](256, 32)
	require.NoError(t, err)

	buf.Data()[0] = 42
	buf.Release()

	assert.Nil(t, buf.Data())
	assert.Equal(t, 0, buf.Len())
	assert.False(t, buf.Aligned(32))
}

func TestBufferWriteRead(t *testing.T) {
	buf, err := Alloc[int16](100, 64)
	require.NoError(t, err)
	defer buf.Release()

	data := buf.Data()
	for i := range data {
		data[i] = int16(i * 3)
	}
	for i := range data {
		require.Equal(t, int16(i*3), data[i], "element %d", i)
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	// Exactly representable halfs survive the round trip unchanged.
	values := []float32{0, 1, -1, 1.5, -2.25, 0.5, 65504}

	halves := make([]float16.Float16, len(values))
	n := ToFloat16(halves, values)
	require.Equal(t, len(values), n)

	back := make([]float32, len(values))
	n = FromFloat16(back, halves)
	require.Equal(t, len(values), n)
	assert.Equal(t, values, back)
}

func TestToFloat16Overflow(t *testing.T) {
	halves := make([]float16.Float16, 1)
	ToFloat16(halves, []float32{1e9})
	assert.True(t, math.IsInf(float64(halves[0].Float32()), 1))
}

func TestAllocFromFloat16(t *testing.T) {
	src := []float16.Float16{
		float16.Fromfloat32(1.5),
		float16.Fromfloat32(-3.0),
		float16.Fromfloat32(0.25),
	}
	buf, err := AllocFromFloat16(src, 0)
	require.NoError(t, err)
	defer buf.Release()

	assert.True(t, buf.Aligned(lane.Width()))
	assert.Equal(t, []float32{1.5, -3.0, 0.25}, buf.Data())
}

func BenchmarkAlloc(b *testing.B) {
	counts := []int{64, 256, 1024, 4096}
	for _, count := range counts {
		b.Run(fmt.Sprintf("count=%d", count), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf, err := Alloc[float32](count, 64)
				if err != nil {
					b.Fatal(err)
				}
				buf.Release()
			}
		})
	}
}
