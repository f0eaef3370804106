package lane

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	a := Load([]float32{1, 5, 3, 7})
	b := Load([]float32{1, 2, 3, 9})

	tests := []struct {
		name string
		mask Mask[float32]
		want []bool
	}{
		{"equal", Equal(a, b), []bool{true, false, true, false}},
		{"not equal", NotEqual(a, b), []bool{false, true, false, true}},
		{"less", Less(a, b), []bool{false, false, false, true}},
		{"less equal", LessEqual(a, b), []bool{true, false, true, true}},
		{"greater", Greater(a, b), []bool{false, true, false, false}},
		{"greater equal", GreaterEqual(a, b), []bool{true, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.mask.NumLanes() && i < len(tt.want); i++ {
				if tt.mask.Bit(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, tt.mask.Bit(i), tt.want[i])
				}
			}
		})
	}
}

func TestCompareExtent(t *testing.T) {
	a := Vec[int32]{data: []int32{1, 2, 3, 4}}
	b := Vec[int32]{data: []int32{1, 2}}
	mask := Equal(a, b)

	if mask.NumLanes() != 2 {
		t.Errorf("mask extent: got %d, want 2 (shorter operand)", mask.NumLanes())
	}
}

func TestMaskQueries(t *testing.T) {
	m := MaskFrom[float32]([]bool{true, false, true, true})

	if m.AllTrue() {
		t.Error("AllTrue: got true for mixed mask")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue: got false for mixed mask")
	}
	if m.CountTrue() != 3 {
		t.Errorf("CountTrue: got %d, want 3", m.CountTrue())
	}
	if m.Bit(-1) || m.Bit(4) {
		t.Error("Bit: out-of-range lanes must be false")
	}
}

func TestFirstN(t *testing.T) {
	lanes := MaxLanes[float32]()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"none", 0, 0},
		{"negative", -3, 0},
		{"some", 2, 2},
		{"all", lanes, lanes},
		{"beyond", lanes + 5, lanes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FirstN[float32](tt.n)
			if m.NumLanes() != lanes {
				t.Fatalf("FirstN mask extent: got %d, want %d", m.NumLanes(), lanes)
			}
			if m.CountTrue() != tt.want {
				t.Errorf("CountTrue: got %d, want %d", m.CountTrue(), tt.want)
			}
			for i := 0; i < tt.want; i++ {
				if !m.Bit(i) {
					t.Errorf("lane %d: want true", i)
				}
			}
			for i := tt.want; i < lanes; i++ {
				if m.Bit(i) {
					t.Errorf("lane %d: want false", i)
				}
			}
		})
	}
}

func TestMaskCombinators(t *testing.T) {
	a := MaskFrom[int32]([]bool{true, true, false, false})
	b := MaskFrom[int32]([]bool{true, false, true, false})

	tests := []struct {
		name string
		mask Mask[int32]
		want []bool
	}{
		{"and", MaskAnd(a, b), []bool{true, false, false, false}},
		{"or", MaskOr(a, b), []bool{true, true, true, false}},
		{"xor", MaskXor(a, b), []bool{false, true, true, false}},
		{"not", MaskNot(a), []bool{false, false, true, true}},
		{"andnot", MaskAndNot(a, b), []bool{false, true, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if tt.mask.Bit(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, tt.mask.Bit(i), tt.want[i])
				}
			}
		})
	}
}

func TestIfThenElse(t *testing.T) {
	mask := MaskFrom[float32]([]bool{true, false, true, false})
	a := Vec[float32]{data: []float32{1, 2, 3, 4}}
	b := Vec[float32]{data: []float32{10, 20, 30, 40}}

	result := IfThenElse(mask, a, b)
	want := []float32{1, 20, 3, 40}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestIfThenElseZero(t *testing.T) {
	mask := MaskFrom[int32]([]bool{false, true, false, true})
	a := Vec[int32]{data: []int32{5, 6, 7, 8}}

	result := IfThenElseZero(mask, a)
	want := []int32{0, 6, 0, 8}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElseZero: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestMaskLoadStore(t *testing.T) {
	mask := MaskFrom[float32]([]bool{true, false, true, false})

	v := MaskLoad(mask, []float32{1, 2, 3, 4})
	want := []float32{1, 0, 3, 0}
	for i := range want {
		if v.data[i] != want[i] {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.data[i], want[i])
		}
	}

	dst := []float32{9, 9, 9, 9}
	MaskStore(mask, Vec[float32]{data: []float32{1, 2, 3, 4}}, dst)
	wantDst := []float32{1, 9, 3, 9}
	for i := range wantDst {
		if dst[i] != wantDst[i] {
			t.Errorf("MaskStore: element %d: got %v, want %v", i, dst[i], wantDst[i])
		}
	}
}

func TestBlendedStore(t *testing.T) {
	t.Run("mixed mask", func(t *testing.T) {
		mask := MaskFrom[float32]([]bool{true, false, false, true})
		v := Vec[float32]{data: []float32{1, 2, 3, 4}}
		dst := []float32{100, 200, 300, 400}

		BlendedStore(v, mask, dst)
		want := []float32{1, 200, 300, 4}
		for i := range want {
			if dst[i] != want[i] {
				t.Errorf("element %d: got %v, want %v", i, dst[i], want[i])
			}
		}
	})

	t.Run("deselected lanes keep bits", func(t *testing.T) {
		// A NaN payload only survives if the lane is truly untouched.
		payload := math.Float32frombits(0x7fc00123)
		mask := MaskFrom[float32]([]bool{false, true})
		v := Vec[float32]{data: []float32{5, 6}}
		dst := []float32{payload, 0}

		BlendedStore(v, mask, dst)
		if math.Float32bits(dst[0]) != 0x7fc00123 {
			t.Errorf("lane 0 bits changed: got %#x", math.Float32bits(dst[0]))
		}
		if dst[1] != 6 {
			t.Errorf("lane 1: got %v, want 6", dst[1])
		}
	})

	t.Run("all false mask", func(t *testing.T) {
		mask := MaskFrom[int32]([]bool{false, false, false, false})
		v := Vec[int32]{data: []int32{1, 2, 3, 4}}
		dst := []int32{7, 8, 9, 10}

		BlendedStore(v, mask, dst)
		want := []int32{7, 8, 9, 10}
		for i := range want {
			if dst[i] != want[i] {
				t.Errorf("element %d: got %v, want %v", i, dst[i], want[i])
			}
		}
	})
}
