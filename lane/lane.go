// Package lane provides the lane-group primitives for batch numeric kernels:
// portable vectors, per-lane masks, and a capability check that sizes lane
// groups to the hardware vector register width (AVX-512, AVX2, SSE2, NEON)
// with a scalar fallback.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/lane"
//
//	// Load one lane group from each input
//	a := lane.Load(data1)
//	b := lane.Load(data2)
//
//	// Operate on all lanes at once
//	sum := lane.Add(a, b)
//
//	// Store the group back
//	lane.Store(sum, output)
//
// Vectors are fixed-extent values sized by the detected register width;
// batch iteration over whole arrays lives in the kernel subpackage.
package lane

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types that fit in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is one lane group: a fixed-extent run of elements processed by a
// single vector operation. Its extent is at most Desc's lane count; loads
// from short slices produce short groups, which every operation respects.
//
// Create with Load, Set, Iota, or Zero, not with a literal.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes held by this group.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the lanes as a slice. Mutating the slice mutates the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the group's lanes to dst, truncating to the shorter extent.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask is a per-lane boolean selector. Comparisons produce masks; blend,
// select and masked load/store consume them. Each lane is wholly true or
// wholly false, and a mask's extent equals the extent of the operation
// that produced it.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes covered by this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Bit reports whether lane i is selected. Out-of-range lanes are false.
func (m Mask[T]) Bit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// AllTrue reports whether every lane is selected. An empty mask is all-true.
func (m Mask[T]) AllTrue() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is selected.
func (m Mask[T]) AnyTrue() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// CountTrue returns the number of selected lanes.
func (m Mask[T]) CountTrue() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Bits returns the mask as a bool slice. Mutating the slice mutates the mask.
func (m Mask[T]) Bits() []bool {
	return m.bits
}
