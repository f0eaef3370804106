package lane

import (
	"fmt"
	"unsafe"
)

// Desc describes one lane group for element type T: how many elements fit
// in a vector register at the active capability level, and the register
// width in bytes. Descriptors are immutable values derived once from the
// capability check; kernels are written against Desc.Lanes, never a
// hardware-specific literal.
type Desc[T Lanes] struct {
	lanes int
	width int
}

// DescOf returns the lane descriptor for T at the active level.
func DescOf[T Lanes]() Desc[T] {
	return Desc[T]{lanes: MaxLanes[T](), width: activeWidth}
}

// Fixed returns a descriptor with an explicit lane count, like a
// fixed-size vector tag. Batch drivers reject counts the active level
// cannot load in one group.
func Fixed[T Lanes](lanes int) Desc[T] {
	var zero T
	return Desc[T]{lanes: lanes, width: lanes * int(unsafe.Sizeof(zero))}
}

// Lanes returns the number of T elements per lane group.
func (d Desc[T]) Lanes() int {
	return d.lanes
}

// Width returns the register width in bytes.
func (d Desc[T]) Width() int {
	return d.width
}

// String returns a short form such as "8xfloat32".
func (d Desc[T]) String() string {
	var zero T
	return fmt.Sprintf("%dx%T", d.lanes, zero)
}

// Zero creates a group of d.Lanes() zero lanes. Drivers use it to seed
// reduction accumulators at the descriptor's width rather than the
// register's.
func (d Desc[T]) Zero() Vec[T] {
	return Vec[T]{data: make([]T, d.lanes)}
}

// Set creates a group of d.Lanes() lanes equal to value.
func (d Desc[T]) Set(value T) Vec[T] {
	data := make([]T, d.lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// MaxLanes returns how many elements of T fit in one vector register at
// the active capability level.
//
// For example, with AVX2 (32-byte registers):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - uint8: 32/1 = 32 lanes
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0
	}
	return activeWidth / size
}
