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

// Package buffer allocates fixed-capacity numeric arrays whose base
// address satisfies a requested byte alignment, as vector load/store
// paths and cache-line tiling expect.
//
// A Buffer is allocated once, never resized, and released exactly once:
//
//	buf, err := buffer.Alloc[float32](1024, 0) // 0 = register width
//	if err != nil {
//		return err
//	}
//	defer buf.Release()
//	data := buf.Data()
//
// Accessing a Buffer after Release, or releasing twice, violates the
// caller contract; the engine does not guard against it at runtime.
package buffer

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-lanes/lane"
)

// ErrAllocation is the kind for every allocation failure Alloc can
// detect: alignment not a power of two, negative count, or byte-size
// overflow. Out-of-memory aborts the process inside make and cannot be
// reported as an error in Go. Test with errors.Is.
var ErrAllocation = errors.New("buffer allocation")

// Buffer owns a block of T elements starting at an address that is a
// multiple of its alignment. The alignment invariant holds for the
// buffer's whole lifetime because the backing array is pinned by raw.
type Buffer[T lane.Lanes] struct {
	data      []T
	raw       []byte
	alignment int
}

// Alloc allocates count elements of T aligned to the given byte boundary.
// alignment 0 selects the active vector register width. The returned
// buffer's contents are zeroed.
func Alloc[T lane.Lanes](count, alignment int) (*Buffer[T], error) {
	if alignment == 0 {
		alignment = lane.Width()
	}
	if alignment < 0 || alignment&(alignment-1) != 0 {
		return nil, errors.Wrapf(ErrAllocation, "alignment %d is not a power of two", alignment)
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative element count %d", count)
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))
	if count > (math.MaxInt-alignment)/esize {
		return nil, errors.Wrapf(ErrAllocation, "%d elements of %d bytes overflows", count, esize)
	}

	// Over-allocate by the alignment and advance to the first aligned
	// address inside the block.
	raw := make([]byte, count*esize+alignment)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := (uintptr(alignment) - addr&uintptr(alignment-1)) & uintptr(alignment-1)

	b := &Buffer[T]{raw: raw, alignment: alignment}
	if count > 0 {
		b.data = unsafe.Slice((*T)(unsafe.Pointer(&raw[offset])), count)
	}
	return b, nil
}

// Release invalidates the buffer and drops its backing memory so the
// garbage collector can reclaim it. Exactly once per buffer.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.raw = nil
}

// Data returns the aligned element view. Nil after Release.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the element count.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Alignment returns the byte boundary the buffer was allocated for.
func (b *Buffer[T]) Alignment() int {
	return b.alignment
}

// Aligned reports whether the buffer's base address is a multiple of the
// given byte boundary. Empty or released buffers report false.
func (b *Buffer[T]) Aligned(alignment int) bool {
	if len(b.data) == 0 || alignment <= 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&b.data[0]))
	return addr%uintptr(alignment) == 0
}
