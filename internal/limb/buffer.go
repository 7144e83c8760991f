// Package limb implements LimbBuffer, the mutable base-B digit array that
// backs decint.DecInt (B = 10^9); asciiint.AsciiInt keeps its digits in a
// plain byte slice instead. Limbs are stored big-endian: data[offset] is the
// most significant limb, data[offset+length-1] the least significant.
//
// Growth follows a doubling-allocation policy with headroom reuse, cheaply
// reusing the existing backing array when capacity already suffices,
// adapted to a two-sided offset/length window so carries can grow the
// most-significant side without reallocating the whole array.
package limb

import (
	"github.com/philippag/compint/compinterrors"
)

// MaxLimbs is the soft implementation limit near 2^31 limbs, used to fail
// fast on pathological
// requests instead of attempting a multi-exabyte allocation.
const MaxLimbs = 1 << 31

// Side selects which end of the logical window Expand grows.
type Side int

const (
	Left Side = iota
	Right
)

// Buffer is the mutable array of fixed-width non-negative limbs with a
// logical [offset, offset+length) window into data.
type Buffer struct {
	data   []uint64
	offset int
	length int
}

// New allocates a Buffer with the given logical length, all limbs zeroed,
// and some left headroom so a leading carry limb can be produced without an
// immediate reallocation.
func New(length int) *Buffer {
	if length < 1 {
		length = 1
	}
	cap := length + leftHeadroom(length)
	b := &Buffer{data: make([]uint64, cap), offset: cap - length, length: length}
	return b
}

// NewFromLimbs builds a Buffer that owns a copy of limbs (big-endian, most
// significant first), with the same headroom policy as New.
func NewFromLimbs(limbs []uint64) *Buffer {
	b := New(len(limbs))
	copy(b.data[b.offset:b.offset+b.length], limbs)
	return b
}

func leftHeadroom(length int) int {
	// a handful of spare limbs on the left covers the common case (a single
	// extra carry limb) without forcing a realloc on every add.
	if length < 4 {
		return 2
	}
	return length / 4
}

// Len returns the logical length (number of limbs in the window).
func (b *Buffer) Len() int { return b.length }

// Get returns the limb at logical index i (0 = most significant).
func (b *Buffer) Get(i int) uint64 {
	return b.data[b.offset+i]
}

// Set writes the limb at logical index i.
func (b *Buffer) Set(i int, v uint64) {
	b.data[b.offset+i] = v
}

// Slice returns the logical window as a slice sharing the underlying array.
// Callers that only read (e.g. Karatsuba views) may use this directly;
// callers that mutate must go through Set/ReserveLeft/ReserveRight so the
// offset/length bookkeeping stays correct.
func (b *Buffer) Slice() []uint64 {
	return b.data[b.offset : b.offset+b.length]
}

// Copy returns a deep copy: no shared backing array with the receiver.
func (b *Buffer) Copy() *Buffer {
	out := New(b.length)
	copy(out.data[out.offset:out.offset+out.length], b.Slice())
	return out
}

// grow reallocates data to hold at least c limbs total, following the
// policy: allocate max(2*len(data), c). The payload is copied so the
// logical window keeps the same relative offset chosen by the caller.
func (b *Buffer) grow(c int) {
	if c > MaxLimbs {
		panic(&compinterrors.OverflowError{Requested: c, Limit: MaxLimbs})
	}
	newCap := 2 * len(b.data)
	if newCap < c {
		newCap = c
	}
	if newCap > MaxLimbs {
		newCap = MaxLimbs
	}
	nd := make([]uint64, newCap)
	copy(nd, b.data)
	b.data = nd
}

// ReserveLeft ensures k unused slots exist immediately before offset,
// reallocating (and right-shifting the payload within the new array) if
// necessary. It does not change length.
func (b *Buffer) ReserveLeft(k int) {
	if b.offset >= k {
		return
	}
	tailHeadroom := len(b.data) - (b.offset + b.length)
	if tailHeadroom < 0 {
		tailHeadroom = 0
	}
	if k+b.length+tailHeadroom > len(b.data) {
		b.grow(k + b.length + tailHeadroom)
	}
	newOffset := k
	copy(b.data[newOffset:newOffset+b.length], b.data[b.offset:b.offset+b.length])
	for i := 0; i < newOffset; i++ {
		b.data[i] = 0
	}
	b.offset = newOffset
}

// ReserveRight ensures k unused slots exist immediately after offset+length.
func (b *Buffer) ReserveRight(k int) {
	tailHeadroom := len(b.data) - (b.offset + b.length)
	if tailHeadroom >= k {
		return
	}
	need := b.offset + b.length + k
	b.grow(need)
}

// ExpandLeft grows length by n, adding zero limbs at index 0 (the most
// significant side), reallocating via ReserveLeft if needed.
func (b *Buffer) ExpandLeft(n int) {
	if n <= 0 {
		return
	}
	b.ReserveLeft(n)
	b.offset -= n
	for i := 0; i < n; i++ {
		b.data[b.offset+i] = 0
	}
	b.length += n
}

// ExpandRight grows length by n, adding zero limbs at the tail (the least
// significant side), reallocating via ReserveRight if needed.
func (b *Buffer) ExpandRight(n int) {
	if n <= 0 {
		return
	}
	b.ReserveRight(n)
	for i := 0; i < n; i++ {
		b.data[b.offset+b.length+i] = 0
	}
	b.length += n
}

// TrimLeadingZeros decrements length and bumps offset while the most
// significant limb is zero and more than one limb remains, so canonical
// form never carries leading zero limbs except for the single zero value
// itself.
func (b *Buffer) TrimLeadingZeros() {
	for b.length > 1 && b.data[b.offset] == 0 {
		b.offset++
		b.length--
	}
}

// SetWindow resets the logical window in place (used after an in-place
// arithmetic loop writes all of its output and trims leading zeros); it
// does not touch data.
func (b *Buffer) SetWindow(offset, length int) {
	b.offset = offset
	b.length = length
}

// Offset exposes the current window offset (used by in-place routines that
// compute a new offset/length pair and then call SetWindow once: the loop
// invariant is that offset/length are set once after the loop, never
// inside it).
func (b *Buffer) Offset() int { return b.offset }

// Data exposes the owned backing array (rarely needed outside this
// package; kept for in-place routines that write limbs directly via index
// arithmetic for speed).
func (b *Buffer) Data() []uint64 { return b.data }
