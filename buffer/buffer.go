// Package buffer implements the digit storage layer BigInt is built on: a
// value-semantic sequence of 32-bit digits that inlines tiny values directly
// and shares larger ones via a reference-counted heap allocation until the
// first write.
package buffer

// SPDX-License-Identifier: Apache-2.0

// InlineCap is the number of digits stored directly inside a Buffer before
// it spills to the heap: sizeof(heap pointer)/sizeof(digit), ie 2 on a
// 64-bit platform where a digit is 32 bits.
const InlineCap = 2

// heapBuf is the shared heap allocation: a growable digit array plus a
// reference count. refcount is a plain int, not atomic — per this module's
// concurrency model (spec §5) a Buffer and anything it shares storage with
// must stay on one goroutine.
type heapBuf struct {
	data     *DynArray[uint32]
	refcount int32
}

// Buffer is a sequence of digits with two storage modes: inline (heap ==
// nil, up to InlineCap digits live in the struct itself) and shared heap
// (heap != nil, digits live in a refcounted heapBuf). A Buffer starts inline
// and moves to heap mode once it needs more than InlineCap digits; shrinking
// does not move it back. Callers never observe the difference except in
// timing.
//
// Buffer values alias their heap storage across ordinary Go assignment
// exactly like a slice or map would: ordinary `b2 := b1` is a cheap, shared
// copy, not a hook-driven deep copy (Go has no copy constructors). Copy
// gives the same cheap aliasing explicitly but also bumps the refcount, so
// the next write on either side clones first; BigInt.Clone uses it. A caller who aliases a Buffer via
// plain assignment and then wants to mutate one side independently should
// call Copy first, the same convention Go code already follows for slices.
type Buffer struct {
	inline [InlineCap]uint32
	n      int32
	heap   *heapBuf
}

// New returns an empty Buffer (size 0), inline mode.
func New() Buffer {
	return Buffer{}
}

// NewFilled returns a Buffer of the given size with every digit set to fill.
func NewFilled(size int, fill uint32) Buffer {
	var b Buffer
	b.Resize(size, fill)
	return b
}

// FromDigits returns a Buffer holding a copy of digits.
func FromDigits(digits []uint32) Buffer {
	var b Buffer
	b.Resize(len(digits), 0)
	for i, d := range digits {
		b.setUnchecked(i, d)
	}
	return b
}

// Size returns the number of live digits.
func (b *Buffer) Size() int {
	if b.heap != nil {
		return b.heap.data.Len()
	}
	return int(b.n)
}

// Get returns the digit at index i. i must be in [0, Size()).
func (b *Buffer) Get(i int) uint32 {
	if b.heap != nil {
		return b.heap.data.At(i)
	}
	return b.inline[i]
}

// Back returns the last digit. Size() must be > 0.
func (b *Buffer) Back() uint32 {
	return b.Get(b.Size() - 1)
}

// Set overwrites the digit at index i, cloning away from shared storage first if needed.
func (b *Buffer) Set(i int, v uint32) {
	b.ensureExclusive()
	b.setUnchecked(i, v)
}

func (b *Buffer) setUnchecked(i int, v uint32) {
	if b.heap != nil {
		b.heap.data.Set(i, v)
		return
	}
	b.inline[i] = v
}

// PushBack appends a digit, inflating to heap storage if it no longer fits inline.
func (b *Buffer) PushBack(v uint32) {
	b.ensureExclusive()

	if b.heap == nil && int(b.n) < InlineCap {
		b.inline[b.n] = v
		b.n++
		return
	}

	b.inflateIfNeeded()
	b.heap.data.PushBack(v)
}

// PopBack removes the last digit. Size() must be > 0.
func (b *Buffer) PopBack() {
	b.ensureExclusive()

	if b.heap != nil {
		b.heap.data.PopBack()
		return
	}
	b.n--
}

// Resize grows or shrinks the buffer to n digits, padding new digits with fill.
// Shrinking never deallocates heap storage, it only lowers the logical size.
func (b *Buffer) Resize(n int, fill uint32) {
	b.ensureExclusive()

	if b.heap == nil {
		if n <= InlineCap {
			for i := int(b.n); i < n; i++ {
				b.inline[i] = fill
			}
			b.n = int32(n)
			return
		}
		// Inflate to heap mode to hold more than InlineCap digits.
		b.inflate()
	}

	b.heap.data.Resize(n, fill)
}

// Data returns a mutable view of the live digits, cloning away from shared
// storage first. The returned slice is only valid until the next mutating
// call on b.
func (b *Buffer) Data() []uint32 {
	b.ensureExclusive()
	if b.heap != nil {
		return b.heap.data.Slice()
	}
	return b.inline[:b.n]
}

// Equal reports whether two buffers hold the same digit sequence.
func (b Buffer) Equal(o Buffer) bool {
	if b.Size() != o.Size() {
		return false
	}
	for i := 0; i < b.Size(); i++ {
		if b.Get(i) != o.Get(i) {
			return false
		}
	}
	return true
}

// Copy returns a value that shares heap storage (O(1), refcount bump) or, in
// inline mode, a plain independent struct copy (O(InlineCap)). This is the
// explicit, trusted way to alias a Buffer — see the type doc comment.
func (b Buffer) Copy() Buffer {
	if b.heap != nil {
		b.heap.refcount++
	}
	return b
}

// ensureExclusive clones away from shared heap storage if another Buffer
// might be referencing it (refcount > 1), per the exclusive-on-write rule:
// any operation that returns a mutable reference or grows the sequence must
// first guarantee refcount == 1.
func (b *Buffer) ensureExclusive() {
	if b.heap == nil {
		return
	}
	if b.heap.refcount <= 1 {
		return
	}

	b.heap.refcount--
	b.heap = &heapBuf{data: b.heap.data.Clone(), refcount: 1}
}

// inflate moves inline storage onto a fresh heap allocation.
func (b *Buffer) inflate() {
	d := NewDynArray[uint32](InlineCap * 2)
	d.Resize(int(b.n), 0)
	for i := 0; i < int(b.n); i++ {
		d.Set(i, b.inline[i])
	}
	b.heap = &heapBuf{data: d, refcount: 1}
	b.n = 0
}

func (b *Buffer) inflateIfNeeded() {
	if b.heap == nil {
		b.inflate()
	}
}
