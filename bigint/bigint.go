// Package bigint implements an arbitrary-precision signed integer: a value
// type storing its magnitude as a minimal two's-complement digit sequence,
// with the full set of integer arithmetic, bitwise, comparison, shift, and
// decimal conversion operations.
//
// The zero value is ready to use and represents 0, the same convention
// bytes.Buffer and strings.Builder use — there is no need to call a
// constructor just to get a usable zero.
package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/bigint/buffer"
	"github.com/bantling/bigint/constraint"
	"github.com/bantling/bigint/digit"
)

// fillZero and fillOnes are the two possible sign-extension digits: the
// conceptual infinite digit at any index >= the stored size.
const (
	fillZero uint32 = 0
	fillOnes uint32 = 0xFFFFFFFF
)

// BigInt is a two's-complement encoded arbitrary-precision signed integer.
// Digits are little-endian (digit 0 is least significant); the sign is the
// top bit of the most significant stored digit. The stored sequence is
// always the shortest two's-complement encoding of the value (the
// minimality invariant, §3.2): dropping the top digit would either change
// the value or change the sign.
type BigInt struct {
	buf buffer.Buffer
}

// Zero returns the value 0. Equivalent to the zero value of BigInt.
func Zero() BigInt {
	return BigInt{}
}

// OfInt constructs a BigInt from any native signed integer type — the
// "source of small native signed integers" collaborator spec.md's §1 treats
// as an external boundary interface.
func OfInt[T constraint.SignedInteger](v T) BigInt {
	return FromInt64(int64(v))
}

// FromInt64 constructs a BigInt from an int64.
func FromInt64(v int64) BigInt {
	var b BigInt
	b.buf.Resize(1, 0)
	b.buf.Set(0, uint32(v))
	hi := uint32(v >> 32)
	b.buf.PushBack(hi)
	b.shrink()
	return b
}

// FromUint64 constructs a BigInt from a uint64, without ever reinterpreting
// its bit pattern as negative: values with the top bit set (ie >=
// 1<<63) get an extra leading zero guard digit, the same convention
// fromMagnitude uses for division results, rather than round-tripping
// through int64 the way a naive cast would.
func FromUint64(v uint64) BigInt {
	var b BigInt
	lo := uint32(v)
	hi := uint32(v >> 32)
	b.buf.Resize(1, 0)
	b.buf.Set(0, lo)
	b.buf.PushBack(hi)
	if hi&0x8000_0000 != 0 {
		b.buf.PushBack(0)
	}
	b.shrink()
	return b
}

// Clone returns an independent copy of b. Cheap (O(1)) when b's storage is
// heap-allocated, since it shares storage until the first write; see
// buffer.Buffer's doc comment for the aliasing convention this relies on.
func (b BigInt) Clone() BigInt {
	return BigInt{buf: b.buf.Copy()}
}

// ==== size / digit access, with sign extension past the stored length

// size returns the number of stored digits, treating the zero-value BigInt
// (an empty buffer) as the canonical single digit [0].
func (b *BigInt) size() int {
	if b.buf.Size() == 0 {
		return 1
	}
	return b.buf.Size()
}

// fill returns the sign-extension digit: all-ones if negative, else zero.
func (b *BigInt) fill() uint32 {
	if b.buf.Size() == 0 {
		return fillZero
	}
	if b.buf.Get(b.buf.Size()-1)&0x8000_0000 != 0 {
		return fillOnes
	}
	return fillZero
}

// get returns the digit at index i, sign-extending for i >= size().
func (b *BigInt) get(i int) uint32 {
	if i < b.buf.Size() {
		return b.buf.Get(i)
	}
	return b.fill()
}

// ==== Invariant management (§4.3.1)

// shrink repeatedly drops the last digit while it is redundant, restoring
// the minimality invariant.
func (b *BigInt) shrink() {
	for b.buf.Size() > 1 {
		last := b.buf.Get(b.buf.Size() - 1)
		fill := b.fillAt(b.buf.Size() - 1)
		if last != fill {
			break
		}
		prevSignBit := b.buf.Get(b.buf.Size()-2) & 0x8000_0000
		curSign := uint32(0)
		if fill == fillOnes {
			curSign = 0x8000_0000
		}
		if prevSignBit != curSign {
			break
		}
		b.buf.PopBack()
	}
}

// fillAt returns the fill digit as if the sequence were truncated to i+1
// digits, ie based on the sign bit of digit i itself.
func (b *BigInt) fillAt(i int) uint32 {
	if b.buf.Get(i)&0x8000_0000 != 0 {
		return fillOnes
	}
	return fillZero
}

// resize extends the digit sequence to n digits using the current fill
// digit as padding. May leave the minimality invariant violated; callers
// must call shrink afterward.
func (b *BigInt) resize(n int) {
	f := b.fill()
	for b.buf.Size() < n {
		b.buf.PushBack(f)
	}
}

// correctSignBit is the common tail of arithmetic that might overflow the
// current width: it appends at most one carry digit if given one, then
// appends one more fill digit if the current sign doesn't match
// expectedNeg, and finally shrinks.
func (b *BigInt) correctSignBit(expectedNeg bool, carry *uint32) {
	if carry != nil {
		b.buf.PushBack(*carry)
	}

	isNeg := b.get(b.buf.Size()-1)&0x8000_0000 != 0
	if isNeg != expectedNeg && !(expectedNeg && b.isZeroDigits()) {
		b.buf.PushBack(funcsFill(expectedNeg))
	}

	b.shrink()
}

func funcsFill(neg bool) uint32 {
	if neg {
		return fillOnes
	}
	return fillZero
}

func (b *BigInt) isZeroDigits() bool {
	for i := 0; i < b.buf.Size(); i++ {
		if b.buf.Get(i) != 0 {
			return false
		}
	}
	return true
}

// ==== Predicates

// Sign returns -1, 0, or 1 according to whether b is negative, zero, or positive.
func (b BigInt) Sign() int {
	if b.IsZero() {
		return 0
	}
	if b.IsNeg() {
		return -1
	}
	return 1
}

// IsZero reports whether b == 0.
func (b BigInt) IsZero() bool {
	if b.buf.Size() == 0 {
		return true
	}
	for i := 0; i < b.buf.Size(); i++ {
		if b.buf.Get(i) != 0 {
			return false
		}
	}
	return true
}

// IsNeg reports whether b < 0.
func (b BigInt) IsNeg() bool {
	bb := b
	return bb.fill() == fillOnes && !bb.IsZero()
}

// IsPos reports whether b > 0.
func (b BigInt) IsPos() bool {
	return !b.IsZero() && !b.IsNeg()
}

// IsEven reports whether b is divisible by 2.
func (b BigInt) IsEven() bool {
	bb := b
	return bb.get(0)&1 == 0
}

// IsOdd reports whether b is not divisible by 2.
func (b BigInt) IsOdd() bool {
	return !b.IsEven()
}

// BitLen returns the number of bits required to represent |b|, not counting
// a sign bit (0 for b == 0).
func (b BigInt) BitLen() int {
	if b.IsZero() {
		return 0
	}

	a := b.Abs()
	n := a.buf.Size()
	top := a.buf.Get(n - 1)
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (n-1)*digit.Width + bits
}

// unsignedSize is the number of digits ignoring a leading zero digit that is
// present solely to hold the positive sign bit (§4.3.7, glossary).
func (b *BigInt) unsignedSize() int {
	n := b.size()
	if n <= 1 {
		return n
	}
	if b.buf.Get(n-1) == 0 && b.buf.Get(n-2)&0x8000_0000 != 0 {
		return n - 1
	}
	return n
}

// ==== Stringer / fmt interop

func (b BigInt) String() string {
	return b.format()
}

func (b BigInt) GoString() string {
	return fmt.Sprintf("bigint.BigInt(%s)", b.String())
}
