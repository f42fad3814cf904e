package bigint

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bigint/digit"

// floorDivW splits a signed shift amount s into a whole-digit shift p and a
// sub-digit bit shift b in [0, W), rounding p toward negative infinity so
// that b stays non-negative even for negative s (§4.3.5).
func floorDivW(s int) (p, b int) {
	p = s / digit.Width
	b = s % digit.Width
	if b < 0 {
		b += digit.Width
		p--
	}
	return
}

// srcDigit reads digit i of a fixed snapshot for the purposes of Shift:
// below digit 0 there is, by construction, no data — those positions are
// always zero (shifting left introduces zero bits at the bottom regardless
// of sign; only positions at or above the stored length sign-extend).
func srcDigit(src *BigInt, i int) uint32 {
	if i < 0 {
		return 0
	}
	return src.get(i)
}

// Shift returns b << s for s >= 0, or b >> (-s) for s < 0, as a new value.
// Positive s is a left shift, negative s is a right shift; right shift of a
// negative value sign-extends (arithmetic shift).
func Shift(b BigInt, s int) BigInt {
	r := b.Clone()
	r.ShiftAssign(s)
	return r
}

// Shift is the method form of the package-level Shift.
func (b BigInt) Shift(s int) BigInt {
	return Shift(b, s)
}

// ShiftAssign shifts the receiver in place by s and returns the receiver.
func (b *BigInt) ShiftAssign(s int) *BigInt {
	orig := b.Clone()
	expectedNeg := b.IsNeg()

	p, bb := floorDivW(s)

	n := orig.size() + p + 2
	if n < 1 {
		n = 1
	}

	b.buf.Resize(n, 0)
	for i := 0; i < n; i++ {
		lsrc := srcDigit(&orig, i-p)
		var nd uint32
		if bb == 0 {
			nd = lsrc
		} else {
			rsrc := srcDigit(&orig, i-p-1)
			nd = (lsrc << uint(bb)) | (rsrc >> uint(digit.Width-bb))
		}
		b.buf.Set(i, nd)
	}

	b.correctSignBit(expectedNeg, nil)
	return b
}

// Shl returns b << n (a left shift by n bits) as a new value.
func (b BigInt) Shl(n uint) BigInt {
	return b.Shift(int(n))
}

// ShlAssign shifts the receiver left by n bits in place.
func (b *BigInt) ShlAssign(n uint) *BigInt {
	return b.ShiftAssign(int(n))
}

// Shr returns b >> n (arithmetic, sign-extending) as a new value.
func (b BigInt) Shr(n uint) BigInt {
	return b.Shift(-int(n))
}

// ShrAssign shifts the receiver right by n bits in place, sign-extending.
func (b *BigInt) ShrAssign(n uint) *BigInt {
	return b.ShiftAssign(-int(n))
}
