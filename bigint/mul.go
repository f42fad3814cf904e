package bigint

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bigint/digit"

// materialize ensures the backing buffer holds at least one real digit,
// turning the implicit zero-value representation (an empty buffer standing
// in for the single digit [0]) into an explicit one before in-place digit
// writes that index into the buffer directly.
func (b *BigInt) materialize() {
	if b.buf.Size() == 0 {
		b.buf.Resize(1, 0)
	}
}

// mulDigitAssign multiplies the receiver — which must already be
// non-negative — by a single positive digit, in place (§4.3.6, short
// multiplication): walk digits low-to-high accumulating
// (res, carry_out) = mul32(digit, scalar) + carry_in, appending a final
// carry digit if non-zero, plus a zero guard digit if the top digit's high
// bit is set, so the product stays non-negative.
func (b *BigInt) mulDigitAssign(scalar uint32) {
	b.materialize()

	n := b.buf.Size()
	var carry uint32
	for i := 0; i < n; i++ {
		lo, hi := digit.Mul32(b.buf.Get(i), scalar)
		sum, cout := digit.AddCarry(lo, carry, 0)
		b.buf.Set(i, sum)
		carry = hi + cout
	}
	if carry != 0 {
		b.buf.PushBack(carry)
	}
	if b.buf.Back()&0x8000_0000 != 0 {
		b.buf.PushBack(0)
	}
	b.shrink()
}

// MulSmall returns b * scalar (scalar treated as an unsigned digit) as a new value.
func (b BigInt) MulSmall(scalar uint32) BigInt {
	r := b.Clone()
	r.MulSmallAssign(scalar)
	return r
}

// MulSmallAssign multiplies the receiver by a positive digit in place,
// preserving sign.
func (b *BigInt) MulSmallAssign(scalar uint32) *BigInt {
	neg := b.IsNeg()
	if neg {
		b.NegAssign()
	}
	b.mulDigitAssign(scalar)
	if neg && !b.IsZero() {
		b.NegAssign()
	}
	return b
}

// Mul returns a * b as a new value via long multiplication (§4.3.6):
// quadratic in digit count, no Karatsuba or FFT (explicit non-goal).
func Mul(a, b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}

	resultNeg := a.IsNeg() != b.IsNeg()

	absA := a.Abs()
	absB := b.Abs()

	result := Zero()
	for i := 0; i < absB.buf.Size(); i++ {
		d := absB.buf.Get(i)
		if d == 0 {
			continue
		}
		term := absA.Clone()
		term.mulDigitAssign(d)
		term.ShiftAssign(i * digit.Width)
		result.AddAssign(term)
	}

	if resultNeg {
		result.NegAssign()
	}
	return result
}

// Mul is the method form of the package-level Mul.
func (a BigInt) Mul(b BigInt) BigInt { return Mul(a, b) }

// MulAssign multiplies o into the receiver in place.
func (a *BigInt) MulAssign(o BigInt) *BigInt {
	*a = Mul(*a, o)
	return a
}
