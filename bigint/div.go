package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/bigint/digit"
)

// ErrDivByZero is returned by Div, Mod and DivMod when the divisor is zero.
// spec.md leaves division by zero undefined at the reference level ("the
// reference implementation does not check") but explicitly allows an
// implementation to "additionally signal an error" (§4.3.7, §7, Open
// Questions) — this implementation takes that option for the
// error-returning forms, rather than reproducing whatever the unchecked
// C++ division would fall through to. The compound assignment forms
// (DivAssign, ModAssign) panic instead, matching Go's own built-in integer
// division panic-on-zero behavior.
var ErrDivByZero = fmt.Errorf("bigint: division by zero")

// divDigitAssign divides the receiver — which must already be non-negative
// — by a single positive digit, in place, and returns the remainder. Used
// both by the m=1 short-division case of DivMod and by decimal formatting.
func divDigitAssign(b *BigInt, d uint32) uint32 {
	b.materialize()

	n := b.buf.Size()
	var rem uint32
	for i := n - 1; i >= 0; i-- {
		q, r := digit.Div21(b.buf.Get(i), rem, d)
		b.buf.Set(i, q)
		rem = r
	}
	b.shrink()
	return rem
}

// fromMagnitude builds a non-negative BigInt from little-endian unsigned
// digits, adding a leading zero guard digit if the top digit's high bit is
// set (so the two's-complement encoding stays positive).
func fromMagnitude(digits []uint32) BigInt {
	if len(digits) == 0 {
		return Zero()
	}

	var b BigInt
	b.buf.Resize(len(digits), 0)
	for i, d := range digits {
		b.buf.Set(i, d)
	}
	if b.buf.Get(b.buf.Size()-1)&0x8000_0000 != 0 {
		b.buf.PushBack(0)
	}
	b.shrink()
	return b
}

// divModUnsigned implements §4.3.7's three cases. u and v must both be
// non-negative.
func divModUnsigned(u, v BigInt) (q, r BigInt) {
	n := u.unsignedSize()
	m := v.unsignedSize()

	if m == 1 {
		q = u.Clone()
		rem := divDigitAssign(&q, v.get(0))
		return q, FromInt64(int64(rem))
	}

	if m > n {
		return Zero(), u.Clone()
	}

	// Normalize: scale both operands so the divisor's leading digit has its
	// top bit set, which bounds the 3-by-2 trial estimate to at most one
	// correction (classical Knuth D result).
	top := v.get(m - 1)
	var f uint32
	if top == 0xFFFF_FFFF {
		f = 1
	} else {
		f = uint32((uint64(1) << digit.Width) / (uint64(top) + 1))
	}

	uu := u.Clone()
	vv := v.Clone()
	uu.mulDigitAssign(f)
	vv.mulDigitAssign(f)

	dlo, dhi := vv.get(m-2), vv.get(m-1)

	qDigits := make([]uint32, n-m+1)
	remaining := uu

	for k := n - m; k >= 0; k-- {
		r0 := remaining.get(k + m - 2)
		r1 := remaining.get(k + m - 1)
		r2 := remaining.get(k + m)

		qPrime, _ := digit.Div32(r0, r1, r2, dlo, dhi)

		dq := vv.Clone()
		dq.mulDigitAssign(qPrime)
		dq.ShiftAssign(k * digit.Width)

		if remaining.Cmp(dq) < 0 {
			qPrime--
			dq = vv.Clone()
			dq.mulDigitAssign(qPrime)
			dq.ShiftAssign(k * digit.Width)
		}

		qDigits[k] = qPrime
		remaining.SubAssign(dq)
	}

	rem := remaining
	if f != 1 {
		divDigitAssign(&rem, f)
	}

	return fromMagnitude(qDigits), rem
}

// DivMod computes both the quotient and remainder of a / b in one pass,
// satisfying (a/b)*b + (a%b) == a with |a%b| < |b| and the remainder's sign
// matching a's (§8). Returns ErrDivByZero if b == 0.
func DivMod(a, b BigInt) (quotient, remainder BigInt, err error) {
	if b.IsZero() {
		return Zero(), Zero(), ErrDivByZero
	}

	aNeg := a.IsNeg()
	resultNeg := a.IsNeg() != b.IsNeg()

	q, r := divModUnsigned(a.Abs(), b.Abs())

	if resultNeg && !q.IsZero() {
		q.NegAssign()
	}
	if aNeg && !r.IsZero() {
		r.NegAssign()
	}

	return q, r, nil
}

// Div returns a / b, truncating toward zero. Returns ErrDivByZero if b == 0.
func Div(a, b BigInt) (BigInt, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Div is the method form of the package-level Div.
func (a BigInt) Div(b BigInt) (BigInt, error) { return Div(a, b) }

// Mod returns a % b, with the remainder's sign matching a. Returns
// ErrDivByZero if b == 0.
func Mod(a, b BigInt) (BigInt, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// Mod is the method form of the package-level Mod.
func (a BigInt) Mod(b BigInt) (BigInt, error) { return Mod(a, b) }

// DivAssign divides the receiver by o in place and returns the receiver.
// Panics if o == 0, matching Go's own integer division.
func (a *BigInt) DivAssign(o BigInt) *BigInt {
	q, err := Div(*a, o)
	if err != nil {
		panic(err)
	}
	*a = q
	return a
}

// ModAssign reduces the receiver modulo o in place and returns the
// receiver. Panics if o == 0, matching Go's own integer division.
func (a *BigInt) ModAssign(o BigInt) *BigInt {
	r, err := Mod(*a, o)
	if err != nil {
		panic(err)
	}
	*a = r
	return a
}
