package bigint

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bigint/digit"

// Add returns a + b as a new value.
func Add(a, b BigInt) BigInt {
	r := a.Clone()
	r.AddAssign(b)
	return r
}

// Add returns a + b as a new value (method form of the package-level Add).
func (a BigInt) Add(b BigInt) BigInt {
	return Add(a, b)
}

// AddAssign adds o into the receiver in place and returns the receiver, so
// compound operations can chain (eg `x.AddAssign(y).AddAssign(z)`).
func (a *BigInt) AddAssign(o BigInt) *BigInt {
	sameSign := a.IsNeg() == o.IsNeg()
	expectedNeg := a.IsNeg()

	n := a.size()
	if o.size() > n {
		n = o.size()
	}
	a.resize(n)

	var carry uint32
	for i := 0; i < n; i++ {
		sum, cout := digit.AddCarry(a.get(i), o.get(i), carry)
		a.buf.Set(i, sum)
		carry = cout
	}

	// The digit just above the sum is the two operands' fill digits plus the
	// final carry: 0 for two non-negatives, all-ones for two negatives.
	finalCarry, _ := digit.AddCarry(funcsFill(expectedNeg), funcsFill(expectedNeg), carry)
	if sameSign {
		a.correctSignBit(expectedNeg, &finalCarry)
	} else {
		a.shrink()
	}

	return a
}

// Sub returns a - b as a new value.
func Sub(a, b BigInt) BigInt {
	r := a.Clone()
	r.SubAssign(b)
	return r
}

// Sub returns a - b as a new value (method form).
func (a BigInt) Sub(b BigInt) BigInt {
	return Sub(a, b)
}

// SubAssign subtracts o from the receiver in place: a - b is implemented as
// a + (-b), the two's-complement identity (§4.3.2).
func (a *BigInt) SubAssign(o BigInt) *BigInt {
	return a.AddAssign(o.Neg())
}

// Neg returns -b as a new value: (~b) + 1, the two's-complement identity (§4.3.3).
func (b BigInt) Neg() BigInt {
	r := b.Clone()
	r.NegAssign()
	return r
}

// NegAssign negates the receiver in place.
func (b *BigInt) NegAssign() *BigInt {
	b.NotAssign()
	b.IncAssign()
	return b
}

// Not returns ~b, the bitwise complement, as a new value.
func (b BigInt) Not() BigInt {
	r := b.Clone()
	r.NotAssign()
	return r
}

// NotAssign complements every digit of the receiver in place.
func (b *BigInt) NotAssign() *BigInt {
	n := b.size()
	b.resize(n)
	for i := 0; i < n; i++ {
		b.buf.Set(i, ^b.get(i))
	}
	b.shrink()
	return b
}

// Inc returns b + 1 as a new value.
func (b BigInt) Inc() BigInt {
	r := b.Clone()
	r.IncAssign()
	return r
}

// IncAssign increments the receiver in place (prefix/postfix ++ both reduce
// to this in Go, which has no operator overloading: callers wanting the
// postfix value should call Clone first).
func (b *BigInt) IncAssign() *BigInt {
	return b.AddAssign(FromInt64(1))
}

// Dec returns b - 1 as a new value.
func (b BigInt) Dec() BigInt {
	r := b.Clone()
	r.DecAssign()
	return r
}

// DecAssign decrements the receiver in place.
func (b *BigInt) DecAssign() *BigInt {
	return b.SubAssign(FromInt64(1))
}
