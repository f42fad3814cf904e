package bigint

// SPDX-License-Identifier: Apache-2.0

// And returns a & b as a new value.
func And(a, b BigInt) BigInt {
	r := a.Clone()
	r.AndAssign(b)
	return r
}

// And is the method form of the package-level And.
func (a BigInt) And(b BigInt) BigInt { return And(a, b) }

// AndAssign ANDs o into the receiver in place, place-wise over the
// sign-extended pair, then restores the minimality invariant.
func (a *BigInt) AndAssign(o BigInt) *BigInt {
	n := a.size()
	if o.size() > n {
		n = o.size()
	}
	a.resize(n)
	for i := 0; i < n; i++ {
		a.buf.Set(i, a.get(i)&o.get(i))
	}
	a.shrink()
	return a
}

// Or returns a | b as a new value.
func Or(a, b BigInt) BigInt {
	r := a.Clone()
	r.OrAssign(b)
	return r
}

// Or is the method form of the package-level Or.
func (a BigInt) Or(b BigInt) BigInt { return Or(a, b) }

// OrAssign ORs o into the receiver in place.
func (a *BigInt) OrAssign(o BigInt) *BigInt {
	n := a.size()
	if o.size() > n {
		n = o.size()
	}
	a.resize(n)
	for i := 0; i < n; i++ {
		a.buf.Set(i, a.get(i)|o.get(i))
	}
	a.shrink()
	return a
}

// Xor returns a ^ b as a new value.
func Xor(a, b BigInt) BigInt {
	r := a.Clone()
	r.XorAssign(b)
	return r
}

// Xor is the method form of the package-level Xor.
func (a BigInt) Xor(b BigInt) BigInt { return Xor(a, b) }

// XorAssign XORs o into the receiver in place.
func (a *BigInt) XorAssign(o BigInt) *BigInt {
	n := a.size()
	if o.size() > n {
		n = o.size()
	}
	a.resize(n)
	for i := 0; i < n; i++ {
		a.buf.Set(i, a.get(i)^o.get(i))
	}
	a.shrink()
	return a
}
