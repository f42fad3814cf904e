package bigint

// SPDX-License-Identifier: Apache-2.0

// Cmp returns <0 if a < b, 0 if a == b, >0 if a > b (§4.3.8): different
// signs decide immediately; same sign compares unsigned_size (shorter is
// smaller for positives, larger for negatives); equal sizes compare digits
// from most significant to least.
func (a BigInt) Cmp(b BigInt) int {
	aNeg, bNeg := a.IsNeg(), b.IsNeg()
	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}

	an, bn := a.unsignedSize(), b.unsignedSize()
	if an != bn {
		if aNeg {
			// same (negative) sign, shorter magnitude encoding is the larger value
			if an < bn {
				return 1
			}
			return -1
		}
		if an < bn {
			return -1
		}
		return 1
	}

	for i := an - 1; i >= 0; i-- {
		ad, bd := a.get(i), b.get(i)
		if ad != bd {
			if ad < bd {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Eq reports whether a == b.
func (a BigInt) Eq(b BigInt) bool { return a.Cmp(b) == 0 }

// Ne reports whether a != b.
func (a BigInt) Ne(b BigInt) bool { return a.Cmp(b) != 0 }

// Lt reports whether a < b.
func (a BigInt) Lt(b BigInt) bool { return a.Cmp(b) < 0 }

// Lte reports whether a <= b.
func (a BigInt) Lte(b BigInt) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a BigInt) Gt(b BigInt) bool { return a.Cmp(b) > 0 }

// Gte reports whether a >= b.
func (a BigInt) Gte(b BigInt) bool { return a.Cmp(b) >= 0 }

// Abs returns |b| as a new value.
func (b BigInt) Abs() BigInt {
	if !b.IsNeg() {
		r := b.Clone()
		r.materialize()
		return r
	}
	return b.Neg()
}
