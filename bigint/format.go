package bigint

// SPDX-License-Identifier: Apache-2.0

import "io"

// format renders b as a decimal string (§4.3.10): take the absolute value
// into a working copy, repeatedly short-divide by 10 appending each
// remainder digit, prepend '-' for negative values, then reverse the
// accumulated digits.
func (b BigInt) format() string {
	if b.IsZero() {
		return "0"
	}

	neg := b.IsNeg()
	work := b.Abs()

	digits := make([]byte, 0, work.BitLen()/3+2)
	for !work.IsZero() {
		rem := divDigitAssign(&work, 10)
		digits = append(digits, byte('0')+byte(rem))
	}

	out := make([]byte, 0, len(digits)+1)
	if neg {
		out = append(out, '-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// WriteTo writes b's decimal representation to w, implementing
// io.WriterTo.
func (b BigInt) WriteTo(w io.Writer) (int64, error) {
	s := b.format()
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Int64 returns b as an int64 along with whether the conversion is exact.
// b fits iff its minimal two's-complement encoding spans at most 2 digits
// (64 bits), which is exactly the int64 range.
func (b BigInt) Int64() (int64, bool) {
	bb := b
	if bb.size() > 2 {
		return 0, false
	}
	lo := uint64(bb.get(0))
	hi := uint64(bb.get(1))
	return int64(hi<<32 | lo), true
}

// Uint64 returns b as a uint64 along with whether the conversion is exact:
// b must be non-negative and fit in 64 bits.
func (b BigInt) Uint64() (uint64, bool) {
	if b.IsNeg() || b.BitLen() > 64 {
		return 0, false
	}
	bb := b
	lo := uint64(bb.get(0))
	hi := uint64(bb.get(1))
	return hi<<32 | lo, true
}
