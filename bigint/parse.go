package bigint

// SPDX-License-Identifier: Apache-2.0

import "fmt"

// ErrParse is returned when a decimal string fails to parse: empty input,
// a bare sign with no digits, or a non-digit character in the mantissa
// (§4.3.9, §7). spec.md leaves the behavior on embedded non-digit
// characters after a valid prefix as an open question; this implementation
// rejects the whole string rather than silently truncating at the first bad
// character, since a partially-consumed numeric literal is far more likely
// to be a caller bug than an intentional trailing annotation.
var ErrParse = fmt.Errorf("bigint: parse error")

// Parse converts a decimal string to a BigInt. An optional leading '-' may
// precede one or more digits '0'..'9'; anything else is ErrParse.
func Parse(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, fmt.Errorf("%w: empty string", ErrParse)
	}

	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}

	if i == len(s) {
		return BigInt{}, fmt.Errorf("%w: %q: no digits after sign", ErrParse, s)
	}

	x := Zero()
	ten := FromInt64(10)
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return BigInt{}, fmt.Errorf("%w: %q: invalid character %q", ErrParse, s, c)
		}
		x.MulAssign(ten)
		x.AddAssign(FromInt64(int64(c - '0')))
	}

	if neg {
		x.NegAssign()
	}
	return x, nil
}

// MustParse is a Must version of Parse: it panics if s fails to parse.
// Useful for literal constants in tests and initializers.
func MustParse(s string) BigInt {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
