package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivW_(t *testing.T) {
	p, b := floorDivW(32)
	assert.Equal(t, 1, p)
	assert.Equal(t, 0, b)

	p, b = floorDivW(-1)
	assert.Equal(t, -1, p)
	assert.Equal(t, 31, b)

	p, b = floorDivW(33)
	assert.Equal(t, 1, p)
	assert.Equal(t, 1, b)
}

func TestShl_(t *testing.T) {
	assert.Equal(t, "340282366920938463463374607431768211456", // 2^128
		FromInt64(1).Shl(128).String())
	assert.Equal(t, "8", FromInt64(1).Shl(3).String())
	assert.Equal(t, "0", Zero().Shl(100).String())
}

func TestShr_(t *testing.T) {
	assert.Equal(t, "1", FromInt64(8).Shr(3).String())
	assert.Equal(t, "-1", FromInt64(-8).Shr(3).String()) // arithmetic shift, rounds toward -inf
	assert.Equal(t, "-1", FromInt64(-1).Shr(100).String())
	assert.Equal(t, "0", FromInt64(1).Shr(100).String())
}

func TestShiftLawAgainstMul_(t *testing.T) {
	a := MustParse("-123456789012345678901234567890")
	for _, k := range []uint{0, 1, 31, 32, 63, 64, 100} {
		lhs := a.Shl(k)
		rhs := Mul(a, Shift(FromInt64(1), int(k)))
		assert.True(t, lhs.Eq(rhs), "shift left by %d should equal multiply by 2^%d", k, k)
	}
}

func TestShiftRoundTrip_(t *testing.T) {
	a := MustParse("123456789012345678901234567890")
	assert.True(t, a.Shl(70).Shr(70).Eq(a))
}
