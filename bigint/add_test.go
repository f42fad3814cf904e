package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_(t *testing.T) {
	assert.Equal(t, "5", Add(FromInt64(2), FromInt64(3)).String())
	assert.Equal(t, "-1", Add(FromInt64(2), FromInt64(-3)).String())
	assert.Equal(t, "0", Add(FromInt64(-3), FromInt64(3)).String())

	// carry across a 32-bit digit boundary
	a := MustParse("4294967295") // 2^32-1
	assert.Equal(t, "4294967296", Add(a, FromInt64(1)).String())
}

func TestSub_(t *testing.T) {
	assert.Equal(t, "-1", Sub(FromInt64(2), FromInt64(3)).String())
	assert.Equal(t, "5", Sub(FromInt64(2), FromInt64(-3)).String())
	assert.Equal(t, "0", Sub(FromInt64(7), FromInt64(7)).String())
}

func TestNeg_(t *testing.T) {
	assert.Equal(t, "-5", FromInt64(5).Neg().String())
	assert.Equal(t, "5", FromInt64(-5).Neg().String())
	assert.Equal(t, "0", Zero().Neg().String())
}

func TestNot_(t *testing.T) {
	assert.Equal(t, "-1", FromInt64(0).Not().String())
	assert.Equal(t, "0", FromInt64(-1).Not().String())
	assert.Equal(t, "-6", FromInt64(5).Not().String())
}

func TestIncDec_(t *testing.T) {
	assert.Equal(t, "1", Zero().Inc().String())
	assert.Equal(t, "-1", Zero().Dec().String())
	assert.Equal(t, "0", FromInt64(-1).Inc().String())
	assert.Equal(t, "0", FromInt64(1).Dec().String())
}

func TestAddAssignChains_(t *testing.T) {
	x := FromInt64(1)
	x.AddAssign(FromInt64(2)).AddAssign(FromInt64(3))
	assert.Equal(t, "6", x.String())
}

func TestAdditiveGroupLaws_(t *testing.T) {
	a := MustParse("123456789012345678901234567890")
	b := MustParse("-987654321098765432109876543210")
	assert.True(t, Add(a, Zero()).Eq(a))
	assert.True(t, Add(a, b).Eq(Add(b, a)))
	assert.True(t, Add(a, a.Neg()).IsZero())
	assert.True(t, Sub(a, b).Eq(Add(a, b.Neg())))
}
