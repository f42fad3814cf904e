package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrip_(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "42", "-42",
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
		"340282366920938463463374607431768211456", // 2^128
	}
	for _, s := range cases {
		v, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestParseErrors_(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse("-")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse("12a34")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse("1.5")
	assert.ErrorIs(t, err, ErrParse)
}

func TestMustParsePanicsOnBadInput_(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}

func TestWriteTo_(t *testing.T) {
	var sb strings.Builder
	n, err := MustParse("123456789012345678901234567890").WriteTo(&sb)
	assert.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
	assert.Equal(t, "123456789012345678901234567890", sb.String())
}

func TestFormatNegativeZeroNeverAppears_(t *testing.T) {
	assert.Equal(t, "0", Sub(FromInt64(5), FromInt64(5)).String())
}
