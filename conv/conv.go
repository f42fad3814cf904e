// Package conv adapts bantling/micro's conv package to a single concern:
// checked conversions between bigint.BigInt and the native integer types and
// decimal strings. Where the teacher's conv.go covers every pairing of Go's
// numeric and big.* types, this package only needs the BigInt corner of
// that matrix.
package conv

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/bigint/bigint"
	"github.com/bantling/bigint/constraint"
	"github.com/bantling/bigint/funcs"
)

// errMsg mirrors the teacher's "value cannot be converted to type" wording.
var errMsg = "the %T value of %s cannot be converted to %s"

// BigIntToInt converts a BigInt into any native signed integer type, failing
// if the value does not fit.
func BigIntToInt[T constraint.SignedInteger](ival bigint.BigInt, oval *T) error {
	i64, ok := ival.Int64()
	if !ok {
		return fmt.Errorf(errMsg, ival, ival.String(), fmt.Sprintf("%T", *oval))
	}

	if int64(T(i64)) != i64 {
		return fmt.Errorf(errMsg, ival, ival.String(), fmt.Sprintf("%T", *oval))
	}

	*oval = T(i64)
	return nil
}

// MustBigIntToInt is a Must version of BigIntToInt.
func MustBigIntToInt[T constraint.SignedInteger](ival bigint.BigInt, oval *T) {
	funcs.Must(BigIntToInt(ival, oval))
}

// BigIntToUint converts a BigInt into any native unsigned integer type,
// failing if the value is negative or does not fit.
func BigIntToUint[T constraint.UnsignedInteger](ival bigint.BigInt, oval *T) error {
	u64, ok := ival.Uint64()
	if !ok {
		return fmt.Errorf(errMsg, ival, ival.String(), fmt.Sprintf("%T", *oval))
	}

	if uint64(T(u64)) != u64 {
		return fmt.Errorf(errMsg, ival, ival.String(), fmt.Sprintf("%T", *oval))
	}

	*oval = T(u64)
	return nil
}

// MustBigIntToUint is a Must version of BigIntToUint.
func MustBigIntToUint[T constraint.UnsignedInteger](ival bigint.BigInt, oval *T) {
	funcs.Must(BigIntToUint(ival, oval))
}

// IntToBigInt converts any native signed integer type into a BigInt. Always
// succeeds — BigInt has no upper bound.
func IntToBigInt[T constraint.SignedInteger](ival T) bigint.BigInt {
	return bigint.OfInt(ival)
}

// UintToBigInt converts any native unsigned integer type into a BigInt.
// Always succeeds. Goes through bigint.FromUint64 rather than a cast to
// int64, which would reinterpret any value with the top bit set (eg
// uint64(1)<<63) as negative.
func UintToBigInt[T constraint.UnsignedInteger](ival T) bigint.BigInt {
	return bigint.FromUint64(uint64(ival))
}

// StringToBigInt parses a decimal string into a BigInt.
func StringToBigInt(ival string) (bigint.BigInt, error) {
	return bigint.Parse(ival)
}

// MustStringToBigInt is a Must version of StringToBigInt.
func MustStringToBigInt(ival string) bigint.BigInt {
	return bigint.MustParse(ival)
}

// BigIntToString renders a BigInt as a decimal string.
func BigIntToString(ival bigint.BigInt) string {
	return ival.String()
}
