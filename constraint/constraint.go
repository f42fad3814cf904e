// Package constraint declares the small set of generic type-set
// interfaces the rest of this module is parameterized over.
package constraint

// SPDX-License-Identifier: Apache-2.0

// SignedInteger is copied from golang.org/x/exp/constraints#Signed
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInteger is like golang.org/x/exp/constraints#Unsigned, except no uintptr
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is equivalent to golang.org/x/exp/constraints#Integer
type Integer interface {
	SignedInteger | UnsignedInteger
}

// Ordered is equivalent to golang.org/x/exp/constraints#Ordered, trimmed to what this module needs
type Ordered interface {
	Integer | ~string
}

// Cmp is a companion interface for Ordered: any type with its own three-way comparator.
// Embeds comparable so that the Cmp interface can be used as a map key.
type Cmp[T any] interface {
	comparable
	// Returns <0 if this value < argument
	//          0 if this value = argument
	//         >0 if this value > argument
	Cmp(T) int
}
