// Package funcs collects the small combinators used as ambient plumbing
// throughout this module, in place of hand-rolled panics and if/else chains.
package funcs

// SPDX-License-Identifier: Apache-2.0

// ==== Ternary

// Ternary returns trueVal if expr is true, else it returns falseVal
func Ternary[T any](expr bool, trueVal T, falseVal T) T {
	if expr {
		return trueVal
	}

	return falseVal
}

// TernaryResult returns trueVal() if expr is true, else it returns falseVal().
// Use this instead of Ternary when either branch is expensive or has a side effect
// that must not run unless selected.
func TernaryResult[T any](expr bool, trueVal func() T, falseVal func() T) T {
	if expr {
		return trueVal()
	}

	return falseVal()
}

// ==== Error

// Must panics if the error is non-nil, else returns.
// Useful to wrap calls to functions that return only an error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue panics if the error is non-nil, else returns the value of type T.
// Useful to wrap calls to functions that return a value and an error, where the value is only valid if the error is nil.
func MustValue[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}
