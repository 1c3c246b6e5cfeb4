// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// Each arithmetic kernel names the narrowest set it needs: Add takes Addable,
// Sub and Mul take Numeric.
package matrix

// Integer is the set of all predeclared integer kinds (and types derived from them).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Numeric supports +, - and *, and its zero value is the additive identity.
// Required by Sub and Mul.
type Numeric interface {
	Integer | Float | Complex
}

// Addable is everything the + operator accepts. Required by Add.
type Addable interface {
	Numeric | ~string
}
