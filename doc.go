// Package densemat is a small, generic, dense-matrix toolkit for Go.
//
// What is densemat?
//
//	A fixed-shape, row-major Matrix[T] over any numeric element type:
//		• Construction from explicit dimensions and a flat element slice
//		• Shape and raw-storage accessors (copying and in-place)
//		• Element-wise Add / Sub and the standard matrix product Mul
//		• A plain-text rendering, one line per row
//
// Why densemat?
//
//   - Generic – int, float, complex (and string for Add) without conversions
//   - Fail-fast – shape mismatches surface as sentinel errors or Must* panics
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	matrix/ — Matrix[T], constraints, arithmetic kernels, validators, rendering
//
// Quick example:
//
//	a := matrix.MustNew(2, 2, []int{2, 1, 3, 1})
//	b := matrix.MustNew(2, 3, []int{1, 2, 3, 3, 2, 1})
//	fmt.Print(matrix.MustMul(a, b))
//	// 5 6 7
//	// 6 8 10
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
