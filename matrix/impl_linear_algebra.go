// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Matrix[T]: element-wise
// addition and subtraction, and the standard matrix product. All kernels
// validate fail-fast and return tagged sentinels on incompatible operands;
// the Must* variants turn those errors into panics.
//
// Also provided: Hadamard (element-wise product), Scale and Transpose.
//
// Notes:
//   - Operands are never mutated; every result is a fresh allocation.
//   - Loop orders are fixed (flat 0..n-1 for Add/Sub, i→j→k for Mul).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[idx] = f(a[idx], b[idx]) over the flat buffers.
// Shared by Add and Sub so both carry identical validation and loop order.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..rows*cols-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func elementwise[T any](a, b *Matrix[T], opTag string, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.rows * a.cols
	out := make([]T, n)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		out[idx] = f(a.data[idx], b.data[idx])
	}

	return &Matrix[T]{rows: a.rows, cols: a.cols, data: out}, nil
}

// Add computes the element-wise sum C = A + B.
//
// Inputs:
//   - a, b: non-nil matrices of identical shape with consistent storage.
//
// Returns:
//   - a new matrix with C[idx] = A[idx] + B[idx] and A's shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrLengthMismatch (in that priority).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Addable](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Same contract and error priority as Add.
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, opSub, func(x, y T) T { return x - y })
}

// Mul performs the standard matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows, consistent storage).
//   - Stage 2: for each (i, j), start from the zero value of T and accumulate
//     A[n*i+k] * B[p*k+j] for k ascending.
//
// Behavior highlights:
//   - No zero-skipping: every product is formed, so NaN/Inf propagate as for
//     the naive definition.
//   - Result shape is (A.Rows, B.Cols).
//
// Inputs:
//   - a: left matrix with shape (m × n).
//   - b: right matrix with shape (n × p).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch), ErrLengthMismatch.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	m, n, p := a.rows, a.cols, b.cols
	out := make([]T, m*p)
	var (
		i, j, k    int
		sum, zero  T // zero is the additive identity
		rowOffsetA int
	)
	for i = 0; i < m; i++ {
		rowOffsetA = n * i
		for j = 0; j < p; j++ {
			sum = zero
			for k = 0; k < n; k++ {
				sum = sum + a.data[rowOffsetA+k]*b.data[p*k+j]
			}
			out[p*i+j] = sum
		}
	}

	return &Matrix[T]{rows: m, cols: p, data: out}, nil
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Same contract and error priority as Add.
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Scale returns alpha*m as a new matrix.
// Errors: ErrNilMatrix, ErrLengthMismatch.
// Complexity: O(r*c).
func Scale[T Numeric](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := make([]T, len(m.data))
	for idx, v := range m.data {
		out[idx] = alpha * v
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// Transpose returns mᵀ: a cols×rows matrix with out[j,i] = m[i,j].
// Works for any element type; nothing is computed, only moved.
//
// Errors:
//   - ErrNilMatrix, ErrLengthMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := m.rows, m.cols
	out := make([]T, r*c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out[j*r+i] = m.data[base+j]
		}
	}

	return &Matrix[T]{rows: c, cols: r, data: out}, nil
}

// MustAdd is like Add but panics on error.
func MustAdd[T Addable](a, b *Matrix[T]) *Matrix[T] { return must(Add(a, b)) }

// MustSub is like Sub but panics on error.
func MustSub[T Numeric](a, b *Matrix[T]) *Matrix[T] { return must(Sub(a, b)) }

// MustMul is like Mul but panics on error.
func MustMul[T Numeric](a, b *Matrix[T]) *Matrix[T] { return must(Mul(a, b)) }

// MustHadamard is like Hadamard but panics on error.
func MustHadamard[T Numeric](a, b *Matrix[T]) *Matrix[T] { return must(Hadamard(a, b)) }

// must panics with err when it is non-nil. The panic value is the error itself,
// so recover() callers can still errors.Is it.
func must[T any](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(err)
	}

	return m
}
