// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Build matrices with explicit shape and neutral elements.
//   - Delegate to New so shape validation lives in one place.

package matrix

// Zeros returns a rows×cols matrix filled with the zero value of T.
// Complexity: O(r*c).
func Zeros[T Numeric](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, storageErrorf("Zeros", rows, cols, ErrInvalidDimensions)
	}

	return New(rows, cols, make([]T, rows*cols))
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// It is the neutral element of Mul: Mul(A, I) == A for any A with n columns.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Numeric](n int) (*Matrix[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}

	return m, nil
}
