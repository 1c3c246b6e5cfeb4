// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests MUST check them via errors.Is. Panics are reserved for the Must*
// helpers and for nonsensical With* options (programmer errors).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context is needed; callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension mismatch -> storage length.

var (
	// ErrInvalidDimensions indicates that a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrLengthMismatch indicates that an element slice does not hold exactly
	// rows*cols values (constructor input, or storage edited through
	// MutData/SetData to an inconsistent length).
	ErrLengthMismatch = errors.New("matrix: element count does not match shape")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
