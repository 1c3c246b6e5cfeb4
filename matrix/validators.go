// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/storage checks here.
//  - Return sentinels wrapped with a validator tag so call sites can wrap again uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Storage).
//  - Single-purpose validators state what they assume (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. O(1).
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateStorage ensures the storage holds exactly rows*cols elements.
// Rejects empty shells and storage resized through SetData. Assumes m is not nil. O(1).
func ValidateStorage[T any](m *Matrix[T]) error {
	if len(m.data) != m.rows*m.cols {
		return validatorErrorf("ValidateStorage",
			fmt.Errorf("%dx%d holds %d: %w", m.rows, m.cols, len(m.data), ErrLengthMismatch))
	}

	return nil
}

// ValidateBinarySameShape is the composite guard for element-wise kernels:
// both non-nil, same shape, both with consistent storage.
func ValidateBinarySameShape[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}
	if err := ValidateStorage(a); err != nil {
		return err
	}

	return ValidateStorage(b)
}

// ValidateMulCompatible is the composite guard for the matrix product:
// both non-nil, a.Cols == b.Rows, both with consistent storage.
func ValidateMulCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	if err := ValidateStorage(a); err != nil {
		return err
	}

	return ValidateStorage(b)
}
