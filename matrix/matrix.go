// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Separate shared access (Data returns a copy) from exclusive access
//     (MutData hands out the backing slice itself).
//   - Keep loop orders fixed so results are reproducible.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; NewEmpty: O(1); At/Set/Size: O(1); Data/Clone: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxNewEmpty = "NewEmpty"
	ctxAt       = "At"
	ctxSet      = "Set"
)

// storageErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keeps the sentinel reachable through %w.
func storageErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense, fixed-shape, row-major matrix.
//   - rows, cols hold the declared shape.
//   - data is a flat buffer in row-major order (offset = i*cols + j). After New
//     its length is rows*cols; after NewEmpty it is zero until populated.
type Matrix[T any] struct {
	rows, cols int // declared shape (>= 0)
	data       []T // row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New builds a rows×cols matrix holding a copy of values in row-major order.
// MAIN DESCRIPTION:
//   - Public constructor with eager shape validation.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: reject len(values) != rows*cols (ErrLengthMismatch).
//   - Stage 3: copy values into a fresh buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of values; later edits to it are not visible.
//   - Zero rows or zero cols is legal (values must then be empty).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, values []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, storageErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): got %d values: %w",
			ctxNew, rows, cols, len(values), ErrLengthMismatch)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Matrix[T]{rows: rows, cols: cols, data: buf}, nil
}

// MustNew is like New but panics on error.
// Intended for literals in tests and examples where the shape is known to be right.
func MustNew[T any](rows, cols int, values []T) *Matrix[T] {
	m, err := New(rows, cols, values)
	if err != nil {
		panic(err)
	}

	return m
}

// NewEmpty builds a rows×cols shell with no elements.
// The shell must be populated through SetData before it is indexed or used
// as an operand; kernels and At/Set reject it with ErrLengthMismatch until then.
// Complexity: O(1).
func NewEmpty[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, storageErrorf(ctxNewEmpty, rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: []T{}}, nil
}

// Data returns a copy of the row-major storage.
// Writes to the returned slice never reach the matrix; use MutData for that.
// Complexity: O(len(storage)).
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// MutData returns the backing storage itself.
// In-place writes are visible to every other accessor. Shape is not
// re-validated; the caller must not keep the slice beyond the next SetData.
// Complexity: O(1).
func (m *Matrix[T]) MutData() []T { return m.data }

// SetData replaces the storage with a copy of values without checking it
// against the shape. This is how an empty shell gets populated.
// Complexity: O(len(values)).
func (m *Matrix[T]) SetData(values []T) {
	buf := make([]T, len(values))
	copy(buf, values)
	m.data = buf
}

// Size returns the number of rows and columns, in that order.
// Complexity: O(1).
func (m *Matrix[T]) Size() (rows, cols int) { return m.rows, m.cols }

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// IsEmpty reports whether the storage holds no element.
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// indexOf bounds-checks (row, col) and computes the row-major offset.
// Returns a plain sentinel; At/Set wrap it with method and coordinates.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}
	off := row*m.cols + col
	if off >= len(m.data) {
		return 0, ErrLengthMismatch // shell or truncated storage
	}

	return off, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is outside the declared shape.
//   - ErrLengthMismatch when the storage is too short for the shape.
//
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, storageErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Same error contract as At.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return storageErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with independent storage.
// Complexity: O(len(storage)).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: m.Data()}
}

// Equal reports whether a and b have the same shape and identical storage.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(r*c).
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
