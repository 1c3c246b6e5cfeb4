// Package matrix offers a generic, dense, row-major matrix type and the
// arithmetic that goes with it.
//
// The matrix package provides:
//
//   - Matrix[T] with a flat backing slice; element (i, j) lives at i*cols + j.
//   - Add / Sub for identical shapes and Mul for r×n by n×c operands.
//   - Must* variants that panic instead of returning an error, for callers
//     that treat a shape mismatch as a programming error.
//   - A fmt.Stringer rendering (one line per row, space-separated) and a
//     configurable Render for other separators and verbs.
//
// Element types are constrained per operation: Add accepts anything Go's +
// accepts (Addable), Sub and Mul need the full Numeric set. Construction,
// accessors and rendering work for any T.
//
// A Matrix is not safe for concurrent mutation; guard it externally if
// several goroutines write through MutData or Set.
package matrix
