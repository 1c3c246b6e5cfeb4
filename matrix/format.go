// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Layout contract:
//   - one line per row, every line terminated by exactly one '\n';
//   - elements of a row separated by the configured separator, none trailing;
//   - no blank line before or after the block.
//
// The row break is decided by the position inside the row (k % cols),
// never by the absolute flat index.

package matrix

import (
	"fmt"
	"strings"
)

// String renders m with the default options (space separator, %v verb).
//
//	MustNew(2, 3, []int{-2, -1, 0, 1, 2, 3}).String() == "-2 -1 0\n1 2 3\n"
func (m *Matrix[T]) String() string { return m.Render() }

// Render renders m as rows×lines text under the given options.
//
// Edge cases:
//   - rows == 0 renders as "".
//   - cols == 0 renders as rows bare "\n" lines.
//   - storage inconsistent with the shape (e.g. an unpopulated NewEmpty shell)
//     renders the diagnostic "Matrix(RxC, N elements)" instead of indexing past the end.
//
// Complexity: O(r*c).
func (m *Matrix[T]) Render(opts ...Option) string {
	if len(m.data) != m.rows*m.cols {
		return fmt.Sprintf("Matrix(%dx%d, %d elements)", m.rows, m.cols, len(m.data))
	}
	if m.cols == 0 {
		return strings.Repeat("\n", m.rows)
	}

	o := gatherOptions(opts...)
	var b strings.Builder
	last := m.cols - 1
	for k, v := range m.data {
		fmt.Fprintf(&b, o.verb, v)
		if k%m.cols == last {
			b.WriteByte('\n') // end of row
		} else {
			b.WriteString(o.sep)
		}
	}

	return b.String()
}
