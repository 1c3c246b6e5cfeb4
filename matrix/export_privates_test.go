// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the unexported Options to matrix_test ONLY.
//   - Lives in a _test.go file of package matrix, so it never reaches production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options fields; the defaults test catches drift.

// OptionsSnapshot is a stable, exported copy of Options for assertions.
type OptionsSnapshot struct {
	Sep  string
	Verb string
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Sep: o.sep, Verb: o.verb}
}

// DefaultOptionsSnapshot_TestOnly returns the snapshot of defaultOptions().
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly returns the snapshot of gatherOptions(opts...).
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
