// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for constructor and kernel tests.
//   - Keep panic assertions uniform: Must* panics carry an error, matched by errors.Is.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// seq returns [from, from+1, ..., from+n-1].
func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}

	return out
}

// mustNew builds an r×c matrix from a row-major slice or fails the test.
func mustNew[T any](tb testing.TB, r, c int, vals []T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(r, c, vals)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// randomFloats builds an r×c matrix with deterministic U(-1,1) entries by seed.
func randomFloats(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustNew(tb, r, c, vals)
}

// requirePanicsIs runs f and asserts it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic error %q does not match %v", err, target)
		}
	}()
	f()
}
