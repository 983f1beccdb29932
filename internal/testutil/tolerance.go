// Package testutil collects floating-point assertions shared by the disk
// package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelDiff returns |got-want| / max(|want|, tiny). For want == 0 it is the
// absolute difference.
func RelDiff(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}

	return diff / math.Abs(want)
}

// RequireRelNear fails t if got differs from want by more than rel
// (relative tolerance, absolute when want is zero).
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if d := RelDiff(got, want); !(d <= rel) {
		t.Fatalf("%s = %v, want %v (rel diff %v > %v)", name, got, want, d, rel)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is negative or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= 0) {
			t.Fatalf("index %d: value %v is not >= 0", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// ArgMax returns the index of the largest element, or -1 for an empty slice.
// NaN elements are skipped.
func ArgMax(data []float64) int {
	best := -1
	for i, v := range data {
		if math.IsNaN(v) {
			continue
		}

		if best < 0 || v > data[best] {
			best = i
		}
	}

	return best
}
