// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import "math"

// default solver settings
const (
	// BisectTol is the residual tolerance used when tol ≤ 0 is given
	BisectTol = 1e-10

	// BisectMaxIt is the iteration cap used when maxIt ≤ 0 is given
	BisectMaxIt = 200
)

// Bisect finds x in [lo,hi] such that f(x) ≈ target, assuming f is continuous
// and monotonic on the bracket. Returns NaN when the target is not bracketed;
// i.e. when the residuals f(lo)-target and f(hi)-target have the same sign.
// No sub-bracket scanning is attempted. When the iteration cap is reached
// without meeting tol, the midpoint of the final bracket is returned as a
// best-effort answer, not a failure.
//
// The update rule keeps the low-endpoint residual fa as the sign reference
// throughout: the half where fa and the midpoint residual disagree in sign
// survives, and only the replaced endpoint's residual is refreshed. One
// function evaluation per iteration.
func Bisect(f func(x float64) float64, target, lo, hi, tol float64, maxIt int) float64 {
	if tol <= 0 {
		tol = BisectTol
	}
	if maxIt <= 0 {
		maxIt = BisectMaxIt
	}
	a, b := lo, hi
	fa := f(a) - target
	fb := f(b) - target
	if fa*fb > 0 {
		return math.NaN()
	}
	for it := 0; it < maxIt; it++ {
		mid := 0.5 * (a + b)
		fm := f(mid) - target
		if math.Abs(fm) < tol {
			return mid
		}
		if fa*fm <= 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return 0.5 * (a + b)
}
