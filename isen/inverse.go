// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import "math"

// solver bracket bounds. MachMax = 50 is the hypersonic cutoff carried over
// from the original tool; MachEps keeps the brackets away from the M = 0 and
// M = 1 singular/sonic points.
const (
	MachEps = 1e-8
	MachMax = 50.0
)

// Branch selects which root of the double-valued area relation to report
type Branch string

// available branches
const (
	Subsonic   Branch = "subsonic"
	Supersonic Branch = "supersonic"
)

// MachFromT0T computes the Mach number corresponding to a given
// stagnation-to-static temperature ratio, using the closed-form inversion
//   M = sqrt( (2/(γ-1))・(T0/T - 1) )
// Returns NaN when t0t < 1, since stagnation temperature cannot be below
// static temperature.
func MachFromT0T(t0t, γ float64) float64 {
	if t0t < 1.0 {
		return math.NaN()
	}
	return math.Sqrt((2.0 / (γ - 1.0)) * (t0t - 1.0))
}

// MachFromP0P computes the Mach number corresponding to a given
// stagnation-to-static pressure ratio by bisection over M ∈ [MachEps,MachMax].
// Returns NaN when no Mach number in the bracket produces p0p.
func MachFromP0P(p0p, γ float64) float64 {
	f := func(M float64) float64 { return P0OverP(M, γ) }
	return Bisect(f, p0p, MachEps, MachMax, 0, 0)
}

// MachFromRho0Rho computes the Mach number corresponding to a given
// stagnation-to-static density ratio by bisection over M ∈ [MachEps,MachMax].
// Returns NaN when no Mach number in the bracket produces rho0rho.
func MachFromRho0Rho(rho0rho, γ float64) float64 {
	f := func(M float64) float64 { return Rho0OverRho(M, γ) }
	return Bisect(f, rho0rho, MachEps, MachMax, 0, 0)
}

// MachFromAAstar computes the Mach number corresponding to a given area ratio.
// The area relation is double-valued with minimum 1 at M = 1, so branch picks
// the root: Subsonic searches [MachEps, 1-MachEps] and Supersonic searches
// [1+MachEps, MachMax]. Returns NaN when aas < 1 or when the target is not
// attainable within the selected bracket.
func MachFromAAstar(aas, γ float64, branch Branch) float64 {
	if aas < 1.0 {
		return math.NaN()
	}
	f := func(M float64) float64 { return AOverAstar(M, γ) }
	if branch == Supersonic {
		return Bisect(f, aas, 1.0+MachEps, MachMax, 0, 0)
	}
	return Bisect(f, aas, MachEps, 1.0-MachEps, 0, 0)
}
