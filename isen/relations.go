// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package isen implements isentropic compressible-flow relations for a
// perfect gas and the inverse solvers that recover the Mach number from a
// stagnation ratio or an area ratio. The relations assume adiabatic and
// reversible (constant entropy) flow:
//   T0/T = 1 + (γ-1)/2・M²
//   P0/P = (T0/T)^(γ/(γ-1))
//   ρ0/ρ = (T0/T)^(1/(γ-1))
//   A/A* = (1/M)・[(2/(γ+1))・T0/T]^((γ+1)/(2(γ-1)))
// where subscript 0 denotes stagnation quantities and A* is the sonic throat
// area. All functions require γ > 1; A/A* additionally requires M > 0.
package isen

import "math"

// T0OverT computes the stagnation-to-static temperature ratio at Mach M.
// Always ≥ 1; equals 1 at M = 0.
func T0OverT(M, γ float64) float64 {
	return 1.0 + (γ-1.0)/2.0*M*M
}

// P0OverP computes the stagnation-to-static pressure ratio at Mach M
func P0OverP(M, γ float64) float64 {
	return math.Pow(T0OverT(M, γ), γ/(γ-1.0))
}

// Rho0OverRho computes the stagnation-to-static density ratio at Mach M
func Rho0OverRho(M, γ float64) float64 {
	return math.Pow(T0OverT(M, γ), 1.0/(γ-1.0))
}

// AOverAstar computes the ratio of local flow area to sonic throat area at
// Mach M. The relation is double-valued: it decreases on (0,1), reaches its
// minimum of exactly 1 at M = 1, and increases on (1,∞). M must be positive.
func AOverAstar(M, γ float64) float64 {
	term := (2.0 / (γ + 1.0)) * T0OverT(M, γ)
	return (1.0 / M) * math.Pow(term, (γ+1.0)/(2.0*(γ-1.0)))
}
