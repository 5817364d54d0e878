// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_inv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv01. closed-form T0/T inversion")

	// M=1.5, gamma=1.4: T0/T = 1 + 0.2*2.25 = 1.45
	chk.Float64(tst, "M from T0/T", 1e-14, MachFromT0T(1.45, 1.4), 1.5)

	// stagnation temperature below static is impossible
	if !math.IsNaN(MachFromT0T(0.5, 1.4)) {
		tst.Errorf("T0/T < 1 must give NaN\n")
	}
}

func Test_inv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv02. round trip: relations then inverse mappings")

	for _, γ := range []float64{1.3, 1.4, 1.67} {
		for _, m := range []float64{0.05, 0.3, 0.8, 1.5, 2.0, 5.0, 20.0, 45.0} {
			tol := 1e-6 * (1.0 + m)

			chk.Float64(tst, io.Sf("T0/T     gam=%g M=%g", γ, m), tol, MachFromT0T(T0OverT(m, γ), γ), m)
			chk.Float64(tst, io.Sf("P0/P     gam=%g M=%g", γ, m), tol, MachFromP0P(P0OverP(m, γ), γ), m)
			chk.Float64(tst, io.Sf("rho0/rho gam=%g M=%g", γ, m), tol, MachFromRho0Rho(Rho0OverRho(m, γ), γ), m)

			branch := Subsonic
			if m > 1 {
				branch = Supersonic
			}
			chk.Float64(tst, io.Sf("A/A*     gam=%g M=%g", γ, m), tol, MachFromAAstar(AOverAstar(m, γ), γ, branch), m)
		}
	}
}

func Test_inv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv03. area-ratio branch selection")

	Msub := MachFromAAstar(2.0, 1.4, Subsonic)
	Msup := MachFromAAstar(2.0, 1.4, Supersonic)

	// both roots reproduce the given area ratio
	chk.Float64(tst, "A/A* at subsonic root", 1e-8, AOverAstar(Msub, 1.4), 2.0)
	chk.Float64(tst, "A/A* at supersonic root", 1e-8, AOverAstar(Msup, 1.4), 2.0)

	// reference digits (isentropic tables, gamma=1.4)
	chk.Float64(tst, "subsonic M", 1e-3, Msub, 0.3059)
	chk.Float64(tst, "supersonic M", 1e-3, Msup, 2.1972)

	if Msub >= 1 || Msup <= 1 {
		tst.Errorf("branches on the wrong side of sonic: Msub=%g Msup=%g\n", Msub, Msup)
	}
}

func Test_inv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv04. domain and bracket violations give NaN")

	if !math.IsNaN(MachFromAAstar(0.9, 1.4, Subsonic)) {
		tst.Errorf("A/A* < 1 must give NaN\n")
	}
	if !math.IsNaN(MachFromAAstar(0.9, 1.4, Supersonic)) {
		tst.Errorf("A/A* < 1 must give NaN\n")
	}

	// beyond anything M ≤ 50 can produce
	huge := P0OverP(60, 1.4)
	if !math.IsNaN(MachFromP0P(huge, 1.4)) {
		tst.Errorf("target above the bracket must give NaN\n")
	}

	// P0/P < 1 sits below the bracket
	if !math.IsNaN(MachFromP0P(0.5, 1.4)) {
		tst.Errorf("target below the bracket must give NaN\n")
	}
	if !math.IsNaN(MachFromRho0Rho(0.5, 1.4)) {
		tst.Errorf("target below the bracket must give NaN\n")
	}
}

func Test_inv05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv05. solver resolves targets across the whole bracket")

	// dense grid of area ratios on both branches
	for _, aas := range utl.LinSpace(1.001, 40.0, 40) {
		for _, branch := range []Branch{Subsonic, Supersonic} {
			m := MachFromAAstar(aas, 1.4, branch)
			if math.IsNaN(m) {
				tst.Errorf("A/A*=%g (%s) did not resolve\n", aas, branch)
				return
			}
			chk.Float64(tst, io.Sf("A/A*=%.3f %s", aas, branch), 1e-6*aas, AOverAstar(m, 1.4), aas)
		}
	}
}
