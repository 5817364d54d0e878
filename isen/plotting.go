// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotRatios plots the four isentropic relations over M ∈ [0.1,5] and, when
// res is given, marks the resolved Mach number on each curve. The figure is
// saved as dirout/fnkey.png. Presentation glue only; the calculator itself
// never plots.
func PlotRatios(dirout, fnkey string, γ float64, np int, res *Ratios) {
	if np < 2 {
		np = 200
	}
	M := utl.LinSpace(0.1, 5.0, np)
	T := make([]float64, np)
	P := make([]float64, np)
	R := make([]float64, np)
	A := make([]float64, np)
	for i := 0; i < np; i++ {
		T[i] = T0OverT(M[i], γ)
		P[i] = P0OverP(M[i], γ)
		R[i] = Rho0OverRho(M[i], γ)
		A[i] = AOverAstar(M[i], γ)
	}
	plt.Reset(true, &plt.A{WidthPt: 400})
	plt.Plot(M, T, &plt.A{C: "b", L: "$T_0/T$", NoClip: true})
	plt.Plot(M, P, &plt.A{C: "r", L: "$P_0/P$", NoClip: true})
	plt.Plot(M, R, &plt.A{C: "g", L: "$\\rho_0/\\rho$", NoClip: true})
	plt.Plot(M, A, &plt.A{C: "k", L: "$A/A^*$", NoClip: true})
	if res != nil {
		x := []float64{res.Mach, res.Mach, res.Mach, res.Mach}
		y := []float64{res.T0T, res.P0P, res.Rho0Rho, res.AAstar}
		plt.Plot(x, y, &plt.A{C: "m", M: "o", Ls: "none", NoClip: true})
		plt.Text(res.Mach, res.T0T, io.Sf("$M=%.4f$", res.Mach), &plt.A{C: "m", Fsz: 8})
	}
	plt.Gll("$M$", "ratio", nil)
	plt.Save(dirout, fnkey)
}
