// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/biriyanii/aerodynamics-calculator/inp"
	"github.com/biriyanii/aerodynamics-calculator/isen"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input arguments
	first := io.ArgToString(0, "M")
	value := io.ArgToFloat(1, 2.0)
	gamma := io.ArgToFloat(2, 1.4)
	branchName := io.ArgToString(3, "subsonic")
	doplot := io.ArgToBool(4, false)
	dirout := io.ArgToString(5, "/tmp/aerocalc")

	// message
	io.PfWhite("\nAerocalc -- Isentropic Flow Calculator\n")

	// batch mode: a .flow file lists the calculations
	if strings.HasSuffix(first, ".flow") {
		runBatch(first, doplot, dirout)
		return
	}

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"input kind: M, T0T, P0P, rho0rho, AoverAstar", "kind", first,
		"value of input quantity", "value", value,
		"ratio of specific heats", "gamma", gamma,
		"A/A* branch: subsonic or supersonic", "branch", branchName,
		"save comparison chart", "doplot", doplot,
		"directory for output", "dirout", dirout,
	))

	// convert and calculate
	kind, err := isen.KindFromString(first)
	if err != nil {
		io.PfRed("invalid input: %v\n", err)
		return
	}
	branch, err := isen.BranchFromString(branchName)
	if err != nil {
		io.PfRed("invalid input: %v\n", err)
		return
	}
	res, err := isen.Calc(kind, value, gamma, branch)
	if err != nil {
		io.PfRed("invalid input: %v\n", err)
		return
	}

	// results
	io.Pf("%v", res)
	if doplot {
		isen.PlotRatios(dirout, "isenflow", gamma, 200, res)
		io.Pf("\nchart saved to %s\n", dirout)
	}
}

// runBatch performs all calculations listed in a .flow file
func runBatch(filename string, doplot bool, dirout string) {
	batch, err := inp.ReadBatch(filename)
	if err != nil {
		io.PfRed("invalid input: %v\n", err)
		return
	}
	if batch.Desc != "" {
		io.Pf("\n%s\n", batch.Desc)
	}
	io.Pf("gamma = %g\n", batch.GasModel.Gamma)
	for i, run := range batch.Runs {
		io.PfYel("\nrun %d: %s = %g %s\n", i, run.Kind, run.Value, run.Branch)
		res, err := run.Calc(batch.GasModel.Gamma)
		if err != nil {
			io.PfRed("invalid input: %v\n", err)
			continue
		}
		io.Pf("%v", res)
		if doplot {
			isen.PlotRatios(dirout, io.Sf("isenflow-run%d", i), batch.GasModel.Gamma, 200, res)
		}
	}
}
