// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01. init from parameters")

	var air Model
	err := air.Init(air.GetPrms(true))
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "gamma", 1e-15, air.Gamma, 1.4)
	chk.Float64(tst, "R", 1e-15, air.R, 287.06)

	var he Model
	err = he.Init(dbf.Params{
		&dbf.P{N: "gamma", V: 1.66},
		&dbf.P{N: "R", V: 2077.1},
	})
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "gamma", 1e-15, he.Gamma, 1.66)
}

func Test_gas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas02. invalid parameters")

	var m Model
	err := m.Init(dbf.Params{&dbf.P{N: "pressure", V: 100}})
	if err == nil {
		tst.Errorf("unknown parameter name must fail\n")
		return
	}

	err = m.Init(dbf.Params{&dbf.P{N: "gamma", V: 1.0}})
	if err == nil {
		tst.Errorf("gamma ≤ 1 must fail\n")
	}
}

func Test_gas03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas03. presets")

	air, err := New("air")
	if err != nil {
		tst.Errorf("preset failed: %v\n", err)
		return
	}
	chk.Float64(tst, "air gamma", 1e-15, air.Gamma, 1.4)

	co2, err := New("CO2")
	if err != nil {
		tst.Errorf("preset failed: %v\n", err)
		return
	}
	chk.Float64(tst, "co2 gamma", 1e-15, co2.Gamma, 1.289)

	_, err = New("unobtainium")
	if err == nil {
		tst.Errorf("unknown preset must fail\n")
	}
}
