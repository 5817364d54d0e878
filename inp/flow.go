// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of .flow JSON files holding batches of
// isentropic-flow calculations
package inp

import (
	"encoding/json"
	"os"

	"github.com/biriyanii/aerodynamics-calculator/gas"
	"github.com/biriyanii/aerodynamics-calculator/isen"
	"github.com/cpmech/gosl/chk"
)

// Run holds one calculation request
type Run struct {
	Kind   string  `json:"kind"`   // input quantity: "M", "T0T", "P0P", "rho0rho", "AoverAstar"
	Value  float64 `json:"value"`  // value of the input quantity
	Branch string  `json:"branch"` // "subsonic" or "supersonic"; A/A* only; empty means subsonic
}

// Batch holds a set of calculation requests sharing one gas
type Batch struct {

	// input data
	Desc  string  `json:"desc"`  // description of batch
	Gas   string  `json:"gas"`   // preset gas name; e.g. "air", "helium"
	Gamma float64 `json:"gamma"` // ratio of specific heats; 0 means use gas preset (or air)
	Runs  []*Run  `json:"runs"`  // calculations to perform

	// derived
	GasModel *gas.Model // resolved gas properties
}

// Calc performs this run's calculation with the given γ
func (o *Run) Calc(γ float64) (*isen.Ratios, error) {
	kind, err := isen.KindFromString(o.Kind)
	if err != nil {
		return nil, err
	}
	branch, err := isen.BranchFromString(o.Branch)
	if err != nil {
		return nil, err
	}
	return isen.Calc(kind, o.Value, γ, branch)
}

// ParseBatch decodes a batch from JSON data and resolves the gas properties.
// An explicit gamma wins over the gas preset; with neither given, dry air is
// assumed.
func ParseBatch(b []byte) (o *Batch, err error) {
	o = new(Batch)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("inp: cannot unmarshal flow data: %v", err)
	}

	// gas properties
	name := o.Gas
	if name == "" {
		name = "air"
	}
	o.GasModel, err = gas.New(name)
	if err != nil {
		return nil, err
	}
	if o.Gamma > 0 {
		o.GasModel.Gamma = o.Gamma
	}
	if o.GasModel.Gamma <= 1.0 {
		return nil, chk.Err("inp: gamma must be greater than 1 (%g given)", o.GasModel.Gamma)
	}

	if len(o.Runs) == 0 {
		return nil, chk.Err("inp: flow data contains no runs")
	}
	return
}

// ReadBatch reads a batch of calculations from a .flow JSON file.
// A missing or unreadable file yields an error, not a panic.
func ReadBatch(filename string) (*Batch, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("inp: cannot read flow file %q: %v", filename, err)
	}
	return ParseBatch(b)
}
