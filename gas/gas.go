// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements perfect-gas property sets for the isentropic-flow
// calculator, so collaborators can name a gas instead of typing γ by hand
package gas

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the perfect-gas constants used by the flow relations
type Model struct {
	Gamma float64 // ratio of specific heats cp/cv
	R     float64 // specific gas constant [J/(kg·K)]
}

// Init initialises the model from named parameters. Unset parameters keep
// dry-air values.
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Gamma = 1.4
	o.R = 287.06
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gamma":
			o.Gamma = p.V
		case "r":
			o.R = p.V
		default:
			return chk.Err("gas: parameter named %q is incorrect", p.N)
		}
	}
	if o.Gamma <= 1.0 {
		return chk.Err("gas: gamma must be greater than 1 (%g given)", o.Gamma)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // dry air
			&dbf.P{N: "gamma", V: 1.4},   // [-]
			&dbf.P{N: "R", V: 287.06},    // [J/(kg·K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "gamma", V: o.Gamma},
		&dbf.P{N: "R", V: o.R},
	}
}

// New returns a preset gas model
func New(name string) (*Model, error) {
	allocator, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("gas: preset named %q is not available", name)
	}
	return allocator(), nil
}

// presets holds all available gas models
var presets = map[string]func() *Model{
	"air":    func() *Model { return &Model{Gamma: 1.4, R: 287.06} },
	"helium": func() *Model { return &Model{Gamma: 1.66, R: 2077.1} },
	"argon":  func() *Model { return &Model{Gamma: 1.67, R: 208.13} },
	"co2":    func() *Model { return &Model{Gamma: 1.289, R: 188.92} },
	"steam":  func() *Model { return &Model{Gamma: 1.33, R: 461.5} },
}
