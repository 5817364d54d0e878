// Copyright 2026 The Aerocalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Kind selects which flow quantity the caller supplies
type Kind string

// available input kinds
const (
	KindMach    Kind = "M"
	KindT0T     Kind = "T0T"
	KindP0P     Kind = "P0P"
	KindRho0Rho Kind = "rho0rho"
	KindAAstar  Kind = "AoverAstar"
)

// FailKind distinguishes why a calculation produced no result
type FailKind int

// failure causes
const (
	FailDomain      FailKind = iota + 1 // input outside the quantity's valid range
	FailUnbracketed                     // target not attainable within the solver bracket
	FailUnknownKind                     // input kind not recognised
)

// Fail is the error returned by Calc. It tags the cause so callers may branch
// on it; a failed call never yields a partial ratio set.
type Fail struct {
	Kind FailKind
	Msg  string
}

// Error returns the failure message
func (o *Fail) Error() string { return o.Msg }

// Ratios holds the five isentropic flow quantities derived from a single
// (M, γ) pair. Either all values come from the same Mach number or the set
// does not exist at all.
type Ratios struct {
	Mach    float64 // Mach number
	T0T     float64 // stagnation-to-static temperature ratio
	P0P     float64 // stagnation-to-static pressure ratio
	Rho0Rho float64 // stagnation-to-static density ratio
	AAstar  float64 // local-to-throat area ratio
}

// String returns the ratio set as a table with six decimal places
func (o *Ratios) String() (l string) {
	l = io.Sf("%-10s%12.6f\n", "Mach", o.Mach)
	l += io.Sf("%-10s%12.6f\n", "T0/T", o.T0T)
	l += io.Sf("%-10s%12.6f\n", "P0/P", o.P0P)
	l += io.Sf("%-10s%12.6f\n", "rho0/rho", o.Rho0Rho)
	l += io.Sf("%-10s%12.6f\n", "A/A*", o.AAstar)
	return
}

// KindFromString converts a collaborator-supplied name to a Kind
func KindFromString(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "m", "mach":
		return KindMach, nil
	case "t0t", "t0/t":
		return KindT0T, nil
	case "p0p", "p0/p":
		return KindP0P, nil
	case "rho0rho", "rho0/rho":
		return KindRho0Rho, nil
	case "aoverastar", "aastar", "a/a*":
		return KindAAstar, nil
	}
	return "", &Fail{FailUnknownKind, io.Sf("input kind %q is not available", name)}
}

// BranchFromString converts a collaborator-supplied name to a Branch.
// An empty name selects the subsonic branch, matching the original tool.
func BranchFromString(name string) (Branch, error) {
	switch strings.ToLower(name) {
	case "", "subsonic":
		return Subsonic, nil
	case "supersonic":
		return Supersonic, nil
	}
	return "", &Fail{FailDomain, io.Sf("branch %q is not available", name)}
}

// Calc resolves the Mach number from the supplied quantity and composes the
// full ratio set from it. branch is consulted only when kind is KindAAstar.
// On any failure the ratio set is nil and the error is a *Fail tagging the
// cause; there are no partial results.
func Calc(kind Kind, value, γ float64, branch Branch) (*Ratios, error) {

	// γ-1 divides every relation
	if γ <= 1.0 {
		return nil, &Fail{FailDomain, io.Sf("gamma must be greater than 1 (%g given)", γ)}
	}

	// resolve Mach number
	var M float64
	switch kind {
	case KindMach:
		if !(value > 0) || math.IsInf(value, 0) {
			return nil, &Fail{FailDomain, io.Sf("Mach number must be positive and finite (%g given)", value)}
		}
		M = value
	case KindT0T:
		if value < 1.0 {
			return nil, &Fail{FailDomain, io.Sf("T0/T=%g is below the stagnation limit of 1", value)}
		}
		M = MachFromT0T(value, γ)
	case KindP0P:
		M = MachFromP0P(value, γ)
	case KindRho0Rho:
		M = MachFromRho0Rho(value, γ)
	case KindAAstar:
		if value < 1.0 {
			return nil, &Fail{FailDomain, io.Sf("A/A*=%g is below the sonic minimum of 1", value)}
		}
		M = MachFromAAstar(value, γ, branch)
	default:
		return nil, &Fail{FailUnknownKind, io.Sf("input kind %q is not available", string(kind))}
	}

	// validate
	if math.IsNaN(M) || math.IsInf(M, 0) {
		return nil, &Fail{FailUnbracketed, io.Sf("no Mach number in (0,%g] produces %s=%g", MachMax, string(kind), value)}
	}

	// compose
	return &Ratios{
		Mach:    M,
		T0T:     T0OverT(M, γ),
		P0P:     P0OverP(M, γ),
		Rho0Rho: Rho0OverRho(M, γ),
		AAstar:  AOverAstar(M, γ),
	}, nil
}
