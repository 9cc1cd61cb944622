// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sep implements hydraulic and mechanical sizing of two and three phase horizontal separators
package sep

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/kwellis/gosep/mech"
)

// Vessel holds the shell dimensions shared by the two and three phase
// separators. Both variants hold it by composition and expose its mechanical
// methods directly.
type Vessel struct {
	Vid float64 // vessel inner diameter, ft
	Lss float64 // seam to seam length, ft
}

// ShellThick computes the shell thickness for a given maximum allowable
// working pressure, UG-27(c)(1). prms may override the defaults:
//  "sv"   -- material max allowable stress, psi (default 20000)
//  "eff"  -- joint efficiency factor (default 1)
//  "corr" -- corrosion allowance, inches (default 0.125)
//  mawp -- maximum allowable working pressure, psig
//  thk  -- shell thickness, inches
func (o Vessel) ShellThick(mawp float64, prms dbf.Params) (thk float64) {
	sv, eff, corr := 20000.0, 1.0, 0.125
	for _, p := range prms {
		switch p.N {
		case "sv":
			sv = p.V
		case "eff":
			eff = p.V
		case "corr":
			corr = p.V
		}
	}
	return mech.ShellThickness(o.Vid, mawp, sv, eff, corr)
}

// WeightBare computes the weight of the vessel body and elliptical heads,
// without internals, insulation, nozzles or supports.
//  thk      -- shell thickness, inches
//  rhoMetal -- metal density, lbm/ft³; ≤ 0 selects carbon steel (490)
//  wbv      -- weight of the bare vessel, lbm
func (o Vessel) WeightBare(thk, rhoMetal float64) (wbv float64) {
	return mech.VesselBareWeight(o.Vid, o.Lss, thk, rhoMetal)
}
