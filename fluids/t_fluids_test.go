// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluids

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. stream validation")

	ok := Props{MassFlow: 46800, Density: 58.74, Viscosity: 52}
	if err := ok.Validate(); err != nil {
		tst.Errorf("Validate failed: %v", err)
		return
	}

	// the error names every absent field
	bad := Props{Density: 58.74}
	err := bad.Validate()
	if err == nil {
		tst.Errorf("error expected for missing properties")
		return
	}
	io.Pf("OK: %v\n", err)
	if !strings.Contains(err.Error(), "mass_flow") || !strings.Contains(err.Error(), "viscosity") {
		tst.Errorf("error must name the missing fields: %v", err)
		return
	}
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. bulk flow derivations")

	chk.Float64(tst, "volm flow", 1e-15, VolmFlow(3600, 1.0), 1.0)
	chk.Float64(tst, "retention", 1e-15, Retention(120, 1.0), 2.0)
	chk.Float64(tst, "reynolds", 1e-12, Reynolds(2.0, 62.46, 0.5, 0.1), 62.46*2.0*0.5/0.1)
	chk.Float64(tst, "water fraction", 1e-15, WaterFraction(1.0, 3.0), 0.75)
}

func Test_fld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld03. oil-water liquid mixing")

	oil := Props{MassFlow: 3.509e5, Density: 59.42, Viscosity: 152}
	wat := Props{MassFlow: 1.482e6, Density: 62.46, Viscosity: 0.75}

	liq, err := LiquidProps(oil, wat)
	if err != nil {
		tst.Errorf("LiquidProps failed: %v", err)
		return
	}
	io.Pforan("liq = %+v\n", liq)
	chk.Float64(tst, "mass flow", 1e-9, liq.MassFlow, 1832900.0)
	chk.Float64(tst, "density", 1e-9, liq.Density, 61.85416483133928)
	chk.Float64(tst, "viscosity", 1e-9, liq.Viscosity, 30.89229251971496)

	// without water the combined liquid is the oil stream exactly
	liq, err = LiquidProps(oil, Props{})
	if err != nil {
		tst.Errorf("LiquidProps failed: %v", err)
		return
	}
	chk.Float64(tst, "dry mass flow", 1e-15, liq.MassFlow, oil.MassFlow)
	chk.Float64(tst, "dry density", 1e-15, liq.Density, oil.Density)
	chk.Float64(tst, "dry viscosity", 1e-15, liq.Viscosity, oil.Viscosity)
}

func Test_fld04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld04. in-vessel velocities")

	vid, hliq := 10.5, 4.725
	vxLiq, vxGas, err := TwoPhaseVelocities(vid, hliq, 8.2309, 35.1842)
	if err != nil {
		tst.Errorf("TwoPhaseVelocities failed: %v", err)
		return
	}
	io.Pforan("vxLiq=%v vxGas=%v\n", vxLiq, vxGas)
	if vxLiq <= 0 || vxGas <= 0 {
		tst.Errorf("velocities must be positive")
		return
	}

	_, _, _, err = ThreePhaseVelocities(vid, 5.0, 10.0, 1, 1, 1)
	if err == nil {
		tst.Errorf("error expected for hwat > hoil")
		return
	}
	io.Pf("OK: %v\n", err)
}
