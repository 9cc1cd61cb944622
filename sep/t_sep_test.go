// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sep

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/kwellis/gosep/fluids"
)

func Test_sep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sep01. two phase degasser")

	oil := fluids.Props{MassFlow: 3.509e5, Density: 59.42, Viscosity: 152}
	wat := fluids.Props{MassFlow: 1.482e6, Density: 62.46, Viscosity: 0.75}
	gas := fluids.Props{MassFlow: (75.0 / 40.0) * 7.775e4, Density: 1.151, Viscosity: 1.24e-2}

	liq, err := fluids.LiquidProps(oil, wat)
	if err != nil {
		tst.Errorf("LiquidProps failed: %v", err)
		return
	}

	vid, lss := 10.5, 35.0
	leff := 0.8 * lss
	hliq := 0.45 * vid

	s, err := NewTwoPhase(vid, lss, leff, hliq, liq, gas)
	if err != nil {
		tst.Errorf("NewTwoPhase failed: %v", err)
		return
	}
	if chk.Verbose {
		s.Results()
	}

	chk.Float64(tst, "aliq", 1e-9, s.Aliq, 37.79177508799373)
	chk.Float64(tst, "agas", 1e-9, s.Agas, 48.79837242657494)
	chk.Float64(tst, "vxLiq", 1e-12, s.VxLiq, 0.2178060965535176)
	chk.Float64(tst, "vxGas", 1e-12, s.VxGas, 0.720972181897064)
	chk.Float64(tst, "retLiq", 1e-11, s.RetLiq, 2.142578532240492)
	chk.Float64(tst, "retGas", 1e-12, s.RetGas, 0.6472741645020841)
	chk.Float64(tst, "reLiq", 1e-7, s.ReLiq, 3789.593478829474)
	chk.Float64(tst, "reGas", 1e-4, s.ReGas, 694476.0663616167)
	chk.Float64(tst, "dropLiq", 1e-6, s.DropLiq, 36.1155353122375)

	// a 140 micron liquid droplet settles out of the gas comfortably faster
	// than the knockout requirement
	vt, err := s.TerminalLiqGas(140)
	if err != nil {
		tst.Errorf("TerminalLiqGas failed: %v", err)
		return
	}
	chk.Float64(tst, "vt 140µm", 1e-9, vt, 0.9654946720814758)
}

func Test_sep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sep02. three phase separator")

	oil := fluids.Props{MassFlow: 46800, Density: 58.74, Viscosity: 52}
	wat := fluids.Props{MassFlow: 494000, Density: 62.46, Viscosity: 0.75}
	gas := fluids.Props{MassFlow: 3928, Density: 0.9444, Viscosity: 1.327e-2}

	vid, lss, leff := 8.5, 50.0, 40.0
	hoil, hwat := 6.8, 6.375

	s, err := NewThreePhase(vid, lss, leff, hoil, hwat, oil, wat, gas)
	if err != nil {
		tst.Errorf("NewThreePhase failed: %v", err)
		return
	}
	if chk.Verbose {
		s.Results()
	}

	// band areas tile the full cross-section
	chk.Float64(tst, "closure", 1e-12, s.Aoil+s.Awat+s.Agas, math.Pi*4.25*4.25)

	chk.Float64(tst, "vxOil", 1e-12, s.VxOil, 0.07341794002406107)
	chk.Float64(tst, "vxWat", 1e-12, s.VxWat, 0.0481248385968982)
	chk.Float64(tst, "vxGas", 1e-12, s.VxGas, 0.14300159604033316)
	chk.Float64(tst, "retOil", 1e-11, s.RetOil, 9.08043274502365)
	chk.Float64(tst, "retWat", 1e-11, s.RetWat, 13.85286031296187)
	chk.Float64(tst, "retGas", 1e-11, s.RetGas, 4.6619526293862865)
	chk.Float64(tst, "reOil", 1e-9, s.ReOil, 98.03439932978297)
	chk.Float64(tst, "reWat", 1e-6, s.ReWat, 43282.48097160393)
	chk.Float64(tst, "reGas", 1e-6, s.ReGas, 33337.5630923815)

	// Reynolds numbers are finite and positive
	for _, re := range []float64{s.ReOil, s.ReWat, s.ReGas} {
		if re <= 0 || math.IsInf(re, 0) || math.IsNaN(re) {
			tst.Errorf("invalid Reynolds number %v", re)
			return
		}
	}

	chk.Float64(tst, "dropOiW", 1e-6, s.DropOiW, 245.9794107036985)
	chk.Float64(tst, "dropWiO", 1e-6, s.DropWiO, 619.1105795932689)
	chk.Float64(tst, "dropOiG", 1e-6, s.DropOiG, 7.034914265571024)
}

func Test_sep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sep03. invalid construction")

	oil := fluids.Props{MassFlow: 46800, Density: 58.74, Viscosity: 52}
	wat := fluids.Props{MassFlow: 494000, Density: 62.46, Viscosity: 0.75}
	gas := fluids.Props{MassFlow: 3928, Density: 0.9444, Viscosity: 1.327e-2}

	// height ordering must fail before any arithmetic
	_, err := NewThreePhase(8.5, 50, 40, 5.0, 10.0, oil, wat, gas)
	if err == nil {
		tst.Errorf("error expected for hwat > hoil")
		return
	}
	io.Pf("OK: %v\n", err)

	_, err = NewThreePhase(8.5, 50, 40, 9.0, 3.0, oil, wat, gas)
	if err == nil {
		tst.Errorf("error expected for hoil > vid")
		return
	}
	io.Pf("OK: %v\n", err)

	// missing stream properties
	_, err = NewThreePhase(8.5, 50, 40, 6.8, 6.375, oil, wat, fluids.Props{MassFlow: 3928})
	if err == nil {
		tst.Errorf("error expected for incomplete gas stream")
		return
	}
	io.Pf("OK: %v\n", err)

	_, err = NewTwoPhase(10.5, 35, 28, 11.0, oil, gas)
	if err == nil {
		tst.Errorf("error expected for hliq > vid")
		return
	}
	io.Pf("OK: %v\n", err)
}

func Test_sep04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sep04. coalescing plates and mechanical methods")

	oil := fluids.Props{MassFlow: 5.131e4, Density: 58.74, Viscosity: 52}
	wat := fluids.Props{MassFlow: 1.11e5, Density: 62.46, Viscosity: 0.75}
	gas := fluids.Props{MassFlow: 583.2, Density: 0.9444, Viscosity: 1.327e-2}

	// J-Pad primary dimensions, back-computed from the 360 ft³ shell volume
	wall := 0.875 / 12.0
	vid := 3.0 - 2.0*wall
	lss := 360.0 / (math.Pi * vid * vid / 4.0)
	leff := 0.75 * lss
	hoil := 0.7 * vid
	hwat := 0.5 * vid

	s, err := NewThreePhase(vid, lss, leff, hoil, hwat, oil, wat, gas)
	if err != nil {
		tst.Errorf("NewThreePhase failed: %v", err)
		return
	}

	chk.Float64(tst, "dropOiW", 1e-6, s.DropOiW, 199.89038021706247)
	chk.Float64(tst, "dropWiO", 1e-6, s.DropWiO, 1012.3698392336497)
	chk.Float64(tst, "dropOiG", 1e-6, s.DropOiG, 4.1724186130015655)

	// plates sized for 150 micron oil droplets, no extra margin
	plen, err := s.CoalPlateLength(150, dbf.Params{&dbf.P{N: "pf", V: 0}})
	if err != nil {
		tst.Errorf("CoalPlateLength failed: %v", err)
		return
	}
	io.Pforan("plen = %v ft\n", plen)
	chk.Float64(tst, "plen pf=0", 1e-9, plen, 2.7243584137224386)

	// the default margin adds sixty percent
	plen, err = s.CoalPlateLength(150, nil)
	if err != nil {
		tst.Errorf("CoalPlateLength failed: %v", err)
		return
	}
	chk.Float64(tst, "plen pf=0.6", 1e-9, plen, 4.358973461955902)

	// mechanical methods ride along on the sizing object
	thk := s.ShellThick(675, nil)
	if thk <= 0.125 {
		tst.Errorf("thickness %g must exceed the corrosion allowance", thk)
		return
	}
	wbv := s.WeightBare(thk, 0)
	io.Pforan("thk = %v in, wbv = %v lbm\n", thk, wbv)
	if wbv <= 0 {
		tst.Errorf("bare weight must be positive")
		return
	}
}
