// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sep

import (
	"github.com/cpmech/gosl/io"

	"github.com/kwellis/gosep/drops"
	"github.com/kwellis/gosep/fluids"
	"github.com/kwellis/gosep/geo"
)

// TwoPhase sizes a two phase (liquid-gas) horizontal separator. All derived
// quantities are computed on construction; the object is read-only afterwards.
type TwoPhase struct {
	Vessel
	Leff float64      // effective separation length, ft
	Hliq float64      // liquid height from the vessel bottom, ft
	Liq  fluids.Props // combined liquid stream
	Gas  fluids.Props // gas stream

	// derived
	Aliq, Agas     float64 // cross-sectional areas, ft²
	VxLiq, VxGas   float64 // bulk horizontal velocities, ft/s
	RetLiq, RetGas float64 // retention times, minutes
	ReLiq, ReGas   float64 // Reynolds numbers
	DropLiq        float64 // smallest liquid droplet separated from the gas, microns
}

// NewTwoPhase builds a two phase separator and computes the per-phase flow
// quantities and the minimum separable liquid-in-gas droplet. The required
// settling velocity is the gas band thickness divided by the gas retention
// time; the droplet solver is run with the liquid as the dispersed phase.
//  vid  -- vessel inner diameter, ft
//  lss  -- seam to seam length, ft
//  leff -- effective separation length, ft
//  hliq -- liquid height from the vessel bottom, ft
//  liq  -- combined liquid properties
//  gas  -- gas properties
func NewTwoPhase(vid, lss, leff, hliq float64, liq, gas fluids.Props) (o *TwoPhase, err error) {
	if err = liq.Validate(); err != nil {
		return
	}
	if err = gas.Validate(); err != nil {
		return
	}

	o = &TwoPhase{Vessel: Vessel{Vid: vid, Lss: lss}, Leff: leff, Hliq: hliq, Liq: liq, Gas: gas}

	o.Aliq, o.Agas, err = geo.VesselAreaTwoPhase(vid, hliq)
	if err != nil {
		return nil, err
	}
	dhydLiq, dhydGas, err := geo.VesselDhydTwoPhase(vid, hliq)
	if err != nil {
		return nil, err
	}

	qliq := liq.VolmFlow()
	qgas := gas.VolmFlow()

	o.VxLiq = fluids.VelocityVolm(qliq, o.Aliq)
	o.VxGas = fluids.VelocityVolm(qgas, o.Agas)

	o.RetLiq = fluids.Retention(leff, o.VxLiq)
	o.RetGas = fluids.Retention(leff, o.VxGas)

	o.ReLiq = fluids.Reynolds(o.VxLiq, liq.Density, dhydLiq, liq.MuLbm())
	o.ReGas = fluids.Reynolds(o.VxGas, gas.Density, dhydGas, gas.MuLbm())

	dhGas := vid - hliq // gas band thickness above the liquid level
	vtReq := dhGas / (o.RetGas * 60.0)
	dd, _, err := drops.DropletDiameter(vtReq, liq.Density, gas.Density, gas.MuLbm(), drops.Gravity, 0)
	if err != nil {
		return nil, err
	}
	o.DropLiq = drops.FeetToMicron(dd)
	return
}

// TerminalLiqGas computes the terminal settling velocity of a liquid droplet
// of dm microns through the gas phase
//  dm -- droplet diameter, microns
//  vt -- terminal velocity, ft/s
func (o TwoPhase) TerminalLiqGas(dm float64) (vt float64, err error) {
	dd := drops.MicronToFeet(dm)
	vt, _, err = drops.VelocityTerminal(dd, o.Liq.Density, o.Gas.Density, o.Gas.MuLbm(), drops.Gravity, 0)
	return
}

// Results prints the sizing results table
func (o TwoPhase) Results() {
	l := io.Sf("%9s | %8s | %8s | %8s \n", "Tags", "Units", "Liquid", "Vapor")
	l += io.StrThickLine(43)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f \n", "X-Area", "ft2", o.Aliq, o.Agas)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f \n", "Velocity", "ft/s", o.VxLiq, o.VxGas)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f \n", "Retention", "min", o.RetLiq, o.RetGas)
	l += io.Sf("%9s | %8s | %8.0f | %8.0f \n", "Reynolds", "none", o.ReLiq, o.ReGas)
	l += io.Sf("%9s | %8s | %8s | %8.2f \n", "Min_Drop", "µm", "n/a", o.DropLiq)
	io.Pf("%s", l)
}
