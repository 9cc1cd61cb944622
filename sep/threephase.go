// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sep

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/kwellis/gosep/drops"
	"github.com/kwellis/gosep/fluids"
	"github.com/kwellis/gosep/geo"
)

// ThreePhase sizes a three phase (oil-water-gas) horizontal separator. All
// derived quantities are computed on construction; the object is read-only
// afterwards.
type ThreePhase struct {
	Vessel
	Leff float64      // effective separation length, ft
	Hoil float64      // oil height from the vessel bottom, ft
	Hwat float64      // water height from the vessel bottom, ft
	Oil  fluids.Props // oil stream
	Wat  fluids.Props // water stream
	Gas  fluids.Props // gas stream

	// derived
	Aoil, Awat, Agas       float64 // cross-sectional areas, ft²
	VxOil, VxWat, VxGas    float64 // bulk horizontal velocities, ft/s
	RetOil, RetWat, RetGas float64 // retention times, minutes
	ReOil, ReWat, ReGas    float64 // Reynolds numbers
	DropOiW                float64 // smallest oil droplet separated from the water, microns
	DropWiO                float64 // smallest water droplet separated from the oil, microns
	DropOiG                float64 // smallest oil droplet separated from the gas, microns
}

// NewThreePhase builds a three phase separator, computing per-phase flow
// quantities and the three minimum separable droplets. Each droplet problem
// divides the distance a droplet must travel by the retention time of the
// continuous phase to get the required terminal velocity, then inverts the
// drag correlation for the diameter:
//  oil-in-water -- rise through the full water band during the water retention
//  water-in-oil -- settle through the oil band during the oil retention
//  oil-in-gas   -- settle through the gas band during the gas retention
func NewThreePhase(vid, lss, leff, hoil, hwat float64, oil, wat, gas fluids.Props) (o *ThreePhase, err error) {
	if err = oil.Validate(); err != nil {
		return
	}
	if err = wat.Validate(); err != nil {
		return
	}
	if err = gas.Validate(); err != nil {
		return
	}

	o = &ThreePhase{Vessel: Vessel{Vid: vid, Lss: lss}, Leff: leff, Hoil: hoil, Hwat: hwat, Oil: oil, Wat: wat, Gas: gas}

	o.Aoil, o.Awat, o.Agas, err = geo.VesselAreaThreePhase(vid, hoil, hwat)
	if err != nil {
		return nil, err
	}
	dhydOil, dhydWat, dhydGas, err := geo.VesselDhydThreePhase(vid, hoil, hwat)
	if err != nil {
		return nil, err
	}

	qoil := oil.VolmFlow()
	qwat := wat.VolmFlow()
	qgas := gas.VolmFlow()

	o.VxOil = fluids.VelocityVolm(qoil, o.Aoil)
	o.VxWat = fluids.VelocityVolm(qwat, o.Awat)
	o.VxGas = fluids.VelocityVolm(qgas, o.Agas)

	o.RetOil = fluids.Retention(leff, o.VxOil)
	o.RetWat = fluids.Retention(leff, o.VxWat)
	o.RetGas = fluids.Retention(leff, o.VxGas)

	o.ReOil = fluids.Reynolds(o.VxOil, oil.Density, dhydOil, oil.MuLbm())
	o.ReWat = fluids.Reynolds(o.VxWat, wat.Density, dhydWat, wat.MuLbm())
	o.ReGas = fluids.Reynolds(o.VxGas, gas.Density, dhydGas, gas.MuLbm())

	dhGas := vid - hoil  // gas band thickness
	dhOil := hoil - hwat // oil band thickness

	vtOiWreq := hwat / (o.RetWat * 60.0)
	vtWiOreq := dhOil / (o.RetOil * 60.0)
	vtOiGreq := dhGas / (o.RetGas * 60.0)

	ddOiW, _, err := drops.DropletDiameter(vtOiWreq, oil.Density, wat.Density, wat.MuLbm(), drops.Gravity, 0)
	if err != nil {
		return nil, err
	}
	ddWiO, _, err := drops.DropletDiameter(vtWiOreq, wat.Density, oil.Density, oil.MuLbm(), drops.Gravity, 0)
	if err != nil {
		return nil, err
	}
	ddOiG, _, err := drops.DropletDiameter(vtOiGreq, oil.Density, gas.Density, gas.MuLbm(), drops.Gravity, 0)
	if err != nil {
		return nil, err
	}
	o.DropOiW = drops.FeetToMicron(ddOiW)
	o.DropWiO = drops.FeetToMicron(ddWiO)
	o.DropOiG = drops.FeetToMicron(ddOiG)
	return
}

// CoalPlateLength computes the length of coalescing plates needed to pull oil
// droplets of dm microns out of the water band. The plates are assumed fully
// submerged in water. The droplet rises across the vertical projection of the
// plate gap while the water carries it horizontally; the carry distance
// projected along the plate, grown by the performance margin, is the plate
// length. prms may override the defaults:
//  "pgap" -- gap between plates, inches (default 0.75)
//  "angl" -- plate angle off horizontal, degrees (default 45)
//  "pf"   -- performance margin fraction of extra length (default 0.6)
//  dm   -- oil droplet diameter, microns
//  plen -- plate length, ft
func (o ThreePhase) CoalPlateLength(dm float64, prms dbf.Params) (plen float64, err error) {
	pgap, angl, pf := 0.75, 45.0, 0.6
	for _, p := range prms {
		switch p.N {
		case "pgap":
			pgap = p.V
		case "angl":
			angl = p.V
		case "pf":
			pf = p.V
		}
	}
	dd := drops.MicronToFeet(dm)
	vt, _, err := drops.VelocityTerminal(dd, o.Oil.Density, o.Wat.Density, o.Wat.MuLbm(), drops.Gravity, 0)
	if err != nil {
		return
	}
	θ := angl * math.Pi / 180.0
	rise := (pgap / 12.0) * math.Cos(θ) // vertical distance between plates, ft
	carry := o.VxWat * rise / vt        // horizontal travel while the droplet rises, ft
	plen = (carry / math.Cos(θ)) * (1.0 + pf)
	return
}

// Results prints the sizing results table
func (o ThreePhase) Results() {
	l := io.Sf("%9s | %8s | %8s | %8s | %8s \n", "Tags", "Units", "Oil", "Water", "Vapor")
	l += io.StrThickLine(54)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f | %8.2f \n", "X-Area", "ft2", o.Aoil, o.Awat, o.Agas)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f | %8.2f \n", "Velocity", "ft/s", o.VxOil, o.VxWat, o.VxGas)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f | %8.2f \n", "Retention", "min", o.RetOil, o.RetWat, o.RetGas)
	l += io.Sf("%9s | %8s | %8.0f | %8.0f | %8.0f \n", "Reynolds", "none", o.ReOil, o.ReWat, o.ReGas)
	l += io.Sf("%9s | %8s | %8.2f | %8.2f | %8.2f \n", "Min_Drop", "µm", o.DropWiO, o.DropOiW, o.DropOiG)
	io.Pf("%s", l)
}
