// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluids implements stream properties and the bulk flow quantities used for sizing
package fluids

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/kwellis/gosep/drops"
	"github.com/kwellis/gosep/geo"
)

// Props holds the properties of one phase stream. The droplet cutoffs are
// optional design metadata carried along with the stream; the sizing engine
// does not read them.
type Props struct {

	// required
	MassFlow  float64 `json:"mass_flow"` // mass flow rate, lbm/hr
	Density   float64 `json:"density"`   // density at conditions, lbm/ft³
	Viscosity float64 `json:"viscosity"` // dynamic viscosity, cP

	// droplet removal cutoffs (optional, microns)
	DropIO float64 `json:"drop_io"` // smallest droplet to remove from oil
	DropIW float64 `json:"drop_iw"` // smallest droplet to remove from water
	DropIG float64 `json:"drop_ig"` // smallest droplet to remove from gas
}

// Validate checks that the required properties are present and positive.
// The error names every missing field.
func (o Props) Validate() (err error) {
	var missing []string
	if o.MassFlow <= 0 {
		missing = append(missing, "mass_flow")
	}
	if o.Density <= 0 {
		missing = append(missing, "density")
	}
	if o.Viscosity <= 0 {
		missing = append(missing, "viscosity")
	}
	if len(missing) > 0 {
		return chk.Err("stream is missing properties: %s", strings.Join(missing, ", "))
	}
	return
}

// MuLbm returns the dynamic viscosity in lbm/(ft・s)
func (o Props) MuLbm() float64 {
	return drops.CentipoiseToLbm(o.Viscosity)
}

// VolmFlow returns the volumetric flow at conditions, ft³/s
func (o Props) VolmFlow() float64 {
	return VolmFlow(o.MassFlow, o.Density)
}

// VolmFlow computes the volumetric flow from mass flow and density
//  mflo -- mass flow, lbm/hr
//  rho  -- density, lbm/ft³
//  vflo -- volumetric flow, ft³/s
func VolmFlow(mflo, rho float64) float64 {
	return (mflo / rho) / 3600.0
}

// VelocityVolm computes the bulk velocity across a flow area
//  vflo -- volumetric flow, ft³/s
//  area -- cross-sectional area, ft²
func VelocityVolm(vflo, area float64) float64 {
	return vflo / area
}

// Retention computes the time a phase spends inside the effective length
//  leff -- vessel effective length, ft
//  vx   -- bulk horizontal velocity, ft/s
//  ret  -- retention time, minutes
func Retention(leff, vx float64) float64 {
	return (leff / vx) / 60.0
}

// Reynolds computes the Reynolds number of a phase band
//  vel  -- bulk velocity, ft/s
//  rho  -- density, lbm/ft³
//  dhyd -- hydraulic diameter, ft
//  mu   -- dynamic viscosity, lbm/(ft・s)
func Reynolds(vel, rho, dhyd, mu float64) float64 {
	return rho * vel * dhyd / mu
}

// WaterFraction computes the water volume fraction of an oil and water mixture
//  qoil -- volumetric oil flow, ft³/s
//  qwat -- volumetric water flow, ft³/s
func WaterFraction(qoil, qwat float64) float64 {
	return qwat / (qoil + qwat)
}

// LiquidDensity computes the flow-weighted density of an oil and water mixture
//  fw     -- water volume fraction
//  rhoOil -- oil density, lbm/ft³
//  rhoWat -- water density, lbm/ft³
func LiquidDensity(fw, rhoOil, rhoWat float64) float64 {
	return rhoOil*(1.0-fw) + rhoWat*fw
}

// LiquidViscosity computes the flow-weighted viscosity of an oil and water mixture
//  fw    -- water volume fraction
//  muOil -- oil viscosity, cP
//  muWat -- water viscosity, cP
func LiquidViscosity(fw, muOil, muWat float64) float64 {
	return muOil*(1.0-fw) + muWat*fw
}

// LiquidProps derives the combined-liquid stream from the oil and water
// streams: mass flows are summed, density and viscosity are mixed by the
// water volume fraction. With zero water flow the result equals the oil
// stream exactly.
func LiquidProps(oil, wat Props) (liq Props, err error) {
	if err = oil.Validate(); err != nil {
		return
	}
	if wat.MassFlow == 0 { // dry oil stream
		liq.MassFlow = oil.MassFlow
		liq.Density = oil.Density
		liq.Viscosity = oil.Viscosity
		return
	}
	if err = wat.Validate(); err != nil {
		return
	}
	qoil := oil.VolmFlow()
	qwat := wat.VolmFlow()
	fw := WaterFraction(qoil, qwat)
	liq.MassFlow = oil.MassFlow + wat.MassFlow
	liq.Density = LiquidDensity(fw, oil.Density, wat.Density)
	liq.Viscosity = LiquidViscosity(fw, oil.Viscosity, wat.Viscosity)
	return
}

// TwoPhaseVelocities computes the liquid and gas bulk velocities inside a separator
//  vid     -- vessel inner diameter, ft
//  hliq    -- height of the liquid, ft
//  vfloLiq -- in-situ liquid volumetric flow, ft³/s
//  vfloGas -- in-situ gas volumetric flow, ft³/s
func TwoPhaseVelocities(vid, hliq, vfloLiq, vfloGas float64) (vxLiq, vxGas float64, err error) {
	aliq, agas, err := geo.VesselAreaTwoPhase(vid, hliq)
	if err != nil {
		return
	}
	vxLiq = vfloLiq / aliq
	vxGas = vfloGas / agas
	return
}

// ThreePhaseVelocities computes the oil, water and gas bulk velocities inside a separator
//  vid     -- vessel inner diameter, ft
//  hoil    -- height of the oil, ft
//  hwat    -- height of the water, ft
//  vfloOil -- in-situ oil volumetric flow, ft³/s
//  vfloWat -- in-situ water volumetric flow, ft³/s
//  vfloGas -- in-situ gas volumetric flow, ft³/s
func ThreePhaseVelocities(vid, hoil, hwat, vfloOil, vfloWat, vfloGas float64) (vxOil, vxWat, vxGas float64, err error) {
	aoil, awat, agas, err := geo.VesselAreaThreePhase(vid, hoil, hwat)
	if err != nil {
		return
	}
	vxOil = vfloOil / aoil
	vxWat = vfloWat / awat
	vxGas = vfloGas / agas
	return
}
