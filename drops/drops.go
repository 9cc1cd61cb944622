// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drops implements terminal velocity and sizing of droplets in a continuous fluid
package drops

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Gravity = 32.174   // standard gravity, ft/s²
	MuFt    = 304800.0 // microns per foot
	MuCp    = 1488.2   // centipoise per lbm/(ft・s)
	CdTurb  = 0.34     // drag coefficient plateau in the fully turbulent regime
	VtTol   = 0.001    // terminal velocity convergence tolerance, ft/s
	DdTol   = 1e-9     // droplet diameter convergence tolerance, ft
	NmaxIt  = 10000    // default cap on fixed-point iterations
)

// MicronToFeet converts a droplet diameter from microns to feet
func MicronToFeet(dm float64) float64 {
	return dm / MuFt
}

// FeetToMicron converts a droplet diameter from feet to microns
func FeetToMicron(df float64) float64 {
	return df * MuFt
}

// CentipoiseToLbm converts a dynamic viscosity from centipoise to lbm/(ft・s)
func CentipoiseToLbm(muCp float64) float64 {
	return muCp / MuCp
}

// ReynoldsSphere computes the Reynolds number for flow past a sphere or droplet
//  dd     -- droplet diameter, ft
//  vd     -- droplet velocity, ft/s
//  rhoFld -- density of the continuous fluid, lbm/ft³
//  muFld  -- viscosity of the continuous fluid, lbm/(ft・s)
func ReynoldsSphere(dd, vd, rhoFld, muFld float64) float64 {
	return dd * vd * rhoFld / muFld
}

// DragCoeff computes the drag coefficient of a sphere moving through a fluid.
// A stagnant droplet (re = 0) sees an effectively infinite drag coefficient.
//  re -- Reynolds number
func DragCoeff(re float64) float64 {
	if re == 0 {
		return math.MaxFloat64
	}
	return 24.0/re + 3.0/math.Sqrt(re) + CdTurb
}

// VelocityDrop computes the terminal velocity of a droplet for a given drag
// coefficient. The density difference is taken in absolute value so the same
// balance serves rising and settling droplets.
//  dd      -- droplet diameter, ft
//  cd      -- drag coefficient
//  rhoDrop -- droplet density, lbm/ft³
//  rhoFld  -- continuous fluid density, lbm/ft³
//  g       -- gravitational acceleration, ft/s²
func VelocityDrop(dd, cd, rhoDrop, rhoFld, g float64) float64 {
	drho := math.Abs((rhoDrop - rhoFld) / rhoFld)
	return math.Sqrt((4.0 * g / 3.0) * (dd / cd) * drho)
}

// DiameterDrop computes the droplet diameter that reaches a specified terminal
// velocity for a given drag coefficient. Algebraic inverse of VelocityDrop.
//  vt      -- terminal velocity, ft/s
//  cd      -- drag coefficient
//  rhoDrop -- droplet density, lbm/ft³
//  rhoFld  -- continuous fluid density, lbm/ft³
//  g       -- gravitational acceleration, ft/s²
func DiameterDrop(vt, cd, rhoDrop, rhoFld, g float64) float64 {
	drho := math.Abs(rhoFld / (rhoDrop - rhoFld))
	return vt * vt * (3.0 / (4.0 * g)) * cd * drho
}

// VelocityTerminal computes the terminal velocity of a droplet by fixed-point
// iteration over velocity, Reynolds number and drag coefficient, starting from
// the turbulent-regime guess cd = 0.34 and stopping when the velocity update
// falls below VtTol. nmaxIt ≤ 0 selects the default cap NmaxIt; on exhaustion
// the last estimate is returned together with a non-convergence error.
//  dd      -- droplet diameter, ft
//  rhoDrop -- droplet density, lbm/ft³
//  rhoFld  -- continuous fluid density, lbm/ft³
//  muFld   -- continuous fluid viscosity, lbm/(ft・s)
//  g       -- gravitational acceleration, ft/s²
//  vt      -- terminal velocity, ft/s
//  nit     -- number of iterations performed
func VelocityTerminal(dd, rhoDrop, rhoFld, muFld, g float64, nmaxIt int) (vt float64, nit int, err error) {
	if nmaxIt <= 0 {
		nmaxIt = NmaxIt
	}
	cd := CdTurb
	vt = VelocityDrop(dd, cd, rhoDrop, rhoFld, g)
	for nit = 1; nit <= nmaxIt; nit++ {
		re := ReynoldsSphere(dd, vt, rhoFld, muFld)
		cd = DragCoeff(re)
		vtNew := VelocityDrop(dd, cd, rhoDrop, rhoFld, g)
		if math.Abs(vtNew-vt) < VtTol {
			vt = vtNew
			return
		}
		vt = vtNew
	}
	nit = nmaxIt
	err = chk.Err("terminal velocity did not converge after %d iterations; last estimate vt=%g ft/s", nmaxIt, vt)
	return
}

// DropletDiameter computes the droplet diameter that settles (or rises) at a
// specified terminal velocity. Mirror of VelocityTerminal with the diameter as
// the unknown; converges when the diameter update falls below DdTol. The tight
// tolerance compensates for the small magnitude of a foot-denominated
// micron-scale droplet. nmaxIt ≤ 0 selects the default cap NmaxIt.
//  vt      -- terminal velocity, ft/s
//  rhoDrop -- droplet density, lbm/ft³
//  rhoFld  -- continuous fluid density, lbm/ft³
//  muFld   -- continuous fluid viscosity, lbm/(ft・s)
//  g       -- gravitational acceleration, ft/s²
//  dd      -- droplet diameter, ft
//  nit     -- number of iterations performed
func DropletDiameter(vt, rhoDrop, rhoFld, muFld, g float64, nmaxIt int) (dd float64, nit int, err error) {
	if nmaxIt <= 0 {
		nmaxIt = NmaxIt
	}
	cd := CdTurb
	dd = DiameterDrop(vt, cd, rhoDrop, rhoFld, g)
	for nit = 1; nit <= nmaxIt; nit++ {
		re := ReynoldsSphere(dd, vt, rhoFld, muFld)
		cd = DragCoeff(re)
		ddNew := DiameterDrop(vt, cd, rhoDrop, rhoFld, g)
		if math.Abs(ddNew-dd) < DdTol {
			dd = ddNew
			return
		}
		dd = ddNew
	}
	nit = nmaxIt
	err = chk.Err("droplet diameter did not converge after %d iterations; last estimate dd=%g ft", nmaxIt, dd)
	return
}
