// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mech implements shell thickness and weight equations for horizontal pressure vessels
package mech

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RhoSteel is the density of carbon steel, lbm/ft³
const RhoSteel = 490.0

// ShellThickness computes the vessel shell thickness per ASME UG-27(c)(1),
// inner-radius form, plus the corrosion allowance.
//  vid  -- vessel inner diameter, ft
//  mawp -- maximum allowable working pressure, psig
//  sv   -- material maximum allowable stress, psi
//  eff  -- joint efficiency factor
//  corr -- corrosion allowance, inches
//  thk  -- shell thickness, inches
func ShellThickness(vid, mawp, sv, eff, corr float64) float64 {
	vir := 12.0 * vid / 2.0 // vessel inner radius, inches
	return mawp*vir/(sv*eff-0.6*mawp) + corr
}

// SurfaceSpheroidOblate computes the surface area of an oblate spheroid
// (chubbier than it is tall). See mathworld.wolfram.com/OblateSpheroid.html
//  xRadius -- equatorial radius
//  yRadius -- polar radius; must be smaller than xRadius
func SurfaceSpheroidOblate(xRadius, yRadius float64) float64 {
	if xRadius <= yRadius {
		chk.Panic("x-radius (%g) must be greater than y-radius (%g) for an oblate spheroid", xRadius, yRadius)
	}
	ecc := math.Sqrt(1.0 - yRadius*yRadius/(xRadius*xRadius))
	return 2.0*math.Pi*xRadius*xRadius + (math.Pi*yRadius*yRadius/ecc)*math.Log((1.0+ecc)/(1.0-ecc))
}

// SurfaceCylinder computes the lateral surface area of a cylinder
func SurfaceCylinder(diam, height float64) float64 {
	return math.Pi * diam * height
}

// SurfaceEllipticalHead computes the surface area of one 2:1 elliptical head.
// Approximation; the ASME code should be consulted for higher accuracy.
//  vid -- vessel inner diameter, ft
func SurfaceEllipticalHead(vid float64) float64 {
	xRadius := vid / 2.0
	yRadius := xRadius / 2.0 // 2:1 aspect flair
	return SurfaceSpheroidOblate(xRadius, yRadius) / 2.0
}

// VesselBareWeight computes the weight of the shell body and two elliptical
// heads. Internals, insulation, nozzles and supports are not included.
//  vid      -- vessel inner diameter, ft
//  lss      -- seam to seam length, ft
//  thk      -- shell thickness, inches
//  rhoMetal -- metal density, lbm/ft³; ≤ 0 selects carbon steel
//  wbv      -- weight of the bare vessel, lbm
func VesselBareWeight(vid, lss, thk, rhoMetal float64) float64 {
	if rhoMetal <= 0 {
		rhoMetal = RhoSteel
	}
	asCyli := SurfaceCylinder(vid, lss)
	wgCyli := rhoMetal * asCyli * thk / 12.0
	asHead := SurfaceEllipticalHead(vid)
	wgHead := rhoMetal * asHead * thk / 12.0
	return wgCyli + 2.0*wgHead
}
