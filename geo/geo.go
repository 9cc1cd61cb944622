// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the cross-sectional geometry of horizontal cylindrical vessels
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// HydraulicDiameter computes the hydraulic diameter of a non-circular flow channel.
// According to Perry's ChemE handbook Ed. 9 p. 15-88 the perimeter of the flow
// channel includes the interface.
//  a  -- flow area, ft²
//  wp -- wetted perimeter including interfaces, ft
func HydraulicDiameter(a, wp float64) float64 {
	return 4.0 * a / wp
}

// SegmentArea computes the cross-sectional area of a circular segment of height h
// in a circle of radius r. Valid for segments at or below half-full only; callers
// above the mid-line must evaluate the complementary height 2r-h and subtract
// from the full-circle area (see VesselAreaTwoPhase).
//  h -- height of the fill line, ft
//  r -- radius of the vessel, ft
func SegmentArea(h, r float64) (a float64, err error) {
	if h < 0 || h > r {
		err = chk.Err("segment height h=%g must be within [0, r=%g]", h, r)
		return
	}
	a = r*r*math.Acos(1.0-h/r) - (r-h)*math.Sqrt(r*r-(r-h)*(r-h))
	return
}

// SegmentPerimeter computes the arc length of a circular segment of height h in a
// circle of radius r. Valid for segments at or below half-full only.
//  h -- height of the fill line, ft
//  r -- radius of the vessel, ft
func SegmentPerimeter(h, r float64) (p float64, err error) {
	if h < 0 || h > r {
		err = chk.Err("segment height h=%g must be within [0, r=%g]", h, r)
		return
	}
	p = 2.0 * r * math.Acos((r-h)/r)
	return
}

// ChordLength computes the chord length across a circle at fill height h.
// Used for crediting phase interfaces to the wetted perimeter.
//  h -- height of the fill line, ft
//  r -- radius of the vessel, ft
func ChordLength(h, r float64) (c float64, err error) {
	if h < 0 || h > r {
		err = chk.Err("segment height h=%g must be within [0, r=%g]", h, r)
		return
	}
	c = 2.0 * math.Sqrt(r*r-(r-h)*(r-h))
	return
}

// segmentAreaFold applies the fold-over rule: segments above half-full are
// computed on the complementary height and subtracted from the circle area
func segmentAreaFold(h, r float64) (a float64, err error) {
	if h <= r {
		return SegmentArea(h, r)
	}
	a, err = SegmentArea(2.0*r-h, r) // the other side
	if err != nil {
		return
	}
	a = math.Pi*r*r - a
	return
}

// segmentPerimFold applies the fold-over rule to the arc length and also
// returns the interface chord at height h
func segmentPerimFold(h, r float64) (p, c float64, err error) {
	if h <= r {
		p, err = SegmentPerimeter(h, r)
		if err != nil {
			return
		}
		c, err = ChordLength(h, r)
		return
	}
	hc := 2.0*r - h // the other side
	p, err = SegmentPerimeter(hc, r)
	if err != nil {
		return
	}
	p = 2.0*math.Pi*r - p
	c, err = ChordLength(hc, r)
	return
}

// VesselAreaTwoPhase partitions the cross-section of a horizontal vessel into
// liquid and gas bands. The two areas sum to the full circle area.
//  vid  -- vessel inner diameter, ft
//  hliq -- height of the liquid from the vessel bottom, ft
//  aliq -- area of the liquid, ft²
//  agas -- area of the gas, ft²
func VesselAreaTwoPhase(vid, hliq float64) (aliq, agas float64, err error) {
	if hliq > vid {
		err = chk.Err("liquid height hliq=%g must not exceed vessel diameter vid=%g", hliq, vid)
		return
	}
	r := vid / 2.0
	aliq, err = segmentAreaFold(hliq, r)
	if err != nil {
		return
	}
	agas = math.Pi*r*r - aliq
	return
}

// VesselAreaThreePhase partitions the cross-section of a horizontal vessel into
// oil, water and gas bands. The three areas sum to the full circle area.
//  vid  -- vessel inner diameter, ft
//  hoil -- height of the oil from the vessel bottom, ft
//  hwat -- height of the water from the vessel bottom, ft
//  aoil -- area of the oil, ft²
//  awat -- area of the water, ft²
//  agas -- area of the gas, ft²
func VesselAreaThreePhase(vid, hoil, hwat float64) (aoil, awat, agas float64, err error) {
	if hwat > hoil {
		err = chk.Err("water height hwat=%g must not exceed oil height hoil=%g", hwat, hoil)
		return
	}
	if hoil > vid {
		err = chk.Err("oil height hoil=%g must not exceed vessel diameter vid=%g", hoil, vid)
		return
	}
	r := vid / 2.0
	awat, err = segmentAreaFold(hwat, r)
	if err != nil {
		return
	}
	agas, err = segmentAreaFold(vid-hoil, r) // gas height, measured from the top down
	if err != nil {
		return
	}
	aoil = math.Pi*r*r - awat - agas
	return
}

// VesselPerimTwoPhase computes the wetted perimeter of the liquid and gas bands.
// Each band is credited with the liquid-gas interface chord.
//  vid   -- vessel inner diameter, ft
//  hliq  -- height of the liquid from the vessel bottom, ft
//  wpliq -- wetted perimeter of the liquid, ft
//  wpgas -- wetted perimeter of the gas, ft
func VesselPerimTwoPhase(vid, hliq float64) (wpliq, wpgas float64, err error) {
	if hliq > vid {
		err = chk.Err("liquid height hliq=%g must not exceed vessel diameter vid=%g", hliq, vid)
		return
	}
	r := vid / 2.0
	pmLiq, chLiq, err := segmentPerimFold(hliq, r)
	if err != nil {
		return
	}
	pmGas := 2.0*math.Pi*r - pmLiq
	wpliq = pmLiq + chLiq
	wpgas = pmGas + chLiq
	return
}

// VesselPerimThreePhase computes the wetted perimeter of the oil, water and gas
// bands. Each interface chord is credited to both phases it separates: the oil
// band carries the oil-water and the oil-gas chords, the water and gas bands
// carry the chord each touches.
//  vid   -- vessel inner diameter, ft
//  hoil  -- height of the oil from the vessel bottom, ft
//  hwat  -- height of the water from the vessel bottom, ft
//  wpoil -- wetted perimeter of the oil, ft
//  wpwat -- wetted perimeter of the water, ft
//  wpgas -- wetted perimeter of the gas, ft
func VesselPerimThreePhase(vid, hoil, hwat float64) (wpoil, wpwat, wpgas float64, err error) {
	if hwat > hoil {
		err = chk.Err("water height hwat=%g must not exceed oil height hoil=%g", hwat, hoil)
		return
	}
	if hoil > vid {
		err = chk.Err("oil height hoil=%g must not exceed vessel diameter vid=%g", hoil, vid)
		return
	}
	r := vid / 2.0
	pmWat, chWat, err := segmentPerimFold(hwat, r)
	if err != nil {
		return
	}
	pmGas, chGas, err := segmentPerimFold(vid-hoil, r) // gas height, from the top down
	if err != nil {
		return
	}
	pmOil := 2.0*math.Pi*r - pmWat - pmGas
	wpoil = pmOil + chWat + chGas
	wpwat = pmWat + chWat
	wpgas = pmGas + chGas
	return
}

// VesselDhydTwoPhase computes the hydraulic diameter of the liquid and gas bands
//  vid     -- vessel inner diameter, ft
//  hliq    -- height of the liquid from the vessel bottom, ft
//  dhydLiq -- hydraulic diameter of the liquid, ft
//  dhydGas -- hydraulic diameter of the gas, ft
func VesselDhydTwoPhase(vid, hliq float64) (dhydLiq, dhydGas float64, err error) {
	aliq, agas, err := VesselAreaTwoPhase(vid, hliq)
	if err != nil {
		return
	}
	wpliq, wpgas, err := VesselPerimTwoPhase(vid, hliq)
	if err != nil {
		return
	}
	dhydLiq = HydraulicDiameter(aliq, wpliq)
	dhydGas = HydraulicDiameter(agas, wpgas)
	return
}

// VesselDhydThreePhase computes the hydraulic diameter of the oil, water and gas bands
//  vid     -- vessel inner diameter, ft
//  hoil    -- height of the oil from the vessel bottom, ft
//  hwat    -- height of the water from the vessel bottom, ft
//  dhydOil -- hydraulic diameter of the oil, ft
//  dhydWat -- hydraulic diameter of the water, ft
//  dhydGas -- hydraulic diameter of the gas, ft
func VesselDhydThreePhase(vid, hoil, hwat float64) (dhydOil, dhydWat, dhydGas float64, err error) {
	aoil, awat, agas, err := VesselAreaThreePhase(vid, hoil, hwat)
	if err != nil {
		return
	}
	wpoil, wpwat, wpgas, err := VesselPerimThreePhase(vid, hoil, hwat)
	if err != nil {
		return
	}
	dhydOil = HydraulicDiameter(aoil, wpoil)
	dhydWat = HydraulicDiameter(awat, wpwat)
	dhydGas = HydraulicDiameter(agas, wpgas)
	return
}
