// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sep.json) case file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/kwellis/gosep/fluids"
	"github.com/kwellis/gosep/sep"
)

// Stream holds one phase stream as given in a case file. The flow may be
// given directly as mass flow or as a field-units volumetric flow with its
// unit label; the latter is converted with the density at standard conditions.
type Stream struct {
	MassFlow  float64 `json:"mass_flow"` // mass flow rate, lbm/hr
	VolmFlow  float64 `json:"volm_flow"` // volumetric flow in Units, converted when MassFlow is absent
	Units     string  `json:"units"`     // volumetric flow units: "bpd", "gpm", "mscfd" or "mmscfd"
	Density   float64 `json:"density"`   // density at conditions, lbm/ft³
	Viscosity float64 `json:"viscosity"` // dynamic viscosity, cP
	DropIO    float64 `json:"drop_io"`   // smallest droplet to remove from oil, microns
	DropIW    float64 `json:"drop_iw"`   // smallest droplet to remove from water, microns
	DropIG    float64 `json:"drop_ig"`   // smallest droplet to remove from gas, microns
}

// MassFromVolm converts a field-units volumetric flow to a mass flow. The
// mscfd and mmscfd conversions expect the density at standard conditions.
//  vflo   -- volumetric flow in units
//  units  -- "bpd", "gpm", "mscfd" or "mmscfd"
//  rhoFld -- fluid density, lbm/ft³
//  mflo   -- mass flow, lbm/hr
func MassFromVolm(vflo float64, units string, rhoFld float64) (mflo float64, err error) {
	var conv float64
	switch units {
	case "bpd":
		conv = 42.0 / (24.0 * 7.48) // barrels to ft³, days to hours
	case "gpm":
		conv = 60.0 / 7.48
	case "mscfd":
		conv = 1e3 / 24.0
	case "mmscfd":
		conv = 1e6 / 24.0
	default:
		err = chk.Err("unknown volumetric flow units %q; options are \"bpd\", \"gpm\", \"mscfd\" and \"mmscfd\"", units)
		return
	}
	mflo = vflo * conv * rhoFld
	return
}

// Props converts the stream into validated fluid properties
func (o Stream) Props() (p fluids.Props, err error) {
	p = fluids.Props{
		MassFlow:  o.MassFlow,
		Density:   o.Density,
		Viscosity: o.Viscosity,
		DropIO:    o.DropIO,
		DropIW:    o.DropIW,
		DropIG:    o.DropIG,
	}
	if o.MassFlow == 0 && o.VolmFlow > 0 {
		p.MassFlow, err = MassFromVolm(o.VolmFlow, o.Units, o.Density)
		if err != nil {
			return
		}
	}
	err = p.Validate()
	return
}

// Vessel holds the vessel dimensions as given in a case file. Lengths and
// heights may be given directly or as fractions of the seam to seam length
// and the inner diameter.
type Vessel struct {
	Vid      float64 `json:"vid"`       // vessel inner diameter, ft
	Lss      float64 `json:"lss"`       // seam to seam length, ft
	Leff     float64 `json:"leff"`      // effective separation length, ft
	LeffFrac float64 `json:"leff_frac"` // effective length as fraction of lss; used when Leff is absent
	Hliq     float64 `json:"hliq"`      // liquid height (two phase), ft
	HliqFrac float64 `json:"hliq_frac"` // liquid height as fraction of vid
	Hoil     float64 `json:"hoil"`      // oil height (three phase), ft
	HoilFrac float64 `json:"hoil_frac"` // oil height as fraction of vid
	Hwat     float64 `json:"hwat"`      // water height (three phase), ft
	HwatFrac float64 `json:"hwat_frac"` // water height as fraction of vid
}

// EffLen resolves the effective separation length
func (o Vessel) EffLen() float64 {
	if o.Leff > 0 {
		return o.Leff
	}
	return o.LeffFrac * o.Lss
}

func (o Vessel) liqHeight() float64 {
	if o.Hliq > 0 {
		return o.Hliq
	}
	return o.HliqFrac * o.Vid
}

func (o Vessel) oilHeight() float64 {
	if o.Hoil > 0 {
		return o.Hoil
	}
	return o.HoilFrac * o.Vid
}

func (o Vessel) watHeight() float64 {
	if o.Hwat > 0 {
		return o.Hwat
	}
	return o.HwatFrac * o.Vid
}

// Design holds the mechanical and coalescer design data of a case.
// CoalPf is a pointer so that an explicit zero margin can be told apart
// from an absent one, which keeps the plate-length default.
type Design struct {
	Mawp       float64  `json:"mawp"`        // maximum allowable working pressure, psig
	XtraWeight float64  `json:"xtra_weight"` // weight of internals and nozzles, lbm
	RhoMetal   float64  `json:"rho_metal"`   // metal density, lbm/ft³; 0 selects carbon steel
	CoalDrop   float64  `json:"coal_drop"`   // coalescer target oil-in-water droplet, microns
	CoalGap    float64  `json:"coal_gap"`    // gap between coalescing plates, inches
	CoalAngl   float64  `json:"coal_angl"`   // plate angle off horizontal, degrees
	CoalPf     *float64 `json:"coal_pf"`     // coalescer performance margin fraction; nil keeps the default
}

// CoalPrms converts the coalescer design data into plate parameters.
// Absent values are left out so the plate-length defaults apply.
func (o Design) CoalPrms() (prms dbf.Params) {
	if o.CoalGap > 0 {
		prms = append(prms, &dbf.P{N: "pgap", V: o.CoalGap})
	}
	if o.CoalAngl > 0 {
		prms = append(prms, &dbf.P{N: "angl", V: o.CoalAngl})
	}
	if o.CoalPf != nil {
		prms = append(prms, &dbf.P{N: "pf", V: *o.CoalPf})
	}
	return
}

// Case holds a complete separator sizing case
type Case struct {
	Desc   string  `json:"desc"`   // description of the case
	Phases string  `json:"phases"` // "two" or "three"
	Vessel Vessel  `json:"vessel"` // vessel dimensions
	Oil    *Stream `json:"oil"`    // oil stream
	Wat    *Stream `json:"wat"`    // water stream
	Gas    *Stream `json:"gas"`    // gas stream
	Liq    *Stream `json:"liq"`    // pre-combined liquid; mixed from oil and water when absent
	Design Design  `json:"design"` // mechanical and coalescer design data
}

// ReadCase reads a case from a .sep.json file. A missing or unreadable
// file panics; content mistakes come back as errors.
func ReadCase(fn string) (c *Case, err error) {
	b := io.ReadFile(fn)
	c = new(Case)
	err = json.Unmarshal(b, c)
	if err != nil {
		return nil, chk.Err("cannot parse case file %q: %v", fn, err)
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the case for structural mistakes before any sizing runs
func (o *Case) Validate() (err error) {
	if o.Vessel.Vid <= 0 || o.Vessel.Lss <= 0 {
		return chk.Err("vessel vid=%g and lss=%g must be positive", o.Vessel.Vid, o.Vessel.Lss)
	}
	if o.Vessel.EffLen() <= 0 {
		return chk.Err("vessel effective length must be given as leff or leff_frac")
	}
	if o.Gas == nil {
		return chk.Err("case is missing the gas stream")
	}
	switch o.Phases {
	case "two":
		if o.Liq == nil && (o.Oil == nil || o.Wat == nil) {
			return chk.Err("two phase case needs a liq stream or both oil and wat streams to mix")
		}
		if o.Vessel.liqHeight() <= 0 {
			return chk.Err("two phase case needs hliq or hliq_frac")
		}
	case "three":
		if o.Oil == nil || o.Wat == nil {
			return chk.Err("three phase case needs both oil and wat streams")
		}
		if o.Vessel.oilHeight() <= 0 || o.Vessel.watHeight() <= 0 {
			return chk.Err("three phase case needs oil and water heights (hoil/hwat or fractions)")
		}
	default:
		return chk.Err("phases must be \"two\" or \"three\"; got %q", o.Phases)
	}
	return
}

// TwoPhase builds the two phase separator of this case. The liquid stream is
// taken as given or mixed from the oil and water streams.
func (o *Case) TwoPhase() (s *sep.TwoPhase, err error) {
	var liq fluids.Props
	if o.Liq != nil {
		liq, err = o.Liq.Props()
	} else {
		var oil, wat fluids.Props
		oil, err = o.Oil.Props()
		if err != nil {
			return
		}
		wat, err = o.Wat.Props()
		if err != nil {
			return
		}
		liq, err = fluids.LiquidProps(oil, wat)
	}
	if err != nil {
		return
	}
	gas, err := o.Gas.Props()
	if err != nil {
		return
	}
	v := o.Vessel
	return sep.NewTwoPhase(v.Vid, v.Lss, v.EffLen(), v.liqHeight(), liq, gas)
}

// ThreePhase builds the three phase separator of this case
func (o *Case) ThreePhase() (s *sep.ThreePhase, err error) {
	oil, err := o.Oil.Props()
	if err != nil {
		return
	}
	wat, err := o.Wat.Props()
	if err != nil {
		return
	}
	gas, err := o.Gas.Props()
	if err != nil {
		return
	}
	v := o.Vessel
	return sep.NewThreePhase(v.Vid, v.Lss, v.EffLen(), v.oilHeight(), v.watHeight(), oil, wat, gas)
}
