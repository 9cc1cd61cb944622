// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kwellis/gosep/inp"
	"github.com/kwellis/gosep/sep"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read case file
	fnamepath, _ := io.ArgToFilename(0, "examples/jpad_primary", ".sep.json", true)
	c, err := inp.ReadCase(fnamepath)
	if err != nil {
		chk.Panic("cannot read case file: %v", err)
	}
	io.Pf("\n%s\n\n", c.Desc)

	// size and report
	switch c.Phases {
	case "two":
		s, err := c.TwoPhase()
		if err != nil {
			chk.Panic("two phase sizing failed: %v", err)
		}
		io.Pf("Vessel ID: %g ft, Seam-Seam Length: %g ft, Effective Length: %g ft\n\n", s.Vid, s.Lss, s.Leff)
		s.Results()
		mechReport(s.Vessel, c.Design)

	case "three":
		s, err := c.ThreePhase()
		if err != nil {
			chk.Panic("three phase sizing failed: %v", err)
		}
		io.Pf("Vessel ID: %g ft, Seam-Seam Length: %g ft, Effective Length: %g ft\n\n", s.Vid, s.Lss, s.Leff)
		s.Results()
		mechReport(s.Vessel, c.Design)
		if c.Design.CoalDrop > 0 {
			plen, err := s.CoalPlateLength(c.Design.CoalDrop, c.Design.CoalPrms())
			if err != nil {
				chk.Panic("coalescing plate sizing failed: %v", err)
			}
			io.Pf("Coalescing plates for %g µm oil droplets: %.2f ft\n", c.Design.CoalDrop, plen)
		}
	}
}

// mechReport prints shell thickness and vessel weight when a MAWP is given
func mechReport(v sep.Vessel, d inp.Design) {
	if d.Mawp <= 0 {
		return
	}
	thk := v.ShellThick(d.Mawp, nil)
	wbv := v.WeightBare(thk, d.RhoMetal)
	tot := wbv + d.XtraWeight
	io.Pf("\nMAWP: %g psig, Wall Thick: %.2f inches, Weight: %.2f tons\n\n", d.Mawp, thk, tot/2000.0)
}
