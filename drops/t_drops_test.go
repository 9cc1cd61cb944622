// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drops

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_drops01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drops01. conversions and drag correlation")

	chk.Float64(tst, "micron to feet", 1e-15, MicronToFeet(304800), 1.0)
	chk.Float64(tst, "feet to micron", 1e-15, FeetToMicron(0.5), 152400)
	chk.Float64(tst, "centipoise", 1e-15, CentipoiseToLbm(1488.2), 1.0)

	// laminar term + intermediate term + turbulent plateau
	chk.Float64(tst, "cd @ re=100", 1e-15, DragCoeff(100), 24.0/100.0+3.0/10.0+0.34)

	// a stagnant droplet sees unbounded drag instead of a division by zero
	if DragCoeff(0) != math.MaxFloat64 {
		tst.Errorf("cd @ re=0 must be the maximum representable value")
		return
	}

	// velocity and diameter forms invert each other for fixed cd
	cd, rhoDrop, rhoFld := 1.7, 58.74, 62.46
	vt := VelocityDrop(1e-4, cd, rhoDrop, rhoFld, Gravity)
	chk.Float64(tst, "diameter inverse", 1e-15, DiameterDrop(vt, cd, rhoDrop, rhoFld, Gravity), 1e-4)
}

func Test_drops02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drops02. terminal velocity and diameter solvers")

	// 200 micron oil droplet rising through produced water
	dd := MicronToFeet(200)
	muWat := CentipoiseToLbm(0.75)
	vt, nit, err := VelocityTerminal(dd, 58.74, 62.46, muWat, Gravity, 0)
	if err != nil {
		tst.Errorf("VelocityTerminal failed: %v", err)
		return
	}
	io.Pforan("vt=%v nit=%v\n", vt, nit)
	chk.Float64(tst, "vt", 1e-12, vt, 0.005923745888997495)
	if nit > 10 {
		tst.Errorf("velocity iteration count %d is too high", nit)
		return
	}

	// round trip: the diameter solver recovers the droplet within the
	// slack allowed by the velocity tolerance
	ddBack, nit, err := DropletDiameter(vt, 58.74, 62.46, muWat, Gravity, 0)
	if err != nil {
		tst.Errorf("DropletDiameter failed: %v", err)
		return
	}
	io.Pforan("ddBack=%v µm nit=%v\n", FeetToMicron(ddBack), nit)
	chk.Float64(tst, "round trip", 15.0, FeetToMicron(ddBack), 200)
	chk.Float64(tst, "ddBack", 1e-6, FeetToMicron(ddBack), 213.91146003128128)
}

func Test_drops03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drops03. bounded iteration")

	muOil := CentipoiseToLbm(52)

	// the water-in-oil problem needs thousands of iterations at the tight
	// diameter tolerance; a small cap must fail cleanly with the last estimate
	vtReq := 0.425 / (9.08 * 60.0)
	dd, nit, err := DropletDiameter(vtReq, 62.46, 58.74, muOil, Gravity, 50)
	if err == nil {
		tst.Errorf("non-convergence error expected for nmaxIt=50")
		return
	}
	io.Pf("OK: %v\n", err)
	if dd <= 0 || nit != 50 {
		tst.Errorf("last estimate dd=%g and iteration count nit=%d must be reported", dd, nit)
		return
	}

	// with the default cap the same problem converges
	_, nit, err = DropletDiameter(vtReq, 62.46, 58.74, muOil, Gravity, 0)
	if err != nil {
		tst.Errorf("DropletDiameter failed: %v", err)
		return
	}
	io.Pforan("converged after %d iterations\n", nit)
}
