// Copyright 2016 The Gosep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dropdist implements log-normal droplet population statistics
package dropdist

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

// DmaxIntoD50 estimates the median droplet of a log-normal population from its
// maximum droplet. dmax is placed at the given percentile and the distribution
// is walked back to the median with the specified geometric standard deviation.
//  dmax -- maximum droplet in the distribution, microns
//  perc -- percentile of the maximum droplet; within (0, 1)
//  gsd  -- geometric standard deviation
//  d50  -- median droplet diameter, microns
func DmaxIntoD50(dmax, perc, gsd float64) (d50 float64, err error) {
	if perc <= 0 || perc >= 1 {
		err = chk.Err("percentile perc=%g must be within (0, 1)", perc)
		return
	}
	z := math.Erfinv(2.0*perc - 1.0)
	d50 = math.Exp(math.Log(dmax) - z*math.Sqrt(2.0)*math.Log(gsd))
	return
}

// LogNormCDF computes the log-normal cumulative distribution function: the
// fraction of the population smaller than dmin.
//  dmin -- droplet size cutoff, microns
//  d50  -- median droplet diameter, microns
//  gsd  -- geometric standard deviation
//  frac -- fraction of droplets smaller than dmin
func LogNormCDF(dmin, d50, gsd float64) (frac float64, err error) {
	if dmin <= 0 || d50 <= 0 || gsd <= 0 {
		err = chk.Err("dmin=%g, d50=%g and gsd=%g must all be positive", dmin, d50, gsd)
		return
	}
	z := (math.Log(dmin) - math.Log(d50)) / (math.Sqrt(2.0) * math.Log(gsd))
	frac = 0.5 * (1.0 + math.Erf(z))
	return
}

// Sample draws a synthetic droplet population from the log-normal distribution
//  n    -- number of droplets
//  d50  -- median droplet diameter, microns
//  gsd  -- geometric standard deviation
//  seed -- random seed; 0 uses the current time
func Sample(n int, d50, gsd float64, seed int) (dm []float64) {
	rnd.Init(seed)
	dm = make([]float64, n)
	for i := 0; i < n; i++ {
		dm[i] = math.Exp(rnd.Normal(math.Log(d50), math.Log(gsd)))
	}
	return
}

// PlotCDF plots the cumulative distribution curve and saves the figure
//  dirout -- output directory
//  fnkey  -- filename key
//  d50    -- median droplet diameter, microns
//  gsd    -- geometric standard deviation
//  np     -- number of points along the curve
func PlotCDF(dirout, fnkey string, d50, gsd float64, np int) {
	D := utl.LinSpace(d50/10.0, d50*4.0, np)
	F := make([]float64, np)
	for i, d := range D {
		F[i], _ = LogNormCDF(d, d50, gsd)
	}
	plt.Reset(false, nil)
	plt.Plot(D, F, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$d\\;[\\mu m]$", "$F$", nil)
	plt.Save(dirout, fnkey)
}
