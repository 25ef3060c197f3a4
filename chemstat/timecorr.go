/*
 * timecorr.go, part of mrsimtxt.
 *
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemstat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

// CrossCorr returns the normalized cross-correlation of c1 and c2, which
// must have the same length, for lags 0 to len(c1)-1. It is computed with
// FFTs over zero-padded copies of the mean-centered data, so there is no
// wrap-around. If c1 and c2 are the same, the autocorrelation is obtained,
// with ret[0]==1. A constant series has no defined correlation, and gives nil.
func CrossCorr(c1, c2 []float64) []float64 {
	if len(c1) != len(c2) {
		panic(fmt.Sprintf("CrossCorr: Both slices should have the same len %d, %d", len(c1), len(c2)))
	}
	n := len(c1)
	if n < 2 {
		return nil
	}
	c1mean, c1std := stat.PopMeanStdDev(c1, nil)
	c2mean, c2std := stat.PopMeanStdDev(c2, nil)
	if c1std == 0 || c2std == 0 {
		return nil
	}
	c1pad := make([]complex128, 2*n)
	c2pad := make([]complex128, 2*n)
	for i, v := range c1 {
		c1pad[i] = complex(v-c1mean, 0)
		c2pad[i] = complex(c2[i]-c2mean, 0)
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	cmplxMulConj(c1pad, c2pad)
	f.Sequence(c1pad, c1pad)

	ret := make([]float64, n)
	//Sequence doesn't normalize by the length of the FFT.
	norm := float64(len(c1pad)) * float64(n) * c1std * c2std
	for i := range ret {
		ret[i] = real(c1pad[i]) / norm
	}
	return ret
}

// DecorrelationLag returns the first lag at which the autocorrelation of
// series drops below threshold, or -1 if it never does.
func DecorrelationLag(series []float64, threshold float64) int {
	for i, v := range CrossCorr(series, series) {
		if v < threshold {
			return i
		}
	}
	return -1
}
