/*
 * chemstat_test.go, part of mrsimtxt.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mrsim "github.com/rmera/mrsimtxt"
)

//translating returns a document with 2 atoms moving speed units per frame along x.
func translating(frames int, speed float64, elements ...uint16) *mrsim.Document {
	doc := &mrsim.Document{Header: mrsim.Header{FrameTimeFs: 100, FrameCount: uint(frames), ClusterSize: 4}}
	for f := 0; f < frames; f++ {
		fr := make(mrsim.Frame, len(elements))
		for a := range fr {
			fr[a] = mrsim.AtomRecord{X: float64(f) * speed, Y: float64(a), Z: 1, Element: elements[a]}
		}
		doc.Frames = append(doc.Frames, fr)
	}
	return doc
}

func TestCrossCorr(Te *testing.T) {
	series := []float64{1, 3, 2, 5, 4, 6, 5, 8}
	ac := CrossCorr(series, series)
	require.Len(Te, ac, len(series))
	assert.InDelta(Te, 1.0, ac[0], 1e-9)
	for _, v := range ac[1:] {
		assert.Less(Te, v, 1.0)
	}
	//direct computation for lag 1.
	var mean, variance, lag1 float64
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))
	for i, v := range series {
		variance += (v - mean) * (v - mean)
		if i+1 < len(series) {
			lag1 += (v - mean) * (series[i+1] - mean)
		}
	}
	assert.InDelta(Te, lag1/variance, ac[1], 1e-9)

	assert.Nil(Te, CrossCorr([]float64{2, 2, 2}, []float64{2, 2, 2}))
	assert.Nil(Te, CrossCorr([]float64{1}, []float64{1}))
	assert.Panics(Te, func() { CrossCorr([]float64{1, 2}, []float64{1}) })
	assert.Equal(Te, -1, DecorrelationLag([]float64{2, 2}, 0.5))
}

func TestRMSDSeries(Te *testing.T) {
	doc := translating(5, 0.5, 6, 1)
	ref, err := doc.Coords(0, nil)
	require.NoError(Te, err)
	rmsd, err := RMSDSeries(doc.NewTraj(), ref)
	require.NoError(Te, err)
	require.Len(Te, rmsd, 5)
	for f, v := range rmsd {
		assert.InDelta(Te, 0.5*float64(f), v, 1e-12)
	}
	centroids, err := Centroids(doc, nil)
	require.NoError(Te, err)
	require.Len(Te, centroids, 5)
	assert.InDelta(Te, 2.0, centroids[4].At(0, 0), 1e-12)
	assert.InDelta(Te, 0.5, centroids[4].At(0, 1), 1e-12)
}

func TestSummarize(Te *testing.T) {
	doc := translating(11, 1, 6, 1)
	S, err := Summarize(doc)
	require.NoError(Te, err)
	fmt.Printf("%+v\n", S)
	assert.Equal(Te, 11, S.Frames)
	assert.Equal(Te, 2, S.Atoms)
	assert.InDelta(Te, 1.0, S.DurationPs, 1e-12)
	assert.InDelta(Te, 5.0, S.Mean[0], 1e-12)
	assert.InDelta(Te, 0.5, S.Mean[1], 1e-12)
	assert.InDelta(Te, 0.5, S.StdDev[1], 1e-12)
	assert.InDelta(Te, 0.0, S.StdDev[2], 1e-12)
	assert.InDelta(Te, 10.0, S.MaxRMSD, 1e-12)
	assert.Equal(Te, 10, S.MaxRMSDFrame)
	assert.InDelta(Te, 10.0, S.FinalRMSD, 1e-12)
	assert.True(Te, S.MassWeighted)
	assert.InDelta(Te, 10.0, S.CentroidDrift, 1e-9)
	assert.Greater(Te, S.RMSDDecorrelationLag, 0)

	//Pu has no mass in the table.
	S, err = Summarize(translating(3, 2, 94, 6))
	require.NoError(Te, err)
	assert.False(Te, S.MassWeighted)
	assert.InDelta(Te, 4.0, S.CentroidDrift, 1e-9)

	_, err = Summarize(&mrsim.Document{})
	assert.Error(Te, err)
}

func TestDisplacements(Te *testing.T) {
	doc := translating(3, 1, 6, 1, 8)
	doc.Frames[2][2].Z += 3
	d, err := Displacements(doc)
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{2, 2, math.Sqrt(13)}, d, 1e-12)

	H, err := DisplacementHistogram(doc, 4)
	require.NoError(Te, err)
	fmt.Println(H)
	assert.Equal(Te, []float64{0, 0, 2, 1}, H.View())
	assert.Equal(Te, 0, H.Outside())

	_, err = DisplacementHistogram(&mrsim.Document{}, 4)
	assert.Error(Te, err)
}
