/*
 * stats.go, part of mrsimtxt.
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

/*
Package chemstat computes statistics over the frames of a decoded trajectory:
RMSD series, centroid drift, per-axis distributions and time correlations.
*/
package chemstat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mrsim "github.com/rmera/mrsimtxt"
	"github.com/rmera/mrsimtxt/histo"
	v3 "github.com/rmera/mrsimtxt/v3"
)

//mapfunc applies f to every frame read from t, and appends the results to c.
func mapfunc(t mrsim.Traj, coord *v3.Matrix, c []float64, f func(c *v3.Matrix) float64) ([]float64, error) {
	for err := t.Next(coord); ; err = t.Next(coord) {
		if err != nil {
			var last mrsim.LastFrameError
			if errors.As(err, &last) {
				break
			}
			return nil, err
		}
		c = append(c, f(coord))
	}
	return c, nil
}

// RMSDSeries returns the RMSD, without superposition, of each frame read
// from t, relative to ref.
func RMSDSeries(t mrsim.Traj, ref *v3.Matrix) ([]float64, error) {
	coord := v3.Zeros(ref.NVecs())
	return mapfunc(t, coord, nil, func(c *v3.Matrix) float64 {
		return v3.RMSD(c, ref)
	})
}

// Centroids returns the centroid of each frame of doc, weighted by masses if
// it is not nil.
func Centroids(doc *mrsim.Document, masses []float64) ([]*v3.Matrix, error) {
	ret := make([]*v3.Matrix, 0, len(doc.Frames))
	var coord *v3.Matrix
	var err error
	for i := range doc.Frames {
		if coord, err = doc.Coords(i, coord); err != nil {
			return nil, err
		}
		ret = append(ret, coord.Centroid(masses))
	}
	return ret, nil
}

// Summary is a short statistical description of a trajectory.
type Summary struct {
	Frames     int
	Atoms      int
	DurationPs float64
	//Mean and StdDev of each coordinate, over all atoms and frames.
	Mean, StdDev [3]float64
	//RMSD relative to the first frame.
	MaxRMSD      float64
	MaxRMSDFrame int
	FinalRMSD    float64
	//Distance between the first and last centroids. Mass-weighted unless
	//some element has no known mass.
	CentroidDrift float64
	MassWeighted  bool
	//First frame lag at which the autocorrelation of the RMSD series drops
	//below 1/e, -1 if it doesn't.
	RMSDDecorrelationLag int
}

// Summarize computes the Summary of doc. doc must have at least one frame
// and one atom.
func Summarize(doc *mrsim.Document) (Summary, error) {
	if len(doc.Frames) == 0 || doc.Len() == 0 {
		return Summary{}, fmt.Errorf("can't summarize a trajectory with %d frames and %d atoms", len(doc.Frames), doc.Len())
	}
	S := Summary{
		Frames:     len(doc.Frames),
		Atoms:      doc.Len(),
		DurationPs: doc.Header.Timestamp(len(doc.Frames) - 1),
	}
	axis := make([]float64, 0, S.Frames*S.Atoms)
	for k := 0; k < 3; k++ {
		axis = axis[:0]
		for _, f := range doc.Frames {
			for _, a := range f {
				axis = append(axis, [3]float64{a.X, a.Y, a.Z}[k])
			}
		}
		S.Mean[k], S.StdDev[k] = stat.PopMeanStdDev(axis, nil)
	}

	ref, err := doc.Coords(0, nil)
	if err != nil {
		return Summary{}, err
	}
	rmsd, err := RMSDSeries(doc.NewTraj(), ref)
	if err != nil {
		return Summary{}, err
	}
	S.MaxRMSDFrame = floats.MaxIdx(rmsd)
	S.MaxRMSD = rmsd[S.MaxRMSDFrame]
	S.FinalRMSD = rmsd[len(rmsd)-1]
	S.RMSDDecorrelationLag = DecorrelationLag(rmsd, 1/math.E)

	masses, unknown := doc.Masses()
	S.MassWeighted = len(unknown) == 0 && floats.Sum(masses) > 0
	if !S.MassWeighted {
		masses = nil
	}
	first, err := doc.Coords(0, nil)
	if err != nil {
		return Summary{}, err
	}
	last, err := doc.Coords(S.Frames-1, nil)
	if err != nil {
		return Summary{}, err
	}
	drift := v3.Zeros(1)
	drift.Sub(last.Centroid(masses), first.Centroid(masses))
	S.CentroidDrift = drift.Norm2()
	return S, nil
}

// Displacements returns, for each atom, the distance between its positions
// in the first and the last frames of doc.
func Displacements(doc *mrsim.Document) ([]float64, error) {
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("no frames to compute displacements")
	}
	first, err := doc.Coords(0, nil)
	if err != nil {
		return nil, err
	}
	last, err := doc.Coords(len(doc.Frames)-1, nil)
	if err != nil {
		return nil, err
	}
	last.Sub(last, first)
	ret := make([]float64, last.NVecs())
	for i := range ret {
		ret[i] = last.VecView(i).Norm2()
	}
	return ret, nil
}

// DisplacementHistogram returns the distribution of the atom displacements
// of doc in bins bins of equal width, from 0 to the largest displacement.
func DisplacementHistogram(doc *mrsim.Document, bins int) (*histo.Data, error) {
	d, err := Displacements(doc)
	if err != nil {
		return nil, err
	}
	return histo.NewData(histo.Uniform(0, floats.Max(d), bins), d), nil
}
