/*
 * trace.go, part of mrsimtxt.
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

// Package chemplot draws plots of decoded trajectories.
package chemplot

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	mrsim "github.com/rmera/mrsimtxt"
)

var axisNames = [3]string{"x", "y", "z"}

// ParseAxis returns the index (0, 1 or 2) of the axis called name.
func ParseAxis(name string) (int, error) {
	for i, v := range axisNames {
		if strings.EqualFold(strings.TrimSpace(name), v) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown axis %q, must be x, y or z", name)
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//addLine adds the ith line of a plot, with its own color.
func addLine(p *plot.Plot, i int, label string, xys plotter.XYs) error {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = plotutil.Color(i)
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)
	p.Legend.Add(label, l)
	return nil
}

// AtomTrace plots the given coordinate axis of each atom in atoms against
// time, in picoseconds.
func AtomTrace(doc *mrsim.Document, atoms []int, axis int, title string) (*plot.Plot, error) {
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("axis %d out of range [0,2]", axis)
	}
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("trajectory has no frames")
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no atoms to plot")
	}
	p := basicPlot(title, "Time (ps)", axisNames[axis]+" (approximate pm)")
	for i, a := range atoms {
		if a < 0 || a >= doc.Len() {
			return nil, fmt.Errorf("atom %d out of range [0,%d)", a, doc.Len())
		}
		xys := make(plotter.XYs, len(doc.Frames))
		for f, frame := range doc.Frames {
			at := frame[a]
			xys[f].X = doc.Header.Timestamp(f)
			xys[f].Y = [3]float64{at.X, at.Y, at.Z}[axis]
		}
		label := fmt.Sprintf("%s%d", mrsim.ElementSymbol(doc.Frames[0][a].Element), a)
		if err := addLine(p, i, label, xys); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Series plots values, one per frame, against time in picoseconds.
func Series(H mrsim.Header, values []float64, title, label string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}
	p := basicPlot(title, "Time (ps)", label)
	xys := make(plotter.XYs, len(values))
	for f, v := range values {
		xys[f].X = H.Timestamp(f)
		xys[f].Y = v
	}
	if err := addLine(p, 0, label, xys); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p to filename, in the format given by its extension
// (png, svg, pdf...). Sizes are in centimeters.
func Save(p *plot.Plot, filename string, widthCm, heightCm float64) error {
	return p.Save(vg.Length(widthCm)*vg.Centimeter, vg.Length(heightCm)*vg.Centimeter, filename)
}
