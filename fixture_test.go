/*
 * fixture_test.go, part of mrsimtxt.
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


package mrsim

import (
	"fmt"
	"strings"
)

//fixture writes mrsim-txt text for tests.
type fixture struct {
	frameTime   string
	resolution  string
	checkpoints string
	frames      int
	clusterSize int
	elements    []uint16
	flags       []uint16
	//q returns the quantized value of axis k of atom a in frame f.
	q func(f, a, k int) int64
	//edit, if not nil, can change each line before it is written. i is the
	//index of the line, counted from 0.
	edit func(i int, line string) string
}

func newFixture(frames, clusterSize, atoms int) fixture {
	F := fixture{
		frameTime:   "10.0",
		resolution:  "100.0",
		checkpoints: "false",
		frames:      frames,
		clusterSize: clusterSize,
		elements:    make([]uint16, atoms),
		flags:       make([]uint16, atoms),
		q: func(f, a, k int) int64 {
			return int64((f+1)*(a+2)*(k+3)) - 40
		},
	}
	for i := range F.elements {
		F.elements[i] = uint16(1 + 5*(i%2)) //H, C, H, C...
		F.flags[i] = uint16(i % 3)
	}
	return F
}

func joinUints(v []uint16) string {
	var b strings.Builder
	for _, u := range v {
		fmt.Fprintf(&b, " %d", u)
	}
	return b.String()
}

func (F fixture) lines() []string {
	l := []string{
		"specification:",
		"  - https://github.com/philipturner/molecular-renderer",
		"",
		"header:",
		"  frame time in femtoseconds: " + F.frameTime,
		"  spatial resolution in approximate picometers: " + F.resolution,
		"  uses checkpoints: " + F.checkpoints,
		fmt.Sprintf("  frame count: %d", F.frames),
		fmt.Sprintf("  frame cluster size: %d", F.clusterSize),
		"",
		"metadata:",
		"",
	}
	axes := []string{"x", "y", "z"}
	for c, start := 0, 0; start < F.frames; c, start = c+1, start+F.clusterSize {
		end := min(start+F.clusterSize, F.frames) - 1
		l = append(l,
			fmt.Sprintf("frame cluster %d:", c),
			fmt.Sprintf("  frame start: %d", start),
			fmt.Sprintf("  frame end: %d", end),
			"  metadata:",
			"  atoms:",
		)
		for k, axis := range axes {
			l = append(l, "    "+axis+" coordinates:")
			for a := range F.elements {
				var b strings.Builder
				fmt.Fprintf(&b, "      - %d:", a)
				for f := start; f <= end; f++ {
					fmt.Fprintf(&b, " %d", F.q(f, a, k))
				}
				l = append(l, b.String())
			}
		}
		l = append(l,
			"    elements:"+joinUints(F.elements),
			"    flags:"+joinUints(F.flags),
			"",
		)
	}
	if F.edit != nil {
		for i := range l {
			l[i] = F.edit(i, l[i])
		}
	}
	return l
}

func (F fixture) text() []byte {
	return []byte(strings.Join(F.lines(), "\n"))
}

//expected returns the frames the fixture should decode to.
func (F fixture) expected() []Frame {
	m := 100.0 / 1024
	if F.resolution != "100.0" {
		panic("expected only knows the default resolution")
	}
	ret := make([]Frame, F.frames)
	for f := range ret {
		ret[f] = make(Frame, len(F.elements))
		for a := range ret[f] {
			ret[f][a] = AtomRecord{
				X:       float64(F.q(f, a, 0)) * m,
				Y:       float64(F.q(f, a, 1)) * m,
				Z:       float64(F.q(f, a, 2)) * m,
				Element: F.elements[a],
				Flags:   F.flags[a],
			}
		}
	}
	return ret
}

//replaceLine returns an edit function that replaces the line equal to
//old with new.
func replaceLine(old, new string) func(int, string) string {
	return func(_ int, line string) string {
		if line == old {
			return new
		}
		return line
	}
}
