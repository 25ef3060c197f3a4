/*
 * inspect.go, part of mrsimtxt.
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

// Package inspect prints a random sample of the atoms of a decoded trajectory.
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	mrsim "github.com/rmera/mrsimtxt"
)

// Selection is a set of frames and atoms to print, each in increasing order.
type Selection struct {
	Frames []int
	Atoms  []int
}

// Sample picks, without repetition, up to frames frames and up to atoms
// atoms from doc. The same atoms are used for every frame.
func Sample(doc *mrsim.Document, frames, atoms int, rng *rand.Rand) Selection {
	return Selection{
		Frames: pick(len(doc.Frames), frames, rng),
		Atoms:  pick(doc.Len(), atoms, rng),
	}
}

//pick returns k distinct sorted integers in [0,n), or all of them if k >= n.
func pick(n, k int, rng *rand.Rand) []int {
	k = max(0, min(k, n))
	ret := rng.Perm(n)[:k]
	slices.Sort(ret)
	return ret
}

// Write prints the atoms of sel for each frame of sel.
func Write(w io.Writer, doc *mrsim.Document, sel Selection) error {
	b := bufio.NewWriter(w)
	for _, f := range sel.Frames {
		if f < 0 || f >= len(doc.Frames) {
			return fmt.Errorf("frame %d out of range [0,%d)", f, len(doc.Frames))
		}
		frame := doc.Frames[f]
		fmt.Fprintf(b, "Frame %d\n", f)
		fmt.Fprintf(b, "- timestamp: %.3f ps\n", doc.Header.Timestamp(f))
		for _, a := range sel.Atoms {
			if a < 0 || a >= len(frame) {
				return fmt.Errorf("atom %d out of range [0,%d)", a, len(frame))
			}
			at := frame[a]
			fmt.Fprintf(b, " - atom %d: %.3f %.3f %.3f %d %d\n", a, at.X, at.Y, at.Z, at.Element, at.Flags)
		}
	}
	return b.Flush()
}
