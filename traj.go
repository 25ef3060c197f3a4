/*
 * traj.go, part of mrsimtxt.
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

	v3 "github.com/rmera/mrsimtxt/v3"
)

//DocTraj reads the frames of a decoded Document in order. It implements Traj.
type DocTraj struct {
	doc      *Document
	frame    int
	readable bool
}

// NewTraj returns a Traj over the frames of D.
func (D *Document) NewTraj() *DocTraj {
	return &DocTraj{doc: D, readable: true}
}

// Readable returns true if there are frames left to be read.
func (T *DocTraj) Readable() bool {
	return T.readable
}

// Len returns the number of atoms per frame.
func (T *DocTraj) Len() int {
	return T.doc.Len()
}

// Frame returns the index of the next frame to be read.
func (T *DocTraj) Frame() int {
	return T.frame
}

// Next puts the coordinates of the next frame in output, which must have one
// vector per atom. If output is nil, the frame is skipped. There are no box
// vectors in mrsim-txt files, so each given box slice is zeroed.
// After the last frame, a LastFrameError is returned and the trajectory
// stops being readable.
func (T *DocTraj) Next(output *v3.Matrix, box ...[]float64) error {
	if !T.readable || T.frame >= len(T.doc.Frames) {
		T.readable = false
		return newLastFrameError("", "Next")
	}
	for _, b := range box {
		clear(b)
	}
	if output != nil {
		if _, err := T.doc.Coords(T.frame, output); err != nil {
			return fmt.Errorf("Next: %w", err)
		}
	}
	T.frame++
	return nil
}
