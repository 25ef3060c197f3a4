/*
 * document.go, part of mrsimtxt.
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

// quantumDivisor is the number of quantization steps per "approximate picometer".
const quantumDivisor = 1024

// Header contains the scalar metadata at the top of an mrsim-txt file.
type Header struct {
	Specification      string //the repository URL given after "specification:"
	FrameTimeFs        float64
	ResolutionApproxPm float64
	UsesCheckpoints    bool //always false in a decoded Document
	FrameCount         uint
	ClusterSize        uint
}

// Multiplier returns the factor that turns a quantized integer into a coordinate.
func (H Header) Multiplier() float64 {
	return H.ResolutionApproxPm / quantumDivisor
}

// Timestamp returns the time of the given frame, in picoseconds.
func (H Header) Timestamp(frame int) float64 {
	return float64(frame) * H.FrameTimeFs / 1e3
}

// AtomRecord is one atom in one frame.
type AtomRecord struct {
	X, Y, Z float64
	Element uint16
	Flags   uint16
}

// Frame contains one AtomRecord per atom. Atom i is the same atom in every
// frame of a Document.
type Frame []AtomRecord

// ClusterRange is the half-open range [Start, End) of normalized lines
// holding the cluster with the given ID.
type ClusterRange struct {
	ID         uint
	Start, End uint
}

// Len returns the number of lines in the range.
func (C ClusterRange) Len() int { return int(C.End - C.Start) }

// Document is a fully decoded mrsim-txt trajectory. It is not modified
// after Decode returns it.
type Document struct {
	Header Header
	Frames []Frame
}

// Len returns the number of atoms per frame.
func (D *Document) Len() int {
	if len(D.Frames) == 0 {
		return 0
	}
	return len(D.Frames[0])
}

// Elements returns the element of each atom, taken from the first frame.
func (D *Document) Elements() []uint16 {
	ret := make([]uint16, D.Len())
	if len(D.Frames) == 0 {
		return ret
	}
	for i, a := range D.Frames[0] {
		ret[i] = a.Element
	}
	return ret
}

// Coords puts the coordinates of the given frame in dst, which must have one
// vector per atom. If dst is nil, a new matrix is allocated. The matrix used
// is returned. Frames without atoms can't be represented as a matrix and
// give an error.
func (D *Document) Coords(frame int, dst *v3.Matrix) (*v3.Matrix, error) {
	if frame < 0 || frame >= len(D.Frames) {
		return nil, fmt.Errorf("frame %d out of range [0,%d)", frame, len(D.Frames))
	}
	f := D.Frames[frame]
	if len(f) == 0 {
		return nil, fmt.Errorf("frame %d has no atoms", frame)
	}
	if dst == nil {
		dst = v3.Zeros(len(f))
	}
	if dst.NVecs() != len(f) {
		return nil, fmt.Errorf("matrix has %d vectors, frame %d has %d atoms", dst.NVecs(), frame, len(f))
	}
	for i, a := range f {
		dst.Set(i, 0, a.X)
		dst.Set(i, 1, a.Y)
		dst.Set(i, 2, a.Z)
	}
	return dst, nil
}
