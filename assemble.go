/*
 * assemble.go, part of mrsimtxt.
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

import "fmt"

// Assemble concatenates the frames of each cluster, in cluster order. The
// total must match the frame count in the header, and all clusters must
// have the same number of atoms. ranges, index-aligned with clusters, is
// only used to report line numbers and can be nil.
func Assemble(H Header, ranges []ClusterRange, clusters [][]Frame) ([]Frame, error) {
	total := 0
	natoms := -1
	for i, frames := range clusters {
		total += len(frames)
		if len(frames) == 0 {
			continue
		}
		if natoms < 0 {
			natoms = len(frames[0])
		} else if len(frames[0]) != natoms {
			line := 0
			if i < len(ranges) {
				line = int(ranges[i].Start) + 1
			}
			return nil, newFormatError(line, fmt.Sprintf("%d atoms in cluster %d", natoms, i), fmt.Sprintf("%d atoms", len(frames[0])))
		}
	}
	if uint(total) != H.FrameCount {
		return nil, &SequenceError{What: "total frame count", Expected: H.FrameCount, Actual: uint(total)}
	}
	ret := make([]Frame, 0, total)
	for _, frames := range clusters {
		ret = append(ret, frames...)
	}
	return ret, nil
}
