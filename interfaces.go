/*
 * interfaces.go, part of mrsimtxt.
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
	"time"

	v3 "github.com/rmera/mrsimtxt/v3"
)

// Traj is an interface for any trajectory object. A decoded Document
// provides one through NewTraj.
type Traj interface {
	//Is the trajectory ready to be read?
	Readable() bool
	//reads the next frame into output, or discards it if output is nil.
	//mrsim-txt files carry no box vectors, so a given box is zeroed.
	Next(output *v3.Matrix, box ...[]float64) error
	//Returns the number of atoms per frame
	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of a stage/function in the call chain. An empty string just returns the current chain.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswith that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}

// EventSink receives the wall-clock duration of each decoding stage.
// Implementations must be safe for use from the goroutine calling Decode.
type EventSink interface {
	Checkpoint(stage string, elapsed time.Duration)
}

// ClusterSink can be implemented by an EventSink that also wants to know
// about each decoded cluster. ClusterDecoded is called from the decoding
// workers, possibly at the same time from several goroutines.
type ClusterSink interface {
	ClusterDecoded(id uint, frames int)
}
