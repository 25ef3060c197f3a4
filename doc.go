/*
 * doc.go, part of mrsimtxt.
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
 */

/*
Package mrsim decodes mrsim-txt, a human-readable trajectory format for
molecular simulations.

An mrsim-txt file has a header of scalar metadata followed by "frame
clusters", each holding the atom positions of several consecutive frames.
Positions are stored as signed integers, one line per atom and axis, and are
turned into coordinates by multiplying them by resolution/1024, where the
resolution, in approximate picometers, is declared in the header.

	specification:
	  - https://github.com/philipturner/molecular-renderer

	header:
	  frame time in femtoseconds: 10.0
	  spatial resolution in approximate picometers: 0.25
	  uses checkpoints: false
	  frame count: 200
	  frame cluster size: 128

	metadata:

	frame cluster 0:
	  frame start: 0
	  frame end: 127
	  metadata:
	  atoms:
	    x coordinates:
	      - 0: 1024 1030 ...
	    y coordinates:
	      ...
	    z coordinates:
	      ...
	    elements: 6 1 ...
	    flags: 0 0 ...

	frame cluster 1:
	  ...

Decode and DecodeFile return a Document with every frame of the file, or an
error. Clusters are independent of each other and are decoded by a pool of
goroutines (see WithWorkers). The result is always the same, regardless
of the number of workers.

Some assumptions are made:

Lines end in "\n" or "\r\n". The terminator is chosen looking only at the
beginning of the file.

Comment lines (starting with '#', maybe after blanks) are only removed from
the first 100 lines.

Every value is read as an absolute quantized coordinate, unless
WithCumulativeCoordinates is given.

Files using checkpoints are rejected with an UnsupportedFeatureError.
*/
package mrsim
