/*
 * cluster.go, part of mrsimtxt.
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
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	frameStartTag  = "  frame start: "
	frameEndTag    = "  frame end: "
	frameMetaTag   = "  metadata:"
	atomsTag       = "  atoms:"
	coordsSuffix   = " coordinates:"
	elementsTag    = "    elements:"
	flagsTag       = "    flags:"
	atomLinePrefix = "      - "
	//atom lines are the only cluster lines indented with 5 or more spaces.
	atomLineIndent = "     "
)

var axisTags = [3]string{"    x" + coordsSuffix, "    y" + coordsSuffix, "    z" + coordsSuffix}

//The fixed lines in a cluster body: the cluster, frame start, frame end,
//metadata and atoms lines (5), the 3 axis headers, and the elements and flags lines (2).
const (
	clusterLeadLines  = 5
	clusterFixedLines = clusterLeadLines + 3 + 2
)

//clusterDecoder holds what is needed to decode any cluster of a document.
type clusterDecoder struct {
	header     Header
	multiplier float64
	cumulative bool
}

func newClusterDecoder(H Header, cumulative bool) *clusterDecoder {
	return &clusterDecoder{header: H, multiplier: H.Multiplier(), cumulative: cumulative}
}

// atomCount returns the number of atoms in a cluster of n lines.
func atomCount(n int) (int, bool) {
	atomLines := n - clusterFixedLines
	if atomLines < 0 || atomLines%3 != 0 {
		return 0, false
	}
	return atomLines / 3, true
}

//decode decodes the cluster in r, whose lines are lines[r.Start:r.End].
func (d *clusterDecoder) decode(ctx context.Context, lines []string, r ClusterRange) ([]Frame, error) {
	c := newCursor(lines[r.Start:r.End], int(r.Start))
	c.pos++ //the "frame cluster N:" line, already checked by ParseManifest.
	start := r.ID * d.header.ClusterSize
	startStr := strconv.FormatUint(uint64(start), 10)
	line := c.lineNo()
	s, err := c.consumePrefix(frameStartTag)
	if err != nil {
		return nil, err
	}
	if firstField(s) != startStr {
		return nil, newFormatError(line, frameStartTag+startStr, frameStartTag+s)
	}
	line = c.lineNo()
	s, err = c.consumePrefix(frameEndTag)
	if err != nil {
		return nil, err
	}
	end, err := strconv.ParseUint(firstField(s), 10, strconv.IntSize)
	if err != nil || uint(end) < start {
		return nil, newFormatError(line, frameEndTag+"<uint >= "+startStr+">", frameEndTag+s)
	}
	//A cluster can't hold more frames than its size, nor more than the
	//frames left in the document.
	limit := d.header.ClusterSize
	if remaining := d.header.FrameCount - min(start, d.header.FrameCount); remaining < limit {
		limit = remaining
	}
	if uint(end)-start >= limit {
		if limit == 0 {
			return nil, newFormatError(line, fmt.Sprintf("no cluster starting at frame %d of %d", start, d.header.FrameCount), frameEndTag+s)
		}
		return nil, newFormatError(line, fmt.Sprintf("%s<at most %d>", frameEndTag, start+limit-1), frameEndTag+s)
	}
	nframes := int(uint(end)-start) + 1
	//No per-frame metadata format exists yet, anything after the tag is ignored.
	if _, err = c.consumePrefix(frameMetaTag); err != nil {
		return nil, err
	}
	if _, err = c.consumePrefix(atomsTag); err != nil {
		return nil, err
	}
	natoms, ok := atomCount(r.Len())
	if !ok {
		return nil, newFormatError(int(r.Start)+1, fmt.Sprintf("%d+3n lines in cluster %d", clusterFixedLines+3, r.ID), fmt.Sprintf("%d lines", r.Len()))
	}
	//Checked before allocating anything: every value takes at least one
	//byte, so a cluster can't declare more values than it has bytes. Clusters
	//without atoms are held to one frame per byte.
	size := textSize(lines[r.Start:r.End])
	if nframes > size || natoms*nframes > size {
		return nil, newFormatError(int(r.Start)+1, fmt.Sprintf("at most %d values in cluster %d", size, r.ID), fmt.Sprintf("%d atoms by %d frames", natoms, nframes))
	}

	//axes[k][a*nframes+f] is the k coordinate of atom a in frame f.
	var axes [3][]float64
	for k, tag := range axisTags {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		axes[k] = make([]float64, natoms*nframes)
		if err := d.axis(c, tag, natoms, nframes, axes[k]); err != nil {
			return nil, err
		}
	}
	elements := make([]uint16, natoms)
	flags := make([]uint16, natoms)
	if err := perAtomLine(c, elementsTag, elements); err != nil {
		return nil, err
	}
	if err := perAtomLine(c, flagsTag, flags); err != nil {
		return nil, err
	}
	return transpose(axes, elements, flags, natoms, nframes), nil
}

//axis reads the block of one coordinate axis into dst.
func (d *clusterDecoder) axis(c *lineCursor, tag string, natoms, nframes int, dst []float64) error {
	if _, err := c.consumePrefix(tag); err != nil {
		return err
	}
	atom := 0
	for {
		l, ok := c.peek()
		if !ok || !strings.HasPrefix(l, atomLineIndent) {
			break
		}
		if atom >= natoms {
			return newFormatError(c.lineNo(), fmt.Sprintf("%d atom lines", natoms), l)
		}
		prefix := atomLinePrefix + strconv.Itoa(atom) + ":"
		line := c.lineNo()
		values, err := c.consumePrefix(prefix)
		if err != nil {
			return err
		}
		values = strings.TrimPrefix(values, " ")
		n, err := dequantize(values, d.multiplier, d.cumulative, dst[atom*nframes:(atom+1)*nframes])
		if err != nil {
			return newFormatError(line, fmt.Sprintf("%d integers (%v)", nframes, err), l)
		}
		if n != nframes {
			return newFormatError(line, fmt.Sprintf("%d integers", nframes), l)
		}
		atom++
	}
	if atom != natoms {
		l, ok := c.peek()
		if !ok {
			l = endOfInput
		}
		return newFormatError(c.lineNo(), fmt.Sprintf("%s%d:", atomLinePrefix, atom), l)
	}
	return nil
}

//perAtomLine reads a tagged line with one unsigned value per atom.
func perAtomLine(c *lineCursor, tag string, dst []uint16) error {
	line := c.lineNo()
	values, err := c.consumePrefix(tag)
	if err != nil {
		return err
	}
	values = strings.TrimPrefix(values, " ")
	if len(dst) == 0 {
		if values != "" {
			return newFormatError(line, tag, tag+" "+values)
		}
		return nil
	}
	n, err := scanUint16s(values, dst)
	if err != nil {
		return newFormatError(line, fmt.Sprintf("%s %d values in [0,65535] (%v)", tag, len(dst), err), tag+" "+values)
	}
	if n != len(dst) {
		return newFormatError(line, fmt.Sprintf("%s %d values", tag, len(dst)), tag+" "+values)
	}
	return nil
}

//transpose goes from the on-disk (axis)(atom)(frame) order to (frame)(atom).
//All the frames share one backing array.
func transpose(axes [3][]float64, elements, flags []uint16, natoms, nframes int) []Frame {
	records := make([]AtomRecord, natoms*nframes)
	frames := make([]Frame, nframes)
	for f := range frames {
		frame := records[f*natoms : (f+1)*natoms : (f+1)*natoms]
		for a := range frame {
			i := a*nframes + f
			frame[a] = AtomRecord{
				X:       axes[0][i],
				Y:       axes[1][i],
				Z:       axes[2][i],
				Element: elements[a],
				Flags:   flags[a],
			}
		}
		frames[f] = frame
	}
	return frames
}

//textSize returns the number of bytes in lines, terminators excluded.
func textSize(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	return n
}

//firstField returns s up to its first space.
func firstField(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
