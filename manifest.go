/*
 * manifest.go, part of mrsimtxt.
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
	"strconv"
	"strings"
)

const (
	clusterTag    = "frame cluster "
	clusterSuffix = ":"
)

//clusterID extracts N from a "frame cluster N:" line.
func clusterID(line string) (uint, bool) {
	if !strings.HasPrefix(line, clusterTag) || !strings.HasSuffix(line, clusterSuffix) {
		return 0, false
	}
	n, err := strconv.ParseUint(line[len(clusterTag):len(line)-len(clusterSuffix)], 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func isBlank(line string) bool { return line == "" }

// ParseManifest finds the line range of every cluster in lines, starting at
// line first (normally HeaderLines). Blank lines between clusters, and at the
// end of the input, are skipped. Every cluster must be closed by a blank line.
func ParseManifest(lines []string, first int) ([]ClusterRange, error) {
	var ranges []ClusterRange
	if first > len(lines) {
		return nil, newFormatError(len(lines)+1, clusterTag+"0:", endOfInput)
	}
	c := newCursor(lines[first:], first)
	for {
		//Seeking the start of a cluster.
		c.consumeUntil(func(l string) bool { return !isBlank(l) })
		line, ok := c.peek()
		if !ok {
			return ranges, nil
		}
		expected := uint(len(ranges))
		id, ok := clusterID(line)
		if !ok {
			return nil, newFormatError(c.lineNo(), clusterTag+strconv.FormatUint(uint64(expected), 10)+clusterSuffix, line)
		}
		if id != expected {
			return nil, &SequenceError{What: "cluster ID", Expected: expected, Actual: id}
		}
		start := c.base + c.pos
		//Inside the cluster body.
		if _, ok := c.consumeUntil(isBlank); !ok {
			return nil, newFormatError(c.lineNo(), "", endOfInput)
		}
		ranges = append(ranges, ClusterRange{ID: id, Start: uint(start), End: uint(c.base + c.pos)})
	}
}
