/*
 * header.go, part of mrsimtxt.
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

//The literals of the header, in the order they must appear.
const (
	specificationTag = "specification:"
	repositoryTag    = "  - https://github.com"
	headerTag        = "header:"
	frameTimeTag     = "  frame time in femtoseconds: "
	resolutionTag    = "  spatial resolution in approximate picometers: "
	checkpointsTag   = "  uses checkpoints: "
	frameCountTag    = "  frame count: "
	clusterSizeTag   = "  frame cluster size: "
	metadataTag      = "metadata:"
)

// HeaderLines is the number of normalized lines taken by the header,
// including the blank line after "metadata:".
const HeaderLines = 12

// ParseHeader reads the header from the first HeaderLines lines.
func ParseHeader(lines []string) (Header, error) {
	var H Header
	c := newCursor(lines, 0)
	if _, err := c.consumePrefix(specificationTag); err != nil {
		return Header{}, err
	}
	url, err := c.consumePrefix(repositoryTag)
	if err != nil {
		return Header{}, err
	}
	H.Specification = strings.Clone(strings.TrimSpace(strings.TrimPrefix(repositoryTag, "  - ") + url))
	if err := c.consumeBlank(); err != nil {
		return Header{}, err
	}
	if _, err := c.consumePrefix(headerTag); err != nil {
		return Header{}, err
	}
	if H.FrameTimeFs, err = parseFloatField(c, frameTimeTag); err != nil {
		return Header{}, err
	}
	if H.ResolutionApproxPm, err = parseFloatField(c, resolutionTag); err != nil {
		return Header{}, err
	}
	line := c.lineNo()
	checkpoints, err := c.consumePrefix(checkpointsTag)
	if err != nil {
		return Header{}, err
	}
	switch checkpoints {
	case "false":
	case "true":
		return Header{}, &UnsupportedFeatureError{Feature: "checkpoints"}
	default:
		return Header{}, newFormatError(line, checkpointsTag+"true|false", checkpointsTag+checkpoints)
	}
	if H.FrameCount, err = parseUintField(c, frameCountTag); err != nil {
		return Header{}, err
	}
	line = c.lineNo()
	if H.ClusterSize, err = parseUintField(c, clusterSizeTag); err != nil {
		return Header{}, err
	}
	if H.ClusterSize == 0 && H.FrameCount > 0 {
		return Header{}, newFormatError(line, clusterSizeTag+"<positive integer>", clusterSizeTag+"0")
	}
	if err := c.consumeBlank(); err != nil {
		return Header{}, err
	}
	if _, err := c.consumePrefix(metadataTag); err != nil {
		return Header{}, err
	}
	if err := c.consumeBlank(); err != nil {
		return Header{}, err
	}
	return H, nil
}

func parseFloatField(c *lineCursor, tag string) (float64, error) {
	line := c.lineNo()
	s, err := c.consumePrefix(tag)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newFormatError(line, tag+"<float>", tag+s)
	}
	return f, nil
}

func parseUintField(c *lineCursor, tag string) (uint, error) {
	line := c.lineNo()
	s, err := c.consumePrefix(tag)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, newFormatError(line, tag+"<uint>", tag+s)
	}
	return uint(u), nil
}
