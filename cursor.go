/*
 * cursor.go, part of mrsimtxt.
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

import "strings"

//lineCursor reads a slice of lines front to back. The lines are never
//modified; the only state is the position. base is the index of lines[0]
//in the whole normalized text, used for error messages.
type lineCursor struct {
	lines []string
	pos   int
	base  int
}

func newCursor(lines []string, base int) *lineCursor {
	return &lineCursor{lines: lines, base: base}
}

//lineNo returns the 1-based line number of the current position.
func (c *lineCursor) lineNo() int { return c.base + c.pos + 1 }

func (c *lineCursor) done() bool { return c.pos >= len(c.lines) }

//peek returns the current line without consuming it.
func (c *lineCursor) peek() (string, bool) {
	if c.done() {
		return "", false
	}
	return c.lines[c.pos], true
}

//consumePrefix checks that the current line starts with prefix, consumes it and
//returns the remainder of the line.
func (c *lineCursor) consumePrefix(prefix string) (string, error) {
	line, ok := c.peek()
	if !ok {
		return "", newFormatError(c.lineNo(), prefix, endOfInput)
	}
	if !strings.HasPrefix(line, prefix) {
		return "", newFormatError(c.lineNo(), prefix, line)
	}
	c.pos++
	return line[len(prefix):], nil
}

//consumeBlank consumes a line that must be empty.
func (c *lineCursor) consumeBlank() error {
	line, ok := c.peek()
	if !ok {
		return newFormatError(c.lineNo(), "", endOfInput)
	}
	if line != "" {
		return newFormatError(c.lineNo(), "", line)
	}
	c.pos++
	return nil
}

//consumeUntil consumes lines until stop returns true for one of them, which
//is left unconsumed. It returns the consumed lines, and false if the input
//ended before stop was satisfied.
func (c *lineCursor) consumeUntil(stop func(string) bool) ([]string, bool) {
	start := c.pos
	for ; c.pos < len(c.lines); c.pos++ {
		if stop(c.lines[c.pos]) {
			return c.lines[start:c.pos], true
		}
	}
	return c.lines[start:], false
}
