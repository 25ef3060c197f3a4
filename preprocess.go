/*
 * preprocess.go, part of mrsimtxt.
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
	"strings"
	"unicode/utf8"
	"unsafe"
)

const (
	//only this many characters are examined to pick the line terminator.
	terminatorWindow = 100
	//comments are only recognized in this many leading lines.
	commentWindow = 100
)

//bytesToString returns a string sharing memory with b. The caller must not
//modify b while the string, or any substring of it, is in use.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

//lineTerminator returns "\r\n" if there is a carriage return among the
//first terminatorWindow characters of text, and "\n" otherwise. Invalid
//UTF-8 bytes count as one character each.
func lineTerminator(text []byte) string {
	for i, n := 0, 0; i < len(text) && n < terminatorWindow; n++ {
		if text[i] == '\r' {
			return "\r\n"
		}
		_, size := utf8.DecodeRune(text[i:])
		i += size
	}
	return "\n"
}

//isComment is true for lines whose first non-blank character is '#'.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

// SplitLines normalizes text into un-terminated lines. The terminator is
// detected once, from the beginning of the text; files mixing terminators
// after that point are not supported. Comment lines are removed from the
// first 100 lines only, comments are not allowed anywhere else.
//
// The returned strings share memory with text, so text must not be modified
// while they are in use.
func SplitLines(text []byte) []string {
	lines := strings.Split(bytesToString(text), lineTerminator(text))
	head := min(len(lines), commentWindow)
	kept := 0
	for i := 0; i < head; i++ {
		if isComment(lines[i]) {
			continue
		}
		lines[kept] = lines[i]
		kept++
	}
	if kept == head {
		return lines
	}
	return append(lines[:kept], lines[head:]...)
}
