/*
 * errors.go, part of mrsimtxt.
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
	"strings"
)

// FormatName is returned by the Format method of every error in this package.
const FormatName = "mrsim-txt"

// endOfInput stands for the "actual" text when a required line is missing.
const endOfInput = "<end of input>"

//trajErr holds what every error kind in this package has in common:
//the file it refers to (empty when decoding a buffer) and the chain of
//stages it went through on its way up.
type trajErr struct {
	filename string
	deco     []string
}

//Decorate adds new information to the error
func (E *trajErr) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (E *trajErr) FileName() string { return E.filename }

//Format returns the format of the file associated to the error
func (E *trajErr) Format() string { return FormatName }

//Critical is always true: there is no recoverable decoding error.
func (E *trajErr) Critical() bool { return true }

func (E *trajErr) setFileName(name string) { E.filename = name }

func (E *trajErr) prefix() string {
	if E.filename == "" {
		return FormatName + " error"
	}
	return fmt.Sprintf("%s file %s error", FormatName, E.filename)
}

// FileAccessError is returned when the input can not be read at all
// (not found, permission denied, broken compressed stream, unreachable bucket).
type FileAccessError struct {
	trajErr
	Path string
	Err  error
}

func (err *FileAccessError) Error() string {
	return fmt.Sprintf("%s: can't read %s: %v", err.prefix(), err.Path, err.Err)
}

func (err *FileAccessError) Unwrap() error { return err.Err }

// FormatError reports a line that doesn't follow the mrsim-txt grammar.
// Line is the 1-based index into the normalized line sequence, i.e. after
// header comments have been removed. Line is 0 when the problem isn't tied
// to a single line.
type FormatError struct {
	trajErr
	Line     int
	Expected string
	Actual   string
}

func (err *FormatError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("%s: line %d: expected %q, found %q", err.prefix(), err.Line, err.Expected, err.Actual)
	}
	return fmt.Sprintf("%s: expected %s, found %s", err.prefix(), err.Expected, err.Actual)
}

// SequenceError reports clusters numbered out of order, or a total number
// of frames that doesn't match the header.
type SequenceError struct {
	trajErr
	What     string
	Expected uint
	Actual   uint
}

func (err *SequenceError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d, found %d", err.prefix(), err.What, err.Expected, err.Actual)
}

// UnsupportedFeatureError is returned for valid files using a feature this
// decoder doesn't implement.
type UnsupportedFeatureError struct {
	trajErr
	Feature string
}

func (err *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s: %s not supported", err.prefix(), err.Feature)
}

//newFormatError copies expected and actual, which usually point into the
//input buffer. That buffer can be unmapped before the error is read.
func newFormatError(line int, expected, actual string) *FormatError {
	return &FormatError{Line: line, Expected: strings.Clone(expected), Actual: strings.Clone(actual)}
}

//errDecorate adds caller to the chain of err, if err is one of ours.
//Other errors (e.g. context cancellation) are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//errFileName sets the file name on err, if err is one of ours.
func errFileName(err error, name string) error {
	if e, ok := err.(interface{ setFileName(string) }); ok {
		e.setFileName(name)
	}
	return err
}

//lastFrameError implements LastFrameError
type lastFrameError struct {
	trajErr
}

//NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) Error() string { return "EOF" }

//Critical is false, reaching the last frame is not a problem.
func (E *lastFrameError) Critical() bool { return false }

func newLastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.filename = filename
	e.deco = []string{caller}
	return e
}
