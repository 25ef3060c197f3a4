/*
 * quantized.go, part of mrsimtxt.
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
	"errors"
	"math"
)

//The encoder stores each quantized value in 31 bits plus a sign.
const maxQuantized = math.MaxInt32

var (
	errEmptyToken   = errors.New("empty number")
	errMisplacedNeg = errors.New("misplaced '-'")
	errBadByte      = errors.New("unexpected character")
	errOutOfRange   = errors.New("number out of range")
	errNegative     = errors.New("negative value")
)

//scanState is the state of the integer scanner between bytes. It is passed
//by value and every step returns the new state.
type scanState struct {
	neg    bool
	value  int64
	digits int
	sum    int64 //running sum of every integer finished so far
}

//step feeds one non-space byte to the scanner.
func (s scanState) step(b byte) (scanState, error) {
	switch {
	case b >= '0' && b <= '9':
		s.value = s.value*10 + int64(b-'0')
		s.digits++
		if s.value > maxQuantized {
			return s, errOutOfRange
		}
	case b == '-':
		if s.neg || s.digits > 0 {
			return s, errMisplacedNeg
		}
		s.neg = true
	default:
		return s, errBadByte
	}
	return s, nil
}

//finish closes the current integer. It returns it, and the state ready for
//the next one, with the running sum updated.
func (s scanState) finish() (int64, scanState, error) {
	if s.digits == 0 {
		return 0, s, errEmptyToken
	}
	v := s.value
	if s.neg {
		v = -v
	}
	s.sum += v
	s.neg, s.value, s.digits = false, 0, 0
	return v, s, nil
}

//scanIntegers reads space-separated decimal integers from line, calling emit
//with the index, the value and the running sum after it, for each one.
//It returns the number of integers read. A single pass is made, with no
//allocations.
func scanIntegers(line string, emit func(i int, v, sum int64) error) (int, error) {
	var s scanState
	var v int64
	var err error
	n := 0
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b != ' ' {
			if s, err = s.step(b); err != nil {
				return n, err
			}
			continue
		}
		if v, s, err = s.finish(); err != nil {
			return n, err
		}
		if err = emit(n, v, s.sum); err != nil {
			return n, err
		}
		n++
	}
	if v, s, err = s.finish(); err != nil {
		return n, err
	}
	if err = emit(n, v, s.sum); err != nil {
		return n, err
	}
	return n + 1, nil
}

//errTooMany is returned by emit functions when a line holds more values than expected.
var errTooMany = errors.New("too many values")

//dequantize reads one atom's line of quantized values into dst, which must
//have exactly one slot per frame. If cumulative is true, each value is taken
//as a delta on the previous one.
func dequantize(line string, multiplier float64, cumulative bool, dst []float64) (int, error) {
	return scanIntegers(line, func(i int, v, sum int64) error {
		if i >= len(dst) {
			return errTooMany
		}
		if cumulative {
			v = sum
		}
		dst[i] = float64(v) * multiplier
		return nil
	})
}

//scanUint16s reads a line of unsigned values, one per atom, into dst.
func scanUint16s(line string, dst []uint16) (int, error) {
	return scanIntegers(line, func(i int, v, _ int64) error {
		if i >= len(dst) {
			return errTooMany
		}
		if v < 0 {
			return errNegative
		}
		if v > math.MaxUint16 {
			return errOutOfRange
		}
		dst[i] = uint16(v)
		return nil
	})
}
