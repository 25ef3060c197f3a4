/*
 * v3_test.go, part of mrsimtxt.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
	fmt.Println("View\n", A, "\n", View)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	require.NoError(Te, B.SomeVecsSafe(A, []int{1, 3, 5}))
	assert.Equal(Te, []float64{4, 5, 6}, B.RawRowView(0))
	assert.Equal(Te, []float64{16, 17, 18}, B.RawRowView(2))
	assert.Error(Te, B.SomeVecsSafe(A, []int{1, 3, 6}))
	assert.Error(Te, B.SomeVecsSafe(A, []int{1}))
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	Row, err := NewMatrix([]float64{10, 20, 30})
	require.NoError(Te, err)
	A.AddVec(A, Row)
	assert.Equal(Te, []float64{14, 25, 36}, A.RawRowView(1))
	A.SubVec(A, Row)
	assert.Equal(Te, []float64{1, 2, 3}, A.RawRowView(0))
	assert.Panics(Te, func() { A.AddVec(A, A) })
}

func TestCentroid(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 2, 4, 6})
	require.NoError(Te, err)
	c := A.Centroid(nil)
	assert.InDeltaSlice(Te, []float64{1, 2, 3}, c.RawRowView(0), 1e-12)
	w := A.Centroid([]float64{1, 3})
	assert.InDeltaSlice(Te, []float64{1.5, 3, 4.5}, w.RawRowView(0), 1e-12)
	assert.InDelta(Te, math.Sqrt(1+4+9), c.Norm2(), 1e-12)
}

func TestRMSD(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	require.NoError(Te, err)
	B, err := NewMatrix([]float64{3, 0, 0, 1, 1, 1})
	require.NoError(Te, err)
	assert.InDelta(Te, 0.0, RMSD(A, A), 1e-12)
	//one atom displaced by 3, the other one still.
	assert.InDelta(Te, 3/math.Sqrt(2), RMSD(A, B), 1e-12)
	assert.Panics(Te, func() { RMSD(A, Zeros(3)) })
}
