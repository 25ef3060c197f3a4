/*
 * gocoords.go, part of mrsimtxt.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// AddVec adds the vector vec to each vector of A, putting the result on the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		f.Add(A.VecView(i), vec)
	}
}

// SubVec subtracts the vector vec to each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		f.Sub(A.VecView(i), vec)
	}
}

// SomeVecs puts in the receiver the ith vectors of A, where i are the numbers in
// clist, in the same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrShape)
		}
		for j := 0; j < ac; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

// SomeVecsSafe is SomeVecs, but it returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = Error{fmt.Sprintf("mrsimtxt/v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return nil
}

// Centroid returns the mean of the vectors in F. If weights is not nil, it must
// have one non-negative value per vector and the weighted mean is returned.
func (F *Matrix) Centroid(weights []float64) *Matrix {
	n := F.NVecs()
	if n == 0 {
		panic(ErrNoVecs)
	}
	if weights != nil && len(weights) != n {
		panic(ErrShape)
	}
	ret := Zeros(1)
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F)
		if weights == nil {
			ret.Set(0, j, floats.Sum(col)/float64(n))
			continue
		}
		ret.Set(0, j, floats.Dot(col, weights)/floats.Sum(weights))
	}
	return ret
}

// Norm2 returns the euclidean norm of the first vector of F.
func (F *Matrix) Norm2() float64 {
	return math.Sqrt(F.At(0, 0)*F.At(0, 0) + F.At(0, 1)*F.At(0, 1) + F.At(0, 2)*F.At(0, 2))
}

// RMSD returns the root mean square deviation between the vectors of A and
// those of B, which must have the same number of vectors. No superposition is done.
func RMSD(A, B *Matrix) float64 {
	n := A.NVecs()
	if n != B.NVecs() {
		panic(ErrShape)
	}
	if n == 0 {
		return 0
	}
	diff := Zeros(n)
	diff.Sub(A, B)
	return mat.Norm(diff, 2) / math.Sqrt(float64(n))
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r)
	for i := range v {
		v[i] = fmt.Sprintf("%6.2f %6.2f %6.2f", F.At(i, 0), F.At(i, 1), F.At(i, 2))
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}
