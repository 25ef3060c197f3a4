/*
 * histo.go, part of mrsimtxt.
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

// Package histo implements fixed-bin histograms for trajectory quantities.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i holds the values v with
// dividers[i] <= v < dividers[i+1]. The last bin also holds values equal to
// the last divider. Values outside the dividers are counted in Outside.
type Data struct {
	normalized bool
	total      int
	outside    int
	dividers   []float64
	histo      []float64
}

// Uniform returns n+1 dividers splitting [lo,hi] into n bins of equal width.
func Uniform(lo, hi float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	d := floats.Span(make([]float64, n+1), lo, hi)
	d[n] = hi
	return d
}

// NewData returns a histogram with the given dividers, filled with rawdata,
// which can be nil. It panics with less than 2 dividers or if they are
// not strictly increasing.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("histo.NewData: at least 2 dividers needed")
	}
	for i := 1; i < len(dividers); i++ {
		if !(dividers[i] > dividers[i-1]) {
			panic("histo.NewData: dividers must be strictly increasing")
		}
	}
	d := &Data{dividers: append([]float64(nil), dividers...)}
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.rehisto(rawdata)
	}
	return d
}

//rehisto replaces the contents of the histogram with rawdata, which is
//not modified.
func (D *Data) rehisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	last := D.dividers[len(D.dividers)-1]
	//stat.Histogram panics on values out of range, and leaves out
	//values equal to the last divider.
	lo := sort.SearchFloat64s(data, D.dividers[0])
	hi := sort.Search(len(data), func(i int) bool { return data[i] > last })
	inside := data[lo:hi]
	atEnd := 0
	for len(inside) > 0 && inside[len(inside)-1] == last {
		inside = inside[:len(inside)-1]
		atEnd++
	}
	D.histo = stat.Histogram(D.histo, D.dividers, inside, nil)
	D.histo[len(D.histo)-1] += float64(atEnd)
	D.total = hi - lo
	D.outside = len(data) - D.total
	D.normalized = false
}

// AddData adds the given points to the histogram, keeping it normalized if
// it was.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v > D.dividers[last] {
			D.outside++
			continue
		}
		j := sort.Search(last, func(i int) bool { return D.dividers[i+1] > v })
		if j == last {
			j--
		}
		D.histo[j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Normalize divides each bin by the number of points in the histogram.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize reverts Normalize.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

func (D *Data) Normalized() bool { return D.normalized }

// Total is the number of points inside the dividers.
func (D *Data) Total() int { return D.total }

// Outside is the number of points that fell outside the dividers.
func (D *Data) Outside() int { return D.outside }

// Dividers returns a copy of the bin dividers.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

// Mode returns the index of the most populated bin.
func (D *Data) Mode() int {
	return floats.MaxIdx(D.histo)
}

// String returns a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, Total: %d, Outside: %d\n", D.normalized, D.total, D.outside)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + strings.Join(d, " ") + "\n" + strings.Join(h, " ")
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Outside    int       `json:"outside"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Normalized: D.normalized,
		Total:      D.total,
		Outside:    D.outside,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	*D = Data{
		normalized: a.Normalized,
		total:      a.Total,
		outside:    a.Outside,
		dividers:   a.Dividers,
		histo:      a.Histo,
	}
	return nil
}
