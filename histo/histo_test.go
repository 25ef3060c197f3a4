/*
 * histo_test.go, part of mrsimtxt.
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

package histo

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, -7}
	D := NewData([]float64{0, 2, 4, 8}, rawdata)
	fmt.Println(D)
	//44 and -7 are out, 8 goes to the last bin.
	assert.Equal(Te, []float64{6, 7, 8}, D.View())
	assert.Equal(Te, 21, D.Total())
	assert.Equal(Te, 2, D.Outside())
	assert.Equal(Te, 2, D.Mode())
	assert.Equal(Te, 44.0, rawdata[20], "raw data must not be reordered")

	D.Normalize()
	assert.True(Te, D.Normalized())
	assert.InDelta(Te, 1.0, D.View()[0]+D.View()[1]+D.View()[2], 1e-12)
	D.AddData(8, 1.5, 9)
	assert.True(Te, D.Normalized())
	D.UnNormalize()
	assert.InDeltaSlice(Te, []float64{7, 7, 9}, D.View(), 1e-9)
	assert.Equal(Te, 3, D.Outside())

	empty := NewData(Uniform(0, 1, 4), nil)
	assert.Equal(Te, []float64{0, 0.25, 0.5, 0.75, 1}, empty.Dividers())
	empty.Normalize()
	assert.False(Te, empty.Normalized())

	assert.Panics(Te, func() { NewData([]float64{1}, nil) })
	assert.Panics(Te, func() { NewData([]float64{2, 1}, nil) })
	assert.PanicsWithValue(Te, "histo.NewData: dividers must be strictly increasing", func() {
		NewData([]float64{0, 1, 1, 2}, []float64{0.5, 1.5})
	})
}

func TestHistoJSON(Te *testing.T) {
	D := NewData(Uniform(0, 3, 3), []float64{0.5, 1.5, 1.7, 4})
	j, err := json.Marshal(D)
	require.NoError(Te, err)
	fmt.Println("JSON:", string(j))
	D2 := new(Data)
	require.NoError(Te, json.Unmarshal(j, D2))
	assert.Equal(Te, D.View(), D2.View())
	assert.Equal(Te, D.Dividers(), D2.Dividers())
	assert.Equal(Te, 1, D2.Outside())

	assert.Error(Te, json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2))
}
