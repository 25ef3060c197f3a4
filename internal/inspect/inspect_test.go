/*
 * inspect_test.go, part of mrsimtxt.
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

package inspect

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mrsim "github.com/rmera/mrsimtxt"
)

func testDoc(frames, atoms int) *mrsim.Document {
	doc := &mrsim.Document{Header: mrsim.Header{FrameTimeFs: 10, FrameCount: uint(frames)}}
	for f := 0; f < frames; f++ {
		frame := make(mrsim.Frame, atoms)
		for a := range frame {
			frame[a] = mrsim.AtomRecord{X: float64(f), Y: float64(a), Z: 0.5, Element: 6, Flags: uint16(a)}
		}
		doc.Frames = append(doc.Frames, frame)
	}
	return doc
}

func TestSample(t *testing.T) {
	doc := testDoc(50, 20)
	sel := Sample(doc, 10, 4, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, sel.Frames, 10)
	require.Len(t, sel.Atoms, 4)
	assert.IsIncreasing(t, sel.Frames)
	assert.IsIncreasing(t, sel.Atoms)
	for _, f := range sel.Frames {
		assert.True(t, f >= 0 && f < 50)
	}

	again := Sample(doc, 10, 4, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, sel, again)

	small := Sample(testDoc(3, 2), 10, 4, rand.New(rand.NewPCG(3, 4)))
	assert.Equal(t, Selection{Frames: []int{0, 1, 2}, Atoms: []int{0, 1}}, small)

	empty := Sample(testDoc(0, 0), 10, 4, rand.New(rand.NewPCG(5, 6)))
	assert.Empty(t, empty.Frames)
	assert.Empty(t, empty.Atoms)
}

func TestWrite(t *testing.T) {
	doc := testDoc(3, 2)
	var b strings.Builder
	require.NoError(t, Write(&b, doc, Selection{Frames: []int{2}, Atoms: []int{0, 1}}))
	want := "Frame 2\n" +
		"- timestamp: 0.020 ps\n" +
		" - atom 0: 2.000 0.000 0.500 6 0\n" +
		" - atom 1: 2.000 1.000 0.500 6 1\n"
	assert.Equal(t, want, b.String())

	assert.Error(t, Write(&b, doc, Selection{Frames: []int{3}}))
	assert.Error(t, Write(&b, doc, Selection{Frames: []int{0}, Atoms: []int{2}}))
}
