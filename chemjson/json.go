/*
 * json.go, part of mrsimtxt.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mrsim "github.com/rmera/mrsimtxt"
)

//Info describes the stream that follows it.
type Info struct {
	Frames        int //frames in the stream, not in the trajectory
	Atoms         int
	FrameTimeFs   float64
	ResolutionPm  float64
	Every         int //only every Every-th frame of the trajectory is sent
	TotalFrames   int
	MassAvailable bool
}

//Atom carries what doesn't change between frames.
type Atom struct {
	Index   int
	Element uint16
	Symbol  string
	Flags   uint16
	Mass    float64 //0 if unknown
}

//Frame carries the positions of all atoms in one frame, in the order of
//the Atom values, as x1 y1 z1 x2 y2 z2...
type Frame struct {
	Frame       int
	TimestampPs float64
	Coords      []float64
}

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool //If this is false (no error) all the other fields will be at their zero-values.
	Frame    int  //-1 if the error is not related to a frame
	Function string
	Message  string
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error
func NewError(function string, frame int, err error) *Error {
	return &Error{IsError: true, Frame: frame, Function: function, Message: err.Error()}
}

//Send writes the trajectory in doc to out. Only frames whose index is a
//multiple of every are sent. every < 1 is taken as 1.
func Send(doc *mrsim.Document, every int, out io.Writer) *Error {
	const funcname = "Send"
	if every < 1 {
		every = 1
	}
	b := bufio.NewWriter(out)
	enc := json.NewEncoder(b)
	masses, unknown := doc.Masses()
	info := &Info{
		Frames:        (len(doc.Frames) + every - 1) / every,
		Atoms:         doc.Len(),
		FrameTimeFs:   doc.Header.FrameTimeFs,
		ResolutionPm:  doc.Header.ResolutionApproxPm,
		Every:         every,
		TotalFrames:   len(doc.Frames),
		MassAvailable: len(unknown) == 0,
	}
	if err := enc.Encode(info); err != nil {
		return NewError(funcname+"(info)", -1, err)
	}
	if len(doc.Frames) > 0 {
		if err := EncodeAtoms(doc.Frames[0], masses, enc); err != nil {
			return err
		}
	}
	jf := new(Frame)
	for i := 0; i < len(doc.Frames); i += every {
		jf.Frame = i
		jf.TimestampPs = doc.Header.Timestamp(i)
		jf.Coords = flatten(doc.Frames[i], jf.Coords[:0])
		if err := enc.Encode(jf); err != nil {
			return NewError(funcname, i, err)
		}
	}
	if err := b.Flush(); err != nil {
		return NewError(funcname, -1, err)
	}
	return nil
}

//EncodeAtoms encodes one Atom value per atom in frame.
func EncodeAtoms(frame mrsim.Frame, masses []float64, enc *json.Encoder) *Error {
	const funcname = "EncodeAtoms"
	a := new(Atom)
	for i, at := range frame {
		*a = Atom{Index: i, Element: at.Element, Symbol: mrsim.ElementSymbol(at.Element), Flags: at.Flags}
		if i < len(masses) {
			a.Mass = masses[i]
		}
		if err := enc.Encode(a); err != nil {
			return NewError(funcname, -1, err)
		}
	}
	return nil
}

func flatten(frame mrsim.Frame, dst []float64) []float64 {
	for _, at := range frame {
		dst = append(dst, at.X, at.Y, at.Z)
	}
	return dst
}

//Receive reads a stream written by Send. It returns the Info, the atoms
//and the frames of the stream.
func Receive(stream io.Reader) (*Info, []Atom, []Frame, error) {
	dec := json.NewDecoder(bufio.NewReader(stream))
	info := new(Info)
	if err := decodeValue(dec, info); err != nil {
		return nil, nil, nil, fmt.Errorf("Receive: info: %w", err)
	}
	atoms := make([]Atom, info.Atoms)
	if info.Frames > 0 {
		for i := range atoms {
			if err := decodeValue(dec, &atoms[i]); err != nil {
				return nil, nil, nil, fmt.Errorf("Receive: atom %d: %w", i, err)
			}
		}
	}
	frames := make([]Frame, info.Frames)
	for i := range frames {
		if err := decodeValue(dec, &frames[i]); err != nil {
			return nil, nil, nil, fmt.Errorf("Receive: frame %d: %w", i, err)
		}
		if len(frames[i].Coords) != 3*info.Atoms {
			return nil, nil, nil, fmt.Errorf("Receive: frame %d: %d coordinates for %d atoms", frames[i].Frame, len(frames[i].Coords), info.Atoms)
		}
	}
	return info, atoms, frames, nil
}

//decodeValue decodes the next value of dec into v, unless the value is an
//Error, which is returned.
func decodeValue(dec *json.Decoder, v any) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	var probe struct{ IsError bool }
	if json.Unmarshal(raw, &probe) == nil && probe.IsError {
		jerr := new(Error)
		if err := json.Unmarshal(raw, jerr); err != nil {
			return err
		}
		return jerr
	}
	return json.Unmarshal(raw, v)
}
