/*
 * atomicdata.go, part of mrsimtxt.
 *
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
 *
 */

package mrsim

//The element of an atom is stored as its atomic number.
//zSymbol[z] is the symbol for atomic number z, zSymbol[0] is unused.
var zSymbol = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" and a few common in materials are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.003,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Ne": 20.18,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"Ag": 107.87,
	"I":  126.90,
	"Pt": 195.08,
	"Au": 196.97,
}

// ElementSymbol returns the symbol for the atomic number z, or "?" if z is
// not an element.
func ElementSymbol(z uint16) string {
	if z == 0 || int(z) >= len(zSymbol) {
		return "?"
	}
	return zSymbol[z]
}

// ElementMass returns the mass, in Daltons, of the element with atomic
// number z. ok is false if the mass of the element is not known.
func ElementMass(z uint16) (mass float64, ok bool) {
	mass, ok = symbolMass[ElementSymbol(z)]
	return mass, ok
}

// Masses returns the mass of each atom in the document. Atoms of unknown
// mass are given 0, and their element ids are returned in unknown, without
// repetitions.
func (D *Document) Masses() (masses []float64, unknown []uint16) {
	els := D.Elements()
	masses = make([]float64, len(els))
	seen := make(map[uint16]bool)
	for i, z := range els {
		m, ok := ElementMass(z)
		if !ok && !seen[z] {
			seen[z] = true
			unknown = append(unknown, z)
		}
		masses[i] = m
	}
	return masses, unknown
}
