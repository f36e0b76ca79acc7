/*
 * atomicdata.go, part of torsion.
 *
 * Copyright 2023 The torsion developers.
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

package torsion

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Si": 28.08,
	"Se": 78.96,
}

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J).
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31 in the reference. H always has only one bond, so a longer radius does no harm, the extra bonds get eliminated later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
	"Si": 1.11,
	"Se": 1.2,
}

//A map for assigning van der Waals radii to elements.
//Values from 10.1021/j100785a001 and 10.1021/jp8111556.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
	"Si": 2.10,
	"Se": 1.90,
}

//A map for checking that atoms don't have too many bonds. A value of 0
//means undefined, i.e. that this atom shouldn't be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//VdwRad returns the van der Waals radius for an element symbol, or 0 if
//the element is not in the internal table.
func VdwRad(symbol string) float64 {
	return symbolVdwrad[symbol]
}
