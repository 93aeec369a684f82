/*
 * ptable.go, part of fragprep.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
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

package fragprep

//Data for the elements found in drug-like followup compounds. Just
//common "bio-elements" are present; anything beyond these is carried
//through I/O untouched but gets no implicit hydrogens, no embedding
//radius and no Gasteiger parameters.

//A map between element symbols and atomic numbers.
var symbol2Z = map[string]int{
	"H":  1,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Fe": 26,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

var z2Symbol = func() map[int]string {
	m := make(map[int]string, len(symbol2Z))
	for k, v := range symbol2Z {
		m[v] = k
	}
	return m
}()

//A map for assigning mass to elements.
var symbolMass = map[string]float64{
	"H":  1.0,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Fe": 55.84,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J).
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Fe": 1.52, //hs
	"Zn": 1.22,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
}

//Standard valences, used to assign implicit hydrogens to atoms read
//from SMILES outside of brackets. A value of 0 means undefined, i.e.
//that the atom gets no implicit hydrogens.
var symbolValence = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"P":  3,
	"S":  2,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//Gasteiger-Marsili electronegativity parameters (a, b, c in the
//polynomial chi = a + b*q + c*q^2), per element and, where it matters,
//hybridization. Values from Gasteiger & Marsili, 1980
//(DOI:10.1016/0040-4020(80)80168-2). Atoms without parameters keep a
//charge of zero.
type gasteigerParams struct {
	a, b, c float64
}

var gasteigerTable = map[string]map[int]gasteigerParams{
	"H": {0: {7.17, 6.24, -0.56}},
	"C": {
		HybridSP3: {7.98, 9.18, 1.88},
		HybridSP2: {8.79, 9.32, 1.51},
		HybridSP:  {10.39, 9.45, 0.73},
	},
	"N": {
		HybridSP3: {11.54, 10.82, 1.36},
		HybridSP2: {12.87, 11.15, 0.85},
		HybridSP:  {15.68, 11.7, -0.27},
	},
	"O": {
		HybridSP3: {14.18, 12.92, 1.39},
		HybridSP2: {17.07, 13.79, 0.47},
	},
	"F":  {0: {14.66, 13.85, 2.31}},
	"Cl": {0: {11.00, 9.69, 1.35}},
	"Br": {0: {10.08, 8.47, 1.16}},
	"I":  {0: {9.90, 7.96, 0.96}},
	"S":  {0: {10.14, 9.13, 1.38}},
	"P":  {0: {8.90, 8.24, 0.96}},
}

//SymbolFromZ returns the element symbol for the atomic number z, or
//the empty string if z is not in the table. The wildcard atomic
//number 0 maps to the SDF dummy symbol "*".
func SymbolFromZ(z int) string {
	if z == WildcardZ {
		return "*"
	}
	return z2Symbol[z]
}

//ZFromSymbol returns the atomic number for the element symbol s, or 0
//(the wildcard sentinel) if s is not in the table, which includes the
//dummy symbols "*" and "R".
func ZFromSymbol(s string) int {
	return symbol2Z[s]
}
