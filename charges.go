/*
 * charges.go, part of fragprep.
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

import "math"

//GasteigerCharges computes PEOE (Gasteiger-Marsili) partial charges
//for every atom of the molecule and stores each one in the atom
//property GasteigerChargeProp, as a float64. Implicit hydrogens are
//treated as pseudo-neighbors of their heavy atom. Atoms without
//parameters in the table (wildcards among them) keep their formal
//charge and still get the property. The iteration count and damping
//follow the original publication (6 cycles, damping 1/2^k).
func GasteigerCharges(mol *Mol) {
	const cycles = 6
	n := mol.Len()
	q := make([]float64, n)
	hq := make([]float64, n) //one shared charge per atom for all its implicit Hs
	for i, at := range mol.Atoms {
		q[i] = float64(at.Charge)
	}
	hpar := gasteigerTable["H"][0]
	for k := 1; k <= cycles; k++ {
		damp := math.Pow(0.5, float64(k))
		chi := make([]float64, n)
		chiH := make([]float64, n)
		for i, at := range mol.Atoms {
			par, ok := lookupGasteiger(at)
			if !ok {
				chi[i] = math.NaN()
				continue
			}
			chi[i] = par.a + par.b*q[i] + par.c*q[i]*q[i]
			chiH[i] = hpar.a + hpar.b*hq[i] + hpar.c*hq[i]*hq[i]
		}
		dq := make([]float64, n)
		dhq := make([]float64, n)
		for _, b := range mol.Bonds {
			transferCharge(mol, chi, dq, b.A, b.B, damp)
		}
		for i, at := range mol.Atoms {
			if at.ImplicitH == 0 || math.IsNaN(chi[i]) {
				continue
			}
			//charge flows from the less to the more electronegative
			//end; the divisor is the cation electronegativity of the
			//donor.
			var flow float64
			if chi[i] > chiH[i] {
				flow = (chi[i] - chiH[i]) / (hpar.a + hpar.b + hpar.c) * damp
			} else {
				flow = (chi[i] - chiH[i]) / cationChi(mol.Atoms[i]) * damp
			}
			dq[i] -= flow * float64(at.ImplicitH)
			dhq[i] += flow
		}
		for i := range q {
			q[i] += dq[i]
			hq[i] += dhq[i]
		}
	}
	for i, at := range mol.Atoms {
		at.SetProp(GasteigerChargeProp, q[i])
	}
}

//transferCharge moves charge between the bonded atoms i and j
//according to their electronegativity difference.
func transferCharge(mol *Mol, chi, dq []float64, i, j int, damp float64) {
	if math.IsNaN(chi[i]) || math.IsNaN(chi[j]) {
		return
	}
	if chi[i] == chi[j] {
		return
	}
	lo, hi := i, j
	if chi[i] > chi[j] {
		lo, hi = j, i
	}
	flow := (chi[hi] - chi[lo]) / cationChi(mol.Atoms[lo]) * damp
	dq[lo] += flow
	dq[hi] -= flow
}

//cationChi returns the electronegativity of the atom's cation, the
//normalization factor of the PEOE transfer term.
func cationChi(at *Atom) float64 {
	par, ok := lookupGasteiger(at)
	if !ok {
		return 20.02 //the H+ value, a serviceable fallback
	}
	return par.a + par.b + par.c
}

func lookupGasteiger(at *Atom) (gasteigerParams, bool) {
	byHybrid, ok := gasteigerTable[at.Symbol]
	if !ok {
		return gasteigerParams{}, false
	}
	hyb := at.Hybrid
	if hyb == HybridUnset {
		hyb = HybridSP3
	}
	if par, ok := byHybrid[hyb]; ok {
		return par, true
	}
	par, ok := byHybrid[0]
	return par, ok
}
