/*
 * charges_test.go, part of fragprep.
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

import "testing"

func TestGasteigerCharges(Te *testing.T) {
	mol, err := MolFromSmiles("CCO")
	if err != nil {
		Te.Fatal(err)
	}
	GasteigerCharges(mol)
	qs := make([]float64, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		q, ok := mol.Atom(i).FloatProp(GasteigerChargeProp)
		if !ok {
			Te.Fatalf("atom %d has no charge annotation", i)
		}
		qs[i] = q
	}
	//oxygen pulls density: it must come out the most negative atom,
	//and the alpha carbon more positive than the beta.
	if qs[2] >= 0 {
		Te.Errorf("ethanol oxygen charge %v, wanted negative", qs[2])
	}
	if qs[1] <= qs[0] {
		Te.Errorf("alpha carbon (%v) not more positive than beta (%v)", qs[1], qs[0])
	}
	if qs[2] >= qs[0] || qs[2] >= qs[1] {
		Te.Error("oxygen is not the most negative atom")
	}
}

func TestGasteigerFormalCharge(Te *testing.T) {
	mol, err := MolFromSmiles("CC(=O)[O-]")
	if err != nil {
		Te.Fatal(err)
	}
	GasteigerCharges(mol)
	q, ok := mol.Atom(3).FloatProp(GasteigerChargeProp)
	if !ok {
		Te.Fatal("carboxylate oxygen has no charge annotation")
	}
	if q >= 0 {
		Te.Errorf("carboxylate oxygen charge %v, wanted negative", q)
	}
}
