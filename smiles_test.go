/*
 * smiles_test.go, part of fragprep.
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

func TestSmilesParse(Te *testing.T) {
	mol, err := MolFromSmiles("CN1C=NC2=C1C(=O)N(C(=O)N2C)C") //caffeine
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 14 {
		Te.Errorf("caffeine parsed to %d heavy atoms, wanted 14", mol.Len())
	}
	var n, o int
	for i := 0; i < mol.Len(); i++ {
		switch mol.Atom(i).Symbol {
		case "N":
			n++
		case "O":
			o++
		}
	}
	if n != 4 || o != 2 {
		Te.Errorf("caffeine has %d N and %d O, wanted 4 and 2", n, o)
	}
}

func TestSmilesImplicitH(Te *testing.T) {
	mol, err := MolFromSmiles("CCO")
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{3, 2, 1}
	for i, w := range want {
		if h := mol.Atom(i).ImplicitH; h != w {
			Te.Errorf("atom %d has %d implicit H, wanted %d", i, h, w)
		}
	}
}

func TestSmilesBracketAtoms(Te *testing.T) {
	mol, err := MolFromSmiles("[NH4+]")
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if at.Charge != 1 || at.ImplicitH != 4 {
		Te.Errorf("ammonium parsed as charge %d, %d H", at.Charge, at.ImplicitH)
	}
	mol, err = MolFromSmiles("CC(=O)[O-]")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(3).Charge != -1 {
		Te.Errorf("acetate O charge %d", mol.Atom(3).Charge)
	}
}

func TestSmilesWildcards(Te *testing.T) {
	mol, err := MolFromSmiles("*c1ccc(*)cc1")
	if err != nil {
		Te.Fatal(err)
	}
	w := mol.Wildcards()
	if len(w) != 2 {
		Te.Fatalf("found %d wildcards, wanted 2", len(w))
	}
	for _, i := range w {
		if mol.Atom(i).Z != WildcardZ {
			Te.Errorf("wildcard atom %d has Z=%d", i, mol.Atom(i).Z)
		}
	}
}

//canonical output must be stable under reparsing.
func TestSmilesCanonical(Te *testing.T) {
	for _, smi := range []string{"CCO", "c1ccccc1O", "CN1C=NC2=C1C(=O)N(C(=O)N2C)C", "CC(=O)[O-]", "*c1ccc(*)cc1"} {
		mol, err := MolFromSmiles(smi)
		if err != nil {
			Te.Fatal(err)
		}
		canon := MolToSmiles(mol)
		if canon == "" {
			Te.Fatalf("empty canonical form for %s", smi)
		}
		mol2, err := MolFromSmiles(canon)
		if err != nil {
			Te.Fatalf("canonical form %q of %s does not parse: %v", canon, smi, err)
		}
		if again := MolToSmiles(mol2); again != canon {
			Te.Errorf("canonical form not stable: %q then %q", canon, again)
		}
		if mol2.Len() != mol.Len() {
			Te.Errorf("atom count changed through canonicalization of %s", smi)
		}
	}
}

func TestSmilesRingClosures(Te *testing.T) {
	//two-digit ring closure numbers.
	mol, err := MolFromSmiles("C%10CC%10")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.BondBetween(0, 2) == nil {
		Te.Error("%nn ring closure not bonded")
	}
}

func TestSmilesRejectsGarbage(Te *testing.T) {
	for _, bad := range []string{"C(", "C1CC", "[Xx]", ")C", "1C"} {
		if _, err := MolFromSmiles(bad); err == nil {
			Te.Errorf("%q parsed without error", bad)
		}
	}
}
