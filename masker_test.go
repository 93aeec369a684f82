/*
 * masker_test.go, part of fragprep.
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

//a phenyl fragment with two attachment points.
func dummyMol(Te *testing.T) *Mol {
	mol, err := MolFromSmiles("*c1ccc(*)cc1")
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestMaskRoundTrip(Te *testing.T) {
	mol := dummyMol(Te)
	before := mol.Wildcards()
	if len(before) != 2 {
		Te.Fatalf("expected 2 placeholder atoms, got %d", len(before))
	}
	m := NewDummyMasker(mol, nil)
	m.Mask()
	if len(mol.Wildcards()) != 0 {
		Te.Error("placeholders still visible while masked")
	}
	for _, i := range before {
		if mol.Atom(i).Z != 6 {
			Te.Errorf("atom %d masked to Z=%d, wanted carbon", i, mol.Atom(i).Z)
		}
	}
	if err := m.Unmask(); err != nil {
		Te.Error(err)
	}
	after := mol.Wildcards()
	if len(after) != len(before) {
		Te.Fatalf("placeholder count changed: %d before, %d after", len(before), len(after))
	}
	for k, i := range before {
		if after[k] != i {
			Te.Errorf("placeholder moved from atom %d to atom %d", i, after[k])
		}
		if mol.Atom(i).Z != WildcardZ || mol.Atom(i).Symbol != "*" {
			Te.Errorf("atom %d not restored: Z=%d symbol=%s", i, mol.Atom(i).Z, mol.Atom(i).Symbol)
		}
	}
}

func TestMaskChargeBlanking(Te *testing.T) {
	mol := dummyMol(Te)
	dummies := mol.Wildcards()
	for i := 0; i < mol.Len(); i++ {
		mol.Atom(i).SetProp(GasteigerChargeProp, 0.25)
	}
	o := DefaultMaskerOptions()
	o.BlankGasteiger = true
	m := NewDummyMasker(mol, o)
	m.Mask()
	if err := m.Unmask(); err != nil {
		Te.Error(err)
	}
	for _, i := range dummies {
		q, ok := mol.Atom(i).FloatProp(GasteigerChargeProp)
		if !ok {
			Te.Errorf("placeholder %d lost its charge annotation", i)
		}
		if q != 0.0 {
			Te.Errorf("placeholder %d charge %v, wanted exactly 0.0", i, q)
		}
	}
	//non-placeholder charges stay put.
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Z == WildcardZ {
			continue
		}
		if q, _ := mol.Atom(i).FloatProp(GasteigerChargeProp); q != 0.25 {
			Te.Errorf("atom %d charge %v was touched", i, q)
		}
	}
}

func TestMaskNoBlanking(Te *testing.T) {
	mol := dummyMol(Te)
	dummies := mol.Wildcards()
	mol.Atom(dummies[0]).SetProp(GasteigerChargeProp, 0.25)
	m := NewDummyMasker(mol, nil) //default: no blanking.
	m.Mask()
	if err := m.Unmask(); err != nil {
		Te.Error(err)
	}
	if q, _ := mol.Atom(dummies[0]).FloatProp(GasteigerChargeProp); q != 0.25 {
		Te.Errorf("charge blanked to %v with BlankGasteiger off", q)
	}
}

func TestMaskConsistencyGuard(Te *testing.T) {
	mol := dummyMol(Te)
	dummies := mol.Wildcards()
	m := NewDummyMasker(mol, nil)
	m.Mask()
	//simulate a concurrent caller clobbering the marker.
	mol.Atom(dummies[0]).DelProp(MaskedProp)
	if err := m.Unmask(); err == nil {
		Te.Error("unmask succeeded after the masking marker was lost")
	}
}

func TestWithMasked(Te *testing.T) {
	mol := dummyMol(Te)
	dummies := mol.Wildcards()
	err := NewDummyMasker(mol, nil).WithMasked(func(m *Mol) error {
		if len(m.Wildcards()) != 0 {
			Te.Error("placeholders visible inside the masked scope")
		}
		return nil
	})
	if err != nil {
		Te.Error(err)
	}
	if len(mol.Wildcards()) != len(dummies) {
		Te.Error("placeholders not restored after the scope")
	}
	//the unmask must run even when the scope fails.
	reterr := CError{"boom", nil}
	err = NewDummyMasker(mol, nil).WithMasked(func(m *Mol) error {
		return reterr
	})
	if err == nil {
		Te.Error("scope error swallowed")
	}
	if len(mol.Wildcards()) != len(dummies) {
		Te.Error("placeholders not restored after a failing scope")
	}
}
