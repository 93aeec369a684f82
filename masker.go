/*
 * masker.go, part of fragprep.
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

import "fmt"

//DummyMasker temporarily substitutes the placeholder (wildcard) atoms
//of a molecule with a real element, so that geometry operations that
//reject wildcards can run, and restores them afterwards. The set of
//placeholder atoms is fixed when the masker is built and is never
//re-scanned. The masker mutates the molecule in place; a molecule
//must not be shared between concurrent masking scopes.
type DummyMasker struct {
	mol        *Mol
	dummies    []int
	substitute int
	blank      bool
}

//MaskerOptions contains the options for a DummyMasker.
type MaskerOptions struct {
	//SubstituteZ is the atomic number the placeholders are switched
	//to while masked.
	SubstituteZ int
	//BlankGasteiger makes Unmask overwrite the Gasteiger-charge
	//property of every placeholder that carries one with exactly 0.0,
	//as the charge computed for the substitute element is meaningless
	//for a wildcard.
	BlankGasteiger bool
}

//DefaultMaskerOptions returns the default options for a DummyMasker:
//placeholders are masked as carbon, and their partial charges are not
//touched on restore.
func DefaultMaskerOptions() *MaskerOptions {
	r := new(MaskerOptions)
	r.SubstituteZ = 6
	r.BlankGasteiger = false
	return r
}

//NewDummyMasker builds a masker over mol, recording the current set
//of placeholder atoms (atomic number 0). A nil o means
//DefaultMaskerOptions.
func NewDummyMasker(mol *Mol, o *MaskerOptions) *DummyMasker {
	if o == nil {
		o = DefaultMaskerOptions()
	}
	m := &DummyMasker{mol: mol, substitute: o.SubstituteZ, blank: o.BlankGasteiger}
	m.dummies = mol.Wildcards()
	return m
}

//Mask switches every recorded placeholder atom to the substitute
//element, marks it with the MaskedProp property and forces its
//hybridization to sp3. Calling Mask twice without an intervening
//Unmask is not guarded against.
func (m *DummyMasker) Mask() {
	for _, i := range m.dummies {
		at := m.mol.Atoms[i]
		at.Z = m.substitute
		at.Symbol = SymbolFromZ(m.substitute)
		at.SetProp(MaskedProp, true)
		at.Hybrid = HybridSP3
	}
}

//Unmask restores every recorded placeholder atom to the wildcard
//identity. If any tracked atom no longer carries the MaskedProp
//marker, something else has modified the molecule while it was
//masked; that is a fatal consistency error and no silent recovery is
//attempted (the molecule is left as found). With the BlankGasteiger
//option set, any Gasteiger-charge property on a placeholder is
//overwritten with 0.0.
func (m *DummyMasker) Unmask() error {
	for _, i := range m.dummies {
		if !m.mol.Atoms[i].HasProp(MaskedProp) {
			return CError{fmt.Sprintf("masker: placeholder atom %d lost its masking marker; the molecule was modified while masked", i), []string{"DummyMasker.Unmask"}}
		}
	}
	for _, i := range m.dummies {
		at := m.mol.Atoms[i]
		at.DelProp(MaskedProp)
		at.Z = WildcardZ
		at.Symbol = "*"
		if m.blank {
			if _, ok := at.Prop(GasteigerChargeProp); ok {
				at.SetProp(GasteigerChargeProp, 0.0)
			}
		}
	}
	return nil
}

//WithMasked runs f on the molecule with its placeholders masked,
//unmasking on every exit path, including a panic in f, exactly once.
func (m *DummyMasker) WithMasked(f func(*Mol) error) (err error) {
	m.Mask()
	defer func() {
		uerr := m.Unmask()
		if uerr != nil && err == nil {
			err = uerr
		}
	}()
	err = f(m.mol)
	return err
}
