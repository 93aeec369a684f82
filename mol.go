/*
 * mol.go, part of fragprep.
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

import (
	"fmt"

	v3 "github.com/rmera/fragprep/v3"
)

/**Note: some functions here panic instead of returning errors. They
 * are "fundamental" functions, and if something goes wrong in them,
 * the program is way-most-likely wrong and should crash.**/

//WildcardZ is the reserved atomic number marking a placeholder
//("dummy") atom, i.e. an unspecified attachment point.
const WildcardZ = 0

//Hybridization states for an atom.
const (
	HybridUnset = iota
	HybridSP
	HybridSP2
	HybridSP3
)

//Names of the per-atom properties used by this library.
const (
	//GasteigerChargeProp holds a float64 partial charge.
	GasteigerChargeProp = "_GasteigerCharge"
	//MaskedProp is the boolean marker set by the DummyMasker on every
	//placeholder atom it masks.
	MaskedProp = "_MaskedDummy"
)

//Atom is one atom in a molecule: its identity, formal charge,
//implicit hydrogens, hybridization, and an open set of typed
//properties. Coordinates live in the molecule's conformer, not here.
type Atom struct {
	Z         int
	Symbol    string
	Charge    int //formal charge
	ImplicitH int
	Hybrid    int
	Aromatic  bool
	props     map[string]interface{}
}

//SetProp sets the property key to the value val for the atom.
func (A *Atom) SetProp(key string, val interface{}) {
	if A.props == nil {
		A.props = make(map[string]interface{})
	}
	A.props[key] = val
}

//Prop returns the value of the property key and whether it is set.
func (A *Atom) Prop(key string) (interface{}, bool) {
	v, ok := A.props[key]
	return v, ok
}

//HasProp returns whether the property key is set on the atom.
func (A *Atom) HasProp(key string) bool {
	_, ok := A.props[key]
	return ok
}

//DelProp removes the property key from the atom, if present.
func (A *Atom) DelProp(key string) {
	delete(A.props, key)
}

//FloatProp returns the property key as a float64, and whether it was
//present and of that type.
func (A *Atom) FloatProp(key string) (float64, bool) {
	v, ok := A.props[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

//Copy returns a copy of the Atom, including its properties.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("fragprep: attempted to copy a nil atom")
	}
	newat := new(Atom)
	*newat = *A
	if A.props != nil {
		newat.props = make(map[string]interface{}, len(A.props))
		for k, v := range A.props {
			newat.props[k] = v
		}
	}
	return newat
}

//Bond connects the atoms with indexes A and B, in whatever molecule
//owns it, with the bond order Order (1-3).
type Bond struct {
	A, B     int
	Order    int
	Aromatic bool
}

//Prop is one molecule-level annotation, serialized as an SDF data
//field. Order of insertion is preserved across serialization.
type Prop struct {
	Key, Value string
}

//Mol is a molecule: atoms, bonds, an optional conformer holding the
//3D cartesian coordinates of each atom, a display name, and an
//ordered set of string annotations.
type Mol struct {
	Atoms  []*Atom
	Bonds  []*Bond
	Coords *v3.Matrix //nil if the molecule has no conformer
	name   string
	props  []Prop
}

//NewMol returns an empty molecule.
func NewMol() *Mol {
	return new(Mol)
}

//Name returns the display name of the molecule.
func (M *Mol) Name() string { return M.name }

//SetName sets the display name of the molecule.
func (M *Mol) SetName(name string) { M.name = name }

//Len returns the number of atoms in the molecule.
func (M *Mol) Len() int { return len(M.Atoms) }

//Atom returns the atom with index i. Panics if out of range.
func (M *Mol) Atom(i int) *Atom {
	if i >= M.Len() {
		panic(fmt.Sprintf("fragprep: requested atom %d out of bounds (%d)", i, M.Len()))
	}
	return M.Atoms[i]
}

//AddAtom appends an atom to the molecule and returns its index. It
//does not touch the conformer, which becomes stale if present.
func (M *Mol) AddAtom(at *Atom) int {
	M.Atoms = append(M.Atoms, at)
	return len(M.Atoms) - 1
}

//AddBond appends a bond between the atoms with indexes i and j.
//Panics if either index is out of range.
func (M *Mol) AddBond(i, j, order int) {
	if i >= M.Len() || j >= M.Len() {
		panic("fragprep: bond index out of bounds")
	}
	M.Bonds = append(M.Bonds, &Bond{A: i, B: j, Order: order})
}

//Neighbors returns the indexes of the atoms bonded to the atom with
//index i, in bond-declaration order.
func (M *Mol) Neighbors(i int) []int {
	var n []int
	for _, b := range M.Bonds {
		if b.A == i {
			n = append(n, b.B)
		} else if b.B == i {
			n = append(n, b.A)
		}
	}
	return n
}

//BondBetween returns the bond between the atoms i and j, or nil if
//they are not bonded.
func (M *Mol) BondBetween(i, j int) *Bond {
	for _, b := range M.Bonds {
		if (b.A == i && b.B == j) || (b.A == j && b.B == i) {
			return b
		}
	}
	return nil
}

//SetProp sets the molecule-level annotation key to val, replacing any
//previous value while keeping the original insertion position.
func (M *Mol) SetProp(key, val string) {
	for i := range M.props {
		if M.props[i].Key == key {
			M.props[i].Value = val
			return
		}
	}
	M.props = append(M.props, Prop{key, val})
}

//Prop returns the molecule-level annotation key and whether it is set.
func (M *Mol) Prop(key string) (string, bool) {
	for _, p := range M.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

//Props returns a copy of the molecule-level annotations, in insertion
//order.
func (M *Mol) Props() []Prop {
	r := make([]Prop, len(M.props))
	copy(r, M.props)
	return r
}

//Copy returns a deep copy of the molecule, including atoms, bonds,
//annotations and the conformer, if any.
func (M *Mol) Copy() *Mol {
	mol := new(Mol)
	mol.name = M.name
	mol.Atoms = make([]*Atom, 0, len(M.Atoms))
	for _, at := range M.Atoms {
		mol.Atoms = append(mol.Atoms, at.Copy())
	}
	mol.Bonds = make([]*Bond, 0, len(M.Bonds))
	for _, b := range M.Bonds {
		nb := *b
		mol.Bonds = append(mol.Bonds, &nb)
	}
	if M.props != nil {
		mol.props = make([]Prop, len(M.props))
		copy(mol.props, M.props)
	}
	if M.Coords != nil {
		mol.Coords = v3.Zeros(M.Coords.NVecs())
		mol.Coords.Copy(M.Coords)
	}
	return mol
}

//bondOrderSum returns the sum of the orders of the bonds of atom i.
func (M *Mol) bondOrderSum(i int) int {
	var s int
	for _, b := range M.Bonds {
		if b.A == i || b.B == i {
			s += b.Order
		}
	}
	return s
}

//assignHybridization sets the hybridization of every atom from its
//bond orders: any triple bond (or two double bonds, as in a
//cumulene) makes sp, any double or aromatic bond sp2, everything
//else sp3.
func (M *Mol) assignHybridization() {
	for i, at := range M.Atoms {
		doubles := 0
		triples := 0
		aromatic := false
		for _, b := range M.Bonds {
			if b.A != i && b.B != i {
				continue
			}
			switch {
			case b.Order == 3:
				triples++
			case b.Order == 2:
				doubles++
			case b.Aromatic:
				aromatic = true
			}
		}
		switch {
		case triples > 0 || doubles >= 2:
			at.Hybrid = HybridSP
		case doubles == 1 || aromatic || at.Aromatic:
			at.Hybrid = HybridSP2
		default:
			at.Hybrid = HybridSP3
		}
	}
}

//StripHydrogens returns a copy of the molecule with every explicit
//hydrogen removed and folded into the implicit-hydrogen count of its
//heavy neighbor. The conformer, if present, loses the corresponding
//rows. The receiver is not modified.
func (M *Mol) StripHydrogens() *Mol {
	keep := make([]int, 0, len(M.Atoms))
	newidx := make([]int, len(M.Atoms))
	for i := range newidx {
		newidx[i] = -1
	}
	for i, at := range M.Atoms {
		if at.Z == 1 {
			continue
		}
		newidx[i] = len(keep)
		keep = append(keep, i)
	}
	mol := new(Mol)
	mol.name = M.name
	if M.props != nil {
		mol.props = make([]Prop, len(M.props))
		copy(mol.props, M.props)
	}
	for _, i := range keep {
		mol.Atoms = append(mol.Atoms, M.Atoms[i].Copy())
	}
	for _, b := range M.Bonds {
		switch {
		case newidx[b.A] >= 0 && newidx[b.B] >= 0:
			nb := *b
			nb.A, nb.B = newidx[b.A], newidx[b.B]
			mol.Bonds = append(mol.Bonds, &nb)
		case newidx[b.A] >= 0:
			mol.Atoms[newidx[b.A]].ImplicitH++
		case newidx[b.B] >= 0:
			mol.Atoms[newidx[b.B]].ImplicitH++
		}
	}
	if M.Coords != nil {
		mol.Coords = v3.Zeros(len(keep))
		for n, i := range keep {
			mol.Coords.SetVecs(n, M.Coords.VecView(i))
		}
	}
	return mol
}

//Wildcards returns the indexes of the placeholder atoms of the
//molecule, i.e. those whose atomic number is the wildcard sentinel.
func (M *Mol) Wildcards() []int {
	var w []int
	for i, at := range M.Atoms {
		if at.Z == WildcardZ {
			w = append(w, i)
		}
	}
	return w
}
