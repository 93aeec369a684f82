/*
 * sdf_test.go, part of fragprep.
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
	"bytes"
	"math"
	"path/filepath"
	"testing"
)

func sdfTestMol(Te *testing.T) *Mol {
	mol, err := MolFromSmiles("CC(=O)[O-]")
	if err != nil {
		Te.Fatal(err)
	}
	if err := EmbedMol(mol); err != nil {
		Te.Fatal(err)
	}
	mol.SetName("acetate")
	mol.SetProp("ref_pdb", "5ABC")
	mol.SetProp("note", "line one\nline two")
	return mol
}

func TestSDFRoundTrip(Te *testing.T) {
	mol := sdfTestMol(Te)
	var buf bytes.Buffer
	if err := SDFWriteMol(&buf, mol, nil); err != nil {
		Te.Fatal(err)
	}
	mols, err := SDFRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 1 {
		Te.Fatalf("read %d records", len(mols))
	}
	got := mols[0]
	if got.Name() != "acetate" || got.Len() != mol.Len() {
		Te.Errorf("read back %s with %d atoms", got.Name(), got.Len())
	}
	if got.Atom(3).Charge != -1 {
		Te.Errorf("formal charge lost: %d", got.Atom(3).Charge)
	}
	if v, _ := got.Prop("ref_pdb"); v != "5ABC" {
		Te.Errorf("ref_pdb read back as %q", v)
	}
	if v, _ := got.Prop("note"); v != "line one\nline two" {
		Te.Errorf("multiline field read back as %q", v)
	}
	for i := 0; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got.Coords.At(i, j)-mol.Coords.At(i, j)) > 1e-3 {
				Te.Fatalf("coordinate (%d,%d) off: %v vs %v", i, j, got.Coords.At(i, j), mol.Coords.At(i, j))
			}
		}
	}
}

func TestSDFFileCompression(Te *testing.T) {
	mol := sdfTestMol(Te)
	dir := Te.TempDir()
	for _, name := range []string{"plain.sdf", "zipped.sdf.gz", "zstd.sdf.zst"} {
		path := filepath.Join(dir, name)
		if err := SDFFileWrite(path, mol); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		mols, err := SDFFileRead(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if len(mols) != 1 || mols[0].Name() != "acetate" {
			Te.Errorf("%s: bad read-back", name)
		}
	}
}

func TestSDFMultiRecord(Te *testing.T) {
	a := sdfTestMol(Te)
	b := sdfTestMol(Te)
	b.SetName("other")
	var buf bytes.Buffer
	if err := SDFWriteMol(&buf, a, nil); err != nil {
		Te.Fatal(err)
	}
	if err := SDFWriteMol(&buf, b, []string{"ref_pdb"}); err != nil {
		Te.Fatal(err)
	}
	mols, err := SDFRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("read %d records", len(mols))
	}
	if mols[1].Name() != "other" {
		Te.Error("second record name lost")
	}
	//the restricted field list must drop the note.
	if _, ok := mols[1].Prop("note"); ok {
		Te.Error("field list did not restrict the written fields")
	}
}
