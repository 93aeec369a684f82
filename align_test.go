/*
 * align_test.go, part of fragprep.
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
	"math"
	"testing"

	v3 "github.com/rmera/fragprep/v3"
)

//rotZ returns the rotation matrix for an angle about z, in the
//row-vector convention.
func rotZ(theta float64) *v3.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	r, _ := v3.NewMatrix([]float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
	return r
}

func embedded(Te *testing.T, smiles string) *Mol {
	mol, err := MolFromSmiles(smiles)
	if err != nil {
		Te.Fatal(err)
	}
	if err := EmbedMol(mol); err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestSuperpose(Te *testing.T) {
	hit := embedded(Te, "c1ccccc1O")
	moved := v3.Zeros(hit.Coords.NVecs())
	moved.Mul(hit.Coords, rotZ(0.8))
	shift, _ := v3.NewMatrix([]float64{1.5, -2.0, 3.0})
	moved.AddVec(moved, shift)
	transformed, _, _, _, err := Superpose(moved, hit.Coords)
	if err != nil {
		Te.Fatal(err)
	}
	rmsd, err := RMSD(transformed, hit.Coords)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd > 1e-6 {
		Te.Errorf("superposition of a rigidly moved copy left RMSD %v", rmsd)
	}
}

func TestAlignSeries(Te *testing.T) {
	refHit := embedded(Te, "c1ccccc1O")
	//the same hit, in the docking frame.
	usedHit := refHit.Copy()
	usedHit.Coords.Mul(refHit.Coords, rotZ(-1.1))
	shift, _ := v3.NewMatrix([]float64{0.5, 4.0, -1.0})
	usedHit.Coords.AddVec(usedHit.Coords, shift)
	//a followup posed in the same (docking) frame.
	followup := usedHit.Copy()
	followup.SetName("followup-1")
	origRow := []float64{followup.Coords.At(0, 0), followup.Coords.At(0, 1), followup.Coords.At(0, 2)}
	aligned, err := AlignSeries([]*Mol{followup}, usedHit, refHit)
	if err != nil {
		Te.Fatal(err)
	}
	if len(aligned) != 1 {
		Te.Fatalf("got %d aligned molecules", len(aligned))
	}
	rmsd, err := RMSD(aligned[0].Coords, refHit.Coords)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd > 1e-6 {
		Te.Errorf("aligned followup off by RMSD %v", rmsd)
	}
	//the input must come back untouched.
	for j := 0; j < 3; j++ {
		if followup.Coords.At(0, j) != origRow[j] {
			Te.Error("AlignSeries modified its input molecule")
			break
		}
	}
	if aligned[0].Name() != "followup-1" {
		Te.Error("aligned copy lost the molecule name")
	}
}

func TestAlignSeriesErrors(Te *testing.T) {
	hit := embedded(Te, "c1ccccc1O")
	if _, err := AlignSeries(nil, nil, hit); err == nil {
		Te.Error("nil reference hit accepted")
	}
	bare, err := MolFromSmiles("CCO")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := AlignSeries([]*Mol{hit}, bare, hit); err == nil {
		Te.Error("reference hit without conformer accepted")
	}
	small := embedded(Te, "CCO")
	if _, err := AlignSeries([]*Mol{hit}, small, hit); err == nil {
		Te.Error("mismatched reference sizes accepted")
	}
}
