/*
 * align.go, part of fragprep.
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
	"math"

	v3 "github.com/rmera/fragprep/v3"
	"gonum.org/v1/gonum/mat"
)

//Superpose computes the rigid transform that best superimposes the
//coordinates in test onto those in templa (least-squares, via SVD).
//It returns the transformed test coordinates, the rotation matrix and
//the two translation row vectors: to superimpose another set of
//coordinates in the same frame as test, add the first translation,
//multiply by the rotation (on the right) and add the second
//translation. The rows of test and templa must correspond one to one.
func Superpose(test, templa *v3.Matrix) (*v3.Matrix, *v3.Matrix, *v3.Matrix, *v3.Matrix, error) {
	tsr, tsc := test.Dims()
	tmr, tmc := templa.Dims()
	if tmr != tsr || tmc != 3 || tsc != 3 {
		return nil, nil, nil, nil, CError{fmt.Sprintf("superpose: mismatched coordinate sets: %dx%d vs %dx%d", tsr, tsc, tmr, tmc), []string{"Superpose"}}
	}
	if tsr < 3 {
		return nil, nil, nil, nil, CError{"superpose: at least 3 points are needed to define the transform", []string{"Superpose"}}
	}
	meanTest := test.Mean()
	meanTempla := templa.Mean()
	ctest := v3.Zeros(tsr)
	ctest.SubVec(test, meanTest)
	ctempla := v3.Zeros(tmr)
	ctempla.SubVec(templa, meanTempla)
	//the cross-covariance of the two centered sets.
	H := mat.NewDense(3, 3, nil)
	H.Mul(ctest.Dense.T(), ctempla.Dense)
	var svd mat.SVD
	if ok := svd.Factorize(H, mat.SVDFull); !ok {
		return nil, nil, nil, nil, CError{"superpose: SVD of the covariance matrix failed", []string{"Superpose"}}
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	//proper rotation only: a negative determinant would mean mapping
	//the set onto its mirror image.
	d := 1.0
	if mat.Det(&U)*mat.Det(&V) < 0 {
		d = -1.0
	}
	D := mat.NewDiagDense(3, []float64{1, 1, d})
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(&U, D)
	rot.Mul(rot, V.T())
	rotation := v3.Dense2Matrix(rot)
	trans1 := v3.Zeros(1)
	trans1.Scale(-1, meanTest)
	trans2 := meanTempla
	transformed := v3.Zeros(tsr)
	transformed.Mul(ctest, rotation)
	transformed.AddVec(transformed, trans2)
	return transformed, rotation, trans1, trans2, nil
}

//ApplyTransform applies, in place, the rigid transform returned by
//Superpose to the coordinates in coords.
func ApplyTransform(coords, rotation, trans1, trans2 *v3.Matrix) {
	coords.AddVec(coords, trans1)
	coords.Mul(coords, rotation)
	coords.AddVec(coords, trans2)
}

//AlignSeries re-frames a series of followup poses. The series is
//currently in the frame of usedHit; refHit is the same structure in
//the target frame (e.g. the hit as deposited in the viewer).
//AlignSeries computes the single rigid transform mapping usedHit onto
//refHit and applies it to a deep copy of every molecule in mols,
//returning the copies. The originals are never modified. The two hits
//must have conformers with the same number of atoms, in
//correspondence; otherwise the superposition fails and the error is
//returned as is.
func AlignSeries(mols []*Mol, usedHit, refHit *Mol) ([]*Mol, error) {
	if usedHit == nil || refHit == nil {
		return nil, CError{"align: nil reference hit", []string{"AlignSeries"}}
	}
	if usedHit.Coords == nil || refHit.Coords == nil {
		return nil, CError{"align: a reference hit has no conformer", []string{"AlignSeries"}}
	}
	_, rotation, t1, t2, err := Superpose(usedHit.Coords, refHit.Coords)
	if err != nil {
		return nil, errDecorate(err, "AlignSeries")
	}
	aligned := make([]*Mol, 0, len(mols))
	for i, mol := range mols {
		if mol.Coords == nil {
			return nil, CError{fmt.Sprintf("align: molecule %d (%s) has no conformer", i, mol.Name()), []string{"AlignSeries"}}
		}
		nm := mol.Copy()
		ApplyTransform(nm.Coords, rotation, t1, t2)
		aligned = append(aligned, nm)
	}
	return aligned, nil
}

//RMSD returns the root mean square deviation between the two
//coordinate sets, which must have the same dimensions.
func RMSD(test, templa *v3.Matrix) (float64, error) {
	tsr, _ := test.Dims()
	tmr, _ := templa.Dims()
	if tsr != tmr {
		return 0, CError{fmt.Sprintf("rmsd: mismatched coordinate sets: %d vs %d vectors", tsr, tmr), []string{"RMSD"}}
	}
	var s float64
	for i := 0; i < tsr; i++ {
		for j := 0; j < 3; j++ {
			d := test.At(i, j) - templa.At(i, j)
			s += d * d
		}
	}
	return math.Sqrt(s / float64(tsr)), nil
}
