/*
 * embed.go, part of fragprep.
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

	v3 "github.com/rmera/fragprep/v3"
)

//defaultBondLength is used for atoms without a covalent radius in the
//table (notably wildcards).
const defaultBondLength = 1.5

//EmbedMol builds a conformer for the molecule from its connectivity
//and stores it in mol.Coords, replacing any previous conformer. The
//procedure is deterministic: atoms are first placed breadth-first
//with standard bond lengths along directions taken from a fixed
//spherical spiral, then relaxed for a fixed number of steps under
//harmonic bond springs plus a short-range repulsion between nonbonded
//pairs. The result is geometrically sane, not energetically
//optimized; the viewer only requires a valid 3D block.
func EmbedMol(mol *Mol) error {
	n := mol.Len()
	if n == 0 {
		return CError{"embed: empty molecule", []string{"EmbedMol"}}
	}
	coords := make([]float64, n*3)
	placed := make([]bool, n)
	dir := 0
	var bfs func(root int)
	bfs = func(root int) {
		queue := []int{root}
		placed[root] = true
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			for _, j := range mol.Neighbors(i) {
				if placed[j] {
					continue
				}
				d := spiralDirection(dir)
				dir++
				l := bondLength(mol.Atoms[i], mol.Atoms[j])
				coords[j*3] = coords[i*3] + l*d[0]
				coords[j*3+1] = coords[i*3+1] + l*d[1]
				coords[j*3+2] = coords[i*3+2] + l*d[2]
				placed[j] = true
				queue = append(queue, j)
			}
		}
	}
	offset := 0.0
	for i := 0; i < n; i++ {
		if !placed[i] {
			//each disconnected component starts displaced along x so
			//components don't relax into each other.
			coords[i*3] = offset
			offset += 5.0
			bfs(i)
		}
	}
	relax(mol, coords)
	var err error
	mol.Coords, err = v3.NewMatrix(coords)
	if err != nil {
		return errDecorate(err, "EmbedMol")
	}
	return nil
}

//spiralDirection returns the kth direction of a fixed unit-sphere
//spiral (golden-angle spacing), cycling after 32 directions.
func spiralDirection(k int) [3]float64 {
	const points = 32
	const golden = 2.39996322972865332 //radians
	k = k % points
	z := 1.0 - 2.0*(float64(k)+0.5)/points
	r := math.Sqrt(1.0 - z*z)
	phi := golden * float64(k)
	return [3]float64{r * math.Cos(phi), r * math.Sin(phi), z}
}

func bondLength(a, b *Atom) float64 {
	ra, oka := symbolCovrad[a.Symbol]
	rb, okb := symbolCovrad[b.Symbol]
	if !oka {
		ra = defaultBondLength / 2
	}
	if !okb {
		rb = defaultBondLength / 2
	}
	return ra + rb
}

//relax runs a fixed number of steepest-descent steps with harmonic
//bonds and a nonbonded repulsion wall.
func relax(mol *Mol, coords []float64) {
	const (
		steps     = 300
		stepSize  = 0.02
		repulsion = 1.8 //A, nonbonded pairs closer than this get pushed
	)
	n := mol.Len()
	grad := make([]float64, n*3)
	for s := 0; s < steps; s++ {
		for i := range grad {
			grad[i] = 0
		}
		for _, b := range mol.Bonds {
			addPairForce(coords, grad, b.A, b.B, bondLength(mol.Atoms[b.A], mol.Atoms[b.B]), 1.0)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if mol.BondBetween(i, j) != nil {
					continue
				}
				d := dist(coords, i, j)
				if d < repulsion {
					addPairForce(coords, grad, i, j, repulsion, 0.5)
				}
			}
		}
		for i := range coords {
			coords[i] -= stepSize * grad[i]
		}
	}
}

//addPairForce accumulates the gradient of k*(d-target)^2 for the pair
//(i, j) into grad.
func addPairForce(coords, grad []float64, i, j int, target, k float64) {
	d := dist(coords, i, j)
	if d < 1e-6 {
		//coincident atoms have no defined direction; nudge along x.
		grad[i*3] += k
		grad[j*3] -= k
		return
	}
	f := 2 * k * (d - target) / d
	for c := 0; c < 3; c++ {
		delta := coords[i*3+c] - coords[j*3+c]
		grad[i*3+c] += f * delta
		grad[j*3+c] -= f * delta
	}
}

func dist(coords []float64, i, j int) float64 {
	var s float64
	for c := 0; c < 3; c++ {
		d := coords[i*3+c] - coords[j*3+c]
		s += d * d
	}
	return math.Sqrt(s)
}
