/*
 * v3_test.go, part of fragprep.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("NewMatrix accepted a slice not divisible by 3")
	}
	m, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	if m.NVecs() != 2 {
		Te.Errorf("Wrong number of vectors: %d", m.NVecs())
	}
}

func TestAddVec(Te *testing.T) {
	m, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	v, _ := NewMatrix([]float64{1, 2, 3})
	m.AddVec(m, v)
	if m.At(0, 2) != 3 || m.At(1, 0) != 2 {
		Te.Errorf("AddVec gave the wrong result: %v", m)
	}
	m.SubVec(m, v)
	if m.At(0, 0) != 0 || m.At(1, 1) != 1 {
		Te.Errorf("SubVec gave the wrong result: %v", m)
	}
}

func TestMeanAndViews(Te *testing.T) {
	m, _ := NewMatrix([]float64{0, 0, 0, 2, 4, 6})
	mean := m.Mean()
	if mean.At(0, 0) != 1 || mean.At(0, 1) != 2 || mean.At(0, 2) != 3 {
		Te.Errorf("Wrong mean: %v", mean)
	}
	view := m.VecView(1)
	view.Set(0, 0, 10)
	if m.At(1, 0) != 10 {
		Te.Error("VecView is not a view")
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 {
		Te.Errorf("Wrong cross product: %v", z)
	}
	if math.Abs(x.Dot(y)) > 1e-12 {
		Te.Error("Orthogonal vectors with non-zero dot product")
	}
}
