/*
 * dframe_test.go, part of fragprep.
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

package dframe

import "testing"

func TestAddAndGet(Te *testing.T) {
	df := New(3)
	err := df.AddCol("score", []interface{}{1.0, 2.0, 3.0})
	if err != nil {
		Te.Error(err)
	}
	df.SetConst("ref_pdb", "5ABC")
	if !df.Has("score") || !df.Has("ref_pdb") {
		Te.Error("columns missing after insertion")
	}
	c, err := df.Col("ref_pdb")
	if err != nil {
		Te.Error(err)
	}
	for _, v := range c {
		if v.(string) != "5ABC" {
			Te.Errorf("constant column holds %v", v)
		}
	}
	if err := df.AddCol("short", []interface{}{1.0}); err == nil {
		Te.Error("length mismatch not caught")
	}
}

func TestCompositeNames(Te *testing.T) {
	df := New(2)
	df.AddCol(Key{"a", "b"}, []interface{}{1, 2})
	if !df.Has("a:b") {
		Te.Error("composite name did not normalize to a:b")
	}
	v, err := df.Cell(Key{"a", "b"}, 1)
	if err != nil {
		Te.Error(err)
	}
	if v.(int) != 2 {
		Te.Errorf("got %v from composite column", v)
	}
	names := df.Names()
	if len(names) != 1 || names[0] != "a:b" {
		Te.Errorf("names: %v", names)
	}
}

func TestRenameApplyRow(Te *testing.T) {
	df := New(2)
	df.AddCol("x", []interface{}{1.0, 2.0})
	if err := df.Rename("x", "y"); err != nil {
		Te.Error(err)
	}
	if df.Has("x") || !df.Has("y") {
		Te.Error("rename did not take")
	}
	df.Apply("y", func(v interface{}) interface{} { return v.(float64) * 2 })
	row, err := df.Row(1)
	if err != nil {
		Te.Error(err)
	}
	if row["y"].(float64) != 4.0 {
		Te.Errorf("apply+row gave %v", row["y"])
	}
	df.Drop("y")
	if df.Has("y") {
		Te.Error("drop did not take")
	}
}
