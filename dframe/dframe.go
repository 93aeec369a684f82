/*
 * dframe.go, part of fragprep.
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

//Package dframe implements a small, ordered, column-oriented table.
//It holds whatever values the caller puts in it (cells are
//interface{}) and makes no attempt at being a general dataframe
//library; it covers the needs of dataset preparation: adding and
//renaming columns, applying functions over them, and iterating rows
//in a stable order.
package dframe

import (
	"fmt"
	"strings"
)

//Key is a composite column name, the equivalent of a tuple-valued
//column label. It compares by value through its normalized form.
type Key []string

//Normalized returns the key joined with the given separator.
func (k Key) Normalized(sep string) string {
	return strings.Join(k, sep)
}

//normalizeName flattens a column name to the string actually used for
//lookup and printing. Composite names (Key) are joined with ":", any
//other value goes through its default string form.
func normalizeName(name interface{}) string {
	switch v := name.(type) {
	case string:
		return v
	case Key:
		return v.Normalized(":")
	default:
		return fmt.Sprintf("%v", v)
	}
}

type column struct {
	name  string
	cells []interface{}
}

//DataFrame is an ordered collection of equally long columns.
type DataFrame struct {
	cols  []*column
	nrows int
}

//New returns a DataFrame with nrows empty rows and no columns.
func New(nrows int) *DataFrame {
	return &DataFrame{nrows: nrows}
}

//NRows returns the number of rows.
func (df *DataFrame) NRows() int { return df.nrows }

//Names returns the normalized column names, in insertion order.
func (df *DataFrame) Names() []string {
	r := make([]string, len(df.cols))
	for i, c := range df.cols {
		r[i] = c.name
	}
	return r
}

func (df *DataFrame) col(name interface{}) *column {
	n := normalizeName(name)
	for _, c := range df.cols {
		if c.name == n {
			return c
		}
	}
	return nil
}

//Has tells whether a column with the given name exists.
func (df *DataFrame) Has(name interface{}) bool {
	return df.col(name) != nil
}

//AddCol adds a column with the given name and cells. If a column of
//that name exists already, its cells are replaced instead. It returns
//an error if the number of cells does not match the number of rows.
func (df *DataFrame) AddCol(name interface{}, cells []interface{}) error {
	if len(cells) != df.nrows {
		return fmt.Errorf("dframe: column %s has %d cells, the frame has %d rows", normalizeName(name), len(cells), df.nrows)
	}
	own := make([]interface{}, len(cells))
	copy(own, cells)
	if c := df.col(name); c != nil {
		c.cells = own
		return nil
	}
	df.cols = append(df.cols, &column{name: normalizeName(name), cells: own})
	return nil
}

//SetConst adds (or replaces) a column where every cell holds the same
//value.
func (df *DataFrame) SetConst(name interface{}, value interface{}) {
	cells := make([]interface{}, df.nrows)
	for i := range cells {
		cells[i] = value
	}
	df.AddCol(name, cells) //cannot fail, the length always matches.
}

//Col returns the cells of the named column. The slice is the frame's
//own storage, so writing to it writes to the frame.
func (df *DataFrame) Col(name interface{}) ([]interface{}, error) {
	c := df.col(name)
	if c == nil {
		return nil, fmt.Errorf("dframe: no column named %s", normalizeName(name))
	}
	return c.cells, nil
}

//Cell returns the value at the given column and row.
func (df *DataFrame) Cell(name interface{}, row int) (interface{}, error) {
	c := df.col(name)
	if c == nil {
		return nil, fmt.Errorf("dframe: no column named %s", normalizeName(name))
	}
	if row < 0 || row >= df.nrows {
		return nil, fmt.Errorf("dframe: row %d out of range (%d rows)", row, df.nrows)
	}
	return c.cells[row], nil
}

//Rename changes the name of a column.
func (df *DataFrame) Rename(old, new interface{}) error {
	c := df.col(old)
	if c == nil {
		return fmt.Errorf("dframe: no column named %s", normalizeName(old))
	}
	c.name = normalizeName(new)
	return nil
}

//Drop removes a column, if present.
func (df *DataFrame) Drop(name interface{}) {
	n := normalizeName(name)
	for i, c := range df.cols {
		if c.name == n {
			df.cols = append(df.cols[:i], df.cols[i+1:]...)
			return
		}
	}
}

//Apply replaces each cell of the named column with f(cell).
func (df *DataFrame) Apply(name interface{}, f func(interface{}) interface{}) error {
	c := df.col(name)
	if c == nil {
		return fmt.Errorf("dframe: no column named %s", normalizeName(name))
	}
	for i, v := range c.cells {
		c.cells[i] = f(v)
	}
	return nil
}

//Row returns the cells of one row keyed by normalized column name.
func (df *DataFrame) Row(row int) (map[string]interface{}, error) {
	if row < 0 || row >= df.nrows {
		return nil, fmt.Errorf("dframe: row %d out of range (%d rows)", row, df.nrows)
	}
	r := make(map[string]interface{}, len(df.cols))
	for _, c := range df.cols {
		r[c.name] = c.cells[row]
	}
	return r, nil
}
