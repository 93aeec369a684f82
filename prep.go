/*
 * prep.go, part of fragprep.
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
	"os"
	"regexp"
	"strconv"

	"github.com/rmera/fragprep/dframe"
)

//extrasMode selects how Prep decides which dataset columns become
//extra annotation columns in the output.
type extrasMode int

const (
	extrasNone extrasMode = iota
	extrasAuto
	extrasList
	extrasMap
)

//Extras specifies the extra annotation columns of a prepared dataset.
//The zero value means "no extras". Use one of the constructors; there
//is no other valid way to build one.
type Extras struct {
	mode  extrasMode
	names []string
}

//NoExtras returns the "no extra columns" specification.
func NoExtras() Extras { return Extras{mode: extrasNone} }

//AutoExtras returns the specification that scans every column of the
//dataset and picks the numeric ones that are not identically zero.
func AutoExtras() Extras { return Extras{mode: extrasAuto} }

//ListExtras returns the specification naming the extra columns
//explicitly. The names are taken at face value: a name missing from
//the dataset surfaces later, as a serialization error.
func ListExtras(names ...string) Extras {
	return Extras{mode: extrasList, names: names}
}

//MapExtras returns the specification using the keys of m as the extra
//column names. The values are ignored here; the same map can be
//handed to HeaderOptions.Extras, which is what keeps the header and
//the records consistent.
func MapExtras(m map[string]interface{}) Extras {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return Extras{mode: extrasMap, names: names}
}

//PrepOptions contains the optional settings of Prep.
type PrepOptions struct {
	//Outfile is where the prepared SDF goes. A .gz or .zst suffix
	//compresses the output.
	Outfile string
	//RefMolNames fills the ref_mols column when the dataset lacks
	//one: the comma-separated names of the crystallographic hits
	//each followup derives from.
	RefMolNames string
	//RefPDBName fills the ref_pdb column when the dataset lacks one.
	RefPDBName string
	//Extras selects the extra annotation columns.
	Extras Extras
	//LetterTrim is the maximum length of a record name after
	//sanitization.
	LetterTrim int
}

//DefaultPrepOptions returns the default settings for Prep.
func DefaultPrepOptions() *PrepOptions {
	r := new(PrepOptions)
	r.Outfile = "for_fragalysis.sdf"
	r.Extras = NoExtras()
	r.LetterTrim = 20
	return r
}

var nonWord = regexp.MustCompile(`\W`)

//sanitizeName turns an arbitrary cell value into a name Fragalysis
//accepts: string form, every non-word character replaced by "_",
//truncated to trim characters.
func sanitizeName(v interface{}, trim int) string {
	s := nonWord.ReplaceAllString(fmt.Sprintf("%v", v), "_")
	if len(s) > trim {
		s = s[:trim]
	}
	return s
}

//coerceFloat turns a cell value into a float64, with math.NaN for
//anything that does not look like a number. It never fails.
func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

//autoExtras scans every column of df and returns the names of those
//whose values, coerced to floats with NaN counting as zero, are not
//all zero. Molecule and name columns coerce to NaN throughout, so
//they exclude themselves.
func autoExtras(df *dframe.DataFrame) []string {
	var r []string
	for _, name := range df.Names() {
		cells, err := df.Col(name)
		if err != nil {
			continue
		}
		selected := false
		for _, v := range cells {
			f := coerceFloat(v)
			if !math.IsNaN(f) && f != 0 {
				selected = true
				break
			}
		}
		if selected {
			r = append(r, name)
		}
	}
	return r
}

//resolveRefCol makes sure df has the given reference column, filling
//it with fallback when absent. An absent column with an empty
//fallback is an error: Fragalysis rejects datasets without their
//reference metadata, so failing here beats failing at upload time.
func resolveRefCol(df *dframe.DataFrame, name, fallback string) error {
	if df.Has(name) {
		return nil
	}
	if fallback == "" {
		return CError{fmt.Sprintf("prep: dataset has no %s column and no fallback value was given", name), []string{"Prep"}}
	}
	df.SetConst(name, fallback)
	return nil
}

//Prep writes a Fragalysis-ready SDF from the dataset df: the header
//record first, then one record per row, each annotated with ref_pdb,
//ref_mols, "original SMILES" and the resolved extra columns. molCol
//names the column holding the (posed) molecules, nameCol the one
//holding the record names, which are sanitized in place. Composite
//column keys (dframe.Key) are already normalized to single
//colon-joined strings by the frame itself, so molCol and nameCol are
//plain strings here. A nil o means DefaultPrepOptions. The ref_mols
//and "original SMILES" columns are added to df when missing, so the
//frame comes back enriched.
func Prep(df *dframe.DataFrame, header *Mol, molCol, nameCol string, o *PrepOptions) error {
	if df == nil {
		return CError{"prep: nil dataset", []string{"Prep"}}
	}
	if header == nil {
		return CError{"prep: nil header record", []string{"Prep"}}
	}
	if o == nil {
		o = DefaultPrepOptions()
	}
	if !df.Has(molCol) {
		return CError{fmt.Sprintf("prep: dataset has no molecule column %s", molCol), []string{"Prep"}}
	}
	if !df.Has(nameCol) {
		return CError{fmt.Sprintf("prep: dataset has no name column %s", nameCol), []string{"Prep"}}
	}
	if err := resolveRefCol(df, "ref_mols", o.RefMolNames); err != nil {
		return err
	}
	if !df.Has("original SMILES") {
		if err := deriveSmilesCol(df, molCol); err != nil {
			return errDecorate(err, "Prep")
		}
	}
	if err := resolveRefCol(df, "ref_pdb", o.RefPDBName); err != nil {
		return err
	}
	var extras []string
	switch o.Extras.mode {
	case extrasNone:
	case extrasAuto:
		extras = autoExtras(df)
	case extrasList, extrasMap:
		extras = o.Extras.names
	default:
		return CError{fmt.Sprintf("prep: unsupported extras mode %d", o.Extras.mode), []string{"Prep"}}
	}
	trim := o.LetterTrim
	if trim <= 0 {
		trim = 20
	}
	df.Apply(nameCol, func(v interface{}) interface{} { return sanitizeName(v, trim) })
	fout, err := os.Create(o.Outfile)
	if err != nil {
		return CError{"prep: " + err.Error(), []string{"Prep"}}
	}
	defer fout.Close()
	w, closec, err := compressedWriter(fout, o.Outfile)
	if err != nil {
		return errDecorate(err, "Prep")
	}
	if err := SDFWriteMol(w, header, nil); err != nil {
		closec()
		return errDecorate(err, "Prep")
	}
	fields := append([]string{"ref_pdb", "ref_mols", "original SMILES"}, extras...)
	if err := WriteDataFrameSDF(w, df, molCol, nameCol, fields); err != nil {
		closec()
		return errDecorate(err, "Prep")
	}
	if err := closec(); err != nil {
		return errDecorate(err, "Prep")
	}
	return nil
}

//deriveSmilesCol adds an "original SMILES" column to df, built per
//row from the hydrogen-stripped canonical SMILES of the molecule
//column.
func deriveSmilesCol(df *dframe.DataFrame, molCol string) error {
	cells := make([]interface{}, df.NRows())
	for i := 0; i < df.NRows(); i++ {
		cell, err := df.Cell(molCol, i)
		if err != nil {
			return errDecorate(err, "deriveSmilesCol")
		}
		mol, ok := cell.(*Mol)
		if !ok || mol == nil {
			return CError{fmt.Sprintf("prep: row %d of column %s does not hold a molecule", i, molCol), []string{"deriveSmilesCol"}}
		}
		cells[i] = MolToSmiles(mol.StripHydrogens())
	}
	return df.AddCol("original SMILES", cells)
}
