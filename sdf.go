/*
 * sdf.go, part of fragprep.
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

//SDF (V2000) reading and writing. Only the parts of the format that
//Fragalysis consumes are covered: the molblock (counts line, atom
//block, bond block, M CHG, M END) and the data fields. Properties
//beyond formal charges (stereo parities, isotopes) are not written.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/fragprep/dframe"
	v3 "github.com/rmera/fragprep/v3"
)

//SDFWriteMol writes one SDF record for mol to w: the molblock
//followed by the data fields named in fields (values taken from the
//molecule annotations; a name missing from the molecule becomes an
//empty field). If fields is nil, every annotation of the molecule is
//written, in insertion order.
func SDFWriteMol(w io.Writer, mol *Mol, fields []string) error {
	if mol == nil {
		return CError{"sdf: nil molecule", []string{"SDFWriteMol"}}
	}
	if err := writeMolBlock(w, mol); err != nil {
		return errDecorate(err, "SDFWriteMol")
	}
	if fields == nil {
		for _, p := range mol.Props() {
			fmt.Fprintf(w, ">  <%s>\n%s\n\n", p.Key, p.Value)
		}
	} else {
		for _, name := range fields {
			val, _ := mol.Prop(name)
			fmt.Fprintf(w, ">  <%s>\n%s\n\n", name, val)
		}
	}
	_, err := fmt.Fprintln(w, "$$$$")
	return err
}

func writeMolBlock(w io.Writer, mol *Mol) error {
	fmt.Fprintf(w, "%s\n", mol.Name())
	fmt.Fprintf(w, "  fragprep          3D\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.Len(), len(mol.Bonds))
	var charged []int
	for i, at := range mol.Atoms {
		var x, y, z float64
		if mol.Coords != nil {
			x = mol.Coords.At(i, 0)
			y = mol.Coords.At(i, 1)
			z = mol.Coords.At(i, 2)
		}
		symbol := at.Symbol
		if symbol == "" {
			symbol = SymbolFromZ(at.Z)
		}
		if _, err := fmt.Fprintf(w, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n", x, y, z, symbol); err != nil {
			return CError{"sdf: " + err.Error(), []string{"writeMolBlock"}}
		}
		if at.Charge != 0 {
			charged = append(charged, i)
		}
	}
	for _, b := range mol.Bonds {
		fmt.Fprintf(w, "%3d%3d%3d  0\n", b.A+1, b.B+1, b.Order)
	}
	//M CHG lines carry at most 8 pairs each.
	for len(charged) > 0 {
		n := len(charged)
		if n > 8 {
			n = 8
		}
		fmt.Fprintf(w, "M  CHG%3d", n)
		for _, i := range charged[:n] {
			fmt.Fprintf(w, " %3d %3d", i+1, mol.Atoms[i].Charge)
		}
		fmt.Fprintln(w)
		charged = charged[n:]
	}
	_, err := fmt.Fprintln(w, "M  END")
	return err
}

//SDFRead reads every record from r and returns the molecules, with
//their conformers, formal charges, names and data fields.
func SDFRead(r io.Reader) ([]*Mol, error) {
	var mols []*Mol
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for {
		mol, err := readRecord(sc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return mols, errDecorate(err, fmt.Sprintf("SDFRead: record %d", len(mols)+1))
		}
		mols = append(mols, mol)
	}
	return mols, nil
}

//readRecord reads one molecule plus its data fields, up to and
//including the $$$$ terminator. Returns io.EOF if the input is
//exhausted before a record starts.
func readRecord(sc *bufio.Scanner) (*Mol, error) {
	header := make([]string, 0, 4)
	for len(header) < 4 {
		if !sc.Scan() {
			if len(header) == 0 || (len(header) == 1 && strings.TrimSpace(header[0]) == "") {
				return nil, io.EOF
			}
			return nil, CError{"sdf: unexpected EOF in header block", []string{"readRecord"}}
		}
		header = append(header, sc.Text())
	}
	counts := header[3]
	if len(counts) < 6 {
		return nil, CError{"sdf: malformed counts line: " + counts, []string{"readRecord"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil {
		return nil, CError{"sdf: bad atom count: " + err.Error(), []string{"readRecord"}}
	}
	nbonds, err := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err != nil {
		return nil, CError{"sdf: bad bond count: " + err.Error(), []string{"readRecord"}}
	}
	mol := NewMol()
	mol.SetName(strings.TrimSpace(header[0]))
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, CError{"sdf: unexpected EOF in atom block", []string{"readRecord"}}
		}
		line := sc.Text()
		if len(line) < 34 {
			return nil, CError{"sdf: short atom line: " + line, []string{"readRecord"}}
		}
		x, e1 := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		y, e2 := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		z, e3 := strconv.ParseFloat(strings.TrimSpace(line[20:30]), 64)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, CError{"sdf: bad coordinates in line: " + line, []string{"readRecord"}}
		}
		symbol := strings.TrimSpace(line[31:34])
		at := &Atom{Symbol: symbol, Z: ZFromSymbol(symbol)}
		if symbol == "*" || symbol == "R" {
			at.Z = WildcardZ
		}
		mol.AddAtom(at)
		coords = append(coords, x, y, z)
	}
	for i := 0; i < nbonds; i++ {
		if !sc.Scan() {
			return nil, CError{"sdf: unexpected EOF in bond block", []string{"readRecord"}}
		}
		line := sc.Text()
		if len(line) < 9 {
			return nil, CError{"sdf: short bond line: " + line, []string{"readRecord"}}
		}
		a, e1 := strconv.Atoi(strings.TrimSpace(line[0:3]))
		b, e2 := strconv.Atoi(strings.TrimSpace(line[3:6]))
		o, e3 := strconv.Atoi(strings.TrimSpace(line[6:9]))
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, CError{"sdf: bad bond line: " + line, []string{"readRecord"}}
		}
		mol.AddBond(a-1, b-1, o)
	}
	//properties block
	for {
		if !sc.Scan() {
			return nil, CError{"sdf: unexpected EOF before M END", []string{"readRecord"}}
		}
		line := sc.Text()
		if strings.HasPrefix(line, "M  END") {
			break
		}
		if strings.HasPrefix(line, "M  CHG") {
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			n, _ := strconv.Atoi(fields[2])
			for k := 0; k < n && 4+2*k < len(fields); k++ {
				idx, _ := strconv.Atoi(fields[3+2*k])
				chg, _ := strconv.Atoi(fields[4+2*k])
				if idx >= 1 && idx <= mol.Len() {
					mol.Atoms[idx-1].Charge = chg
				}
			}
		}
	}
	if natoms > 0 {
		mol.Coords, err = v3.NewMatrix(coords)
		if err != nil {
			return nil, errDecorate(err, "readRecord")
		}
	}
	mol.assignHybridization()
	//data fields
	var tag string
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.TrimSpace(line) == "$$$$":
			return mol, nil
		case strings.HasPrefix(line, ">"):
			start := strings.Index(line, "<")
			end := strings.LastIndex(line, ">")
			if start >= 0 && end > start {
				tag = line[start+1 : end]
			} else {
				tag = ""
			}
		case tag != "" && strings.TrimSpace(line) != "":
			if prev, ok := mol.Prop(tag); ok && prev != "" {
				mol.SetProp(tag, prev+"\n"+line)
			} else {
				mol.SetProp(tag, line)
			}
		case strings.TrimSpace(line) == "":
			tag = ""
		}
	}
	//a final record without the terminator is still accepted.
	return mol, nil
}

//SDFFileWrite writes mols to the file with the given name, one SDF
//record each (all annotations included). Names ending in .gz or .zst
//are compressed accordingly.
func SDFFileWrite(name string, mols ...*Mol) error {
	f, err := os.Create(name)
	if err != nil {
		return CError{"sdf: " + err.Error(), []string{"SDFFileWrite"}}
	}
	defer f.Close()
	w, closer, err := compressedWriter(f, name)
	if err != nil {
		return errDecorate(err, "SDFFileWrite")
	}
	for _, mol := range mols {
		if err := SDFWriteMol(w, mol, nil); err != nil {
			closer()
			return errDecorate(err, "SDFFileWrite")
		}
	}
	return closer()
}

//SDFFileRead reads every record from the file with the given name.
//Names ending in .gz or .zst are decompressed accordingly.
func SDFFileRead(name string) ([]*Mol, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{"sdf: " + err.Error(), []string{"SDFFileRead"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, CError{"sdf: " + err.Error(), []string{"SDFFileRead"}}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, CError{"sdf: " + err.Error(), []string{"SDFFileRead"}}
		}
		defer zr.Close()
		r = zr
	}
	mols, err := SDFRead(r)
	if err != nil {
		return mols, errDecorate(err, "SDFFileRead: "+name)
	}
	return mols, nil
}

//compressedWriter wraps w in a compressing writer chosen from the
//file name extension, and returns it together with a function closing
//the compressor (but not the underlying file).
func compressedWriter(w io.Writer, name string) (io.Writer, func() error, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz := gzip.NewWriter(w)
		return gz, gz.Close, nil
	case strings.HasSuffix(name, ".zst"):
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, CError{"sdf: " + err.Error(), []string{"compressedWriter"}}
		}
		return zw, zw.Close, nil
	}
	return w, func() error { return nil }, nil
}

//WriteDataFrameSDF writes one SDF record per row of df to w. The
//geometry and annotations of each record come from the molecule in
//molCol (copied, the frame is not modified), the record name from the
//string form of nameCol, and the data fields from the columns named
//in fields, in that order. A field column missing from the frame is
//an error, as is a molCol cell that does not hold a molecule.
func WriteDataFrameSDF(w io.Writer, df *dframe.DataFrame, molCol, nameCol string, fields []string) error {
	if df == nil {
		return CError{"sdf: nil dataframe", []string{"WriteDataFrameSDF"}}
	}
	for _, f := range append([]string{molCol, nameCol}, fields...) {
		if !df.Has(f) {
			return CError{fmt.Sprintf("sdf: no column named %s in the dataframe", f), []string{"WriteDataFrameSDF"}}
		}
	}
	for i := 0; i < df.NRows(); i++ {
		cell, err := df.Cell(molCol, i)
		if err != nil {
			return errDecorate(err, "WriteDataFrameSDF")
		}
		mol, ok := cell.(*Mol)
		if !ok || mol == nil {
			return CError{fmt.Sprintf("sdf: row %d of column %s does not hold a molecule", i, molCol), []string{"WriteDataFrameSDF"}}
		}
		rec := mol.Copy()
		name, err := df.Cell(nameCol, i)
		if err != nil {
			return errDecorate(err, "WriteDataFrameSDF")
		}
		rec.SetName(fmt.Sprintf("%v", name))
		for _, f := range fields {
			v, err := df.Cell(f, i)
			if err != nil {
				return errDecorate(err, "WriteDataFrameSDF")
			}
			rec.SetProp(f, fmt.Sprintf("%v", v))
		}
		if err := SDFWriteMol(w, rec, fields); err != nil {
			return errDecorate(err, "WriteDataFrameSDF")
		}
	}
	return nil
}
