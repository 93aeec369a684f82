/*
 * header.go, part of fragprep.
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
	"sort"
	"time"
)

//headerVersion is the display name of the header record, marking the
//version of the upload convention the file follows.
const headerVersion = "ver_1.2"

//defaultHeaderSmiles is used to build the header molecule when the
//caller supplies none. Caffeine: innocuous, rigid, and instantly
//recognizable when the file is opened by hand.
const defaultHeaderSmiles = "CN1C=NC2=C1C(=O)N(C(=O)N2C)C"

//HeaderOptions contains the optional provenance fields of a header
//record.
type HeaderOptions struct {
	RefURL               string
	SubmitterName        string
	SubmitterEmail       string
	SubmitterInstitution string
	//GenerationDate is the date annotation. Empty means "today",
	//captured when GenerateHeader runs, not before.
	GenerationDate string
	//Smiles builds the header molecule itself. Empty means the
	//default.
	Smiles string
	//Extras are attached to the header as additional annotations,
	//each value coerced to its string form. Every extra column the
	//serializer later writes must have its key present here, or the
	//viewer will not pick the column up.
	Extras map[string]interface{}
}

//DefaultHeaderOptions returns the default provenance fields for a
//header record.
func DefaultHeaderOptions() *HeaderOptions {
	r := new(HeaderOptions)
	r.RefURL = "https://www.example.com"
	r.SubmitterName = "unknown"
	r.SubmitterEmail = "a@b.c"
	r.SubmitterInstitution = "Nowehere"
	return r
}

//GenerateHeader builds the header record for a Fragalysis SDF in the
//ver_1.2 style: a small molecule (embedded in 3D, so the record is
//geometrically valid like any other) named after the convention
//version and annotated with the provenance fields and any extras.
//method is compulsory, and must be unique across every header ever
//uploaded to a given viewer project; uniqueness is the caller's
//responsibility and is not enforced here. Non-alphanumeric characters
//in method are left alone: the viewer strips them on its side. A nil
//o means DefaultHeaderOptions.
//cf. https://discuss.postera.ai/t/providing-computed-poses-for-others-to-look-at/1155/6
func GenerateHeader(method string, o *HeaderOptions) (*Mol, error) {
	if method == "" {
		return nil, CError{"header: method is compulsory", []string{"GenerateHeader"}}
	}
	if o == nil {
		o = DefaultHeaderOptions()
	}
	smiles := o.Smiles
	if smiles == "" {
		smiles = defaultHeaderSmiles
	}
	mol, err := MolFromSmiles(smiles)
	if err != nil {
		return nil, errDecorate(err, "GenerateHeader")
	}
	mol.SetName(headerVersion)
	if err := EmbedMol(mol); err != nil {
		return nil, errDecorate(err, "GenerateHeader")
	}
	date := o.GenerationDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	mol.SetProp("ref_url", o.RefURL)
	mol.SetProp("submitter_name", o.SubmitterName)
	mol.SetProp("submitter_email", o.SubmitterEmail)
	mol.SetProp("submitter_institution", o.SubmitterInstitution)
	mol.SetProp("generation_date", date)
	mol.SetProp("method", method)
	//map order is not stable, the file should be.
	keys := make([]string, 0, len(o.Extras))
	for k := range o.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		mol.SetProp(k, fmt.Sprintf("%v", o.Extras[k]))
	}
	return mol, nil
}
