/*
 * doc.go, part of fragprep.
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

/*
Package fragprep prepares small-molecule followup datasets, derived
from parent crystallographic hits, for upload to the Fragalysis viewer.

	**fragprep capabilities**

    Parses and writes an organic-subset SMILES notation, with a
	deterministic canonical form.

    Reads and writes SDF (V2000) files, plain or gzip/zstd compressed,
	including per-record data fields.

    Builds 3D conformers from connectivity, good enough for a record
	to be geometrically valid.

    Computes Gasteiger (PEOE) partial charges.

    Masks placeholder (attachment-point) atoms behind a real element
	for tools that choke on them, and restores them afterwards, with a
	scoped variant that restores on every exit path.

    Superimposes coordinate sets (least-squares, proper rotations
	only) and re-frames whole series of poses from one reference hit
	onto another, returning transformed copies.

    Generates the Fragalysis ver_1.2 provenance header record.

    Serializes a tabular dataset (see the dframe subpackage) into a
	single Fragalysis-ready SDF: header first, then one annotated
	record per row.

The prepplot subpackage draws quick quality-control plots of dataset
columns; the v3 subpackage holds the Nx3 coordinate matrices every
geometric operation runs on.
*/
package fragprep
