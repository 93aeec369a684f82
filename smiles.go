/*
 * smiles.go, part of fragprep.
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

//SMILES reading and writing. Only the subset of the grammar needed
//for drug-like followups is supported: organic-subset and bracket
//atoms, formal charges, explicit hydrogen counts, bond symbols
//(- = # :), branches, dot-separated components and ring closures,
//including the %nn form. Stereo marks (@, @@, / and \) are accepted
//and ignored. Isotopes and atom classes are accepted and ignored.

import (
	"fmt"
	"sort"
	"strings"
)

//the elements that can be written without brackets.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
	"*": true,
}

//MolFromSmiles parses a SMILES string and returns the molecule, with
//implicit hydrogens assigned by standard valence and hybridization
//assigned from bond orders. The molecule has no conformer; use
//EmbedMol to build one.
func MolFromSmiles(smiles string) (*Mol, error) {
	p := &smilesParser{s: smiles, mol: NewMol(), prev: -1}
	if err := p.run(); err != nil {
		return nil, errDecorate(err, "MolFromSmiles: "+smiles)
	}
	p.mol.assignHybridization()
	return p.mol, nil
}

type ringBond struct {
	atom  int
	order int
}

type smilesParser struct {
	s     string
	i     int
	mol   *Mol
	prev  int //index of the atom a new atom will bond to, -1 if none
	stack []int
	bond  int //pending bond order for the next atom, 0 if unset
	arom  bool
	rings map[int]ringBond
}

func (p *smilesParser) errf(format string, args ...interface{}) error {
	return CError{fmt.Sprintf("smiles: "+format+" (position %d)", append(args, p.i)...), []string{"smilesParser"}}
}

func (p *smilesParser) run() error {
	p.rings = make(map[int]ringBond)
	for p.i < len(p.s) {
		c := p.s[p.i]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errf("branch with no previous atom")
			}
			p.stack = append(p.stack, p.prev)
			p.i++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errf("unmatched closing parenthesis")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.i++
		case c == '-' || c == '/' || c == '\\':
			p.bond = 1
			p.i++
		case c == '=':
			p.bond = 2
			p.i++
		case c == '#':
			p.bond = 3
			p.i++
		case c == ':':
			p.bond = 1
			p.arom = true
			p.i++
		case c == '.':
			p.prev = -1
			p.bond = 0
			p.i++
		case c >= '0' && c <= '9':
			if err := p.ringClosure(int(c - '0')); err != nil {
				return err
			}
			p.i++
		case c == '%':
			if p.i+2 >= len(p.s) {
				return p.errf("truncated %%nn ring closure")
			}
			n := int(p.s[p.i+1]-'0')*10 + int(p.s[p.i+2]-'0')
			if err := p.ringClosure(n); err != nil {
				return err
			}
			p.i += 3
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		default:
			if err := p.organicAtom(); err != nil {
				return err
			}
		}
	}
	if len(p.stack) != 0 {
		return p.errf("unclosed branch")
	}
	if len(p.rings) != 0 {
		return p.errf("unclosed ring bond")
	}
	p.assignImplicitH()
	return nil
}

//adds the atom to the molecule, bonding it to the previous one if any.
func (p *smilesParser) pushAtom(at *Atom) {
	idx := p.mol.AddAtom(at)
	if p.prev >= 0 {
		order := p.bond
		aromatic := p.arom
		if order == 0 {
			order = 1
			if at.Aromatic && p.mol.Atoms[p.prev].Aromatic {
				aromatic = true
			}
		}
		p.mol.Bonds = append(p.mol.Bonds, &Bond{A: p.prev, B: idx, Order: order, Aromatic: aromatic})
	}
	p.prev = idx
	p.bond = 0
	p.arom = false
}

func (p *smilesParser) ringClosure(n int) error {
	if p.prev < 0 {
		return p.errf("ring closure with no previous atom")
	}
	if open, ok := p.rings[n]; ok {
		order := p.bond
		if order == 0 {
			order = open.order
		}
		aromatic := false
		if order == 0 {
			order = 1
			if p.mol.Atoms[open.atom].Aromatic && p.mol.Atoms[p.prev].Aromatic {
				aromatic = true
			}
		}
		p.mol.Bonds = append(p.mol.Bonds, &Bond{A: open.atom, B: p.prev, Order: order, Aromatic: aromatic})
		delete(p.rings, n)
	} else {
		p.rings[n] = ringBond{atom: p.prev, order: p.bond}
	}
	p.bond = 0
	p.arom = false
	return nil
}

func (p *smilesParser) organicAtom() error {
	c := p.s[p.i]
	var symbol string
	aromatic := false
	switch {
	case c == '*':
		symbol = "*"
		p.i++
	case c == 'C' && p.i+1 < len(p.s) && p.s[p.i+1] == 'l':
		symbol = "Cl"
		p.i += 2
	case c == 'B' && p.i+1 < len(p.s) && p.s[p.i+1] == 'r':
		symbol = "Br"
		p.i += 2
	case strings.ContainsRune("BCNOPSFI", rune(c)):
		symbol = string(c)
		p.i++
	case strings.ContainsRune("bcnops", rune(c)):
		symbol = strings.ToUpper(string(c))
		aromatic = true
		p.i++
	default:
		return p.errf("unexpected character %q", c)
	}
	at := &Atom{Symbol: symbol, Z: ZFromSymbol(symbol), Aromatic: aromatic, ImplicitH: -1}
	p.pushAtom(at)
	return nil
}

func (p *smilesParser) bracketAtom() error {
	p.i++ //consume '['
	for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
		p.i++ //isotope, ignored
	}
	if p.i >= len(p.s) {
		return p.errf("truncated bracket atom")
	}
	var symbol string
	aromatic := false
	c := p.s[p.i]
	switch {
	case c == '*':
		symbol = "*"
		p.i++
	case c >= 'A' && c <= 'Z':
		symbol = string(c)
		p.i++
		if p.i < len(p.s) && p.s[p.i] >= 'a' && p.s[p.i] <= 'z' {
			two := symbol + string(p.s[p.i])
			if _, ok := symbol2Z[two]; ok {
				symbol = two
				p.i++
			}
		}
	case c >= 'a' && c <= 'z':
		symbol = strings.ToUpper(string(c))
		aromatic = true
		p.i++
	default:
		return p.errf("bad element in bracket atom")
	}
	hcount := 0
	charge := 0
	for p.i < len(p.s) && p.s[p.i] != ']' {
		switch p.s[p.i] {
		case '@':
			p.i++ //chirality, ignored
		case 'H':
			p.i++
			hcount = 1
			if p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
				hcount = int(p.s[p.i] - '0')
				p.i++
			}
		case '+', '-':
			sign := 1
			if p.s[p.i] == '-' {
				sign = -1
			}
			n := 1
			p.i++
			if p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
				n = int(p.s[p.i] - '0')
				p.i++
			} else {
				for p.i < len(p.s) && (p.s[p.i] == '+' || p.s[p.i] == '-') {
					n++
					p.i++
				}
			}
			charge = sign * n
		case ':':
			p.i++
			for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
				p.i++ //atom class, ignored
			}
		default:
			return p.errf("unexpected character %q in bracket atom", p.s[p.i])
		}
	}
	if p.i >= len(p.s) {
		return p.errf("unterminated bracket atom")
	}
	p.i++ //consume ']'
	at := &Atom{Symbol: symbol, Z: ZFromSymbol(symbol), Aromatic: aromatic,
		Charge: charge, ImplicitH: hcount}
	p.pushAtom(at)
	return nil
}

//assignImplicitH fills the implicit hydrogen count of every
//organic-subset atom (marked with ImplicitH == -1 during parsing)
//from its standard valence. Bracket atoms keep the count they
//declared.
func (p *smilesParser) assignImplicitH() {
	for i, at := range p.mol.Atoms {
		if at.ImplicitH >= 0 {
			continue
		}
		at.ImplicitH = 0
		val, ok := symbolValence[at.Symbol]
		if !ok {
			continue
		}
		var h int
		if at.Aromatic {
			//aromatic bond orders are not kekulized here; one valence
			//slot is reserved for the delocalized system.
			h = val - len(p.mol.Neighbors(i)) - 1
		} else {
			h = val - p.mol.bondOrderSum(i)
		}
		if h > 0 {
			at.ImplicitH = h
		}
	}
}

//MolToSmiles writes a canonical SMILES for the molecule. Canonical
//here means deterministic for a given graph: atoms are ranked by
//Morgan-style iterative refinement over (element, degree, charge,
//hydrogen count) and the output walk always starts from the
//lowest-ranked atom of each component.
func MolToSmiles(mol *Mol) string {
	n := mol.Len()
	if n == 0 {
		return ""
	}
	ranks := canonicalRanks(mol)
	w := &smilesWriter{mol: mol, ranks: ranks, visited: make([]bool, n),
		ringNum: make(map[[2]int]int), ringSeen: make(map[int]int)}
	w.findRingBonds()
	var parts []string
	for {
		start := -1
		for i := 0; i < n; i++ {
			if !w.visited[i] && (start == -1 || ranks[i] < ranks[start]) {
				start = i
			}
		}
		if start == -1 {
			break
		}
		var sb strings.Builder
		w.walk(start, -1, &sb)
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, ".")
}

//canonicalRanks assigns an integer rank to every atom by iterative
//refinement of neighborhood invariants.
func canonicalRanks(mol *Mol) []int {
	n := mol.Len()
	keys := make([]string, n)
	for i, at := range mol.Atoms {
		keys[i] = fmt.Sprintf("%03d|%d|%+d|%d|%t", at.Z, len(mol.Neighbors(i)), at.Charge, at.ImplicitH, at.Aromatic)
	}
	ranks := ranksFromKeys(keys)
	for it := 0; it < n; it++ {
		newkeys := make([]string, n)
		for i := range mol.Atoms {
			nb := mol.Neighbors(i)
			nbranks := make([]int, 0, len(nb))
			for _, j := range nb {
				nbranks = append(nbranks, ranks[j])
			}
			sort.Ints(nbranks)
			newkeys[i] = fmt.Sprintf("%06d|%v", ranks[i], nbranks)
		}
		newranks := ranksFromKeys(newkeys)
		if equalInts(newranks, ranks) {
			break
		}
		ranks = newranks
	}
	return ranks
}

func ranksFromKeys(keys []string) []int {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	pos := make(map[string]int, len(sorted))
	for i, k := range sorted {
		if _, ok := pos[k]; !ok {
			pos[k] = i
		}
	}
	ranks := make([]int, len(keys))
	for i, k := range keys {
		ranks[i] = pos[k]
	}
	return ranks
}

func equalInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type smilesWriter struct {
	mol     *Mol
	ranks   []int
	visited []bool
	ringNum  map[[2]int]int //ring-closure bond (lower,higher atom) -> digit
	ringSeen map[int]int    //how many of the two ends of each closure were written
	nextNum  int
}

//findRingBonds marks every bond that closes a cycle (i.e. is not in
//the DFS spanning forest) with a ring-closure number.
func (w *smilesWriter) findRingBonds() {
	n := w.mol.Len()
	seen := make([]bool, n)
	intree := make(map[[2]int]bool)
	var dfs func(i, from int)
	dfs = func(i, from int) {
		seen[i] = true
		for _, j := range w.sortedNeighbors(i) {
			if j == from {
				continue
			}
			if !seen[j] {
				intree[bondKey(i, j)] = true
				dfs(j, i)
			}
		}
	}
	for i := 0; i < n; i++ {
		if !seen[i] {
			dfs(i, -1)
		}
	}
	for _, b := range w.mol.Bonds {
		k := bondKey(b.A, b.B)
		if !intree[k] {
			w.nextNum++
			w.ringNum[k] = w.nextNum
		}
	}
}

func bondKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func (w *smilesWriter) sortedNeighbors(i int) []int {
	nb := w.mol.Neighbors(i)
	sort.Slice(nb, func(a, b int) bool { return w.ranks[nb[a]] < w.ranks[nb[b]] })
	return nb
}

func (w *smilesWriter) walk(i, from int, sb *strings.Builder) {
	w.visited[i] = true
	sb.WriteString(w.atomString(i))
	//ring closure digits come right after the atom; each one is
	//written exactly twice, once per endpoint of the closing bond.
	for _, j := range w.sortedNeighbors(i) {
		if num, ok := w.ringNum[bondKey(i, j)]; ok && w.ringSeen[num] < 2 {
			sb.WriteString(bondString(w.mol.BondBetween(i, j)))
			if num > 9 {
				fmt.Fprintf(sb, "%%%d", num)
			} else {
				fmt.Fprintf(sb, "%d", num)
			}
			w.ringSeen[num]++
		}
	}
	var children []int
	for _, j := range w.sortedNeighbors(i) {
		if j == from || w.visited[j] {
			continue
		}
		if _, ring := w.ringNum[bondKey(i, j)]; ring {
			continue
		}
		children = append(children, j)
	}
	for k, j := range children {
		b := w.mol.BondBetween(i, j)
		if k < len(children)-1 {
			sb.WriteString("(")
			sb.WriteString(bondString(b))
			w.walk(j, i, sb)
			sb.WriteString(")")
		} else {
			sb.WriteString(bondString(b))
			w.walk(j, i, sb)
		}
	}
}

func bondString(b *Bond) string {
	if b == nil {
		return ""
	}
	switch {
	case b.Aromatic:
		return ""
	case b.Order == 2:
		return "="
	case b.Order == 3:
		return "#"
	}
	return ""
}

func (w *smilesWriter) atomString(i int) string {
	at := w.mol.Atoms[i]
	symbol := at.Symbol
	if at.Aromatic {
		symbol = strings.ToLower(symbol)
	}
	needBracket := at.Charge != 0 || !organicSubset[at.Symbol]
	if !needBracket {
		//brackets are also needed when the hydrogen count is not the
		//one the standard valence would imply.
		def := 0
		if val, ok := symbolValence[at.Symbol]; ok {
			var h int
			if at.Aromatic {
				h = val - len(w.mol.Neighbors(i)) - 1
			} else {
				h = val - w.mol.bondOrderSum(i)
			}
			if h > 0 {
				def = h
			}
		}
		needBracket = at.ImplicitH != def
	}
	if !needBracket {
		return symbol
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(symbol)
	if at.ImplicitH == 1 {
		sb.WriteString("H")
	} else if at.ImplicitH > 1 {
		fmt.Fprintf(&sb, "H%d", at.ImplicitH)
	}
	if at.Charge == 1 {
		sb.WriteString("+")
	} else if at.Charge == -1 {
		sb.WriteString("-")
	} else if at.Charge > 1 {
		fmt.Fprintf(&sb, "+%d", at.Charge)
	} else if at.Charge < -1 {
		fmt.Fprintf(&sb, "-%d", -at.Charge)
	}
	sb.WriteString("]")
	return sb.String()
}
