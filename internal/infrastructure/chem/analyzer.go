// Package chem provides the in-process structure-analysis implementation of
// descriptor.StructureAnalyzer.  It parses SMILES notation into a small
// molecular graph and derives the descriptor enumeration from it: exact
// structural counts (atoms, rings, hydrogen-bond donors, formula, exact
// weight) plus additive-contribution estimates for the surface and
// lipophilicity descriptors (TPSA, WlogP, MR).  The estimates use coarse
// per-atom contribution tables rather than a full fragment scheme, which is
// adequate for threshold screening.
package chem

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/molscreen/molscreen/internal/domain/descriptor"
	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
)

// Analyzer is the in-process structure analyzer.  It is stateless and safe
// for reuse across a whole batch.
type Analyzer struct {
	log logging.Logger
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(log logging.Logger) *Analyzer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Analyzer{log: log.Named("chem")}
}

var _ descriptor.StructureAnalyzer = (*Analyzer)(nil)

// Analyze parses a SMILES token and returns a descriptor record with every
// field of descriptor.FieldOrder populated, in enumeration order.  The
// record's Name is left empty for the caller.  Unparsable tokens yield a
// CodeInvalidSMILES error.
func (a *Analyzer) Analyze(ctx context.Context, token string) (*descriptor.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := parseSMILES(token)
	if err != nil {
		a.log.Debug("SMILES parse failed",
			logging.String("smiles", token),
			logging.Err(err),
		)
		return nil, err
	}

	inRing := m.ringBonds()

	rec := descriptor.NewRecord("")
	rec.Set(descriptor.FieldTPSA, descriptor.NewReal(m.tpsa()))
	rec.Set(descriptor.FieldWlogP, descriptor.NewReal(m.wlogP()))
	rec.Set(descriptor.FieldAtoms, descriptor.NewInt(m.totalAtoms()))
	rec.Set(descriptor.FieldFormalCharge, descriptor.NewInt(m.formalCharge()))
	rec.Set(descriptor.FieldHeteroatoms, descriptor.NewInt(m.heteroatoms()))
	rec.Set(descriptor.FieldCarbon, descriptor.NewInt(m.carbonCount()))
	rec.Set(descriptor.FieldFormula, descriptor.NewString(m.formula()))
	rec.Set(descriptor.FieldMW, descriptor.NewReal(m.exactWeight()))
	rec.Set(descriptor.FieldHeavyAtoms, descriptor.NewInt(len(m.atoms)))
	rec.Set(descriptor.FieldCSP3, descriptor.NewReal(m.fractionCSP3()))
	rec.Set(descriptor.FieldRings, descriptor.NewInt(m.ringCount()))
	rec.Set(descriptor.FieldHBD, descriptor.NewInt(m.hBondDonors()))
	rec.Set(descriptor.FieldHBA, descriptor.NewInt(m.hBondAcceptors()))
	rec.Set(descriptor.FieldRotBonds, descriptor.NewInt(m.rotatableBonds(inRing)))
	rec.Set(descriptor.FieldMR, descriptor.NewReal(m.molarRefractivity()))
	rec.Set(descriptor.FieldNHOH, descriptor.NewInt(m.nhohCount()))
	rec.Set(descriptor.FieldNO, descriptor.NewInt(m.noCount()))
	return rec, nil
}

// totalAtoms counts heavy atoms plus all hydrogens, matching the
// hydrogen-explicit variant of the graph.
func (m *molecule) totalAtoms() int {
	n := len(m.atoms)
	for _, h := range m.hligands {
		n += h
	}
	return n
}

func (m *molecule) formalCharge() int {
	c := 0
	for _, a := range m.atoms {
		c += a.charge
	}
	return c
}

func (m *molecule) carbonCount() int {
	n := 0
	for _, a := range m.atoms {
		if a.symbol == "C" {
			n++
		}
	}
	return n
}

// heteroatoms counts heavy atoms that are neither carbon nor hydrogen.
func (m *molecule) heteroatoms() int {
	n := 0
	for _, a := range m.atoms {
		if a.symbol != "C" && a.symbol != "H" {
			n++
		}
	}
	return n
}

// ringCount is the cycle rank of the graph (bonds - atoms + components),
// which equals the smallest-set-of-smallest-rings size.
func (m *molecule) ringCount() int {
	return len(m.bonds) - len(m.atoms) + m.componentCount()
}

// exactWeight sums monoisotopic masses over heavy atoms and hydrogens.
func (m *molecule) exactWeight() float64 {
	w := 0.0
	for i, a := range m.atoms {
		w += monoisotopicMass[a.symbol]
		w += float64(m.hligands[i]) * monoisotopicMass["H"]
	}
	return w
}

// formula renders the molecular formula in Hill order: carbon first, then
// hydrogen, then the remaining elements alphabetically; a net charge is
// appended as a trailing sign.
func (m *molecule) formula() string {
	counts := make(map[string]int)
	hydrogens := 0
	for i, a := range m.atoms {
		counts[a.symbol]++
		hydrogens += m.hligands[i]
	}
	if hydrogens > 0 {
		counts["H"] += hydrogens
	}

	var sb strings.Builder
	appendElem := func(sym string) {
		n := counts[sym]
		if n == 0 {
			return
		}
		sb.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
		delete(counts, sym)
	}

	if counts["C"] > 0 {
		appendElem("C")
		appendElem("H")
	}
	rest := make([]string, 0, len(counts))
	for sym := range counts {
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	for _, sym := range rest {
		appendElem(sym)
	}

	if charge := m.formalCharge(); charge > 0 {
		if charge > 1 {
			fmt.Fprintf(&sb, "%d", charge)
		}
		sb.WriteByte('+')
	} else if charge < 0 {
		if charge < -1 {
			fmt.Fprintf(&sb, "%d", -charge)
		}
		sb.WriteByte('-')
	}
	return sb.String()
}

// fractionCSP3 is the fraction of carbons that are sp3: non-aromatic with
// single bonds only.  Zero when the molecule has no carbon.
func (m *molecule) fractionCSP3() float64 {
	carbons, sp3 := 0, 0
	for i, a := range m.atoms {
		if a.symbol != "C" {
			continue
		}
		carbons++
		if a.aromatic {
			continue
		}
		saturated := true
		for _, bi := range m.adj[i] {
			if m.bonds[bi].order > 1 || m.bonds[bi].aromatic {
				saturated = false
				break
			}
		}
		if saturated {
			sp3++
		}
	}
	if carbons == 0 {
		return 0
	}
	return float64(sp3) / float64(carbons)
}

// nhohCount sums hydrogens attached to nitrogen or oxygen.
func (m *molecule) nhohCount() int {
	n := 0
	for i, a := range m.atoms {
		if a.symbol == "N" || a.symbol == "O" {
			n += m.hligands[i]
		}
	}
	return n
}

// noCount counts nitrogen and oxygen atoms.
func (m *molecule) noCount() int {
	n := 0
	for _, a := range m.atoms {
		if a.symbol == "N" || a.symbol == "O" {
			n++
		}
	}
	return n
}

// hBondDonors counts nitrogens and oxygens carrying at least one hydrogen.
func (m *molecule) hBondDonors() int {
	n := 0
	for i, a := range m.atoms {
		if (a.symbol == "N" || a.symbol == "O") && m.hligands[i] > 0 {
			n++
		}
	}
	return n
}

// hBondAcceptors counts nitrogen and oxygen atoms (the Lipinski
// definition).
func (m *molecule) hBondAcceptors() int {
	return m.noCount()
}

// rotatableBonds counts acyclic single non-aromatic bonds whose endpoints
// both bind at least two heavy atoms.  Terminal methyls and the like are
// excluded by the degree test.
func (m *molecule) rotatableBonds(inRing []bool) int {
	n := 0
	for bi, b := range m.bonds {
		if b.order != 1 || b.aromatic || inRing[bi] {
			continue
		}
		if len(m.adj[b.a]) >= 2 && len(m.adj[b.b]) >= 2 {
			n++
		}
	}
	return n
}

// hasDoubleBond reports whether atom i participates in any order-2 bond.
func (m *molecule) hasDoubleBond(i int) bool {
	for _, bi := range m.adj[i] {
		if m.bonds[bi].order == 2 {
			return true
		}
	}
	return false
}

// tpsa sums Ertl fragment contributions over nitrogen, oxygen, sulfur and
// phosphorus environments.
func (m *molecule) tpsa() float64 {
	total := 0.0
	for i, a := range m.atoms {
		h := m.hligands[i]
		switch a.symbol {
		case "N":
			switch {
			case a.charge > 0:
				switch {
				case h >= 3:
					total += tpsaNPlusH3
				case h == 2:
					total += tpsaNPlusH2
				case h == 1:
					total += tpsaNPlusH1
				default:
					total += tpsaNPlusH0
				}
			case a.aromatic:
				if h > 0 {
					total += tpsaNAromH1
				} else {
					total += tpsaNAromH0
				}
			case h >= 2:
				total += tpsaN3H2
			case h == 1:
				total += tpsaN3H1
			default:
				total += tpsaN3H0
			}
		case "O":
			switch {
			case a.charge < 0:
				total += tpsaOMinus
			case a.aromatic:
				total += tpsaOArom
			case m.hasDoubleBond(i):
				total += tpsaODouble
			case h > 0:
				total += tpsaOH
			default:
				total += tpsaOEther
			}
		case "S":
			switch {
			case a.aromatic:
				total += tpsaSArom
			case h > 0:
				total += tpsaSH
			case m.hasDoubleBond(i):
				total += tpsaSDouble
			default:
				total += tpsaS
			}
		case "P":
			if m.hasDoubleBond(i) {
				total += tpsaPDouble
			} else {
				total += tpsaP
			}
		}
	}
	return total
}

// wlogP sums the coarse Crippen-style atom contributions, including the
// implicit hydrogens of the hydrogen-explicit graph.
func (m *molecule) wlogP() float64 {
	total := 0.0
	for i, a := range m.atoms {
		key := a.symbol
		if a.aromatic && (key == "C" || key == "N") {
			key = strings.ToLower(key)
		}
		total += crippenAtom[key].logP
		if a.symbol == "C" {
			total += float64(m.hligands[i]) * crippenHC
		} else {
			total += float64(m.hligands[i]) * crippenHHet
		}
	}
	return total
}

// molarRefractivity sums the coarse Crippen-style MR contributions.
func (m *molecule) molarRefractivity() float64 {
	total := 0.0
	for i, a := range m.atoms {
		key := a.symbol
		if a.aromatic && (key == "C" || key == "N") {
			key = strings.ToLower(key)
		}
		total += crippenAtom[key].mr
		if a.symbol == "C" {
			total += float64(m.hligands[i]) * crippenHCMR
		} else {
			total += float64(m.hligands[i]) * crippenHHetMR
		}
	}
	return total
}
