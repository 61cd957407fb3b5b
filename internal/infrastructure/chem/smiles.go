package chem

import (
	"strconv"
	"strings"

	"github.com/molscreen/molscreen/pkg/errors"
)

// atom is one heavy atom of the molecular graph.
type atom struct {
	symbol   string // normalized element symbol, e.g. "N", "Cl"
	aromatic bool
	charge   int
	// explicitH is the bracket-specified hydrogen count, or -1 when the
	// count is implicit and must be derived from normal valence.
	explicitH int
}

// bond joins two atoms by index.
type bond struct {
	a, b     int
	order    int // 1, 2, 3
	aromatic bool
}

// molecule is the parsed graph plus derived per-atom hydrogen counts.
type molecule struct {
	atoms    []atom
	bonds    []bond
	adj      [][]int // atom index -> incident bond indices
	hligands []int   // atom index -> hydrogen count (explicit or derived)
}

// ringRef tracks an open ring-closure digit.
type ringRef struct {
	atom  int
	order int
}

// parseSMILES scans a SMILES token into a molecule.  It covers the organic
// subset, bracket atoms with charge and hydrogen counts, branches, ring
// closures (including %nn), dot-separated components, and explicit bond
// symbols.  Stereo markers are accepted and ignored.  Anything else is a
// typed CodeInvalidSMILES error.
func parseSMILES(s string) (*molecule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.InvalidSMILES("empty SMILES string")
	}

	m := &molecule{}
	prev := -1
	pendingOrder := 0 // 0 = unspecified
	pendingAromatic := false
	var stack []int
	open := make(map[int]ringRef)

	addAtom := func(a atom) {
		m.atoms = append(m.atoms, a)
		m.adj = append(m.adj, nil)
		idx := len(m.atoms) - 1
		if prev >= 0 {
			m.addBond(prev, idx, resolveOrder(pendingOrder, pendingAromatic, m.atoms[prev], a))
		}
		pendingOrder, pendingAromatic = 0, false
		prev = idx
	}

	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '(':
			if prev < 0 {
				return nil, errors.InvalidSMILES("branch opens before any atom")
			}
			stack = append(stack, prev)
			i++
		case ch == ')':
			if len(stack) == 0 {
				return nil, errors.InvalidSMILES("unbalanced parentheses")
			}
			prev = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i++
		case ch == '-' || ch == '/' || ch == '\\':
			pendingOrder = 1
			i++
		case ch == '=':
			pendingOrder = 2
			i++
		case ch == '#':
			pendingOrder = 3
			i++
		case ch == ':':
			pendingOrder = 1
			pendingAromatic = true
			i++
		case ch == '.':
			prev = -1
			pendingOrder, pendingAromatic = 0, false
			i++
		case ch >= '0' && ch <= '9' || ch == '%':
			num := 0
			if ch == '%' {
				if i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
					return nil, errors.InvalidSMILES("malformed %nn ring closure")
				}
				num = int(s[i+1]-'0')*10 + int(s[i+2]-'0')
				i += 3
			} else {
				num = int(ch - '0')
				i++
			}
			if prev < 0 {
				return nil, errors.InvalidSMILES("ring closure before any atom")
			}
			if ref, ok := open[num]; ok {
				if ref.atom == prev {
					return nil, errors.InvalidSMILES("ring closure bonds an atom to itself")
				}
				order := pendingOrder
				if order == 0 {
					order = ref.order
				}
				m.addBond(ref.atom, prev, resolveOrder(order, pendingAromatic, m.atoms[ref.atom], m.atoms[prev]))
				delete(open, num)
			} else {
				open[num] = ringRef{atom: prev, order: pendingOrder}
			}
			pendingOrder, pendingAromatic = 0, false
		case ch == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, errors.InvalidSMILES("unclosed bracket atom")
			}
			a, err := parseBracketAtom(s[i+1 : i+end])
			if err != nil {
				return nil, err
			}
			addAtom(a)
			i += end + 1
		case ch >= 'A' && ch <= 'Z':
			sym := string(ch)
			if i+1 < len(s) && (sym+string(s[i+1]) == "Cl" || sym+string(s[i+1]) == "Br") {
				sym += string(s[i+1])
				i++
			}
			if _, ok := normalValences[sym]; !ok {
				return nil, errors.InvalidSMILES("unknown atom symbol").WithDetail(sym)
			}
			addAtom(atom{symbol: sym, explicitH: -1})
			i++
		case ch >= 'a' && ch <= 'z':
			sym := strings.ToUpper(string(ch))
			if !aromaticSymbols[sym] {
				return nil, errors.InvalidSMILES("invalid aromatic atom symbol").WithDetail(string(ch))
			}
			addAtom(atom{symbol: sym, aromatic: true, explicitH: -1})
			i++
		default:
			return nil, errors.InvalidSMILES("invalid character in SMILES").
				WithDetail(strconv.QuoteRune(rune(ch)))
		}
	}

	if len(stack) != 0 {
		return nil, errors.InvalidSMILES("unbalanced parentheses")
	}
	if len(open) != 0 {
		return nil, errors.InvalidSMILES("unmatched ring closure digit")
	}
	if pendingOrder != 0 {
		return nil, errors.InvalidSMILES("dangling bond symbol")
	}
	if len(m.atoms) == 0 {
		return nil, errors.InvalidSMILES("no atoms in SMILES")
	}

	m.deriveHydrogens()
	return m, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// resolveOrder picks the bond for two atoms: an explicit symbol wins,
// otherwise two aromatic atoms bond aromatically, otherwise single.
func resolveOrder(pending int, pendingAromatic bool, a, b atom) bond {
	switch {
	case pendingAromatic:
		return bond{order: 1, aromatic: true}
	case pending > 0:
		return bond{order: pending}
	case a.aromatic && b.aromatic:
		return bond{order: 1, aromatic: true}
	default:
		return bond{order: 1}
	}
}

func (m *molecule) addBond(a, b int, template bond) {
	template.a, template.b = a, b
	m.bonds = append(m.bonds, template)
	idx := len(m.bonds) - 1
	m.adj[a] = append(m.adj[a], idx)
	m.adj[b] = append(m.adj[b], idx)
}

// parseBracketAtom parses the interior of [...]: optional isotope, element
// symbol (aromatic if lowercase), ignored chirality markers, optional
// hydrogen count, optional charge.
func parseBracketAtom(body string) (atom, error) {
	if body == "" {
		return atom{}, errors.InvalidSMILES("empty bracket atom")
	}
	i := 0
	// Isotope label, ignored.
	for i < len(body) && isDigit(body[i]) {
		i++
	}
	if i == len(body) {
		return atom{}, errors.InvalidSMILES("bracket atom has no element symbol")
	}

	var a atom
	a.explicitH = 0
	switch {
	case body[i] >= 'A' && body[i] <= 'Z':
		sym := string(body[i])
		if i+1 < len(body) && body[i+1] >= 'a' && body[i+1] <= 'z' {
			if _, ok := normalValences[sym+string(body[i+1])]; ok {
				sym += string(body[i+1])
				i++
			}
		}
		if _, ok := normalValences[sym]; !ok && sym != "H" {
			return atom{}, errors.InvalidSMILES("unknown atom symbol").WithDetail(sym)
		}
		a.symbol = sym
		i++
	case body[i] >= 'a' && body[i] <= 'z':
		sym := strings.ToUpper(string(body[i]))
		if !aromaticSymbols[sym] {
			return atom{}, errors.InvalidSMILES("invalid aromatic atom symbol").WithDetail(string(body[i]))
		}
		a.symbol = sym
		a.aromatic = true
		i++
	default:
		return atom{}, errors.InvalidSMILES("bracket atom has no element symbol")
	}

	for i < len(body) {
		switch body[i] {
		case '@':
			i++
		case 'H':
			i++
			a.explicitH = 1
			if i < len(body) && isDigit(body[i]) {
				a.explicitH = int(body[i] - '0')
				i++
			}
		case '+', '-':
			sign := 1
			if body[i] == '-' {
				sign = -1
			}
			count := 0
			for i < len(body) && (body[i] == '+' || body[i] == '-') {
				count++
				i++
			}
			if i < len(body) && isDigit(body[i]) {
				count = int(body[i] - '0')
				i++
			}
			a.charge = sign * count
		default:
			return atom{}, errors.InvalidSMILES("unexpected character in bracket atom").
				WithDetail(strconv.QuoteRune(rune(body[i])))
		}
	}
	return a, nil
}

// deriveHydrogens fills hligands for every atom.  Bracket atoms carry their
// declared count; organic-subset atoms receive the gap between their bond
// order sum and the smallest normal valence that covers it.  An aromatic
// atom charges one extra unit of valence to its ring system.
func (m *molecule) deriveHydrogens() {
	m.hligands = make([]int, len(m.atoms))
	for i, a := range m.atoms {
		if a.explicitH >= 0 {
			m.hligands[i] = a.explicitH
			continue
		}
		sum := 0
		for _, bi := range m.adj[i] {
			sum += m.bonds[bi].order
		}
		if a.aromatic {
			sum++
		}
		for _, v := range normalValences[a.symbol] {
			if v >= sum {
				m.hligands[i] = v - sum
				break
			}
		}
	}
}

// componentCount returns the number of connected components, used for the
// cycle-rank ring count.
func (m *molecule) componentCount() int {
	seen := make([]bool, len(m.atoms))
	count := 0
	for start := range m.atoms {
		if seen[start] {
			continue
		}
		count++
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, bi := range m.adj[cur] {
				b := m.bonds[bi]
				next := b.a
				if next == cur {
					next = b.b
				}
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return count
}

// ringBonds marks each bond as cyclic or acyclic by finding bridges: a bond
// is in a ring exactly when it is not a bridge.
func (m *molecule) ringBonds() []bool {
	inRing := make([]bool, len(m.bonds))
	for i := range inRing {
		inRing[i] = true
	}

	disc := make([]int, len(m.atoms))
	low := make([]int, len(m.atoms))
	for i := range disc {
		disc[i] = -1
	}
	timer := 0

	type frame struct {
		atom, parentBond, edgeIdx int
	}
	for start := range m.atoms {
		if disc[start] != -1 {
			continue
		}
		stack := []frame{{atom: start, parentBond: -1}}
		disc[start], low[start] = timer, timer
		timer++
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.edgeIdx < len(m.adj[f.atom]) {
				bi := m.adj[f.atom][f.edgeIdx]
				f.edgeIdx++
				if bi == f.parentBond {
					continue
				}
				b := m.bonds[bi]
				next := b.a
				if next == f.atom {
					next = b.b
				}
				if disc[next] == -1 {
					disc[next], low[next] = timer, timer
					timer++
					stack = append(stack, frame{atom: next, parentBond: bi})
				} else if disc[next] < low[f.atom] {
					low[f.atom] = disc[next]
				}
			} else {
				done := *f
				stack = stack[:len(stack)-1]
				if done.parentBond >= 0 {
					b := m.bonds[done.parentBond]
					parent := b.a
					if parent == done.atom {
						parent = b.b
					}
					if low[done.atom] < low[parent] {
						low[parent] = low[done.atom]
					}
					if low[done.atom] > disc[parent] {
						inRing[done.parentBond] = false // bridge
					}
				}
			}
		}
	}
	return inRing
}
