package chem

// Monoisotopic atomic masses for the elements the scanner accepts.  The
// report's MW field is an exact (monoisotopic) weight, not an average one.
var monoisotopicMass = map[string]float64{
	"H":  1.007825,
	"B":  11.009305,
	"C":  12.0,
	"N":  14.003074,
	"O":  15.994915,
	"F":  18.998403,
	"P":  30.973762,
	"S":  31.972071,
	"Cl": 34.968853,
	"Br": 78.918338,
	"I":  126.904473,
}

// Normal valence lists for organic-subset atoms, lowest first.  Implicit
// hydrogen count is the gap to the smallest valence that covers the bond
// order sum.
var normalValences = map[string][]int{
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

// aromaticSymbols are the elements that may appear lowercase in SMILES.
var aromaticSymbols = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
}

// Ertl polar-surface-area fragment contributions, reduced to the nitrogen,
// oxygen, sulfur and phosphorus environments the scanner can distinguish
// (element, aromaticity, hydrogen count, charge, presence of a double bond).
// Sulfur and phosphorus are included, mirroring the includeSandP variant of
// the descriptor.
const (
	tpsaN3H0     = 3.24
	tpsaN3H1     = 12.03
	tpsaN3H2     = 26.02
	tpsaNPlusH0  = 0.00
	tpsaNPlusH1  = 4.44
	tpsaNPlusH2  = 16.61
	tpsaNPlusH3  = 27.64
	tpsaNAromH0  = 12.89
	tpsaNAromH1  = 15.79
	tpsaOEther   = 9.23
	tpsaOH       = 20.23
	tpsaODouble  = 17.07
	tpsaOArom    = 13.14
	tpsaOMinus   = 23.06
	tpsaS        = 25.30
	tpsaSH       = 38.80
	tpsaSDouble  = 32.09
	tpsaSArom    = 28.24
	tpsaP        = 13.59
	tpsaPDouble  = 9.81
)

// Crippen-style per-atom contributions for WlogP and molar refractivity,
// collapsed to one coarse class per element (aromatic carbon and nitrogen
// kept separate, hydrogens split by the atom they attach to).  The full
// Crippen scheme distinguishes ~70 atom classes; these are class averages,
// adequate for threshold screening.
type crippenContrib struct {
	logP float64
	mr   float64
}

var crippenAtom = map[string]crippenContrib{
	"C":  {0.1441, 2.503},
	"c":  {0.2955, 2.677}, // aromatic carbon
	"N":  {-0.8700, 2.134},
	"n":  {-0.4458, 2.202}, // aromatic nitrogen
	"O":  {-0.3998, 0.8238},
	"F":  {0.4202, 0.8897},
	"Cl": {0.6895, 5.853},
	"Br": {0.8456, 8.927},
	"I":  {0.8857, 14.02},
	"S":  {0.4549, 7.591},
	"P":  {0.8612, 6.920},
	"B":  {-0.3187, 3.000},
}

const (
	// Hydrogen attached to carbon vs. to a heteroatom.
	crippenHC     = 0.1230
	crippenHHet   = -0.2677
	crippenHCMR   = 1.057
	crippenHHetMR = 1.057
)
