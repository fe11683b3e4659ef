// core/energy/tables.go
// Parameter tables. Units: kcal/mol, lower is more favorable.
//
// Stacks are the Turner 2004 set (37 °C) indexed by pair type, the layout
// ViennaRNA uses: stack[type(i,j)][type(l,k)] for the stack of outer pair
// (i,j) on inner pair (k,l) with k = i+1, l = j−1.

package energy

import "rnadesign/core/alphabet"

const (
	// Gas constant in cal/(K·mol)
	Rcal = 1.9872
	// RgasKcal is Rcal in kcal/(K·mol), matching the table units.
	RgasKcal = Rcal / 1000.0
)

// Pair types. pNone covers every non-canonical combination.
const (
	pNone = iota
	pCG
	pGC
	pGU
	pUG
	pAU
	pUA
	numPairTypes
)

// pairType[x][y] for canonical bases x (5') and y (3').
var pairType = func() (t [alphabet.NumCanonical][alphabet.NumCanonical]int) {
	t[alphabet.C][alphabet.G] = pCG
	t[alphabet.G][alphabet.C] = pGC
	t[alphabet.G][alphabet.U] = pGU
	t[alphabet.U][alphabet.G] = pUG
	t[alphabet.A][alphabet.U] = pAU
	t[alphabet.U][alphabet.A] = pUA
	return t
}()

// pairScore is the fixed 4×4 base-pair score table (A,C,G,U order).
var pairScore = [alphabet.NumCanonical][alphabet.NumCanonical]float64{
	//  A     C     G     U
	{0.0, 0.0, 0.0, -2.0},  // A
	{0.0, 0.0, -3.0, 0.0},  // C
	{0.0, -3.0, 0.0, -1.0}, // G
	{-2.0, 0.0, -1.0, 0.0}, // U
}

// stack free energies; row/column 0 (pNone) stay zero.
var stack = [numPairTypes][numPairTypes]float64{
	//       none   CG     GC     GU     UG     AU     UA
	pNone: {},
	pCG:   {0, -2.40, -3.30, -2.10, -1.40, -2.10, -2.10},
	pGC:   {0, -3.30, -3.40, -2.50, -1.50, -2.20, -2.40},
	pGU:   {0, -2.10, -2.50, 1.30, -0.50, -1.40, -1.30},
	pUG:   {0, -1.40, -1.50, -0.50, 0.30, -0.60, -1.00},
	pAU:   {0, -2.10, -2.20, -1.40, -0.60, -1.10, -0.90},
	pUA:   {0, -2.10, -2.40, -1.30, -1.00, -0.90, -1.30},
}

// mismatchStack[type][x][y] scores a closing pair followed by the unpaired
// bases x (3' of the 5' base) and y (5' of the 3' base).
// Pair-only baseline with light context tweaks: GA and UU first mismatches
// bonus, purine on x bonus.
var mismatchStack = func() (t [numPairTypes][alphabet.NumCanonical][alphabet.NumCanonical]float64) {
	for pt := pCG; pt < numPairTypes; pt++ {
		base := -0.50
		if pt == pCG || pt == pGC {
			base = -0.80
		}
		for x := 0; x < alphabet.NumCanonical; x++ {
			for y := 0; y < alphabet.NumCanonical; y++ {
				e := base
				switch {
				case (x == alphabet.G && y == alphabet.A) || (x == alphabet.U && y == alphabet.U):
					e -= 0.80
				case x == alphabet.G && y == alphabet.G:
					e -= 0.40
				}
				if x == alphabet.A || x == alphabet.G {
					e -= 0.20
				}
				t[pt][x][y] = e
			}
		}
	}
	return t
}()

// PairScore exposes the 4×4 table for callers that report pair energies.
func PairScore(x, y int) float64 { return pairScore[x][y] }

// BestPartner returns the canonical base with the lowest pair score for x,
// ties broken by the lowest index.
func BestPartner(x int) int {
	best := 0
	for y := 1; y < alphabet.NumCanonical; y++ {
		if pairScore[x][y] < pairScore[x][best] {
			best = y
		}
	}
	return best
}
