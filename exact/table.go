package exact

import (
	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
	"github.com/crillab/espresso/irredundant"
)

// essentialPrimes finds the essential primes among all primes P with
// respect to f: a prime is essential if it's the sole prime covering some
// minterm of f (spec 4.8 step 2). Returns the essential primes and the
// remaining non-essential primes.
func essentialPrimes(primes cover.Cover, f cover.Cover) (essential, rest cover.Cover) {
	essential = cover.Cover{Layout: primes.Layout}
	rest = cover.Cover{Layout: primes.Layout}

	coveredByOthers := make([]bool, primes.Len())
	for _, t := range f.Cubes {
		for _, m := range minterms(t) {
			var covering []int
			for i, p := range primes.Cubes {
				if cube.Contain(p, m) {
					covering = append(covering, i)
				}
			}
			if len(covering) == 1 {
				coveredByOthers[covering[0]] = true
			}
		}
	}
	for i, p := range primes.Cubes {
		if coveredByOthers[i] {
			essential.Append(p.Clone())
		} else {
			rest.Append(p.Clone())
		}
	}
	return essential, rest
}

// buildTable constructs the covering table of spec 4.8 step 3: rows are
// the non-essential primes, columns are the minterms of f not already
// covered by the essential primes, reusing irredundant.Build — the same
// sparse-matrix core IRREDUNDANT's own covering sub-problem uses.
func buildTable(nonEssential cover.Cover, f cover.Cover, essential cover.Cover) *irredundant.Matrix {
	points := cover.Cover{Layout: f.Layout}
	for _, t := range f.Cubes {
		points.Cubes = append(points.Cubes, minterms(t)...)
	}
	return irredundant.Build(nonEssential.Cubes, points, essential)
}
