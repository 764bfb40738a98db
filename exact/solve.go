package exact

import (
	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
	"github.com/crillab/espresso/expand"
	"github.com/crillab/espresso/minimize"
	"github.com/crillab/espresso/reduce"
)

// Options configures Minimize. Weights, when non-nil, is called with each
// non-essential prime cube and the cyclic core is solved for minimum total
// weight instead of minimum prime count — the cost-weighted
// variant supplementing spec 4.8, grounded on maxsat.Problem's per-
// constraint weight map.
type Options struct {
	Weights      func(p cube.Cube) int
	MaxTableSize int // 0 = no ceiling
}

// Minimize runs the exact two-level solver of spec 4.8: compute every
// prime of f ∪ d, peel off the essential ones, solve the residual cyclic
// core to true optimality by branch-and-bound, then run one heuristic
// REDUCE-then-EXPAND pass to tighten literal count without changing the
// prime count (step 7).
func Minimize(f, d, r cover.Cover, opts Options) (cover.Cover, error) {
	primes := AllPrimes(f, d, r)
	essential, rest := essentialPrimes(primes, f)

	table := buildTable(rest, f, essential)
	if opts.MaxTableSize > 0 && len(table.Columns) > opts.MaxTableSize {
		return cover.Cover{}, &minimize.LimitExceededError{TableSize: len(table.Columns), Limit: opts.MaxTableSize}
	}

	var chosen []int
	if opts.Weights != nil {
		chosen = table.WeightedMinimumCover(func(row int) int { return opts.Weights(rest.Cubes[row]) })
	} else {
		chosen = table.MinimumCover()
	}

	out := essential.Clone()
	for _, i := range chosen {
		out.Append(rest.Cubes[i].Clone())
	}
	out = cover.ContainSort(out)

	out = reduce.Reduce(out, d)
	out = expand.Expand(out, r)
	return cover.ContainSort(out), nil
}
