// Package reduce implements REDUCE: shrinking each cube of F to the
// smallest cube that still contains every minterm only it covers, in
// preparation for a fresh EXPAND pass that may find a better local optimum.
package reduce

import (
	"math/rand"
	"sort"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// Reduce processes every cube of f in descending-weight order (largest,
// i.e. fewest literals, first), replacing each with the smallest cube
// containing every minterm of c not covered by (f \ {c}) ∪ d (spec 4.6).
// A cube fully covered by the rest shrinks to empty and is dropped.
// REDUCE never changes the coverage of f ∪ d and never increases literal
// count.
func Reduce(f, d cover.Cover) cover.Cover {
	return reduceOrder(f, d, descendingWeightOrder(f))
}

// Random performs the same reduction in the reverse (ascending-weight)
// order named by spec 4.6's `random` variant — "inverse order" of the
// default, not an actual random shuffle, despite the name spec.md gives it.
func Random(f, d cover.Cover, rng *rand.Rand) cover.Cover {
	order := descendingWeightOrder(f)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	_ = rng // accepted for API symmetry with other seeded strategies; this variant is a fixed reordering, not a draw
	return reduceOrder(f, d, order)
}

func reduceOrder(f, d cover.Cover, order []int) cover.Cover {
	cubes := make([]cube.Cube, len(f.Cubes))
	copy(cubes, f.Cubes)
	for _, idx := range order {
		rest := cover.Union(without(f.Layout, cubes, idx), d)
		reduced := Shrink(cubes[idx], rest)
		cubes[idx] = reduced
	}
	out := cover.Cover{Layout: f.Layout}
	for _, c := range cubes {
		if !c.IsEmpty() {
			out.Append(c)
		}
	}
	return out
}

// descendingWeightOrder sorts cube indices by ascending literal count
// (smallest cubes, i.e. most literals, processed last), spec 4.6's default
// ordering.
func descendingWeightOrder(f cover.Cover) []int {
	idx := make([]int, len(f.Cubes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return f.Cubes[idx[i]].Literals() < f.Cubes[idx[j]].Literals()
	})
	return idx
}

func without(l *cube.Layout, cubes []cube.Cube, i int) cover.Cover {
	out := cover.Cover{Layout: l}
	for j, c := range cubes {
		if j != i {
			out.Cubes = append(out.Cubes, c)
		}
	}
	return out
}

// Shrink computes the smallest cube containing c ∩ ¬rest — the minterms of
// c not covered by rest — via cover.Remainder(c, rest) followed by the
// supercube of the resulting pieces. An empty result means c is fully
// redundant and should be dropped. Exported so LAST_GASP's reduce_gasp
// (spec 4.7) can reuse the same shrink step with a different `rest`.
func Shrink(c cube.Cube, rest cover.Cover) cube.Cube {
	pieces := cover.Remainder(c, rest)
	if len(pieces) == 0 {
		return cube.Empty(c.Layout())
	}
	result := pieces[0]
	for _, p := range pieces[1:] {
		result = cube.Supercube(result, p)
	}
	return result
}
