// Package expand implements EXPAND: growing each cube of F maximally
// against the OFF-set, choosing raises that cover the most other cubes.
package expand

import (
	"sort"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// Expand grows every cube of f to a prime of f ∪ d with respect to r,
// repeating SingleExpand until a full pass leaves the cube and literal
// count unchanged — the "thorough" default strategy. Cubes are processed
// smallest first (more literals first, see weightOrder) and any cube left
// contained in another after expansion is
// dropped by the final contain-sort, per spec 4.4.
func Expand(f, r cover.Cover) cover.Cover {
	cur := f
	for {
		next := SingleExpand(cur, r)
		if next.Len() == cur.Len() && next.Literals() == cur.Literals() {
			return next
		}
		cur = next
	}
}

// SingleExpand performs exactly one pass over f's cubes, used by the
// `fast` strategy (spec 4.4's cheaper variant).
func SingleExpand(f, r cover.Cover) cover.Cover {
	order := weightOrder(f)
	cubes := make([]cube.Cube, len(f.Cubes))
	copy(cubes, f.Cubes)
	for _, idx := range order {
		others := without(cubes, idx)
		cubes[idx] = expandOne(cubes[idx], r, others)
	}
	return cover.ContainSort(cover.Cover{Layout: f.Layout, Cubes: cubes})
}

// weightOrder returns cube indices sorted by descending literal count, the
// "smaller/harder cubes first" ordering spec 4.4 calls for.
func weightOrder(f cover.Cover) []int {
	idx := make([]int, len(f.Cubes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return f.Cubes[idx[i]].Literals() > f.Cubes[idx[j]].Literals()
	})
	return idx
}

func without(cubes []cube.Cube, i int) []cube.Cube {
	out := make([]cube.Cube, 0, len(cubes)-1)
	for j, c := range cubes {
		if j != i {
			out = append(out, c)
		}
	}
	return out
}

// expandOne grows c as far as legal raises allow: a raise is legal when the
// raised cube stays disjoint from every cube of r, and among legal raises
// the one containing the most cubes of others is chosen, ties broken by
// lowest field then lowest part index for a documented, deterministic
// outcome (spec 4.4's tie-break is left undocumented in the source; this
// redesign mandates one, per spec.md §9's Open Question resolution).
func expandOne(c cube.Cube, r cover.Cover, others []cube.Cube) cube.Cube {
	cur := c.Clone()
	layout := cur.Layout()
	for {
		found := false
		bestGain := -1
		bestField, bestPart := -1, -1
		for f := 0; f < layout.NumFields(); f++ {
			if cur.FieldIsFull(f) {
				continue
			}
			size := layout.FieldSize(f)
			for p := 0; p < size; p++ {
				if cur.TestPart(f, p) {
					continue
				}
				cand := cur.Clone()
				cand.SetPartInPlace(f, p)
				if intersectsAny(cand, r) {
					continue
				}
				gain := countContained(cand, others)
				if gain > bestGain {
					bestGain = gain
					bestField, bestPart = f, p
					found = true
				}
			}
		}
		if !found {
			return cur
		}
		cur.SetPartInPlace(bestField, bestPart)
	}
}

func intersectsAny(c cube.Cube, cv cover.Cover) bool {
	for _, r := range cv.Cubes {
		if !cube.Intersect(c, r).IsEmpty() {
			return true
		}
	}
	return false
}

func countContained(c cube.Cube, others []cube.Cube) int {
	n := 0
	for _, o := range others {
		if cube.Contain(c, o) {
			n++
		}
	}
	return n
}
