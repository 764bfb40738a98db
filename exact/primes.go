// Package exact implements exact two-level minimization (spec 4.8): find
// every prime implicant of F ∪ D, extract the essential ones, then solve
// the remaining cyclic core to true optimality via the shared
// irredundant.Matrix branch-and-bound core.
package exact

import (
	"fmt"
	"strings"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// AllPrimes computes every prime implicant of f that contains at least one
// minterm of f, via recursive cube expansion over each minterm of f (spec
// 4.8 step 1): starting from a single point, every legal raise (one that
// stays disjoint from r) is tried, not just a greedy best one, so every
// maximal cube reachable from that point is discovered. This is
// exponential in the worst case and is intended for the small/exact-mode
// instances spec 4.8 targets, not the heuristic driver's hot path.
func AllPrimes(f, d, r cover.Cover) cover.Cover {
	seen := make(map[string]bool)
	out := cover.Cover{Layout: f.Layout}
	for _, c := range f.Cubes {
		for _, m := range minterms(c) {
			expandAllRaises(m, r, seen, &out)
		}
	}
	return cover.ContainSort(out)
}

// minterms enumerates every single-point cube within c's input fields,
// keeping c's output field as given (output bits are never split further:
// primality is computed per output plane, matching the data model's
// "one multi-valued output variable" convention).
func minterms(c cube.Cube) []cube.Cube {
	layout := c.Layout()
	points := []cube.Cube{c.Clone()}
	for f := 0; f < layout.OutputField(); f++ {
		size := layout.FieldSize(f)
		var next []cube.Cube
		for _, p := range points {
			bits := p.FieldBits(f)
			for part := 0; part < size; part++ {
				if bits&(uint64(1)<<uint(part)) == 0 {
					continue
				}
				next = append(next, p.WithField(f, uint64(1)<<uint(part)))
			}
		}
		points = next
	}
	return points
}

// expandAllRaises explores every sequence of legal raises from c (a point
// or partially-raised cube), recording c itself whenever no further raise
// is legal — i.e. whenever c is prime.
func expandAllRaises(c cube.Cube, r cover.Cover, seen map[string]bool, out *cover.Cover) {
	key := cubeKey(c)
	if seen[key] {
		return
	}
	seen[key] = true

	layout := c.Layout()
	anyRaise := false
	for f := 0; f < layout.NumFields(); f++ {
		if c.FieldIsFull(f) {
			continue
		}
		size := layout.FieldSize(f)
		for p := 0; p < size; p++ {
			if c.TestPart(f, p) {
				continue
			}
			cand := c.Clone()
			cand.SetPartInPlace(f, p)
			if intersectsAny(cand, r) {
				continue
			}
			anyRaise = true
			expandAllRaises(cand, r, seen, out)
		}
	}
	if !anyRaise {
		out.Cubes = append(out.Cubes, c.Clone())
	}
}

func intersectsAny(c cube.Cube, cv cover.Cover) bool {
	for _, x := range cv.Cubes {
		if !cube.Intersect(c, x).IsEmpty() {
			return true
		}
	}
	return false
}

func cubeKey(c cube.Cube) string {
	var sb strings.Builder
	layout := c.Layout()
	for f := 0; f < layout.NumFields(); f++ {
		fmt.Fprintf(&sb, "%x|", c.FieldBits(f))
	}
	return sb.String()
}
