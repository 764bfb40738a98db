package minimize

import (
	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
	"github.com/crillab/espresso/irredundant"
	"github.com/crillab/espresso/reduce"
)

// lastGasp performs spec 4.7's escape from a local minimum: reduce_gasp
// shrinks every cube of f past ordinary coverage (ignoring d entirely, only
// weighing against the other cubes of f), expand_gasp re-grows the
// resulting gaps considering only the region that shrinking just
// uncovered, and a final IRREDUNDANT cleans up. The gasp result is kept
// only if it strictly improves on f's cost.
func lastGasp(f, d, r cover.Cover) cover.Cover {
	before := costOf(f)
	shrunk := reduceGasp(f)
	grown := expandGasp(f, shrunk, r)
	result := irredundant.Irredundant(grown, d)
	if costOf(result).less(before) {
		return result
	}
	return f
}

// superGasp repeats lastGasp until it stops improving (spec 4.7's -estrong
// variant).
func superGasp(f, d, r cover.Cover) cover.Cover {
	for {
		next := lastGasp(f, d, r)
		if !costOf(next).less(costOf(f)) {
			return f
		}
		f = next
	}
}

// reduceGasp shrinks every cube of f against the *other cubes of f alone*
// (D is deliberately excluded), which may drop minterms no other cube of f
// covers — a cube can shrink past what ordinary REDUCE would allow,
// temporarily breaking coverage so expand_gasp can try a different shape.
func reduceGasp(f cover.Cover) cover.Cover {
	cubes := make([]cube.Cube, len(f.Cubes))
	copy(cubes, f.Cubes)
	for i := range cubes {
		rest := cover.Cover{Layout: f.Layout}
		for j, c := range cubes {
			if j != i {
				rest.Cubes = append(rest.Cubes, c)
			}
		}
		cubes[i] = reduce.Shrink(cubes[i], rest)
	}
	return cover.Cover{Layout: f.Layout, Cubes: cubes}
}

// expandGasp re-grows each shrunk cube, but a raise is only credited when
// it recovers some minterm original covered and shrunk no longer does
// (spec 4.7's "considering only the newly uncovered region"); raises are
// still rejected outright if they would intersect r, exactly as ordinary
// EXPAND.
func expandGasp(original, shrunk cover.Cover, r cover.Cover) cover.Cover {
	out := make([]cube.Cube, len(shrunk.Cubes))
	for i, c := range shrunk.Cubes {
		lost := cover.Remainder(original.Cubes[i], cover.Of(original.Layout, c))
		out[i] = growTowards(c, lost, r)
	}
	return cover.Cover{Layout: shrunk.Layout, Cubes: out}
}

// growTowards raises c one part at a time, keeping any raise that (a)
// stays disjoint from r and (b) intersects at least one cube of lost,
// until no such raise remains.
func growTowards(c cube.Cube, lost []cube.Cube, r cover.Cover) cube.Cube {
	if len(lost) == 0 {
		return c
	}
	cur := c.Clone()
	layout := cur.Layout()
	for {
		progressed := false
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
				if !recoversAny(cand, lost) {
					continue
				}
				cur = cand
				progressed = true
			}
		}
		if !progressed {
			return cur
		}
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

func recoversAny(c cube.Cube, lost []cube.Cube) bool {
	for _, l := range lost {
		if !cube.Intersect(c, l).IsEmpty() {
			return true
		}
	}
	return false
}
