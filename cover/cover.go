// Package cover implements operations on whole covers (sets of cubes):
// tautology, complement, cofactor, containment sort and coverage checks.
// These primitives underlie every higher-level transformation in prime,
// expand, irredundant, reduce, minimize and exact.
package cover

import (
	"sort"

	"github.com/crillab/espresso/cube"
)

// A Cover is an ordered set of cubes sharing a Layout. Like solver.Problem
// pairing a variable count with a clause slice, a Cover pairs the shared
// shape with the cube slice it owns.
type Cover struct {
	Layout *cube.Layout
	Cubes  []cube.Cube
}

// New returns an empty cover over l.
func New(l *cube.Layout) Cover {
	return Cover{Layout: l}
}

// Of builds a cover from the given cubes.
func Of(l *cube.Layout, cubes ...cube.Cube) Cover {
	cs := make([]cube.Cube, len(cubes))
	copy(cs, cubes)
	return Cover{Layout: l, Cubes: cs}
}

// Len is the number of cubes in cv.
func (cv Cover) Len() int { return len(cv.Cubes) }

// Append adds c to cv.
func (cv *Cover) Append(c cube.Cube) {
	cv.Cubes = append(cv.Cubes, c)
}

// AppendAll adds every cube of other to cv.
func (cv *Cover) AppendAll(other Cover) {
	cv.Cubes = append(cv.Cubes, other.Cubes...)
}

// Clone deep-copies cv: no cover may alias another's cubes, per the data
// model's lifecycle rule that cubes are always deep-copied when
// transferred between covers.
func (cv Cover) Clone() Cover {
	cs := make([]cube.Cube, len(cv.Cubes))
	for i, c := range cv.Cubes {
		cs[i] = c.Clone()
	}
	return Cover{Layout: cv.Layout, Cubes: cs}
}

// Literals is the total literal count across every cube of cv.
func (cv Cover) Literals() int {
	n := 0
	for _, c := range cv.Cubes {
		n += c.Literals()
	}
	return n
}

// Without returns a clone of cv with the cube at index i removed.
func (cv Cover) Without(i int) Cover {
	cs := make([]cube.Cube, 0, len(cv.Cubes)-1)
	for j, c := range cv.Cubes {
		if j != i {
			cs = append(cs, c)
		}
	}
	return Cover{Layout: cv.Layout, Cubes: cs}
}

// Union returns a new cover containing every cube of a followed by every
// cube of b (a plain set union; duplicates/containment are not removed —
// callers that need a canonical form call ContainSort).
func Union(a, b Cover) Cover {
	cs := make([]cube.Cube, 0, len(a.Cubes)+len(b.Cubes))
	cs = append(cs, a.Cubes...)
	cs = append(cs, b.Cubes...)
	return Cover{Layout: a.Layout, Cubes: cs}
}

// ContainSort sorts cv's cubes by the total order of cube.Compare and then
// removes any cube strictly contained in another cube of the cover, so the
// result has no two cubes in a containment relation. Sorting (rather than
// hashing) keeps the result deterministic regardless of input order, per
// the determinism requirement.
func ContainSort(cv Cover) Cover {
	cs := make([]cube.Cube, len(cv.Cubes))
	copy(cs, cv.Cubes)
	sort.Slice(cs, func(i, j int) bool { return cube.Compare(cs[i], cs[j]) < 0 })
	kept := make([]cube.Cube, 0, len(cs))
	for i, c := range cs {
		if c.IsEmpty() {
			continue
		}
		dominated := false
		for j, other := range cs {
			if i == j || other.IsEmpty() {
				continue
			}
			if cube.Equal(c, other) {
				if j < i {
					dominated = true
				}
				continue
			}
			if cube.Contain(other, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	return Cover{Layout: cv.Layout, Cubes: kept}
}

// Remainder returns the pieces of c not covered by any cube of by: the
// Sharp-chain c # by, consuming one cube of by at a time and stopping early
// once nothing remains. This is the shared "what's left uncovered" building
// block used by REDUCE, IRREDUNDANT's witness-column construction and
// LAST_GASP.
func Remainder(c cube.Cube, by Cover) []cube.Cube {
	pieces := []cube.Cube{c}
	for _, d := range by.Cubes {
		var next []cube.Cube
		for _, p := range pieces {
			next = append(next, cube.Sharp(p, d)...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}
	return pieces
}

// Cofactor restricts cv to the subspace where c is true: for each cube d of
// cv, intersect field by field with c, dropping cubes whose intersection
// is empty, and force any field that equals c's field to all-ones (that
// variable is eliminated in the cofactored space).
func Cofactor(cv Cover, c cube.Cube) Cover {
	out := Cover{Layout: cv.Layout}
	for _, d := range cv.Cubes {
		inter := cube.Intersect(d, c)
		if inter.IsEmpty() {
			continue
		}
		for f := 0; f < cv.Layout.NumFields(); f++ {
			if inter.FieldBits(f) == c.FieldBits(f) {
				inter = inter.WithField(f, cv.Layout.FullMask(f))
			}
		}
		out.Cubes = append(out.Cubes, inter)
	}
	return out
}

// Covers reports whether `by` covers `target` entirely: every point
// described by every cube of target is covered by the union of `by`.
// This is the general coverage primitive: essential-prime detection,
// totally-redundant classification and CoverageGap verification are all
// instances of it.
func Covers(target, by Cover) bool {
	for _, t := range target.Cubes {
		var pieces Cover
		pieces.Layout = target.Layout
		for _, d := range by.Cubes {
			inter := cube.Intersect(t, d)
			if !inter.IsEmpty() {
				pieces.Cubes = append(pieces.Cubes, inter)
			}
		}
		if !Tautology(Cofactor(pieces, t)) {
			return false
		}
	}
	return true
}
