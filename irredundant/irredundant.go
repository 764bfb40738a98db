// IRREDUNDANT (spec 4.5): partitions F into relatively-essential,
// partially-redundant and totally-redundant classes with respect to D, then
// solves a minimum-cover sub-problem over the partially-redundant class
// using the shared Matrix/branch-and-bound core.
package irredundant

import (
	"github.com/crillab/espresso/cover"
)

// Irredundant removes redundant cubes from f: relatively-essential cubes
// (those covering a minterm not covered by the rest of f union d) are kept
// outright, totally-redundant cubes (fully covered by Er ∪ d) are dropped,
// and the partially-redundant remainder is resolved by the minimum-cover
// matrix search, whose chosen rows augment Er for the final result.
func Irredundant(f, d cover.Cover) cover.Cover {
	er, rp, _ := partition(f, d)
	if rp.Len() == 0 {
		return cover.ContainSort(er)
	}

	alreadyCovered := cover.Union(er, d)
	m := Build(rp.Cubes, rp, alreadyCovered)
	chosen := m.MinimumCover()

	out := er.Clone()
	for _, i := range chosen {
		out.Append(rp.Cubes[i].Clone())
	}
	return cover.ContainSort(out)
}

// Classify exposes spec 4.5's three-way split directly, for callers (tests,
// the minimize driver's verbose trace) that want the partition without
// running the minimum-cover solve.
func Classify(f, d cover.Cover) (er, rp, rt cover.Cover) {
	return partition(f, d)
}

// partition implements spec 4.5's three-way split of f with respect to d.
func partition(f, d cover.Cover) (er, rp, rt cover.Cover) {
	er = cover.New(f.Layout)
	rp = cover.New(f.Layout)
	rt = cover.New(f.Layout)

	essential := make([]bool, f.Len())
	for i, c := range f.Cubes {
		rest := cover.Union(f.Without(i), d)
		if !cover.Covers(cover.Of(f.Layout, c), rest) {
			essential[i] = true
		}
	}
	for i, c := range f.Cubes {
		if essential[i] {
			er.Append(c.Clone())
		}
	}

	coveredByEr := cover.Union(er, d)
	for i, c := range f.Cubes {
		if essential[i] {
			continue
		}
		if cover.Covers(cover.Of(f.Layout, c), coveredByEr) {
			rt.Append(c.Clone())
		} else {
			rp.Append(c.Clone())
		}
	}
	return er, rp, rt
}
