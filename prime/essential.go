// Package prime extracts essential primes from a cover: cubes whose
// essential part is not covered by the remaining cover union the DC-set.
package prime

import (
	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// Stats records how many cubes were found essential during a single
// Essential pass, mirroring the small counter-struct style the teacher
// uses for solver.Stats.
type Stats struct {
	NbEssential int
}

// IsEssential reports whether c covers at least one minterm not covered by
// rest — the single-cube form of spec 4.3's essentiality test, exposed
// standalone (as explain.Problem's check.go verifies a MUS independently
// of the main extraction loop) for callers that want to test one cube
// without running a full Essential pass.
func IsEssential(c cube.Cube, rest cover.Cover) bool {
	return !cover.Covers(cover.Of(rest.Layout, c), rest)
}

// Essential partitions F into its essential cubes and the remainder,
// following spec 4.3: a cube c is essential iff some minterm it covers is
// not covered by (F \ {c}) ∪ D. Essential cubes are removed from F added to
// a separate essential cover, and also folded into D so later passes (and
// later driver stages) treat them as already covered.
func Essential(f, d cover.Cover) (essential, fPrime, dPrime cover.Cover, stats Stats) {
	fPrime = f.Clone()
	dPrime = d.Clone()
	essential = cover.New(f.Layout)
	for i := 0; i < len(fPrime.Cubes); {
		c := fPrime.Cubes[i]
		rest := cover.Union(fPrime.Without(i), dPrime)
		if IsEssential(c, rest) {
			essential.Append(c)
			dPrime.Append(c.Clone())
			fPrime = fPrime.Without(i)
			stats.NbEssential++
		} else {
			i++
		}
	}
	return essential, fPrime, dPrime, stats
}
