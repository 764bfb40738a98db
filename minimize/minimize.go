// Package minimize implements the top-level heuristic driver (spec 4.7):
// EXPAND / IRREDUNDANT / ESSENTIAL, a REDUCE-EXPAND-IRREDUNDANT refinement
// loop, and LAST_GASP/SUPER_GASP escape from local minima.
package minimize

import (
	"math/rand"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
	"github.com/crillab/espresso/expand"
	"github.com/crillab/espresso/irredundant"
	"github.com/crillab/espresso/prime"
	"github.com/crillab/espresso/reduce"
)

// Heuristic runs the full minimization driver of spec 4.7 over (f, d, r)
// and returns the minimized ON-set. Options.Strategy selects depth: Fast
// stops after one EXPAND/IRREDUNDANT pass, Default adds the refinement
// loop and LAST_GASP, Strong replaces LAST_GASP with SUPER_GASP.
func Heuristic(f, d, r cover.Cover, opts Options) (cover.Cover, error) {
	if opts.SwapOnOff {
		f, r = r, f
	}
	if opts.RecomputeOnset {
		f = cover.Complement(cover.Union(d, r))
	}
	if opts.UnwrapOnset {
		f = unwrapOnset(f)
	}

	if opts.Strategy == Fast {
		f = expand.SingleExpand(f, r)
	} else {
		f = expand.Expand(f, r)
	}
	f = irredundant.Irredundant(f, d)

	var essentials cover.Cover
	essentials = cover.New(f.Layout)
	if opts.DetectEssentials {
		var fPrime, dPrime cover.Cover
		essentials, fPrime, dPrime, _ = prime.Essential(f, d)
		f, d = fPrime, dPrime
	}

	if opts.Strategy != Fast {
		prevCost := costOf(f)
		rng := rand.New(rand.NewSource(opts.Seed))
		for {
			if opts.deadlineExceeded() {
				out := cover.ContainSort(cover.Union(essentials, f))
				if opts.SwapOnOff {
					out = cover.Complement(cover.Union(out, d))
				}
				return out, &SoftTimeoutError{Best: out}
			}
			f = reduceStep(f, d, rng, opts.RandomReduce)
			f = expand.Expand(f, r)
			f = irredundant.Irredundant(f, d)
			cur := costOf(f)
			if !cur.less(prevCost) {
				break
			}
			prevCost = cur
		}

		if opts.Strategy == Strong {
			f = superGasp(f, d, r)
		} else {
			f = lastGasp(f, d, r)
		}
	}

	if opts.FinalIrredundant {
		f = irredundant.Irredundant(f, d)
	}

	out := cover.ContainSort(cover.Union(essentials, f))
	if opts.SwapOnOff {
		out = cover.Complement(cover.Union(out, d))
	}
	return out, nil
}

// reduceStep applies one REDUCE pass: the default descending-weight order
// (spec 4.7 line 119's `F ← REDUCE(F, D)`), or the `random` (reversed-order)
// variant when the caller opts in.
func reduceStep(f, d cover.Cover, rng *rand.Rand, random bool) cover.Cover {
	if random {
		return reduce.Random(f, d, rng)
	}
	return reduce.Reduce(f, d)
}

// Simplify runs a single EXPAND + IRREDUNDANT pass (spec 6's `simplify`
// entry point): a cheap cleanup with no refinement loop or gasp escape.
func Simplify(f, d, r cover.Cover) cover.Cover {
	f = expand.Expand(f, r)
	return irredundant.Irredundant(f, d)
}

// Check verifies f against the pre-minimization ON-set original and the
// OFF-set r: that f covers everything original covers (no CoverageGap) and
// that f shares no point with r (no OffsetConflict).
func Check(original, f, r cover.Cover) error {
	if !cover.Covers(original, f) {
		return ErrCoverageGap
	}
	for _, c := range f.Cubes {
		for _, off := range r.Cubes {
			if !cube.Intersect(c, off).IsEmpty() {
				return ErrOffsetConflict
			}
		}
	}
	return nil
}

// unwrapOnset splits every cube with k set output bits into k single-output
// cubes, one per set bit (spec 6's `unwrap_onset` option).
func unwrapOnset(f cover.Cover) cover.Cover {
	out := cover.Cover{Layout: f.Layout}
	of := f.Layout.OutputField()
	for _, c := range f.Cubes {
		bits := c.FieldBits(of)
		any := false
		for p := 0; p < f.Layout.FieldSize(of); p++ {
			if bits&(uint64(1)<<uint(p)) == 0 {
				continue
			}
			any = true
			single := c.Clone()
			single = single.WithField(of, uint64(1)<<uint(p))
			out.Cubes = append(out.Cubes, single)
		}
		if !any {
			out.Cubes = append(out.Cubes, c.Clone())
		}
	}
	return out
}
