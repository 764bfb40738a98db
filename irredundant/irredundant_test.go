package irredundant

import (
	"testing"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

func binLayout(n int) *cube.Layout {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 2
	}
	return cube.NewLayout(sizes, 1)
}

func binary(l *cube.Layout, in string, out int) cube.Cube {
	c := cube.Empty(l)
	for i, ch := range in {
		switch ch {
		case '0':
			c.SetPartInPlace(i, 0)
		case '1':
			c.SetPartInPlace(i, 1)
		case '-':
			c.SetPartInPlace(i, 0)
			c.SetPartInPlace(i, 1)
		}
	}
	c.SetPartInPlace(l.OutputField(), out)
	return c
}

// XOR's two minterms are both relatively essential; IRREDUNDANT must keep
// both.
func TestIrredundantKeepsEssentials(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "01", 1), binary(l, "10", 1))
	d := cover.New(l)
	out := Irredundant(f, d)
	if out.Len() != 2 {
		t.Fatalf("expected both XOR cubes kept, got %d", out.Len())
	}
}

// 0- and -0 together cover 00, making the explicit 00 cube totally
// redundant; IRREDUNDANT must drop it and keep only the two essentials.
func TestIrredundantDropsTotallyRedundant(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "0-", 1), binary(l, "00", 1), binary(l, "-0", 1))
	d := cover.New(l)
	out := Irredundant(f, d)
	if out.Len() != 2 {
		t.Fatalf("expected the redundant 00 cube dropped, got %d cubes: %v", out.Len(), out.Cubes)
	}
	if !cover.Covers(f, out) {
		t.Errorf("reduced cover must still cover everything the original did")
	}
}

// 0- is covered by its own two minterms 00 and 01 taken separately, and
// each of those minterms is in turn covered by 0- alone: none of the three
// cubes is relatively essential (partition's rest-covers-c check passes
// for all three), so all three land in the partially-redundant class and
// the Matrix/MinimumCover solve must pick 0- and drop the two minterms it
// subsumes.
func TestIrredundantResolvesMutuallyRedundantCubes(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l,
		binary(l, "0-", 1),
		binary(l, "00", 1),
		binary(l, "01", 1),
	)
	d := cover.New(l)
	er, rp, rt := Classify(f, d)
	if er.Len() != 0 || rt.Len() != 0 || rp.Len() != f.Len() {
		t.Fatalf("expected all three cubes partially redundant, got er=%d rp=%d rt=%d", er.Len(), rp.Len(), rt.Len())
	}
	out := Irredundant(f, d)
	if !cover.Covers(f, out) {
		t.Fatalf("irredundant result must cover the original f, got %v", out.Cubes)
	}
	if out.Len() != 1 {
		t.Errorf("expected the matrix solve to settle on the single subsuming cube, got %d: %v", out.Len(), out.Cubes)
	}
}

func TestClassifyPartitionsDisjointly(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "0-", 1), binary(l, "00", 1), binary(l, "-0", 1))
	d := cover.New(l)
	er, rp, rt := Classify(f, d)
	if got := er.Len() + rp.Len() + rt.Len(); got != f.Len() {
		t.Fatalf("classes must partition f exactly, got %d total from %d cubes", got, f.Len())
	}
}
