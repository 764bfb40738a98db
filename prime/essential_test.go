package prime

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

// XOR's two minterms are both essential: neither is covered by the other.
func TestEssentialXOR(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "01", 1), binary(l, "10", 1))
	d := cover.New(l)
	ess, fp, _, stats := Essential(f, d)
	if ess.Len() != 2 || fp.Len() != 0 {
		t.Fatalf("expected both XOR cubes essential, got %d essential / %d remaining", ess.Len(), fp.Len())
	}
	if stats.NbEssential != 2 {
		t.Errorf("expected NbEssential=2, got %d", stats.NbEssential)
	}
}

// Exactly one of the three cubes covering 00 is needed once the others are
// expanded, so a purely redundant cube must not be reported essential.
func TestEssentialRemovesRedundant(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "0-", 1), binary(l, "00", 1), binary(l, "-0", 1))
	d := cover.New(l)
	ess, fp, _, _ := Essential(f, d)
	total := ess.Len() + fp.Len()
	if total != 3 {
		t.Fatalf("no cube should be dropped outright by Essential, got total %d", total)
	}
	for _, c := range ess.Cubes {
		if cube.Equal(c, binary(l, "00", 1)) {
			t.Errorf("00 is covered by 0- and -0 together and must not be essential")
		}
	}
}
