package expand

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

func TestExpandGrowsToPrime(t *testing.T) {
	l := binLayout(3)
	// F = {000, 001}; OFF-set covers everything else; consensus on var 2
	// should grow both into the prime 00-.
	f := cover.Of(l, binary(l, "000", 1), binary(l, "001", 1))
	r := cover.Of(l,
		binary(l, "010", 1), binary(l, "011", 1),
		binary(l, "100", 1), binary(l, "101", 1), binary(l, "110", 1), binary(l, "111", 1),
	)
	out := Expand(f, r)
	if out.Len() != 1 {
		t.Fatalf("expected the two cubes to merge into one prime, got %d: %v", out.Len(), out.Cubes)
	}
	want := binary(l, "00-", 1)
	if !cube.Equal(out.Cubes[0], want) {
		t.Errorf("got %v, want %v", out.Cubes[0], want)
	}
}

func TestExpandNeverIntersectsOffset(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "00", 1))
	r := cover.Of(l, binary(l, "01", 1), binary(l, "10", 1), binary(l, "11", 1))
	out := Expand(f, r)
	for _, c := range out.Cubes {
		for _, off := range r.Cubes {
			if !cube.Intersect(c, off).IsEmpty() {
				t.Errorf("expanded cube %v must stay disjoint from OFF-set cube %v", c, off)
			}
		}
	}
}

func TestSingleExpandIsOnePass(t *testing.T) {
	l := binLayout(2)
	f := cover.Of(l, binary(l, "00", 1), binary(l, "11", 1))
	r := cover.New(l)
	out := SingleExpand(f, r)
	if out.Len() > 2 {
		t.Fatalf("single pass must not increase cube count, got %d", out.Len())
	}
}
