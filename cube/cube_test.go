package cube

import "testing"

// binary builds a cube over n binary variables plus a single output field,
// from a string such as "1-0" for the inputs and an output value in
// {0,1}. '-' sets both bits, '0'/'1' set a single bit.
func binary(l *Layout, in string, out int) Cube {
	c := Empty(l)
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

func binLayout(n int) *Layout {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 2
	}
	return NewLayout(sizes, 1)
}

func TestIntersectContain(t *testing.T) {
	l := binLayout(2)
	a := binary(l, "1-", 0)
	b := binary(l, "-1", 0)
	i := Intersect(a, b)
	if i.IsEmpty() {
		t.Fatalf("Intersect(1-, -1) should not be empty")
	}
	if !Contain(a, i) || !Contain(b, i) {
		t.Errorf("Contain(a, Intersect(a,b)) and Contain(b, Intersect(a,b)) must both hold")
	}
}

func TestSupercubeContain(t *testing.T) {
	l := binLayout(2)
	a := binary(l, "10", 0)
	b := binary(l, "01", 0)
	s := Supercube(a, b)
	if !Contain(s, a) || !Contain(s, b) {
		t.Errorf("Contain(Supercube(a,b), a) and (...,b) must both hold")
	}
}

func TestDistanceMatchesIntersect(t *testing.T) {
	cases := []struct {
		a, b string
		dist int
	}{
		{"10", "10", 0},
		{"10", "1-", 0},
		{"10", "01", 2},
		{"10", "00", 1},
	}
	l := binLayout(2)
	for _, c := range cases {
		a := binary(l, c.a, 0)
		b := binary(l, c.b, 0)
		d := Distance(a, b)
		if d != c.dist {
			t.Errorf("Distance(%s,%s) = %d, want %d", c.a, c.b, d, c.dist)
		}
		empty := Intersect(a, b).IsEmpty()
		if (d == 0) == empty {
			t.Errorf("Distance(%s,%s)=0 should match non-empty intersect; got empty=%v", c.a, c.b, empty)
		}
	}
}

func TestConsensusMerge(t *testing.T) {
	l := binLayout(3)
	a := binary(l, "00-", 0)
	b := binary(l, "01-", 0)
	if Distance(a, b) != 1 {
		t.Fatalf("expected distance 1, got %d", Distance(a, b))
	}
	c := Consensus(a, b)
	want := binary(l, "0--", 0)
	if !Equal(c, want) {
		t.Errorf("Consensus(00-,01-) = %v, want %v", c, want)
	}
}

func TestSharpPartition(t *testing.T) {
	l := binLayout(2)
	a := Full(l)
	b := binary(l, "10", 0)
	parts := Sharp(a, b)
	// every point of a not covered by b must be covered by exactly the
	// union of the returned pieces; spot check a point known to be in a\b.
	p := binary(l, "01", 0)
	covered := false
	for _, piece := range parts {
		if Contain(piece, Intersect(piece, p)) && !Intersect(piece, p).IsEmpty() {
			covered = true
		}
	}
	if !covered {
		t.Errorf("Sharp(full, 10) should cover point 01, got pieces %v", parts)
	}
	// b itself must not be reachable from any returned piece.
	for _, piece := range parts {
		if !Intersect(piece, b).IsEmpty() {
			t.Errorf("Sharp(a,b) piece %v must not intersect b", piece)
		}
	}
}

func TestLiterals(t *testing.T) {
	l := binLayout(3)
	full := Full(l)
	if full.Literals() != 0 {
		t.Errorf("the universal cube has zero literals, got %d", full.Literals())
	}
	c := binary(l, "1-0", 0)
	if c.Literals() != 2 {
		t.Errorf("expected 2 literals for 1-0, got %d", c.Literals())
	}
}

func TestEmptyFieldMakesCubeEmpty(t *testing.T) {
	l := binLayout(2)
	c := Full(l)
	nc := c.WithField(0, 0)
	if !nc.IsEmpty() {
		t.Errorf("a cube with one all-zero field must report IsEmpty")
	}
}

func TestParseCubeRoundTrip(t *testing.T) {
	l := binLayout(3)
	for _, c := range []Cube{binary(l, "1-0", 1), binary(l, "---", 0), Full(l)} {
		s := c.String()
		got, err := ParseCube(l, s)
		if err != nil {
			t.Fatalf("ParseCube(%q) failed: %v", s, err)
		}
		if !Equal(got, c) {
			t.Errorf("ParseCube(String(c)) = %v, want %v (string was %q)", got, c, s)
		}
	}
}

func TestParseCubeRejectsWrongFieldCount(t *testing.T) {
	l := binLayout(2)
	if _, err := ParseCube(l, "0 1 0"); err == nil {
		t.Error("expected an error for a token count mismatch")
	}
}
