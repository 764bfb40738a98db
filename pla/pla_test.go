package pla

import (
	"strings"
	"testing"
)

const orPLA = `.i 2
.o 1
.ilb a b
.ob f
1- 1
-1 1
.e
`

func TestParseBasicOR(t *testing.T) {
	f, err := Parse(strings.NewReader(orPLA))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if f.NIn != 2 || f.NOut != 1 {
		t.Fatalf("expected .i 2 .o 1, got .i %d .o %d", f.NIn, f.NOut)
	}
	if len(f.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(f.Rows))
	}
	fCov, dCov, rCov := f.Cubes()
	if fCov.Len() != 2 {
		t.Fatalf("expected 2 ON-set cubes, got %d", fCov.Len())
	}
	if dCov.Len() != 0 {
		t.Fatalf("expected empty DC-set, got %d", dCov.Len())
	}
	if rCov.Len() == 0 {
		t.Errorf("expected a derived OFF-set for .type f")
	}
}

const donTcarePLA = `.i 2
.o 1
.type fd
10 1
01 1
11 -
.e
`

func TestParseDontCareType(t *testing.T) {
	f, err := Parse(strings.NewReader(donTcarePLA))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	fCov, dCov, _ := f.Cubes()
	if fCov.Len() != 2 {
		t.Fatalf("expected 2 ON-set rows, got %d", fCov.Len())
	}
	if dCov.Len() != 1 {
		t.Fatalf("expected 1 DC-set row, got %d", dCov.Len())
	}
}

func TestRoundTripThroughWriteTo(t *testing.T) {
	f, err := Parse(strings.NewReader(orPLA))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	fCov, dCov, _ := f.Cubes()

	out := FromCubes(fCov, dCov)
	var sb strings.Builder
	if _, err := out.WriteTo(&sb); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	reparsed, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("round-tripped PLA failed to reparse: %v\n%s", err, sb.String())
	}
	fCov2, _, _ := reparsed.Cubes()
	if fCov2.Len() != fCov.Len() {
		t.Fatalf("round trip changed ON-set cube count: %d vs %d", fCov.Len(), fCov2.Len())
	}
}

func TestParseRejectsMalformedRow(t *testing.T) {
	_, err := Parse(strings.NewReader(".i 2\n.o 1\n1 1\n.e\n"))
	if err == nil {
		t.Fatal("expected an error for a row with the wrong input width")
	}
}
