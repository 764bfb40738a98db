package minimize_test

import (
	"os"
	"testing"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/exact"
	"github.com/crillab/espresso/minimize"
	"github.com/crillab/espresso/pla"
)

func loadScenario(t *testing.T, path string) (cover.Cover, cover.Cover, cover.Cover) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("could not open %s: %v", path, err)
	}
	defer f.Close()
	doc, err := pla.Parse(f)
	if err != nil {
		t.Fatalf("could not parse %s: %v", path, err)
	}
	fCov, dCov, rCov := doc.Cubes()
	return fCov, dCov, rCov
}

// S1 — 2-input OR: already minimal, 2 cubes.
func TestScenarioOR(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s1_or.pla")
	out, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected 2 cubes for OR, got %d: %v", out.Len(), out.Cubes)
	}
}

// S2 — 2-variable tautology: collapses to one cube `-- 1`.
func TestScenarioTautology(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s2_tautology.pla")
	out, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected tautology to collapse to 1 cube, got %d: %v", out.Len(), out.Cubes)
	}
	if out.Cubes[0].Literals() != 0 {
		t.Errorf("expected the sole cube to have 0 literals, got %d", out.Cubes[0].Literals())
	}
}

// S3 — XOR: no simplification possible, both cubes stay essential.
func TestScenarioXOR(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s3_xor.pla")
	out, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected XOR to stay at 2 cubes, got %d: %v", out.Len(), out.Cubes)
	}
}

// S4 — consensus/merge: 00- and 01- merge into 0--.
func TestScenarioConsensusMerge(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s4_consensus.pla")
	out, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected the two cubes to merge into one, got %d: %v", out.Len(), out.Cubes)
	}
}

// S5 — don't-care absorption: the DC row at 11 lets 10/01 merge into 1-.
func TestScenarioDontCareAbsorption(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s5_dontcare.pla")
	out, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected the DC-set to allow collapsing to 1 cube, got %d: %v", out.Len(), out.Cubes)
	}
}

// S6 — cyclic core: exact must find the true optimum of 3, heuristic must
// not do worse than 4.
func TestScenarioCyclicCore(t *testing.T) {
	f, d, r := loadScenario(t, "../pla/testdata/s6_cyclic_core.pla")

	heuristic, err := minimize.Heuristic(f, d, r, minimize.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if heuristic.Len() > 4 {
		t.Errorf("expected heuristic result of at most 4 cubes, got %d: %v", heuristic.Len(), heuristic.Cubes)
	}

	opt, err := exact.Minimize(f, d, r, exact.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Len() != 3 {
		t.Fatalf("expected exact minimization to find the 3-cube optimum, got %d: %v", opt.Len(), opt.Cubes)
	}
}
