// Package irredundant implements IRREDUNDANT: partitioning a cover into
// relatively-essential, partially-redundant and totally-redundant classes
// and solving the resulting minimum-cover sub-problem. The sparse covering
// matrix and branch-and-bound solver built here are reused, unchanged, by
// package exact for the cyclic core of exact minimization (spec 4.5/4.8
// explicitly share this core).
package irredundant

import (
	"sort"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// Matrix is the sparse row/column covering table of spec 3: rows are
// candidate cubes, columns are witness sub-cubes not yet covered by the
// caller's "already covered" set. Go slices indexed by position give O(1)
// access and amortized growth, the same "index into a slice keyed by a
// small integer" idiom the teacher uses for watcherList.wlist (indexed by
// literal) — a hand-rolled linked list would only add allocator pressure
// here, so this redesign keeps the algorithm and drops the pointer-linked
// structure, noted in DESIGN.md.
type Matrix struct {
	Rows     []cube.Cube
	Columns  []cube.Cube
	rowCols  [][]int // column indices each row covers
	colRows  [][]int // row indices that cover each column
	rowLive  []bool
	colLive  []bool
}

// Build constructs the covering matrix for `rows`: columns are witness
// pieces of mustCover not yet covered by alreadyCovered, one representative
// sub-cube per uncovered fragment (spec 4.5's "r # (Er ∪ D)" construction,
// generalized so the same routine also builds the exact solver's table in
// spec 4.8 step 3, where mustCover holds the minterms of F and
// alreadyCovered the essential primes).
func Build(rows []cube.Cube, mustCover cover.Cover, alreadyCovered cover.Cover) *Matrix {
	m := &Matrix{Rows: append([]cube.Cube(nil), rows...)}
	for _, t := range mustCover.Cubes {
		m.Columns = append(m.Columns, cover.Remainder(t, alreadyCovered)...)
	}
	m.rowCols = make([][]int, len(m.Rows))
	m.colRows = make([][]int, len(m.Columns))
	for ri, r := range m.Rows {
		for ci, c := range m.Columns {
			if cube.Contain(r, c) {
				m.rowCols[ri] = append(m.rowCols[ri], ci)
				m.colRows[ci] = append(m.colRows[ci], ri)
			}
		}
	}
	m.rowLive = make([]bool, len(m.Rows))
	for i := range m.rowLive {
		m.rowLive[i] = true
	}
	m.colLive = make([]bool, len(m.Columns))
	for i := range m.colLive {
		m.colLive[i] = len(m.colRows[i]) > 0
	}
	return m
}

func (m *Matrix) liveCols(row int) []int {
	var out []int
	for _, c := range m.rowCols[row] {
		if m.colLive[c] {
			out = append(out, c)
		}
	}
	return out
}

func (m *Matrix) liveRows(col int) []int {
	var out []int
	for _, r := range m.colRows[col] {
		if m.rowLive[r] {
			out = append(out, r)
		}
	}
	return out
}

func liveColSet(cols []int) map[int]bool {
	s := make(map[int]bool, len(cols))
	for _, c := range cols {
		s[c] = true
	}
	return s
}

func subset(a map[int]bool, b []int) bool {
	for _, c := range b {
		if !a[c] {
			return false
		}
	}
	return true
}

// ReduceDominance applies row/column dominance reduction to fixpoint
// (spec 4.5/4.8 step 4) and picks up any essential row it exposes along
// the way (step 5): a row forced into the solution because it is the only
// remaining row covering some column. It returns the indices of rows
// forced into the solution by this process.
func (m *Matrix) ReduceDominance() []int {
	var forced []int
	changed := true
	for changed {
		changed = false
		// Column dominance: if col X's covering rows ⊆ col Y's, drop Y
		// (every row that covers X also covers Y, so Y is covered
		// whenever X is).
		liveCols := m.liveColumns()
		for _, x := range liveCols {
			xRows := m.liveRows(x)
			for _, y := range liveCols {
				if x == y || !m.colLive[y] {
					continue
				}
				ys := liveColSet(m.liveRows(y))
				if subset(ys, xRows) && !subsetEq(liveColSet(xRows), ys) {
					m.colLive[y] = false
					changed = true
				}
			}
		}
		// Row dominance: if row B's column set ⊆ row A's, A is never a
		// worse choice than B, so drop B.
		liveRows := m.liveRowIndices()
		for _, a := range liveRows {
			aCols := m.liveCols(a)
			as := liveColSet(aCols)
			for _, b := range liveRows {
				if a == b || !m.rowLive[b] {
					continue
				}
				bCols := m.liveCols(b)
				if len(bCols) == 0 {
					continue
				}
				if subset(as, bCols) && !subsetEq(liveColSet(bCols), as) {
					m.rowLive[b] = false
					changed = true
				}
			}
		}
		// Essential rows: the sole remaining row covering some column.
		for _, c := range m.liveColumns() {
			rows := m.liveRows(c)
			if len(rows) == 1 {
				r := rows[0]
				if m.rowLive[r] {
					forced = append(forced, r)
					m.selectRow(r)
					changed = true
				}
			}
		}
	}
	return dedupInts(forced)
}

func subsetEq(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func (m *Matrix) liveColumns() []int {
	var out []int
	for i, ok := range m.colLive {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (m *Matrix) liveRowIndices() []int {
	var out []int
	for i, ok := range m.rowLive {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// selectRow marks row r as chosen: it and every column it covers are
// removed from further consideration.
func (m *Matrix) selectRow(r int) {
	if !m.rowLive[r] {
		return
	}
	m.rowLive[r] = false
	for _, c := range m.rowCols[r] {
		m.colLive[c] = false
	}
}

func dedupInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

// MinimumCover solves the residual cyclic core by branch-and-bound (spec
// 4.5/4.8 step 6): repeatedly pick the hardest remaining row (most live
// columns), explore including and excluding it, and prune subtrees whose
// lower bound can't beat the current best. It returns the indices (into
// Rows) of the rows selected, including any already forced by
// ReduceDominance.
func (m *Matrix) MinimumCover() []int {
	return m.minimumCover(nil)
}

// WeightedMinimumCover solves the same covering problem but minimizes total
// row weight instead of row count, for the exact solver's cost-weighted
// variant (spec 10's domain-stack supplement, grounded on maxsat.Problem's
// per-constraint weight map): weight(r) must return each row's cost. This
// is the same Matrix/branch-and-bound core as MinimumCover, parameterized
// by cost instead of hardcoding it to 1 per row.
func (m *Matrix) WeightedMinimumCover(weight func(row int) int) []int {
	w := make([]int, len(m.Rows))
	for i := range w {
		w[i] = weight(i)
	}
	return m.minimumCover(w)
}

func (m *Matrix) minimumCover(weight []int) []int {
	forced := m.ReduceDominance()
	st := bbState{
		m:       m,
		rowLive: append([]bool(nil), m.rowLive...),
		colLive: append([]bool(nil), m.colLive...),
		weight:  weight,
	}
	if !st.hasLiveColumn() {
		return forced
	}
	best := st.greedyCover()
	best = st.branchAndBound(nil, best)
	return dedupInts(append(forced, best...))
}

// bbState holds one branch's view of which rows/columns are still live,
// independent of the Matrix's own post-ReduceDominance snapshot, so
// sibling branches never see each other's tentative selections. weight is
// nil for the unweighted (row-count) objective, or one cost per row for
// WeightedMinimumCover.
type bbState struct {
	m       *Matrix
	rowLive []bool
	colLive []bool
	weight  []int
}

func (st bbState) rowWeight(r int) int {
	if st.weight == nil {
		return 1
	}
	return st.weight[r]
}

func (st bbState) cost(rows []int) int {
	n := 0
	for _, r := range rows {
		n += st.rowWeight(r)
	}
	return n
}

func (st bbState) clone() bbState {
	return bbState{
		m:       st.m,
		rowLive: append([]bool(nil), st.rowLive...),
		colLive: append([]bool(nil), st.colLive...),
		weight:  st.weight,
	}
}

func (st bbState) hasLiveColumn() bool {
	for _, ok := range st.colLive {
		if ok {
			return true
		}
	}
	return false
}

func (st bbState) colsOf(row int) int {
	n := 0
	for _, c := range st.m.rowCols[row] {
		if st.colLive[c] {
			n++
		}
	}
	return n
}

func (st *bbState) selectRow(row int) {
	st.rowLive[row] = false
	for _, c := range st.m.rowCols[row] {
		st.colLive[c] = false
	}
}

// greedyCover is a cheap initial upper bound: repeatedly pick the row with
// the best columns-covered-per-unit-weight ratio until none remain. With
// weight == nil this reduces to "most live columns", the unweighted rule.
func (st bbState) greedyCover() []int {
	work := st.clone()
	var chosen []int
	for {
		best, bestN, bestW := -1, 0, 1
		for r, ok := range work.rowLive {
			if !ok {
				continue
			}
			n := work.colsOf(r)
			if n == 0 {
				continue
			}
			w := work.rowWeight(r)
			if best < 0 || n*bestW > bestN*w {
				best, bestN, bestW = r, n, w
			}
		}
		if best < 0 {
			return chosen
		}
		chosen = append(chosen, best)
		work.selectRow(best)
	}
}

// lowerBound is a valid (if not maximally tight) bound on the cost still
// needed to cover the remaining live columns. Unweighted, it is the number
// of live columns divided by the largest number of columns any single live
// row covers — weaker than a true maximum-independent-set bound but still
// correct. Weighted, it falls back to the cheapest single live row that
// covers anything at all, since at least one more row at that cost or
// higher must still be chosen.
func (st bbState) lowerBound() int {
	nCols := 0
	for _, ok := range st.colLive {
		if ok {
			nCols++
		}
	}
	if nCols == 0 {
		return 0
	}
	if st.weight == nil {
		maxCover := 1
		for r, ok := range st.rowLive {
			if !ok {
				continue
			}
			if n := st.colsOf(r); n > maxCover {
				maxCover = n
			}
		}
		return (nCols + maxCover - 1) / maxCover
	}
	minW := -1
	for r, ok := range st.rowLive {
		if !ok || st.colsOf(r) == 0 {
			continue
		}
		if w := st.rowWeight(r); minW < 0 || w < minW {
			minW = w
		}
	}
	if minW < 0 {
		return 0
	}
	return minW
}

func (st bbState) hardestRow() int {
	best, bestCount := -1, -1
	for r, ok := range st.rowLive {
		if !ok {
			continue
		}
		if n := st.colsOf(r); n > bestCount {
			bestCount = n
			best = r
		}
	}
	return best
}

func (st bbState) branchAndBound(chosen []int, best []int) []int {
	if !st.hasLiveColumn() {
		if best == nil || st.cost(chosen) < st.cost(best) {
			return append([]int(nil), chosen...)
		}
		return best
	}
	if best != nil && st.cost(chosen)+st.lowerBound() >= st.cost(best) {
		return best
	}
	hardest := st.hardestRow()
	if hardest < 0 {
		return best
	}

	// Branch 1: include the hardest row.
	include := st.clone()
	include.selectRow(hardest)
	best = include.branchAndBound(append(append([]int(nil), chosen...), hardest), best)

	// Branch 2: exclude the hardest row entirely.
	exclude := st.clone()
	exclude.rowLive[hardest] = false
	best = exclude.branchAndBound(chosen, best)

	return best
}
