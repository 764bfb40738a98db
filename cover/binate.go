package cover

// mostBinateField picks the splitting field used by Tautology and
// Complement's recursive Shannon expansion (spec 4.2's MOST_BINATE rule).
//
// A field is binate when two cubes of cv disagree on it in a way that
// can't be resolved by a single cube alone: their field values are
// disjoint and neither is the field's don't-care pattern. Among binate
// fields, the one with the most cubes actively constraining it (field
// neither all-ones nor a single part, per spec 4.2's literal MOST_BINATE
// count) is picked, ties broken by lowest field index for determinism. ok
// is false when no field is binate, meaning cv is unate and the caller
// should fall back to the direct (sharp-chain) coverage computation
// instead of recursing.
func mostBinateField(cv Cover) (field int, ok bool) {
	best := -1
	bestScore := -1
	nf := cv.Layout.NumFields()
	for f := 0; f < nf; f++ {
		var binate []uint64
		score := 0
		for _, c := range cv.Cubes {
			if c.FieldIsFull(f) {
				continue
			}
			binate = append(binate, c.FieldBits(f))
			if c.FieldWeight(f) != 1 {
				score++
			}
		}
		if !isBinateField(binate) {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = f
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// isBinateField reports whether two of the given field values (each
// already known not to be the field's don't-care pattern) are disjoint —
// the generalization of "appears in both polarities" to multi-valued
// fields.
func isBinateField(active []uint64) bool {
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if active[i]&active[j] == 0 {
				return true
			}
		}
	}
	return false
}
