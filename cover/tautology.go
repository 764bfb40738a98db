package cover

// Tautology reports whether cv covers every point of the space, per spec
// 4.2: terminal cases are (i) any single cube is the tautology cube, (ii)
// cv is unate in every field and holds no tautology cube, (iii) cv is
// empty. Otherwise it recurses on the cofactor of cv with respect to each
// part of the most-binate field, and cv is a tautology iff every cofactor
// is.
func Tautology(cv Cover) bool {
	if len(cv.Cubes) == 0 {
		return false
	}
	for _, c := range cv.Cubes {
		if c.IsTautology() {
			return true
		}
	}
	if IsUnate(cv) {
		// No field forces a split. Settle the question directly by
		// checking whether the sharp-based complement is empty, rather
		// than Espresso's closed-form unate complement rule — correct,
		// and simple since every binate field has already been peeled off
		// by the time recursion reaches here.
		return len(sharpComplement(cv).Cubes) == 0
	}
	field, _ := mostBinateField(cv)
	size := cv.Layout.FieldSize(field)
	for p := 0; p < size; p++ {
		selector := selectorCube(cv.Layout, field, p)
		cf := Cofactor(cv, selector)
		if !Tautology(cf) {
			return false
		}
	}
	return true
}
