package cover

import "github.com/crillab/espresso/cube"

// selectorCube returns the universal cube of l narrowed to a single part p
// of field f — the cube passed to Cofactor to restrict to one value of the
// splitting field during Shannon expansion.
func selectorCube(l *cube.Layout, f, p int) cube.Cube {
	c := cube.Full(l)
	return c.WithField(f, 1<<uint(p))
}

// Complement returns a cover of the complement of cv: the set of cubes
// whose union is every point not covered by cv. Recursive Shannon
// expansion over the most-binate field, re-narrowing each cofactored
// sub-result back into the split field before merging; bottoms out at a
// direct sharp-chain complement once cv is unate.
// The result is canonicalized by containment.
func Complement(cv Cover) Cover {
	if len(cv.Cubes) == 0 {
		return Of(cv.Layout, cube.Full(cv.Layout))
	}
	for _, c := range cv.Cubes {
		if c.IsTautology() {
			return New(cv.Layout)
		}
	}
	if IsUnate(cv) {
		return sharpComplement(cv)
	}
	field, _ := mostBinateField(cv)
	size := cv.Layout.FieldSize(field)
	result := New(cv.Layout)
	for p := 0; p < size; p++ {
		selector := selectorCube(cv.Layout, field, p)
		cf := Cofactor(cv, selector)
		sub := Complement(cf)
		for _, c := range sub.Cubes {
			result.Append(c.WithField(field, 1<<uint(p)))
		}
	}
	return ContainSort(result)
}

// sharpComplement computes cv's complement by repeatedly sharping the
// universal cube against every cube of cv: a direct, general (if less
// optimized than Espresso's UNATE_COMPL merge rule) way to complement a
// cover, used as Complement's and Tautology's terminal case.
func sharpComplement(cv Cover) Cover {
	remaining := []cube.Cube{cube.Full(cv.Layout)}
	for _, c := range cv.Cubes {
		var next []cube.Cube
		for _, r := range remaining {
			next = append(next, cube.Sharp(r, c)...)
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}
	return ContainSort(Cover{Layout: cv.Layout, Cubes: remaining})
}
