package minimize

import "github.com/crillab/espresso/cover"

// cost is the lexicographic (cube count, literal count) pair spec 5
// mandates for comparing covers.
type cost struct {
	cubes, literals int
}

func costOf(cv cover.Cover) cost {
	return cost{cubes: cv.Len(), literals: cv.Literals()}
}

// less reports whether c is strictly better than other.
func (c cost) less(other cost) bool {
	if c.cubes != other.cubes {
		return c.cubes < other.cubes
	}
	return c.literals < other.literals
}
