// Package cube implements the bit-packed multi-valued cube algebra that
// underlies the minimizer: a cube is a product term over a fixed set of
// multi-valued input variables plus one multi-valued output variable.
package cube

import "fmt"

// Layout describes the shape shared by every cube in a problem: the number
// of parts of each input variable, plus the number of output parts (one
// part per output of the function, encoded as a trailing multi-valued
// variable per the data model).
//
// A Layout is immutable once built and is shared by pointer across every
// cube and cover derived from it; cubes never carry their own copy.
type Layout struct {
	VarSizes []int // parts per input variable, in order
	NOut     int    // number of outputs (parts of the trailing output field)
	fullMask []uint64
}

// NewLayout builds a Layout for nIn input variables with the given part
// counts and nOut outputs. Every part count must be in [1, 64]: a field is
// packed into a single machine word, which comfortably covers the part
// counts PLA problems exercise in practice (binary inputs have 2 parts;
// genuinely wide multi-valued fields are rare and still fit below 64).
func NewLayout(varSizes []int, nOut int) *Layout {
	if nOut < 1 || nOut > 64 {
		panic(fmt.Sprintf("cube: invalid output part count %d", nOut))
	}
	sizes := make([]int, len(varSizes))
	copy(sizes, varSizes)
	l := &Layout{VarSizes: sizes, NOut: nOut}
	l.fullMask = make([]uint64, len(sizes)+1)
	for i, sz := range sizes {
		if sz < 1 || sz > 64 {
			panic(fmt.Sprintf("cube: invalid part count %d for variable %d", sz, i))
		}
		l.fullMask[i] = fullMaskOf(sz)
	}
	l.fullMask[len(sizes)] = fullMaskOf(nOut)
	return l
}

func fullMaskOf(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// NumFields is the number of fields in a cube built from this layout: one
// per input variable plus one for the output variable.
func (l *Layout) NumFields() int { return len(l.VarSizes) + 1 }

// OutputField is the index of the trailing output field.
func (l *Layout) OutputField() int { return len(l.VarSizes) }

// FieldSize returns the number of parts of field f (VarSizes[f], or NOut
// for the output field).
func (l *Layout) FieldSize(f int) int {
	if f == l.OutputField() {
		return l.NOut
	}
	return l.VarSizes[f]
}

// FullMask returns the all-ones bit pattern (don't-care) for field f.
func (l *Layout) FullMask(f int) uint64 { return l.fullMask[f] }

// P is the total number of bits (parts) across all fields, matching the
// data model's definition of a cube's width.
func (l *Layout) P() int {
	p := l.NOut
	for _, sz := range l.VarSizes {
		p += sz
	}
	return p
}
