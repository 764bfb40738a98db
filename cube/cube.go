package cube

import (
	"fmt"
	"math/bits"
	"strings"
)

// A Cube is a product term: one machine word per field, bit p of field f
// set means "part p of field f is in this cube". A field of all zeros makes
// the cube empty (contradiction); a field of all ones is the don't-care for
// that field. Cubes are conceptually immutable: every exported operation
// returns a new Cube rather than mutating its receiver, except the in-place
// setters SetPartInPlace and ClearPartInPlace, which exist only for code
// that owns a cube exclusively (EXPAND, the exact solver's prime search and
// LAST_GASP build a cube incrementally before handing it back as a value).
type Cube struct {
	fields []uint64
	layout *Layout
}

// Layout returns the shared layout of c.
func (c Cube) Layout() *Layout { return c.layout }

// Empty returns the canonical empty (contradiction) cube for l: every field
// is all-zero, which by definition makes it empty regardless of which field
// a caller inspects.
func Empty(l *Layout) Cube {
	return Cube{fields: make([]uint64, l.NumFields()), layout: l}
}

// Full returns the universal cube for l: every field don't-care, i.e. the
// tautology cube of spec 4.2's terminal case (i).
func Full(l *Layout) Cube {
	f := make([]uint64, l.NumFields())
	for i := range f {
		f[i] = l.FullMask(i)
	}
	return Cube{fields: f, layout: l}
}

// New builds a cube from explicit per-field bit patterns. Caller-supplied
// bits outside a field's valid range are masked off.
func New(l *Layout, fields []uint64) Cube {
	f := make([]uint64, l.NumFields())
	for i := range f {
		if i < len(fields) {
			f[i] = fields[i] & l.FullMask(i)
		}
	}
	return Cube{fields: f, layout: l}
}

// Clone deep-copies c; no cover or cube may alias another's backing slice.
func (c Cube) Clone() Cube {
	f := make([]uint64, len(c.fields))
	copy(f, c.fields)
	return Cube{fields: f, layout: c.layout}
}

// FieldBits returns the raw bit pattern of field f.
func (c Cube) FieldBits(f int) uint64 { return c.fields[f] }

// WithField returns a copy of c with field f replaced by bits (masked to
// the field's valid range).
func (c Cube) WithField(f int, bits uint64) Cube {
	nc := c.Clone()
	nc.fields[f] = bits & c.layout.FullMask(f)
	return nc
}

// SetPartInPlace sets part p of field f on a cube this caller owns
// exclusively (see package doc). Exported for use by other core packages
// (expand, exact, minimize) that build cubes incrementally under exclusive
// ownership, per the data model's lifecycle rules.
func (c Cube) SetPartInPlace(f, p int) {
	c.fields[f] |= 1 << uint(p)
}

// ClearPartInPlace clears part p of field f in place.
func (c Cube) ClearPartInPlace(f, p int) {
	c.fields[f] &^= 1 << uint(p)
}

// TestPart reports whether part p of field f is set.
func (c Cube) TestPart(f, p int) bool {
	return c.fields[f]&(1<<uint(p)) != 0
}

// FieldIsFull reports whether field f is entirely don't-care.
func (c Cube) FieldIsFull(f int) bool {
	return c.fields[f] == c.layout.FullMask(f)
}

// FieldIsEmpty reports whether field f is all-zero.
func (c Cube) FieldIsEmpty(f int) bool {
	return c.fields[f] == 0
}

// IsEmpty reports whether c is the empty (contradiction) cube: any field
// all-zero makes the whole cube empty, per the data model invariant.
func (c Cube) IsEmpty() bool {
	for _, f := range c.fields {
		if f == 0 {
			return true
		}
	}
	return false
}

// IsTautology reports whether every field of c is entirely don't-care.
func (c Cube) IsTautology() bool {
	for i, f := range c.fields {
		if f != c.layout.FullMask(i) {
			return false
		}
	}
	return true
}

// FieldWeight returns the number of parts set in field f.
func (c Cube) FieldWeight(f int) int {
	return bits.OnesCount64(c.fields[f])
}

// Literals returns the literal count of c: for each input field, the
// number of parts excluded from the cube (a don't-care field contributes
// zero literals, a fully-specified binary field contributes one). The
// output field is not counted: it names which outputs the cube asserts,
// not a literal of the product term.
func (c Cube) Literals() int {
	n := 0
	for f := 0; f < c.layout.OutputField(); f++ {
		n += c.layout.FieldSize(f) - c.FieldWeight(f)
	}
	return n
}

// Intersect computes the bitwise AND of a and b field by field; if any
// field becomes all-zero the result is the empty cube.
func Intersect(a, b Cube) Cube {
	l := a.layout
	f := make([]uint64, l.NumFields())
	for i := range f {
		v := a.fields[i] & b.fields[i]
		if v == 0 {
			return Empty(l)
		}
		f[i] = v
	}
	return Cube{fields: f, layout: l}
}

// Supercube computes the bitwise OR of a and b field by field. The result
// is always non-empty when a and b are.
func Supercube(a, b Cube) Cube {
	l := a.layout
	f := make([]uint64, l.NumFields())
	for i := range f {
		f[i] = a.fields[i] | b.fields[i]
	}
	return Cube{fields: f, layout: l}
}

// Distance is the number of fields whose intersection is empty: distance 0
// means a and b intersect, distance 1 means they are mergeable by
// consensus on a single field, distance >= 2 means no simple merge exists.
func Distance(a, b Cube) int {
	d := 0
	for i := range a.fields {
		if a.fields[i]&b.fields[i] == 0 {
			d++
		}
	}
	return d
}

// conflictField returns the sole field index where a and b don't
// intersect, assuming Distance(a, b) == 1.
func conflictField(a, b Cube) int {
	for i := range a.fields {
		if a.fields[i]&b.fields[i] == 0 {
			return i
		}
	}
	return -1
}

// Consensus is defined only when Distance(a, b) <= 1. At distance 0 it is
// their intersection; at distance 1, the conflicting field becomes the
// union of a's and b's field, and every other field is their
// intersection.
func Consensus(a, b Cube) Cube {
	d := Distance(a, b)
	if d == 0 {
		return Intersect(a, b)
	}
	if d != 1 {
		panic("cube: Consensus requires distance <= 1")
	}
	l := a.layout
	cf := conflictField(a, b)
	f := make([]uint64, l.NumFields())
	for i := range f {
		if i == cf {
			f[i] = a.fields[i] | b.fields[i]
		} else {
			f[i] = a.fields[i] & b.fields[i]
		}
	}
	return Cube{fields: f, layout: l}
}

// Sharp computes a # b: a set of cubes whose union is a \ b. For every
// field where b's field does not include a's (i.e. a has points outside
// b along that field), one cube is emitted equal to a with that field
// narrowed to the parts of a not in b.
func Sharp(a, b Cube) []Cube {
	var out []Cube
	for i := range a.fields {
		excess := a.fields[i] &^ b.fields[i]
		if excess == 0 {
			continue
		}
		out = append(out, a.WithField(i, excess))
	}
	return out
}

// Contain reports whether b is contained in a: every field of b is a
// subset of the corresponding field of a.
func Contain(a, b Cube) bool {
	for i := range a.fields {
		if b.fields[i]&^a.fields[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have identical bit patterns.
func Equal(a, b Cube) bool {
	for i := range a.fields {
		if a.fields[i] != b.fields[i] {
			return false
		}
	}
	return true
}

// Compare provides a total order on cubes' bit vectors (field by field,
// most-significant field first), used by cover.ContainSort to get a
// deterministic processing order that never depends on map/hash iteration,
// per the determinism requirement.
func Compare(a, b Cube) int {
	for i := range a.fields {
		if a.fields[i] < b.fields[i] {
			return -1
		}
		if a.fields[i] > b.fields[i] {
			return 1
		}
	}
	return 0
}

// String renders c as a PLA-style row (one character or '-' per part,
// collapsed per field) for debugging and test failure messages.
func (c Cube) String() string {
	var sb strings.Builder
	for f := 0; f < c.layout.OutputField(); f++ {
		sb.WriteByte(' ')
		sz := c.layout.FieldSize(f)
		if sz == 2 {
			switch c.fields[f] {
			case 1:
				sb.WriteByte('0')
			case 2:
				sb.WriteByte('1')
			case 3:
				sb.WriteByte('-')
			default:
				sb.WriteByte('~')
			}
			continue
		}
		sb.WriteByte('[')
		for p := 0; p < sz; p++ {
			if c.TestPart(f, p) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')
	out := c.fields[c.layout.OutputField()]
	for p := 0; p < c.layout.NOut; p++ {
		if out&(1<<uint(p)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strings.TrimPrefix(sb.String(), " ")
}

// ParseCube parses the format produced by String back into a Cube over l:
// one token per input field (a single '0'/'1'/'-'/'~' character for a
// binary field, or a bracketed '[...]' bitstring for a wider one),
// followed by the output field's bitstring. Grounded on String's own
// layout, this exists as its round-trip counterpart for tests and tools
// that need to read cubes back from debug/log output.
func ParseCube(l *Layout, s string) (Cube, error) {
	fields := strings.Fields(s)
	if len(fields) != l.OutputField()+1 {
		return Cube{}, fmt.Errorf("cube.ParseCube: expected %d fields, got %d in %q", l.OutputField()+1, len(fields), s)
	}
	c := Empty(l)
	for f := 0; f < l.OutputField(); f++ {
		bits, err := parseInputToken(l, f, fields[f])
		if err != nil {
			return Cube{}, err
		}
		c.fields[f] = bits
	}
	out, err := parseOutputToken(l, fields[l.OutputField()])
	if err != nil {
		return Cube{}, err
	}
	c.fields[l.OutputField()] = out
	return c, nil
}

func parseInputToken(l *Layout, f int, tok string) (uint64, error) {
	sz := l.FieldSize(f)
	if sz == 2 {
		if len(tok) != 1 {
			return 0, fmt.Errorf("cube.ParseCube: malformed binary field token %q", tok)
		}
		switch tok[0] {
		case '0':
			return 1, nil
		case '1':
			return 2, nil
		case '-':
			return 3, nil
		case '~':
			return 0, nil
		default:
			return 0, fmt.Errorf("cube.ParseCube: unrecognized binary field character %q", tok)
		}
	}
	if len(tok) != sz+2 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return 0, fmt.Errorf("cube.ParseCube: malformed multi-valued field token %q", tok)
	}
	var bits uint64
	for p := 0; p < sz; p++ {
		switch tok[p+1] {
		case '1':
			bits |= 1 << uint(p)
		case '0':
		default:
			return 0, fmt.Errorf("cube.ParseCube: unrecognized part character in %q", tok)
		}
	}
	return bits, nil
}

func parseOutputToken(l *Layout, tok string) (uint64, error) {
	if len(tok) != l.NOut {
		return 0, fmt.Errorf("cube.ParseCube: expected %d output characters, got %q", l.NOut, tok)
	}
	var bits uint64
	for p := 0; p < l.NOut; p++ {
		switch tok[p] {
		case '1':
			bits |= 1 << uint(p)
		case '0':
		default:
			return 0, fmt.Errorf("cube.ParseCube: unrecognized output character in %q", tok)
		}
	}
	return bits, nil
}
