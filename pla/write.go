package pla

import (
	"fmt"
	"io"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// FromCubes renders (f, d) cover triples back into PLA text (spec 6's
// printer direction), grounded on solver.Problem.CNF()'s "fmt.Sprintf
// into a growing string" idiom. Each F cube becomes one row with `1` on
// every output bit it sets; each D cube becomes one row with `-` on every
// output bit it sets. R is never written explicitly: spec 6's PLA grammar
// represents the OFF-set implicitly (type `fd`), since the core always
// has an explicit D (possibly empty) by the time it reaches here.
func FromCubes(f, d cover.Cover) *File {
	file := &File{NIn: f.Layout.OutputField(), NOut: f.Layout.NOut, Type: TypeFD}
	appendRows(file, f.Cubes, outOne)
	appendRows(file, d.Cubes, outDC)
	return file
}

func appendRows(file *File, cubes []cube.Cube, code byte) {
	of := file.NIn // output field index equals the input-field count
	for _, c := range cubes {
		row := Row{In: make([]uint64, file.NIn), Out: make([]byte, file.NOut)}
		for i := 0; i < file.NIn; i++ {
			row.In[i] = c.FieldBits(i)
		}
		bits := c.FieldBits(of)
		for o := 0; o < file.NOut; o++ {
			if bits&(uint64(1)<<uint(o)) != 0 {
				row.Out[o] = code
			}
		}
		file.Rows = append(file.Rows, row)
	}
}

// WriteTo writes f as PLA text to w, following the directive grammar of
// spec 6.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	res := fmt.Sprintf(".i %d\n.o %d\n", f.NIn, f.NOut)
	if len(f.InLabels) > 0 {
		res += ".ilb"
		for _, l := range f.InLabels {
			res += fmt.Sprintf(" %s", l)
		}
		res += "\n"
	}
	if len(f.OutLabels) > 0 {
		res += ".ob"
		for _, l := range f.OutLabels {
			res += fmt.Sprintf(" %s", l)
		}
		res += "\n"
	}
	res += fmt.Sprintf(".type %s\n", typeName(f.Type))
	res += fmt.Sprintf(".p %d\n", len(f.Rows))
	for _, row := range f.Rows {
		res += fmt.Sprintf("%s %s\n", rowInString(row.In), rowOutString(row.Out))
	}
	res += ".e\n"
	n, err := io.WriteString(w, res)
	return int64(n), err
}

func typeName(t Type) string {
	switch t {
	case TypeFD:
		return "fd"
	case TypeFR:
		return "fr"
	case TypeFDR:
		return "fdr"
	default:
		return "f"
	}
}

func rowInString(parts []uint64) string {
	out := make([]byte, len(parts))
	for i, bits := range parts {
		switch bits {
		case 1:
			out[i] = '0'
		case 2:
			out[i] = '1'
		case 3:
			out[i] = '-'
		default:
			out[i] = '~'
		}
	}
	return string(out)
}

func rowOutString(codes []byte) string {
	out := make([]byte, len(codes))
	for i, c := range codes {
		switch c {
		case outOne:
			out[i] = '1'
		case outDC:
			out[i] = '-'
		default:
			out[i] = '0'
		}
	}
	return string(out)
}
