// Package pla parses and prints the PLA file format (spec 6): the
// line-oriented text representation a caller uses to hand cover triples
// to the core and get them back. The core itself never touches a file;
// this package is the external seam spec.md §1 calls out as excluded from
// the distilled core, kept here as a thin, separately testable layer.
package pla

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/cube"
)

// Type names the PLA `.type` directive's care-set interpretation.
type Type int

const (
	TypeF  Type = iota // f: only ON-set rows given, OFF-set is everything else
	TypeFD             // fd: ON-set and DC-set rows given
	TypeFR             // fr: ON-set and OFF-set rows given
	TypeFDR            // fdr: all three given explicitly
)

// A File is the parsed form of a .pla document: directives plus raw rows,
// not yet split into F/D/R — call Cubes to do that.
type File struct {
	NIn, NOut int
	InLabels  []string
	OutLabels []string
	Type      Type
	Rows      []Row
}

// Output part codes, one per output character of a data row.
const (
	outZero byte = iota // '0': not in F, not in D
	outOne              // '1': in F
	outDC               // '-': in D
)

// A Row is one data line: per-input-field raw 2-bit part masks (ready to
// feed straight into a cube.Cube field) plus one tri-state code per
// output part.
type Row struct {
	In  []uint64
	Out []byte
}

// Parse reads a PLA document from r (spec 6's directive grammar: `.i .o
// .ilb .ob .type .p .e`), following maxsat.ParseWCNF's line-oriented
// bufio.Scanner idiom.
func Parse(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	f := &File{Type: TypeF}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line[0] == '.' {
			if err := parseDirective(f, line); err != nil {
				return nil, err
			}
			if line == ".e" {
				break
			}
			continue
		}
		row, err := parseRow(f, line)
		if err != nil {
			return nil, err
		}
		f.Rows = append(f.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pla: %v", err)
	}
	if f.NIn == 0 || f.NOut == 0 {
		return nil, fmt.Errorf("pla: missing .i/.o directive")
	}
	return f, nil
}

func parseDirective(f *File, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".i":
		n, err := intField(fields, "i")
		if err != nil {
			return err
		}
		f.NIn = n
	case ".o":
		n, err := intField(fields, "o")
		if err != nil {
			return err
		}
		f.NOut = n
	case ".p":
		// Cube count hint; the core doesn't need it, rows are self-terminating.
	case ".ilb":
		f.InLabels = append([]string(nil), fields[1:]...)
	case ".ob":
		f.OutLabels = append([]string(nil), fields[1:]...)
	case ".type":
		if len(fields) < 2 {
			return fmt.Errorf("pla: .type missing argument")
		}
		switch fields[1] {
		case "f":
			f.Type = TypeF
		case "fd":
			f.Type = TypeFD
		case "fr":
			f.Type = TypeFR
		case "fdr":
			f.Type = TypeFDR
		default:
			return fmt.Errorf("pla: unknown .type %q", fields[1])
		}
	case ".e", ".end":
		// terminator, nothing to record
	default:
		// Unrecognized directives (.phase, .kiss, ...) are accepted and ignored;
		// the core only needs the cube triples.
	}
	return nil
}

func intField(fields []string, name string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("pla: .%s missing argument", name)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("pla: .%s argument %q not an int", name, fields[1])
	}
	return n, nil
}

func parseRow(f *File, line string) (Row, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Row{}, fmt.Errorf("pla: malformed row %q", line)
	}
	inField, outField := fields[0], fields[1]
	if len(inField) != f.NIn || len(outField) != f.NOut {
		return Row{}, fmt.Errorf("pla: row %q does not match .i %d/.o %d", line, f.NIn, f.NOut)
	}
	row := Row{In: make([]uint64, f.NIn), Out: make([]byte, f.NOut)}
	for i, ch := range inField {
		bits, err := inputPartBits(ch)
		if err != nil {
			return Row{}, fmt.Errorf("pla: row %q: %v", line, err)
		}
		row.In[i] = bits
	}
	for i, ch := range outField {
		code, err := outputPartCode(ch)
		if err != nil {
			return Row{}, fmt.Errorf("pla: row %q: %v", line, err)
		}
		row.Out[i] = code
	}
	return row, nil
}

// inputPartBits maps spec 6's input character set to the two-part
// (0-part, 1-part) encoding: `1` sets the 1-part only, `0` sets the 0-part
// only, `-`/`~` sets both.
func inputPartBits(ch rune) (uint64, error) {
	switch ch {
	case '0':
		return 1, nil
	case '1':
		return 2, nil
	case '-', '~':
		return 3, nil
	default:
		return 0, fmt.Errorf("invalid input character %q", ch)
	}
}

func outputPartCode(ch rune) (byte, error) {
	switch ch {
	case '1':
		return outOne, nil
	case '0':
		return outZero, nil
	case '-':
		return outDC, nil
	default:
		return 0, fmt.Errorf("invalid output character %q", ch)
	}
}

// Cubes converts f into (F, D, R) cover triples over a two-part-per-input
// Layout (each input variable is binary, matching the character set spec
// 6 defines) with one output part per declared output. Output `1` sets
// that output bit on the F row; `-` adds the row to D for that output;
// `0` contributes nothing. `.type fr` rows are additionally split into R
// by their complement, `.type f` derives R as everything not in F ∪ D.
func (f *File) Cubes() (fCov, dCov, rCov cover.Cover) {
	sizes := make([]int, f.NIn)
	for i := range sizes {
		sizes[i] = 2
	}
	layout := cube.NewLayout(sizes, f.NOut)
	fCov, dCov, rCov = cover.New(layout), cover.New(layout), cover.New(layout)

	explicitOffset := f.Type == TypeFR || f.Type == TypeFDR
	for _, row := range f.Rows {
		base := cube.Empty(layout)
		for i, bits := range row.In {
			base = base.WithField(i, bits)
		}
		var fOut, dOut, rOut uint64
		for o, code := range row.Out {
			switch code {
			case outOne:
				fOut |= 1 << uint(o)
			case outDC:
				dOut |= 1 << uint(o)
			case outZero:
				if explicitOffset {
					rOut |= 1 << uint(o)
				}
			}
		}
		if fOut != 0 {
			fCov.Append(base.WithField(layout.OutputField(), fOut))
		}
		if dOut != 0 {
			dCov.Append(base.Clone().WithField(layout.OutputField(), dOut))
		}
		if rOut != 0 {
			rCov.Append(base.Clone().WithField(layout.OutputField(), rOut))
		}
	}
	if !explicitOffset {
		rCov = cover.Complement(cover.Union(fCov, dCov))
	}
	return fCov, dCov, rCov
}
