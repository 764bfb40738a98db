package minimize

import "github.com/crillab/espresso/cube"

// Enumerate walks every minterm covered by f, writing each one to minterms
// as it's discovered and closing the channel when done, mirroring
// solver.Solver.Enumerate's "write as discovered, close on completion"
// channel contract. If minterms is nil, only the count is computed. stop,
// if non-nil, can be closed by the caller to abort early; the returned
// count reflects only the minterms produced before the abort.
func Enumerate(f cube.Cube, minterms chan cube.Cube, stop chan struct{}) int {
	if minterms != nil {
		defer close(minterms)
	}
	n := 0
	enumerateField(f, 0, &n, minterms, stop)
	return n
}

func enumerateField(cur cube.Cube, field int, n *int, minterms chan cube.Cube, stop chan struct{}) bool {
	select {
	case <-stopped(stop):
		return false
	default:
	}
	layout := cur.Layout()
	if field == layout.NumFields() {
		*n++
		if minterms != nil {
			minterms <- cur.Clone()
		}
		return true
	}
	size := layout.FieldSize(field)
	for p := 0; p < size; p++ {
		if !cur.TestPart(field, p) {
			continue
		}
		next := cur.Clone()
		next = next.WithField(field, uint64(1)<<uint(p))
		if !enumerateField(next, field+1, n, minterms, stop) {
			return false
		}
	}
	return true
}

func stopped(stop chan struct{}) chan struct{} {
	if stop == nil {
		return nil
	}
	return stop
}
