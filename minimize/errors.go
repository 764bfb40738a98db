package minimize

import (
	"errors"
	"fmt"

	"github.com/crillab/espresso/cover"
)

// Sentinel errors returned by Check (spec 6's "Ok | CoverageGap | OffsetConflict").
var (
	ErrOffsetConflict = errors.New("espresso: F and R share a point")
	ErrCoverageGap    = errors.New("espresso: result fails to cover an original minterm")
)

// SoftTimeoutError is returned when Options.Deadline is exceeded mid-run:
// Best is always a valid cover of F, just not necessarily minimal.
type SoftTimeoutError struct {
	Best cover.Cover
}

func (e *SoftTimeoutError) Error() string { return "espresso: deadline exceeded" }

// LimitExceededError is returned when the exact solver's covering table
// would exceed Options.MaxTableSize.
type LimitExceededError struct {
	TableSize, Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("espresso: covering table size %d exceeds limit %d", e.TableSize, e.Limit)
}
