package minimize

import "time"

// Strategy selects the driver's depth, a tagged variant replacing scattered
// boolean flag checks with one branch at the top of Heuristic.
type Strategy int

const (
	Default Strategy = iota
	Fast
	Strong
)

func (s Strategy) String() string {
	switch s {
	case Fast:
		return "fast"
	case Strong:
		return "strong"
	default:
		return "default"
	}
}

// Options configures a Heuristic run (spec 6's enumerated option table).
type Options struct {
	Strategy Strategy

	UnwrapOnset      bool
	RecomputeOnset   bool
	DetectEssentials bool
	FinalIrredundant bool
	SwapOnOff        bool
	RandomReduce     bool // use REDUCE's `random` (reversed-order) variant instead of the default

	Deadline     time.Time // zero value: no deadline
	Seed         int64     // seeds the *rand.Rand handed to REDUCE's `random` variant, whose reversed order draws nothing from it
	MaxTableSize int       // not read by Heuristic; exact.Minimize takes its ceiling from exact.Options.MaxTableSize
	Verbose      bool
}

// DefaultOptions returns the conventional full heuristic run: essentials
// detected, a final irredundant pass applied, no swap, no deadline.
func DefaultOptions() Options {
	return Options{
		Strategy:         Default,
		DetectEssentials: true,
		FinalIrredundant: true,
	}
}

func (o Options) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}
