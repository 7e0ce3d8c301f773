// Package climb defines core types and configuration options
// for the climbing shortest-path search over a heightmap.Grid.
package climb

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed.
	ErrNilGrid = errors.New("climb: grid is nil")

	// ErrBudgetExceeded indicates the search hit the WithMaxExtractions budget
	// before reaching a terminal state.
	ErrBudgetExceeded = errors.New("climb: extraction budget exceeded")

	// ErrBadMaxExtractions indicates WithMaxExtractions received a non-positive budget.
	ErrBadMaxExtractions = errors.New("climb: MaxExtractions must be positive")
)

// Unreached is the Distance Table value of a cell no path has reached yet.
const Unreached = int(^uint(0) >> 1)

// TieBreak selects how candidates of equal cost are ordered.
// It never changes the reported distance, only the exploration order.
type TieBreak int

const (
	// TieBreakDistanceToEnd extracts the candidate closest to the end first
	// (squared Euclidean distance), then falls back to insertion order.
	TieBreakDistanceToEnd TieBreak = iota

	// TieBreakFIFO extracts equal-cost candidates in insertion order (plain Dijkstra).
	TieBreakFIFO
)

// String returns the policy name used by configuration files and flags.
func (t TieBreak) String() string {
	switch t {
	case TieBreakDistanceToEnd:
		return "distance"
	case TieBreakFIFO:
		return "fifo"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// ParseTieBreak maps "distance" or "fifo" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "distance", "":
		return TieBreakDistanceToEnd, nil
	case "fifo":
		return TieBreakFIFO, nil
	}
	return 0, fmt.Errorf("climb: unknown tie-break policy %q", s)
}

// State is the search lifecycle: Initialized → Running → {Found, Exhausted}.
type State int

const (
	// StateInitialized: start seeded in the Distance Table and the Frontier.
	StateInitialized State = iota
	// StateRunning: the extract/relax loop is active.
	StateRunning
	// StateFound: the end was extracted; Steps is final.
	StateFound
	// StateExhausted: the frontier emptied without reaching the end.
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Candidate is one frontier entry. A cell may have several live candidates
// with different costs; all but the cheapest are stale and skipped on extraction.
type Candidate struct {
	Cost     int                // steps from the start
	Pos      heightmap.Position // cell this candidate reaches
	TieBreak int                // secondary key, ascending
	seq      uint64             // insertion order, final key
}

// Stats counts the work done by one search.
type Stats struct {
	Extracted   int // candidates popped from the frontier, stale ones included
	Stale       int // popped candidates discarded as stale duplicates
	Relaxed     int // successful Distance Table improvements
	Pushed      int // candidates inserted into the frontier, the seed included
	MaxFrontier int // peak frontier size
}

// Result is the outcome of a search. An unreachable end is a valid result,
// not an error: State is StateExhausted and Steps is -1.
type Result struct {
	State State
	Steps int
	// Path lists the cells from start to end inclusive when WithReturnPath was
	// set and the end was found; nil otherwise.
	Path  []heightmap.Position
	Stats Stats
}

// Reachable reports whether the end was found.
func (r *Result) Reachable() bool { return r.State == StateFound }

// Options configures the search.
//
// TieBreak        – ordering among equal-cost candidates (default TieBreakDistanceToEnd).
// ReturnPath      – keep predecessors and fill Result.Path.
// MaxExtractions  – stop with ErrBudgetExceeded after this many extractions (0 = unbounded).
// OnExtract       – called for every candidate popped, stale ones included.
// OnRelax         – called after every successful relaxation with the new cost.
// Logger          – debug tracing of state transitions (default no-op).
type Options struct {
	TieBreak       TieBreak
	ReturnPath     bool
	MaxExtractions int
	OnExtract      func(c Candidate)
	OnRelax        func(p heightmap.Position, cost int)
	Logger         *zap.Logger
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with the distance-to-end tie-break, no path
// reconstruction, no budget, no hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakDistanceToEnd,
		Logger:   zap.NewNop(),
	}
}

// WithTieBreak sets the equal-cost ordering policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithReturnPath enables path reconstruction into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxExtractions bounds the number of frontier extractions.
// It panics immediately, when the option is constructed, if n <= 0.
func WithMaxExtractions(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxExtractions.Error())
	}
	return func(o *Options) {
		o.MaxExtractions = n
	}
}

// WithOnExtract registers a hook called for every extracted candidate.
func WithOnExtract(fn func(c Candidate)) Option {
	return func(o *Options) {
		o.OnExtract = fn
	}
}

// WithOnRelax registers a hook called after every successful relaxation.
func WithOnRelax(fn func(p heightmap.Position, cost int)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithLogger routes debug tracing to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
