// Package climb implements the climbing shortest-path search over a heightmap.Grid.
//
// Every legal move costs one step, so the search is a uniform-cost search
// (Dijkstra with unit weights) driven by a min-heap with lazy deletion:
// improved cells are pushed again and outdated entries are skipped when popped.
package climb

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// Climb computes the minimum number of steps from the grid's start marker to
// its end marker.
//
// Returns:
//
//   - a Result with State == StateFound and Steps >= 0 when the end is reachable;
//   - a Result with State == StateExhausted and Steps == -1 when it is not (err == nil);
//   - ErrNilGrid for a nil grid, ErrBudgetExceeded when WithMaxExtractions is hit.
//
// Complexity:
//
//   - Time:  O(R·C·log(R·C)); each cell is relaxed at most a handful of times.
//   - Space: O(R·C) for the Distance Table and the frontier.
func Climb(g *heightmap.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return ClimbFrom(g, g.Start(), g.End(), opts...)
}

// ClimbFrom runs the same search between two arbitrary cells of g. The cells'
// stored elevations are used as-is, so the marker elevations only apply when
// start or end coincide with the marker cells.
// Out-of-range endpoints return an error wrapping heightmap.ErrOutOfBounds.
func ClimbFrom(g *heightmap.Grid, start, end heightmap.Position, opts ...Option) (*Result, error) {
	// 1) Validate the grid and both endpoints.
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, p := range []heightmap.Position{start, end} {
		if _, err := g.Elevation(p); err != nil {
			return nil, fmt.Errorf("climb: endpoint: %w", err)
		}
	}

	// 2) Build Options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Seed the frontier with start, then run the extract/relax loop.
	r := newRunner(g, start, end, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single search. Nothing in it is shared.
type runner struct {
	grid     *heightmap.Grid
	opts     Options
	log      *zap.Logger
	start    heightmap.Position
	end      heightmap.Position
	endIdx   int
	dist     *DistanceTable
	prev     []int // predecessor index per cell, only with ReturnPath
	frontier *Frontier
	state    State
	steps    int
	stats    Stats
	buf      []heightmap.Position // neighbour scratch buffer
}

func newRunner(g *heightmap.Grid, start, end heightmap.Position, cfg Options) *runner {
	rows, cols := g.Dimensions()
	r := &runner{
		grid:     g,
		opts:     cfg,
		log:      cfg.Logger,
		start:    start,
		end:      end,
		endIdx:   g.Index(end),
		dist:     NewDistanceTable(rows, cols),
		frontier: NewFrontier(cfg.TieBreak),
		steps:    -1,
		buf:      make([]heightmap.Position, 0, 4),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Len())
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	return r
}

// init seeds the Distance Table and the frontier with the start cell.
func (r *runner) init() {
	r.dist.Relax(r.grid.Index(r.start), 0)
	r.push(r.start, 0)
	r.state = StateInitialized

	r.log.Debug("climb initialized",
		zap.Stringer("start", r.start),
		zap.Stringer("end", r.end),
		zap.Stringer("tie_break", r.opts.TieBreak),
	)
}

// process is the extract/relax loop. It ends in StateFound or StateExhausted,
// or returns ErrBudgetExceeded.
func (r *runner) process() error {
	r.state = StateRunning
	for {
		// 1) An empty frontier means every reachable cell has been settled.
		if r.frontier.Len() == 0 {
			r.state = StateExhausted
			r.log.Debug("climb exhausted", zap.Int("extracted", r.stats.Extracted))
			return nil
		}
		// 2) Stop before exceeding the extraction budget.
		if r.opts.MaxExtractions > 0 && r.stats.Extracted >= r.opts.MaxExtractions {
			r.log.Debug("climb budget exceeded", zap.Int("budget", r.opts.MaxExtractions))
			return fmt.Errorf("%w: %d extractions without reaching %v",
				ErrBudgetExceeded, r.opts.MaxExtractions, r.end)
		}

		// 3) Pop the cheapest candidate.
		c, _ := r.frontier.ExtractMin()
		r.stats.Extracted++
		if r.opts.OnExtract != nil {
			r.opts.OnExtract(c)
		}

		// 4) Unit weights: the first extraction of the end carries its shortest distance.
		if c.Pos == r.end {
			r.state = StateFound
			r.steps = c.Cost
			r.log.Debug("climb found",
				zap.Int("steps", c.Cost),
				zap.Int("extracted", r.stats.Extracted),
			)
			return nil
		}

		// 5) Skip an outdated duplicate. Unit weights with a strict Relax never push one
		// through Climb; the skip keeps process correct for any seeded frontier.
		idx := r.grid.Index(c.Pos)
		if c.Cost > r.dist.Get(idx) {
			r.stats.Stale++
			continue
		}
		// 6) Relax every legal move out of this cell.
		r.expand(c, idx)
	}
}

// expand relaxes every legal move out of the candidate's cell.
func (r *runner) expand(c Candidate, idx int) {
	from := r.grid.ElevationAt(idx)
	next := c.Cost + 1

	r.buf = r.grid.AppendNeighbors(r.buf[:0], c.Pos)
	for _, n := range r.buf {
		// Illegal climbs and non-improving offers are dropped.
		ni := r.grid.Index(n)
		if !heightmap.Climbable(from, r.grid.ElevationAt(ni)) {
			continue
		}
		if !r.dist.Relax(ni, next) {
			continue
		}
		r.stats.Relaxed++
		if r.prev != nil {
			r.prev[ni] = idx
		}
		if r.opts.OnRelax != nil {
			r.opts.OnRelax(n, next)
		}
		r.push(n, next)
	}
}

func (r *runner) push(p heightmap.Position, cost int) {
	r.frontier.Insert(Candidate{
		Cost:     cost,
		Pos:      p,
		TieBreak: heightmap.SquaredDistance(p, r.end),
	})
	r.stats.Pushed++
	if n := r.frontier.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
}

func (r *runner) result() *Result {
	res := &Result{State: r.state, Steps: r.steps, Stats: r.stats}
	if r.state == StateFound && r.prev != nil {
		res.Path = r.path()
	}
	return res
}

// path walks the predecessor chain back from the end.
func (r *runner) path() []heightmap.Position {
	out := make([]heightmap.Position, r.steps+1)
	at := r.endIdx
	for i := r.steps; i >= 0; i-- {
		out[i] = r.grid.Position(at)
		at = r.prev[at]
	}
	return out
}
