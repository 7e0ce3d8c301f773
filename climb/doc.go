// Package climb finds the fewest steps from a start cell to an end cell of a
// heightmap.Grid when every step may descend any amount but climb at most one unit.
//
// Overview:
//
//   - The grid is an implicit graph: cells are vertices and legal orthogonal
//     moves are unit-weight edges. Nothing is materialised up front.
//   - A Frontier (min-heap) orders candidates by cost, then by squared distance
//     to the end, then by insertion order. The secondary key only reorders ties,
//     so the reported distance is the same under every policy.
//   - A DistanceTable keeps the best known cost per cell. Relax is the only
//     mutation and succeeds on strict improvement only.
//   - Stale frontier entries are not removed eagerly; they are recognised on
//     extraction (cost greater than the table entry) and skipped.
//
// Lifecycle:
//
//	Initialized ──► Running ──► Found(steps)
//	                   │
//	                   └──────► Exhausted (no path; a result, not an error)
//
// Key features:
//
//   - WithTieBreak: TieBreakDistanceToEnd (default) or TieBreakFIFO.
//   - WithReturnPath: reconstruct the start→end cell sequence.
//   - WithMaxExtractions: bound the work; exceeding it returns ErrBudgetExceeded.
//   - WithOnExtract / WithOnRelax: observation hooks.
//   - WithLogger: zap debug tracing of state transitions.
//
// Concurrency:
//
//   - A search is single-threaded and owns its DistanceTable and Frontier.
//   - The Grid is read-only; any number of searches may share it.
//
// Errors (sentinel):
//
//   - ErrNilGrid: nil grid.
//   - ErrBudgetExceeded: extraction budget reached before a terminal state.
//   - heightmap.ErrOutOfBounds (wrapped): ClimbFrom endpoint outside the grid.
//
// Example:
//
//	g, err := heightmap.FromRows(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := climb.Climb(g, climb.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable() {
//	    fmt.Println(res.Steps, len(res.Path))
//	}
package climb
