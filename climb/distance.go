package climb

import "github.com/katalvlaran/ridgeline/heightmap"

// DistanceTable records the best known cost per cell, indexed row-major.
// Costs only ever decrease; Relax is the single mutation point.
type DistanceTable struct {
	cols int
	dist []int
}

// NewDistanceTable returns a rows×cols table with every cell Unreached.
func NewDistanceTable(rows, cols int) *DistanceTable {
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = Unreached
	}
	return &DistanceTable{cols: cols, dist: dist}
}

// Get returns the cost recorded for idx, or Unreached.
func (t *DistanceTable) Get(idx int) int { return t.dist[idx] }

// Relax stores cost at idx if it is strictly lower than the current value and
// reports whether it did. A repeated or worse cost leaves the table untouched.
func (t *DistanceTable) Relax(idx, cost int) bool {
	if cost >= t.dist[idx] {
		return false
	}
	t.dist[idx] = cost
	return true
}

// GetPos is Get keyed by position.
func (t *DistanceTable) GetPos(p heightmap.Position) int {
	return t.Get(p.Row*t.cols + p.Col)
}

// RelaxPos is Relax keyed by position.
func (t *DistanceTable) RelaxPos(p heightmap.Position, cost int) bool {
	return t.Relax(p.Row*t.cols+p.Col, cost)
}
