package heightmap

// Neighbors returns the in-bounds orthogonal neighbours of p in the order set
// by WithNeighborOrder. The result has between 0 and 4 entries; it is empty
// when p itself is out of bounds.
//
// Complexity: O(1).
func (gg *Grid) Neighbors(p Position) []Position {
	return gg.AppendNeighbors(make([]Position, 0, len(gg.offsets)), p)
}

// AppendNeighbors appends the neighbours of p to dst and returns the extended
// slice. Search loops reuse one buffer across iterations to stay allocation-free.
func (gg *Grid) AppendNeighbors(dst []Position, p Position) []Position {
	if !gg.InBounds(p) {
		return dst
	}
	for _, d := range gg.offsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if gg.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// NeighborOrder returns a copy of the configured enumeration order.
func (gg *Grid) NeighborOrder() []Direction {
	out := make([]Direction, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		for _, dir := range []Direction{Up, Down, Left, Right} {
			if dir.offset() == d {
				out = append(out, dir)
				break
			}
		}
	}
	return out
}
