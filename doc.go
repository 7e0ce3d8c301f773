// Package ridgeline finds the fewest steps across an elevation map when every
// step may descend freely but climb at most one unit.
//
// 🚀 What is ridgeline?
//
//	A small, dependency-light toolkit made of:
//		• heightmap: the rectangular elevation grid, its S/E markers and neighbours
//		• climb: uniform-cost search over that grid with a deterministic frontier
//		• cmd/ridgeline: a CLI that solves one or many map files concurrently
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl      S → E in 31 steps
//	accszExk
//	acctuvwj
//	abdefghi
//
// The graph is never built explicitly: a Grid plus its Neighbors method act as
// a lazy adjacency oracle, and climb.Climb runs Dijkstra on unit weights over it.
//
//	go install github.com/katalvlaran/ridgeline/cmd/ridgeline@latest
package ridgeline
