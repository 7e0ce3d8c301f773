// Package heightmap treats a rectangular elevation map as an implicit graph,
// the input side of a climbing shortest-path search.
//
// What:
//
//   - Grid wraps a rectangular elevation map with exactly one start and one end marker.
//   - Elevation, Locate and Dimensions answer read-only queries.
//   - Neighbors enumerates the in-bounds orthogonal cells of a position.
//   - CanMove/Climbable decide whether a step is legal: any descent, a level
//     move, or a climb of exactly one unit.
//
// The graph is never materialised; Grid plus Neighbors act as a lazy adjacency
// oracle, so memory stays proportional to Rows×Cols.
//
// Construction:
//
//   - FromRows: character map, 'a'..'z' with 'S' (start, reads as 'a') and 'E' (end, reads as 'z').
//   - FromElevations: integer map plus explicit start/end positions; the alphabet
//     defaults to [0,25] and can be changed with WithElevationRange.
//
// Complexity:
//
//   - FromRows / FromElevations: O(R×C) time and memory.
//   - Elevation, InBounds, Index, Neighbors: O(1).
//
// Options:
//
//   - WithNeighborOrder: permutation of Up, Down, Left, Right (default in that order).
//   - WithElevationRange: alphabet bounds for FromElevations.
//
// Errors:
//
//   - ErrMalformedGrid: wraps every construction failure, together with one of
//     ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMarkerNotFound, ErrDuplicateMarker.
//   - ErrOutOfBounds: a position outside the grid was queried.
//   - ErrBadNeighborOrder, ErrBadElevationRange: invalid options.
package heightmap
