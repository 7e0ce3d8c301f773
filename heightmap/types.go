// Package heightmap defines core types, options, and sentinel errors
// for the heightmap subpackage of github.com/katalvlaran/ridgeline.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap operations.
//
// Every construction failure wraps ErrMalformedGrid, so callers that only care
// whether the input was structurally valid can test a single sentinel:
//
//	if errors.Is(err, heightmap.ErrMalformedGrid) { ... }
var (
	// ErrMalformedGrid is the umbrella error for any structural violation of the input.
	ErrMalformedGrid = errors.New("heightmap: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCell indicates a character or elevation outside the alphabet.
	ErrInvalidCell = errors.New("heightmap: cell outside the elevation alphabet")
	// ErrMarkerNotFound indicates the requested marker does not occur in the grid.
	ErrMarkerNotFound = errors.New("heightmap: marker not found")
	// ErrDuplicateMarker indicates a marker occurs more than once.
	ErrDuplicateMarker = errors.New("heightmap: marker occurs more than once")
	// ErrOutOfBounds indicates a position outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("heightmap: position out of bounds")
	// ErrBadNeighborOrder indicates WithNeighborOrder did not receive a permutation
	// of the four orthogonal directions.
	ErrBadNeighborOrder = errors.New("heightmap: neighbor order must be a permutation of Up, Down, Left, Right")
	// ErrBadElevationRange indicates WithElevationRange received min > max or a negative bound.
	ErrBadElevationRange = errors.New("heightmap: elevation range must satisfy 0 <= min <= max")
)

// Elevation bounds of the letter alphabet used by FromRows: 'a' is MinElevation, 'z' is MaxElevation.
const (
	MinElevation int = 0
	MaxElevation int = 'z' - 'a'
)

// Marker is the source character that tags a distinguished cell.
type Marker byte

const (
	// MarkerStart tags the cell the search begins from.
	MarkerStart Marker = 'S'
	// MarkerEnd tags the cell the search must reach.
	MarkerEnd Marker = 'E'
)

// String returns the marker's character.
func (m Marker) String() string { return string(rune(m)) }

// Position is a (row, column) pair. It is a plain value and can be used as a map key.
type Position struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Direction names one of the four orthogonal moves.
type Direction int

const (
	// Up decrements the row.
	Up Direction = iota
	// Down increments the row.
	Down
	// Left decrements the column.
	Left
	// Right increments the column.
	Right
)

// offset returns the (dRow, dCol) step of d.
func (d Direction) offset() [2]int {
	switch d {
	case Up:
		return [2]int{-1, 0}
	case Down:
		return [2]int{1, 0}
	case Left:
		return [2]int{0, -1}
	default:
		return [2]int{0, 1}
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Order is the neighbour enumeration order. It only affects exploration
	// order among equal-priority candidates, never reported distances.
	Order []Direction
	// MinElev and MaxElev bound the elevation alphabet for FromElevations.
	// The start marker reads as MinElev, the end marker as MaxElev.
	// FromRows always uses the letter alphabet [MinElevation, MaxElevation].
	MinElev, MaxElev int

	// internal error recorded during option parsing
	err error
}

// Option configures grid construction via functional arguments.
// Invalid options are recorded and surfaced by the constructor.
type Option func(*Options)

// DefaultOptions returns Options with default settings:
// Order = Up, Down, Left, Right; elevation alphabet = [MinElevation, MaxElevation].
func DefaultOptions() Options {
	return Options{
		Order:   []Direction{Up, Down, Left, Right},
		MinElev: MinElevation,
		MaxElev: MaxElevation,
	}
}

// WithNeighborOrder sets the neighbour enumeration order.
// order must name each of Up, Down, Left, Right exactly once.
func WithNeighborOrder(order ...Direction) Option {
	return func(o *Options) {
		var seen [4]bool
		if len(order) != len(seen) {
			o.err = ErrBadNeighborOrder
			return
		}
		for _, d := range order {
			if d < Up || d > Right || seen[d] {
				o.err = ErrBadNeighborOrder
				return
			}
			seen[d] = true
		}
		o.Order = append([]Direction(nil), order...)
	}
}

// WithElevationRange sets the elevation alphabet used by FromElevations.
func WithElevationRange(min, max int) Option {
	return func(o *Options) {
		if min < 0 || min > max {
			o.err = ErrBadElevationRange
			return
		}
		o.MinElev, o.MaxElev = min, max
	}
}

// Grid is an immutable rectangular elevation map with one start and one end marker.
// Rows and Cols define dimensions; cells are stored row-major.
// A Grid is safe for concurrent reads by any number of searches.
type Grid struct {
	Rows, Cols int

	elev    []int  // elevation per cell, markers already normalised
	src     []byte // source character per cell; 0 when built from integers
	start   Position
	end     Position
	minElev int
	maxElev int
	offsets [][2]int // precomputed from Options.Order
}
