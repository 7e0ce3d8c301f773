package heightmap

import (
	"fmt"
	"strconv"
	"strings"
)

// FromRows builds a Grid from a character map. Each row is one line of the map;
// 'a'..'z' are elevations 0..25, 'S' marks the start (elevation 'a') and 'E'
// marks the end (elevation 'z'). Exactly one of each marker must be present.
//
// Every error wraps ErrMalformedGrid together with the specific cause
// (ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMarkerNotFound, ErrDuplicateMarker).
//
// Complexity: O(R×C) time and memory.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	// 1) Build and validate Options. The letter alphabet is fixed.
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.MinElev, o.MaxElev = MinElevation, MaxElevation

	// 2) Validate the map is a non-empty rectangle.
	r, c, err := shape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}

	// 3) Decode every cell, collecting marker positions as they appear.
	gg := newGrid(r, c, o)
	gg.src = make([]byte, r*c)
	var starts, ends []Position
	for y, line := range rows {
		for x := 0; x < c; x++ {
			ch := line[x]
			i := y*c + x
			gg.src[i] = ch
			switch {
			case ch == byte(MarkerStart):
				starts = append(starts, Position{y, x})
			case ch == byte(MarkerEnd):
				ends = append(ends, Position{y, x})
			case ch >= 'a' && ch <= 'z':
				gg.elev[i] = int(ch - 'a')
			default:
				return nil, fmt.Errorf("%w: %w: %q at %v", ErrMalformedGrid, ErrInvalidCell, ch, Position{y, x})
			}
		}
	}
	// 4) Exactly one start and one end, then pin their elevations.
	if gg.start, err = single(MarkerStart, starts); err != nil {
		return nil, err
	}
	if gg.end, err = single(MarkerEnd, ends); err != nil {
		return nil, err
	}
	gg.pinMarkers()

	return gg, nil
}

// FromElevations builds a Grid from integer elevations and explicit marker
// positions. The input is deep-copied. The values stored at start and end are
// replaced by the alphabet bounds (see WithElevationRange), so the markers
// behave exactly as 'S' and 'E' do in FromRows.
//
// start == end is allowed and describes a zero-length search.
//
// Complexity: O(R×C) time and memory.
func FromElevations(values [][]int, start, end Position, opts ...Option) (*Grid, error) {
	// 1) Build and validate Options (neighbour order, elevation range).
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	// 2) Validate the map is a non-empty rectangle.
	r, c, err := shape(len(values), func(i int) int { return len(values[i]) })
	if err != nil {
		return nil, err
	}

	// 3) Copy values, rejecting anything outside the alphabet.
	gg := newGrid(r, c, o)
	for y, row := range values {
		for x, v := range row {
			if v < o.MinElev || v > o.MaxElev {
				return nil, fmt.Errorf("%w: %w: %d at %v not in [%d,%d]",
					ErrMalformedGrid, ErrInvalidCell, v, Position{y, x}, o.MinElev, o.MaxElev)
			}
			gg.elev[y*c+x] = v
		}
	}
	// 4) Markers must lie on the grid; their elevations are then pinned.
	for _, m := range []struct {
		marker Marker
		pos    Position
	}{{MarkerStart, start}, {MarkerEnd, end}} {
		if !gg.InBounds(m.pos) {
			return nil, fmt.Errorf("%w: %w: %s at %v", ErrMalformedGrid, ErrMarkerNotFound, m.marker, m.pos)
		}
	}
	gg.start, gg.end = start, end
	gg.pinMarkers()

	return gg, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// shape validates that n rows of lengths width(i) form a non-empty rectangle.
func shape(n int, width func(i int) int) (rows, cols int, err error) {
	if n == 0 || width(0) == 0 {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}
	cols = width(0)
	for i := 1; i < n; i++ {
		if w := width(i); w != cols {
			return 0, 0, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrMalformedGrid, ErrNonRectangular, i, w, cols)
		}
	}
	return n, cols, nil
}

func single(m Marker, found []Position) (Position, error) {
	switch len(found) {
	case 0:
		return Position{}, fmt.Errorf("%w: %w: %s", ErrMalformedGrid, ErrMarkerNotFound, m)
	case 1:
		return found[0], nil
	default:
		return Position{}, fmt.Errorf("%w: %w: %s at %v", ErrMalformedGrid, ErrDuplicateMarker, m, found)
	}
}

func newGrid(rows, cols int, o Options) *Grid {
	offsets := make([][2]int, 0, len(o.Order))
	for _, d := range o.Order {
		offsets = append(offsets, d.offset())
	}
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		elev:    make([]int, rows*cols),
		minElev: o.MinElev,
		maxElev: o.MaxElev,
		offsets: offsets,
	}
}

// pinMarkers applies the nominal marker elevations. The end is written last so
// that a single-cell grid with start == end reads as the maximum.
func (gg *Grid) pinMarkers() {
	gg.elev[gg.Index(gg.start)] = gg.minElev
	gg.elev[gg.Index(gg.end)] = gg.maxElev
}

// Dimensions returns (rows, cols).
func (gg *Grid) Dimensions() (rows, cols int) {
	return gg.Rows, gg.Cols
}

// InBounds reports whether p lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (gg *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// Index maps p to its row-major index: Row*Cols + Col. p must be in bounds.
func (gg *Grid) Index(p Position) int {
	return p.Row*gg.Cols + p.Col
}

// Position converts a row-major index back to a Position.
func (gg *Grid) Position(idx int) Position {
	return Position{Row: idx / gg.Cols, Col: idx % gg.Cols}
}

// Len returns the number of cells.
func (gg *Grid) Len() int { return len(gg.elev) }

// Elevation returns the elevation at p. The start marker reads as the
// alphabet minimum and the end marker as the alphabet maximum.
// Returns an error wrapping ErrOutOfBounds if p is outside the grid.
func (gg *Grid) Elevation(p Position) (int, error) {
	if !gg.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, gg.Rows, gg.Cols)
	}
	return gg.elev[gg.Index(p)], nil
}

// ElevationAt is the index form of Elevation used on hot paths. idx must be valid.
func (gg *Grid) ElevationAt(idx int) int {
	return gg.elev[idx]
}

// Locate returns the position of marker m.
// Markers are validated during construction, so only an unknown marker byte fails.
func (gg *Grid) Locate(m Marker) (Position, error) {
	switch m {
	case MarkerStart:
		return gg.start, nil
	case MarkerEnd:
		return gg.end, nil
	}
	return Position{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, byte(m))
}

// Start returns the start marker's position.
func (gg *Grid) Start() Position { return gg.start }

// End returns the end marker's position.
func (gg *Grid) End() Position { return gg.end }

// ElevationRange returns the alphabet bounds (min, max).
func (gg *Grid) ElevationRange() (min, max int) { return gg.minElev, gg.maxElev }

// CanMove reports whether stepping from one cell to another is legal: the
// destination may be lower, level, or at most one unit higher.
// Adjacency is not checked; use Neighbors for that.
func (gg *Grid) CanMove(from, to Position) (bool, error) {
	ef, err := gg.Elevation(from)
	if err != nil {
		return false, err
	}
	et, err := gg.Elevation(to)
	if err != nil {
		return false, err
	}
	return Climbable(ef, et), nil
}

// Climbable is the elevation rule behind CanMove, written without subtraction.
func Climbable(from, to int) bool {
	return to <= from+1
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Position) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr + dc*dc
}

// String renders the grid as text, one line per row. Grids built by FromRows
// reproduce their source; integer grids print space-separated elevations with
// S and E at the markers.
func (gg *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < gg.Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if gg.src != nil {
			sb.Write(gg.src[y*gg.Cols : (y+1)*gg.Cols])
			continue
		}
		for x := 0; x < gg.Cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			p := Position{y, x}
			switch p {
			case gg.start:
				sb.WriteByte(byte(MarkerStart))
			case gg.end:
				sb.WriteByte(byte(MarkerEnd))
			default:
				sb.WriteString(strconv.Itoa(gg.elev[gg.Index(p)]))
			}
		}
	}
	return sb.String()
}
