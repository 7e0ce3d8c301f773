package heightmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// hillRows is the canonical 5×8 hill map; S at (0,0), E at (2,5).
var hillRows = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects structurally invalid maps
// and that every failure is reported as ErrMalformedGrid plus the precise cause.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		cause error
	}{
		{"NilRows", nil, heightmap.ErrEmptyGrid},
		{"EmptyRow", []string{""}, heightmap.ErrEmptyGrid},
		{"Ragged", []string{"Sab", "cE"}, heightmap.ErrNonRectangular},
		{"InvalidChar", []string{"S#E"}, heightmap.ErrInvalidCell},
		{"UpperCase", []string{"SAE"}, heightmap.ErrInvalidCell},
		{"MissingStart", []string{"abE"}, heightmap.ErrMarkerNotFound},
		{"MissingEnd", []string{"Sbc"}, heightmap.ErrMarkerNotFound},
		{"DuplicateStart", []string{"SbS", "aEa"}, heightmap.ErrDuplicateMarker},
		{"DuplicateEnd", []string{"SbE", "aEa"}, heightmap.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := heightmap.FromRows(tc.rows)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, heightmap.ErrMalformedGrid)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

// TestFromRows_Markers checks marker lookup and the nominal marker elevations.
func TestFromRows_Markers(t *testing.T) {
	g, err := heightmap.FromRows(hillRows)
	require.NoError(t, err)

	rows, cols := g.Dimensions()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 8, cols)

	start, err := g.Locate(heightmap.MarkerStart)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Position{Row: 0, Col: 0}, start)
	assert.Equal(t, start, g.Start())

	end, err := g.Locate(heightmap.MarkerEnd)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Position{Row: 2, Col: 5}, end)
	assert.Equal(t, end, g.End())

	elev, err := g.Elevation(start)
	require.NoError(t, err)
	assert.Equal(t, heightmap.MinElevation, elev)

	elev, err = g.Elevation(end)
	require.NoError(t, err)
	assert.Equal(t, heightmap.MaxElevation, elev)

	// 'q' at (0,3)
	elev, err = g.Elevation(heightmap.Position{Row: 0, Col: 3})
	require.NoError(t, err)
	assert.Equal(t, int('q'-'a'), elev)

	_, err = g.Locate(heightmap.Marker('X'))
	assert.ErrorIs(t, err, heightmap.ErrMarkerNotFound)
}

// TestElevation_OutOfBounds probes every side of a 5×8 grid.
func TestElevation_OutOfBounds(t *testing.T) {
	g, err := heightmap.FromRows(hillRows)
	require.NoError(t, err)

	for _, p := range []heightmap.Position{{-1, 0}, {0, -1}, {5, 0}, {0, 8}, {5, 8}} {
		_, err := g.Elevation(p)
		if !errors.Is(err, heightmap.ErrOutOfBounds) {
			t.Errorf("Elevation(%v) error = %v; want ErrOutOfBounds", p, err)
		}
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true; want false", p)
		}
	}
}

// TestFromElevations covers the integer constructor, its alphabet option and
// marker pinning.
func TestFromElevations(t *testing.T) {
	values := [][]int{
		{3, 0, 3},
		{2, 5, 5},
	}
	start := heightmap.Position{Row: 0, Col: 0}
	end := heightmap.Position{Row: 1, Col: 2}

	g, err := heightmap.FromElevations(values, start, end, heightmap.WithElevationRange(0, 9))
	require.NoError(t, err)

	min, max := g.ElevationRange()
	assert.Equal(t, 0, min)
	assert.Equal(t, 9, max)

	e, _ := g.Elevation(start)
	assert.Equal(t, 0, e, "start reads as alphabet minimum")
	e, _ = g.Elevation(end)
	assert.Equal(t, 9, e, "end reads as alphabet maximum")
	e, _ = g.Elevation(heightmap.Position{Row: 1, Col: 1})
	assert.Equal(t, 5, e)

	// Input is deep-copied.
	values[1][1] = 7
	e, _ = g.Elevation(heightmap.Position{Row: 1, Col: 1})
	assert.Equal(t, 5, e)
}

func TestFromElevations_Errors(t *testing.T) {
	ok := [][]int{{1, 2}, {3, 4}}
	p00 := heightmap.Position{Row: 0, Col: 0}
	p11 := heightmap.Position{Row: 1, Col: 1}

	_, err := heightmap.FromElevations(nil, p00, p00)
	assert.ErrorIs(t, err, heightmap.ErrEmptyGrid)

	_, err = heightmap.FromElevations([][]int{{1, 2}, {3}}, p00, p00)
	assert.ErrorIs(t, err, heightmap.ErrNonRectangular)

	_, err = heightmap.FromElevations([][]int{{1, 26}}, p00, p00)
	assert.ErrorIs(t, err, heightmap.ErrInvalidCell)

	_, err = heightmap.FromElevations([][]int{{-1, 0}}, p00, p00)
	assert.ErrorIs(t, err, heightmap.ErrInvalidCell)

	_, err = heightmap.FromElevations(ok, p00, heightmap.Position{Row: 2, Col: 0})
	assert.ErrorIs(t, err, heightmap.ErrMalformedGrid)
	assert.ErrorIs(t, err, heightmap.ErrMarkerNotFound)

	_, err = heightmap.FromElevations(ok, p00, p11, heightmap.WithElevationRange(5, 2))
	assert.ErrorIs(t, err, heightmap.ErrBadElevationRange)

	_, err = heightmap.FromElevations(ok, p00, p11, heightmap.WithElevationRange(-1, 2))
	assert.ErrorIs(t, err, heightmap.ErrBadElevationRange)
}

// TestFromElevations_SingleCell: start == end is a valid one-cell map.
func TestFromElevations_SingleCell(t *testing.T) {
	p := heightmap.Position{}
	g, err := heightmap.FromElevations([][]int{{4}}, p, p)
	require.NoError(t, err)
	assert.Equal(t, g.Start(), g.End())
	assert.Equal(t, 1, g.Len())
}

// TestElevationRange_Defaults: both constructors report the letter alphabet as
// plain ints, comparable with the values Elevation returns.
func TestElevationRange_Defaults(t *testing.T) {
	g, err := heightmap.FromRows([]string{"SzE"})
	require.NoError(t, err)
	lo, hi := g.ElevationRange()
	assert.Equal(t, heightmap.MinElevation, lo)
	assert.Equal(t, heightmap.MaxElevation, hi)
	assert.Equal(t, 25, heightmap.MaxElevation)

	elev, err := g.Elevation(heightmap.Position{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, heightmap.MaxElevation, elev)

	p := heightmap.Position{}
	g, err = heightmap.FromElevations([][]int{{3, 7}}, p, heightmap.Position{Col: 1})
	require.NoError(t, err)
	lo, hi = g.ElevationRange()
	assert.Equal(t, heightmap.MinElevation, lo)
	assert.Equal(t, heightmap.MaxElevation, hi)
}

//----------------------------------------------------------------------------//
// Move legality
//----------------------------------------------------------------------------//

// TestClimbable checks the rule at its boundary: drops of any size, level moves
// and +1 climbs are legal; +2 is not. The large drops would wrap with unsigned
// subtraction.
func TestClimbable(t *testing.T) {
	cases := []struct {
		from, to int
		want     bool
	}{
		{5, 0, true},
		{5, 4, true},
		{5, 5, true},
		{5, 6, true},
		{5, 7, false},
		{0, 2, false},
		{25, 0, true},
		{0, 25, false},
	}
	for _, tc := range cases {
		if got := heightmap.Climbable(tc.from, tc.to); got != tc.want {
			t.Errorf("Climbable(%d,%d) = %v; want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanMove(t *testing.T) {
	g, err := heightmap.FromRows([]string{"Sbcd", "zyxE"})
	require.NoError(t, err)

	legal, err := g.CanMove(heightmap.Position{Row: 0, Col: 0}, heightmap.Position{Row: 0, Col: 1}) // a→b
	require.NoError(t, err)
	assert.True(t, legal)

	legal, err = g.CanMove(heightmap.Position{Row: 0, Col: 1}, heightmap.Position{Row: 0, Col: 3}) // b→d
	require.NoError(t, err)
	assert.False(t, legal)

	legal, err = g.CanMove(heightmap.Position{Row: 1, Col: 0}, heightmap.Position{Row: 0, Col: 0}) // z→S
	require.NoError(t, err)
	assert.True(t, legal)

	_, err = g.CanMove(heightmap.Position{Row: 0, Col: 0}, heightmap.Position{Row: 2, Col: 0})
	assert.ErrorIs(t, err, heightmap.ErrOutOfBounds)
}

func TestSquaredDistance(t *testing.T) {
	a := heightmap.Position{Row: 0, Col: 0}
	b := heightmap.Position{Row: 2, Col: 5}
	assert.Equal(t, 29, heightmap.SquaredDistance(a, b))
	assert.Equal(t, 29, heightmap.SquaredDistance(b, a))
	assert.Equal(t, 0, heightmap.SquaredDistance(b, b))
}

//----------------------------------------------------------------------------//
// Rendering and indexing
//----------------------------------------------------------------------------//

func TestString(t *testing.T) {
	g, err := heightmap.FromRows(hillRows)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(hillRows, "\n"), g.String())

	ig, err := heightmap.FromElevations([][]int{{1, 2}, {3, 4}},
		heightmap.Position{Row: 0, Col: 0}, heightmap.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "S 2\n3 E", ig.String())
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := heightmap.FromRows(hillRows)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Position(i)
		assert.True(t, g.InBounds(p))
		assert.Equal(t, i, g.Index(p))
	}
}
