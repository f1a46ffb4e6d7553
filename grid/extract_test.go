package grid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSingleObject(t *testing.T) {
	g := Grid{
		{10, 10, 0},
		{10, 10, 0},
		{0, 0, 0},
	}

	objects, err := Extract(g, 5, 1)
	require.NoError(t, err)
	require.Len(t, objects, 1)

	o := objects[0]
	assert.Equal(t, 4, o.Area)
	assert.InDelta(t, 10.0, o.MaxValue, 1e-12)
	assert.InDelta(t, 10.0, o.AvgValue, 1e-12)
	assert.Equal(t, orb.Point{0.5, 0.5}, o.Centroid)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, o.Bounds)
}

func TestExtractEmptyGrid(t *testing.T) {
	objects, err := Extract(Grid{}, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, objects)

	objects, err = Extract(nil, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestExtractNothingAboveThreshold(t *testing.T) {
	g := Grid{
		{1, 2},
		{3, 4},
	}

	objects, err := Extract(g, 10, 1)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestExtractThresholdAtMaxIsStrict(t *testing.T) {
	g := Grid{
		{4, 4},
		{4, 4},
	}

	// Strict inequality: cells equal to the threshold do not qualify.
	objects, err := Extract(g, 4, 1)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestExtractMinAreaFilter(t *testing.T) {
	g := Grid{
		{9, 0, 9, 9},
		{0, 0, 9, 9},
		{0, 0, 0, 0},
	}

	objects, err := Extract(g, 5, 2)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, 4, objects[0].Area)

	// All extracted objects respect minArea.
	for _, o := range objects {
		assert.GreaterOrEqual(t, o.Area, 2)
	}
}

func TestExtractDiagonalIsNotConnected(t *testing.T) {
	g := Grid{
		{9, 0},
		{0, 9},
	}

	objects, err := Extract(g, 5, 1)
	require.NoError(t, err)
	assert.Len(t, objects, 2)
}

func TestExtractDiscoveryOrder(t *testing.T) {
	g := Grid{
		{0, 9, 0},
		{0, 0, 0},
		{9, 0, 9},
	}

	objects, err := Extract(g, 5, 1)
	require.NoError(t, err)
	require.Len(t, objects, 3)

	// Row-major scan order: (0,1), (2,0), (2,2).
	assert.Equal(t, []int{1}, objects[0].Cells)
	assert.Equal(t, []int{6}, objects[1].Cells)
	assert.Equal(t, []int{8}, objects[2].Cells)
}

func TestExtractComponentsAreDisjoint(t *testing.T) {
	g := Grid{
		{9, 9, 0, 9},
		{9, 0, 0, 9},
		{0, 0, 9, 9},
		{9, 0, 9, 0},
	}

	objects, err := Extract(g, 5, 1)
	require.NoError(t, err)

	exceeding := 0
	for _, row := range g {
		for _, v := range row {
			if v > 5 {
				exceeding++
			}
		}
	}

	claimed := make(map[int]bool)
	total := 0
	for _, o := range objects {
		require.Equal(t, o.Area, len(o.Cells))
		for _, c := range o.Cells {
			assert.False(t, claimed[c], "cell %d claimed twice", c)
			claimed[c] = true
		}
		total += o.Area
	}

	assert.LessOrEqual(t, total, exceeding)
}

func TestExtractValueAggregates(t *testing.T) {
	g := Grid{
		{6, 8, 0},
		{10, 0, 0},
	}

	objects, err := Extract(g, 5, 1)
	require.NoError(t, err)
	require.Len(t, objects, 1)

	assert.Equal(t, 3, objects[0].Area)
	assert.InDelta(t, 10.0, objects[0].MaxValue, 1e-12)
	assert.InDelta(t, 8.0, objects[0].AvgValue, 1e-12)
}

func TestExtractNonRectangular(t *testing.T) {
	g := Grid{
		{1, 2, 3},
		{1, 2},
	}

	_, err := Extract(g, 0, 1)
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestExtractInvalidMinArea(t *testing.T) {
	_, err := Extract(Grid{{1}}, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidMinArea)
}

func TestExtractLargeComponent(t *testing.T) {
	// A 100x100 grid entirely above threshold collapses to one object.
	const n = 100
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]float64, n)
		for c := range g[r] {
			g[r][c] = 1
		}
	}

	objects, err := Extract(g, 0, 1)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, n*n, objects[0].Area)
}
