package dbscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormscape/scengo/cluster"
)

func TestClusterTwoDirections(t *testing.T) {
	// Two directional bundles in 2-D: along x and along y. Cosine distance
	// ignores magnitude, so each bundle is one dense region.
	points := [][]float64{
		{1, 0}, {2, 0.01}, {3, -0.01},
		{0, 1}, {0.01, 2}, {-0.01, 3},
	}

	c, err := New(0.05, 2)
	require.NoError(t, err)

	res, err := c.Cluster(context.Background(), points)
	require.NoError(t, err)
	require.Len(t, res.Centroids, 2)
	assert.Empty(t, res.Noise)
	assert.True(t, res.Converged)

	x := res.Assignments[0]
	assert.Equal(t, x, res.Assignments[1])
	assert.Equal(t, x, res.Assignments[2])
	y := res.Assignments[3]
	assert.Equal(t, y, res.Assignments[4])
	assert.Equal(t, y, res.Assignments[5])
	assert.NotEqual(t, x, y)
}

func TestClusterNoise(t *testing.T) {
	points := [][]float64{
		{1, 0}, {1, 0.01}, {1, -0.01},
		{-1, 1}, // isolated direction
	}

	c, err := New(0.01, 2)
	require.NoError(t, err)

	res, err := c.Cluster(context.Background(), points)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, res.Noise)
	assert.Equal(t, -1, res.Assignments[3])
	require.Len(t, res.Centroids, 1)
}

func TestClusterDeterministic(t *testing.T) {
	points := [][]float64{
		{1, 0}, {0.9, 0.1}, {0, 1}, {0.1, 0.9}, {1, 1},
	}

	c, err := New(0.1, 2)
	require.NoError(t, err)

	a, err := c.Cluster(context.Background(), points)
	require.NoError(t, err)
	b, err := c.Cluster(context.Background(), points)
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
}

func TestClusterIDsContiguous(t *testing.T) {
	points := [][]float64{
		{1, 0}, {1, 0.001},
		{0, 1}, {0.001, 1},
		{-1, 0}, {-1, -0.001},
	}

	c, err := New(0.01, 2)
	require.NoError(t, err)

	res, err := c.Cluster(context.Background(), points)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, l := range res.Assignments {
		require.GreaterOrEqual(t, l, 0)
		seen[l] = true
	}
	for j := 0; j < len(res.Centroids); j++ {
		assert.True(t, seen[j], "cluster %d has no members", j)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(0, 2)
	assert.ErrorIs(t, err, ErrInvalidEps)

	_, err = New(0.5, 0)
	assert.ErrorIs(t, err, ErrInvalidMinPts)
}

func TestClusterNoPoints(t *testing.T) {
	c, err := New(0.5, 2)
	require.NoError(t, err)

	_, err = c.Cluster(context.Background(), nil)
	assert.ErrorIs(t, err, cluster.ErrNoPoints)
}

func TestClusterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := New(0.5, 2)
	require.NoError(t, err)

	_, err = c.Cluster(ctx, [][]float64{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, context.Canceled)
}
