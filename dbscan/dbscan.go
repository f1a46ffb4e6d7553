package dbscan

import (
	"context"
	"errors"

	"github.com/stormscape/scengo/cluster"
	"github.com/stormscape/scengo/distance"
)

var (
	// ErrInvalidEps is returned when the neighborhood radius is not positive.
	ErrInvalidEps = errors.New("eps must be positive")

	// ErrInvalidMinPts is returned when the density threshold is < 1.
	ErrInvalidMinPts = errors.New("minPts must be >= 1")
)

// Clusterer groups points into density-connected clusters using cosine
// distance (1 - cosine similarity). Points in no sufficiently dense region
// are labeled noise: assignment -1, listed in Result.Noise.
type Clusterer struct {
	eps    float64
	minPts int
}

// New creates a density clusterer. eps is the maximum cosine distance
// between neighbors; minPts the minimum neighborhood size to seed a cluster.
func New(eps float64, minPts int) (*Clusterer, error) {
	if eps <= 0 {
		return nil, ErrInvalidEps
	}
	if minPts < 1 {
		return nil, ErrInvalidMinPts
	}

	return &Clusterer{eps: eps, minPts: minPts}, nil
}

// Cluster implements cluster.Clusterer.
//
// Centroids are per-cluster means so quality metrics apply uniformly across
// strategies. Iterations is always 1 and Converged true: the algorithm is a
// single deterministic pass, there is no iterative refinement to cap.
func (c *Clusterer) Cluster(ctx context.Context, points [][]float64) (*cluster.Result, error) {
	dim, err := cluster.ValidatePoints(points)
	if err != nil {
		return nil, err
	}

	n := len(points)

	const unvisited = -2
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if labels[i] != unvisited {
			continue
		}

		neighbors := c.rangeQuery(points, i)
		if len(neighbors) < c.minPts {
			labels[i] = -1 // noise, may be adopted by a later seed expansion
			continue
		}

		labels[i] = clusterID

		// Expansion queue with head cursor; points are appended at most a
		// bounded number of times since labeled points are skipped.
		queue := append([]int(nil), neighbors...)
		for head := 0; head < len(queue); head++ {
			q := queue[head]
			if labels[q] == -1 {
				labels[q] = clusterID // border point adopted from noise
			}
			if labels[q] != unvisited {
				continue
			}
			labels[q] = clusterID

			qNeighbors := c.rangeQuery(points, q)
			if len(qNeighbors) >= c.minPts {
				queue = append(queue, qNeighbors...)
			}
		}

		clusterID++
	}

	// Per-cluster mean centroids.
	centroids := make([][]float64, clusterID)
	counts := make([]int, clusterID)
	for j := range centroids {
		centroids[j] = make([]float64, dim)
	}
	var noise []int
	for i, l := range labels {
		if l < 0 {
			noise = append(noise, i)
			continue
		}
		counts[l]++
		for d, v := range points[i] {
			centroids[l][d] += v
		}
	}
	for j, cnt := range counts {
		inv := 1 / float64(cnt)
		for d := range centroids[j] {
			centroids[j][d] *= inv
		}
	}

	return &cluster.Result{
		Assignments: labels,
		Centroids:   centroids,
		Iterations:  1,
		Converged:   true,
		Noise:       noise,
	}, nil
}

// rangeQuery returns the indices of all points within eps cosine distance of
// points[idx], including idx itself.
func (c *Clusterer) rangeQuery(points [][]float64, idx int) []int {
	var result []int
	q := points[idx]
	for i, p := range points {
		if distance.Cosine(q, p) <= c.eps {
			result = append(result, i)
		}
	}

	return result
}
