package quality

import (
	"math"

	"github.com/stormscape/scengo/distance"
	"github.com/stormscape/scengo/rng"
)

// Inertia returns the sum of squared L2 distances from every point to its
// assigned centroid. Noise points (assignment -1) are skipped.
func Inertia(points, centroids [][]float64, assignments []int) float64 {
	var sum float64
	for i, p := range points {
		c := assignments[i]
		if c < 0 {
			continue
		}
		sum += distance.SquaredL2(p, centroids[c])
	}

	return sum
}

// Silhouette returns the mean silhouette coefficient over all points, in
// [-1, 1]. For each point, a is the mean distance to its own cluster and b
// the mean distance to the nearest other cluster; the coefficient is
// (b - a) / max(a, b), defined as 0 for singleton clusters. Fewer than two
// clusters or two points yield 0 by convention.
//
// Exact computation is O(n²) in point count; see SilhouetteSampled for a
// cost-bounded approximation.
func Silhouette(points [][]float64, assignments []int, k int) float64 {
	return silhouette(points, assignments, k, nil)
}

// SilhouetteSampled approximates the silhouette score by averaging the
// coefficients of sampleSize points drawn uniformly without replacement.
// Distances are still measured against full clusters, so only the outer
// mean is sampled. A sampleSize >= the point count degrades to the exact
// score. A nil src means an explicitly non-reproducible draw.
func SilhouetteSampled(points [][]float64, assignments []int, k, sampleSize int, src *rng.Source) float64 {
	n := len(points)
	if sampleSize <= 0 {
		return 0
	}
	if sampleSize >= n {
		return silhouette(points, assignments, k, nil)
	}
	if src == nil {
		src = rng.NewNonDeterministic()
	}

	return silhouette(points, assignments, k, src.Perm(n)[:sampleSize])
}

// silhouette computes the mean coefficient over the given sample indices,
// or over all points when sample is nil.
func silhouette(points [][]float64, assignments []int, k int, sample []int) float64 {
	n := len(points)
	if k < 2 || n < 2 {
		return 0
	}

	sizes := make([]int, k)
	for _, c := range assignments {
		if c >= 0 {
			sizes[c]++
		}
	}

	if sample == nil {
		sample = make([]int, n)
		for i := range sample {
			sample[i] = i
		}
	}

	var total float64
	counted := 0
	sums := make([]float64, k) // per-cluster distance sums, reused per point

	for _, i := range sample {
		own := assignments[i]
		if own < 0 {
			continue
		}
		counted++

		if sizes[own] <= 1 {
			// Singleton cluster: no intra-cluster distance to average.
			continue
		}

		for j := range sums {
			sums[j] = 0
		}
		for j, p := range points {
			c := assignments[j]
			if c < 0 || j == i {
				continue
			}
			sums[c] += distance.L2(points[i], p)
		}

		a := sums[own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(sizes[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		if m := math.Max(a, b); m > 0 {
			total += (b - a) / m
		}
	}

	if counted == 0 {
		return 0
	}

	return total / float64(counted)
}
