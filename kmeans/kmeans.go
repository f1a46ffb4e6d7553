package kmeans

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/stormscape/scengo/cluster"
	"github.com/stormscape/scengo/distance"
	"github.com/stormscape/scengo/rng"
)

// DefaultMaxIterations bounds the Lloyd loop when no limit is configured.
const DefaultMaxIterations = 100

// ErrInvalidK is returned when k is not positive.
var ErrInvalidK = errors.New("k must be positive")

// ErrInvalidMaxIterations is returned when the configured iteration bound is
// not positive.
var ErrInvalidMaxIterations = errors.New("max iterations must be positive")

// ErrTooFewPoints indicates more clusters requested than points supplied.
type ErrTooFewPoints struct {
	K      int
	Points int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("k (%d) exceeds number of points (%d)", e.K, e.Points)
}

// Seeding selects the centroid initialization strategy.
type Seeding int

const (
	// SeedingPlusPlus draws each centroid after the first with probability
	// proportional to its squared distance from the nearest chosen centroid.
	SeedingPlusPlus Seeding = iota
	// SeedingUniform draws k distinct points uniformly at random.
	SeedingUniform
)

func (s Seeding) String() string {
	switch s {
	case SeedingPlusPlus:
		return "PlusPlus"
	case SeedingUniform:
		return "Uniform"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Options configures an Engine.
type Options struct {
	// MaxIterations bounds the Lloyd loop. Hitting the bound is a normal
	// outcome reported via Result.Converged, not an error.
	MaxIterations int

	// Seeding selects the initialization strategy.
	Seeding Seeding

	// RNG drives all random draws. Nil means an explicitly
	// non-reproducible source is created per run.
	RNG *rng.Source
}

// WithMaxIterations sets the iteration bound. Non-positive values are
// rejected by New.
func WithMaxIterations(n int) func(*Options) {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithSeeding sets the centroid initialization strategy.
func WithSeeding(s Seeding) func(*Options) {
	return func(o *Options) {
		o.Seeding = s
	}
}

// WithRNG sets the random source, making the run reproducible when the
// source was created from an explicit seed.
func WithRNG(src *rng.Source) func(*Options) {
	return func(o *Options) {
		o.RNG = src
	}
}

// Engine clusters points into k partitions with Lloyd's algorithm.
// An Engine is stateless between runs; working state lives on the stack of
// each Cluster call.
type Engine struct {
	k    int
	opts Options
}

// New creates an Engine for k clusters.
func New(k int, optFns ...func(*Options)) (*Engine, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	opts := Options{
		MaxIterations: DefaultMaxIterations,
		Seeding:       SeedingPlusPlus,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxIterations <= 0 {
		return nil, ErrInvalidMaxIterations
	}

	return &Engine{k: k, opts: opts}, nil
}

// K returns the configured cluster count.
func (e *Engine) K() int {
	return e.k
}

// Cluster partitions points into k clusters.
//
// The run moves through initialization, iteration and one of two terminal
// states: converged (no assignment changed) or iteration bound reached
// (Result.Converged == false). Assignment uses squared Euclidean distance
// only; ties go to the lowest centroid index.
func (e *Engine) Cluster(ctx context.Context, points [][]float64) (*cluster.Result, error) {
	dim, err := cluster.ValidatePoints(points)
	if err != nil {
		return nil, err
	}

	n := len(points)
	if e.k > n {
		return nil, &ErrTooFewPoints{K: e.k, Points: n}
	}

	src := e.opts.RNG
	if src == nil {
		src = rng.NewNonDeterministic()
	}

	var centroids [][]float64
	if e.opts.Seeding == SeedingUniform {
		centroids = seedUniform(points, e.k, src)
	} else {
		centroids = seedPlusPlus(points, e.k, src)
	}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, e.k)
	sums := make([]float64, e.k*dim)

	iterations := 0
	converged := false

	for iter := 0; iter < e.opts.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations = iter + 1

		// Assignment step.
		changed := false
		for i, p := range points {
			best := nearest(p, centroids)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}

		// Update step.
		for i := range sums {
			sums[i] = 0
		}
		for j := range counts {
			counts[j] = 0
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			base := c * dim
			for d, v := range p {
				sums[base+d] += v
			}
		}
		for j := 0; j < e.k; j++ {
			if counts[j] == 0 {
				continue
			}
			inv := 1 / float64(counts[j])
			for d := 0; d < dim; d++ {
				centroids[j][d] = sums[j*dim+d] * inv
			}
		}

		// Empty-cluster policy: reinitialize from the point farthest from
		// its own centroid; ties break to the lowest point index. Sole
		// members are skipped so no new empty cluster appears. The donor
		// cluster's sums and centroid are updated in place so every
		// centroid stays the exact mean of its members even when the next
		// assignment step declares convergence.
		for j := 0; j < e.k; j++ {
			if counts[j] > 0 {
				continue
			}
			p := farthestFromOwnCentroid(points, centroids, assignments, counts)
			if p < 0 {
				continue
			}
			donor := assignments[p]
			counts[donor]--
			inv := 1 / float64(counts[donor])
			for d, v := range points[p] {
				sums[donor*dim+d] -= v
				centroids[donor][d] = sums[donor*dim+d] * inv
				sums[j*dim+d] = v
			}
			assignments[p] = j
			counts[j] = 1
			centroids[j] = slices.Clone(points[p])
		}
	}

	return &cluster.Result{
		Assignments: assignments,
		Centroids:   centroids,
		Iterations:  iterations,
		Converged:   converged,
	}, nil
}

// nearest returns the index of the centroid closest to p by squared L2
// distance; the lowest index wins ties.
func nearest(p []float64, centroids [][]float64) int {
	best := 0
	minDist := distance.SquaredL2(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := distance.SquaredL2(p, centroids[j]); d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

// farthestFromOwnCentroid returns the index of the eligible point with the
// greatest squared distance to its assigned centroid, or -1 if none. Points
// that are the sole member of their cluster are not eligible.
func farthestFromOwnCentroid(points, centroids [][]float64, assignments, counts []int) int {
	best := -1
	var maxDist float64
	for i, p := range points {
		c := assignments[i]
		if c < 0 || counts[c] <= 1 {
			continue
		}
		d := distance.SquaredL2(p, centroids[c])
		if best < 0 || d > maxDist {
			maxDist = d
			best = i
		}
	}

	return best
}

// seedUniform picks k distinct points uniformly at random.
func seedUniform(points [][]float64, k int, src *rng.Source) [][]float64 {
	perm := src.Perm(len(points))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = slices.Clone(points[perm[i]])
	}

	return centroids
}

// seedPlusPlus implements k-means++ initialization. minDistSq tracks each
// point's squared distance to its nearest chosen centroid and is updated
// incrementally, keeping the whole initialization O(n*k).
func seedPlusPlus(points [][]float64, k int, src *rng.Source) [][]float64 {
	n := len(points)
	centroids := make([][]float64, k)
	centroids[0] = slices.Clone(points[src.Intn(n)])

	minDistSq := make([]float64, n)
	var sum float64
	for i, p := range points {
		d := distance.SquaredL2(p, centroids[0])
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		if sum == 0 {
			// All remaining mass is zero (duplicate points); fall back to
			// a uniform draw.
			centroids[c] = slices.Clone(points[src.Intn(n)])
			continue
		}

		target := src.Float64() * sum
		chosen := -1
		var cumsum float64
		for i, d := range minDistSq {
			if d == 0 {
				continue
			}
			chosen = i
			cumsum += d
			if cumsum >= target {
				break
			}
		}
		centroids[c] = slices.Clone(points[chosen])

		sum = 0
		for i, p := range points {
			if d := distance.SquaredL2(p, centroids[c]); d < minDistSq[i] {
				minDistSq[i] = d
			}
			sum += minDistSq[i]
		}
	}

	return centroids
}
