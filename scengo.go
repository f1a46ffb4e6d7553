package scengo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stormscape/scengo/cluster"
	"github.com/stormscape/scengo/feature"
	"github.com/stormscape/scengo/grid"
	"github.com/stormscape/scengo/kmeans"
	"github.com/stormscape/scengo/quality"
	"github.com/stormscape/scengo/rng"
	"github.com/stormscape/scengo/scale"
)

// ExtractObjects finds the spatial objects of a single grid: connected
// regions (4-neighbor) of cells strictly exceeding threshold, with at least
// minArea cells. See grid.Extract for the full contract.
func ExtractObjects(g grid.Grid, threshold float64, minArea int) ([]grid.Object, error) {
	return grid.Extract(g, threshold, minArea)
}

// ClusterObjects clusters a pre-pooled object set into k scenarios.
//
// The pipeline is vectorization -> normalization -> clustering -> quality
// metrics; each stage's behavior is controlled through the options. When
// WithClusterer overrides the strategy, k is ignored.
func ClusterObjects(ctx context.Context, objects []grid.Object, k int, optFns ...func(*Options)) (*Report, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return clusterPool(ctx, objects, k, &opts)
}

// ClusterEnsemble is the primary entry point: it extracts objects from every
// grid of the ensemble, tags them with their source grid index, pools them,
// and clusters the pool into k scenarios using the default feature
// vectorizer (unless overridden).
//
// Extraction runs concurrently across grids; the pooled object order is
// grid order then discovery order, independent of scheduling.
func ClusterEnsemble(ctx context.Context, grids []grid.Grid, threshold float64, minArea, k int, optFns ...func(*Options)) (*Report, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	objects, err := extractPool(ctx, grids, threshold, minArea, &opts)
	if err != nil {
		return nil, err
	}

	return clusterPool(ctx, objects, k, &opts)
}

// SweepK runs one independent clustering pipeline per candidate k over the
// same pooled object set, in parallel, and returns the reports in ks order.
//
// When the run is seeded, each candidate k derives its own seed (base seed
// plus k), so every run in the sweep is independently reproducible and no
// rng.Source is shared across goroutines.
func SweepK(ctx context.Context, grids []grid.Grid, threshold float64, minArea int, ks []int, optFns ...func(*Options)) ([]*Report, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	objects, err := extractPool(ctx, grids, threshold, minArea, &opts)
	if err != nil {
		opts.Metrics.RecordSweep(len(ks), time.Since(start), err)
		return nil, err
	}

	reports := make([]*Report, len(ks))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range ks {
		i, k := i, k
		runOpts := opts
		if opts.RNG != nil && opts.RNG.Deterministic() {
			runOpts.RNG = rng.New(opts.RNG.Seed() + int64(k))
		} else {
			runOpts.RNG = rng.NewNonDeterministic()
		}

		g.Go(func() error {
			report, err := clusterPool(gctx, objects, k, &runOpts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	err = g.Wait()
	opts.Metrics.RecordSweep(len(ks), time.Since(start), err)
	opts.Logger.LogSweep(ctx, len(ks), err)
	if err != nil {
		return nil, err
	}

	return reports, nil
}

// extractPool extracts objects from every grid concurrently and pools them
// in grid order, each tagged with its source grid index.
func extractPool(ctx context.Context, grids []grid.Grid, threshold float64, minArea int, opts *Options) ([]grid.Object, error) {
	if len(grids) == 0 {
		return nil, ErrNoGrids
	}

	perGrid := make([][]grid.Object, len(grids))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}

	for i, gr := range grids {
		i, gr := i, gr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			objects, err := grid.Extract(gr, threshold, minArea)
			opts.Metrics.RecordExtract(len(objects), time.Since(start), err)
			opts.Logger.LogExtract(gctx, i, len(objects), err)
			if err != nil {
				return err
			}
			for j := range objects {
				objects[j].SourceIndex = i
			}
			perGrid[i] = objects
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []grid.Object
	for _, objects := range perGrid {
		pool = append(pool, objects...)
	}

	return pool, nil
}

// clusterPool runs vectorization, normalization, clustering and metrics over
// an already-pooled object set.
func clusterPool(ctx context.Context, objects []grid.Object, k int, opts *Options) (*Report, error) {
	start := time.Now()

	report, err := clusterPoolInner(ctx, objects, k, opts)

	opts.Metrics.RecordCluster(k, time.Since(start), err)
	if err != nil {
		opts.Logger.LogCluster(ctx, k, len(objects), 0, false, err)
		return nil, err
	}
	opts.Logger.LogCluster(ctx, k, len(objects), report.Metrics.Iterations, report.Metrics.Converged, nil)

	return report, nil
}

func clusterPoolInner(ctx context.Context, objects []grid.Object, k int, opts *Options) (*Report, error) {
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	matrix, err := feature.Matrix(objects, opts.Vectorizer)
	if err != nil {
		return nil, err
	}

	model, err := scale.Fit(matrix, opts.Normalization)
	if err != nil {
		return nil, err
	}
	normalized := model.Apply(matrix)

	clusterer := opts.Clusterer
	if clusterer == nil {
		engine, err := kmeans.New(k,
			kmeans.WithSeeding(opts.Seeding),
			kmeans.WithMaxIterations(opts.MaxIterations),
			kmeans.WithRNG(opts.RNG),
		)
		if err != nil {
			return nil, err
		}
		clusterer = engine
	}

	res, err := clusterer.Cluster(ctx, normalized)
	if err != nil {
		return nil, err
	}

	metrics := Metrics{
		Inertia:    quality.Inertia(normalized, res.Centroids, res.Assignments),
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}
	if opts.Silhouette {
		numClusters := len(res.Centroids)
		if opts.SilhouetteSample > 0 && opts.SilhouetteSample < len(normalized) {
			metrics.Silhouette = quality.SilhouetteSampled(normalized, res.Assignments, numClusters, opts.SilhouetteSample, opts.RNG)
			metrics.SilhouetteSampled = true
		} else {
			metrics.Silhouette = quality.Silhouette(normalized, res.Assignments, numClusters)
		}
	}

	return buildReport(objects, res, model, metrics), nil
}

// Clusterer re-exports the capability interface implemented by the k-means
// and density strategies, for callers supplying their own via WithClusterer.
type Clusterer = cluster.Clusterer
