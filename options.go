package scengo

import (
	"github.com/stormscape/scengo/cluster"
	"github.com/stormscape/scengo/feature"
	"github.com/stormscape/scengo/kmeans"
	"github.com/stormscape/scengo/rng"
	"github.com/stormscape/scengo/scale"
)

// Options configures a clustering run.
//
// Options exist to avoid exploding the API surface; all fields have working
// defaults and are set through With* functions.
type Options struct {
	// Vectorizer maps objects to feature vectors. Defaults to
	// feature.Default ([area, maxValue, avgValue]).
	Vectorizer feature.Vectorizer

	// Normalization selects the feature scaling strategy. Defaults to
	// scale.ZScore; scale.Identity clusters on raw features.
	Normalization scale.Strategy

	// Seeding selects the k-means initialization strategy. Defaults to
	// k-means++.
	Seeding kmeans.Seeding

	// MaxIterations bounds the k-means loop.
	MaxIterations int

	// RNG drives all random draws of the run. Nil means an explicitly
	// non-reproducible source is created per run.
	RNG *rng.Source

	// Silhouette enables silhouette computation (exact O(n²) unless
	// SilhouetteSample is set). On by default.
	Silhouette bool

	// SilhouetteSample, when > 0, approximates the silhouette score from
	// that many sampled points instead of all of them.
	SilhouetteSample int

	// Clusterer overrides the k-means strategy entirely (e.g. a dbscan
	// instance). When set, k and the k-means options are ignored.
	Clusterer cluster.Clusterer

	// Parallelism bounds concurrent per-grid extraction in ensemble entry
	// points. <= 0 means one goroutine per grid.
	Parallelism int

	// Logger receives structured run logs. Defaults to a noop logger.
	Logger *Logger

	// Metrics receives operational metrics. Defaults to a noop collector.
	Metrics MetricsCollector
}

func defaultOptions() Options {
	return Options{
		Vectorizer:    feature.Default,
		Normalization: scale.ZScore,
		Seeding:       kmeans.SeedingPlusPlus,
		MaxIterations: kmeans.DefaultMaxIterations,
		Silhouette:    true,
		Logger:        NoopLogger(),
		Metrics:       NoopMetricsCollector{},
	}
}

// WithVectorizer sets the feature vectorizer.
func WithVectorizer(v feature.Vectorizer) func(*Options) {
	return func(o *Options) {
		o.Vectorizer = v
	}
}

// WithNormalization sets the feature scaling strategy.
func WithNormalization(s scale.Strategy) func(*Options) {
	return func(o *Options) {
		o.Normalization = s
	}
}

// WithoutNormalization clusters on raw feature values.
func WithoutNormalization() func(*Options) {
	return func(o *Options) {
		o.Normalization = scale.Identity
	}
}

// WithSeeding sets the k-means initialization strategy.
func WithSeeding(s kmeans.Seeding) func(*Options) {
	return func(o *Options) {
		o.Seeding = s
	}
}

// WithMaxIterations bounds the k-means loop. Non-positive values are
// rejected when the run is configured.
func WithMaxIterations(n int) func(*Options) {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithRNG sets the random source for the run. A source created from an
// explicit seed makes the run reproducible.
func WithRNG(src *rng.Source) func(*Options) {
	return func(o *Options) {
		o.RNG = src
	}
}

// WithSeed sets a deterministic random source created from seed.
func WithSeed(seed int64) func(*Options) {
	return func(o *Options) {
		o.RNG = rng.New(seed)
	}
}

// WithSilhouette enables or disables silhouette computation.
func WithSilhouette(enabled bool) func(*Options) {
	return func(o *Options) {
		o.Silhouette = enabled
	}
}

// WithSilhouetteSample enables sampled silhouette computation over n points,
// trading accuracy for bounded cost on large object pools.
func WithSilhouetteSample(n int) func(*Options) {
	return func(o *Options) {
		o.Silhouette = true
		o.SilhouetteSample = n
	}
}

// WithClusterer swaps in an alternative clustering strategy (e.g. dbscan).
// The k argument of the entry points is ignored when this is set.
func WithClusterer(c cluster.Clusterer) func(*Options) {
	return func(o *Options) {
		o.Clusterer = c
	}
}

// WithExtractParallelism bounds concurrent per-grid extraction.
func WithExtractParallelism(n int) func(*Options) {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger sets the logger for run logs.
func WithLogger(l *Logger) func(*Options) {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetricsCollector sets the operational metrics collector.
func WithMetricsCollector(m MetricsCollector) func(*Options) {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}
