// Package kmeans implements Lloyd's algorithm over feature vectors.
//
// Seeding is k-means++ by default (it provably reduces the expected number
// of iterations to convergence versus uniform seeding); uniform random
// selection is available as an alternative. Both draw from a caller-supplied
// seeded source, so runs are exactly reproducible. Empty clusters arising
// during iteration are reinitialized from the point farthest from its own
// centroid, so k never silently shrinks.
package kmeans
