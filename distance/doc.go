// Package distance provides distance calculations over feature vectors.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default for k-means assignment)
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//   - MetricDot: Dot product (inner product)
//
// Assignment in k-means uses squared distances throughout: monotonicity of
// the square preserves the argmin, so no square root is ever taken there.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Dot(a, b)
package distance
