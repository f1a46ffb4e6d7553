// Package dbscan implements density-based clustering over feature vectors
// using cosine distance.
//
// It is the alternative strategy to k-means behind the same cluster.Clusterer
// contract: regions of feature space denser than eps/minPts become clusters,
// everything else is noise. Unlike k-means it needs no k and no random
// source; results are fully deterministic.
package dbscan
