// Package quality computes clustering quality metrics.
//
// Inertia is the sum of squared distances from each point to its assigned
// centroid. Silhouette measures per-point separation between the assigned
// cluster and the nearest other cluster; exact computation is O(n²), so a
// sampled variant bounds the cost for large object counts. Points labeled
// noise (assignment -1) are excluded from both metrics.
package quality
