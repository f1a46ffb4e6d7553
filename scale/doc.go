// Package scale provides per-dimension feature normalization.
//
// Fit computes a Model (one offset/scale pair per dimension) over a full
// feature matrix; Apply transforms vectors into normalized space and Invert
// maps centroids back into the original feature space. Degenerate dimensions
// (zero variance, or min == max) keep a scale of 1, so normalization never
// produces NaN or Inf.
package scale
