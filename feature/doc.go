// Package feature maps spatial objects to fixed-length numeric vectors.
//
// A Vectorizer is a pure function from a grid.Object to a []float64. The
// engine ships Default ([area, maxValue, avgValue]) and Density
// ([maxValue/area]); callers may supply their own. All vectors produced in
// one run must have identical length and contain only finite values;
// violations are configuration errors enforced at the matrix boundary,
// never deferred to consumption time.
package feature
