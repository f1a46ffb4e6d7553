// Package cluster defines the contract shared by clustering strategies.
//
// Strategies (k-means, density-based) are structurally independent; they
// meet only at the Clusterer interface, so the pipeline can swap one for the
// other by configuration.
package cluster

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned when a strategy receives zero points.
	ErrNoPoints = errors.New("no points to cluster")
)

// ErrDimensionMismatch indicates points of differing dimensionality.
type ErrDimensionMismatch struct {
	Point    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Point, e.Expected, e.Actual)
}

// Result is the outcome of one clustering run.
//
// Assignments maps point index to cluster index; clusters are numbered
// contiguously from 0 and are never empty. Density strategies may label
// points as noise: those carry assignment -1 and are listed in Noise.
type Result struct {
	Assignments []int       `json:"assignments"`
	Centroids   [][]float64 `json:"centroids"`

	// Iterations is the number of iterations the strategy performed.
	Iterations int `json:"iterations"`

	// Converged is false when the strategy stopped at its iteration bound
	// rather than at a fixed point. That is a normal outcome, annotated so
	// the caller can judge result quality; it is never an error.
	Converged bool `json:"converged"`

	// Noise lists points excluded from every cluster (density strategies
	// only; always empty for k-means).
	Noise []int `json:"noise,omitempty"`
}

// Clusterer is the capability interface all clustering strategies implement.
type Clusterer interface {
	Cluster(ctx context.Context, points [][]float64) (*Result, error)
}

// ValidatePoints checks that points is non-empty and dimensionally
// consistent, returning the common dimensionality.
func ValidatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}

	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Point: i, Expected: dim, Actual: len(p)}
		}
	}

	return dim, nil
}
