package scengo

import (
	"errors"
)

var (
	// ErrNoGrids is returned when an ensemble entry point receives no grids.
	ErrNoGrids = errors.New("no grids supplied")

	// ErrNoObjects is returned when clustering is requested over an empty
	// object pool, e.g. when no grid cell exceeded the threshold.
	ErrNoObjects = errors.New("no objects to cluster")
)
