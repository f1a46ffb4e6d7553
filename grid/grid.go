package grid

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	// ErrNonRectangular is returned when grid rows have differing lengths.
	ErrNonRectangular = errors.New("grid is not rectangular")

	// ErrInvalidMinArea is returned when the minimum object area is < 1.
	ErrInvalidMinArea = errors.New("minArea must be >= 1")
)

// Grid is a rectangular 2D array of real-valued scalars, indexed by
// (row, col). The engine never mutates a Grid; it is read-only input.
type Grid [][]float64

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// Validate checks that every row has the same length.
func (g Grid) Validate() error {
	cols := g.Cols()
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrNonRectangular, i, len(row), cols)
		}
	}

	return nil
}

// Object is one connected region of a grid whose values exceed a threshold.
//
// Cells holds the region's row-major cell indices; it is used to compute the
// aggregates and geometry and is not required by the clustering stages.
type Object struct {
	// Area is the number of constituent cells, always >= the minArea the
	// extraction was configured with.
	Area int `json:"area"`

	// AvgValue and MaxValue aggregate the cell values over the region.
	AvgValue float64 `json:"avgValue"`
	MaxValue float64 `json:"maxValue"`

	// SourceIndex identifies the ensemble member (grid) that produced the
	// object. Extract leaves it at 0; multi-grid composition tags it.
	SourceIndex int `json:"sourceIndex"`

	// Cells are the row-major indices of the region's cells.
	Cells []int `json:"-"`

	// Centroid is the mean cell position in (col, row) coordinates.
	Centroid orb.Point `json:"centroid"`

	// Bounds is the axis-aligned bounding box of the region's cells,
	// in (col, row) coordinates.
	Bounds orb.Bound `json:"bounds"`
}
