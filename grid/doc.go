// Package grid turns 2D scalar fields into discrete spatial objects.
//
// A Grid is a rectangular array of real values, e.g. one ensemble member of
// a precipitation forecast. Extract finds connected regions of cells whose
// values exceed a threshold (4-neighbor connectivity, strict inequality) and
// reports each region as an Object carrying its area, value aggregates and
// geometry. Regions smaller than a configured minimum area are treated as
// noise and discarded.
package grid
