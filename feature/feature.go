package feature

import (
	"errors"
	"fmt"
	"math"

	"github.com/stormscape/scengo/grid"
)

var (
	// ErrNilVectorizer is returned when no vectorizer is supplied.
	ErrNilVectorizer = errors.New("vectorizer must not be nil")

	// ErrEmptyVector is returned when a vectorizer produces a zero-length vector.
	ErrEmptyVector = errors.New("vectorizer produced an empty vector")
)

// ErrVectorLength indicates a feature vector whose length differs from the
// run's established dimensionality.
type ErrVectorLength struct {
	Object   int
	Expected int
	Actual   int
}

func (e *ErrVectorLength) Error() string {
	return fmt.Sprintf("feature vector length mismatch at object %d: expected %d, got %d", e.Object, e.Expected, e.Actual)
}

// ErrNonFinite indicates a NaN or infinite feature value.
type ErrNonFinite struct {
	Object    int
	Dimension int
}

func (e *ErrNonFinite) Error() string {
	return fmt.Sprintf("non-finite feature value at object %d, dimension %d", e.Object, e.Dimension)
}

// Vectorizer maps one spatial object to a fixed-length numeric vector.
// Implementations must be pure and must always return the same length.
type Vectorizer func(o grid.Object) []float64

// Default is the engine's default vectorizer: [area, maxValue, avgValue].
func Default(o grid.Object) []float64 {
	return []float64{float64(o.Area), o.MaxValue, o.AvgValue}
}

// Density vectorizes an object as its peak intensity per unit area.
func Density(o grid.Object) []float64 {
	return []float64{o.MaxValue / float64(o.Area)}
}

// Matrix applies v to every object and returns the raw feature matrix.
// The first object fixes the run's dimensionality; any later mismatch or
// non-finite value is a configuration error.
func Matrix(objects []grid.Object, v Vectorizer) ([][]float64, error) {
	if v == nil {
		return nil, ErrNilVectorizer
	}

	matrix := make([][]float64, len(objects))
	dim := -1

	for i, o := range objects {
		vec := v(o)
		if dim == -1 {
			if len(vec) == 0 {
				return nil, ErrEmptyVector
			}
			dim = len(vec)
		}
		if len(vec) != dim {
			return nil, &ErrVectorLength{Object: i, Expected: dim, Actual: len(vec)}
		}
		for d, val := range vec {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, &ErrNonFinite{Object: i, Dimension: d}
			}
		}
		matrix[i] = vec
	}

	return matrix, nil
}
