package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormscape/scengo/grid"
)

func TestDefault(t *testing.T) {
	o := grid.Object{Area: 4, MaxValue: 10, AvgValue: 7.5}
	assert.Equal(t, []float64{4, 10, 7.5}, Default(o))
}

func TestDensity(t *testing.T) {
	o := grid.Object{Area: 4, MaxValue: 10}
	assert.Equal(t, []float64{2.5}, Density(o))
}

func TestMatrix(t *testing.T) {
	objects := []grid.Object{
		{Area: 1, MaxValue: 2, AvgValue: 2},
		{Area: 3, MaxValue: 8, AvgValue: 5},
	}

	m, err := Matrix(objects, Default)
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, []float64{1, 2, 2}, m[0])
	assert.Equal(t, []float64{3, 8, 5}, m[1])
}

func TestMatrixNilVectorizer(t *testing.T) {
	_, err := Matrix([]grid.Object{{Area: 1}}, nil)
	assert.ErrorIs(t, err, ErrNilVectorizer)
}

func TestMatrixEmptyVector(t *testing.T) {
	_, err := Matrix([]grid.Object{{Area: 1}}, func(grid.Object) []float64 {
		return nil
	})
	assert.ErrorIs(t, err, ErrEmptyVector)
}

func TestMatrixLengthMismatch(t *testing.T) {
	objects := []grid.Object{{Area: 1}, {Area: 2}}

	_, err := Matrix(objects, func(o grid.Object) []float64 {
		if o.Area == 1 {
			return []float64{1, 2}
		}
		return []float64{1}
	})

	var lengthErr *ErrVectorLength
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 1, lengthErr.Object)
	assert.Equal(t, 2, lengthErr.Expected)
	assert.Equal(t, 1, lengthErr.Actual)
}

func TestMatrixNonFinite(t *testing.T) {
	objects := []grid.Object{{Area: 0, MaxValue: 1}}

	_, err := Matrix(objects, func(o grid.Object) []float64 {
		return []float64{o.MaxValue / float64(o.Area), math.NaN()}
	})

	var nf *ErrNonFinite
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 0, nf.Object)
	assert.Equal(t, 0, nf.Dimension)
}

func TestMatrixEmptyObjects(t *testing.T) {
	m, err := Matrix(nil, Default)
	require.NoError(t, err)
	assert.Empty(t, m)
}
