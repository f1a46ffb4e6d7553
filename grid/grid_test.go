package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridDimensions(t *testing.T) {
	g := Grid{
		{1, 2, 3},
		{4, 5, 6},
	}

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	var empty Grid
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())
}

func TestGridValidate(t *testing.T) {
	assert.NoError(t, Grid{{1, 2}, {3, 4}}.Validate())
	assert.NoError(t, Grid{}.Validate())
	assert.ErrorIs(t, Grid{{1, 2}, {3}}.Validate(), ErrNonRectangular)
}
