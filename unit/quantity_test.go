package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	s := NewScalar(1.5, Kilometre)

	assert.InDelta(t, 1500.0, s.SI(), 1e-9)
	assert.InDelta(t, 1.5, s.Value(), 1e-9)
	assert.Equal(t, Kilometre, s.Unit())
	assert.Equal(t, "1.5 km", s.String())
}

func TestScalarFromSI(t *testing.T) {
	s := ScalarFromSI(1500, Kilometre)

	assert.Equal(t, 1500.0, s.SI(), "construction from SI must not rescale the magnitude")
	assert.InDelta(t, 1.5, s.Value(), 1e-9)
}

func TestVector(t *testing.T) {
	v := NewVector([]float64{1, 2, 3}, Kilometre)

	require.Equal(t, 3, v.Len())
	assert.Equal(t, []float64{1000, 2000, 3000}, v.SI())
	assert.Equal(t, Kilometre, v.Unit())
}

func TestVectorEmpty(t *testing.T) {
	v := NewVector(nil, Metre)
	assert.Equal(t, 0, v.Len())
}

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([][]float64{{1, 2}, {3, 4}, {5, 6}}, Gram)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.InDelta(t, 0.003, m.SI()[1][0], 1e-12)
	assert.Equal(t, Gram, m.Unit())
}

func TestMatrixJagged(t *testing.T) {
	_, err := NewMatrix([][]float64{{1, 2}, {3}}, Metre)
	require.ErrorIs(t, err, ErrJaggedMatrix)

	_, err = MatrixFromSI([][]float64{{1}, {2, 3}}, Metre)
	require.ErrorIs(t, err, ErrJaggedMatrix)
}

func TestMatrixEmpty(t *testing.T) {
	_, err := NewMatrix(nil, Metre)
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = NewMatrix([][]float64{{}}, Metre)
	require.ErrorIs(t, err, ErrEmptyMatrix)
}
