package unit

import (
	"errors"
	"fmt"
)

// ErrJaggedMatrix is returned when a quantity matrix is constructed from rows
// of unequal width. Jagged input is rejected at construction time.
var ErrJaggedMatrix = errors.New("jagged quantity matrix")

// ErrEmptyMatrix is returned when a quantity matrix is constructed with zero
// rows or zero columns.
var ErrEmptyMatrix = errors.New("empty quantity matrix")

// Scalar is a single physical value: an SI-normalized magnitude plus the
// display unit it was expressed in.
type Scalar struct {
	si   float64
	unit Unit
}

// NewScalar builds a scalar from a magnitude expressed in the display unit u.
func NewScalar(value float64, u Unit) Scalar {
	return Scalar{si: u.ToSI(value), unit: u}
}

// ScalarFromSI builds a scalar from an SI magnitude, keeping u as the display
// unit. This is the construction path used when decoding wire payloads.
func ScalarFromSI(si float64, u Unit) Scalar {
	return Scalar{si: si, unit: u}
}

// SI returns the SI-normalized magnitude.
func (s Scalar) SI() float64 { return s.si }

// Value returns the magnitude expressed in the display unit.
func (s Scalar) Value() float64 { return s.unit.FromSI(s.si) }

// Unit returns the display unit.
func (s Scalar) Unit() Unit { return s.unit }

func (s Scalar) String() string {
	return fmt.Sprintf("%g %s", s.Value(), s.unit.Symbol())
}

// Vector is a sequence of physical values sharing one display unit.
// The magnitudes are stored SI-normalized.
type Vector struct {
	si   []float64
	unit Unit
}

// NewVector builds a vector from magnitudes expressed in the display unit u.
func NewVector(values []float64, u Unit) Vector {
	si := make([]float64, len(values))
	for i, v := range values {
		si[i] = u.ToSI(v)
	}

	return Vector{si: si, unit: u}
}

// VectorFromSI builds a vector directly from SI magnitudes. The slice is
// retained, not copied; the caller must not mutate it afterwards.
func VectorFromSI(si []float64, u Unit) Vector {
	return Vector{si: si, unit: u}
}

// SI returns the SI-normalized magnitudes. The returned slice is the backing
// store; treat it as read-only.
func (v Vector) SI() []float64 { return v.si }

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.si) }

// Unit returns the display unit.
func (v Vector) Unit() Unit { return v.unit }

// Matrix is a rectangular 2D array of physical values sharing one display
// unit. Magnitudes are stored SI-normalized, row-major.
type Matrix struct {
	si   [][]float64
	cols int
	unit Unit
}

// NewMatrix builds a matrix from magnitudes expressed in the display unit u.
// It fails on empty or jagged input.
func NewMatrix(values [][]float64, u Unit) (Matrix, error) {
	si := make([][]float64, len(values))
	for i, row := range values {
		si[i] = make([]float64, len(row))
		for j, v := range row {
			si[i][j] = u.ToSI(v)
		}
	}

	return MatrixFromSI(si, u)
}

// MatrixFromSI builds a matrix directly from SI magnitudes. The rows are
// retained, not copied. It fails on empty or jagged input.
func MatrixFromSI(si [][]float64, u Unit) (Matrix, error) {
	if len(si) == 0 || len(si[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: %d rows", ErrEmptyMatrix, len(si))
	}

	cols := len(si[0])
	for i, row := range si {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrJaggedMatrix, i, len(row), cols)
		}
	}

	return Matrix{si: si, cols: cols, unit: u}, nil
}

// SI returns the SI-normalized magnitudes, row-major. Treat as read-only.
func (m Matrix) SI() [][]float64 { return m.si }

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m.si) }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Unit returns the display unit.
func (m Matrix) Unit() Unit { return m.unit }
